package infrastructure

import (
	"context"
	"errors"
	"time"

	"github.com/AhmedHodiani/slicing-pie/internal/domain/file"
	appErrors "github.com/AhmedHodiani/slicing-pie/internal/errors"
	"github.com/AhmedHodiani/slicing-pie/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type FileRepository struct {
	DB *gorm.DB
}

var _ file.Repository = (*FileRepository)(nil)

type fileDB struct {
	Id         string    `gorm:"type:varchar(26);primaryKey;column:id"`
	Name       string    `gorm:"type:varchar(255);not null;column:name"`
	ObjectKey  string    `gorm:"type:varchar(300);not null;column:object_key"`
	Size       int64     `gorm:"not null;column:size"`
	MimeType   string    `gorm:"type:varchar(100);column:mime_type"`
	UploadedBy string    `gorm:"type:varchar(26);index;not null;column:uploaded_by"`
	CreatedAt  time.Time `gorm:"not null;column:created_at"`
	UpdatedAt  time.Time `gorm:"not null;column:updated_at"`
}

func (fileDB) TableName() string {
	return "files"
}

func toDomainFile(fdb *fileDB) (*file.File, error) {
	id, err := pkg.ParseULID(fdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	uid, err := pkg.ParseULID(fdb.UploadedBy)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	return &file.File{
		Id:         id,
		Name:       fdb.Name,
		ObjectKey:  fdb.ObjectKey,
		Size:       fdb.Size,
		MimeType:   fdb.MimeType,
		UploadedBy: uid,
		CreatedAt:  fdb.CreatedAt,
		UpdatedAt:  fdb.UpdatedAt,
	}, nil
}

func toDBFile(f *file.File) *fileDB {
	return &fileDB{
		Id:         f.Id.String(),
		Name:       f.Name,
		ObjectKey:  f.ObjectKey,
		Size:       f.Size,
		MimeType:   f.MimeType,
		UploadedBy: f.UploadedBy.String(),
		CreatedAt:  f.CreatedAt,
		UpdatedAt:  f.UpdatedAt,
	}
}

func (r *FileRepository) Create(ctx context.Context, f *file.File) error {
	fdb := toDBFile(f)
	if err := r.DB.WithContext(ctx).Table("files").Create(fdb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *FileRepository) Delete(ctx context.Context, id ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("files").Where("id = ?", id.String()).Delete(&fileDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrFileNotFound
	}
	return nil
}

func (r *FileRepository) GetByID(ctx context.Context, id ulid.ULID) (*file.File, error) {
	var fdb fileDB
	if err := r.DB.WithContext(ctx).Table("files").Where("id = ?", id.String()).First(&fdb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrFileNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainFile(&fdb)
}

func (r *FileRepository) List(ctx context.Context, search string) ([]*file.File, error) {
	query := r.DB.WithContext(ctx).Table("files")
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	var rows []fileDB
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	out := make([]*file.File, 0, len(rows))
	for i := range rows {
		f, err := toDomainFile(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}
