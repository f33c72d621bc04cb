package infrastructure

import (
	"context"
	"errors"
	"time"

	"github.com/AhmedHodiani/slicing-pie/internal/domain/user"
	appErrors "github.com/AhmedHodiani/slicing-pie/internal/errors"
	"github.com/AhmedHodiani/slicing-pie/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

var _ user.Repository = (*UserRepository)(nil)

type userDB struct {
	Id                  string    `gorm:"type:varchar(26);primaryKey"`
	Name                string    `gorm:"type:varchar(100);not null"`
	Email               string    `gorm:"type:varchar(100);uniqueIndex:idx_users_email;not null"`
	Password            string    `gorm:"type:varchar(255);not null"`
	Role                string    `gorm:"type:varchar(10);default:'viewer';not null"`
	MarketSalaryMonthly float64   `gorm:"column:market_salary_monthly"`
	HourlyRate          float64   `gorm:"column:hourly_rate"`
	Title               string    `gorm:"type:varchar(100)"`
	Avatar              string    `gorm:"type:varchar(255)"`
	AvatarOptions       string    `gorm:"type:text"`
	CreatedAt           time.Time `gorm:"not null"`
	UpdatedAt           time.Time `gorm:"not null"`
}

func (userDB) TableName() string {
	return "users"
}

func toDomainUser(udb *userDB) (*user.User, error) {
	id, err := pkg.ParseULID(udb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	return &user.User{
		Id:                  id,
		Name:                udb.Name,
		Email:               udb.Email,
		Password:            udb.Password,
		Role:                user.Role(udb.Role),
		MarketSalaryMonthly: udb.MarketSalaryMonthly,
		HourlyRate:          udb.HourlyRate,
		Title:               udb.Title,
		Avatar:              udb.Avatar,
		AvatarOptions:       udb.AvatarOptions,
		CreatedAt:           udb.CreatedAt,
		UpdatedAt:           udb.UpdatedAt,
	}, nil
}

func toDBUser(u *user.User) *userDB {
	return &userDB{
		Id:                  u.Id.String(),
		Name:                u.Name,
		Email:               u.Email,
		Password:            u.Password,
		Role:                string(u.Role),
		MarketSalaryMonthly: u.MarketSalaryMonthly,
		HourlyRate:          u.HourlyRate,
		Title:               u.Title,
		Avatar:              u.Avatar,
		AvatarOptions:       u.AvatarOptions,
		CreatedAt:           u.CreatedAt,
		UpdatedAt:           u.UpdatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	udb := toDBUser(u)
	if err := r.DB.WithContext(ctx).Table("users").Create(udb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

// Update usa Select("*") para persistir também campos zerados, como um
// salário removido.
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	udb := toDBUser(u)
	if err := r.DB.WithContext(ctx).Table("users").Where("id = ?", udb.Id).Select("*").Updates(udb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("users").Where("id = ?", id.String()).Delete(&userDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id ulid.ULID) (*user.User, error) {
	var udb userDB
	if err := r.DB.WithContext(ctx).Table("users").Where("id = ?", id.String()).First(&udb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrUserNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainUser(&udb)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var udb userDB
	if err := r.DB.WithContext(ctx).Table("users").Where("email = ?", email).First(&udb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrUserNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainUser(&udb)
}

func (r *UserRepository) List(ctx context.Context) ([]*user.User, error) {
	var rows []userDB
	if err := r.DB.WithContext(ctx).Table("users").Order("name ASC").Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	out := make([]*user.User, 0, len(rows))
	for i := range rows {
		u, err := toDomainUser(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}
