package infrastructure

import (
	"context"
	"errors"
	"time"

	"github.com/AhmedHodiani/slicing-pie/internal/domain/contribution"
	"github.com/AhmedHodiani/slicing-pie/internal/domain/equity"
	appErrors "github.com/AhmedHodiani/slicing-pie/internal/errors"
	"github.com/AhmedHodiani/slicing-pie/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type ContributionRepository struct {
	DB *gorm.DB
}

var _ contribution.Repository = (*ContributionRepository)(nil)

type contributionDB struct {
	Id              string    `gorm:"type:varchar(26);primaryKey;column:id"`
	UserId          string    `gorm:"type:varchar(26);index;not null;column:user_id"`
	UserName        string    `gorm:"->;column:user_name"`
	Category        string    `gorm:"type:varchar(10);not null;column:category"`
	Amount          float64   `gorm:"not null;column:amount"`
	FairMarketValue float64   `gorm:"not null;column:fair_market_value"`
	Multiplier      int       `gorm:"not null;column:multiplier"`
	Slices          float64   `gorm:"not null;index;column:slices"`
	Description     string    `gorm:"size:500;column:description"`
	Date            time.Time `gorm:"not null;index;column:date"`
	CreatedAt       time.Time `gorm:"not null;column:created_at"`
	UpdatedAt       time.Time `gorm:"not null;column:updated_at"`
}

func (contributionDB) TableName() string {
	return "contributions"
}

func toDomainContribution(cdb *contributionDB) (*contribution.Contribution, error) {
	id, err := pkg.ParseULID(cdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	uid, err := pkg.ParseULID(cdb.UserId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	return &contribution.Contribution{
		Id:              id,
		UserId:          uid,
		UserName:        cdb.UserName,
		Category:        equity.Category(cdb.Category),
		Amount:          cdb.Amount,
		FairMarketValue: cdb.FairMarketValue,
		Multiplier:      cdb.Multiplier,
		Slices:          cdb.Slices,
		Description:     cdb.Description,
		Date:            cdb.Date,
		CreatedAt:       cdb.CreatedAt,
		UpdatedAt:       cdb.UpdatedAt,
	}, nil
}

func toDBContribution(c *contribution.Contribution) *contributionDB {
	return &contributionDB{
		Id:              c.Id.String(),
		UserId:          c.UserId.String(),
		Category:        string(c.Category),
		Amount:          c.Amount,
		FairMarketValue: c.FairMarketValue,
		Multiplier:      c.Multiplier,
		Slices:          c.Slices,
		Description:     c.Description,
		Date:            c.Date,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func (r *ContributionRepository) Create(ctx context.Context, c *contribution.Contribution) error {
	cdb := toDBContribution(c)
	if err := r.DB.WithContext(ctx).Table("contributions").Create(cdb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *ContributionRepository) Update(ctx context.Context, c *contribution.Contribution) error {
	cdb := toDBContribution(c)
	if err := r.DB.WithContext(ctx).Table("contributions").Where("id = ?", cdb.Id).Select("*").Updates(cdb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *ContributionRepository) Delete(ctx context.Context, id ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("contributions").Where("id = ?", id.String()).Delete(&contributionDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrContributionNotFound
	}
	return nil
}

func (r *ContributionRepository) DeleteMany(ctx context.Context, ids []ulid.ULID) (int64, error) {
	strIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		strIDs = append(strIDs, id.String())
	}

	result := r.DB.WithContext(ctx).Table("contributions").Where("id IN ?", strIDs).Delete(&contributionDB{})
	if result.Error != nil {
		return 0, appErrors.NewDatabaseError(result.Error)
	}
	return result.RowsAffected, nil
}

func (r *ContributionRepository) GetByID(ctx context.Context, id ulid.ULID) (*contribution.Contribution, error) {
	var cdb contributionDB
	err := r.DB.WithContext(ctx).Table("contributions c").
		Select("c.*, u.name as user_name").
		Joins("LEFT JOIN users u ON c.user_id = u.id").
		Where("c.id = ?", id.String()).
		First(&cdb).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrContributionNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainContribution(&cdb)
}

func applyContributionFilters(query *gorm.DB, filters *contribution.Filters) *gorm.DB {
	if filters == nil {
		return query
	}

	if filters.UserID != nil {
		query = query.Where("c.user_id = ?", filters.UserID.String())
	}
	if filters.Category != nil && *filters.Category != "" {
		query = query.Where("c.category = ?", string(*filters.Category))
	}
	if filters.Search != nil && *filters.Search != "" {
		query = query.Where("c.description ILIKE ?", "%"+*filters.Search+"%")
	}
	if filters.DateFrom != nil {
		query = query.Where("c.date >= ?", *filters.DateFrom)
	}
	if filters.DateTo != nil {
		query = query.Where("c.date <= ?", *filters.DateTo)
	}

	return query
}

func (r *ContributionRepository) GetAll(ctx context.Context, filters *contribution.Filters, pagination *pkg.PaginationParams) ([]*contribution.Contribution, int64, error) {
	query := applyContributionFilters(
		r.DB.WithContext(ctx).Table("contributions c").
			Select("c.*, u.name as user_name").
			Joins("LEFT JOIN users u ON c.user_id = u.id"),
		filters,
	)

	items, total, err := pkg.Paginate[contribution.Contribution, contributionDB](
		query, pagination, "c.date DESC, c.created_at DESC", toDomainContribution)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return items, total, nil
}

func (r *ContributionRepository) ListAll(ctx context.Context, filters *contribution.Filters) ([]*contribution.Contribution, error) {
	query := applyContributionFilters(
		r.DB.WithContext(ctx).Table("contributions c").
			Select("c.*, u.name as user_name").
			Joins("LEFT JOIN users u ON c.user_id = u.id"),
		filters,
	)

	var rows []contributionDB
	if err := query.Order("c.date ASC, c.created_at ASC").Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	out := make([]*contribution.Contribution, 0, len(rows))
	for i := range rows {
		item, err := toDomainContribution(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}
