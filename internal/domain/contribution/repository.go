package contribution

import (
	"context"

	"github.com/AhmedHodiani/slicing-pie/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, c *Contribution) error
	Update(ctx context.Context, c *Contribution) error
	Delete(ctx context.Context, id ulid.ULID) error
	DeleteMany(ctx context.Context, ids []ulid.ULID) (int64, error)
	GetByID(ctx context.Context, id ulid.ULID) (*Contribution, error)
	GetAll(ctx context.Context, filters *Filters, pagination *pkg.PaginationParams) ([]*Contribution, int64, error)
	ListAll(ctx context.Context, filters *Filters) ([]*Contribution, error)
}
