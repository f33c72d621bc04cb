package infrastructure

import (
	"context"

	"github.com/AhmedHodiani/slicing-pie/internal/domain/contribution"
	"github.com/AhmedHodiani/slicing-pie/internal/domain/dashboard"
	"github.com/AhmedHodiani/slicing-pie/internal/domain/user"

	"gorm.io/gorm"
)

// DashboardRepository carrega o universo inteiro de usuários e
// contribuições. A agregação acontece em memória no domínio.
type DashboardRepository struct {
	Users         *UserRepository
	Contributions *ContributionRepository
}

var _ dashboard.Repository = (*DashboardRepository)(nil)

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{
		Users:         &UserRepository{DB: db},
		Contributions: &ContributionRepository{DB: db},
	}
}

func (r *DashboardRepository) ListUsers(ctx context.Context) ([]*user.User, error) {
	return r.Users.List(ctx)
}

func (r *DashboardRepository) ListContributions(ctx context.Context) ([]*contribution.Contribution, error) {
	return r.Contributions.ListAll(ctx, nil)
}
