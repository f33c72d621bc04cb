package fx

import (
	"github.com/AhmedHodiani/slicing-pie/config"
	"github.com/AhmedHodiani/slicing-pie/internal/infrastructure"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		newDatabase,
		newUserRepository,
		newContributionRepository,
		newDashboardRepository,
		newFileRepository,
		newDiskStorage,
	),
)

func newDatabase(cfg *config.Config) (*gorm.DB, error) {
	return infrastructure.NewDb(cfg)
}

func newUserRepository(db *gorm.DB) *infrastructure.UserRepository {
	return &infrastructure.UserRepository{DB: db}
}

func newContributionRepository(db *gorm.DB) *infrastructure.ContributionRepository {
	return &infrastructure.ContributionRepository{DB: db}
}

func newDashboardRepository(db *gorm.DB) *infrastructure.DashboardRepository {
	return infrastructure.NewDashboardRepository(db)
}

func newFileRepository(db *gorm.DB) *infrastructure.FileRepository {
	return &infrastructure.FileRepository{DB: db}
}

func newDiskStorage(cfg *config.Config) (*infrastructure.DiskStorage, error) {
	return infrastructure.NewDiskStorage(cfg.Storage.Dir)
}
