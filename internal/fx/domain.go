package fx

import (
	"github.com/AhmedHodiani/slicing-pie/config"
	"github.com/AhmedHodiani/slicing-pie/internal/domain/auth"
	"github.com/AhmedHodiani/slicing-pie/internal/domain/contribution"
	"github.com/AhmedHodiani/slicing-pie/internal/domain/dashboard"
	"github.com/AhmedHodiani/slicing-pie/internal/domain/file"
	"github.com/AhmedHodiani/slicing-pie/internal/domain/importer"
	"github.com/AhmedHodiani/slicing-pie/internal/domain/report"
	"github.com/AhmedHodiani/slicing-pie/internal/domain/user"
	"github.com/AhmedHodiani/slicing-pie/internal/infrastructure"
	"github.com/AhmedHodiani/slicing-pie/internal/logger"

	"go.uber.org/fx"
)

// DomainModule fornece todos os services do domínio
var DomainModule = fx.Module("domain",
	fx.Provide(
		newUserService,

		// Auth service (requer GoogleClientID)
		newGoogleClientID,
		newAuthService,

		newContributionService,
		newImporterService,
		newDashboardService,
		newReportService,
		newFileService,
	),
)

func newUserService(repo *infrastructure.UserRepository) *user.Service {
	return user.NewService(repo)
}

func newGoogleClientID(cfg *config.Config) string {
	googleClientID := ""
	if cfg.Google.Enabled {
		if cfg.Google.ClientID == "" {
			logger.Warn().
				Msg("GOOGLE_OAUTH_ENABLED=true mas GOOGLE_OAUTH_CLIENT_ID está vazio. Verifique se a variável está definida no arquivo .env")
		} else {
			googleClientID = cfg.Google.ClientID
		}
	}
	return googleClientID
}

func newAuthService(
	repo *infrastructure.UserRepository,
	userSvc *user.Service,
	googleClientID string,
) *auth.Service {
	return auth.NewService(repo, userSvc, googleClientID)
}

func newContributionService(
	repo *infrastructure.ContributionRepository,
	userSvc *user.Service,
) *contribution.Service {
	return &contribution.Service{
		Repository:  repo,
		UserService: userSvc,
	}
}

func newImporterService(
	userSvc *user.Service,
	contributionSvc *contribution.Service,
) *importer.Service {
	return &importer.Service{
		UserService:         userSvc,
		ContributionService: contributionSvc,
	}
}

func newDashboardService(repo *infrastructure.DashboardRepository) *dashboard.Service {
	return &dashboard.Service{Repository: repo}
}

func newReportService(
	contributionRepo *infrastructure.ContributionRepository,
	userRepo *infrastructure.UserRepository,
) *report.Service {
	return &report.Service{
		Contributions: contributionRepo,
		Users:         userRepo,
	}
}

func newFileService(
	repo *infrastructure.FileRepository,
	storage *infrastructure.DiskStorage,
) *file.Service {
	return &file.Service{
		Repository: repo,
		Storage:    storage,
	}
}
