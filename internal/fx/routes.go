package fx

import (
	"time"

	"github.com/AhmedHodiani/slicing-pie/internal/domain/auth"
	"github.com/AhmedHodiani/slicing-pie/internal/domain/contribution"
	"github.com/AhmedHodiani/slicing-pie/internal/domain/dashboard"
	"github.com/AhmedHodiani/slicing-pie/internal/domain/file"
	"github.com/AhmedHodiani/slicing-pie/internal/domain/importer"
	"github.com/AhmedHodiani/slicing-pie/internal/domain/report"
	"github.com/AhmedHodiani/slicing-pie/internal/domain/user"
	"github.com/AhmedHodiani/slicing-pie/internal/middleware"
	"github.com/AhmedHodiani/slicing-pie/internal/routes"

	"go.uber.org/fx"
)

// RoutesModule fornece handlers e rate limiters
var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
		newAuthRateLimiter,
	),
)

func newHandler(
	userSvc *user.Service,
	authSvc *auth.Service,
	jwtSvc *middleware.JwtService,
	contributionSvc *contribution.Service,
	dashboardSvc *dashboard.Service,
	importerSvc *importer.Service,
	reportSvc *report.Service,
	fileSvc *file.Service,
) *routes.Handler {
	return &routes.Handler{
		UserService:         userSvc,
		AuthService:         authSvc,
		JwtService:          jwtSvc,
		ContributionService: contributionSvc,
		DashboardService:    dashboardSvc,
		ImporterService:     importerSvc,
		ReportService:       reportSvc,
		FileService:         fileSvc,
	}
}

func newAuthRateLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(100, time.Minute)
}
