package fx

import (
	"github.com/AhmedHodiani/slicing-pie/config"
	"github.com/AhmedHodiani/slicing-pie/internal/domain/user"
	"github.com/AhmedHodiani/slicing-pie/internal/middleware"

	"go.uber.org/fx"
)

var MiddlewareModule = fx.Module("middleware",
	fx.Provide(
		newJwtService,
	),
)

func newJwtService(cfg *config.Config, userSvc *user.Service) (*middleware.JwtService, error) {
	return middleware.NewJwtService(cfg.JWT, userSvc)
}
