package fx

import (
	"context"

	"github.com/AhmedHodiani/slicing-pie/config"
	"github.com/AhmedHodiani/slicing-pie/internal/logger"
	"github.com/AhmedHodiani/slicing-pie/internal/middleware"
	"github.com/AhmedHodiani/slicing-pie/internal/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

// ServerModule fornece a configuração do servidor HTTP
var ServerModule = fx.Module("server",
	fx.Provide(
		newRouter,
	),
	fx.Invoke(
		setupRoutes,
	),
)

func newRouter() *gin.Engine {
	return gin.Default()
}

func setupRoutes(
	lc fx.Lifecycle,
	cfg *config.Config,
	router *gin.Engine,
	handler *routes.Handler,
	jwtSvc *middleware.JwtService,
	authRateLimiter *middleware.RateLimiter,
) {
	router.Use(middleware.CORSMiddleware(cfg.Server.AllowedOrigins))

	public := router.Group("/api")
	public.Use(middleware.RateLimit(authRateLimiter))
	{
		public.POST("/auth/login", handler.Authenticate)
		public.POST("/auth/register", handler.Registration)
		public.POST("/auth/google", handler.GoogleAuth)
	}

	private := router.Group("/api")
	private.Use(middleware.AuthMiddleware(jwtSvc))
	private.Use(middleware.RateLimitByUser())
	{
		private.GET("/auth/me", handler.Me)
		private.POST("/auth/refresh", handler.RefreshToken)
		private.PATCH("/auth/password", handler.ChangePassword)

		private.GET("/dashboard", handler.GetDashboard)
		private.POST("/dashboard/project", handler.ProjectContribution)

		users := private.Group("/users")
		{
			users.GET("", handler.ListUsers)
			users.PATCH("/me", handler.UpdateProfile)
			users.POST("", middleware.RequireAdmin(), handler.CreateUser)
			users.PATCH("/:id", middleware.RequireAdmin(), handler.UpdateUser)
			users.DELETE("/:id", middleware.RequireAdmin(), handler.DeleteUser)
		}

		// viewers só leem; toda mutação de contribuição exige admin
		contributions := private.Group("/contributions")
		{
			contributions.GET("", handler.GetContributions)
			contributions.GET("/:id", handler.GetContribution)
			contributions.POST("", middleware.RequireAdmin(), handler.CreateContribution)
			contributions.PATCH("/:id", middleware.RequireAdmin(), handler.UpdateContribution)
			contributions.DELETE("/:id", middleware.RequireAdmin(), handler.DeleteContribution)
			contributions.POST("/bulk-delete", middleware.RequireAdmin(), handler.BulkDeleteContributions)
		}

		importGroup := private.Group("/import")
		importGroup.Use(middleware.RequireAdmin())
		{
			importGroup.POST("/preview", handler.PreviewImport)
			importGroup.POST("/execute", handler.ExecuteImport)
		}

		private.GET("/reports/ledger", handler.GetLedgerReport)

		files := private.Group("/files")
		{
			files.POST("", handler.UploadFile)
			files.GET("", handler.ListFiles)
			files.GET("/:id/download", handler.DownloadFile)
			files.DELETE("/:id", handler.DeleteFile)
		}
	}

	serverAddr := ":" + cfg.Server.Port
	logger.Info().
		Str("address", serverAddr).
		Str("environment", cfg.App.Environment).
		Msg("Servidor iniciando")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := router.Run(serverAddr); err != nil {
					logger.Fatal().Err(err).Msg("Falha ao iniciar servidor")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Servidor parando...")
			return nil
		},
	})
}
