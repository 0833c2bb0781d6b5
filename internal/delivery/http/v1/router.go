package v1

import (
	"social-workflow-web/config"
	"social-workflow-web/internal/delivery/http/middleware"
	"social-workflow-web/internal/delivery/http/web"
	"social-workflow-web/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	SignupUC      domain.SignupUsecase
	PostCreatorUC domain.PostCreatorUsecase
	SelectionUC   domain.SelectionUsecase
	HealthUC      domain.HealthUsecase
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins, !cfg.IsRelease())) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.Sentry())
	r.Use(middleware.SecurityHeadersMiddleware(cfg.SessionCookieSecure))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(cfg.RateLimitGlobalThreshold, cfg.RateLimitWindow())))
	r.Use(middleware.Session(cfg.SessionTTL(), cfg.SessionCookieSecure))
	r.Use(middleware.CSRFMiddleware(cfg.SessionCookieSecure))

	submitLimit := middleware.RateLimitMiddleware(middleware.SubmitRateLimitConfig(cfg.RateLimitSubmitThreshold, cfg.RateLimitWindow()))

	// Pages
	web.NewHandler(r, web.Deps{
		SignupUC:      deps.SignupUC,
		PostCreatorUC: deps.PostCreatorUC,
		SelectionUC:   deps.SelectionUC,
		SubmitLimit:   submitLimit,
	})

	// JSON API
	api := r.Group("/api/v1")
	NewSystemHandler(api, deps.HealthUC, cfg.AppVersion)
	NewSignupHandler(api, deps.SignupUC, submitLimit)
	NewPostCreatorHandler(api, deps.PostCreatorUC)
	NewSelectionHandler(api, deps.SelectionUC)

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
