package routes

import (
	"context"

	_ "insurance_backoffice/docs"
	"insurance_backoffice/internal/adapter/http/handlers"
	"insurance_backoffice/internal/adapter/http/middleware"
	"insurance_backoffice/internal/infrastructure/config"
	"insurance_backoffice/internal/infrastructure/logger"
	"insurance_backoffice/internal/infrastructure/metrics"
	"insurance_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	zlog "github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run() {
	cfg := config.Load()
	logger.Setup(cfg.LogLevel, cfg.LogFormat)
	gin.SetMode(cfg.GinMode)

	repos, err := openStore(context.Background(), cfg)
	if err != nil {
		zlog.Fatal().Err(err).Str("driver", cfg.StoreDriver).Msg("[http][routes] failed to open store")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	router := NewRouter(cfg, repos, reg)
	zlog.Info().Str("port", cfg.Port).Str("driver", cfg.StoreDriver).Msg("[http][routes] listening")
	if err := router.Run(":" + cfg.Port); err != nil {
		zlog.Fatal().Err(err).Msg("[http][routes] failed to startup the application")
	}
}

// NewRouter wires use cases and handlers over repos and registers every route.
func NewRouter(cfg config.Config, repos Repositories, reg *prometheus.Registry) *gin.Engine {
	router := gin.New()
	m := metrics.New(reg)
	setMiddlewares(router, m)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	customerUseCase := usecase.NewCustomerUseCase(repos.Customers, m)
	policyUseCase := usecase.NewPolicyUseCase(repos.Policies, repos.Customers, m)
	claimUseCase := usecase.NewClaimUseCase(repos.Claims, repos.Policies, m)
	dashboardUseCase := usecase.NewDashboardUseCase(repos.Customers, repos.Policies, repos.Claims)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCustomerRoutes(v1, handlers.NewCustomerHandler(customerUseCase, policyUseCase))
	addPolicyRoutes(v1, handlers.NewPolicyHandler(policyUseCase, claimUseCase))
	addClaimRoutes(v1, handlers.NewClaimHandler(claimUseCase))
	addDashboardRoutes(v1, handlers.NewDashboardHandler(dashboardUseCase, cfg.DashboardRecentLimit))
	return router
}

func setMiddlewares(router *gin.Engine, m *metrics.Metrics) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(m))
	router.Use(middleware.Recovery())
}
