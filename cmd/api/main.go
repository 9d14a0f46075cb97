package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"grandhorizon/internal/agent"
	"grandhorizon/internal/catalog"
	"grandhorizon/internal/config"
	"grandhorizon/internal/database"
	"grandhorizon/internal/middleware"
	"grandhorizon/internal/modules/callback"
	"grandhorizon/internal/modules/info"
	"grandhorizon/internal/modules/reservation"
	jwtsvc "grandhorizon/internal/pkg/jwt"
	"grandhorizon/internal/pkg/logger"
	"grandhorizon/internal/repository"
	"grandhorizon/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zlog, err := logger.New(cfg.IsProduction())
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("database connection failed", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		zlog.Fatal("migration failed", zap.Error(err))
	}

	cat := catalog.Default()
	reservations := store.New()
	ticketRepo := repository.NewCallbackRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.ServiceTokenTTL)

	reservationService := reservation.NewService(reservations, cat)
	reservationHandler := reservation.NewHandler(reservationService)

	callbackService := callback.NewService(ticketRepo)
	callbackHandler := callback.NewHandler(callbackService)

	infoService := info.NewService(cat)
	infoHandler := info.NewHandler(infoService)

	registry := agent.DefaultRegistry(reservationService, callbackService, infoService)
	agentHandler := agent.NewHandler(registry, zlog)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestLogger(zlog))
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public
		infoHandler.RegisterRoutes(v1)

		// the orchestrator authenticates with a service token
		protected := v1.Group("/")
		protected.Use(middleware.ServiceAuth(j))
		{
			reservationHandler.RegisterRoutes(protected)
			callbackHandler.RegisterRoutes(protected)
			agentHandler.RegisterRoutes(protected)
		}
	}

	zlog.Info("listening", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))
	if err := r.Run(":" + cfg.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
