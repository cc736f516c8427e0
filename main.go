package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"RealEstateBackend/config"
	"RealEstateBackend/handlers"
	appmiddleware "RealEstateBackend/middleware"
	"RealEstateBackend/routes"
	"RealEstateBackend/store"
	"RealEstateBackend/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	cfg := config.Load()

	st, err := store.Connect(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to document store", zap.Error(err))
	}
	defer st.Disconnect(context.Background())

	cache := utils.NewCache(cfg)
	defer cache.Close()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()

	e.Use(appmiddleware.RequestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	routes.RegisterRoutes(e, st, cache, logger)

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := e.Start(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
