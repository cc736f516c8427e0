package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"RealEstateBackend/handlers"
	"RealEstateBackend/store"
	"RealEstateBackend/utils"
)

func RegisterRoutes(e *echo.Echo, st *store.Store, cache *utils.Cache, log *zap.Logger) {
	properties := handlers.NewPropertyController(st, cache, log)
	inquiries := handlers.NewInquiryController(st, log)
	status := handlers.NewStatusController(st)

	e.GET("/", handlers.ReadRoot)
	e.GET("/api/hello", handlers.Hello)
	e.GET("/health", handlers.HealthCheck)
	e.GET("/test", status.DatabaseStatus)

	e.GET("/api/properties", properties.ListProperties)
	e.GET("/api/properties/featured", properties.FeaturedProperties)
	e.GET("/api/properties/:id", properties.GetProperty)
	e.POST("/api/setup/seed", properties.SeedProperties)

	e.POST("/api/inquiries", inquiries.CreateInquiry)
}
