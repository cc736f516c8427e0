package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"RealEstateBackend/store"
)

func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func ReadRoot(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "Real Estate API is running"})
}

func Hello(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "Welcome to your real estate backend!"})
}

type StatusController struct {
	store *store.Store
}

func NewStatusController(st *store.Store) *StatusController {
	return &StatusController{store: st}
}

// DatabaseStatus reports whether the document store is reachable and which
// collections it holds, for quick deployment checks.
func (sc *StatusController) DatabaseStatus(c echo.Context) error {
	response := map[string]interface{}{
		"backend":           "running",
		"database":          "not available",
		"database_name":     nil,
		"connection_status": "not connected",
		"collections":       []string{},
	}

	collections, err := sc.store.Collections(context.Background())
	if err != nil {
		response["database"] = "error: " + err.Error()
		return c.JSON(http.StatusOK, response)
	}

	if len(collections) > 10 {
		collections = collections[:10]
	}
	response["database"] = "connected"
	response["database_name"] = sc.store.Name()
	response["connection_status"] = "connected"
	response["collections"] = collections
	return c.JSON(http.StatusOK, response)
}
