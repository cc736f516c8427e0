package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"RealEstateBackend/models"
	"RealEstateBackend/store"
)

const inquiryCollection = "inquiry"

type InquiryController struct {
	store *store.Store
	log   *zap.Logger
}

func NewInquiryController(st *store.Store, log *zap.Logger) *InquiryController {
	return &InquiryController{store: st, log: log}
}

func (ic *InquiryController) CreateInquiry(c echo.Context) error {
	var inquiry models.Inquiry
	if err := c.Bind(&inquiry); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&inquiry); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if _, err := ic.store.Create(context.Background(), inquiryCollection, inquiry); err != nil {
		ic.log.Error("failed to save inquiry", zap.Error(err))
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "Could not save inquiry"})
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
