package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/dto"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/usecase"
)

// InterestHandler handles customer interest requests
type InterestHandler struct {
	logger    *zap.Logger
	interests *usecase.InterestService
}

// NewInterestHandler creates a new interest handler instance
func NewInterestHandler(logger *zap.Logger, interests *usecase.InterestService) *InterestHandler {
	return &InterestHandler{
		logger:    logger,
		interests: interests,
	}
}

// Record handles POST /customer-interests/
func (h *InterestHandler) Record(c echo.Context) error {
	var req dto.InterestRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	view, err := h.interests.Record(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, view)
}

// List handles GET /customer-interests/
func (h *InterestHandler) List(c echo.Context) error {
	resp, err := h.interests.List(c.Request().Context(), nil)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// ListByCustomer handles GET /customer-interests/customer/:customer_id/
func (h *InterestHandler) ListByCustomer(c echo.Context) error {
	customerID, err := pathID(c, "customer_id")
	if err != nil {
		return err
	}
	resp, err := h.interests.List(c.Request().Context(), &customerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}
