package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/dto"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/usecase"
)

// CustomerHandler handles customer intake requests
type CustomerHandler struct {
	logger    *zap.Logger
	customers *usecase.CustomerService
}

// NewCustomerHandler creates a new customer handler instance
func NewCustomerHandler(logger *zap.Logger, customers *usecase.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		logger:    logger,
		customers: customers,
	}
}

// CreateOrCheckEligibility handles POST /customer/create-or-eligible/
func (h *CustomerHandler) CreateOrCheckEligibility(c echo.Context) error {
	var req dto.CustomerIntakeRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	resp, err := h.customers.CreateOrCheckEligibility(c.Request().Context(), &req)
	if err != nil {
		return handleError(c, err)
	}

	status := http.StatusOK
	if resp.Status == usecase.StatusCreated {
		status = http.StatusCreated
	}
	return c.JSON(status, resp)
}
