package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/dto"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/usecase"
)

// AdminHandler handles admin account requests
type AdminHandler struct {
	logger *zap.Logger
	admins *usecase.AdminService
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(logger *zap.Logger, admins *usecase.AdminService) *AdminHandler {
	return &AdminHandler{
		logger: logger,
		admins: admins,
	}
}

// Login handles POST /admin/login/
func (h *AdminHandler) Login(c echo.Context) error {
	var req dto.AdminLoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	resp, err := h.admins.Login(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// Create handles POST /admin/
func (h *AdminHandler) Create(c echo.Context) error {
	var req dto.AdminCreateRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	admin, err := h.admins.Create(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, admin)
}

// Update handles PUT /admin/:id/
func (h *AdminHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.AdminUpdateRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	admin, err := h.admins.Update(c.Request().Context(), id, &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, admin)
}

// List handles GET /admin/
func (h *AdminHandler) List(c echo.Context) error {
	admins, err := h.admins.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, admins)
}

// AllowOpenCreate lets POST /admin/ through without a token until the first
// admin exists.
func (h *AdminHandler) AllowOpenCreate(c echo.Context) bool {
	if c.Request().Method != http.MethodPost {
		return false
	}
	open, err := h.admins.AllowOpenCreate(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to count admins", zap.Error(err))
		return false
	}
	return open
}
