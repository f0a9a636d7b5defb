package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/dto"
	domainErrors "github.com/wekeepgrowing/loan-eligibility-service/internal/domain/errors"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/usecase"
	apperrors "github.com/wekeepgrowing/loan-eligibility-service/pkg/errors"
)

// maxImageSize caps logo and card image uploads.
const maxImageSize = 5 << 20

// ReferenceHandler handles the lender reference data endpoints
type ReferenceHandler struct {
	logger    *zap.Logger
	reference *usecase.ReferenceService
}

// NewReferenceHandler creates a new reference data handler instance
func NewReferenceHandler(logger *zap.Logger, reference *usecase.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{
		logger:    logger,
		reference: reference,
	}
}

// ListBanks handles GET /banks/
func (h *ReferenceHandler) ListBanks(c echo.Context) error {
	banks, err := h.reference.ListBanks(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, banks)
}

// GetBank handles GET /banks/:id/
func (h *ReferenceHandler) GetBank(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	bank, err := h.reference.GetBank(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bank)
}

// CreateBank handles POST /banks/
func (h *ReferenceHandler) CreateBank(c echo.Context) error {
	var req dto.BankRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	bank, err := h.reference.CreateBank(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, bank)
}

// UpdateBank handles PUT /banks/:id/
func (h *ReferenceHandler) UpdateBank(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.BankRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	bank, err := h.reference.UpdateBank(c.Request().Context(), id, &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bank)
}

// DeleteBank handles DELETE /banks/:id/
func (h *ReferenceHandler) DeleteBank(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.reference.DeleteBank(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// BanksByPincodes handles GET /banks/pincode/:pincodes/
func (h *ReferenceHandler) BanksByPincodes(c echo.Context) error {
	resp, err := h.reference.BanksByPincodes(c.Request().Context(), c.Param("pincodes"))
	if errors.Is(err, domainErrors.ErrNoValidPincode) {
		return c.JSON(http.StatusBadRequest, resp)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// UploadBankLogo handles POST /banks/:id/logo/ with a multipart "image" file
func (h *ReferenceHandler) UploadBankLogo(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	file, err := c.FormFile("image")
	if err != nil {
		return apperrors.NewFieldError("image", "image file is required")
	}
	if file.Size > maxImageSize {
		return apperrors.NewFieldError("image", "image must be at most 5 MB")
	}
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	bank, err := h.reference.UploadBankLogo(c.Request().Context(), id, file.Filename, file.Header.Get("Content-Type"), src)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(http.StatusOK, bank)
}
