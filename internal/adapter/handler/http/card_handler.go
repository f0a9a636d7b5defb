package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/dto"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/usecase"
	apperrors "github.com/wekeepgrowing/loan-eligibility-service/pkg/errors"
)

// CardHandler handles managed card requests
type CardHandler struct {
	logger *zap.Logger
	cards  *usecase.CardService
}

// NewCardHandler creates a new card handler instance
func NewCardHandler(logger *zap.Logger, cards *usecase.CardService) *CardHandler {
	return &CardHandler{
		logger: logger,
		cards:  cards,
	}
}

// ListActive handles GET /cards/active/
func (h *CardHandler) ListActive(c echo.Context) error {
	cards, err := h.cards.ListActive(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cards)
}

// List handles GET /cards/
func (h *CardHandler) List(c echo.Context) error {
	cards, err := h.cards.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cards)
}

// Get handles GET /cards/:id/
func (h *CardHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	card, err := h.cards.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, card)
}

// Create handles POST /cards/
func (h *CardHandler) Create(c echo.Context) error {
	var req dto.CardRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	card, err := h.cards.Create(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, card)
}

// Update handles PUT /cards/:id/
func (h *CardHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.CardRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	card, err := h.cards.Update(c.Request().Context(), id, &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, card)
}

// Delete handles DELETE /cards/:id/
func (h *CardHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.cards.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// UploadImage handles POST /cards/:id/image/ with a multipart "image" file
func (h *CardHandler) UploadImage(c echo.Context) error {
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

	card, err := h.cards.UploadImage(c.Request().Context(), id, file.Filename, file.Header.Get("Content-Type"), src)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(http.StatusOK, card)
}
