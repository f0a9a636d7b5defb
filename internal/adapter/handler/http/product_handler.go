package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/dto"
)

// ListProducts handles GET /products/
func (h *ReferenceHandler) ListProducts(c echo.Context) error {
	products, err := h.reference.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// ListProductsByBank handles GET /products/bank/:bank_id/
func (h *ReferenceHandler) ListProductsByBank(c echo.Context) error {
	bankID, err := pathID(c, "bank_id")
	if err != nil {
		return err
	}
	products, err := h.reference.ListProductsByBank(c.Request().Context(), bankID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /products/:id/
func (h *ReferenceHandler) GetProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	product, err := h.reference.GetProduct(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// CreateProduct handles POST /products/
func (h *ReferenceHandler) CreateProduct(c echo.Context) error {
	var req dto.ProductRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	product, err := h.reference.CreateProduct(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles PUT /products/:id/
func (h *ReferenceHandler) UpdateProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.ProductRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	product, err := h.reference.UpdateProduct(c.Request().Context(), id, &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /products/:id/
func (h *ReferenceHandler) DeleteProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.reference.DeleteProduct(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
