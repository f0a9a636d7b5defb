package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/dto"
)

// ListCategories handles GET /company-categories/
func (h *ReferenceHandler) ListCategories(c echo.Context) error {
	categories, err := h.reference.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

// GetCategory handles GET /company-categories/:id/
func (h *ReferenceHandler) GetCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	item, err := h.reference.GetCategory(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// CreateCategory handles POST /company-categories/
func (h *ReferenceHandler) CreateCategory(c echo.Context) error {
	var req dto.NameRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	item, err := h.reference.CreateCategory(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// UpdateCategory handles PUT /company-categories/:id/
func (h *ReferenceHandler) UpdateCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.NameRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	item, err := h.reference.UpdateCategory(c.Request().Context(), id, &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// DeleteCategory handles DELETE /company-categories/:id/
func (h *ReferenceHandler) DeleteCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.reference.DeleteCategory(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListCompanies handles GET /companies/
func (h *ReferenceHandler) ListCompanies(c echo.Context) error {
	companies, err := h.reference.ListCompanies(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, companies)
}

// GetCompany handles GET /companies/:id/
func (h *ReferenceHandler) GetCompany(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	item, err := h.reference.GetCompany(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// CreateCompany handles POST /companies/
func (h *ReferenceHandler) CreateCompany(c echo.Context) error {
	var req dto.CompanyRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	item, err := h.reference.CreateCompany(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// UpdateCompany handles PUT /companies/:id/
func (h *ReferenceHandler) UpdateCompany(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.CompanyRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	item, err := h.reference.UpdateCompany(c.Request().Context(), id, &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// DeleteCompany handles DELETE /companies/:id/
func (h *ReferenceHandler) DeleteCompany(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.reference.DeleteCompany(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListSalaryCriteria handles GET /salary-criteria/, optionally filtered by ?product_id=
func (h *ReferenceHandler) ListSalaryCriteria(c echo.Context) error {
	productID, err := queryID(c, "product_id")
	if err != nil {
		return err
	}
	criteria, err := h.reference.ListSalaryCriteria(c.Request().Context(), productID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, criteria)
}

// GetSalaryCriteria handles GET /salary-criteria/:id/
func (h *ReferenceHandler) GetSalaryCriteria(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	item, err := h.reference.GetSalaryCriteria(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// CreateSalaryCriteria handles POST /salary-criteria/
func (h *ReferenceHandler) CreateSalaryCriteria(c echo.Context) error {
	var req dto.SalaryCriteriaRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	item, err := h.reference.CreateSalaryCriteria(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// UpdateSalaryCriteria handles PUT /salary-criteria/:id/
func (h *ReferenceHandler) UpdateSalaryCriteria(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.SalaryCriteriaRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	item, err := h.reference.UpdateSalaryCriteria(c.Request().Context(), id, &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// DeleteSalaryCriteria handles DELETE /salary-criteria/:id/
func (h *ReferenceHandler) DeleteSalaryCriteria(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.reference.DeleteSalaryCriteria(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
