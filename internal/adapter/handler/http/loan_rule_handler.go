package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/dto"
)

// ListLoanRules handles GET /loanrules/
func (h *ReferenceHandler) ListLoanRules(c echo.Context) error {
	rules, err := h.reference.ListLoanRules(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rules)
}

// GetLoanRule handles GET /loanrules/:id/
func (h *ReferenceHandler) GetLoanRule(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	item, err := h.reference.GetLoanRule(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// CreateLoanRule handles POST /loanrules/
func (h *ReferenceHandler) CreateLoanRule(c echo.Context) error {
	var req dto.LoanRuleRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	item, err := h.reference.CreateLoanRule(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// UpdateLoanRule handles PUT /loanrules/:id/
func (h *ReferenceHandler) UpdateLoanRule(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.LoanRuleRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	item, err := h.reference.UpdateLoanRule(c.Request().Context(), id, &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// DeleteLoanRule handles DELETE /loanrules/:id/
func (h *ReferenceHandler) DeleteLoanRule(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.reference.DeleteLoanRule(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListLoanRulesByBank handles GET /loanrules/bank/:bank_id/
func (h *ReferenceHandler) ListLoanRulesByBank(c echo.Context) error {
	bankID, err := pathID(c, "bank_id")
	if err != nil {
		return err
	}
	rules, err := h.reference.ListLoanRulesByBank(c.Request().Context(), bankID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rules)
}
