package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wekeepgrowing/loan-eligibility-service/internal/usecase"
)

// ReportHandler serves eligibility reports
type ReportHandler struct {
	reports *usecase.ReportService
}

// NewReportHandler creates a new report handler instance
func NewReportHandler(reports *usecase.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// LatestChecks handles GET /get-all-eligiblity-checks/
func (h *ReportHandler) LatestChecks(c echo.Context) error {
	views, err := h.reports.LatestChecks(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}
