package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/dto"
	domainErrors "github.com/wekeepgrowing/loan-eligibility-service/internal/domain/errors"
	apperrors "github.com/wekeepgrowing/loan-eligibility-service/pkg/errors"
)

// handleError renders errors that need a body other than the central error
// handler's. Everything else is returned to echo unchanged.
func handleError(c echo.Context, err error) error {
	var throttled *domainErrors.ThrottleError
	switch {
	case errors.As(err, &throttled):
		next := throttled.NextEligibleOn.Format(time.DateOnly)
		return c.JSON(http.StatusForbidden, dto.RestrictedResponse{
			Status:         "restricted",
			Message:        fmt.Sprintf("Eligibility was already checked. You can check again on %s.", next),
			LastCheckedOn:  throttled.LastCheckedOn.Format(time.DateOnly),
			NextEligibleOn: next,
		})
	case errors.Is(err, domainErrors.ErrBlobStoreDisabled):
		return apperrors.NewAppError(apperrors.ErrNotImplemented, "image uploads are not configured", err)
	}
	return err
}

// bind decodes the request body into req and validates it.
func bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return apperrors.NewAppError(apperrors.ErrInvalidArgument, "invalid request body", err)
	}
	return c.Validate(req)
}

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.NewFieldError(name, "must be a positive integer")
	}
	return uint(id), nil
}

// queryID parses an optional positive integer query parameter.
func queryID(c echo.Context, name string) (*uint, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return nil, apperrors.NewFieldError(name, "must be a positive integer")
	}
	v := uint(id)
	return &v, nil
}
