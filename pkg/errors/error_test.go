package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsCode(t *testing.T) {
	inner := NotFound("bank not found")
	wrapped := Wrap(inner, "failed to load bank")

	assert.Equal(t, ErrNotFound, CodeOf(wrapped))
	assert.True(t, Is(wrapped, inner))
	assert.Nil(t, Wrap(nil, "noop"))
	assert.Equal(t, ErrInternal, CodeOf(Wrap(fmt.Errorf("boom"), "failed")))
}

func TestToHTTPBody(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantError  string
	}{
		{"validation", NewFieldError("pincode", "must be exactly 6 digits"), http.StatusBadRequest, ErrValidation, "validation failed"},
		{"restricted", NewAppError(ErrRestricted, "already checked today", nil), http.StatusForbidden, ErrRestricted, "already checked today"},
		{"not found", NotFound("product not found"), http.StatusNotFound, ErrNotFound, "product not found"},
		{"internal hides cause", NewAppError(ErrInternal, "db exploded at 10.0.0.1", nil), http.StatusInternalServerError, ErrInternal, "Internal Server Error"},
		{"plain error", fmt.Errorf("nil pointer"), http.StatusInternalServerError, ErrInternal, "Internal Server Error"},
		{"echo error", echo.NewHTTPError(http.StatusNotFound, "Not Found"), http.StatusNotFound, ErrNotFound, "Not Found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := ToHTTPBody(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, body["code"])
			assert.Equal(t, tt.wantError, body["error"])
		})
	}
}

func TestValidationErrorFields(t *testing.T) {
	err := NewValidationError(map[string]string{"email": "required"})
	_, body := ToHTTPBody(err)
	assert.Equal(t, map[string]string{"email": "required"}, body["fields"])
}
