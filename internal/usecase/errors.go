package usecase

import (
	"errors"

	domainErrors "github.com/wekeepgrowing/loan-eligibility-service/internal/domain/errors"
	apperrors "github.com/wekeepgrowing/loan-eligibility-service/pkg/errors"
)

// notFound turns a repository ErrNotFound into a NOT_FOUND application error
// carrying message.
func notFound(err error, message string) error {
	if errors.Is(err, domainErrors.ErrNotFound) {
		return apperrors.NotFound(message)
	}
	return err
}

// writeError turns constraint violations into validation errors on field.
func writeError(err error, field, duplicateMessage string) error {
	switch {
	case errors.Is(err, domainErrors.ErrDuplicate):
		return apperrors.NewFieldError(field, duplicateMessage)
	case errors.Is(err, domainErrors.ErrInvalidReference):
		return apperrors.NewFieldError(field, "references a record that does not exist")
	case errors.Is(err, domainErrors.ErrConflict):
		return apperrors.NewAppError(apperrors.ErrConflict, "request conflicted with a concurrent update, please retry", err)
	}
	return err
}

// fieldErrors collects per-field validation messages.
type fieldErrors map[string]string

func (f fieldErrors) add(field, message string) {
	if _, ok := f[field]; !ok {
		f[field] = message
	}
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return apperrors.NewValidationError(f)
}
