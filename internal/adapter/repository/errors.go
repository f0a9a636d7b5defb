package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	domainErrors "github.com/wekeepgrowing/loan-eligibility-service/internal/domain/errors"
)

// translateError maps GORM errors onto domain errors. The connection must be
// opened with TranslateError so driver constraint errors arrive as GORM
// sentinels.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domainErrors.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", domainErrors.ErrDuplicate, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", domainErrors.ErrInvalidReference, err)
	}
	return err
}

// sqlStateSerializationFailure is the PostgreSQL code for a SERIALIZABLE
// transaction that lost a conflict.
const sqlStateSerializationFailure = "40001"

// isSerializationFailure reports whether err carries SQLSTATE 40001. The
// pgx error type exposes SQLState, so no driver package is needed here.
func isSerializationFailure(err error) bool {
	var stateErr interface{ SQLState() string }
	return errors.As(err, &stateErr) && stateErr.SQLState() == sqlStateSerializationFailure
}

// retrySerializable runs fn up to attempts times while it fails with a
// serialization failure. If the last attempt still conflicts the result is
// ErrConflict.
func retrySerializable(attempts int, fn func() error) error {
	var err error
	for i := 0; i < attempts; i++ {
		err = fn()
		if !isSerializationFailure(err) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", domainErrors.ErrConflict, err)
}
