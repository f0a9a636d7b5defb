package repository

import "context"

// CRUDRepository is the persistence surface shared by reference data.
// GetByID, Update and Delete return errors.ErrNotFound for unknown ids and
// writes return errors.ErrDuplicate on unique key violations.
type CRUDRepository[T any] interface {
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*T, error)
	List(ctx context.Context) ([]T, error)
}
