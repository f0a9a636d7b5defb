package database

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wekeepgrowing/loan-eligibility-service/internal/config"
)

// NewInMemory opens a migrated, private SQLite database. It backs
// repository and handler tests and local runs without PostgreSQL.
func NewInMemory(logger *zap.Logger) (*gorm.DB, error) {
	cfg := &config.DatabaseConfig{
		Driver:       "sqlite",
		Name:         fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString()),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}

	db, err := NewConnection(cfg, logger)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db, logger); err != nil {
		return nil, err
	}
	if err := EnsureDefaults(db, logger); err != nil {
		return nil, err
	}
	return db, nil
}
