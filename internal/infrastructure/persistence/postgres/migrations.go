package postgres

import (
	"context"
	"fmt"

	"github.com/rafabene/casadf-backend/internal/domain/entities"
)

// Migrate cria ou atualiza as tabelas de todas as entidades
func Migrate(ctx context.Context, h Handle) error {
	db, err := h.DB(ctx)
	if err != nil {
		return err
	}
	if err := db.AutoMigrate(entities.All()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// Ping verifica se o banco responde
func Ping(ctx context.Context, h Handle) error {
	db, err := h.DB(ctx)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}
