package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	domainerrors "github.com/rafabene/casadf-backend/internal/domain/errors"
)

const pgUniqueViolation = "23505"

// translateError envolve o erro do driver com a operação. Violações de
// unicidade passam a casar também com ErrUniqueViolation.
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		return fmt.Errorf("%s: %w: %w", op, domainerrors.ErrUniqueViolation, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// isUniqueViolation depende do erro cru do driver: o gorm.Config não usa TranslateError
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	// sqlite (testes)
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
