package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	domainerrors "github.com/rafabene/casadf-backend/internal/domain/errors"
)

var _ = Describe("translateError", func() {
	It("mantém o erro do postgres ao traduzir violação de unicidade", func() {
		pgErr := &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "properties_slug_key"}

		err := translateError("create properties", fmt.Errorf("insert: %w", pgErr))
		Expect(err).To(MatchError(domainerrors.ErrUniqueViolation))

		var got *pgconn.PgError
		Expect(errors.As(err, &got)).To(BeTrue())
		Expect(got.ConstraintName).To(Equal("properties_slug_key"))
	})

	It("não marca outras violações como unicidade", func() {
		err := translateError("create leads", &pgconn.PgError{Code: "23503"})
		Expect(errors.Is(err, domainerrors.ErrUniqueViolation)).To(BeFalse())
	})

	It("reconhece o texto do sqlite", func() {
		err := translateError("create users", errors.New("constraint failed: UNIQUE constraint failed: users.open_id (2067)"))
		Expect(err).To(MatchError(domainerrors.ErrUniqueViolation))
	})

	It("retorna nil sem erro", func() {
		Expect(translateError("noop", nil)).To(BeNil())
	})
})
