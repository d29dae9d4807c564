package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound     = errors.New("error.user_not_found")
	ErrPropertyNotFound = errors.New("error.property_not_found")
	ErrLeadNotFound     = errors.New("error.lead_not_found")
	ErrPostNotFound     = errors.New("error.post_not_found")
)

// Persistence errors
var (
	// ErrDatabaseUnavailable indica que não há DATABASE_URL configurada
	// ou que a abertura do pool falhou.
	ErrDatabaseUnavailable = errors.New("error.database_unavailable")
	ErrUniqueViolation     = errors.New("error.unique_violation")
	ErrValidation          = errors.New("error.validation")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
//
//nolint:misspell
const (
	ProblemTypeValidation  = "/problems/validation-error"
	ProblemTypeNotFound    = "/problems/not-found"
	ProblemTypeConflict    = "/problems/conflict"
	ProblemTypeUnavailable = "/problems/service-unavailable"
	ProblemTypeInternal    = "/problems/internal-error"
	ProblemTypeBadRequest  = "/problems/bad-request"
)

// DomainError representa um erro de domínio com contexto adicional
type DomainError struct {
	Type    string
	Title   string
	Field   string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewValidationError cria um erro de validação para um campo
func NewValidationError(field, message string) *DomainError {
	return &DomainError{
		Type:    ProblemTypeValidation,
		Title:   "validation error",
		Field:   field,
		Message: field + " " + message,
		Err:     ErrValidation,
	}
}
