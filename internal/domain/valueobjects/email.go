package valueobjects

import (
	"regexp"
	"strings"

	domainerrors "github.com/rafabene/casadf-backend/internal/domain/errors"
)

var emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

// Email é um value object que garante que emails sejam sempre válidos
type Email struct {
	value string
}

// NewEmail cria um novo Email validado e normalizado (minúsculas, sem espaços)
func NewEmail(email string) (Email, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	if !isValidEmail(email) {
		return Email{}, domainerrors.NewValidationError("email", "is not a valid address")
	}

	return Email{value: email}, nil
}

// NormalizeOptional normaliza um email opcional vindo de formulário.
// nil ou vazio resultam em nil.
func NormalizeOptional(email *string) (*string, error) {
	if email == nil || strings.TrimSpace(*email) == "" {
		return nil, nil
	}
	e, err := NewEmail(*email)
	if err != nil {
		return nil, err
	}
	v := e.String()
	return &v, nil
}

// String retorna o valor do email
func (e Email) String() string {
	return e.value
}

func isValidEmail(email string) bool {
	if len(email) < 3 || len(email) > 320 {
		return false
	}
	return emailPattern.MatchString(email)
}
