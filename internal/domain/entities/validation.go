package entities

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	domainerrors "github.com/rafabene/casadf-backend/internal/domain/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Reportar o nome do campo como aparece no JSON
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Validate aplica as regras declaradas nas tags `validate` e converte a primeira
// violação em um DomainError de validação.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		fe := fieldErrors[0]
		if fe.Tag() == "oneof" {
			return domainerrors.NewValidationError(fe.Field(), fmt.Sprintf("has unknown value %q", fmt.Sprint(fe.Value())))
		}
		return domainerrors.NewValidationError(fe.Field(), fmt.Sprintf("failed on '%s'", fe.Tag()))
	}
	return err
}
