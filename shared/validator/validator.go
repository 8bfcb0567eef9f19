package validator

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"borrowdung/shared/constant"
	"borrowdung/shared/failure"

	"github.com/go-playground/form/v4"
	val "github.com/go-playground/validator/v10"
)

var (
	validate *val.Validate
	decoder  *form.Decoder
)

var messages = map[string]string{
	"required": "{field} wajib diisi",
	"notblank": "{field} wajib diisi",
	"gt":       "{field} harus lebih dari {param}",
	"gte":      "{field} minimal {param}",
	"min":      "{field} minimal {param} karakter",
	"max":      "{field} maksimal {param} karakter",
	"oneof":    "{field} harus salah satu dari {param}",
	"email":    "{field} harus berupa alamat email yang valid",
	"eqfield":  "{field} tidak sama",
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		if label := field.Tag.Get("label"); label != "" {
			return label
		}

		return field.Name
	})

	err := validate.RegisterValidation("notblank", func(fl val.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != constant.Empty
	})
	if err != nil {
		panic(err)
	}

	decoder = form.NewDecoder()
}

// Decode parses the submitted HTML form of r into data and validates it with the
// struct's `validate` tags. Field names in messages come from the `label` tag.
func Decode[T any](r *http.Request, data *T) error {
	if err := r.ParseForm(); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to parse form: %w", err)) //nolint:wrapcheck
	}

	if err := decoder.Decode(data, r.PostForm); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode form: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			errStr := messages[valErr.Tag()]
			if errStr != "" {
				errStr = strings.ReplaceAll(errStr, "{field}", valErr.Field())
				errStr = strings.ReplaceAll(errStr, "{param}", valErr.Param())

				return errStr
			}
		}

		return valErrors.Error()
	}

	return err.Error()
}
