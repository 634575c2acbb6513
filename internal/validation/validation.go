// Package validation содержит проверку входных данных HTTP-запросов.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/mmeshcher/retail-store/internal/model"
)

// ErrInvalid возвращается, если запрос не прошёл проверку.
var ErrInvalid = errors.New("invalid request")

// Validator проверяет структуры запросов по тегам validate.
type Validator struct {
	validate *validator.Validate
}

// New создаёт валидатор с правилами для типов магазина:
// usertype, producttype и поддержкой decimal.Decimal в числовых сравнениях.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("usertype", func(fl validator.FieldLevel) bool {
		return model.UserType(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("producttype", func(fl validator.FieldLevel) bool {
		return model.ProductType(fl.Field().String()).Valid()
	})

	return &Validator{validate: v}
}

// Struct проверяет структуру и возвращает ошибку, оборачивающую ErrInvalid.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s failed on %s", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}
