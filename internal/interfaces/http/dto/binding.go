package dto

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	phonePattern      = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	personNamePattern = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s]+$`)
)

// RegisterValidations teaches gin's validator engine the request-level rules
// the standard tags cannot express. decimal.Decimal is surfaced as its
// float64 value so numeric tags such as gt=0 apply to price fields, and the
// phone/personname tags mirror the domain formats so malformed input is
// rejected at the binding boundary. Call once at startup, before the first
// request is bound.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}

	v.RegisterCustomTypeFunc(decimalToFloat, decimal.Decimal{})

	if err := v.RegisterValidation("phone", matchPattern(phonePattern)); err != nil {
		return err
	}
	return v.RegisterValidation("personname", matchPattern(personNamePattern))
}

func decimalToFloat(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

func matchPattern(pattern *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	}
}
