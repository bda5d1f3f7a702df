package validators

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterAll installs the name and type hooks every request contract relies on.
func RegisterAll(validate *validator.Validate) {
	validate.RegisterTagNameFunc(JSONFieldName)
	validate.RegisterCustomTypeFunc(DecimalValue, decimal.Decimal{})
}

// JSONFieldName reports fields by their wire name instead of the Go one.
func JSONFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}

	if name == "" {
		return field.Name
	}
	return name
}

// DecimalValue lets numeric tags such as gt=0 operate on decimal amounts.
func DecimalValue(field reflect.Value) any {
	d, ok := field.Interface().(decimal.Decimal)
	if !ok {
		return nil
	}

	f, _ := d.Float64()
	return f
}
