package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// TagFraction accepts a decimal string within [0, 1], e.g. "0.1"
const TagFraction = "fraction"

// New returns a validator with the classwork rules registered
func New() (*validator.Validate, error) {
	v := validator.New()
	if err := v.RegisterValidation(TagFraction, isFraction); err != nil {
		return nil, fmt.Errorf("register %s rule: %w", TagFraction, err)
	}
	return v, nil
}

func isFraction(fl validator.FieldLevel) bool {
	d, ok := parseDecimal(fl)
	return ok && !d.IsNegative() && d.LessThanOrEqual(decimal.NewFromInt(1))
}

func parseDecimal(fl validator.FieldLevel) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
