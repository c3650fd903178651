package repositories

import (
	"encoding/xml"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yigit/classworks/internal/pkg/apperrors"
	"github.com/yigit/classworks/internal/pkg/helpers"
)

// decodeXMLFile decodes the whole document at path into v
func decodeXMLFile(path string, v interface{}) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	if err := xml.NewDecoder(file).Decode(v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}

// parseInt fails on an empty value, an element that is present must hold a number
func parseInt(field, value string) (int, error) {
	value = strings.TrimSpace(value)
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, invalidField(field, value, err)
	}
	return n, nil
}

// optionalInt is zero when the element or attribute is absent
func optionalInt(field string, value *string) (int, error) {
	if value == nil {
		return 0, nil
	}
	return parseInt(field, *value)
}

// optionalFloat is zero when the element is absent and fails on an empty one
func optionalFloat(field string, value *string) (float64, error) {
	if value == nil {
		return 0, nil
	}
	raw := strings.TrimSpace(*value)
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, invalidField(field, raw, err)
	}
	return f, nil
}

func parseDecimal(field, value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, invalidField(field, value, err)
	}
	return d, nil
}

func parseDate(field, value string) (time.Time, error) {
	t, err := helpers.ParseDate(value)
	if err != nil {
		return time.Time{}, invalidField(field, value, err)
	}
	return t, nil
}

func invalidField(field, value string, cause error) error {
	return apperrors.NewInvalidRecordError(fmt.Sprintf("invalid %s %q: %v", field, value, cause)).
		WithDetails(map[string]interface{}{"field": field, "value": value})
}

func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}
