package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
)

// applyEnv overrides every field carrying an `env` tag whose variable is set.
// Nested structs are walked recursively.
func applyEnv(v reflect.Value) error {
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}

	for i := 0; i < v.NumField(); i++ {
		field, meta := v.Field(i), v.Type().Field(i)

		if field.Kind() == reflect.Struct {
			if err := applyEnv(field); err != nil {
				return err
			}
			continue
		}

		name, ok := meta.Tag.Lookup("env")
		if !ok {
			continue
		}
		raw, set := os.LookupEnv(name)
		if !set {
			continue
		}
		if err := assign(field, raw); err != nil {
			return fmt.Errorf("%s (field %s): %w", name, meta.Name, err)
		}
	}
	return nil
}

func assign(field reflect.Value, raw string) error {
	if !field.CanSet() {
		return fmt.Errorf("field is not settable")
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("not an integer: %w", err)
		}
		field.SetInt(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("not a boolean: %w", err)
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("unsupported kind %s", field.Kind())
	}
	return nil
}
