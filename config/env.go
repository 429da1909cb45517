// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

var (
	errExpectedPointerToStruct = errors.New("expected a pointer to a struct")
	errUnsupportedSliceType    = errors.New("unsupported slice type")
	errUnsupportedFieldType    = errors.New("unsupported field type")
)

// readEnv populates the struct pointed to by target from the environment
// variables named in its `env` tags. Nested structs are walked recursively.
//
// A tag of the form `env:"NAME,overwrite"` replaces any value already set;
// without "overwrite" the variable only fills a zero field.
func readEnv(target any) error {
	structValue := reflect.ValueOf(target)
	if structValue.Kind() != reflect.Ptr {
		return fmt.Errorf("%w, got %s", errExpectedPointerToStruct, structValue.Kind())
	}

	structValue = structValue.Elem()
	if structValue.Kind() != reflect.Struct {
		return fmt.Errorf("%w, got a pointer to %s", errExpectedPointerToStruct, structValue.Kind())
	}

	structType := structValue.Type()

	for i := range structValue.NumField() {
		field := structValue.Field(i)
		fieldType := structType.Field(i)

		if !fieldType.IsExported() {
			continue
		}

		tag, ok := fieldType.Tag.Lookup("env")
		if !ok {
			if field.Kind() == reflect.Struct {
				if err := readEnv(field.Addr().Interface()); err != nil {
					return err
				}
			}

			continue
		}

		name, overwrite := parseEnvTag(tag)

		envValue, exists := os.LookupEnv(name)
		if !exists || !field.CanSet() {
			continue
		}

		if !overwrite && !field.IsZero() {
			continue
		}

		if err := setFieldValue(field, fieldType.Name, name, envValue); err != nil {
			return err
		}
	}

	return nil
}

// parseEnvTag splits `NAME,overwrite` into its parts.
func parseEnvTag(tag string) (string, bool) {
	parts := strings.Split(tag, ",")

	return parts[0], slices.Contains(parts[1:], "overwrite")
}

// setFieldValue parses envValue into field according to the field's kind.
func setFieldValue(field reflect.Value, fieldName, envVarName, envValue string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(envValue)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		intValue, err := strconv.ParseInt(strings.TrimSpace(envValue), 10, 64)
		if err != nil {
			return fmt.Errorf(
				"failed to parse int for %s from env var %s (%s): %w",
				fieldName, envVarName, envValue, err)
		}

		field.SetInt(intValue)
	case reflect.Bool:
		boolValue, err := strconv.ParseBool(strings.TrimSpace(envValue))
		if err != nil {
			return fmt.Errorf(
				"failed to parse bool for %s from env var %s (%s): %w",
				fieldName, envVarName, envValue, err)
		}

		field.SetBool(boolValue)
	case reflect.Slice:
		if field.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("%w for field %s", errUnsupportedSliceType, fieldName)
		}

		field.Set(reflect.ValueOf(splitList(envValue)))
	default:
		return fmt.Errorf("%w for field %s: %s", errUnsupportedFieldType, fieldName, field.Kind())
	}

	return nil
}

// splitList splits a comma-separated value, dropping empty items.
func splitList(s string) []string {
	values := strings.Split(s, ",")
	trimmed := make([]string, 0, len(values))

	for _, value := range values {
		if v := strings.TrimSpace(value); v != "" {
			trimmed = append(trimmed, v)
		}
	}

	return trimmed
}
