// Package coerce holds the loosely typed scalars accepted on the wire.
//
// Admin forms post numbers as strings ("1500") and booleans as "true"/"false".
// Int, Float and Bool accept both the JSON-native form and the string form, and
// the Parse helpers apply the same rules to multipart form values.
package coerce

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

var null = []byte("null")

type Int int

func (i *Int) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, null) {
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err == nil {
		v, err := ParseInt(num.String())
		if err != nil {
			return err
		}

		*i = Int(v)

		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("expected a number, got %s", data)
	}

	v, err := ParseInt(str)
	if err != nil {
		return err
	}

	*i = Int(v)

	return nil
}

type Float float64

func (f *Float) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, null) {
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err == nil {
		v, err := ParseFloat(num.String())
		if err != nil {
			return err
		}

		*f = Float(v)

		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("expected a number, got %s", data)
	}

	v, err := ParseFloat(str)
	if err != nil {
		return err
	}

	*f = Float(v)

	return nil
}

type Bool bool

func (b *Bool) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, null) {
		return nil
	}

	var native bool
	if err := json.Unmarshal(data, &native); err == nil {
		*b = Bool(native)

		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("expected a boolean, got %s", data)
	}

	*b = Bool(ParseBool(str))

	return nil
}

// ParseInt accepts integer text and also truncates decimal text ("12.9" -> 12).
func ParseInt(s string) (int, error) {
	s = strings.TrimSpace(s)

	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", s)
	}

	return int(f), nil
}

func ParseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}

	return v, nil
}

// ParseBool is true only for the literal "true".
func ParseBool(s string) bool {
	return strings.TrimSpace(s) == "true"
}

// IntPtr and the sibling helpers unwrap optional coerced values.
func IntPtr(v *Int) *int {
	if v == nil {
		return nil
	}

	i := int(*v)

	return &i
}

func FloatPtr(v *Float) *float64 {
	if v == nil {
		return nil
	}

	f := float64(*v)

	return &f
}

func BoolPtr(v *Bool) *bool {
	if v == nil {
		return nil
	}

	b := bool(*v)

	return &b
}
