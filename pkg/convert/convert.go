// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert provides lenient scalar types for JSON request bodies.

Browser forms post numbers as strings ("7.5", "3") as often as real JSON
numbers. [OptionalFloat] and [Int] accept both spellings and leave it to the
caller to decide what an absent value means.

Key Types:
  - OptionalFloat: null, "" or a missing key decode to "no value".
  - Int: a required whole number; null or "" decode to "no value".
  - OptionalString: tells a missing key apart from an explicit null.
*/
package convert

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var null = []byte("null")

// OptionalFloat is a float64 that may be absent.
type OptionalFloat struct {
	Value float64
	Valid bool
}

// UnmarshalJSON accepts a JSON number, a numeric string, null, or "".
func (f *OptionalFloat) UnmarshalJSON(data []byte) error {
	raw, empty, err := scalar(data)
	if err != nil {
		return err
	}
	if empty {
		*f = OptionalFloat{}
		return nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("convert: %q is not a number", raw)
	}

	*f = OptionalFloat{Value: value, Valid: true}
	return nil
}

// Ptr returns the value as a pointer, nil when absent.
func (f OptionalFloat) Ptr() *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}

// Int is a whole number that may be absent.
type Int struct {
	Value int
	Valid bool
}

// UnmarshalJSON accepts a JSON number, a numeric string, null, or "".
// Fractional values are truncated toward zero.
func (i *Int) UnmarshalJSON(data []byte) error {
	raw, empty, err := scalar(data)
	if err != nil {
		return err
	}
	if empty {
		*i = Int{}
		return nil
	}

	if value, err := strconv.Atoi(raw); err == nil {
		*i = Int{Value: value, Valid: true}
		return nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("convert: %q is not an integer", raw)
	}

	*i = Int{Value: int(value), Valid: true}
	return nil
}

// OptionalString is a string field where null means "clear" and a missing
// key means "leave alone".
type OptionalString struct {
	Value string
	Valid bool
	Null  bool
}

// UnmarshalJSON accepts a JSON string or null. It is only called when the key
// is present, so the zero value stands for a missing key.
func (s *OptionalString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, null) {
		*s = OptionalString{Null: true}
		return nil
	}

	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("convert: expected string or null, got %s", data)
	}

	*s = OptionalString{Value: value, Valid: true}
	return nil
}

// Ptr returns the value as a pointer, nil when absent or null.
func (s OptionalString) Ptr() *string {
	if !s.Valid {
		return nil
	}
	v := s.Value
	return &v
}

// scalar unwraps a JSON number or string into its trimmed text.
// empty is true for null and blank strings.
func scalar(data []byte) (raw string, empty bool, err error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, null) {
		return "", true, nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", false, err
		}
		s = strings.TrimSpace(s)
		return s, s == "", nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return "", false, fmt.Errorf("convert: expected number or string, got %s", data)
	}
	return n.String(), false, nil
}
