// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package convert_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/ratings/pkg/convert"
)

/*
TestOptionalFloat_Unmarshal covers the spellings forms actually send.
*/
func TestOptionalFloat_Unmarshal(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantValid bool
		wantValue float64
		wantErr   bool
	}{
		{"number", `{"rating": 7.5}`, true, 7.5, false},
		{"numeric_string", `{"rating": "8.2"}`, true, 8.2, false},
		{"zero_is_a_rating", `{"rating": 0}`, true, 0, false},
		{"out_of_range_is_kept", `{"rating": "15"}`, true, 15, false},
		{"empty_string", `{"rating": ""}`, false, 0, false},
		{"null", `{"rating": null}`, false, 0, false},
		{"missing", `{}`, false, 0, false},
		{"garbage", `{"rating": "great"}`, false, 0, true},
		{"object", `{"rating": {}}`, false, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload struct {
				Rating convert.OptionalFloat `json:"rating"`
			}

			err := json.Unmarshal([]byte(tt.body), &payload)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, payload.Rating.Valid)
			assert.Equal(t, tt.wantValue, payload.Rating.Value)
		})
	}
}

/*
TestInt_Unmarshal verifies whole-number coercion.
*/
func TestInt_Unmarshal(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantValid bool
		wantValue int
		wantErr   bool
	}{
		{"number", `{"n": 3}`, true, 3, false},
		{"string", `{"n": "4"}`, true, 4, false},
		{"padded_string", `{"n": " 12 "}`, true, 12, false},
		{"fraction_truncates", `{"n": 2.9}`, true, 2, false},
		{"null", `{"n": null}`, false, 0, false},
		{"empty", `{"n": ""}`, false, 0, false},
		{"garbage", `{"n": "two"}`, false, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload struct {
				N convert.Int `json:"n"`
			}

			err := json.Unmarshal([]byte(tt.body), &payload)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, payload.N.Valid)
			assert.Equal(t, tt.wantValue, payload.N.Value)
		})
	}
}

func TestOptionalString_Unmarshal(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    convert.OptionalString
		wantPtr bool
		wantErr bool
	}{
		{"missing_key", `{}`, convert.OptionalString{}, false, false},
		{"null", `{"s": null}`, convert.OptionalString{Null: true}, false, false},
		{"value", `{"s": "/uploads/a.png"}`, convert.OptionalString{Value: "/uploads/a.png", Valid: true}, true, false},
		{"empty_string", `{"s": ""}`, convert.OptionalString{Valid: true}, true, false},
		{"number", `{"s": 3}`, convert.OptionalString{}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload struct {
				S convert.OptionalString `json:"s"`
			}

			err := json.Unmarshal([]byte(tt.body), &payload)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, payload.S)
			assert.Equal(t, tt.wantPtr, payload.S.Ptr() != nil)
		})
	}
}

func TestOptionalFloat_Ptr(t *testing.T) {
	assert.Nil(t, convert.OptionalFloat{}.Ptr())

	p := convert.OptionalFloat{Value: 9, Valid: true}.Ptr()
	require.NotNil(t, p)
	assert.Equal(t, 9.0, *p)
}
