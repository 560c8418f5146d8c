package service

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rawPayload разбирает JSON текст в форму, которую получает валидатор
func rawPayload(t *testing.T, s string) [][]json.RawMessage {
	t.Helper()
	var payload [][]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(s), &payload))
	return payload
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name         string
		payload      string
		want         [][]string
		wantEmpty    bool
		invalidValue string
	}{
		{
			name:    "Valid payload",
			payload: `[[1, 2, 3], [10, -10], []]`,
			want:    [][]string{{"1", "2", "3"}, {"10", "-10"}, {}},
		},
		{
			name:    "Integers beyond int64",
			payload: `[[92233720368547758080], [-92233720368547758080, 1]]`,
			want:    [][]string{{"92233720368547758080"}, {"-92233720368547758080", "1"}},
		},
		{
			name:      "Empty payload",
			payload:   `[]`,
			wantEmpty: true,
		},
		{
			name:      "Null payload",
			payload:   `null`,
			wantEmpty: true,
		},
		{
			name:         "String element",
			payload:      `[[1, "a", 3]]`,
			invalidValue: "a",
		},
		{
			name:         "Float element",
			payload:      `[[1], [2.5]]`,
			invalidValue: "2.5",
		},
		{
			name:         "Exponent is not an integer literal",
			payload:      `[[1e3]]`,
			invalidValue: "1e3",
		},
		{
			name:         "Null element",
			payload:      `[[null]]`,
			invalidValue: "null",
		},
		{
			name:         "Nested list element",
			payload:      `[[[1]]]`,
			invalidValue: "[1]",
		},
		{
			name:         "Integer with fraction part",
			payload:      `[[92233720368547758080.0]]`,
			invalidValue: "92233720368547758080.0",
		},
		{
			name:         "First offending element wins",
			payload:      `[[1, true], ["x"]]`,
			invalidValue: "true",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(rawPayload(t, tt.payload))

			switch {
			case tt.wantEmpty:
				assert.ErrorIs(t, err, ErrEmptyPayload)
				assert.Nil(t, got)
			case tt.invalidValue != "":
				var invalid *InvalidElementError
				require.True(t, errors.As(err, &invalid), "expected InvalidElementError, got %v", err)
				assert.Equal(t, tt.invalidValue, invalid.Value)
				assert.Equal(t, "Invalid payload: "+tt.invalidValue+" is not an integer", err.Error())
				assert.Nil(t, got)
			default:
				require.NoError(t, err)
				require.Len(t, got, len(tt.want))
				for i := range got {
					assert.Equal(t, tt.want[i], decimal(got[i]))
				}
			}
		})
	}
}

func TestParseIntegersEmpty(t *testing.T) {
	got, err := ParseIntegers(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
