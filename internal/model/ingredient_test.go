package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{name: "valid", in: "01/02/2024", want: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
		{name: "surrounding spaces", in: "  31/12/2023 ", want: time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)},
		{name: "leap day", in: "29/02/2024", want: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{name: "day and month out of range", in: "32/13/2021", wantErr: true},
		{name: "no such day in february", in: "31/02/2024", wantErr: true},
		{name: "single digit fields", in: "1/2/2024", wantErr: true},
		{name: "iso format", in: "2024-02-01", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBadDate)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "05/03/2024", FormatDate(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "5", want: "5"},
		{in: "2.50", want: "2.5"},
		{in: "0", want: "0"},
		{in: "1e3", want: "1000"},
		{in: " 0.25 ", want: "0.25"},
		{in: "1e15", want: "1000000000000000"},
		{in: "0.000001", want: "0.000001"},
		{in: "-1", wantErr: true},
		{in: "NaN", wantErr: true},
		{in: "Inf", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
		{in: "2e15", wantErr: true},
		{in: "1e3000000", wantErr: true},
		{in: "1e300000000", wantErr: true},
		{in: "1e-300000000", wantErr: true},
		{in: "99999999999999999999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBadAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, FormatAmount(got))
		})
	}
}

func TestNewIngredient(t *testing.T) {
	exp := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	ing := NewIngredient("  egg ", decimal.NewFromInt(12), "", exp)
	assert.Equal(t, "egg", ing.Name)
	assert.Equal(t, DefaultUnits, ing.Units)

	ing = NewIngredient("milk", decimal.RequireFromString("1.5"), "l", exp)
	assert.Equal(t, "l", ing.Units)
	assert.Equal(t, "milk | Amount Left: 1.5 l | Expiry Date: 01/01/2024", ing.String())
}
