package format

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDate(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"zero time", time.Time{}, ""},
		{"single digit day and month", time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC), "05/03/2025"},
		{"end of year", time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), "31/12/2024"},
		{"leap day", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), "29/02/2024"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Date(tt.t); got != tt.want {
				t.Errorf("Date() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestISODate(t *testing.T) {
	d := time.Date(2025, 3, 15, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-15", ISODate(d))

	parsed, err := ParseISODate("2025-03-15")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), parsed)

	parsed, err = ParseISODate("")
	assert.NoError(t, err)
	assert.True(t, parsed.IsZero())

	_, err = ParseISODate("15/03/2025")
	assert.Error(t, err)
}

func TestAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		want   string
	}{
		{"zero", decimal.Zero, "0 F"},
		{"hundreds", decimal.NewFromInt(750), "750 F"},
		{"thousands", decimal.NewFromInt(75000), "75 000 F"},
		{"hundreds of thousands", decimal.NewFromInt(250000), "250 000 F"},
		{"millions", decimal.NewFromInt(3500000), "3 500 000 F"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Amount(tt.amount); got != tt.want {
				t.Errorf("Amount(%s) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestAcademicYear(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"september opens the year", time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC), "2024-2025"},
		{"december", time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC), "2024-2025"},
		{"march belongs to the previous start", time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), "2024-2025"},
		{"august closes the year", time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC), "2024-2025"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AcademicYear(tt.t))
		})
	}
}
