package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeEndDate(t *testing.T) {
	tests := []struct {
		name          string
		startDate     string
		validityType  ValidityType
		validityValue int
		want          string
	}{
		{"days", "2025-01-15", ValidityDays, 10, "2025-01-25"},
		{"days across month boundary", "2025-01-25", ValidityDays, 10, "2025-02-04"},
		{"two weeks", "2025-11-15", ValidityWeeks, 2, "2025-11-29"},
		{"one month", "2025-03-15", ValidityMonths, 1, "2025-04-15"},
		{"month end clamps to shorter month", "2025-01-31", ValidityMonths, 1, "2025-02-28"},
		{"month end clamps in leap year", "2024-01-31", ValidityMonths, 1, "2024-02-29"},
		{"months across year boundary", "2025-11-30", ValidityMonths, 3, "2026-02-28"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeEndDate(tt.startDate, tt.validityType, tt.validityValue)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeEndDateRejectsBadInput(t *testing.T) {
	_, err := ComputeEndDate("2025-01-15", ValidityType("years"), 1)
	assert.Error(t, err)

	_, err = ComputeEndDate("2025-01-15", ValidityDays, 0)
	assert.Error(t, err)

	_, err = ComputeEndDate("15/01/2025", ValidityDays, 5)
	assert.Error(t, err)
}

func TestValidityTypeValid(t *testing.T) {
	assert.True(t, ValidityDays.Valid())
	assert.True(t, ValidityWeeks.Valid())
	assert.True(t, ValidityMonths.Valid())
	assert.False(t, ValidityType("years").Valid())
	assert.False(t, ValidityType("").Valid())
}

func TestWindowContains(t *testing.T) {
	c := &Consultation{StartDate: "2025-11-15", EndDate: "2025-11-29"}

	tests := []struct {
		date string
		want bool
	}{
		{"2025-11-15", true}, // start boundary
		{"2025-11-29", true}, // end boundary
		{"2025-11-20", true},
		{"2025-11-14", false},
		{"2025-11-30", false},
	}
	for _, tt := range tests {
		got, err := c.WindowContains(tt.date)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "date %s", tt.date)
	}
}

func TestWindowContainsRejectsBadDate(t *testing.T) {
	c := &Consultation{StartDate: "2025-11-15", EndDate: "2025-11-29"}
	_, err := c.WindowContains("not-a-date")
	assert.Error(t, err)
}

func TestActiveOn(t *testing.T) {
	c := &Consultation{StartDate: "2025-11-15", EndDate: "2025-11-29"}

	day := func(s string) time.Time {
		d, err := time.Parse(DateLayout, s)
		require.NoError(t, err)
		return d
	}

	assert.True(t, c.ActiveOn(day("2025-11-29")), "active through the last day")
	assert.True(t, c.ActiveOn(day("2025-11-20")))
	assert.False(t, c.ActiveOn(day("2025-11-30")), "lapsed the day after the window ends")
}
