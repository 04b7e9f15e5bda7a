package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDateBR(t *testing.T) {
	d, ok := ParseDateBR("31/12/2024")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), d)

	d, ok = ParseDateBR(" 01/02/2023 ")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC), d)

	_, ok = ParseDateBR("2024-12-31")
	assert.False(t, ok, "ISO dates are not part of the sheet contract")

	_, ok = ParseDateBR("")
	assert.False(t, ok)

	_, ok = ParseDateBR("32/01/2024")
	assert.False(t, ok)

	_, ok = ParseDateBR("pendente")
	assert.False(t, ok)
}

func TestFormatDateBR(t *testing.T) {
	assert.Equal(t, "05/03/2024", FormatDateBR(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "", FormatDateBR(time.Time{}))
}

func TestMonthYearPT(t *testing.T) {
	assert.Equal(t, "Janeiro/2024", MonthYearPT(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Março/2025", MonthYearPT(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Dezembro/2023", MonthYearPT(time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func TestWeekdayPT(t *testing.T) {
	// 2024-07-01 was a Monday.
	assert.Equal(t, "Segunda-feira", WeekdayPT(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Domingo", WeekdayPT(time.Date(2024, 7, 7, 0, 0, 0, 0, time.UTC)))
}

func TestMidnight(t *testing.T) {
	in := time.Date(2024, 5, 10, 17, 42, 3, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), Midnight(in))
}
