package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCalendarDate(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		day   int
		valid bool
	}{
		{name: "plain date", year: 2024, month: time.March, day: 15, valid: true},
		{name: "leap day in leap year", year: 2024, month: time.February, day: 29, valid: true},
		{name: "leap day in non-leap year", year: 2023, month: time.February, day: 29, valid: false},
		{name: "month 13", year: 2024, month: time.Month(13), day: 1, valid: false},
		{name: "day 32", year: 2024, month: time.January, day: 32, valid: false},
		{name: "day 31 in april", year: 2024, month: time.April, day: 31, valid: false},
		{name: "day zero", year: 2024, month: time.January, day: 0, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, ok := NewCalendarDate(tt.year, tt.month, tt.day)
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.Equal(t, tt.year, date.Year)
				assert.Equal(t, tt.month, date.Month)
				assert.Equal(t, tt.day, date.Day)
			}
		})
	}
}

func TestCalendarDate_Key(t *testing.T) {
	date, ok := NewCalendarDate(2024, time.March, 5)
	require.True(t, ok)
	assert.Equal(t, MonthKey("2024-03"), date.Key())
	assert.Equal(t, "2024-03-05", date.String())
}

func TestCalendarDate_SameMonth(t *testing.T) {
	a, _ := NewCalendarDate(2024, time.March, 1)
	b, _ := NewCalendarDate(2024, time.March, 31)
	c, _ := NewCalendarDate(2023, time.March, 1)

	assert.True(t, a.SameMonth(b))
	assert.False(t, a.SameMonth(c))
}

func TestCell_Display(t *testing.T) {
	date, _ := NewCalendarDate(2024, time.March, 5)

	tests := []struct {
		name string
		cell Cell
		want string
	}{
		{name: "null", cell: NullCell(), want: ""},
		{name: "text", cell: TextCell("Jane Smith"), want: "Jane Smith"},
		{name: "number", cell: NumberCell(7.5), want: "7.5"},
		{name: "whole number", cell: NumberCell(8), want: "8"},
		{name: "date", cell: DateCell(date), want: "2024-03-05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cell.Display())
		})
	}
}
