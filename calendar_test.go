package datepicker

import (
	"testing"
	"time"

	"cloudeng.io/datetime"
	"github.com/alecthomas/assert/v2"
)

func span(year int, month time.Month, from, to int) []CalendarDay {
	days := make([]CalendarDay, 0, to-from+1)
	for n := from; n <= to; n++ {
		days = append(days, CalendarDay{Year: year, Month: month, Number: n})
	}
	return days
}

func concat(parts ...[]CalendarDay) []CalendarDay {
	var out []CalendarDay
	for _, part := range parts {
		out = append(out, part...)
	}
	return out
}

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{1900, false},
		{2000, true},
		{2019, false},
		{2020, true},
		{2100, false},
		{2400, true},
	}

	for _, tt := range tests {
		if got := IsLeapYear(tt.year); got != tt.want {
			t.Errorf("IsLeapYear(%d) = %v; want %v", tt.year, got, tt.want)
		}
	}
}

func TestMonthLengthMatchesReference(t *testing.T) {
	for year := 1890; year <= 2110; year++ {
		if IsLeapYear(year) != datetime.IsLeap(year) {
			t.Fatalf("IsLeapYear(%d) disagrees with reference", year)
		}
		for month := time.January; month <= time.December; month++ {
			want := int(datetime.DaysInMonth(year, datetime.Month(month)))
			if got := MonthLength(year, month); got != want {
				t.Fatalf("MonthLength(%d, %s) = %d; want %d", year, month, got, want)
			}
		}
	}
}

func TestMonthDays(t *testing.T) {
	days := MonthDays(2020, time.February)
	assert.Equal(t, span(2020, time.February, 1, 29), days)

	days = MonthDays(2021, time.February)
	assert.Equal(t, 28, len(days))
}

func TestCalendarDaysGrid(t *testing.T) {
	tests := []struct {
		name         string
		ref          time.Time
		weekStartsOn time.Weekday
		want         []CalendarDay
	}{
		{
			name:         "january 2020 sunday start",
			ref:          time.Date(2020, time.January, 15, 10, 0, 0, 0, time.UTC),
			weekStartsOn: time.Sunday,
			want: concat(
				span(2019, time.December, 29, 31),
				span(2020, time.January, 1, 31),
				span(2020, time.February, 1, 8),
			),
		},
		{
			name:         "january 2020 monday start",
			ref:          time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
			weekStartsOn: time.Monday,
			want: concat(
				span(2019, time.December, 30, 31),
				span(2020, time.January, 1, 31),
				span(2020, time.February, 1, 9),
			),
		},
		{
			name:         "december 2019 sunday start",
			ref:          time.Date(2019, time.December, 31, 0, 0, 0, 0, time.UTC),
			weekStartsOn: time.Sunday,
			want: concat(
				span(2019, time.December, 1, 31),
				span(2020, time.January, 1, 11),
			),
		},
		{
			name:         "december 2019 monday start",
			ref:          time.Date(2019, time.December, 1, 0, 0, 0, 0, time.UTC),
			weekStartsOn: time.Monday,
			want: concat(
				span(2019, time.November, 25, 30),
				span(2019, time.December, 1, 31),
				span(2020, time.January, 1, 5),
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalendarDays(tt.ref, tt.weekStartsOn))
		})
	}
}

func TestCalendarDaysWeekdayAlignment(t *testing.T) {
	for year := 1995; year <= 2025; year++ {
		for month := time.January; month <= time.December; month++ {
			ref := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
			for start := time.Sunday; start <= time.Saturday; start++ {
				days := CalendarDays(ref, start)
				if len(days) != CalendarGridSize {
					t.Fatalf("CalendarDays(%d-%02d, %s) has %d days", year, month, start, len(days))
				}

				for i, day := range days {
					want := time.Weekday((i + int(start)) % 7)
					if got := day.Weekday(); got != want {
						t.Fatalf("CalendarDays(%d-%02d, %s)[%d] = %s; want %s", year, month, start, i, got, want)
					}
				}

				first := days[0].Time(time.UTC)
				for i, day := range days {
					if !day.Same(first.AddDate(0, 0, i)) {
						t.Fatalf("CalendarDays(%d-%02d, %s)[%d] = %+v is not consecutive", year, month, start, i, day)
					}
				}

				if !containsMonth(days, year, month) {
					t.Fatalf("CalendarDays(%d-%02d, %s) misses days of the month", year, month, start)
				}
			}
		}
	}
}

func containsMonth(days []CalendarDay, year int, month time.Month) bool {
	count := 0
	for _, day := range days {
		if day.Year == year && day.Month == month {
			count++
		}
	}
	return count == MonthLength(year, month)
}

func TestWeeks(t *testing.T) {
	t.Run("padded on both sides", func(t *testing.T) {
		weeks := Weeks(time.Date(2020, time.January, 20, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, 5, len(weeks))
		assert.Equal(t, span(2019, time.December, 29, 31), weeks[0][:3])
		assert.Equal(t, CalendarDay{Year: 2020, Month: time.February, Number: 1}, weeks[4][6])
	})

	t.Run("whole february", func(t *testing.T) {
		weeks := Weeks(time.Date(2015, time.February, 1, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, 4, len(weeks))
		assert.Equal(t, CalendarDay{Year: 2015, Month: time.February, Number: 1}, weeks[0][0])
		assert.Equal(t, CalendarDay{Year: 2015, Month: time.February, Number: 28}, weeks[3][6])
	})

	for year := 2000; year <= 2004; year++ {
		for month := time.January; month <= time.December; month++ {
			weeks := Weeks(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
			for i, week := range weeks {
				if len(week) != 7 {
					t.Fatalf("Weeks(%d-%02d)[%d] has %d days", year, month, i, len(week))
				}
				if week[0].Weekday() != time.Sunday {
					t.Fatalf("Weeks(%d-%02d)[%d] starts on %s", year, month, i, week[0].Weekday())
				}
			}
		}
	}
}

func TestWeeksAreIndependent(t *testing.T) {
	weeks := Weeks(time.Date(2020, time.March, 1, 0, 0, 0, 0, time.UTC))
	second := weeks[1][0]
	weeks[0] = append(weeks[0], CalendarDay{})
	assert.Equal(t, second, weeks[1][0])
}
