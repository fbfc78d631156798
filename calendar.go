package datepicker

import "time"

// CalendarGridSize is the number of days in a CalendarDays grid, six full weeks.
const CalendarGridSize = 42

var monthLengths = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether year has 366 days in the proleptic Gregorian calendar.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// MonthLength returns the number of days in month of year.
func MonthLength(year int, month time.Month) int {
	if month == time.February && IsLeapYear(year) {
		return 29
	}
	return monthLengths[monthIndex(month)]
}

// MonthDays returns every day of month in order.
func MonthDays(year int, month time.Month) []CalendarDay {
	length := MonthLength(year, month)
	days := make([]CalendarDay, 0, length)
	for i := 1; i <= length; i++ {
		days = append(days, CalendarDay{Year: year, Month: month, Number: i})
	}
	return days
}

func previousMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

func nextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

func firstWeekday(year int, month time.Month) time.Weekday {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
}

// surroundMonth returns the month of ref with daysBefore trailing days of
// the previous month in front. The tail is filled by the caller.
func surroundMonth(year int, month time.Month, daysBefore int) []CalendarDay {
	days := make([]CalendarDay, 0, CalendarGridSize)
	if daysBefore > 0 {
		prevYear, prev := previousMonth(year, month)
		prevDays := MonthDays(prevYear, prev)
		days = append(days, prevDays[len(prevDays)-daysBefore:]...)
	}
	return append(days, MonthDays(year, month)...)
}

func appendNextMonth(days []CalendarDay, year int, month time.Month, daysAfter int) []CalendarDay {
	if daysAfter <= 0 {
		return days
	}
	nextYear, next := nextMonth(year, month)
	return append(days, MonthDays(nextYear, next)[:daysAfter]...)
}

// CalendarDays returns the 42 day grid for the month of ref. The grid
// starts on the last weekStartsOn on or before the first of the month, so
// day i of the grid falls on weekday (i + weekStartsOn) % 7.
func CalendarDays(ref time.Time, weekStartsOn time.Weekday) []CalendarDay {
	year, month := ref.Year(), ref.Month()
	daysBefore := (int(firstWeekday(year, month)) - int(weekStartsOn)%7 + 7) % 7

	days := surroundMonth(year, month, daysBefore)
	return appendNextMonth(days, year, month, CalendarGridSize-len(days))
}

// Weeks returns the month of ref as Sunday based weeks, padded with days
// from the adjacent months to whole weeks.
func Weeks(ref time.Time) [][]CalendarDay {
	year, month := ref.Year(), ref.Month()
	days := surroundMonth(year, month, int(firstWeekday(year, month)))

	rem := len(days) % 7
	if rem == 0 {
		rem = 7
	}
	days = appendNextMonth(days, year, month, 7-rem)

	weeks := make([][]CalendarDay, 0, len(days)/7)
	for i := 0; i < len(days); i += 7 {
		weeks = append(weeks, days[i:i+7:i+7])
	}
	return weeks
}
