package datepicker

import "time"

// CalendarDay references a single day of a calendar grid. The day is not
// necessarily part of the month the grid was built for.
type CalendarDay struct {
	Year   int
	Month  time.Month
	Number int
}

// Time returns the day at midnight in loc (UTC when loc is nil)
func (d CalendarDay) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, d.Month, d.Number, 0, 0, 0, 0, loc)
}

// Weekday returns the day of the week
func (d CalendarDay) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

// Same reports whether t falls on this day
func (d CalendarDay) Same(t time.Time) bool {
	return t.Year() == d.Year && t.Month() == d.Month && t.Day() == d.Number
}

// DayOf returns the CalendarDay for t
func DayOf(t time.Time) CalendarDay {
	return CalendarDay{Year: t.Year(), Month: t.Month(), Number: t.Day()}
}

// Locale carries user supplied overrides. Nil fields are left at their
// defaults when resolved into an InnerLocale.
type Locale struct {
	Weekdays     []string `json:"weekdays,omitempty" yaml:"weekdays,omitempty"`
	Months       []string `json:"months,omitempty" yaml:"months,omitempty"`
	ShortMonths  []string `json:"shortMonths,omitempty" yaml:"shortMonths,omitempty"`
	WeekStartsOn *int     `json:"weekStartsOn,omitempty" yaml:"weekStartsOn,omitempty"`
}

// WeekStart is a helper for building Locale literals
func WeekStart(day time.Weekday) *int {
	v := int(day)
	return &v
}

// Clone returns a deep copy of the overrides
func (l Locale) Clone() Locale {
	out := Locale{
		Weekdays:    cloneStrings(l.Weekdays),
		Months:      cloneStrings(l.Months),
		ShortMonths: cloneStrings(l.ShortMonths),
	}
	if l.WeekStartsOn != nil {
		v := *l.WeekStartsOn
		out.WeekStartsOn = &v
	}
	return out
}

// merge overlays the fields set in other onto l
func (l Locale) merge(other Locale) Locale {
	out := l.Clone()
	if other.Weekdays != nil {
		out.Weekdays = cloneStrings(other.Weekdays)
	}
	if other.Months != nil {
		out.Months = cloneStrings(other.Months)
	}
	if other.ShortMonths != nil {
		out.ShortMonths = cloneStrings(other.ShortMonths)
	}
	if other.WeekStartsOn != nil {
		v := *other.WeekStartsOn
		out.WeekStartsOn = &v
	}
	return out
}

// InnerLocale is a fully populated locale. It is a value type and is never
// mutated after construction.
type InnerLocale struct {
	Weekdays     [7]string
	Months       [12]string
	ShortMonths  [12]string
	WeekStartsOn time.Weekday
}

// Weekday returns the name for day
func (l InnerLocale) Weekday(day time.Weekday) string {
	return l.Weekdays[int(day)%7]
}

// Month returns the full name for month
func (l InnerLocale) Month(month time.Month) string {
	return l.Months[monthIndex(month)]
}

// ShortMonth returns the abbreviated name for month
func (l InnerLocale) ShortMonth(month time.Month) string {
	return l.ShortMonths[monthIndex(month)]
}

// OrderedWeekdays returns the weekday names rotated so that the first
// entry is the week start day, matching the columns of CalendarDays.
func (l InnerLocale) OrderedWeekdays() []string {
	out := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		out = append(out, l.Weekdays[(int(l.WeekStartsOn)+i)%7])
	}
	return out
}

func monthIndex(month time.Month) int {
	return (int(month) - 1 + 12) % 12
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
