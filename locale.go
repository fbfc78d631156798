package datepicker

import "time"

var (
	defaultWeekdays = [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}
	defaultMonths   = [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	defaultShortMonths = [12]string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	}
)

const defaultWeekStartsOn = time.Monday

// DefaultLocale returns the built-in English locale with Monday as the
// first day of the week.
func DefaultLocale() InnerLocale {
	return InnerLocale{
		Weekdays:     defaultWeekdays,
		Months:       defaultMonths,
		ShortMonths:  defaultShortMonths,
		WeekStartsOn: defaultWeekStartsOn,
	}
}

// ResolveLocale overlays the provided overrides onto DefaultLocale. Each
// provided field replaces the default wholesale; lists of the wrong length
// and week starts outside 0-6 are ignored.
func ResolveLocale(overrides Locale) InnerLocale {
	locale := DefaultLocale()

	if overrides.WeekStartsOn != nil && validWeekday(*overrides.WeekStartsOn) {
		locale.WeekStartsOn = time.Weekday(*overrides.WeekStartsOn)
	}
	if len(overrides.Weekdays) == len(locale.Weekdays) {
		copy(locale.Weekdays[:], overrides.Weekdays)
	}
	if len(overrides.Months) == len(locale.Months) {
		copy(locale.Months[:], overrides.Months)
	}
	if len(overrides.ShortMonths) == len(locale.ShortMonths) {
		copy(locale.ShortMonths[:], overrides.ShortMonths)
	}

	return locale
}

// Overrides converts the locale back into a fully specified Locale.
func (l InnerLocale) Overrides() Locale {
	start := int(l.WeekStartsOn)
	return Locale{
		Weekdays:     append([]string(nil), l.Weekdays[:]...),
		Months:       append([]string(nil), l.Months[:]...),
		ShortMonths:  append([]string(nil), l.ShortMonths[:]...),
		WeekStartsOn: &start,
	}
}

func validWeekday(v int) bool {
	return v >= int(time.Sunday) && v <= int(time.Saturday)
}
