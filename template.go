package datepicker

import (
	"reflect"
	"time"
)

// HelperConfig configures template helper exports
type HelperConfig struct {
	// LocaleKey names the field or map key holding the locale code in
	// template data. Defaults to "Locale".
	LocaleKey string
	// DefaultLocale is used when the data carries no locale
	DefaultLocale string
}

// TemplateHelpers exposes locale aware date helpers for text/template and
// html/template. Every helper takes the template data as first argument
// and resolves its locale through set.
func TemplateHelpers(set *LocaleSet, cfg HelperConfig) map[string]any {
	resolve := func(data any) InnerLocale {
		return set.Resolve(extractLocale(data, cfg))
	}

	return map[string]any{
		"format_date": func(data any, pattern string, t time.Time) string {
			return CreateFormatWithLocale(pattern, resolve(data)).Render(t)
		},

		"month_name": func(data any, t time.Time) string {
			return resolve(data).Month(t.Month())
		},

		"short_month_name": func(data any, t time.Time) string {
			return resolve(data).ShortMonth(t.Month())
		},

		"weekday_names": func(data any) []string {
			return resolve(data).OrderedWeekdays()
		},

		"calendar_weeks": func(data any, t time.Time) [][]CalendarDay {
			days := CalendarDays(t, resolve(data).WeekStartsOn)
			weeks := make([][]CalendarDay, 0, len(days)/7)
			for i := 0; i < len(days); i += 7 {
				weeks = append(weeks, days[i:i+7:i+7])
			}
			return weeks
		},

		"in_month": func(day CalendarDay, t time.Time) bool {
			return day.Year == t.Year() && day.Month == t.Month()
		},
	}
}

// extractLocale reads the locale code from template data. It handles plain
// strings, maps and structs (through reflection). An empty code resolves to
// cfg.DefaultLocale.
func extractLocale(data any, cfg HelperConfig) string {
	if code := lookupLocale(data, cfg.LocaleKey); code != "" {
		return code
	}
	return cfg.DefaultLocale
}

func lookupLocale(data any, localeKey string) string {
	if localeKey == "" {
		localeKey = "Locale"
	}

	switch d := data.(type) {
	case nil:
		return ""
	case string:
		return d
	case map[string]any:
		v, _ := d[localeKey].(string)
		return v
	case map[string]string:
		return d[localeKey]
	}

	value := reflect.ValueOf(data)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return ""
		}
		value = value.Elem()
	}

	if value.Kind() == reflect.Struct {
		field := value.FieldByName(localeKey)
		if field.IsValid() && field.Kind() == reflect.String {
			return field.String()
		}
	}

	return ""
}
