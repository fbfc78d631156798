package datepicker

import (
	"strings"
	"time"

	"golang.org/x/text/language"
)

var weekStartByTerritory = buildWeekStartIndex(builtinFirstDays)

func buildWeekStartIndex(src map[time.Weekday]string) map[string]time.Weekday {
	index := make(map[string]time.Weekday)
	for day, territories := range src {
		for _, territory := range strings.Fields(territories) {
			index[territory] = day
		}
	}
	return index
}

// WeekStartForLocale returns the first day of the week customary for the
// locale's territory. The territory is taken from the code when present,
// otherwise the most likely territory for the language is used. Unknown
// codes default to Monday.
func WeekStartForLocale(code string) time.Weekday {
	code = normalizeLocale(code)
	if code == "" {
		return defaultWeekStartsOn
	}

	tag, err := language.Parse(code)
	if err != nil {
		return defaultWeekStartsOn
	}

	region, confidence := tag.Region()
	if confidence == language.No {
		return defaultWeekStartsOn
	}

	if day, ok := weekStartByTerritory[region.String()]; ok {
		return day
	}
	return defaultWeekStartsOn
}
