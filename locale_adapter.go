package datepicker

import (
	"fmt"
	"strings"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// Localizer is an external localization provider that can be adapted into
// an InnerLocale.
type Localizer interface {
	// WeekStartsOn reports the first day of the week, ok=false when unknown
	WeekStartsOn() (time.Weekday, bool)
	// Day returns the short name of weekday i, 0 = Sunday
	Day(i int) string
	// Month returns the wide name of month i, 0 = January
	Month(i int) string
	// ShortMonth returns the abbreviated name of month i, 0 = January
	ShortMonth(i int) string
}

// FromLocalizer builds an InnerLocale from l. Names reported as empty
// strings keep their defaults.
func FromLocalizer(l Localizer) InnerLocale {
	locale := DefaultLocale()
	if l == nil {
		return locale
	}

	if day, ok := l.WeekStartsOn(); ok && validWeekday(int(day)) {
		locale.WeekStartsOn = day
	}

	for i := range locale.Weekdays {
		if name := l.Day(i); name != "" {
			locale.Weekdays[i] = name
		}
	}

	for i := range locale.Months {
		if name := l.Month(i); name != "" {
			locale.Months[i] = name
		}
		if name := l.ShortMonth(i); name != "" {
			locale.ShortMonths[i] = name
		}
	}

	return locale
}

var mondayLocales = map[monday.Locale]struct{}{
	monday.LocaleBgBG: {}, monday.LocaleCsCZ: {}, monday.LocaleDaDK: {},
	monday.LocaleDeDE: {}, monday.LocaleElGR: {}, monday.LocaleEnGB: {},
	monday.LocaleEnUS: {}, monday.LocaleEsES: {}, monday.LocaleFiFI: {},
	monday.LocaleFrCA: {}, monday.LocaleFrFR: {}, monday.LocaleHuHU: {},
	monday.LocaleItIT: {}, monday.LocaleJaJP: {},
	monday.LocaleKoKR: {}, monday.LocaleNbNO: {}, monday.LocaleNlBE: {},
	monday.LocaleNlNL: {}, monday.LocaleNnNO: {}, monday.LocalePlPL: {},
	monday.LocalePtBR: {}, monday.LocalePtPT: {}, monday.LocaleRoRO: {},
	monday.LocaleRuRU: {}, monday.LocaleSvSE: {},
	monday.LocaleTrTR: {}, monday.LocaleUkUA: {}, monday.LocaleZhCN: {},
	monday.LocaleZhTW: {},
}

// reference dates used to ask monday for translated names; 2023-01-01 is a Sunday
var (
	referenceSunday = time.Date(2023, time.January, 1, 12, 0, 0, 0, time.UTC)
	referenceYear   = 2023
)

// MondayLocalizer is a Localizer backed by github.com/goodsign/monday.
type MondayLocalizer struct {
	code      string
	locale    monday.Locale
	weekStart time.Weekday
}

var _ Localizer = &MondayLocalizer{}

// NewMondayLocalizer resolves code (BCP-47 such as "nb-NO" or "nb", or
// POSIX style "nb_NO") to a monday locale.
func NewMondayLocalizer(code string) (*MondayLocalizer, error) {
	normalized := normalizeLocale(code)
	if normalized == "" {
		return nil, ErrEmptyLocaleCode
	}

	locale, ok := mondayLocaleFor(normalized)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLocale, code)
	}

	return &MondayLocalizer{
		code:      normalized,
		locale:    locale,
		weekStart: WeekStartForLocale(normalized),
	}, nil
}

// Code returns the normalized locale code the localizer was built for
func (m *MondayLocalizer) Code() string {
	if m == nil {
		return ""
	}
	return m.code
}

// MondayLocale returns the underlying monday locale
func (m *MondayLocalizer) MondayLocale() monday.Locale {
	if m == nil {
		return monday.LocaleEnUS
	}
	return m.locale
}

func (m *MondayLocalizer) WeekStartsOn() (time.Weekday, bool) {
	if m == nil {
		return 0, false
	}
	return m.weekStart, true
}

func (m *MondayLocalizer) Day(i int) string {
	if m == nil || i < 0 || i > 6 {
		return ""
	}
	return monday.Format(referenceSunday.AddDate(0, 0, i), "Mon", m.locale)
}

func (m *MondayLocalizer) Month(i int) string {
	if m == nil || i < 0 || i > 11 {
		return ""
	}
	return monday.Format(referenceMonth(i), "January", m.locale)
}

func (m *MondayLocalizer) ShortMonth(i int) string {
	if m == nil || i < 0 || i > 11 {
		return ""
	}
	return monday.Format(referenceMonth(i), "Jan", m.locale)
}

func referenceMonth(i int) time.Time {
	return time.Date(referenceYear, time.Month(i+1), 1, 12, 0, 0, 0, time.UTC)
}

// LocaleFromMonday is shorthand for adapting a monday backed localizer.
func LocaleFromMonday(code string) (InnerLocale, error) {
	localizer, err := NewMondayLocalizer(code)
	if err != nil {
		return InnerLocale{}, err
	}
	return FromLocalizer(localizer), nil
}

func mondayLocaleFor(code string) (monday.Locale, bool) {
	candidates := []string{strings.ReplaceAll(code, "-", "_")}

	tag, err := language.Parse(code)
	if err == nil {
		base, _ := tag.Base()
		region, _ := tag.Region()
		candidates = append(candidates, base.String()+"_"+region.String())
	}

	for _, candidate := range candidates {
		locale := monday.Locale(candidate)
		if _, ok := mondayLocales[locale]; ok {
			return locale, true
		}
	}
	return "", false
}
