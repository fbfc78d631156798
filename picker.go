package datepicker

import "time"

// Picker is a headless date input: it keeps the selected value and the
// text of an input field in sync, and tracks which month is being browsed.
// A Picker is not safe for concurrent use.
type Picker struct {
	format     *Format
	locale     InnerLocale
	min, max   time.Time
	isDisabled DisabledFunc
	parse      ParseFunc
	base       time.Time

	value  time.Time
	text   string
	browse time.Time
}

// InputResult describes how the picker reacted to typed text
type InputResult struct {
	// Text is the input as typed
	Text string
	// Valid is true when Text selected a new value
	Valid bool
	// Value is the selected value after the input
	Value time.Time
	// Completion is Text with the missing punctuation appended, when the
	// input stopped right before a literal
	Completion string
	// Unavailable is true when Text parsed but the date is out of bounds or disabled
	Unavailable bool
}

func (p *Picker) Value() time.Time { return p.value }
func (p *Picker) Text() string { return p.text }
func (p *Picker) Format() *Format { return p.format }
func (p *Picker) Locale() InnerLocale { return p.locale }
func (p *Picker) BrowseDate() time.Time { return p.browse }

// Bounds returns the configured min and max dates
func (p *Picker) Bounds() (time.Time, time.Time) {
	return p.min, p.max
}

// SetValue selects t, moving it to the nearest selectable date. A zero t
// clears the selection.
func (p *Picker) SetValue(t time.Time) time.Time {
	if t.IsZero() {
		p.value = time.Time{}
		p.text = ""
		return p.value
	}

	old := p.value
	if old.IsZero() {
		old = t
	}

	p.value = ToValidDate(old, t, p.min, p.max, p.isDisabled)
	p.text = p.format.Render(p.value)
	p.browse = p.value
	return p.value
}

// Input parses text typed by the user. Only an in-range, enabled date
// replaces the current value; the text is kept either way.
func (p *Picker) Input(text string) InputResult {
	p.text = text

	base := p.value
	if base.IsZero() {
		base = p.base
	}

	res := p.parse(text, p.format, base)
	out := InputResult{Text: text, Value: p.value}

	if !res.Valid {
		if res.MissingPunctuation != "" {
			out.Completion = text + res.MissingPunctuation
		}
		return out
	}

	if !p.Selectable(res.Date) {
		out.Unavailable = true
		return out
	}

	p.value = res.Date
	p.browse = res.Date
	out.Valid = true
	out.Value = res.Date
	return out
}

// Selectable reports whether t is within bounds and not disabled
func (p *Picker) Selectable(t time.Time) bool {
	if !InRange(t, p.min, p.max) {
		return false
	}
	return p.isDisabled == nil || !p.isDisabled(t)
}

// Step moves the selection by days, skipping disabled dates in the
// direction of travel.
func (p *Picker) Step(days int) time.Time {
	from := p.value
	if from.IsZero() {
		from = Clamp(p.base, p.min, p.max)
		p.value = from
	}
	return p.SetValue(from.AddDate(0, 0, days))
}

// Browse shifts the browsed month by months.
func (p *Picker) Browse(months int) time.Time {
	first := time.Date(p.browse.Year(), p.browse.Month(), 1, 0, 0, 0, 0, p.browse.Location())
	p.browse = first.AddDate(0, months, 0)
	return p.browse
}

// Grid returns the 42 day grid of the browsed month
func (p *Picker) Grid() []CalendarDay {
	return CalendarDays(p.browse, p.locale.WeekStartsOn)
}

// Weeks returns the Sunday based weeks of the browsed month
func (p *Picker) Weeks() [][]CalendarDay {
	return Weeks(p.browse)
}
