package datepicker

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ParseResult is the outcome of Parse. Date is only meaningful when Valid
// is true. Input that resolves to the zero time (0001-01-01 00:00:00 UTC)
// is reported as invalid, since a zero date means absent everywhere else
// in the package. MissingPunctuation holds the rest of a literal token when the
// input ended in the middle of it; callers can append it to complete the
// user's input.
type ParseResult struct {
	Date               time.Time
	Valid              bool
	MissingPunctuation string
}

var (
	twoDigits  = regexp.MustCompile(`^[0-9]{2}`)
	fourDigits = regexp.MustCompile(`^[0-9]{4}`)
)

// DefaultBaseDate returns the date used to seed fields absent from a
// pattern when Parse is called with a zero base date.
func DefaultBaseDate() time.Time {
	return time.Date(2020, time.January, 1, 0, 0, 0, 0, time.Local)
}

type dateFields struct {
	year, day, hour, minute, second int
	month                           time.Month
}

type parser struct {
	input   string
	valid   bool
	missing string
	fields  dateFields
}

// Parse reads input according to f. Fields absent from the pattern, and
// the sub-second part, are taken from base.
func Parse(input string, f *Format, base time.Time) ParseResult {
	if base.IsZero() {
		base = DefaultBaseDate()
	}
	if f == nil {
		return ParseResult{}
	}

	p := &parser{
		input: norm.NFC.String(input),
		valid: true,
		fields: dateFields{
			year:   base.Year(),
			month:  base.Month(),
			day:    base.Day(),
			hour:   base.Hour(),
			minute: base.Minute(),
			second: base.Second(),
		},
	}

	for _, token := range f.tokens {
		p.token(token, f.locale)
		if !p.valid {
			break
		}
	}

	if p.fields.day > MonthLength(p.fields.year, p.fields.month) {
		p.valid = false
	}

	if !p.valid {
		return ParseResult{MissingPunctuation: p.missing}
	}

	fd := p.fields
	date := time.Date(fd.year, fd.month, fd.day, fd.hour, fd.minute, fd.second, base.Nanosecond(), base.Location())
	if date.IsZero() {
		return ParseResult{}
	}
	return ParseResult{Date: date, Valid: true}
}

func (p *parser) token(token FormatToken, locale InnerLocale) {
	if token.Kind == LiteralToken {
		p.literal(token.Text)
		return
	}

	switch token.ID {
	case TokenYear2:
		if v, ok := p.number(twoDigits, 0, 99); ok {
			p.fields.year = 2000 + v
		}
	case TokenYear4:
		if v, ok := p.number(fourDigits, 0, 9999); ok {
			p.fields.year = v
		}
	case TokenMonth:
		if v, ok := p.number(twoDigits, 1, 12); ok {
			p.fields.month = time.Month(v)
		}
	case TokenMonthShort:
		values := token.AllowedValues
		if len(values) == 0 {
			values = locale.ShortMonths[:]
		}
		if i, ok := p.oneOf(values); ok {
			p.fields.month = time.Month(i + 1)
		}
	case TokenDay:
		if v, ok := p.number(twoDigits, 1, 31); ok {
			p.fields.day = v
		}
	case TokenHour:
		if v, ok := p.number(twoDigits, 0, 23); ok {
			p.fields.hour = v
		}
	case TokenMinute:
		if v, ok := p.number(twoDigits, 0, 59); ok {
			p.fields.minute = v
		}
	case TokenSecond:
		if v, ok := p.number(twoDigits, 0, 59); ok {
			p.fields.second = v
		}
	default:
		p.valid = false
	}
}

// literal consumes text rune by rune. When the input runs out first the
// unmatched remainder of text is recorded as missing punctuation.
func (p *parser) literal(text string) {
	for i, want := range text {
		got, size := utf8.DecodeRuneInString(p.input)
		if size > 0 && got == want {
			p.input = p.input[size:]
			continue
		}
		p.valid = false
		if len(p.input) == 0 {
			p.missing = text[i:]
		}
		return
	}
}

func (p *parser) number(pattern *regexp.Regexp, lo, hi int) (int, bool) {
	match := pattern.FindString(p.input)
	if match == "" {
		p.valid = false
		return 0, false
	}
	p.input = p.input[len(match):]

	n, err := strconv.Atoi(match)
	if err != nil || n < lo || n > hi {
		p.valid = false
		return 0, false
	}
	return n, true
}

// oneOf consumes the longest entry of values that prefixes the input,
// ignoring case, and returns its index.
func (p *parser) oneOf(values []string) (int, bool) {
	best, bestLen := -1, 0
	for i, value := range values {
		if value == "" {
			continue
		}
		n, ok := foldedPrefix(p.input, foldCase(value))
		if ok && n > bestLen {
			best, bestLen = i, n
		}
	}

	if best < 0 {
		p.valid = false
		return 0, false
	}
	p.input = p.input[bestLen:]
	return best, true
}

// foldedPrefix returns the byte length of the shortest prefix of s whose
// folded form is at least as long as want, if that form equals want.
func foldedPrefix(s, want string) (int, bool) {
	for offset := 0; offset < len(s); {
		_, size := utf8.DecodeRuneInString(s[offset:])
		offset += size
		folded := foldCase(s[:offset])
		if len(folded) >= len(want) {
			return offset, folded == want
		}
	}
	return 0, false
}

func foldCase(s string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFC, cases.Fold()), s)
	if err != nil {
		return strings.ToLower(s)
	}
	return folded
}
