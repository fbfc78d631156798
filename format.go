package datepicker

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// TokenID identifies a date field in a pattern
type TokenID string

const (
	TokenYear4      TokenID = "yyyy"
	TokenYear2      TokenID = "yy"
	TokenMonthShort TokenID = "MMM"
	TokenMonth      TokenID = "MM"
	TokenDay        TokenID = "dd"
	TokenHour       TokenID = "HH"
	TokenMinute     TokenID = "mm"
	TokenSecond     TokenID = "ss"
)

// ruleTokenOrder is the match priority; longer ids come before their prefixes.
var ruleTokenOrder = []TokenID{
	TokenYear4,
	TokenYear2,
	TokenMonthShort,
	TokenMonth,
	TokenDay,
	TokenHour,
	TokenMinute,
	TokenSecond,
}

// RuleTokenIDs returns the recognized token ids in match priority order.
func RuleTokenIDs() []TokenID {
	return append([]TokenID(nil), ruleTokenOrder...)
}

// TokenKind discriminates FormatToken variants
type TokenKind int

const (
	// LiteralToken is text that is copied verbatim and must match exactly
	LiteralToken TokenKind = iota
	// RuleToken is a date field
	RuleToken
)

func (k TokenKind) String() string {
	switch k {
	case LiteralToken:
		return "literal"
	case RuleToken:
		return "rule"
	default:
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
}

// FormatToken is one unit of a compiled pattern. Literal tokens use Text,
// rule tokens use ID. AllowedValues is only set for TokenMonthShort.
type FormatToken struct {
	Kind          TokenKind
	Text          string
	ID            TokenID
	AllowedValues []string
}

// Literal builds a literal token
func Literal(text string) FormatToken {
	return FormatToken{Kind: LiteralToken, Text: text}
}

// Rule builds a rule token
func Rule(id TokenID, allowed ...string) FormatToken {
	return FormatToken{Kind: RuleToken, ID: id, AllowedValues: cloneStrings(allowed)}
}

func (t FormatToken) String() string {
	if t.Kind == RuleToken {
		return string(t.ID)
	}
	return t.Text
}

// Render stringifies t for date using locale
func (t FormatToken) Render(date time.Time, locale InnerLocale) string {
	if t.Kind == LiteralToken {
		return t.Text
	}

	switch t.ID {
	case TokenYear4:
		return fmt.Sprintf("%04d", date.Year())
	case TokenYear2:
		year := strconv.Itoa(date.Year())
		if len(year) > 2 {
			year = year[len(year)-2:]
		}
		return year
	case TokenMonthShort:
		if len(t.AllowedValues) == 12 {
			return t.AllowedValues[monthIndex(date.Month())]
		}
		return locale.ShortMonth(date.Month())
	case TokenMonth:
		return twoDigit(int(date.Month()))
	case TokenDay:
		return twoDigit(date.Day())
	case TokenHour:
		return twoDigit(date.Hour())
	case TokenMinute:
		return twoDigit(date.Minute())
	case TokenSecond:
		return twoDigit(date.Second())
	default:
		return ""
	}
}

func twoDigit(v int) string {
	if v >= 0 && v < 10 {
		return "0" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}

// Format is a compiled pattern together with the locale it was compiled
// for. It is immutable and safe for concurrent use.
type Format struct {
	tokens []FormatToken
	locale InnerLocale
}

// CreateFormat compiles pattern using the locale obtained by resolving
// overrides. Unknown characters become literal text, so compilation never
// fails.
func CreateFormat(pattern string, overrides Locale) *Format {
	return CreateFormatWithLocale(pattern, ResolveLocale(overrides))
}

// CreateFormatWithLocale compiles pattern for an already resolved locale.
func CreateFormatWithLocale(pattern string, locale InnerLocale) *Format {
	var tokens []FormatToken

	for len(pattern) > 0 {
		if id, ok := matchRule(pattern); ok {
			token := FormatToken{Kind: RuleToken, ID: id}
			if id == TokenMonthShort {
				token.AllowedValues = append([]string(nil), locale.ShortMonths[:]...)
			}
			tokens = append(tokens, token)
			pattern = pattern[len(id):]
			continue
		}

		_, size := utf8.DecodeRuneInString(pattern)
		char := pattern[:size]
		pattern = pattern[size:]

		if n := len(tokens); n > 0 && tokens[n-1].Kind == LiteralToken {
			tokens[n-1].Text += char
			continue
		}
		tokens = append(tokens, Literal(char))
	}

	return &Format{tokens: tokens, locale: locale}
}

// NewFormat wraps an explicit token sequence.
func NewFormat(locale InnerLocale, tokens ...FormatToken) *Format {
	copied := make([]FormatToken, len(tokens))
	for i, token := range tokens {
		token.AllowedValues = cloneStrings(token.AllowedValues)
		copied[i] = token
	}
	return &Format{tokens: copied, locale: locale}
}

func matchRule(pattern string) (TokenID, bool) {
	for _, id := range ruleTokenOrder {
		if strings.HasPrefix(pattern, string(id)) {
			return id, true
		}
	}
	return "", false
}

// Tokens returns a copy of the compiled tokens
func (f *Format) Tokens() []FormatToken {
	if f == nil {
		return nil
	}
	out := make([]FormatToken, len(f.tokens))
	for i, token := range f.tokens {
		token.AllowedValues = cloneStrings(token.AllowedValues)
		out[i] = token
	}
	return out
}

// Locale returns the locale the format was compiled with
func (f *Format) Locale() InnerLocale {
	if f == nil {
		return DefaultLocale()
	}
	return f.locale
}

// Pattern reassembles the source pattern
func (f *Format) Pattern() string {
	if f == nil {
		return ""
	}
	var b strings.Builder
	for _, token := range f.tokens {
		b.WriteString(token.String())
	}
	return b.String()
}

// Render formats date. A zero date renders as the empty string.
func (f *Format) Render(date time.Time) string {
	if f == nil || date.IsZero() {
		return ""
	}
	var b strings.Builder
	for _, token := range f.tokens {
		b.WriteString(token.Render(date, f.locale))
	}
	return b.String()
}

// ToText renders date with f.
func ToText(date time.Time, f *Format) string {
	return f.Render(date)
}
