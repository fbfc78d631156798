package datepicker

import (
	"testing"
	"time"
)

var parseBase = time.Date(1234, time.January, 1, 0, 0, 0, 999000000, time.UTC)

func TestParse(t *testing.T) {
	nb := builtinLocales["nb"]

	tests := []struct {
		name        string
		pattern     string
		locale      Locale
		input       string
		want        time.Time
		wantValid   bool
		wantMissing string
	}{
		{
			name:      "full pattern with doubled separator",
			pattern:   "yyyy--MM-dd HH:mm:ss",
			input:     "1234--12-31 23:59:59",
			want:      time.Date(1234, time.December, 31, 23, 59, 59, 999000000, time.UTC),
			wantValid: true,
		},
		{
			name:      "short month",
			pattern:   "dd MMM yyyy",
			input:     "31 Dec 2022",
			want:      time.Date(2022, time.December, 31, 0, 0, 0, 999000000, time.UTC),
			wantValid: true,
		},
		{
			name:      "norwegian short month",
			pattern:   "dd MMM yyyy",
			locale:    nb,
			input:     "31 des. 2022",
			want:      time.Date(2022, time.December, 31, 0, 0, 0, 999000000, time.UTC),
			wantValid: true,
		},
		{
			name:      "short month ignores case",
			pattern:   "dd MMM yyyy",
			input:     "31 dec 2022",
			want:      time.Date(2022, time.December, 31, 0, 0, 0, 999000000, time.UTC),
			wantValid: true,
		},
		{
			name:      "unknown short month",
			pattern:   "dd MMM yyyy",
			input:     "31 Dex",
			wantValid: false,
		},
		{
			name:        "input ends before literal",
			pattern:     "yyyy--MM-dd",
			input:       "2345",
			wantValid:   false,
			wantMissing: "--",
		},
		{
			name:        "input ends inside literal",
			pattern:     "yyyy--MM-dd",
			input:       "2345-",
			wantValid:   false,
			wantMissing: "-",
		},
		{
			name:        "input ends before time separator",
			pattern:     DefaultPattern,
			input:       "2020-01-01 12",
			wantValid:   false,
			wantMissing: ":",
		},
		{
			name:      "wrong literal",
			pattern:   DefaultPattern,
			input:     "2020/01/01 00:00:00",
			wantValid: false,
		},
		{
			name:      "minute out of range",
			pattern:   DefaultPattern,
			input:     "2020-01-01 12:99:00",
			wantValid: false,
		},
		{
			name:      "day beyond month length",
			pattern:   "yyyy-MM-dd",
			input:     "2021-02-31",
			wantValid: false,
		},
		{
			name:      "leap day",
			pattern:   "yyyy-MM-dd",
			input:     "2020-02-29",
			want:      time.Date(2020, time.February, 29, 0, 0, 0, 999000000, time.UTC),
			wantValid: true,
		},
		{
			name:      "leap day in common year",
			pattern:   "yyyy-MM-dd",
			input:     "2019-02-29",
			wantValid: false,
		},
		{
			name:      "single digit day",
			pattern:   "dd",
			input:     "5d",
			wantValid: false,
		},
		{
			name:      "month zero",
			pattern:   "yyyy-MM",
			input:     "2020-00",
			wantValid: false,
		},
		{
			name:      "fields missing from pattern come from base",
			pattern:   "MM-dd HH:mm:ss",
			input:     "12-31 23:59:59",
			want:      time.Date(1234, time.December, 31, 23, 59, 59, 999000000, time.UTC),
			wantValid: true,
		},
		{
			name:      "two digit year",
			pattern:   "yy-MM-dd",
			input:     "21-03-04",
			want:      time.Date(2021, time.March, 4, 0, 0, 0, 999000000, time.UTC),
			wantValid: true,
		},
		{
			name:      "trailing input is ignored",
			pattern:   "yyyy-MM-dd",
			input:     "2020-05-06T10",
			want:      time.Date(2020, time.May, 6, 0, 0, 0, 999000000, time.UTC),
			wantValid: true,
		},
		{
			name:      "empty input",
			pattern:   DefaultPattern,
			input:     "",
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Parse(tt.input, CreateFormat(tt.pattern, tt.locale), parseBase)

			if res.Valid != tt.wantValid {
				t.Fatalf("Parse(%q).Valid = %v; want %v", tt.input, res.Valid, tt.wantValid)
			}
			if res.MissingPunctuation != tt.wantMissing {
				t.Fatalf("Parse(%q).MissingPunctuation = %q; want %q", tt.input, res.MissingPunctuation, tt.wantMissing)
			}
			if tt.wantValid && !res.Date.Equal(tt.want) {
				t.Fatalf("Parse(%q).Date = %s; want %s", tt.input, res.Date, tt.want)
			}
			if !tt.wantValid && !res.Date.IsZero() {
				t.Fatalf("Parse(%q).Date = %s; want zero", tt.input, res.Date)
			}
		})
	}
}

func TestParseShortMonthLongestMatch(t *testing.T) {
	short := defaultShortMonths
	short[0] = "J"
	f := CreateFormat("MMM yyyy", Locale{ShortMonths: short[:]})

	res := Parse("Jun 2020", f, parseBase)
	if !res.Valid {
		t.Fatal("Parse(\"Jun 2020\") is invalid")
	}
	if res.Date.Month() != time.June {
		t.Fatalf("Parse(\"Jun 2020\").Date.Month() = %s; want June", res.Date.Month())
	}

	res = Parse("J 2020", f, parseBase)
	if !res.Valid || res.Date.Month() != time.January {
		t.Fatalf("Parse(\"J 2020\") = %+v; want January", res)
	}
}

func TestParseDefaultBase(t *testing.T) {
	res := Parse("2021", CreateFormat("yyyy", Locale{}), time.Time{})
	if !res.Valid {
		t.Fatal("Parse() is invalid")
	}

	want := time.Date(2021, time.January, 1, 0, 0, 0, 0, time.Local)
	if !res.Date.Equal(want) {
		t.Fatalf("Parse().Date = %s; want %s", res.Date, want)
	}
}

func TestParseKeepsBaseLocation(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	base := time.Date(2000, time.June, 1, 0, 0, 0, 0, loc)

	res := Parse("10:30", CreateFormat("HH:mm", Locale{}), base)
	if !res.Valid {
		t.Fatal("Parse() is invalid")
	}
	if res.Date.Location() != loc {
		t.Fatalf("Parse().Date.Location() = %s; want %s", res.Date.Location(), loc)
	}
	if got := res.Date.Format("2006-01-02 15:04"); got != "2000-06-01 10:30" {
		t.Fatalf("Parse().Date = %s; want 2000-06-01 10:30", got)
	}
}

func TestParseRenderRoundTrip(t *testing.T) {
	patterns := []string{
		DefaultPattern,
		"dd MMM yyyy HH:mm:ss",
		"HH:mm:ss dd/MM/yyyy",
	}
	locales := []Locale{{}, builtinLocales["nb"], builtinLocales["de"]}

	dates := []time.Time{
		time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(1999, time.December, 31, 23, 59, 59, 0, time.UTC),
		time.Date(2024, time.February, 29, 12, 30, 15, 0, time.UTC),
		time.Date(2023, time.March, 5, 6, 7, 8, 0, time.UTC),
	}

	for _, pattern := range patterns {
		for _, locale := range locales {
			f := CreateFormat(pattern, locale)
			for _, date := range dates {
				text := f.Render(date)
				res := Parse(text, f, time.Date(2000, time.June, 15, 0, 0, 0, 0, time.UTC))
				if !res.Valid {
					t.Fatalf("Parse(%q) with %q is invalid", text, pattern)
				}
				if !res.Date.Equal(date) {
					t.Fatalf("Parse(%q) with %q = %s; want %s", text, pattern, res.Date, date)
				}
			}
		}
	}
}

func TestParseAccentedShortMonths(t *testing.T) {
	fr := Locale{ShortMonths: []string{
		"janv.", "févr.", "mars", "avr.", "mai", "juin",
		"juil.", "août", "sept.", "oct.", "nov.", "déc.",
	}}
	f := CreateFormat("dd MMM yyyy", fr)
	want := time.Date(2020, time.February, 1, 0, 0, 0, 0, time.UTC)
	base := time.Date(2000, time.June, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
	}{
		{"composed", "01 févr. 2020"},
		{"decomposed", "01 fe\u0301vr. 2020"},
		{"upper case", "01 FÉVR. 2020"},
		{"upper case decomposed", "01 FE\u0301VR. 2020"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Parse(tt.input, f, base)
			if !res.Valid {
				t.Fatalf("Parse(%q) is invalid", tt.input)
			}
			if !res.Date.Equal(want) {
				t.Fatalf("Parse(%q).Date = %s; want %s", tt.input, res.Date, want)
			}
		})
	}

	res := Parse("01 août 2020", f, base)
	if !res.Valid || res.Date.Month() != time.August {
		t.Fatalf("Parse(août) = %+v; want August", res)
	}
}

func TestParseNilFormat(t *testing.T) {
	res := Parse("garbage", nil, parseBase)
	if res.Valid || !res.Date.IsZero() || res.MissingPunctuation != "" {
		t.Fatalf("Parse(nil format) = %+v; want empty result", res)
	}
}

func TestParseRejectsZeroTime(t *testing.T) {
	f := CreateFormat("yyyy-MM-dd HH:mm:ss", Locale{})
	base := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

	res := Parse("0001-01-01 00:00:00", f, base)
	if res.Valid {
		t.Fatalf("Parse(zero time) = %+v; want invalid", res)
	}

	res = Parse("0001-01-01 00:00:01", f, base)
	if !res.Valid || res.Date.Second() != 1 {
		t.Fatalf("Parse(0001-01-01 00:00:01) = %+v; want valid", res)
	}
}
