package datepicker

import (
	"testing"
	"time"
)

func newTestPicker(t *testing.T, opts ...Option) *Picker {
	t.Helper()

	defaults := []Option{
		WithPattern("yyyy-MM-dd"),
		WithBounds(day(2020, time.January, 1), day(2020, time.January, 31)),
		WithDisabledDates(weekend),
		WithBaseDate(day(2020, time.January, 15)),
	}

	cfg, err := NewConfig(append(defaults, opts...)...)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	picker, err := cfg.BuildPicker()
	if err != nil {
		t.Fatalf("BuildPicker: %v", err)
	}
	return picker
}

func TestPickerInput(t *testing.T) {
	picker := newTestPicker(t)

	res := picker.Input("2020-01-10")
	if !res.Valid || !res.Value.Equal(day(2020, time.January, 10)) {
		t.Fatalf("Input(2020-01-10) = %+v", res)
	}
	if !picker.BrowseDate().Equal(day(2020, time.January, 10)) {
		t.Fatalf("BrowseDate() = %s; want the selected date", picker.BrowseDate())
	}

	tests := []struct {
		name            string
		input           string
		wantUnavailable bool
		wantCompletion  string
	}{
		{"disabled date", "2020-01-11", true, ""},
		{"after max", "2020-02-03", true, ""},
		{"incomplete", "2020", false, "2020-"},
		{"incomplete month", "2020-01", false, "2020-01-"},
		{"garbage", "garbage", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := picker.Input(tt.input)
			if res.Valid {
				t.Fatalf("Input(%q) is valid", tt.input)
			}
			if res.Unavailable != tt.wantUnavailable {
				t.Fatalf("Input(%q).Unavailable = %v; want %v", tt.input, res.Unavailable, tt.wantUnavailable)
			}
			if res.Completion != tt.wantCompletion {
				t.Fatalf("Input(%q).Completion = %q; want %q", tt.input, res.Completion, tt.wantCompletion)
			}
			if !picker.Value().Equal(day(2020, time.January, 10)) {
				t.Fatalf("Input(%q) changed the value to %s", tt.input, picker.Value())
			}
			if picker.Text() != tt.input {
				t.Fatalf("Text() = %q; want %q", picker.Text(), tt.input)
			}
		})
	}
}

func TestPickerSetValue(t *testing.T) {
	picker := newTestPicker(t)
	picker.Input("2020-01-10")

	got := picker.SetValue(day(2020, time.January, 11))
	if want := day(2020, time.January, 13); !got.Equal(want) {
		t.Fatalf("SetValue(Saturday) = %s; want %s", got, want)
	}
	if picker.Text() != "2020-01-13" {
		t.Fatalf("Text() = %q; want 2020-01-13", picker.Text())
	}

	got = picker.SetValue(day(2021, time.June, 1))
	if want := day(2020, time.January, 31); !got.Equal(want) {
		t.Fatalf("SetValue(after max) = %s; want %s", got, want)
	}

	if got := picker.SetValue(time.Time{}); !got.IsZero() || picker.Text() != "" {
		t.Fatalf("SetValue(zero) = %s,%q; want cleared", got, picker.Text())
	}
}

func TestPickerStep(t *testing.T) {
	picker := newTestPicker(t)

	if got, want := picker.Step(1), day(2020, time.January, 16); !got.Equal(want) {
		t.Fatalf("Step(1) from base = %s; want %s", got, want)
	}

	picker.SetValue(day(2020, time.January, 13))
	if got, want := picker.Step(-1), day(2020, time.January, 10); !got.Equal(want) {
		t.Fatalf("Step(-1) from Monday = %s; want %s", got, want)
	}
	if got, want := picker.Step(1), day(2020, time.January, 13); !got.Equal(want) {
		t.Fatalf("Step(1) from Friday = %s; want %s", got, want)
	}
}

func TestPickerBrowseAndGrid(t *testing.T) {
	picker := newTestPicker(t)

	if got, want := picker.Browse(1), day(2020, time.February, 1); !got.Equal(want) {
		t.Fatalf("Browse(1) = %s; want %s", got, want)
	}

	grid := picker.Grid()
	if len(grid) != CalendarGridSize {
		t.Fatalf("len(Grid()) = %d; want %d", len(grid), CalendarGridSize)
	}
	if want := (CalendarDay{Year: 2020, Month: time.January, Number: 27}); grid[0] != want {
		t.Fatalf("Grid()[0] = %+v; want %+v", grid[0], want)
	}
	if grid[0].Weekday() != picker.Locale().WeekStartsOn {
		t.Fatalf("Grid() starts on %s; want %s", grid[0].Weekday(), picker.Locale().WeekStartsOn)
	}

	weeks := picker.Weeks()
	if want := (CalendarDay{Year: 2020, Month: time.January, Number: 26}); weeks[0][0] != want {
		t.Fatalf("Weeks()[0][0] = %+v; want %+v", weeks[0][0], want)
	}

	if got, want := picker.Browse(-13), day(2019, time.January, 1); !got.Equal(want) {
		t.Fatalf("Browse(-13) = %s; want %s", got, want)
	}
}

func TestPickerSelectable(t *testing.T) {
	picker := newTestPicker(t)

	if !picker.Selectable(day(2020, time.January, 15)) {
		t.Fatal("expected Wednesday inside bounds to be selectable")
	}
	if picker.Selectable(day(2020, time.January, 18)) {
		t.Fatal("expected Saturday to be disabled")
	}
	if picker.Selectable(day(2019, time.December, 31)) {
		t.Fatal("expected date before min to be unavailable")
	}

	min, max := picker.Bounds()
	if !min.Equal(day(2020, time.January, 1)) || !max.Equal(day(2020, time.January, 31)) {
		t.Fatalf("Bounds() = %s,%s", min, max)
	}
}

func TestPickerLocale(t *testing.T) {
	picker := newTestPicker(t, WithLocaleCode("nb"), WithPattern("dd MMM yyyy"))

	res := picker.Input("14. jan. 2020")
	if res.Valid {
		t.Fatal("expected literal mismatch")
	}

	res = picker.Input("14 JAN. 2020")
	if !res.Valid || !res.Value.Equal(day(2020, time.January, 14)) {
		t.Fatalf("Input() = %+v; want 14 January 2020", res)
	}
	if picker.Format().Render(res.Value) != "14 jan. 2020" {
		t.Fatalf("Render() = %q", picker.Format().Render(res.Value))
	}
}
