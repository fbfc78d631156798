package datepicker

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader retrieves named locale overrides
type Loader interface {
	Load() (map[string]Locale, error)
}

// LoaderFunc adapters allow bare functions to implement Loader interface
type LoaderFunc func() (map[string]Locale, error)

// Load implements Loader for LoaderFunc
func (fn LoaderFunc) Load() (map[string]Locale, error) {
	return fn()
}

// FileLoader reads locale overrides from JSON and YAML files shaped as
//
//	nb:
//	  weekStartsOn: 1
//	  shortMonths: [jan., feb., ...]
//
// Files are applied in order; a locale present in several files takes each
// field from the last file that sets it.
type FileLoader struct {
	paths []string
}

var _ Loader = &FileLoader{}

func NewFileLoader(paths ...string) *FileLoader {
	return &FileLoader{paths: append([]string(nil), paths...)}
}

func (l *FileLoader) Load() (map[string]Locale, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, ErrNoLoaderPaths
	}

	result := make(map[string]Locale)
	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("datepicker: read %s: %w", path, err)
		}

		decoded, err := decodeLocaleFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("datepicker: decode %s: %w", path, err)
		}

		for code, locale := range decoded {
			if existing, ok := result[code]; ok {
				result[code] = existing.merge(locale)
				continue
			}
			result[code] = locale
		}
	}

	return result, nil
}

// rawLocale mirrors Locale but keeps weekStartsOn untyped so that
// non-numeric values can be ignored instead of failing the whole file.
type rawLocale struct {
	Weekdays     []string `json:"weekdays" yaml:"weekdays"`
	Months       []string `json:"months" yaml:"months"`
	ShortMonths  []string `json:"shortMonths" yaml:"shortMonths"`
	WeekStartsOn any      `json:"weekStartsOn" yaml:"weekStartsOn"`
}

func decodeLocaleFile(path string, data []byte) (map[string]Locale, error) {
	var raw map[string]rawLocale

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("yaml parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: extension %q", ErrUnsupportedLocaleFile, ext)
	}

	locales := make(map[string]Locale, len(raw))
	for code, entry := range raw {
		normalized := normalizeLocale(code)
		if normalized == "" {
			return nil, fmt.Errorf("%w in %s", ErrEmptyLocaleCode, path)
		}
		locales[normalized] = entry.locale()
	}
	return locales, nil
}

func (r rawLocale) locale() Locale {
	locale := Locale{
		Weekdays:    r.Weekdays,
		Months:      r.Months,
		ShortMonths: r.ShortMonths,
	}
	if day, ok := weekdayValue(r.WeekStartsOn); ok {
		locale.WeekStartsOn = &day
	}
	return locale
}

func weekdayValue(value any) (int, bool) {
	var n int
	switch v := value.(type) {
	case int:
		n = v
	case int64:
		n = int(v)
	case uint64:
		n = int(v)
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		n = int(v)
	default:
		return 0, false
	}
	if !validWeekday(n) {
		return 0, false
	}
	return n, true
}
