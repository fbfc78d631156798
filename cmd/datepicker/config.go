package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	datepicker "github.com/goliatone/go-datepicker"
)

// boundLayout is the layout of min/max dates in the config file
const boundLayout = "2006-01-02"

// fileConfig is the TOML configuration of the CLI
type fileConfig struct {
	Pattern     string         `toml:"pattern"`
	Locale      string         `toml:"locale"`
	UseMonday   bool           `toml:"use_monday"`
	LocaleFiles []string       `toml:"locale_files"`
	LogLevel    string         `toml:"log_level"`
	Fallbacks   fallbackConfig `toml:"fallbacks"`
	Bounds      struct {
		Min string `toml:"min"`
		Max string `toml:"max"`
	} `toml:"bounds"`
	Overrides struct {
		Weekdays     []string `toml:"weekdays"`
		Months       []string `toml:"months"`
		ShortMonths  []string `toml:"short_months"`
		WeekStartsOn *int     `toml:"week_starts_on"`
	} `toml:"overrides"`
}

type fallbackConfig map[string][]string

func defaultFileConfig() fileConfig {
	return fileConfig{
		Pattern:  datepicker.DefaultPattern,
		LogLevel: "info",
	}
}

// loadFileConfig reads path on top of the defaults. An empty path returns
// the defaults.
func loadFileConfig(path string) (fileConfig, error) {
	cfg := defaultFileConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Pattern == "" {
		cfg.Pattern = datepicker.DefaultPattern
	}
	return cfg, nil
}

func (c fileConfig) bounds() (time.Time, time.Time, error) {
	return c.boundsIn(time.Local)
}

// boundsIn parses the configured bounds as dates in loc
func (c fileConfig) boundsIn(loc *time.Location) (time.Time, time.Time, error) {
	var min, max time.Time
	var err error
	if c.Bounds.Min != "" {
		if min, err = time.ParseInLocation(boundLayout, c.Bounds.Min, loc); err != nil {
			return min, max, fmt.Errorf("bounds.min: %w", err)
		}
	}
	if c.Bounds.Max != "" {
		if max, err = time.ParseInLocation(boundLayout, c.Bounds.Max, loc); err != nil {
			return min, max, fmt.Errorf("bounds.max: %w", err)
		}
		// the whole max day is selectable
		max = max.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return min, max, nil
}

// options converts the file configuration into picker options
func (c fileConfig) options(logger *slog.Logger) ([]datepicker.Option, error) {
	min, max, err := c.bounds()
	if err != nil {
		return nil, err
	}

	opts := []datepicker.Option{
		datepicker.WithPattern(c.Pattern),
		datepicker.WithBounds(min, max),
		datepicker.WithLogger(logger),
		datepicker.WithLocale(datepicker.Locale{
			Weekdays:     c.Overrides.Weekdays,
			Months:       c.Overrides.Months,
			ShortMonths:  c.Overrides.ShortMonths,
			WeekStartsOn: c.Overrides.WeekStartsOn,
		}),
	}

	if len(c.LocaleFiles) > 0 {
		opts = append(opts, datepicker.WithLocaleFiles(c.LocaleFiles...))
	}
	for locale, chain := range c.Fallbacks {
		opts = append(opts, datepicker.WithFallback(locale, chain...))
	}

	if c.Locale != "" {
		if c.UseMonday {
			localizer, err := datepicker.NewMondayLocalizer(c.Locale)
			if err != nil {
				return nil, err
			}
			logger.Debug("using monday locale",
				slog.String("locale", localizer.Code()),
				slog.String("monday_locale", string(localizer.MondayLocale())),
			)
			opts = append(opts, datepicker.WithLocalizer(localizer))
		} else {
			opts = append(opts, datepicker.WithLocaleCode(c.Locale))
		}
	}

	return opts, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
