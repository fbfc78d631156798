package datepicker

import (
	"fmt"
	"log/slog"
	"time"
)

// DefaultPattern is used when no pattern is configured
const DefaultPattern = "yyyy-MM-dd HH:mm:ss"

// Config captures picker setup
type Config struct {
	Pattern    string
	LocaleCode string
	Locale     Locale
	MinDate    time.Time
	MaxDate    time.Time
	IsDisabled DisabledFunc
	BaseDate   time.Time
	Hooks      []ParseHook
	Logger     *slog.Logger

	loader    Loader
	resolver  *StaticFallbackResolver
	localeSet *LocaleSet
	localizer Localizer
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Pattern == "" {
		cfg.Pattern = DefaultPattern
	}

	if !cfg.MinDate.IsZero() && !cfg.MaxDate.IsZero() && cfg.MinDate.After(cfg.MaxDate) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidBounds,
			cfg.MinDate.Format(time.RFC3339), cfg.MaxDate.Format(time.RFC3339))
	}

	if cfg.localeSet == nil && (cfg.loader != nil || cfg.resolver != nil) {
		var defs map[string]Locale
		if cfg.loader != nil {
			loaded, err := cfg.loader.Load()
			if err != nil {
				return nil, err
			}
			defs = loaded
		}

		var resolver FallbackResolver
		if cfg.resolver != nil {
			resolver = cfg.resolver
		}
		set, err := NewLocaleSet(defs, resolver)
		if err != nil {
			return nil, err
		}
		cfg.localeSet = set
	}

	if cfg.Logger != nil {
		cfg.Hooks = append(cfg.Hooks, NewLoggingHook(cfg.Logger))
	}

	return cfg, nil
}

// WithPattern sets the input/display pattern
func WithPattern(pattern string) Option {
	return func(c *Config) error {
		c.Pattern = pattern
		return nil
	}
}

// WithLocale applies overrides on top of whatever locale is selected
func WithLocale(overrides Locale) Option {
	return func(c *Config) error {
		c.Locale = c.Locale.merge(overrides)
		return nil
	}
}

// WithLocaleCode selects a locale from the configured locale set or the
// built-in data
func WithLocaleCode(code string) Option {
	return func(c *Config) error {
		c.LocaleCode = normalizeLocale(code)
		return nil
	}
}

func WithLocaleSet(set *LocaleSet) Option {
	return func(c *Config) error {
		c.localeSet = set
		return nil
	}
}

func WithLoader(loader Loader) Option {
	return func(c *Config) error {
		c.loader = loader
		return nil
	}
}

// WithLocaleFiles loads locale overrides from JSON or YAML files
func WithLocaleFiles(paths ...string) Option {
	return func(c *Config) error {
		if len(paths) == 0 {
			return nil
		}
		c.loader = NewFileLoader(paths...)
		return nil
	}
}

func WithFallback(locale string, fallbacks ...string) Option {
	return func(c *Config) error {
		if locale == "" {
			return nil
		}
		if c.resolver == nil {
			c.resolver = NewStaticFallbackResolver()
		}
		c.resolver.Set(locale, fallbacks...)
		return nil
	}
}

// WithLocalizer takes names and week start from an external provider,
// such as a MondayLocalizer
func WithLocalizer(localizer Localizer) Option {
	return func(c *Config) error {
		c.localizer = localizer
		return nil
	}
}

// WithBounds restricts selectable dates; a zero time leaves that side open
func WithBounds(min, max time.Time) Option {
	return func(c *Config) error {
		c.MinDate = min
		c.MaxDate = max
		return nil
	}
}

func WithDisabledDates(fn DisabledFunc) Option {
	return func(c *Config) error {
		c.IsDisabled = fn
		return nil
	}
}

// WithBaseDate seeds fields missing from the pattern when nothing is
// selected yet
func WithBaseDate(base time.Time) Option {
	return func(c *Config) error {
		c.BaseDate = base
		return nil
	}
}

func WithParseHooks(hooks ...ParseHook) Option {
	return func(c *Config) error {
		for _, hook := range hooks {
			if hook == nil {
				continue
			}
			c.Hooks = append(c.Hooks, hook)
		}
		return nil
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// InnerLocale resolves the configured locale. Precedence, lowest first:
// defaults, the localizer or the locale code, then Locale overrides.
func (cfg *Config) InnerLocale() InnerLocale {
	if cfg == nil {
		return DefaultLocale()
	}

	var base Locale
	switch {
	case cfg.localizer != nil:
		base = FromLocalizer(cfg.localizer).Overrides()
	case cfg.LocaleCode != "":
		base, _ = cfg.localeSet.Overrides(cfg.LocaleCode)
	}

	return ResolveLocale(base.merge(cfg.Locale))
}

// LocaleSet returns the configured locale set; nil means built-in data only
func (cfg *Config) LocaleSet() *LocaleSet {
	if cfg == nil {
		return nil
	}
	return cfg.localeSet
}

// BuildFormat compiles the configured pattern
func (cfg *Config) BuildFormat() *Format {
	if cfg == nil {
		return CreateFormatWithLocale(DefaultPattern, DefaultLocale())
	}
	return CreateFormatWithLocale(cfg.Pattern, cfg.InnerLocale())
}

func (cfg *Config) BuildPicker() (*Picker, error) {
	if cfg == nil {
		return nil, fmt.Errorf("datepicker: nil config")
	}

	base := cfg.BaseDate
	if base.IsZero() {
		base = DefaultBaseDate()
	}

	format := cfg.BuildFormat()
	return &Picker{
		format:     format,
		locale:     format.Locale(),
		min:        cfg.MinDate,
		max:        cfg.MaxDate,
		isDisabled: cfg.IsDisabled,
		parse:      WrapParseWithHooks(Parse, cfg.Hooks...),
		base:       base,
		browse:     Clamp(base, cfg.MinDate, cfg.MaxDate),
	}, nil
}
