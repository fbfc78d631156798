package datepicker

import (
	"fmt"
	"sort"
)

// LocaleSet is an immutable snapshot of named locale overrides. Lookups
// walk the requested code, its fallbacks and parents before falling back
// to the built-in locale data and finally DefaultLocale.
type LocaleSet struct {
	locales  map[string]Locale
	codes    []string
	resolver FallbackResolver
}

// NewLocaleSet validates and copies defs. Codes are normalized to BCP-47
// form; two definitions that normalize to the same code are an error.
func NewLocaleSet(defs map[string]Locale, resolver FallbackResolver) (*LocaleSet, error) {
	locales := make(map[string]Locale, len(defs))
	for raw, def := range defs {
		code := normalizeLocale(raw)
		if code == "" {
			return nil, ErrEmptyLocaleCode
		}
		if _, exists := locales[code]; exists {
			return nil, fmt.Errorf("locale set: duplicate locale %q", code)
		}
		locales[code] = def.Clone()
	}

	codes := make([]string, 0, len(locales))
	for code := range locales {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	return &LocaleSet{
		locales:  locales,
		codes:    codes,
		resolver: resolver,
	}, nil
}

// Codes returns every locale code in the set, sorted alphabetically.
func (s *LocaleSet) Codes() []string {
	if s == nil || len(s.codes) == 0 {
		return nil
	}
	return append([]string(nil), s.codes...)
}

// Has reports whether the set defines locale directly
func (s *LocaleSet) Has(locale string) bool {
	if s == nil {
		return false
	}
	_, ok := s.locales[normalizeLocale(locale)]
	return ok
}

// Overrides returns the merged overrides for locale and whether any
// candidate matched. Built-in data for the closest candidate forms the base
// and overrides from the set are applied on top of it.
func (s *LocaleSet) Overrides(locale string) (Locale, bool) {
	var resolver FallbackResolver
	if s != nil {
		resolver = s.resolver
	}

	candidates := localeCandidates(locale, resolver)

	var (
		base    Locale
		matched bool
	)
	for _, candidate := range candidates {
		if builtin, ok := builtinLocales[candidate]; ok {
			base = builtin.Clone()
			matched = true
			break
		}
	}

	if s == nil {
		return base, matched
	}

	// apply the furthest candidate first so the closest one wins
	for i := len(candidates) - 1; i >= 0; i-- {
		if def, ok := s.locales[candidates[i]]; ok {
			base = base.merge(def)
			matched = true
		}
	}
	return base, matched
}

// Resolve returns the InnerLocale for locale. Unknown locales resolve to
// DefaultLocale.
func (s *LocaleSet) Resolve(locale string) InnerLocale {
	overrides, _ := s.Overrides(locale)
	return ResolveLocale(overrides)
}

// BuiltinLocaleCodes lists the locales shipped with the package.
func BuiltinLocaleCodes() []string {
	codes := make([]string, 0, len(builtinLocales))
	for code := range builtinLocales {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
