package datepicker

// FallbackResolver resolves fallback locale chains
type FallbackResolver interface {
	Resolve(locale string) []string
}

// StaticFallbackResolver maps locales to an explicit, ordered list of
// fallbacks.
type StaticFallbackResolver struct {
	chains map[string][]string
}

var _ FallbackResolver = &StaticFallbackResolver{}

func NewStaticFallbackResolver() *StaticFallbackResolver {
	return &StaticFallbackResolver{chains: make(map[string][]string)}
}

// Set replaces the fallback chain for locale
func (s *StaticFallbackResolver) Set(locale string, fallbacks ...string) {
	if s == nil {
		return
	}
	locale = normalizeLocale(locale)
	if locale == "" {
		return
	}
	if s.chains == nil {
		s.chains = make(map[string][]string)
	}

	chain := make([]string, 0, len(fallbacks))
	for _, fallback := range fallbacks {
		if fallback = normalizeLocale(fallback); fallback != "" && fallback != locale {
			chain = append(chain, fallback)
		}
	}
	s.chains[locale] = chain
}

func (s *StaticFallbackResolver) Resolve(locale string) []string {
	if s == nil || len(s.chains) == 0 {
		return nil
	}
	chain, ok := s.chains[normalizeLocale(locale)]
	if !ok {
		return nil
	}
	return append([]string(nil), chain...)
}
