package datepicker

import (
	"strings"

	"golang.org/x/text/language"
)

// normalizeLocale turns POSIX style identifiers ("nb_NO") into BCP-47
// ("nb-NO") and trims whitespace.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

func localeParentTag(locale string) string {
	if locale == "" {
		return ""
	}

	tag, err := language.Parse(locale)
	if err == nil {
		parent := tag.Parent()
		if parent == language.Und {
			return ""
		}
		value := parent.String()
		if value == "" || value == "und" {
			return ""
		}
		return value
	}

	if idx := strings.LastIndex(locale, "-"); idx > 0 {
		return locale[:idx]
	}
	return ""
}

// localeParentChain returns the parents of locale ordered from the
// closest parent to the root, excluding "und".
func localeParentChain(locale string) []string {
	var chain []string
	seen := map[string]struct{}{locale: {}}

	for current := localeParentTag(locale); current != ""; current = localeParentTag(current) {
		if _, exists := seen[current]; exists {
			break
		}
		seen[current] = struct{}{}
		chain = append(chain, current)
	}

	// language.Parent keeps the script for some tags (sr-Latn-RS -> sr-Latn)
	// so make sure the bare language is always part of the chain
	if tag, err := language.Parse(locale); err == nil {
		base, _ := tag.Base()
		if value := base.String(); value != "" && value != "und" {
			if _, exists := seen[value]; !exists {
				chain = append(chain, value)
			}
		}
	}

	return chain
}

// localeCandidates lists the codes to try for locale: the code itself, its
// parents, then every fallback from resolver followed by their parents.
func localeCandidates(locale string, resolver FallbackResolver) []string {
	locale = normalizeLocale(locale)
	if locale == "" {
		return nil
	}

	seen := make(map[string]struct{}, 4)
	candidates := make([]string, 0, 4)

	appendLocale := func(value string) {
		if value == "" {
			return
		}
		if _, ok := seen[value]; ok {
			return
		}
		seen[value] = struct{}{}
		candidates = append(candidates, value)
	}

	appendLocale(locale)
	for _, parent := range localeParentChain(locale) {
		appendLocale(parent)
	}

	if resolver != nil {
		for _, fallback := range resolver.Resolve(locale) {
			fallback = normalizeLocale(fallback)
			appendLocale(fallback)
			for _, parent := range localeParentChain(fallback) {
				appendLocale(parent)
			}
		}
	}

	return candidates
}
