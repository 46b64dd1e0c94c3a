package verbalizer

import (
	"strings"

	"golang.org/x/text/language"
)

// normalizeLocale trims the identifier, swaps underscores for hyphens and
// returns the canonical BCP 47 form when it parses ("sw_ke" => "sw-KE").
func normalizeLocale(locale string) string {
	trimmed := strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	if trimmed == "" {
		return ""
	}
	if tag, err := language.Parse(trimmed); err == nil {
		return tag.String()
	}
	return trimmed
}

// localeParentChain lists the parents of locale from closest to root,
// "sw-Latn-KE" => ["sw-Latn", "sw"]. The root "und" is never included.
func localeParentChain(locale string) []string {
	if locale == "" {
		return nil
	}

	var chain []string
	seen := map[string]struct{}{locale: {}}
	appendParent := func(value string) bool {
		if value == "" || value == "und" {
			return false
		}
		if _, exists := seen[value]; exists {
			return true
		}
		seen[value] = struct{}{}
		chain = append(chain, value)
		return true
	}

	if tag, err := language.Parse(locale); err == nil {
		for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
			if !appendParent(parent.String()) {
				break
			}
		}
	}

	for current := locale; ; {
		idx := strings.LastIndex(current, "-")
		if idx <= 0 {
			break
		}
		current = current[:idx]
		appendParent(current)
	}

	return chain
}
