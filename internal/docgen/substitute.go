package docgen

import (
	"sort"
	"strings"
)

// PlaceholderMap maps placeholder keys (the text between {{ and }}) to
// their replacement values. Keys are case-sensitive and may contain
// digits, underscores, hyphens, and percent signs.
type PlaceholderMap map[string]string

// Substitute replaces every {{KEY}} occurrence for each key in the map.
// Tokens whose key is not in the map pass through untouched so unrelated
// template syntax is never corrupted. Keys are applied in sorted order to
// keep the output deterministic.
func Substitute(xml string, m PlaceholderMap) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		xml = strings.ReplaceAll(xml, "{{"+k+"}}", m[k])
	}
	return xml
}
