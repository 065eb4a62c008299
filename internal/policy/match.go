package policy

import (
	"sort"
	"strings"
)

// matchPrefixLen is how much of a strategy name the profile resolver compares
// before falling back to containment matching.
const matchPrefixLen = 30

// ResolveProfile finds a strategy's profile in a table keyed by full strategy
// names. Lookup order: exact match, then equal 30-character prefixes, then
// substring containment in either direction. Keys are scanned in sorted order
// so resolution is deterministic. The boolean reports whether any entry
// matched.
//
// This runs once per strategy during configuration loading; the scoring
// pipeline only ever sees resolved profiles.
func ResolveProfile(name string, profiles map[string]map[string]float64) (map[string]float64, bool) {
	if p, ok := profiles[name]; ok {
		return p, true
	}
	n := strings.TrimSpace(name)
	for _, key := range sortedKeys(profiles) {
		k := strings.TrimSpace(key)
		if len(n) > matchPrefixLen && len(k) > matchPrefixLen && n[:matchPrefixLen] == k[:matchPrefixLen] {
			return profiles[key], true
		}
		if strings.Contains(n, k) || strings.Contains(k, n) {
			return profiles[key], true
		}
	}
	return nil, false
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
