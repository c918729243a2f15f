package entity

import (
	"sort"
	"strings"
)

// SelectedVariant maps a variant type name to the chosen option value,
// e.g. {"color": "red", "size": "M"}.
type SelectedVariant map[string]string

// Encode returns the canonical key for a selection: pairs sorted by type
// name, each rendered as "type:value" and joined with "|". Two selections
// with the same pairs encode identically regardless of insertion order.
// A nil or empty selection encodes to the empty string, which is its own
// equivalence class distinct from any populated selection.
func (v SelectedVariant) Encode() string {
	if len(v) == 0 {
		return ""
	}

	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+":"+v[k])
	}

	return strings.Join(pairs, "|")
}
