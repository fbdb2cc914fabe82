package widgetdiff

import (
	"sort"

	"github.com/cespare/xxhash/v2"
)

// HashProps fingerprints a widget's non-child properties. Keys are sorted
// before hashing so the fingerprint is independent of map iteration order.
// Equal hashes are treated as "no visible change"; collisions are an
// accepted modeling risk, the same as any fingerprint scheme.
func HashProps(props map[string]string) uint64 {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	d := xxhash.New()
	for _, k := range keys {
		// NUL-delimit key and value so {"a": "b"} and {"ab": ""} hash
		// differently.
		d.WriteString(k)
		d.Write([]byte{0})
		d.WriteString(props[k])
		d.Write([]byte{0})
	}
	return d.Sum64()
}

// HashString fingerprints a single string property, e.g. text content.
func HashString(s string) uint64 {
	return xxhash.Sum64String(s)
}
