package alphamap

import "fmt"

// Validate checks that the registered ranges are strictly increasing and
// mutually disjoint, and that the assigned codes fit the compact code
// space: the last assigned code must stay below TrieCharMax, so at most
// 65534 characters can be registered. AddRange, Load and ReadBin accept
// ranges as supplied; a map violating these rules assigns inconsistent
// compact codes, so callers that cannot trust their source should run
// Validate after construction.
func (m *AlphaMap) Validate() error {
	total := 0
	for i, cur := range m.ranges {
		if i > 0 {
			prev := m.ranges[i-1]
			if cur.Begin <= prev.End {
				return fmt.Errorf("alphamap: range [%x,%x] not after preceding range [%x,%x]",
					uint32(cur.Begin), uint32(cur.End), uint32(prev.Begin), uint32(prev.End))
			}
		}
		total += cur.size()
	}
	if total >= int(TrieCharMax) {
		return fmt.Errorf("alphamap: %d registered characters exceed the compact code space (max %d)",
			total, int(TrieCharMax)-1)
	}
	return nil
}
