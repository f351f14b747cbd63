package alphamap

import "errors"

// AlphaChar is a code point in the application's native character space.
// The space may be sparse and large; value 0 acts as the string terminator.
type AlphaChar uint32

// TrieChar is a compact code used as a trie transition index.
// Code 0 is reserved as terminator, valid codes start at 1.
type TrieChar uint16

const (
	// TrieCharMax is returned by CharToTrie for characters outside every
	// registered range.
	TrieCharMax = ^TrieChar(0)

	// AlphaCharError is returned by TrieToChar for compact codes with no
	// corresponding external character.
	AlphaCharError = ^AlphaChar(0)
)

// ErrInvalidRange rejects a range whose begin exceeds its end.
var ErrInvalidRange = errors.New("alphamap: range begin exceeds range end")

// AlphaRange is a closed interval [Begin,End] of external characters.
// Each range owns a contiguous block of End-Begin+1 compact codes.
type AlphaRange struct {
	Begin AlphaChar
	End   AlphaChar
}

func (r AlphaRange) size() int { return int(r.End-r.Begin) + 1 }

// AlphaMap holds registered character ranges in registration order.
//
// Ranges must be supplied in increasing order and mutually disjoint for the
// compact code space to stay consistent, and the total number of registered
// characters must stay below TrieCharMax (the lookup accumulator wraps
// beyond that). AddRange does not verify either rule (see Validate). The
// zero value is an empty, usable map.
type AlphaMap struct {
	ranges []AlphaRange
}

// New creates an empty AlphaMap.
func New() *AlphaMap {
	return &AlphaMap{}
}

// AddRange appends the closed interval [begin,end] to the map.
// It returns ErrInvalidRange, without inserting, if begin > end.
func (m *AlphaMap) AddRange(begin, end AlphaChar) error {
	if begin > end {
		return ErrInvalidRange
	}
	m.ranges = append(m.ranges, AlphaRange{Begin: begin, End: end})
	return nil
}

// Len returns the number of registered ranges.
func (m *AlphaMap) Len() int { return len(m.ranges) }

// Size returns the total number of assigned compact codes. A trie consuming
// this map needs Size+1 transition slots per state (slot 0 is the
// terminator).
func (m *AlphaMap) Size() int {
	n := 0
	for _, r := range m.ranges {
		n += r.size()
	}
	return n
}

// Ranges returns a copy of the registered ranges in registration order.
func (m *AlphaMap) Ranges() []AlphaRange {
	rr := make([]AlphaRange, len(m.ranges))
	copy(rr, m.ranges)
	return rr
}

// CharToTrie maps an external character to its compact code.
// It returns 0 for the terminator and TrieCharMax for characters outside
// every registered range.
func (m *AlphaMap) CharToTrie(ac AlphaChar) TrieChar {
	if ac == 0 {
		return 0
	}
	base := TrieChar(1)
	for _, r := range m.ranges {
		if r.Begin <= ac && ac <= r.End {
			return base + TrieChar(ac-r.Begin)
		}
		base += TrieChar(r.size())
	}
	return TrieCharMax
}

// TrieToChar maps a compact code back to its external character.
// It returns 0 for the terminator and AlphaCharError for codes outside the
// assigned code space.
func (m *AlphaMap) TrieToChar(tc TrieChar) AlphaChar {
	if tc == 0 {
		return 0
	}
	base := TrieChar(1)
	for _, r := range m.ranges {
		if base+TrieChar(r.End-r.Begin) >= tc {
			return r.Begin + AlphaChar(tc-base)
		}
		base += TrieChar(r.size())
	}
	return AlphaCharError
}

// CharsToTrie maps a character sequence element-wise. Unmapped characters
// yield TrieCharMax in place and do not stop the mapping; a 0 element maps
// to 0, so terminator-carrying sequences convert unchanged.
func (m *AlphaMap) CharsToTrie(str []AlphaChar) []TrieChar {
	out := make([]TrieChar, len(str))
	for i, ac := range str {
		out[i] = m.CharToTrie(ac)
	}
	return out
}

// TrieToChars maps a compact code sequence element-wise, with the same
// no-early-stop policy as CharsToTrie.
func (m *AlphaMap) TrieToChars(str []TrieChar) []AlphaChar {
	out := make([]AlphaChar, len(str))
	for i, tc := range str {
		out[i] = m.TrieToChar(tc)
	}
	return out
}

// MapString maps the runes of s to compact codes.
func (m *AlphaMap) MapString(s string) []TrieChar {
	return m.CharsToTrie(AlphaString(s))
}

// AlphaString converts a Go string to an external character sequence,
// one AlphaChar per rune.
func AlphaString(s string) []AlphaChar {
	str := make([]AlphaChar, 0, len(s))
	for _, r := range s {
		str = append(str, AlphaChar(r))
	}
	return str
}
