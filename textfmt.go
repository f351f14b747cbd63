package alphamap

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/textbits/alphamap/fio"
)

// rangeLine matches one range definition, interior whitespace optional.
var rangeLine = regexp.MustCompile(`^\s*\[\s*([0-9A-Fa-f]+)\s*,\s*([0-9A-Fa-f]+)\s*\]`)

// Load parses a textual alphabet definition.
//
// Each recognized line registers one range:
//
//	[b,e]
//
// with b and e hexadecimal and arbitrary surrounding whitespace. Every
// other line counts as a comment and is skipped, which lets definitions
// carry free-form annotations. A line with b > e is skipped with a
// diagnostic on the package tracer. Ordering violations across accepted
// lines are reported the same way but do not fail the load.
func Load(r io.Reader) (*AlphaMap, error) {
	m := New()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		match := rangeLine.FindStringSubmatch(scanner.Text())
		if match == nil {
			continue
		}
		b, berr := strconv.ParseUint(match[1], 16, 32)
		e, eerr := strconv.ParseUint(match[2], 16, 32)
		if berr != nil || eerr != nil {
			continue // hex value beyond 32 bits, treat like any garbage line
		}
		if b > e {
			tracer().Errorf("range begin (%x) > range end (%x)", b, e)
			continue
		}
		if err := m.AddRange(AlphaChar(b), AlphaChar(e)); err != nil {
			tracer().Errorf("range [%x,%x] rejected: %v", b, e, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("alphamap: read alphabet definition: %w", err)
	}
	if err := m.Validate(); err != nil {
		tracer().Errorf("invalid alphabet definition: %v", err)
	}
	return m, nil
}

// Open loads a textual alphabet definition from the file path/name.ext.
// It returns no map when the resource cannot be opened.
func Open(path, name, ext string) (*AlphaMap, error) {
	f, err := fio.Open(path, name, ext)
	if err != nil {
		return nil, fmt.Errorf("alphamap: open alphabet definition: %w", err)
	}
	defer f.Close()
	return Load(f)
}
