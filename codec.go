package alphamap

import (
	"fmt"
	"io"

	"github.com/textbits/alphamap/fio"
)

// Signature identifies a serialized alphabet-map block.
const Signature uint32 = 0xD9FCD9FC

// Block layout, all values 32-bit big-endian:
//
//	signature
//	range count N
//	N × (range begin, range end)   in registration order
//
// Total size is 8 + 8*N bytes.

// WriteBin serializes m as an alphabet-map block. It fails on the first
// short write; bytes already written stay in the stream, so callers must
// discard the output on error.
func WriteBin(m *AlphaMap, w io.Writer) error {
	if err := fio.WriteUint32(w, Signature); err != nil {
		return fmt.Errorf("alphamap: write signature: %w", err)
	}
	if err := fio.WriteUint32(w, uint32(len(m.ranges))); err != nil {
		return fmt.Errorf("alphamap: write range count: %w", err)
	}
	for _, r := range m.ranges {
		if err := fio.WriteUint32(w, uint32(r.Begin)); err != nil {
			return fmt.Errorf("alphamap: write range begin: %w", err)
		}
		if err := fio.WriteUint32(w, uint32(r.End)); err != nil {
			return fmt.Errorf("alphamap: write range end: %w", err)
		}
	}
	return nil
}

// ReadBin probes r for an alphabet-map block at the current position.
//
// When the signature does not match, ReadBin restores the stream position
// and returns (nil, nil): the block is simply not present, which callers
// probing a larger trie file treat as a regular outcome. Decoded ranges are
// taken verbatim; a well-formed source is assumed and ordering is not
// verified (see Validate).
func ReadBin(r io.ReadSeeker) (*AlphaMap, error) {
	savePos, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("alphamap: query stream position: %w", err)
	}
	sig, err := fio.ReadUint32(r)
	if err != nil || sig != Signature {
		if _, serr := r.Seek(savePos, io.SeekStart); serr != nil {
			return nil, fmt.Errorf("alphamap: restore stream position: %w", serr)
		}
		return nil, nil
	}
	total, err := fio.ReadUint32(r)
	if err != nil {
		return nil, fmt.Errorf("alphamap: read range count: %w", err)
	}
	m := New()
	for i := uint32(0); i < total; i++ {
		begin, err := fio.ReadUint32(r)
		if err != nil {
			return nil, fmt.Errorf("alphamap: read range %d begin: %w", i, err)
		}
		end, err := fio.ReadUint32(r)
		if err != nil {
			return nil, fmt.Errorf("alphamap: read range %d end: %w", i, err)
		}
		m.ranges = append(m.ranges, AlphaRange{Begin: AlphaChar(begin), End: AlphaChar(end)})
	}
	return m, nil
}
