// Package fio supplies the fixed-width stream primitives shared by trie
// persistence code: 32-bit big-endian integer reads and writes, and opening
// a named data resource from a path/name/extension triple.
package fio

import (
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
)

// Open opens path/name.ext for reading.
func Open(path, name, ext string) (*os.File, error) {
	return os.Open(filepath.Join(path, name+"."+ext))
}

// ReadUint32 reads one big-endian 32-bit value from r.
// A truncated stream yields io.ErrUnexpectedEOF.
func ReadUint32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

// WriteUint32 writes one big-endian 32-bit value to w.
func WriteUint32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}
