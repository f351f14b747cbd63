package alphamap_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textbits/alphamap"
)

func TestBinaryRoundTrip(t *testing.T) {
	m := letterMap(t)

	var buf bytes.Buffer
	require.NoError(t, alphamap.WriteBin(m, &buf))
	assert.Equal(t, 8+8*m.Len(), buf.Len())

	decoded, err := alphamap.ReadBin(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.NotNil(t, decoded)
	assert.Equal(t, m.Ranges(), decoded.Ranges())
}

func TestBinaryRoundTripEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, alphamap.WriteBin(alphamap.New(), &buf))

	decoded, err := alphamap.ReadBin(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.NotNil(t, decoded)
	assert.Equal(t, 0, decoded.Len())
}

func TestBinaryLayout(t *testing.T) {
	m := alphamap.New()
	require.NoError(t, m.AddRange(0x41, 0x5A))

	var buf bytes.Buffer
	require.NoError(t, alphamap.WriteBin(m, &buf))

	assert.Equal(t, []byte{
		0xD9, 0xFC, 0xD9, 0xFC, // signature
		0x00, 0x00, 0x00, 0x01, // range count
		0x00, 0x00, 0x00, 0x41, // begin
		0x00, 0x00, 0x00, 0x5A, // end
	}, buf.Bytes())
}

func TestReadBinSignatureMismatch(t *testing.T) {
	r := bytes.NewReader([]byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x00, 0x00, 0x00})

	m, err := alphamap.ReadBin(r)
	require.NoError(t, err)
	assert.Nil(t, m)

	// position restored for the next probe
	pos, err := r.Seek(0, io.SeekCurrent)
	require.NoError(t, err)
	assert.Equal(t, int64(0), pos)
}

func TestReadBinShortStream(t *testing.T) {
	r := bytes.NewReader([]byte{0xD9, 0xFC})

	m, err := alphamap.ReadBin(r)
	require.NoError(t, err)
	assert.Nil(t, m)

	pos, err := r.Seek(0, io.SeekCurrent)
	require.NoError(t, err)
	assert.Equal(t, int64(0), pos)
}

func TestReadBinAtOffset(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{0x01, 0x02, 0x03}) // leading trie data
	require.NoError(t, alphamap.WriteBin(letterMap(t), &buf))

	r := bytes.NewReader(buf.Bytes())
	_, err := r.Seek(3, io.SeekStart)
	require.NoError(t, err)

	m, err := alphamap.ReadBin(r)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, 2, m.Len())
}

func TestReadBinTruncatedRanges(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, alphamap.WriteBin(letterMap(t), &buf))
	truncated := buf.Bytes()[:buf.Len()-6]

	m, err := alphamap.ReadBin(bytes.NewReader(truncated))
	require.Error(t, err)
	assert.Nil(t, m)
}

// choppyWriter fails after n written bytes.
type choppyWriter struct {
	n int
}

func (w *choppyWriter) Write(p []byte) (int, error) {
	if len(p) > w.n {
		n := w.n
		w.n = 0
		return n, errors.New("disk full")
	}
	w.n -= len(p)
	return len(p), nil
}

func TestWriteBinFailure(t *testing.T) {
	m := letterMap(t)
	for _, budget := range []int{0, 4, 8, 12} {
		err := alphamap.WriteBin(m, &choppyWriter{n: budget})
		assert.Error(t, err, "budget %d", budget)
	}
	assert.NoError(t, alphamap.WriteBin(m, &choppyWriter{n: 8 + 8*m.Len()}))
}
