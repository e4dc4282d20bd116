package hexgrid

import (
	"bytes"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellSet(t *testing.T) {
	cells := parseCells(t, "8928308280fffff", "8928308280bffff", "8928308280fffff")
	s := NewCellSet(cells...)
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains(cells[1]))
	assert.False(t, s.Contains(parseCells(t, "89283082993ffff")[0]))

	s.Add(parseCells(t, "89283082993ffff")[0])
	assert.Equal(t, 3, s.Len())
	assert.True(t, slices.IsSorted(s.Cells()))
}

func TestCellSetRoundTrip(t *testing.T) {
	origin := parseCells(t, "8928308280fffff")[0]
	disk, err := GridDisk(origin, 10, DiskChecked)
	require.NoError(t, err)
	pents, err := Pentagons(0)
	require.NoError(t, err)
	input := append(append([]Cell{}, disk...), pents...)
	input = append(input, disk[:5]...)

	var buf bytes.Buffer
	require.NoError(t, WriteCellSet(&buf, input))
	assert.Equal(t, "HXC1", buf.String()[:4])

	got, err := ReadCellSet(&buf)
	require.NoError(t, err)
	assert.Equal(t, NewCellSet(input...).Cells(), got)
	assert.Len(t, got, len(disk)+len(pents))
}

func TestCellSetEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCellSet(&buf, nil))
	got, err := ReadCellSet(&buf)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCellSetErrors(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCellSet(&buf, []Cell{Cell(0)})
	assert.ErrorIs(t, err, ErrInvalidCell)
	assert.Zero(t, buf.Len())

	_, err = ReadCellSet(bytes.NewReader([]byte("nope")))
	assert.ErrorIs(t, err, ErrCellSetFormat)

	_, err = ReadCellSet(bytes.NewReader([]byte("HXC1 not zstd")))
	assert.ErrorIs(t, err, ErrCellSetFormat)

	// a valid frame whose payload decodes to an invalid cell
	enc, err := getZstdEncoder()
	require.NoError(t, err)
	payload := enc.EncodeAll([]byte{1, 5}, nil)
	putZstdEncoder(enc)
	_, err = ReadCellSet(bytes.NewReader(append([]byte("HXC1"), payload...)))
	assert.ErrorIs(t, err, ErrInvalidCell)

	// count larger than the payload
	enc, err = getZstdEncoder()
	require.NoError(t, err)
	payload = enc.EncodeAll([]byte{9, 1}, nil)
	putZstdEncoder(enc)
	_, err = ReadCellSet(bytes.NewReader(append([]byte("HXC1"), payload...)))
	assert.ErrorIs(t, err, ErrCellSetFormat)
}
