package hexgrid

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"sync"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/klauspost/compress/zstd"
)

// Cell set file format:
//
//	[magic "HXC1"][zstd frame]
//
// The frame holds a uvarint count followed by the uvarint differences
// between consecutive cells in ascending order, the first relative to zero.
var cellSetMagic = []byte("HXC1")

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() (*zstd.Encoder, error) {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder), nil
	}
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	return enc, nil
}

func putZstdEncoder(enc *zstd.Encoder) { zstdEncoderPool.Put(enc) }

func getZstdDecoder() (*zstd.Decoder, error) {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}
	return dec, nil
}

func putZstdDecoder(dec *zstd.Decoder) { zstdDecoderPool.Put(dec) }

// CellSet is a deduplicated, ordered set of cells backed by a roaring
// bitmap.
type CellSet struct {
	bm *roaring64.Bitmap
}

// NewCellSet builds a set from cells. Duplicates collapse.
func NewCellSet(cells ...Cell) *CellSet {
	s := &CellSet{bm: roaring64.New()}
	for _, c := range cells {
		s.bm.Add(uint64(c))
	}
	return s
}

func (s *CellSet) Add(c Cell) { s.bm.Add(uint64(c)) }

func (s *CellSet) Contains(c Cell) bool { return s.bm.Contains(uint64(c)) }

func (s *CellSet) Len() int { return int(s.bm.GetCardinality()) }

// Cells returns the members in ascending order.
func (s *CellSet) Cells() []Cell {
	vals := s.bm.ToArray()
	out := make([]Cell, len(vals))
	for i, v := range vals {
		out[i] = Cell(v)
	}
	return out
}

// WriteCellSet writes the distinct cells of cells to w.
func WriteCellSet(w io.Writer, cells []Cell) error {
	for _, c := range cells {
		if !c.IsValid() {
			return cellErr("WriteCellSet", c, ErrInvalidCell)
		}
	}
	sorted := NewCellSet(cells...).Cells()

	payload := make([]byte, 0, binary.MaxVarintLen64*(len(sorted)+1))
	payload = binary.AppendUvarint(payload, uint64(len(sorted)))
	prev := uint64(0)
	for _, c := range sorted {
		payload = binary.AppendUvarint(payload, uint64(c)-prev)
		prev = uint64(c)
	}

	enc, err := getZstdEncoder()
	if err != nil {
		return err
	}
	compressed := enc.EncodeAll(payload, nil)
	putZstdEncoder(enc)

	if _, err := w.Write(cellSetMagic); err != nil {
		return fmt.Errorf("write cell set header: %w", err)
	}
	if _, err := w.Write(compressed); err != nil {
		return fmt.Errorf("write cell set body: %w", err)
	}
	return nil
}

// ReadCellSet reads a stream written by WriteCellSet. Cells are returned in
// ascending order.
func ReadCellSet(r io.Reader) ([]Cell, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read cell set: %w", err)
	}
	if !bytes.HasPrefix(data, cellSetMagic) {
		return nil, fmt.Errorf("%w: bad magic", ErrCellSetFormat)
	}

	dec, err := getZstdDecoder()
	if err != nil {
		return nil, err
	}
	payload, err := dec.DecodeAll(data[len(cellSetMagic):], nil)
	putZstdDecoder(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCellSetFormat, err)
	}

	count, n := binary.Uvarint(payload)
	if n <= 0 {
		return nil, fmt.Errorf("%w: bad count", ErrCellSetFormat)
	}
	payload = payload[n:]
	// every delta takes at least one byte
	if count > uint64(len(payload)) {
		return nil, fmt.Errorf("%w: count %d exceeds payload", ErrCellSetFormat, count)
	}

	out := make([]Cell, 0, count)
	prev := uint64(0)
	for i := range count {
		delta, n := binary.Uvarint(payload)
		if n <= 0 {
			return nil, fmt.Errorf("%w: truncated at cell %d", ErrCellSetFormat, i)
		}
		payload = payload[n:]
		prev += delta
		c := Cell(prev)
		if !c.IsValid() {
			return nil, cellErr("ReadCellSet", c, ErrInvalidCell)
		}
		out = append(out, c)
	}
	if len(payload) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrCellSetFormat, len(payload))
	}
	return out, nil
}
