package hexgrid

import (
	"errors"
	"fmt"
)

// Sentinel errors. Invalid input is reported through one of these, directly
// or through the typed errors below, and can be matched with errors.Is. I/O
// and decoding failures from readers and writers are wrapped as returned.
var (
	// ErrInvalidResolution is returned for resolutions outside 0..15 or for a
	// target resolution that conflicts with the input cell.
	ErrInvalidResolution = errors.New("invalid resolution")
	// ErrInvalidPolygon is returned for degenerate or self-intersecting loops.
	ErrInvalidPolygon = errors.New("invalid polygon")
	// ErrUnsupportedFlags is returned when a reserved flags argument is non-zero.
	ErrUnsupportedFlags = errors.New("unsupported flags")
	// ErrPentagonDistortion is returned when a checked traversal meets a
	// pentagon or the deleted pentagon direction.
	ErrPentagonDistortion = errors.New("pentagon distortion")
	// ErrIncomparableCells is returned when two cells share no coordinate frame.
	ErrIncomparableCells = errors.New("incomparable cells")
	// ErrMixedResolution is returned when a cell set must be uniform.
	ErrMixedResolution = errors.New("mixed resolution")
	// ErrNotNeighbors is returned when two cells are not adjacent.
	ErrNotNeighbors = errors.New("cells are not neighbors")
	// ErrInvalidEdge is returned for malformed directed edges.
	ErrInvalidEdge = errors.New("invalid directed edge")
	// ErrLineNotComputable is returned when no grid line exists between two cells.
	ErrLineNotComputable = errors.New("line not computable")
	// ErrParse is returned for malformed textual cell indexes.
	ErrParse = errors.New("parse error")

	// ErrInvalidCell is returned for values that are not valid cell indexes.
	ErrInvalidCell = errors.New("invalid cell")
	// ErrInvalidLatLng is returned for non-finite coordinates.
	ErrInvalidLatLng = errors.New("invalid coordinate")
	// ErrDuplicateInput is returned when a cell set contains the same cell twice.
	ErrDuplicateInput = errors.New("duplicate input")
	// ErrInvalidK is returned when a traversal distance is negative.
	ErrInvalidK = errors.New("k must not be negative")
	// ErrInvalidDirection is returned for digits outside Center..IJAxes.
	ErrInvalidDirection = errors.New("invalid direction")
	// ErrCellSetFormat is returned when a cell set stream is malformed.
	ErrCellSetFormat = errors.New("malformed cell set")
)

// ResolutionError reports a resolution rejected by an operation.
type ResolutionError struct {
	Op  string
	Res int
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("%s: invalid resolution %d", e.Op, e.Res)
}

func (e *ResolutionError) Unwrap() error { return ErrInvalidResolution }

// ParseError reports text that could not be read as a cell index. It matches
// ErrParse and, when present, the underlying cause through errors.Is and
// errors.As; errors.Unwrap returns nil because it wraps more than one error.
type ParseError struct {
	Input string
	cause error
}

func (e *ParseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("parse cell %q: %v", e.Input, e.cause)
	}
	return fmt.Sprintf("parse cell %q", e.Input)
}

// Unwrap returns both ErrParse and the underlying cause.
func (e *ParseError) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrParse}
	}
	return []error{ErrParse, e.cause}
}

// CellError attaches the offending cell to a failure.
type CellError struct {
	Op   string
	Cell Cell
	Err  error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Cell, e.Err)
}

func (e *CellError) Unwrap() error { return e.Err }

func resolutionErr(op string, res int) error {
	return &ResolutionError{Op: op, Res: res}
}

func cellErr(op string, c Cell, err error) error {
	return &CellError{Op: op, Cell: c, Err: err}
}
