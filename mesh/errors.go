package mesh

import "errors"

var (
	// ErrInvalidSize - grid dimensions are non-positive or cannot be
	// coarsened evenly to the configured minimum size
	ErrInvalidSize = errors.New("mesh: invalid grid size")

	// ErrPeriodicPair - periodic set on only one edge of an axis
	ErrPeriodicPair = errors.New("mesh: periodic BC must be set on both edges of an axis")

	// ErrShapeMismatch - a caller supplied array does not match the grid shape
	ErrShapeMismatch = errors.New("mesh: array shape does not match grid")
)
