package pkg

import "errors"

// Buffer engine errors.
var (
	// ErrNullData indicates a required data argument was absent.
	ErrNullData = errors.New("null data")

	// ErrSizeZero indicates a required size argument was zero.
	ErrSizeZero = errors.New("size is zero")

	// ErrOverflow indicates a write exceeded free capacity; the oldest
	// bytes were evicted to make room.
	ErrOverflow = errors.New("buffer overflow")

	// ErrNotEnoughData indicates a read or removal requested more bytes
	// than the buffer currently holds.
	ErrNotEnoughData = errors.New("not enough data")
)

// Status represents the outcome of the most recent fallible buffer operation.
type Status int

// Status values.
const (
	StatusNone          Status = iota // No error
	StatusNullData                    // Required data argument was nil
	StatusSizeZero                    // Required size argument was zero
	StatusOverflow                    // Write exceeded free capacity
	StatusNotEnoughData               // Read exceeded available data
)

// String returns a string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusNone:
		return "none"
	case StatusNullData:
		return "null data"
	case StatusSizeZero:
		return "size zero"
	case StatusOverflow:
		return "overflow"
	case StatusNotEnoughData:
		return "not enough data"
	default:
		return "unknown"
	}
}

// Error returns the corresponding sentinel error for the status.
func (s Status) Error() error {
	switch s {
	case StatusNone:
		return nil
	case StatusNullData:
		return ErrNullData
	case StatusSizeZero:
		return ErrSizeZero
	case StatusOverflow:
		return ErrOverflow
	case StatusNotEnoughData:
		return ErrNotEnoughData
	default:
		return nil
	}
}

// StatusOf maps a sentinel error back to its status value.
// A nil error maps to StatusNone.
//
// The taxonomy is closed: only the sentinel errors above, or errors
// wrapping them, map to a distinct status. Any other non-nil error also
// maps to StatusNone, so a non-none result always names one of the
// sentinels. Callers mixing foreign errors into this taxonomy must
// track them separately rather than rely on the mapped status.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusNone
	case errors.Is(err, ErrNullData):
		return StatusNullData
	case errors.Is(err, ErrSizeZero):
		return StatusSizeZero
	case errors.Is(err, ErrOverflow):
		return StatusOverflow
	case errors.Is(err, ErrNotEnoughData):
		return StatusNotEnoughData
	default:
		return StatusNone
	}
}
