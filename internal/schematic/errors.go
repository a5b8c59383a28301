package schematic

import "errors"

var (
	// ErrEmpty is returned by Build for a zero-length buffer.
	ErrEmpty = errors.New("schematic is empty")
	// ErrNoTerminator is returned by Build when no row terminator exists, so
	// the row width cannot be derived.
	ErrNoTerminator = errors.New("schematic has no row terminator")
	// ErrMalformed reports a grid whose rows are not of uniform width.
	ErrMalformed = errors.New("malformed schematic")
	// ErrInvalidArgument marks a caller bug, such as extracting a number from
	// a cell that does not hold a digit.
	ErrInvalidArgument = errors.New("invalid argument")
)
