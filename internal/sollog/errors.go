package sollog

import "errors"

// Sentinel errors for the solution-log transforms. Callers test them with
// errors.Is; the wrapping sites attach file and line context.
var (
	// ErrMalformedRecord marks a line that does not split into the
	// expected field count, or a field that fails numeric parsing.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrVectorLength marks a contraction that removes more elements
	// than a solution vector holds.
	ErrVectorLength = errors.New("vector shorter than contraction width")

	// ErrKeyNotFound marks a lookup for a key absent from the log.
	ErrKeyNotFound = errors.New("key not found")
)
