package stl

import (
	"errors"
	"fmt"
)

var (
	// ErrBufferTooSmall is returned, together with a zero summary, for buffers
	// shorter than a binary header plus triangle count. An empty upload is a
	// normal state, so callers usually treat this as "nothing to show".
	ErrBufferTooSmall = errors.New("stl: buffer too small to contain a model")

	// ErrTruncated matches any *TruncatedFileError via errors.Is.
	ErrTruncated = errors.New("stl: truncated file")
)

// TruncatedFileError reports a binary file whose declared triangle count
// runs past the end of the buffer. The summary returned alongside it covers
// the Parsed triangles that were fully readable.
type TruncatedFileError struct {
	Declared uint32
	Parsed   int
}

func (e *TruncatedFileError) Error() string {
	return fmt.Sprintf("stl: truncated binary file: header declares %d triangles, only %d readable", e.Declared, e.Parsed)
}

// Is makes errors.Is(err, ErrTruncated) succeed.
func (e *TruncatedFileError) Is(target error) bool {
	return target == ErrTruncated
}

// IsSoft reports whether err still comes with a usable best-effort summary.
func IsSoft(err error) bool {
	return errors.Is(err, ErrBufferTooSmall) || errors.Is(err, ErrTruncated)
}
