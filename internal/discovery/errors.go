package discovery

import (
	"errors"
	"io/fs"
)

// ReadError reports an input file that could not be opened or read.
// It aborts the whole run.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return e.Path + ": " + e.Message()
}

// Message returns the underlying error text without the path prefix the os package adds
func (e *ReadError) Message() string {
	var pathErr *fs.PathError
	if errors.As(e.Err, &pathErr) {
		return pathErr.Err.Error()
	}
	return e.Err.Error()
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
