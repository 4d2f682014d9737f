package imaging

import (
	"errors"
	"fmt"
)

var (
	// ErrDecode is wrapped by every failure to read or decode an input image.
	ErrDecode = errors.New("decode image")

	// ErrEncode is wrapped by every failure to encode or write an output image.
	ErrEncode = errors.New("encode image")
)

// WorkerError reports a transform task that panicked while processing a band
// of rows. The output image is discarded when any worker fails.
type WorkerError struct {
	Band  Band
	Value interface{}
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("worker for rows [%d,%d) failed: %v", e.Band.Start, e.Band.End, e.Value)
}

// Unwrap exposes the panic value when it was itself an error.
func (e *WorkerError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
