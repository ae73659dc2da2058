package pipelines

import "errors"

var (
	ErrEmptyPipeline = errors.New("empty pipeline")
	// ErrStalled means a machine asked for a second input within one turn.
	ErrStalled = errors.New("machine stalled waiting for input")
)
