package sollog

import "go.uber.org/zap"

// Editor runs the solution-log transforms with one record shape. Every
// operation reads its inputs fully, applies a pure transform, and writes
// a new output file; nothing is mutated in place on disk.
type Editor struct {
	codec Codec
	log   *zap.Logger
}

// NewEditor returns an editor for the given record shape. A nil logger
// disables diagnostics.
func NewEditor(c Codec, logger *zap.Logger) *Editor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Editor{codec: c, log: logger}
}

// Codec returns the record shape this editor operates on.
func (e *Editor) Codec() Codec { return e.codec }
