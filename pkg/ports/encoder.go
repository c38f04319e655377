package ports

import (
	"image"
)

// VideoEncoder abstracts video encoding operations.
type VideoEncoder interface {
	// Begin opens the output at path with the specified dimensions and frame rate.
	Begin(path string, width, height, fps int) error

	// EncodeFrame encodes a single frame. Pixels outside the stream
	// dimensions are ignored.
	EncodeFrame(img image.Image) error

	// End finalizes the output and reports what was written.
	End() (EncoderStats, error)
}

// EncoderStats describes a finalized output.
type EncoderStats struct {
	Frames int   // Number of frames written
	Bytes  int64 // Total bytes written, header included
}
