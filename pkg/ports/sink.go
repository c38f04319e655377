package ports

import (
	"image"
)

// DebugSink abstracts debug output for intermediate results.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveSceneJSON saves the resolved scene configuration as JSON.
	SaveSceneJSON(data []byte) error

	// SavePaintedFrame saves a painted frame before color conversion.
	SavePaintedFrame(index int, img image.Image) error
}
