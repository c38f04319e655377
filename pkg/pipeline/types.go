package pipeline

import (
	"context"
	"image"
	"image/color"
)

// =============================================================================
// Scene Types
// =============================================================================

// Segment is a span of the timeline painted the same way.
type Segment struct {
	UntilSec   float64     // Segment applies while t <= UntilSec
	Background color.RGBA  // Fill color
	Label      string      // Optional text; "%d" is replaced by the frame index
	LabelColor color.RGBA  // Text color
	Image      image.Image // Optional picture, already scaled to the frame size
	ImagePath  string      // Source of Image, for reporting
}

// Plain reports whether the segment is a solid fill.
func (s Segment) Plain() bool {
	return s.Label == "" && s.Image == nil
}

// SegmentAt returns the index of the segment shown at t seconds: the first
// segment with t <= UntilSec, or the last one when t is past every bound.
func SegmentAt(segments []Segment, t float64) int {
	for i, s := range segments {
		if t <= s.UntilSec {
			return i
		}
	}
	return len(segments) - 1
}

// =============================================================================
// Paint Stage Types
// =============================================================================

// PaintInput describes one frame to paint.
type PaintInput struct {
	Index    int // Frame index, starting at 0
	FPS      int
	Width    int
	Height   int
	Segments []Segment
}

// TimeSec returns the presentation time of the frame.
func (p PaintInput) TimeSec() float64 {
	return float64(p.Index) / float64(p.FPS)
}

// PaintResult holds a painted frame.
type PaintResult struct {
	Image   image.Image // *image.Uniform for plain segments
	Segment int         // Index of the segment that was painted
}

// =============================================================================
// Encode Stage Types
// =============================================================================

// PaintFunc produces the picture for frame index.
type PaintFunc func(ctx context.Context, index int) (image.Image, error)

// EncodeInput contains parameters for encoding a stream.
type EncodeInput struct {
	OutputPath  string
	Width       int
	Height      int
	FPS         int
	TotalFrames int
	Paint       PaintFunc
}

// EncodeResult contains the encoded stream statistics.
type EncodeResult struct {
	FrameCount int
	DurationMs int
	FileSize   int64
}
