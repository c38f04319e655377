// Package summarizer provides summary generation for rendered streams.
package summarizer

import "time"

// Summary contains all data collected during a render.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Stream parameters
	Stream StreamInfo

	// Output file details
	Output OutputInfo

	// Scene timeline
	Segments []SegmentInfo
}

// StreamInfo contains the parameters the stream was opened with.
type StreamInfo struct {
	Path   string
	Width  int
	Height int
	FPS    int
}

// OutputInfo contains information about the written file.
type OutputInfo struct {
	FrameCount   int
	DurationMs   int
	FileSize     int64
	HeaderSize   int
	FrameSize    int   // Bytes per frame record, marker included
	ExpectedSize int64 // HeaderSize + FrameCount*FrameSize
}

// Complete reports whether the file holds exactly the expected bytes.
func (o OutputInfo) Complete() bool {
	return o.FileSize == o.ExpectedSize
}

// SegmentInfo describes one span of the scene.
type SegmentInfo struct {
	UntilSec   float64
	Background string // "#rrggbb"
	Label      string
	Image      string
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithStream sets stream parameters.
func (b *Builder) WithStream(path string, width, height, fps int) *Builder {
	b.summary.Stream = StreamInfo{
		Path:   path,
		Width:  width,
		Height: height,
		FPS:    fps,
	}
	return b
}

// WithOutput sets output file information.
func (b *Builder) WithOutput(output OutputInfo) *Builder {
	b.summary.Output = output
	return b
}

// AddSegment appends a segment to the timeline.
func (b *Builder) AddSegment(segment SegmentInfo) *Builder {
	b.summary.Segments = append(b.summary.Segments, segment)
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
