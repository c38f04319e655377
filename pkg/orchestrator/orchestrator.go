// Package orchestrator coordinates all pipeline stages.
package orchestrator

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/draw"
	"math"

	"github.com/ideamans/go-l10n"
	"github.com/user/tinyrender/pkg/pipeline"
	"github.com/user/tinyrender/pkg/ports"
	"github.com/user/tinyrender/pkg/y4m"
)

// Config contains all configuration for the orchestrator.
type Config struct {
	// Output
	OutputPath string

	// Geometry
	Width       int
	Height      int
	FPS         int
	DurationSec float64

	// Scene. Segment images are loaded from ImagePath when Image is nil.
	Segments []pipeline.Segment

	// Debug: save every Nth painted frame to the debug sink (0 disables)
	DebugEvery int
}

// TotalFrames returns the number of frames the scene spans.
func (c Config) TotalFrames() int {
	return int(math.Round(c.DurationSec * float64(c.FPS)))
}

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	paintStage  pipeline.Stage[pipeline.PaintInput, pipeline.PaintResult]
	encodeStage pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult]
	fs          ports.FileSystem
	renderer    ports.Renderer
	sink        ports.DebugSink
	logger      ports.Logger
}

// New creates a new Orchestrator.
func New(
	paintStage pipeline.Stage[pipeline.PaintInput, pipeline.PaintResult],
	encodeStage pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult],
	fs ports.FileSystem,
	renderer ports.Renderer,
	sink ports.DebugSink,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		paintStage:  paintStage,
		encodeStage: encodeStage,
		fs:          fs,
		renderer:    renderer,
		sink:        sink,
		logger:      logger,
	}
}

// Run renders the scene and writes the stream to config.OutputPath.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	o.logger.Info(l10n.T("Starting render"))

	if len(config.Segments) == 0 {
		return RunResult{}, fmt.Errorf("scene has no segments")
	}
	total := config.TotalFrames()
	if total <= 0 {
		return RunResult{}, fmt.Errorf("scene has no frames (duration %.3fs at %dfps)", config.DurationSec, config.FPS)
	}

	// 1. Resolve segment images
	segments, err := o.resolveSegments(config)
	if err != nil {
		return RunResult{}, fmt.Errorf("resolve segments: %w", err)
	}

	if o.sink.Enabled() {
		if data, err := json.MarshalIndent(newSceneDoc(config, segments, total), "", "  "); err == nil {
			o.sink.SaveSceneJSON(data)
		}
	}

	// 2. Paint and encode
	o.logger.Info(l10n.F("Rendering %d frames (%dx%d @ %dfps)", total, config.Width, config.Height, config.FPS))
	encodeInput := pipeline.EncodeInput{
		OutputPath:  config.OutputPath,
		Width:       config.Width,
		Height:      config.Height,
		FPS:         config.FPS,
		TotalFrames: total,
		Paint:       o.painter(config, segments, total),
	}
	encoded, err := o.encodeStage.Execute(ctx, encodeInput)
	if err != nil {
		o.logger.Error(l10n.F("Failed to encode video: %s", err))
		return RunResult{}, fmt.Errorf("encode stage: %w", err)
	}

	o.logger.Info(l10n.F("Render completed: %d frames, %d bytes", encoded.FrameCount, encoded.FileSize))

	opts := y4m.Options{Path: config.OutputPath, Width: config.Width, Height: config.Height, FPS: config.FPS}
	result := RunResult{
		OutputPath:   config.OutputPath,
		Width:        config.Width,
		Height:       config.Height,
		FPS:          config.FPS,
		FrameCount:   encoded.FrameCount,
		DurationMs:   encoded.DurationMs,
		FileSize:     encoded.FileSize,
		HeaderSize:   len(opts.Header()),
		FrameSize:    opts.FrameSize(),
		ExpectedSize: opts.StreamSize(encoded.FrameCount),
		Segments:     segments,
	}

	return result, nil
}

func (o *Orchestrator) painter(config Config, segments []pipeline.Segment, total int) pipeline.PaintFunc {
	progressEvery := config.FPS
	return func(ctx context.Context, index int) (image.Image, error) {
		painted, err := o.paintStage.Execute(ctx, pipeline.PaintInput{
			Index:    index,
			FPS:      config.FPS,
			Width:    config.Width,
			Height:   config.Height,
			Segments: segments,
		})
		if err != nil {
			return nil, err
		}

		if config.DebugEvery > 0 && index%config.DebugEvery == 0 && o.sink.Enabled() {
			if err := o.sink.SavePaintedFrame(index, materialize(painted.Image, config.Width, config.Height)); err != nil {
				o.logger.Warn(l10n.F("Failed to save debug frame %d: %s", index, err))
			}
		}

		if done := index + 1; done == total || done%progressEvery == 0 {
			o.logger.Debug(l10n.F("Rendered frame %d/%d", done, total))
		}
		return painted.Image, nil
	}
}

// resolveSegments loads and scales segment images once, up front.
func (o *Orchestrator) resolveSegments(config Config) ([]pipeline.Segment, error) {
	segments := make([]pipeline.Segment, len(config.Segments))
	copy(segments, config.Segments)

	for i := range segments {
		seg := &segments[i]
		if seg.Image != nil || seg.ImagePath == "" {
			continue
		}

		o.logger.Info(l10n.F("Loading segment image %s", seg.ImagePath))
		data, err := o.fs.ReadFile(seg.ImagePath)
		if err != nil {
			o.logger.Error(l10n.F("Failed to load segment image %s: %s", seg.ImagePath, err))
			return nil, fmt.Errorf("read %s: %w", seg.ImagePath, err)
		}
		img, err := o.renderer.DecodeImage(data, ports.FormatAuto)
		if err != nil {
			o.logger.Error(l10n.F("Failed to load segment image %s: %s", seg.ImagePath, err))
			return nil, fmt.Errorf("decode %s: %w", seg.ImagePath, err)
		}
		seg.Image = o.renderer.ResizeImage(img, config.Width, config.Height)
	}

	return segments, nil
}

// materialize turns unbounded images such as *image.Uniform into a
// width x height raster.
func materialize(img image.Image, width, height int) image.Image {
	if _, ok := img.(*image.Uniform); !ok {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), img, image.Point{}, draw.Src)
	return dst
}

// RunResult contains the results of a render for summary generation.
type RunResult struct {
	OutputPath string

	// Stream geometry
	Width  int
	Height int
	FPS    int

	// Stream information
	FrameCount   int
	DurationMs   int
	FileSize     int64
	HeaderSize   int
	FrameSize    int
	ExpectedSize int64 // HeaderSize + FrameCount*FrameSize

	Segments []pipeline.Segment
}
