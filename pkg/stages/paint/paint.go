// Package paint implements the frame painting stage.
package paint

import (
	"context"
	"fmt"
	"image"
	"strings"

	"github.com/user/tinyrender/pkg/pipeline"
	"github.com/user/tinyrender/pkg/ports"
)

// labelFontRatio is the label font size relative to the frame height.
const labelFontRatio = 0.12

// Stage paints one frame of the scene.
type Stage struct {
	renderer ports.Renderer
}

// NewStage creates a new paint stage.
func NewStage(renderer ports.Renderer) *Stage {
	return &Stage{
		renderer: renderer,
	}
}

// Execute paints the frame selected by input.Index.
func (s *Stage) Execute(ctx context.Context, input pipeline.PaintInput) (pipeline.PaintResult, error) {
	result := pipeline.PaintResult{}

	if len(input.Segments) == 0 {
		return result, fmt.Errorf("no segments to paint")
	}
	if input.FPS <= 0 {
		return result, fmt.Errorf("invalid fps: %d", input.FPS)
	}

	idx := pipeline.SegmentAt(input.Segments, input.TimeSec())
	seg := input.Segments[idx]
	result.Segment = idx

	if seg.Plain() {
		result.Image = image.NewUniform(seg.Background)
		return result, nil
	}

	canvas := s.renderer.CreateCanvas(input.Width, input.Height, seg.Background)
	if seg.Image != nil {
		canvas.DrawImage(seg.Image, 0, 0)
	}
	if seg.Label != "" {
		canvas.DrawText(formatLabel(seg.Label, input.Index), input.Width/2, input.Height/2, ports.TextStyle{
			FontSize: float64(input.Height) * labelFontRatio,
			Color:    seg.LabelColor,
			Align:    ports.AlignCenter,
		})
	}
	result.Image = canvas.ToImage()

	return result, nil
}

func formatLabel(label string, index int) string {
	if !strings.Contains(label, "%d") {
		return label
	}
	return strings.ReplaceAll(label, "%d", fmt.Sprint(index))
}
