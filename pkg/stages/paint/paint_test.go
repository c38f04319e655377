package paint

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/user/tinyrender/pkg/mocks"
	"github.com/user/tinyrender/pkg/pipeline"
)

var (
	red   = color.RGBA{R: 255, A: 255}
	green = color.RGBA{G: 255, A: 255}
	blue  = color.RGBA{B: 255, A: 255}
)

func demoSegments() []pipeline.Segment {
	return []pipeline.Segment{
		{UntilSec: 1, Background: red},
		{UntilSec: 2, Background: green},
		{UntilSec: 3, Background: blue},
	}
}

func TestStage_Execute_SegmentSchedule(t *testing.T) {
	stage := NewStage(&mocks.Renderer{})

	tests := []struct {
		index   int
		segment int
	}{
		{0, 0},
		{60, 0}, // t == 1.0 still belongs to the first segment
		{61, 1},
		{120, 1},
		{121, 2},
		{179, 2},
		{500, 2}, // past the last bound
	}

	for _, tt := range tests {
		result, err := stage.Execute(context.Background(), pipeline.PaintInput{
			Index: tt.index, FPS: 60, Width: 4, Height: 4, Segments: demoSegments(),
		})
		if err != nil {
			t.Fatalf("frame %d: unexpected error: %v", tt.index, err)
		}
		if result.Segment != tt.segment {
			t.Errorf("frame %d: expected segment %d, got %d", tt.index, tt.segment, result.Segment)
		}
	}
}

func TestStage_Execute_PlainSegmentIsUniform(t *testing.T) {
	renderer := &mocks.Renderer{}
	stage := NewStage(renderer)

	result, err := stage.Execute(context.Background(), pipeline.PaintInput{
		Index: 70, FPS: 60, Width: 4, Height: 4, Segments: demoSegments(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	u, ok := result.Image.(*image.Uniform)
	if !ok {
		t.Fatalf("expected *image.Uniform, got %T", result.Image)
	}
	if u.C != green {
		t.Errorf("expected green, got %v", u.C)
	}
	if len(renderer.Canvases) != 0 {
		t.Error("expected no canvas for a plain segment")
	}
}

func TestStage_Execute_LabelUsesCanvas(t *testing.T) {
	renderer := &mocks.Renderer{}
	stage := NewStage(renderer)

	segments := []pipeline.Segment{
		{UntilSec: 1, Background: red, Label: "frame %d", LabelColor: color.RGBA{A: 255}},
	}
	result, err := stage.Execute(context.Background(), pipeline.PaintInput{
		Index: 7, FPS: 30, Width: 8, Height: 6, Segments: segments,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(renderer.Canvases) != 1 {
		t.Fatalf("expected 1 canvas, got %d", len(renderer.Canvases))
	}
	texts := renderer.Canvases[0].Texts
	if len(texts) != 1 || texts[0] != "frame 7" {
		t.Errorf("expected label 'frame 7', got %v", texts)
	}
	if b := result.Image.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Errorf("expected 8x6 image, got %dx%d", b.Dx(), b.Dy())
	}
	if got := result.Image.At(0, 0); got != red {
		t.Errorf("expected red background, got %v", got)
	}
}

func TestStage_Execute_ImageSegment(t *testing.T) {
	renderer := &mocks.Renderer{}
	stage := NewStage(renderer)

	segments := []pipeline.Segment{
		{UntilSec: 1, Background: red, Image: image.NewRGBA(image.Rect(0, 0, 4, 4))},
	}
	if _, err := stage.Execute(context.Background(), pipeline.PaintInput{
		Index: 0, FPS: 30, Width: 4, Height: 4, Segments: segments,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if renderer.Canvases[0].Images != 1 {
		t.Errorf("expected image to be drawn once, got %d", renderer.Canvases[0].Images)
	}
}

func TestStage_Execute_NoSegments(t *testing.T) {
	stage := NewStage(&mocks.Renderer{})

	_, err := stage.Execute(context.Background(), pipeline.PaintInput{FPS: 30, Width: 4, Height: 4})
	if err == nil {
		t.Error("expected error for empty segments")
	}
}

func TestStage_Execute_InvalidFPS(t *testing.T) {
	stage := NewStage(&mocks.Renderer{})

	_, err := stage.Execute(context.Background(), pipeline.PaintInput{Width: 4, Height: 4, Segments: demoSegments()})
	if err == nil {
		t.Error("expected error for zero fps")
	}
}
