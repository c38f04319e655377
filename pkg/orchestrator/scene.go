package orchestrator

import (
	"fmt"
	"image/color"

	"github.com/user/tinyrender/pkg/pipeline"
)

// sceneDoc is the resolved scene as saved to the debug sink.
type sceneDoc struct {
	Output      string       `json:"output"`
	Width       int          `json:"width"`
	Height      int          `json:"height"`
	FPS         int          `json:"fps"`
	DurationSec float64      `json:"durationSec"`
	TotalFrames int          `json:"totalFrames"`
	Segments    []segmentDoc `json:"segments"`
}

type segmentDoc struct {
	UntilSec   float64 `json:"untilSec"`
	FirstFrame int     `json:"firstFrame"`
	Background string  `json:"background"`
	Label      string  `json:"label,omitempty"`
	LabelColor string  `json:"labelColor,omitempty"`
	Image      string  `json:"image,omitempty"`
}

func newSceneDoc(config Config, segments []pipeline.Segment, total int) sceneDoc {
	doc := sceneDoc{
		Output:      config.OutputPath,
		Width:       config.Width,
		Height:      config.Height,
		FPS:         config.FPS,
		DurationSec: config.DurationSec,
		TotalFrames: total,
	}

	first := make([]int, len(segments))
	for i := range first {
		first[i] = -1
	}
	for i := total - 1; i >= 0; i-- {
		first[pipeline.SegmentAt(segments, float64(i)/float64(config.FPS))] = i
	}

	for i, s := range segments {
		d := segmentDoc{
			UntilSec:   s.UntilSec,
			FirstFrame: first[i],
			Background: hexColor(s.Background),
			Label:      s.Label,
			Image:      s.ImagePath,
		}
		if s.Label != "" {
			d.LabelColor = hexColor(s.LabelColor)
		}
		doc.Segments = append(doc.Segments, d)
	}
	return doc
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
