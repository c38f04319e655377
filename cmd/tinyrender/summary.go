package main

import (
	"fmt"

	"github.com/user/tinyrender/pkg/orchestrator"
	"github.com/user/tinyrender/pkg/summarizer"
)

// buildSummary converts a render result into a summary.
func buildSummary(result orchestrator.RunResult) *summarizer.Summary {
	b := summarizer.NewBuilder().
		WithStream(result.OutputPath, result.Width, result.Height, result.FPS).
		WithOutput(summarizer.OutputInfo{
			FrameCount:   result.FrameCount,
			DurationMs:   result.DurationMs,
			FileSize:     result.FileSize,
			HeaderSize:   result.HeaderSize,
			FrameSize:    result.FrameSize,
			ExpectedSize: result.ExpectedSize,
		})

	for _, seg := range result.Segments {
		b.AddSegment(summarizer.SegmentInfo{
			UntilSec:   seg.UntilSec,
			Background: fmt.Sprintf("#%02x%02x%02x", seg.Background.R, seg.Background.G, seg.Background.B),
			Label:      seg.Label,
			Image:      seg.ImagePath,
		})
	}

	return b.Build()
}
