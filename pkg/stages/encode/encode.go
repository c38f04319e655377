// Package encode implements the stream encoding stage.
package encode

import (
	"context"
	"fmt"

	"github.com/user/tinyrender/pkg/pipeline"
	"github.com/user/tinyrender/pkg/ports"
)

// Stage pulls painted frames and feeds them to a video encoder.
type Stage struct {
	encoder ports.VideoEncoder
	logger  ports.Logger
}

// NewStage creates a new encode stage.
func NewStage(encoder ports.VideoEncoder, logger ports.Logger) *Stage {
	return &Stage{
		encoder: encoder,
		logger:  logger.WithComponent("encode"),
	}
}

// Execute encodes input.TotalFrames frames into input.OutputPath.
// The stream is finalized even when painting, encoding or the context fails.
func (s *Stage) Execute(ctx context.Context, input pipeline.EncodeInput) (pipeline.EncodeResult, error) {
	result := pipeline.EncodeResult{}

	if input.TotalFrames <= 0 {
		return result, fmt.Errorf("no frames to encode")
	}
	if input.Paint == nil {
		return result, fmt.Errorf("no paint function")
	}

	if err := s.encoder.Begin(input.OutputPath, input.Width, input.Height, input.FPS); err != nil {
		return result, fmt.Errorf("begin encoding: %w", err)
	}

	if err := s.encodeFrames(ctx, input); err != nil {
		if _, endErr := s.encoder.End(); endErr != nil {
			s.logger.Debug("end after failure: %v", endErr)
		}
		return result, err
	}

	stats, err := s.encoder.End()
	if err != nil {
		return result, fmt.Errorf("end encoding: %w", err)
	}

	result.FrameCount = stats.Frames
	result.FileSize = stats.Bytes
	result.DurationMs = stats.Frames * 1000 / input.FPS

	return result, nil
}

func (s *Stage) encodeFrames(ctx context.Context, input pipeline.EncodeInput) error {
	for i := 0; i < input.TotalFrames; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		img, err := input.Paint(ctx, i)
		if err != nil {
			return fmt.Errorf("paint frame %d: %w", i, err)
		}
		if err := s.encoder.EncodeFrame(img); err != nil {
			return fmt.Errorf("encode frame %d: %w", i, err)
		}
	}
	return nil
}
