package mocks

import (
	"image"

	"github.com/user/tinyrender/pkg/ports"
)

// VideoEncoder is a mock implementation of ports.VideoEncoder.
type VideoEncoder struct {
	BeginFunc       func(path string, width, height, fps int) error
	EncodeFrameFunc func(img image.Image) error
	EndFunc         func() (ports.EncoderStats, error)

	// Recorded calls for verification
	BeginCalls       []BeginCall
	EncodeFrameCalls []image.Image
	EndCalls         int
}

// BeginCall records a call to Begin.
type BeginCall struct {
	Path          string
	Width, Height int
	FPS           int
}

func (m *VideoEncoder) Begin(path string, width, height, fps int) error {
	m.BeginCalls = append(m.BeginCalls, BeginCall{Path: path, Width: width, Height: height, FPS: fps})
	if m.BeginFunc != nil {
		return m.BeginFunc(path, width, height, fps)
	}
	return nil
}

func (m *VideoEncoder) EncodeFrame(img image.Image) error {
	m.EncodeFrameCalls = append(m.EncodeFrameCalls, img)
	if m.EncodeFrameFunc != nil {
		return m.EncodeFrameFunc(img)
	}
	return nil
}

func (m *VideoEncoder) End() (ports.EncoderStats, error) {
	m.EndCalls++
	if m.EndFunc != nil {
		return m.EndFunc()
	}
	return ports.EncoderStats{Frames: len(m.EncodeFrameCalls)}, nil
}

var _ ports.VideoEncoder = (*VideoEncoder)(nil)
