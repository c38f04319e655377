package mocks

import (
	"image"
	"sync"

	"github.com/user/tinyrender/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	SceneJSON     []byte
	PaintedFrames map[int]image.Image
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled:       enabled,
		PaintedFrames: make(map[int]image.Image),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveSceneJSON(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SceneJSON = data
	return nil
}

func (m *DebugSink) SavePaintedFrame(index int, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PaintedFrames[index] = img
	return nil
}

// FrameCount returns how many painted frames were saved.
func (m *DebugSink) FrameCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.PaintedFrames)
}

var _ ports.DebugSink = (*DebugSink)(nil)
