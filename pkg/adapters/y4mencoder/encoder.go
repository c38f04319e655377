// Package y4mencoder provides a YUV4MPEG2 video encoder.
package y4mencoder

import (
	"errors"
	"image"
	"image/color"

	"github.com/user/tinyrender/pkg/adapters/logger"
	"github.com/user/tinyrender/pkg/ports"
	"github.com/user/tinyrender/pkg/y4m"
)

// Encoder implements ports.VideoEncoder by writing a 4:4:4 Y4M stream.
// Each image is copied into a FrameBuffer owned by the encoder before
// conversion.
type Encoder struct {
	fs  ports.FileSystem
	log ports.Logger

	writer *y4m.Writer
	pixels y4m.FrameBuffer
	width  int
	height int
}

// New creates a new Encoder.
func New(fs ports.FileSystem, log ports.Logger) *Encoder {
	if log == nil {
		log = logger.NewNoop()
	}
	return &Encoder{
		fs:  fs,
		log: log,
	}
}

// Begin opens the output stream.
func (e *Encoder) Begin(path string, width, height, fps int) error {
	if e.writer != nil && e.writer.State() == y4m.StateOpen {
		return errors.New("encoder already started")
	}

	e.pixels = y4m.NewFrameBuffer(width, height)
	w := y4m.New(e.pixels,
		y4m.WithFileSystem(e.fs),
		y4m.WithLogger(e.log.WithComponent("y4m")),
	)
	if err := w.Open(y4m.Options{Path: path, Width: width, Height: height, FPS: fps}); err != nil {
		return err
	}

	e.writer = w
	e.width = width
	e.height = height
	return nil
}

// EncodeFrame converts img and appends it to the stream.
func (e *Encoder) EncodeFrame(img image.Image) error {
	if e.writer == nil {
		return &y4m.Error{Op: "frame", Kind: y4m.NotOpen, Detail: "encoder not started"}
	}
	e.load(img)
	return e.writer.WriteFrame()
}

// End closes the stream and reports what was written.
func (e *Encoder) End() (ports.EncoderStats, error) {
	if e.writer == nil {
		return ports.EncoderStats{}, errors.New("encoder not started")
	}
	e.writer.Close()
	return ports.EncoderStats{
		Frames: e.writer.FramesWritten(),
		Bytes:  e.writer.BytesWritten(),
	}, nil
}

// load copies img into the pixel buffer. Uniform images take the
// clear-background path; areas img does not cover become black.
func (e *Encoder) load(img image.Image) {
	if u, ok := img.(*image.Uniform); ok {
		e.writer.ClearBackground(colorOf(u.C))
		return
	}

	b := img.Bounds()
	w := min(b.Dx(), e.width)
	h := min(b.Dy(), e.height)
	if w < e.width || h < e.height {
		e.pixels.Fill(y4m.Color{})
	}

	switch src := img.(type) {
	case *image.RGBA:
		for y := 0; y < h; y++ {
			off := src.PixOffset(b.Min.X, b.Min.Y+y)
			row := src.Pix[off : off+4*w]
			dst := e.pixels[y*e.width : y*e.width+w]
			for x := range dst {
				dst[x] = y4m.Pixel{R: row[4*x], G: row[4*x+1], B: row[4*x+2]}
			}
		}
	default:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := colorOf(img.At(b.Min.X+x, b.Min.Y+y))
				e.pixels.Set(e.width, x, y, c)
			}
		}
	}
}

func colorOf(c color.Color) y4m.Color {
	r, g, b, _ := c.RGBA()
	return y4m.Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// Ensure Encoder implements ports.VideoEncoder
var _ ports.VideoEncoder = (*Encoder)(nil)
