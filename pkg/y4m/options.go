// Package y4m writes uncompressed YUV4MPEG2 streams in the 4:4:4 profile.
//
// A Writer owns the output sink and the Y, U and V planes. The caller owns
// the RGB FrameBuffer, paints into it between frames and calls WriteFrame to
// convert and append one frame record:
//
//	pixels := y4m.NewFrameBuffer(640, 480)
//	w := y4m.New(pixels, y4m.WithLogger(log))
//	if err := w.Open(y4m.Options{Path: "out.y4m", Width: 640, Height: 480, FPS: 30}); err != nil {
//		return err
//	}
//	defer w.Close()
//	for i := 0; i < frames; i++ {
//		w.ClearBackground(y4m.Color{R: 255})
//		if err := w.WriteFrame(); err != nil {
//			return err
//		}
//	}
package y4m

import "strconv"

// frameMarker starts every frame record.
const frameMarker = "FRAME\n"

// Options describes a stream. It is copied into the Writer on Open and is
// not modified afterwards.
type Options struct {
	Path   string // Output target
	Width  int    // Frame width in pixels, > 0
	Height int    // Frame height in pixels, > 0
	FPS    int    // Frames per second, > 0
}

// PlaneSize returns the number of bytes in one plane.
func (o Options) PlaneSize() int {
	return o.Width * o.Height
}

// FrameSize returns the number of bytes in one frame record, marker included.
func (o Options) FrameSize() int {
	return len(frameMarker) + 3*o.PlaneSize()
}

// Header returns the stream header line.
func (o Options) Header() string {
	b := make([]byte, 0, 48)
	b = append(b, "YUV4MPEG2 W"...)
	b = strconv.AppendInt(b, int64(o.Width), 10)
	b = append(b, " H"...)
	b = strconv.AppendInt(b, int64(o.Height), 10)
	b = append(b, " F"...)
	b = strconv.AppendInt(b, int64(o.FPS), 10)
	b = append(b, ":1 Ip A1:1 C444\n"...)
	return string(b)
}

// StreamSize returns the size of a stream holding the given number of frames.
func (o Options) StreamSize(frames int) int64 {
	return int64(len(o.Header())) + int64(frames)*int64(o.FrameSize())
}

func (o Options) validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return newError("open", InvalidDimensions, "w=%d h=%d", o.Width, o.Height)
	}
	if o.FPS <= 0 {
		return newError("open", InvalidFrameRate, "fps=%d", o.FPS)
	}
	if o.Path == "" {
		return newError("open", MissingOutputTarget, "")
	}
	return nil
}
