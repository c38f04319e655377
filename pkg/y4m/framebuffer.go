package y4m

// Pixel is one RGB sample of a FrameBuffer.
type Pixel struct {
	R, G, B uint8
}

// Color is an RGB triple used to fill a FrameBuffer.
type Color struct {
	R, G, B uint8
}

// FrameBuffer holds RGB pixels in row-major order: pixel (x, y) of a
// frame of the given width lives at index y*width + x.
type FrameBuffer []Pixel

// NewFrameBuffer allocates a zeroed (black) buffer for width x height
// pixels. Non-positive dimensions yield an empty, non-nil buffer.
func NewFrameBuffer(width, height int) FrameBuffer {
	if width <= 0 || height <= 0 {
		return FrameBuffer{}
	}
	return make(FrameBuffer, width*height)
}

// Fill sets every pixel to c.
func (fb FrameBuffer) Fill(c Color) {
	if len(fb) == 0 {
		return
	}
	fb[0] = Pixel(c)
	// Double the filled prefix until the buffer is covered.
	for n := 1; n < len(fb); n *= 2 {
		copy(fb[n:], fb[:n])
	}
}

// Set sets pixel (x, y) in a frame of the given width.
func (fb FrameBuffer) Set(width, x, y int, c Color) {
	fb[y*width+x] = Pixel(c)
}

// At returns pixel (x, y) in a frame of the given width.
func (fb FrameBuffer) At(width, x, y int) Pixel {
	return fb[y*width+x]
}
