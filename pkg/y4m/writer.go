package y4m

import (
	"io"

	"github.com/ideamans/go-l10n"

	"github.com/user/tinyrender/pkg/adapters/logger"
	"github.com/user/tinyrender/pkg/adapters/osfilesystem"
	"github.com/user/tinyrender/pkg/ports"
)

// State is the lifecycle state of a Writer.
type State int

const (
	StateUnopened State = iota
	StateOpen
	StateClosed
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateUnopened:
		return "unopened"
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Writer encodes RGB frames into a YUV4MPEG2 stream.
//
// A Writer moves from StateUnopened to StateOpen on a successful Open and
// to StateClosed on Close or on any write error. StateClosed is terminal.
// A Writer is not safe for concurrent use.
type Writer struct {
	fs  ports.FileSystem
	log ports.Logger

	pixels FrameBuffer

	// Borrowed planes are kept as given; owned planes are allocated on Open.
	borrowed bool
	yPlane   []byte
	uPlane   []byte
	vPlane   []byte

	opts    Options
	sink    io.WriteCloser
	state   State
	frames  int
	written int64
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithLogger sets the logger that receives diagnostics. The default
// discards everything.
func WithLogger(log ports.Logger) WriterOption {
	return func(w *Writer) {
		if log != nil {
			w.log = log
		}
	}
}

// WithFileSystem sets the filesystem used to create the output.
func WithFileSystem(fs ports.FileSystem) WriterOption {
	return func(w *Writer) {
		if fs != nil {
			w.fs = fs
		}
	}
}

// WithPlanes makes the writer use caller-owned planes instead of
// allocating its own. Each plane must hold at least Width*Height bytes.
func WithPlanes(y, u, v []byte) WriterOption {
	return func(w *Writer) {
		w.borrowed = true
		w.yPlane, w.uPlane, w.vPlane = y, u, v
	}
}

// New creates an unopened Writer bound to pixels. The buffer stays owned
// by the caller and must not be modified while WriteFrame runs.
func New(pixels FrameBuffer, opts ...WriterOption) *Writer {
	w := &Writer{
		fs:     osfilesystem.New(),
		log:    logger.NewNoop(),
		pixels: pixels,
		state:  StateUnopened,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Open validates opts, creates the output and writes the stream header.
//
// Validation happens before any I/O. On failure the writer stays
// unopened and holds no open sink.
func (w *Writer) Open(opts Options) error {
	if w == nil {
		return newError("open", InvalidHandle, "nil writer")
	}
	if w.state != StateUnopened {
		return newError("open", InvalidHandle, "writer is %s", w.state)
	}
	if w.pixels == nil {
		return newError("open", MissingPixelBuffer, "")
	}
	if w.borrowed && (w.yPlane == nil || w.uPlane == nil || w.vPlane == nil) {
		return newError("open", MissingPlaneBuffers, "")
	}
	if err := opts.validate(); err != nil {
		w.log.Error(l10n.F("Invalid stream options: %s", err))
		return err
	}

	n := opts.PlaneSize()
	if len(w.pixels) < n {
		return newError("open", MissingPixelBuffer, "buffer holds %d pixels, need %d", len(w.pixels), n)
	}
	if w.borrowed && (len(w.yPlane) < n || len(w.uPlane) < n || len(w.vPlane) < n) {
		return newError("open", MissingPlaneBuffers, "planes hold %d/%d/%d bytes, need %d",
			len(w.yPlane), len(w.uPlane), len(w.vPlane), n)
	}

	sink, err := w.fs.Create(opts.Path)
	if err != nil {
		w.log.Error(l10n.F("Failed to open '%s'", opts.Path))
		return &Error{Op: "open", Kind: SinkOpenFailed, Detail: opts.Path, Err: err}
	}

	header := opts.Header()
	wrote, err := io.WriteString(sink, header)
	if err == nil && wrote != len(header) {
		err = io.ErrShortWrite
	}
	if err != nil {
		w.log.Error(l10n.F("Failed to write file header to '%s'", opts.Path))
		if cerr := sink.Close(); cerr != nil {
			w.log.Error(l10n.F("Failed to close '%s': %s", opts.Path, cerr))
		}
		return &Error{Op: "open", Kind: SinkWriteFailed, Detail: "header", Err: err}
	}

	if !w.borrowed {
		w.yPlane = make([]byte, n)
		w.uPlane = make([]byte, n)
		w.vPlane = make([]byte, n)
	}
	w.opts = opts
	w.sink = sink
	w.written = int64(wrote)
	w.state = StateOpen

	w.log.Debug(l10n.F("Opened '%s' (%dx%d @ %dfps, plane bytes=%d)", opts.Path, opts.Width, opts.Height, opts.FPS, n))
	return nil
}

// WriteFrame converts the bound pixel buffer and appends one frame record.
//
// Any write error is fatal: the output is closed and the writer moves to
// StateClosed, because a truncated record cannot be recovered.
func (w *Writer) WriteFrame() error {
	if w == nil {
		return newError("frame", InvalidHandle, "nil writer")
	}
	if w.state != StateOpen || w.sink == nil {
		w.log.Warn(l10n.F("Cannot write frame: stream is %s", w.state))
		return newError("frame", NotOpen, "writer is %s", w.state)
	}
	if w.pixels == nil {
		return newError("frame", MissingPixelBuffer, "")
	}

	wrote, err := io.WriteString(w.sink, frameMarker)
	w.written += int64(wrote)
	if err == nil && wrote != len(frameMarker) {
		err = io.ErrShortWrite
	}
	if err != nil {
		w.log.Error(l10n.T("Failed to write frame header"))
		w.abort()
		return &Error{Op: "frame", Kind: SinkWriteFailed, Detail: "frame marker", Err: err}
	}

	n := w.opts.PlaneSize()
	ConvertFrame(w.pixels[:n], w.yPlane, w.uPlane, w.vPlane)

	for _, plane := range []struct {
		name string
		data []byte
	}{
		{"Y", w.yPlane[:n]},
		{"U", w.uPlane[:n]},
		{"V", w.vPlane[:n]},
	} {
		wrote, err := w.sink.Write(plane.data)
		w.written += int64(wrote)
		if wrote != n {
			w.log.Error(l10n.F("Short write (%s=%d/%d)", plane.name, wrote, n))
			w.abort()
			return &Error{Op: "frame", Kind: ShortWrite, Detail: plane.name + " plane", Err: err}
		}
		if err != nil {
			w.log.Error(l10n.F("Failed to write %s plane: %s", plane.name, err))
			w.abort()
			return &Error{Op: "frame", Kind: SinkWriteFailed, Detail: plane.name + " plane", Err: err}
		}
	}

	w.frames++
	w.log.Debug(l10n.F("Wrote %d bytes (YUV444)", 3*n))
	return nil
}

// Close flushes and releases the output. Failures are logged, not
// returned. Closing a writer that is not open only logs a warning.
func (w *Writer) Close() {
	if w == nil {
		return
	}
	if w.state != StateOpen {
		w.log.Warn(l10n.F("File already closed or was never opened (stream is %s)", w.state))
		return
	}
	w.release()
	w.log.Debug(l10n.F("Closed '%s' (%d frames, %d bytes)", w.opts.Path, w.frames, w.written))
}

// ClearBackground fills the bound pixel buffer with c.
func (w *Writer) ClearBackground(c Color) {
	if w == nil || w.pixels == nil {
		return
	}
	w.pixels.Fill(c)
}

// State returns the lifecycle state.
func (w *Writer) State() State {
	return w.state
}

// Options returns the options the stream was opened with.
func (w *Writer) Options() Options {
	return w.opts
}

// Pixels returns the bound pixel buffer.
func (w *Writer) Pixels() FrameBuffer {
	return w.pixels
}

// FramesWritten returns the number of complete frame records written.
func (w *Writer) FramesWritten() int {
	return w.frames
}

// BytesWritten returns the number of bytes written to the output.
func (w *Writer) BytesWritten() int64 {
	return w.written
}

func (w *Writer) abort() {
	w.release()
	w.log.Error(l10n.F("Stream '%s' aborted after %d frames", w.opts.Path, w.frames))
}

type flusher interface {
	Flush() error
}

func (w *Writer) release() {
	if f, ok := w.sink.(flusher); ok {
		if err := f.Flush(); err != nil {
			w.log.Error(l10n.F("Failed to flush '%s': %s", w.opts.Path, err))
		}
	}
	if err := w.sink.Close(); err != nil {
		w.log.Error(l10n.F("Failed to close '%s': %s", w.opts.Path, err))
	}
	w.sink = nil
	w.state = StateClosed
}
