package draw

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"unicode/utf8"

	"golang.org/x/term"
)

// maxChunkSize keeps each write under a typical 1500 byte MTU so frames
// stream smoothly over SSH.
const maxChunkSize = 1400

// ChunkWriter collects one frame of terminal output and hands it to the
// underlying writer in MTU-sized chunks on Flush.
type ChunkWriter struct {
	w   io.Writer
	buf []byte
}

// NewChunkWriter creates a ChunkWriter that writes to w.
func NewChunkWriter(w io.Writer) *ChunkWriter {
	return &ChunkWriter{w: w, buf: make([]byte, 0, 16*1024)}
}

// MoveCursor appends a cursor position sequence. col and row are 1-based.
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.buf = append(cw.buf, "\033["...)
	cw.buf = strconv.AppendInt(cw.buf, int64(row), 10)
	cw.buf = append(cw.buf, ';')
	cw.buf = strconv.AppendInt(cw.buf, int64(col), 10)
	cw.buf = append(cw.buf, 'H')
}

// Write implements io.Writer. It only buffers and never fails.
func (cw *ChunkWriter) Write(p []byte) (int, error) {
	cw.buf = append(cw.buf, p...)
	return len(p), nil
}

// WriteString buffers s.
func (cw *ChunkWriter) WriteString(s string) {
	cw.buf = append(cw.buf, s...)
}

// WriteRune buffers r as UTF-8.
func (cw *ChunkWriter) WriteRune(r rune) {
	cw.buf = utf8.AppendRune(cw.buf, r)
}

var _ io.Writer = (*ChunkWriter)(nil)

// Flush writes everything buffered since the last Flush.
func (cw *ChunkWriter) Flush() error {
	data := cw.buf
	cw.buf = cw.buf[:0]
	for len(data) > 0 {
		n := min(len(data), maxChunkSize)
		if _, err := cw.w.Write(data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// TermSurface is a Surface that renders a Canvas to an ANSI terminal stream.
type TermSurface struct {
	*Canvas
	w        io.Writer
	cw       *ChunkWriter
	sizeFunc TermSizeFunc
}

// NewTermSurface creates a terminal surface for a logical field of the given size.
// sizeFunc is polled at the start of every frame to follow terminal resizes;
// nil means DefaultTermSizeFunc.
func NewTermSurface(w io.Writer, sizeFunc TermSizeFunc, logicalWidth, logicalHeight float64) *TermSurface {
	if sizeFunc == nil {
		sizeFunc = DefaultTermSizeFunc
	}
	width, height, err := sizeFunc()
	if err != nil {
		width, height = 80, 24
	}
	return &TermSurface{
		Canvas:   NewScaledCanvas(width, height, logicalWidth, logicalHeight),
		w:        w,
		cw:       NewChunkWriter(w),
		sizeFunc: sizeFunc,
	}
}

// Begin starts a frame, picking up any terminal resize.
func (s *TermSurface) Begin() {
	if width, height, err := s.sizeFunc(); err == nil {
		if width != s.TerminalWidth() || height != s.TerminalHeight() {
			s.cw.WriteString("\033[H\033[2J")
		}
		s.Resize(width, height)
	}
	s.Clear()
}

// Present renders the changed cells and flushes them to the terminal.
func (s *TermSurface) Present() error {
	s.Render(s.cw)
	if err := s.cw.Flush(); err != nil {
		return fmt.Errorf("flush frame: %w", err)
	}
	return nil
}

// Open prepares the terminal for full-screen drawing.
func (s *TermSurface) Open() {
	HideCursor(s.w)
	ClearScreen(s.w)
	s.ForceRedraw()
}

// Close restores the cursor and clears the screen.
func (s *TermSurface) Close() {
	fmt.Fprint(s.w, "\033[0m")
	ClearScreen(s.w)
	ShowCursor(s.w)
}

var _ Surface = (*TermSurface)(nil)
