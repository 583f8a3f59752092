package draw

import (
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/tomz197/spacegame/internal/physics"
)

// Cell is one composed terminal character with its colors.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
}

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Game objects draw in logical coordinates which are scaled to terminal pixels.
// A separate text layer sits on top of the pixels.
type Canvas struct {
	termWidth      int     // Actual terminal columns
	termHeight     int     // Actual terminal rows
	subPixelHeight int     // termHeight * 2
	pixels         []Color // Flat slice: [y * termWidth + x]
	text           []Cell  // Flat slice: [row * termWidth + col], Rune 0 = no text

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Last frame written by Render, for diffing
	prev        []Cell
	forceRedraw bool
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by game objects.
// termWidth/Height are the actual terminal dimensions.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 1 {
		termWidth = 1
	}
	if termHeight < 1 {
		termHeight = 1
	}

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = termHeight * 2
		c.pixels = make([]Color, c.subPixelHeight*termWidth)
		c.text = make([]Cell, termHeight*termWidth)
		c.prev = make([]Cell, termHeight*termWidth)
		c.forceRedraw = true
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
}

// ForceRedraw makes the next Render rewrite every cell.
func (c *Canvas) ForceRedraw() {
	c.forceRedraw = true
}

// Clear resets all pixels and text in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
	clear(c.text)
}

// Begin implements Surface.
func (c *Canvas) Begin() {
	c.Clear()
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, col Color) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = col
	}
}

// pixelSpan converts a closed logical interval to a half-open pixel range.
// The range always covers at least one pixel so small objects stay visible.
func pixelSpan(lo, hi, scale float64) (int, int) {
	start := int(math.Floor(lo * scale))
	end := int(math.Ceil((hi + 1) * scale))
	if end <= start {
		end = start + 1
	}
	return start, end
}

// FillRect implements Surface.
func (c *Canvas) FillRect(r physics.Rect, col Color) {
	if col == Transparent {
		return
	}
	x0, x1 := pixelSpan(r.Left, r.Right, c.scaleX)
	y0, y1 := pixelSpan(r.Top, r.Bottom, c.scaleY)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.setPixel(x, y, col)
		}
	}
}

// StrokeRect implements Surface.
func (c *Canvas) StrokeRect(r physics.Rect, col Color) {
	x0, x1 := pixelSpan(r.Left, r.Right, c.scaleX)
	y0, y1 := pixelSpan(r.Top, r.Bottom, c.scaleY)
	for x := x0; x < x1; x++ {
		c.setPixel(x, y0, col)
		c.setPixel(x, y1-1, col)
	}
	for y := y0; y < y1; y++ {
		c.setPixel(x0, y, col)
		c.setPixel(x1-1, y, col)
	}
}

// DrawSprite implements Surface. Sampling is nearest-neighbour in pixel space.
func (c *Canvas) DrawSprite(img *Image, src, dst physics.Rect) {
	if img == nil {
		return
	}
	x0, x1 := pixelSpan(dst.Left, dst.Right, c.scaleX)
	y0, y1 := pixelSpan(dst.Top, dst.Bottom, c.scaleY)
	srcW := src.Width() + 1
	srcH := src.Height() + 1
	dw := float64(x1 - x0)
	dh := float64(y1 - y0)

	for y := y0; y < y1; y++ {
		sy := int(src.Top + (float64(y-y0)+0.5)/dh*srcH)
		for x := x0; x < x1; x++ {
			sx := int(src.Left + (float64(x-x0)+0.5)/dw*srcW)
			if col := img.At(sx, sy); col != Transparent {
				c.setPixel(x, y, col)
			}
		}
	}
}

// DrawText implements Surface. Text is placed on the terminal row containing y.
func (c *Canvas) DrawText(x, y float64, s string, align Align, col Color) {
	cellCol, row := c.LogicalToTerminal(x, y)
	n := utf8.RuneCountInString(s)
	switch align {
	case AlignCenter:
		cellCol -= n / 2
	case AlignRight:
		cellCol -= n
	}
	if row < 1 || row > c.termHeight {
		return
	}
	for _, r := range s {
		if cellCol >= 1 && cellCol <= c.termWidth {
			c.text[(row-1)*c.termWidth+cellCol-1] = Cell{Rune: r, FG: col}
		}
		cellCol++
	}
}

// Present implements Surface. A bare canvas has no output device.
func (c *Canvas) Present() error {
	return nil
}

// CellAt composes the text layer and the two half-block pixels at a 0-based cell.
func (c *Canvas) CellAt(col, row int) Cell {
	idx := row*c.termWidth + col
	if t := c.text[idx]; t.Rune != 0 {
		return t
	}

	top := c.pixels[row*2*c.termWidth+col]
	bottom := Transparent
	if row*2+1 < c.subPixelHeight {
		bottom = c.pixels[(row*2+1)*c.termWidth+col]
	}

	switch {
	case top == Transparent && bottom == Transparent:
		return Cell{Rune: BlockEmpty}
	case top == bottom:
		return Cell{Rune: BlockFull, FG: top}
	case bottom == Transparent:
		return Cell{Rune: BlockUpperHalf, FG: top}
	case top == Transparent:
		return Cell{Rune: BlockLowerHalf, FG: bottom}
	default:
		return Cell{Rune: BlockUpperHalf, FG: top, BG: bottom}
	}
}

// Render writes every cell that changed since the previous Render.
func (c *Canvas) Render(cw *ChunkWriter) {
	var sgr [20]byte
	lastFG, lastBG := Color(255), Color(255)

	for row := 0; row < c.termHeight; row++ {
		for col := 0; col < c.termWidth; col++ {
			cell := c.CellAt(col, row)
			idx := row*c.termWidth + col
			if !c.forceRedraw && c.prev[idx] == cell {
				continue
			}
			c.prev[idx] = cell

			cw.MoveCursor(col+1, row+1)
			if cell.FG != lastFG || cell.BG != lastBG {
				b := append(sgr[:0], "\033["...)
				b = strconv.AppendInt(b, int64(cell.FG.ansiFG()), 10)
				b = append(b, ';')
				b = strconv.AppendInt(b, int64(cell.BG.ansiBG()), 10)
				b = append(b, 'm')
				_, _ = cw.Write(b)
				lastFG, lastBG = cell.FG, cell.BG
			}
			cw.WriteRune(cell.Rune)
		}
	}

	cw.WriteString("\033[0m")
	c.forceRedraw = false
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to 1-based terminal position (col, row).
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Floor(x * c.scaleX))
	py := int(math.Floor(y * c.scaleY))
	return px + 1, py/2 + 1
}
