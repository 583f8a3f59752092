package draw

import "github.com/tomz197/spacegame/internal/physics"

// Image is an in-memory sprite sheet: a row-major grid of palette colors
// split horizontally into equally sized frames.
type Image struct {
	Width       int
	Height      int
	FrameWidth  int
	FrameHeight int
	pix         []Color
}

// spritePalette maps sheet characters to colors. Unknown characters are transparent.
var spritePalette = map[byte]Color{
	'W': White,
	'g': Gray,
	'R': Red,
	'Y': Yellow,
	'G': Green,
	'C': Cyan,
	'B': Blue,
	'M': Magenta,
	'O': Orange,
}

// NewImage builds a sprite sheet from text rows. Every row must have the same
// length; frameWidth splits the sheet into frames left to right.
func NewImage(frameWidth int, rows ...string) *Image {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}
	img := &Image{
		Width:       width,
		Height:      height,
		FrameWidth:  frameWidth,
		FrameHeight: height,
		pix:         make([]Color, width*height),
	}
	for y, row := range rows {
		for x := 0; x < len(row) && x < width; x++ {
			img.pix[y*width+x] = spritePalette[row[x]]
		}
	}
	return img
}

// At returns the color at (x, y), or Transparent outside the sheet.
func (img *Image) At(x, y int) Color {
	if img == nil || x < 0 || y < 0 || x >= img.Width || y >= img.Height {
		return Transparent
	}
	return img.pix[y*img.Width+x]
}

// Frame returns the source rectangle of frame n.
func (img *Image) Frame(n int) physics.Rect {
	return physics.RectFromSize(float64(n*img.FrameWidth), 0, float64(img.FrameWidth), float64(img.FrameHeight))
}

// Frames returns the number of frames in the sheet.
func (img *Image) Frames() int {
	if img.FrameWidth <= 0 {
		return 0
	}
	return img.Width / img.FrameWidth
}

// Built-in sprite sheets.
var (
	// PlayerShip has three frames: banking left, level, banking right.
	PlayerShip = NewImage(8,
		"...W......WW......W.....",
		"..WWW.....WW.....WWW....",
		"..WCW....WCCW....WCW....",
		".WWCWW..WWCCWW..WWCWW...",
		"WWWWWWW.WWWWWWWW.WWWWWWW",
		"WgWWWgW.WgWWWWgW.WgWWWgW",
		"Wg.W.gW.Wg.WW.gW.Wg.W.gW",
		"g.....g.g......g.g.....g",
	)

	// Thruster has four flame frames drawn under the ship.
	Thruster = NewImage(8,
		"..OYYO....OYYO....OYYO....OYYO..",
		"...YY.....OYYO....OYYO....OYYO..",
		"...O......OYYO.....YY......YY...",
		"...........YY......YY......Y....",
		"...........O.......OO...........",
		"....................O...........",
		"................................",
		"................................",
	)

	// Explosion has five frames, growing then fading.
	Explosion = NewImage(8,
		"..................O.....O....g.....g....",
		"..........O..O.....OYYO...O.O.O..g...g..",
		"...YY.....OYYO...OYWWYO..O.Y.Y.O........",
		"..YWWY...OYWWYO..YWWWWY..OY.R.YO....g...",
		"..YWWY...OYWWYO..YWWWWY..OY.R.YO...g....",
		"...YY.....OYYO...OYWWYO..O.Y.Y.O........",
		"..........O..O.....OYYO...O.O.O..g...g..",
		"..................O.....O....g.....g....",
	)

	// Mothership is the single-frame enemy.
	Mothership = NewImage(18,
		"......MMMMMM......",
		"....MMCCCCCCMM....",
		"..MMMMMMMMMMMMMM..",
		".MgMgMgMgMgMgMgMM.",
		"MMMMMMMMMMMMMMMMMM",
		".RR.MMMMMMMMMM.RR.",
		"......RR..RR......",
		"..................",
	)
)
