package input

import "github.com/gdamore/tcell/v2"

// FromTcell maps a tcell key event to a game key.
func FromTcell(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return KeyQuit
	case tcell.KeyRune:
		return byteToKey(runeToByte(ev.Rune()))
	default:
		return KeyOther
	}
}

// runeToByte narrows r for byteToKey; non-ASCII runes map to a byte that
// decodes as KeyOther.
func runeToByte(r rune) byte {
	if r > 0x7f {
		return 0
	}
	return byte(r)
}
