// Package input turns raw terminal input into discrete press/release events.
//
// Terminals only report key presses (and auto-repeat), never releases. A
// Tracker therefore considers a key held while it keeps being seen and
// synthesizes the release once it has been quiet for the hold window.
package input

import (
	"bufio"
	"context"
	"time"
)

// Key is a logical game key.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyFire
	KeyQuit
	KeyOther // Any other key; only used to leave the attract screen
)

// String returns the key name for logs.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyFire:
		return "fire"
	case KeyQuit:
		return "quit"
	case KeyOther:
		return "other"
	default:
		return "none"
	}
}

// Kind tells a press from a release.
type Kind int

const (
	Press Kind = iota
	Release
)

// Event is a single key transition.
type Event struct {
	Kind Kind
	Key  Key
}

// Stream delivers input bytes via a channel.
type Stream struct {
	ch     chan byte
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The channel is closed when r returns an error (e.g. the session ended) or
// ctx is cancelled.
func StartStream(ctx context.Context, r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		defer close(s.ch)
		for {
			b, err := r.ReadByte()
			if err != nil {
				return
			}
			select {
			case s.ch <- b:
			case <-ctx.Done():
				return
			}
		}
	}()
	return s
}

// Drain collects all available bytes without blocking and decodes them into
// keys in arrival order. A closed stream reports KeyQuit.
func (s *Stream) Drain() []Key {
	var buf []byte
drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	keys := ParseBytes(buf)
	if s.closed {
		keys = append(keys, KeyQuit)
	}
	return keys
}

// ParseBytes decodes terminal bytes into keys. Arrow keys arrive as
// CSI sequences (ESC [ A..D).
func ParseBytes(buf []byte) []Key {
	var keys []Key
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'C':
				keys = append(keys, KeyRight)
			case 'D':
				keys = append(keys, KeyLeft)
			default:
				keys = append(keys, KeyOther)
			}
			i += 2
			continue
		}

		keys = append(keys, byteToKey(b))
	}
	return keys
}

// byteToKey maps a single byte to a key.
func byteToKey(b byte) Key {
	switch b {
	case 'q', 'Q', '\x03': // Ctrl-C arrives as a byte in raw mode
		return KeyQuit
	case 'a', 'A', 'j', 'J', 'h', 'H':
		return KeyLeft
	case 'd', 'D', 'l', 'L':
		return KeyRight
	case ' ':
		return KeyFire
	default:
		return KeyOther
	}
}

// trackedKeys is the fixed order in which releases are reported.
var trackedKeys = [...]Key{KeyLeft, KeyRight, KeyFire, KeyQuit, KeyOther}

// Tracker converts key sightings into press/release events.
type Tracker struct {
	hold      time.Duration
	momentary map[Key]bool
	down      map[Key]bool
	lastSeen  map[Key]time.Time
}

// NewTracker creates a tracker that releases a key once it has not been seen
// for hold. Momentary keys are released in the same batch they are pressed.
func NewTracker(hold time.Duration, momentary ...Key) *Tracker {
	t := &Tracker{
		hold:      hold,
		momentary: make(map[Key]bool, len(momentary)),
		down:      make(map[Key]bool),
		lastSeen:  make(map[Key]time.Time),
	}
	for _, k := range momentary {
		t.momentary[k] = true
	}
	return t
}

// Observe records the keys seen at now and returns the resulting events:
// a Press for every sighting, then a Release for each held key that has gone
// quiet. Every sighting of a momentary key is a full tap.
func (t *Tracker) Observe(keys []Key, now time.Time) []Event {
	var events []Event
	for _, k := range keys {
		if k == KeyNone {
			continue
		}
		if t.momentary[k] {
			events = append(events, Event{Kind: Press, Key: k}, Event{Kind: Release, Key: k})
			continue
		}
		t.down[k] = true
		t.lastSeen[k] = now
		events = append(events, Event{Kind: Press, Key: k})
	}

	for _, k := range trackedKeys {
		if t.down[k] && now.Sub(t.lastSeen[k]) >= t.hold {
			t.down[k] = false
			events = append(events, Event{Kind: Release, Key: k})
		}
	}
	return events
}
