package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Button is one digital input line. Values combine as a bit set.
type Button uint8

const (
	ButtonLeft Button = 1 << iota
	ButtonRight
	ButtonAction

	ButtonNone Button = 0
)

// AllButtons lists every input line in a fixed order.
var AllButtons = []Button{ButtonLeft, ButtonRight, ButtonAction}

// String returns a human-readable name for the button set.
func (b Button) String() string {
	if b == ButtonNone {
		return "none"
	}
	var names []string
	for _, one := range AllButtons {
		if b&one != 0 {
			names = append(names, one.name())
		}
	}
	return strings.Join(names, "+")
}

func (b Button) name() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonAction:
		return "action"
	default:
		return "unknown"
	}
}

// ParseButton maps a name ("left", "right", "action") to its button.
func ParseButton(s string) (Button, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return ButtonLeft, nil
	case "right", "r":
		return ButtonRight, nil
	case "action", "a", "fire":
		return ButtonAction, nil
	}
	return ButtonNone, fmt.Errorf("unknown button %q", s)
}

// InputFrame is the button state sampled once per tick.
type InputFrame struct {
	Buttons Button
}

// NewInputFrame creates a frame with the given buttons held.
func NewInputFrame(bs ...Button) InputFrame {
	var f InputFrame
	for _, b := range bs {
		f.Set(b)
	}
	return f
}

// Set marks a button as held.
func (f *InputFrame) Set(b Button) {
	f.Buttons |= b
}

// Has returns true if the button is held this frame.
func (f InputFrame) Has(b Button) bool {
	return f.Buttons&b != 0
}

// Clear releases every button.
func (f *InputFrame) Clear() {
	f.Buttons = ButtonNone
}

// ButtonReader is the input side of the hardware boundary.
type ButtonReader interface {
	ReadButton(b Button) bool
}

// Advancer is implemented by readers whose state depends on the tick.
type Advancer interface {
	Advance()
}

// Sample reads every button once.
func Sample(r ButtonReader) InputFrame {
	var f InputFrame
	if r == nil {
		return f
	}
	for _, b := range AllButtons {
		if r.ReadButton(b) {
			f.Set(b)
		}
	}
	return f
}

// Latch turns discrete key presses into held buttons. Terminals report
// presses but not releases, so a press keeps its button down for hold
// ticks unless it is pressed again.
type Latch struct {
	hold int
	left [3]int
}

// NewLatch creates a latch holding each press for hold ticks.
func NewLatch(hold int) *Latch {
	if hold < 1 {
		hold = 1
	}
	return &Latch{hold: hold}
}

// Press holds b for the configured number of ticks.
func (l *Latch) Press(b Button) {
	for i, one := range AllButtons {
		if b&one != 0 {
			l.left[i] = l.hold
		}
	}
}

// Release drops b immediately.
func (l *Latch) Release(b Button) {
	for i, one := range AllButtons {
		if b&one != 0 {
			l.left[i] = 0
		}
	}
}

// ReadButton reports whether b is held.
func (l *Latch) ReadButton(b Button) bool {
	for i, one := range AllButtons {
		if b&one != 0 && l.left[i] > 0 {
			return true
		}
	}
	return false
}

// Advance ages every held button by one tick.
func (l *Latch) Advance() {
	for i := range l.left {
		if l.left[i] > 0 {
			l.left[i]--
		}
	}
}

// ScriptStep holds buttons over the tick span [From, To].
type ScriptStep struct {
	From, To uint64
	Buttons  Button
}

// Script is a ButtonReader that replays a fixed press schedule.
type Script struct {
	steps []ScriptStep
	tick  uint64
}

// NewScript creates a script from steps.
func NewScript(steps ...ScriptStep) *Script {
	return &Script{steps: steps}
}

// ParseScript reads a schedule like "10:action,20-40:right,50-60:left+action".
// Each entry is a tick or an inclusive tick range followed by buttons.
func ParseScript(s string) (*Script, error) {
	sc := &Script{}
	if strings.TrimSpace(s) == "" {
		return sc, nil
	}
	for _, entry := range strings.Split(s, ",") {
		span, names, ok := strings.Cut(strings.TrimSpace(entry), ":")
		if !ok {
			return nil, fmt.Errorf("script entry %q: missing ':'", entry)
		}

		var step ScriptStep
		from, to, isRange := strings.Cut(span, "-")
		f, err := strconv.ParseUint(from, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("script entry %q: %w", entry, err)
		}
		step.From, step.To = f, f
		if isRange {
			t, err := strconv.ParseUint(to, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("script entry %q: %w", entry, err)
			}
			if t < f {
				return nil, fmt.Errorf("script entry %q: range ends before it starts", entry)
			}
			step.To = t
		}

		for _, name := range strings.Split(names, "+") {
			b, err := ParseButton(name)
			if err != nil {
				return nil, fmt.Errorf("script entry %q: %w", entry, err)
			}
			step.Buttons |= b
		}
		sc.steps = append(sc.steps, step)
	}
	return sc, nil
}

// ReadButton reports whether b is scheduled for the current tick.
func (s *Script) ReadButton(b Button) bool {
	for _, st := range s.steps {
		if s.tick >= st.From && s.tick <= st.To && st.Buttons&b != 0 {
			return true
		}
	}
	return false
}

// Advance moves to the next tick.
func (s *Script) Advance() {
	s.tick++
}

// Tick returns the current tick.
func (s *Script) Tick() uint64 {
	return s.tick
}
