package oled

import (
	"fmt"
	"strings"
)

// Op is one byte seen on the bus.
type Op struct {
	Command bool
	Value   byte
}

// String formats an op as "C:21" or "D:ff".
func (o Op) String() string {
	if o.Command {
		return fmt.Sprintf("C:%02x", o.Value)
	}
	return fmt.Sprintf("D:%02x", o.Value)
}

// Recorder is a Bus that keeps every byte it receives and optionally
// forwards it to another bus.
type Recorder struct {
	Ops  []Op
	next Bus
}

// NewRecorder returns a recorder forwarding to next, which may be nil.
func NewRecorder(next Bus) *Recorder {
	return &Recorder{next: next}
}

// WriteCommand records and forwards a command byte.
func (r *Recorder) WriteCommand(b byte) {
	r.Ops = append(r.Ops, Op{Command: true, Value: b})
	if r.next != nil {
		r.next.WriteCommand(b)
	}
}

// WriteData records and forwards a data byte.
func (r *Recorder) WriteData(b byte) {
	r.Ops = append(r.Ops, Op{Value: b})
	if r.next != nil {
		r.next.WriteData(b)
	}
}

// Reset forwards the reset pulse when the next bus has a reset line.
func (r *Recorder) Reset() {
	if rs, ok := r.next.(Resetter); ok {
		rs.Reset()
	}
}

// Commands returns only the command bytes, in order.
func (r *Recorder) Commands() []byte {
	var out []byte
	for _, op := range r.Ops {
		if op.Command {
			out = append(out, op.Value)
		}
	}
	return out
}

// Data returns only the pixel bytes, in order.
func (r *Recorder) Data() []byte {
	var out []byte
	for _, op := range r.Ops {
		if !op.Command {
			out = append(out, op.Value)
		}
	}
	return out
}

// Clear drops everything recorded so far.
func (r *Recorder) Clear() {
	r.Ops = r.Ops[:0]
}

// Trace formats the recorded ops, sixteen per line.
func (r *Recorder) Trace() string {
	var sb strings.Builder
	for i, op := range r.Ops {
		if i > 0 {
			if i%16 == 0 {
				sb.WriteByte('\n')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(op.String())
	}
	return sb.String()
}
