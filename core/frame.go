// File: frame.go
// Role: Frame (in-progress assembly snapshot) and Odometer (one level of a
//       driver's backtracking stack). Both are driver-owned mutable state;
//       selection policies only ever read Frame.Open.

package core

// Frame is the mutable state of one assembly attempt: the sections whose
// connectors are still open, and the linkage built so far. The driver pushes
// a frame before trying an attachment and pops it to undo; selection-policy
// cursor state is checkpointed in lockstep through the policy's own
// PushFrame/PopFrame hooks.
type Frame struct {
	// Open holds the currently open sections in attachment order.
	Open []Section
	// Linkage holds every link made on the way to this frame.
	Linkage []Link
}

// NewFrame returns an empty frame.
func NewFrame() *Frame { return &Frame{} }

// AddOpen appends s to the open set.
func (f *Frame) AddOpen(s Section) { f.Open = append(f.Open, s) }

// RemoveOpen removes the first open section structurally equal to s and
// reports whether one was found. Order of the remaining sections is kept.
func (f *Frame) RemoveOpen(s Section) bool {
	for i, have := range f.Open {
		if have.Equal(s) {
			f.Open = append(f.Open[:i], f.Open[i+1:]...)
			return true
		}
	}
	return false
}

// OpenContains reports whether an open section structurally equal to s exists.
func (f *Frame) OpenContains(s Section) bool {
	for _, have := range f.Open {
		if have.Equal(s) {
			return true
		}
	}
	return false
}

// AddLink appends l to the linkage.
func (f *Frame) AddLink(l Link) { f.Linkage = append(f.Linkage, l) }

// IsClosed reports whether no open sections remain, i.e. the frame describes
// a finished network.
func (f *Frame) IsClosed() bool { return len(f.Open) == 0 }

// Clone returns a copy of f whose Open and Linkage slices are independent of
// the original. Sections and links are value types, so the copy is safe to
// retain while the driver keeps mutating f.
func (f *Frame) Clone() *Frame {
	c := &Frame{}
	if len(f.Open) > 0 {
		c.Open = append([]Section(nil), f.Open...)
	}
	if len(f.Linkage) > 0 {
		c.Linkage = append([]Link(nil), f.Linkage...)
	}
	return c
}

// Wheel is one odometer wheel: the from-section whose connector at Offset is
// being mated, and the connector sought on the other side.
type Wheel struct {
	From   Section
	Offset int
	To     Connector
}

// Odometer is one level of a driver's backtracking stack: the ordered set of
// wheels being stepped at that level. Selection policies treat it as opaque;
// it exists so that driver-shaped callers and tests can model their stacks
// with the same vocabulary the hooks use.
type Odometer struct {
	Wheels []Wheel
}

// NewOdometer returns an odometer over the given wheels.
func NewOdometer(wheels ...Wheel) *Odometer {
	o := &Odometer{}
	if len(wheels) > 0 {
		o.Wheels = append([]Wheel(nil), wheels...)
	}
	return o
}

// Size returns the number of wheels.
func (o *Odometer) Size() int { return len(o.Wheels) }
