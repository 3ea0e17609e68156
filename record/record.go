// File: record.go
// Role: The Sink contract plus the in-process sinks: Discard and Memory.

package record

import "github.com/netknit/netknit/core"

// Sink receives every solved frame a selection policy reports.
type Sink interface {
	// Record stores one solution. The frame belongs to the caller and may
	// be mutated afterwards; sinks that retain it must clone.
	Record(f *core.Frame) error
	// Count returns the number of solutions recorded so far.
	Count() int
}

// Discard counts solutions and keeps nothing. The zero value is ready to use.
type Discard struct {
	n int
}

// NewDiscard returns a counting sink that retains no frames.
func NewDiscard() *Discard { return &Discard{} }

// Record counts the solution and drops it.
func (d *Discard) Record(*core.Frame) error {
	d.n++
	return nil
}

// Count returns the number of recorded solutions.
func (d *Discard) Count() int { return d.n }

// Memory retains a clone of every recorded frame, in record order.
type Memory struct {
	frames []*core.Frame
}

// NewMemory returns an empty in-memory sink.
func NewMemory() *Memory { return &Memory{} }

// Record clones and retains the frame, so later driver mutation cannot
// corrupt the stored solution.
func (m *Memory) Record(f *core.Frame) error {
	m.frames = append(m.frames, f.Clone())
	return nil
}

// Count returns the number of recorded solutions.
func (m *Memory) Count() int { return len(m.frames) }

// Solutions returns the recorded frames in record order. The slice is a
// copy; the frames are the retained clones.
func (m *Memory) Solutions() []*core.Frame {
	return append([]*core.Frame(nil), m.frames...)
}
