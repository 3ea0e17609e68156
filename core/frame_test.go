package core_test

import (
	"testing"

	"github.com/netknit/netknit/core"
)

func TestFrameOpenOps(t *testing.T) {
	f := core.NewFrame()
	a := core.NewSection("A", core.Plus("c1"))
	b := core.NewSection("B", core.Minus("c1"))
	c := core.NewSection("C", core.Plus("c2"))

	f.AddOpen(a)
	f.AddOpen(b)
	f.AddOpen(c)

	if f.IsClosed() {
		t.Fatal("frame with open sections reported closed")
	}
	if !f.OpenContains(b) {
		t.Error("OpenContains missed an open section")
	}

	if !f.RemoveOpen(b) {
		t.Fatal("RemoveOpen missed an existing section")
	}
	if f.OpenContains(b) {
		t.Error("section still open after RemoveOpen")
	}
	// Removal keeps the order of the rest.
	if len(f.Open) != 2 || !f.Open[0].Equal(a) || !f.Open[1].Equal(c) {
		t.Errorf("Open after removal = %v, want [A C]", f.Open)
	}
	if f.RemoveOpen(b) {
		t.Error("RemoveOpen of an absent section must report false")
	}

	f.RemoveOpen(a)
	f.RemoveOpen(c)
	if !f.IsClosed() {
		t.Error("frame with no open sections must report closed")
	}
}

func TestFrameClone(t *testing.T) {
	f := core.NewFrame()
	f.AddOpen(core.NewSection("A", core.Plus("c1")))
	f.AddLink(core.NewLink(core.Plus("c0"), core.Minus("c0"), "A", "B"))

	snap := f.Clone()

	f.AddOpen(core.NewSection("B", core.Minus("c1")))
	f.AddLink(core.NewLink(core.Plus("c1"), core.Minus("c1"), "A", "B"))

	if len(snap.Open) != 1 || len(snap.Linkage) != 1 {
		t.Errorf("clone changed under mutation of the original: %+v", snap)
	}
}

func TestOdometer(t *testing.T) {
	from := core.NewSection("A", core.Plus("c1"), core.Plus("c2"))
	o := core.NewOdometer(
		core.Wheel{From: from, Offset: 0, To: core.Minus("c1")},
		core.Wheel{From: from, Offset: 1, To: core.Minus("c2")},
	)
	if o.Size() != 2 {
		t.Errorf("Size = %d, want 2", o.Size())
	}
}
