package record_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netknit/netknit/core"
	"github.com/netknit/netknit/record"
)

var (
	_ record.Sink = (*record.Discard)(nil)
	_ record.Sink = (*record.Memory)(nil)
	_ record.Sink = (*record.Store)(nil)
)

func solvedFrame() *core.Frame {
	f := core.NewFrame()
	f.AddLink(core.NewLink(core.Plus("c1"), core.Minus("c1"), "A", "B"))
	f.AddLink(core.NewLink(core.Plus("c2"), core.Minus("c2"), "B", "C"))
	return f
}

func TestDiscardCounts(t *testing.T) {
	d := record.NewDiscard()
	require.NoError(t, d.Record(solvedFrame()))
	require.NoError(t, d.Record(solvedFrame()))
	assert.Equal(t, 2, d.Count())
}

func TestMemoryRetainsClones(t *testing.T) {
	m := record.NewMemory()
	f := solvedFrame()
	require.NoError(t, m.Record(f))

	// Driver keeps going after the solution was reported.
	f.AddLink(core.NewLink(core.Plus("c3"), core.Minus("c3"), "C", "D"))
	f.AddOpen(core.NewSection("D", core.Plus("c4")))

	sols := m.Solutions()
	require.Len(t, sols, 1)
	assert.Len(t, sols[0].Linkage, 2)
	assert.Empty(t, sols[0].Open)
	assert.Equal(t, 1, m.Count())
}

func TestMemoryOrder(t *testing.T) {
	m := record.NewMemory()

	first := core.NewFrame()
	first.AddLink(core.NewLink(core.Plus("c1"), core.Minus("c1"), "A", "B"))
	second := core.NewFrame()
	second.AddLink(core.NewLink(core.Plus("c9"), core.Minus("c9"), "X", "Y"))

	require.NoError(t, m.Record(first))
	require.NoError(t, m.Record(second))

	sols := m.Solutions()
	require.Len(t, sols, 2)
	assert.Equal(t, "A", sols[0].Linkage[0].A.Point)
	assert.Equal(t, "X", sols[1].Linkage[0].A.Point)

	// The returned slice is a snapshot.
	sols[0] = nil
	assert.NotNil(t, m.Solutions()[0])
}
