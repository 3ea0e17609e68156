package record_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netknit/netknit/core"
	"github.com/netknit/netknit/record"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solutions.db")

	st, err := record.OpenStore(path)
	require.NoError(t, err)
	defer st.Close()

	require.NoError(t, st.Record(solvedFrame()))
	assert.Equal(t, 1, st.Count())

	n, err := st.SolutionCount()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	ids, err := st.SolutionIDs()
	require.NoError(t, err)
	require.Len(t, ids, 1)

	links, err := st.Links(ids[0])
	require.NoError(t, err)
	require.Len(t, links, 2)
	// Canonical endpoint order puts A before B.
	assert.Equal(t, record.LinkRecord{
		PointA: "A", ConnectorA: "c1+", PointB: "B", ConnectorB: "c1-",
	}, links[0])
	assert.Equal(t, record.LinkRecord{
		PointA: "B", ConnectorA: "c2+", PointB: "C", ConnectorB: "c2-",
	}, links[1])
}

func TestStoreDuplicateLinksCollapse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solutions.db")
	st, err := record.OpenStore(path)
	require.NoError(t, err)
	defer st.Close()

	f := core.NewFrame()
	l := core.NewLink(core.Plus("c1"), core.Minus("c1"), "A", "B")
	f.AddLink(l)
	f.AddLink(l)

	require.NoError(t, st.Record(f))
	ids, err := st.SolutionIDs()
	require.NoError(t, err)
	require.Len(t, ids, 1)

	links, err := st.Links(ids[0])
	require.NoError(t, err)
	assert.Len(t, links, 1)
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solutions.db")

	st, err := record.OpenStore(path)
	require.NoError(t, err)
	require.NoError(t, st.Record(solvedFrame()))
	require.NoError(t, st.Record(solvedFrame()))
	require.NoError(t, st.Close())

	reopened, err := record.OpenStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	// In-process counter starts over; the database remembers.
	assert.Equal(t, 0, reopened.Count())
	n, err := reopened.SolutionCount()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestStoreEmptySolution(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solutions.db")
	st, err := record.OpenStore(path)
	require.NoError(t, err)
	defer st.Close()

	require.NoError(t, st.Record(core.NewFrame()))

	ids, err := st.SolutionIDs()
	require.NoError(t, err)
	require.Len(t, ids, 1)

	links, err := st.Links(ids[0])
	require.NoError(t, err)
	assert.Empty(t, links)
}
