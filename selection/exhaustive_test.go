package selection_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netknit/netknit/core"
	"github.com/netknit/netknit/lexicon"
	"github.com/netknit/netknit/record"
	"github.com/netknit/netknit/selection"
)

// entryName strips the instantiation suffix, so assertions can speak about
// dictionary entries instead of unique instance points.
func entryName(s core.Section) string {
	if i := strings.IndexByte(s.Point, '@'); i >= 0 {
		return s.Point[:i]
	}
	return s.Point
}

// minusDict builds a lexicon whose entries each expose a single c1-
// connector, in the given order.
func minusDict(points ...string) *lexicon.Lexicon {
	lx := lexicon.New()
	for _, pt := range points {
		lx.Add(core.NewSection(pt, core.Minus("c1")))
	}
	return lx
}

func newExhaustive(t *testing.T, lx *lexicon.Lexicon, opts ...selection.Option) (*selection.Exhaustive, *core.Space) {
	t.Helper()
	sp := core.NewSpace()
	pol, err := selection.NewExhaustive(sp, lx, opts...)
	require.NoError(t, err)
	return pol, sp
}

func TestSelectLexiconOrder(t *testing.T) {
	pol, _ := newExhaustive(t, minusDict("A", "B", "C"))
	f := core.NewFrame()
	from := core.NewSection("X", core.Plus("c1"))

	var got []string
	for {
		s, ok := pol.Select(f, from, 0, core.Minus("c1"))
		if !ok {
			break
		}
		got = append(got, entryName(s))
	}
	assert.Equal(t, []string{"A", "B", "C"}, got)

	// Exhaustion is sticky: further calls keep answering no-candidate.
	_, ok := pol.Select(f, from, 0, core.Minus("c1"))
	assert.False(t, ok)
}

func TestSelectTwoEntryDictionary(t *testing.T) {
	// Dictionary {A: c1, B: c1}; starting from A with an empty open set,
	// A is excluded as self and B is consumed, then nothing remains.
	c1 := core.NewConnector("c1", core.PolarityNone)
	lx := lexicon.New()
	a := core.NewSection("A", c1)
	b := core.NewSection("B", c1)
	lx.Add(a, b)

	pol, _ := newExhaustive(t, lx)
	f := core.NewFrame()

	s, ok := pol.Select(f, a, 0, c1)
	require.True(t, ok)
	assert.Equal(t, "B", entryName(s))
	assert.False(t, s.Equal(a), "returned section must not be structurally equal to from")

	_, ok = pol.Select(f, a, 0, c1)
	assert.False(t, ok)
}

func TestSelectInstantiatesFreshCopies(t *testing.T) {
	pol, sp := newExhaustive(t, minusDict("A"))
	from := core.NewSection("X", core.Plus("c1"))

	first, ok := pol.Select(core.NewFrame(), from, 0, core.Minus("c1"))
	require.True(t, ok)

	// A fresh odometer scope re-enumerates, with a new unique instance.
	pol.PushOdometer(core.NewOdometer())
	second, ok := pol.Select(core.NewFrame(), from, 0, core.Minus("c1"))
	require.True(t, ok)

	assert.Equal(t, "A", entryName(first))
	assert.Equal(t, "A", entryName(second))
	assert.NotEqual(t, first.Point, second.Point, "instances must be unique pieces")
	assert.Equal(t, 2, sp.SectionCount())
}

func TestSelectPrefersOpenSections(t *testing.T) {
	pol, sp := newExhaustive(t, minusDict("B"))
	from := core.NewSection("X", core.Plus("c1"))

	f := core.NewFrame()
	open := core.NewSection("O", core.Minus("c1"))
	f.AddOpen(open)

	s, ok := pol.Select(f, from, 0, core.Minus("c1"))
	require.True(t, ok)
	assert.True(t, s.Equal(open), "open sections take precedence over the dictionary")

	// The open set was iterated, so the lexicon stays off limits: the
	// odometer rolled over.
	_, ok = pol.Select(f, from, 0, core.Minus("c1"))
	assert.False(t, ok)
	assert.Equal(t, 0, sp.SectionCount(), "no dictionary entry may be instantiated")
}

func TestSelectSelfOnlyOpenSet(t *testing.T) {
	// The only open candidate is the from-section itself; skipping it
	// exhausts the open phase, and the cached attempt blocks the lexicon.
	lx := minusDict("D")
	pol, sp := newExhaustive(t, lx)

	self := core.NewSection("S", core.Plus("c1"), core.Minus("c1"))
	f := core.NewFrame()
	f.AddOpen(self)

	_, ok := pol.Select(f, self, 0, core.Minus("c1"))
	assert.False(t, ok)
	assert.Equal(t, 0, sp.SectionCount())
}

func TestSelectAllowSelfConnections(t *testing.T) {
	limits := selection.DefaultLimits()
	limits.AllowSelfConnections = true
	pol, _ := newExhaustive(t, minusDict("D"), selection.WithLimits(limits))

	self := core.NewSection("S", core.Plus("c1"), core.Minus("c1"))
	f := core.NewFrame()
	f.AddOpen(self)

	s, ok := pol.Select(f, self, 0, core.Minus("c1"))
	require.True(t, ok)
	assert.True(t, s.Equal(self))
}

func TestOpenCandidatesAppearMidFrame(t *testing.T) {
	// An empty open scan caches nothing, so a section attached later in
	// the same frame becomes visible; once the open set was iterated, the
	// lexicon is not retried.
	pol, _ := newExhaustive(t, minusDict("A"))
	from := core.NewSection("X", core.Plus("c1"))
	f := core.NewFrame()

	first, ok := pol.Select(f, from, 0, core.Minus("c1"))
	require.True(t, ok)
	assert.Equal(t, "A", entryName(first))

	// The driver attaches the instance; its remaining connector stays open.
	f.AddOpen(first)

	second, ok := pol.Select(f, from, 0, core.Minus("c1"))
	require.True(t, ok)
	assert.Equal(t, first.Point, second.Point, "the open instance must be offered as-is")

	_, ok = pol.Select(f, from, 0, core.Minus("c1"))
	assert.False(t, ok, "open set iterated, lexicon off limits")
}

func TestFrameScopeRestoration(t *testing.T) {
	pol, sp := newExhaustive(t, lexicon.New())
	from := core.NewSection("X", core.Plus("c1"))

	f := core.NewFrame()
	o1 := core.NewSection("O1", core.Minus("c1"))
	o2 := core.NewSection("O2", core.Minus("c1"))
	o3 := core.NewSection("O3", core.Minus("c1"))
	f.AddOpen(o1)
	f.AddOpen(o2)
	f.AddOpen(o3)

	s, ok := pol.Select(f, from, 0, core.Minus("c1"))
	require.True(t, ok)
	assert.Equal(t, "O1", s.Point)

	// A nested frame starts unattempted and scans afresh.
	pol.PushFrame(f)
	s, ok = pol.Select(f, from, 0, core.Minus("c1"))
	require.True(t, ok)
	assert.Equal(t, "O1", s.Point)
	pol.PopFrame(f)

	// The outer cursor resumes exactly where it stopped.
	s, ok = pol.Select(f, from, 0, core.Minus("c1"))
	require.True(t, ok)
	assert.Equal(t, "O2", s.Point)
	s, ok = pol.Select(f, from, 0, core.Minus("c1"))
	require.True(t, ok)
	assert.Equal(t, "O3", s.Point)

	_, ok = pol.Select(f, from, 0, core.Minus("c1"))
	assert.False(t, ok)
	assert.Equal(t, 0, sp.SectionCount())
}

func TestOdometerScopeRestoration(t *testing.T) {
	pol, _ := newExhaustive(t, minusDict("A", "B", "C"))
	from := core.NewSection("X", core.Plus("c1"))
	f := core.NewFrame()
	to := core.Minus("c1")

	s, _ := pol.Select(f, from, 0, to)
	assert.Equal(t, "A", entryName(s))

	// Fresh odometer scope enumerates from the top.
	pol.PushOdometer(core.NewOdometer())
	s, _ = pol.Select(f, from, 0, to)
	assert.Equal(t, "A", entryName(s))
	s, _ = pol.Select(f, from, 0, to)
	assert.Equal(t, "B", entryName(s))
	pol.PopOdometer(core.NewOdometer())

	// The outer cursor resumes at B.
	s, _ = pol.Select(f, from, 0, to)
	assert.Equal(t, "B", entryName(s))
	s, _ = pol.Select(f, from, 0, to)
	assert.Equal(t, "C", entryName(s))
	_, ok := pol.Select(f, from, 0, to)
	assert.False(t, ok)
}

func TestExhaustionSurvivesPushPop(t *testing.T) {
	pol, _ := newExhaustive(t, minusDict("A"))
	from := core.NewSection("X", core.Plus("c1"))
	f := core.NewFrame()
	to := core.Minus("c1")

	pol.Select(f, from, 0, to)
	_, ok := pol.Select(f, from, 0, to)
	require.False(t, ok, "dictionary spent")

	// A nested scope is fresh; popping back restores the spent marker.
	pol.PushOdometer(core.NewOdometer())
	s, ok := pol.Select(f, from, 0, to)
	require.True(t, ok)
	assert.Equal(t, "A", entryName(s))
	pol.PopOdometer(core.NewOdometer())

	_, ok = pol.Select(f, from, 0, to)
	assert.False(t, ok, "restored scope must stay exhausted")
}

func TestSelectNoCandidates(t *testing.T) {
	pol, _ := newExhaustive(t, minusDict("A"))
	from := core.NewSection("X", core.Plus("c2"))

	// No dictionary entry exposes c2-; absence is a plain no-candidate.
	_, ok := pol.Select(core.NewFrame(), from, 0, core.Minus("c2"))
	assert.False(t, ok)
	_, ok = pol.Select(core.NewFrame(), from, 0, core.Minus("c2"))
	assert.False(t, ok)
}

func TestJointsDelegates(t *testing.T) {
	lx := lexicon.New()
	lx.Add(core.NewSection("A", core.Plus("c1")), core.NewSection("B", core.Minus("c1")))
	pol, _ := newExhaustive(t, lx)

	assert.Equal(t, []core.Connector{core.Minus("c1")}, pol.Joints(core.Plus("c1")))
	assert.Empty(t, pol.Joints(core.Plus("zz")))
}

func TestLinkDelegation(t *testing.T) {
	pol, sp := newExhaustive(t, lexicon.New())

	if _, ok := pol.HaveLink(core.Plus("c1"), core.Minus("c1"), "A", "B"); ok {
		t.Fatal("HaveLink before MakeLink")
	}
	made := pol.MakeLink(core.Plus("c1"), core.Minus("c1"), "A", "B")
	got, ok := pol.HaveLink(core.Minus("c1"), core.Plus("c1"), "B", "A")
	require.True(t, ok)
	assert.Equal(t, made, got)
	assert.Equal(t, 1, sp.LinkCount())
}

func TestPopWithoutPushPanics(t *testing.T) {
	pol, _ := newExhaustive(t, lexicon.New())

	assert.Panics(t, func() { pol.PopFrame(core.NewFrame()) })
	assert.Panics(t, func() { pol.PopOdometer(core.NewOdometer()) })

	// Balanced pairs never panic.
	assert.NotPanics(t, func() {
		pol.PushFrame(core.NewFrame())
		pol.PopFrame(core.NewFrame())
		pol.PushOdometer(core.NewOdometer())
		pol.PopOdometer(core.NewOdometer())
	})
}

func TestStepAndSolution(t *testing.T) {
	sink := record.NewMemory()
	limits := selection.DefaultLimits()
	limits.MaxSolutions = 2
	pol, _ := newExhaustive(t, lexicon.New(),
		selection.WithLimits(limits), selection.WithSink(sink))

	solved := core.NewFrame()
	solved.AddLink(core.NewLink(core.Plus("c1"), core.Minus("c1"), "A", "B"))

	assert.True(t, pol.Step(solved))
	require.NoError(t, pol.Solution(solved))
	assert.True(t, pol.Step(solved))
	require.NoError(t, pol.Solution(solved))

	assert.False(t, pol.Step(solved), "solution cap reached")
	assert.Equal(t, 2, sink.Count())
	require.Len(t, sink.Solutions(), 2)
	assert.Len(t, sink.Solutions()[0].Linkage, 1)
}

func TestConstructorValidation(t *testing.T) {
	lx := lexicon.New()
	sp := core.NewSpace()

	_, err := selection.NewExhaustive(nil, lx)
	assert.ErrorIs(t, err, selection.ErrNilSpace)

	_, err = selection.NewExhaustive(sp, nil)
	assert.ErrorIs(t, err, selection.ErrNilLexicon)

	_, err = selection.NewExhaustive(sp, lx, selection.WithSeed(7))
	assert.ErrorIs(t, err, selection.ErrOptionViolation)

	_, err = selection.NewExhaustive(sp, lx, selection.WithWeightKey("weight"))
	assert.ErrorIs(t, err, selection.ErrOptionViolation)

	_, err = selection.NewExhaustive(sp, lx, selection.WithStepFunc(selection.StepSizeLimit(3)))
	assert.ErrorIs(t, err, selection.ErrOptionViolation)

	bad := selection.DefaultLimits()
	bad.MaxSolutions = -1
	_, err = selection.NewExhaustive(sp, lx, selection.WithLimits(bad))
	assert.ErrorIs(t, err, selection.ErrLimitViolation)
}

func TestLimitsExposed(t *testing.T) {
	limits := selection.DefaultLimits()
	limits.MaxPairLinks = 3
	pol, _ := newExhaustive(t, lexicon.New(), selection.WithLimits(limits))

	got := pol.Limits()
	assert.Equal(t, 3, got.MaxPairLinks)
	assert.False(t, got.AllowSelfConnections)
}
