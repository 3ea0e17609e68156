// File: exhaustive.go
// Role: The deterministic policy: in-order open-section iteration, then
//       in-order lexicon enumeration with unique instantiation.
// Determinism: identical call sequences over identical inputs replay
// identical results; candidate order is frame order and dictionary order.

package selection

import (
	"fmt"
	"log/slog"

	"github.com/netknit/netknit/core"
	"github.com/netknit/netknit/lexicon"
	"github.com/netknit/netknit/record"
)

// Exhaustive enumerates candidates in order: open sections of the frame
// first, then dictionary entries, each exactly once per scope. It is the
// policy to use when every network a dictionary admits must be found.
type Exhaustive struct {
	space  *core.Space
	lex    *lexicon.Lexicon
	limits Limits
	sink   record.Sink
	log    *slog.Logger

	// Frame-scoped open-phase cursors plus their checkpoint stack.
	open      map[core.Connector]*openCursor
	openStack []map[core.Connector]*openCursor

	// Odometer-scoped lexicon cursors plus their checkpoint stack.
	lexCur   map[core.Connector]*lexCursor
	lexStack []map[core.Connector]*lexCursor

	solved int
}

var _ Policy = (*Exhaustive)(nil)

// NewExhaustive builds the deterministic policy over a space and a
// dictionary. Sampling options (WithSeed, WithWeightKey, WithStepFunc) are
// rejected with ErrOptionViolation.
func NewExhaustive(space *core.Space, lex *lexicon.Lexicon, opts ...Option) (*Exhaustive, error) {
	// 1. Validate inputs.
	if space == nil {
		return nil, ErrNilSpace
	}
	if lex == nil {
		return nil, ErrNilLexicon
	}

	// 2. Fold options.
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.seedSet || o.keySet || o.stepSet {
		return nil, fmt.Errorf("%w: sampling options need the Stochastic policy", ErrOptionViolation)
	}
	if err := o.limits.validate(); err != nil {
		return nil, err
	}

	// 3. Assemble with empty scopes.
	return &Exhaustive{
		space:  space,
		lex:    lex,
		limits: o.limits,
		sink:   o.sink,
		log:    o.log,
		open:   make(map[core.Connector]*openCursor),
		lexCur: make(map[core.Connector]*lexCursor),
	}, nil
}

// Joints returns the connector types c may mate with in the dictionary.
func (p *Exhaustive) Joints(c core.Connector) []core.Connector {
	return p.lex.Joints(c)
}

// Select returns the next candidate section exposing to, resuming wherever
// the previous call for this connector stopped.
func (p *Exhaustive) Select(f *core.Frame, from core.Section, offset int, to core.Connector) (core.Section, bool) {
	// 1. Open phase: existing open sections first.
	if s, ok := p.selectFromOpen(f, from, to); ok {
		p.log.Debug("select: open candidate", "to", to.String(), "section", s.String())
		return s, true
	}

	// 2. Rollover check: a connector that had real open candidates this
	//    frame never falls back to the lexicon; offering fresh pieces after
	//    the open set was iterated would alternate the two phases forever.
	if _, attempted := p.open[to]; attempted {
		p.log.Debug("select: rollover", "to", to.String())
		return core.Section{}, false
	}

	// 3. Lexicon phase.
	if s, ok := p.selectFromLexicon(from, to); ok {
		p.log.Debug("select: lexicon candidate", "to", to.String(), "section", s.String())
		return s, true
	}
	return core.Section{}, false
}

// selectFromOpen advances the frame-scoped cursor for to, creating it on
// the first non-empty scan. An empty scan leaves the connector unattempted.
func (p *Exhaustive) selectFromOpen(f *core.Frame, from core.Section, to core.Connector) (core.Section, bool) {
	cur, ok := p.open[to]
	if !ok {
		cands := openCandidates(f, to)
		if len(cands) == 0 {
			return core.Section{}, false
		}
		cur = &openCursor{cands: cands}
		p.open[to] = cur
	}
	for cur.next < len(cur.cands) {
		cand := cur.cands[cur.next]
		cur.next++
		if !p.limits.AllowSelfConnections && cand.Equal(from) {
			continue
		}
		return cand, true
	}
	cur.spent = true
	return core.Section{}, false
}

// selectFromLexicon advances the odometer-scoped dictionary cursor for to.
// Every returned section is a fresh unique instance; exhaustion is sticky.
func (p *Exhaustive) selectFromLexicon(from core.Section, to core.Connector) (core.Section, bool) {
	cur, ok := p.lexCur[to]
	if ok && cur.spent {
		return core.Section{}, false
	}
	cands := p.lex.Sections(to)
	if len(cands) == 0 {
		return core.Section{}, false
	}
	if !ok {
		cur = &lexCursor{}
		p.lexCur[to] = cur
	}
	for cur.next < len(cands) {
		cand := cands[cur.next]
		cur.next++
		if !p.limits.AllowSelfConnections && cand.Equal(from) {
			continue
		}
		return p.space.Instantiate(cand), true
	}
	cur.spent = true
	p.log.Debug("select: lexicon exhausted", "to", to.String())
	return core.Section{}, false
}

// MakeLink interns the undirected link in the space.
func (p *Exhaustive) MakeLink(fromCon, toCon core.Connector, fromPt, toPt string) core.Link {
	return p.space.MakeLink(fromCon, toCon, fromPt, toPt)
}

// HaveLink probes the space without creating.
func (p *Exhaustive) HaveLink(fromCon, toCon core.Connector, fromPt, toPt string) (core.Link, bool) {
	return p.space.HaveLink(fromCon, toCon, fromPt, toPt)
}

// PushFrame checkpoints the open-phase cursors and starts a fresh frame
// scope in which every connector is unattempted.
func (p *Exhaustive) PushFrame(*core.Frame) {
	p.openStack = append(p.openStack, p.open)
	p.open = make(map[core.Connector]*openCursor)
	p.log.Debug("push frame", "depth", len(p.openStack))
}

// PopFrame restores the open-phase cursors saved by the matching PushFrame,
// spent markers included. Panics when unbalanced.
func (p *Exhaustive) PopFrame(*core.Frame) {
	n := len(p.openStack)
	if n == 0 {
		panic("selection: PopFrame without matching PushFrame")
	}
	p.open = p.openStack[n-1]
	p.openStack = p.openStack[:n-1]
	p.log.Debug("pop frame", "depth", n-1)
}

// PushOdometer checkpoints the lexicon cursors and starts a fresh odometer
// scope.
func (p *Exhaustive) PushOdometer(*core.Odometer) {
	p.lexStack = append(p.lexStack, p.lexCur)
	p.lexCur = make(map[core.Connector]*lexCursor)
	p.log.Debug("push odometer", "depth", len(p.lexStack))
}

// PopOdometer restores the lexicon cursors saved by the matching
// PushOdometer. Panics when unbalanced.
func (p *Exhaustive) PopOdometer(*core.Odometer) {
	n := len(p.lexStack)
	if n == 0 {
		panic("selection: PopOdometer without matching PushOdometer")
	}
	p.lexCur = p.lexStack[n-1]
	p.lexStack = p.lexStack[:n-1]
	p.log.Debug("pop odometer", "depth", n-1)
}

// Step reports whether more solutions are wanted.
func (p *Exhaustive) Step(*core.Frame) bool {
	return p.limits.MaxSolutions == 0 || p.solved < p.limits.MaxSolutions
}

// Solution records a closed frame with the sink and counts it.
func (p *Exhaustive) Solution(f *core.Frame) error {
	if err := p.sink.Record(f); err != nil {
		return fmt.Errorf("selection: record solution: %w", err)
	}
	p.solved++
	p.log.Debug("solution recorded", "total", p.solved, "links", len(f.Linkage))
	return nil
}

// Limits exposes the tunables block.
func (p *Exhaustive) Limits() *Limits { return &p.limits }
