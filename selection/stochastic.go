// File: stochastic.go
// Role: The weighted-random policy: same two-phase precedence as
//       Exhaustive, with weighted sampling without replacement per scope in
//       place of ordered iteration.
// Determinism: reproducible for a fixed WithSeed (PCG stream).

package selection

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/netknit/netknit/core"
	"github.com/netknit/netknit/lexicon"
	"github.com/netknit/netknit/record"
)

// candidateSet is the process-lifetime lexicon cache entry for one
// connector: the dictionary candidates and their resolved weights. Both
// slices are immutable once built; samplers copy the weights they consume.
type candidateSet struct {
	cands   []core.Section
	weights []float64
}

// sampler draws candidates without replacement: every Take removes the
// drawn candidate's weight, so no candidate repeats within one scope.
type sampler struct {
	cands []core.Section
	w     *sampleuv.Weighted
	spent bool
}

// Stochastic samples candidates proportionally to a weight attribute
// instead of enumerating them in order. Within one branch of the search no
// candidate is offered twice; backtracking restores consumed-ness exactly
// like the deterministic cursors.
type Stochastic struct {
	space     *core.Space
	lex       *lexicon.Lexicon
	limits    Limits
	sink      record.Sink
	log       *slog.Logger
	weightKey string
	src       rand.Source
	step      StepFunc

	// Process-lifetime lexicon candidate cache; nil entries memoize
	// connectors with no dictionary candidates.
	base map[core.Connector]*candidateSet

	// Frame-scoped open-phase samplers plus their checkpoint stack.
	openSamp  map[core.Connector]*sampler
	openStack []map[core.Connector]*sampler

	// Odometer-scoped lexicon samplers plus their checkpoint stack.
	lexSamp  map[core.Connector]*sampler
	lexStack []map[core.Connector]*sampler

	solved int
}

var _ Policy = (*Stochastic)(nil)

// NewStochastic builds the weighted-random policy over a space and a
// dictionary. Without WithSeed the stream is deterministic (seed 1); set
// WithWeightKey to weight draws by a section attribute.
func NewStochastic(space *core.Space, lex *lexicon.Lexicon, opts ...Option) (*Stochastic, error) {
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
	if err := o.limits.validate(); err != nil {
		return nil, err
	}
	step := o.step
	if step == nil {
		step = func(*core.Frame) bool { return true }
	}

	// 3. Assemble with empty scopes.
	return &Stochastic{
		space:     space,
		lex:       lex,
		limits:    o.limits,
		sink:      o.sink,
		log:       o.log,
		weightKey: o.weightKey,
		src:       rand.NewPCG(o.seed, o.seed),
		step:      step,
		base:      make(map[core.Connector]*candidateSet),
		openSamp:  make(map[core.Connector]*sampler),
		lexSamp:   make(map[core.Connector]*sampler),
	}, nil
}

// Joints returns the connector types c may mate with in the dictionary.
func (p *Stochastic) Joints(c core.Connector) []core.Connector {
	return p.lex.Joints(c)
}

// Select draws the next candidate section exposing to. Phase precedence
// matches the deterministic policy; only the order within a phase is
// random.
func (p *Stochastic) Select(f *core.Frame, from core.Section, offset int, to core.Connector) (core.Section, bool) {
	// 1. Open phase.
	if s, ok := p.selectFromOpen(f, from, to); ok {
		p.log.Debug("select: open draw", "to", to.String(), "section", s.String())
		return s, true
	}

	// 2. Rollover check, same rule as the deterministic policy.
	if _, attempted := p.openSamp[to]; attempted {
		p.log.Debug("select: rollover", "to", to.String())
		return core.Section{}, false
	}

	// 3. Lexicon phase.
	if s, ok := p.selectFromLexicon(from, to); ok {
		p.log.Debug("select: lexicon draw", "to", to.String(), "section", s.String())
		return s, true
	}
	return core.Section{}, false
}

// selectFromOpen draws from the frame's open candidates for to. The
// sampler is built on the first non-empty scan; an empty scan leaves the
// connector unattempted, mirroring the deterministic open phase.
func (p *Stochastic) selectFromOpen(f *core.Frame, from core.Section, to core.Connector) (core.Section, bool) {
	smp, ok := p.openSamp[to]
	if !ok {
		cands := openCandidates(f, to)
		if len(cands) == 0 {
			return core.Section{}, false
		}
		smp = p.newSampler(cands, resolveWeights(cands, p.weightKey))
		p.openSamp[to] = smp
	}
	return p.draw(smp, from, false)
}

// selectFromLexicon draws from the dictionary candidates for to. The
// candidate set and weights come from the process-lifetime cache; the
// consumable sampler state is odometer-scoped. Picks are instantiated.
func (p *Stochastic) selectFromLexicon(from core.Section, to core.Connector) (core.Section, bool) {
	smp, ok := p.lexSamp[to]
	if !ok {
		set := p.baseSet(to)
		if set == nil {
			return core.Section{}, false
		}
		smp = p.newSampler(set.cands, set.weights)
		p.lexSamp[to] = smp
	}
	return p.draw(smp, from, true)
}

// draw takes candidates from smp until one survives the self filter.
// Discarded draws stay consumed; exhaustion is sticky for the scope.
func (p *Stochastic) draw(smp *sampler, from core.Section, instantiate bool) (core.Section, bool) {
	if smp.spent {
		return core.Section{}, false
	}
	for {
		idx, ok := smp.w.Take()
		if !ok {
			smp.spent = true
			return core.Section{}, false
		}
		cand := smp.cands[idx]
		if !p.limits.AllowSelfConnections && cand.Equal(from) {
			continue
		}
		if instantiate {
			return p.space.Instantiate(cand), true
		}
		return cand, true
	}
}

// baseSet returns the cached candidate set for to, building it on first
// use. Connectors without dictionary candidates are memoized as nil; the
// lexicon is immutable during a search, so the verdict never changes.
func (p *Stochastic) baseSet(to core.Connector) *candidateSet {
	if set, ok := p.base[to]; ok {
		return set
	}
	cands := p.lex.Sections(to)
	if len(cands) == 0 {
		p.base[to] = nil
		return nil
	}
	set := &candidateSet{cands: cands, weights: resolveWeights(cands, p.weightKey)}
	p.base[to] = set
	return set
}

// newSampler builds a without-replacement sampler over cands sharing the
// policy's random stream.
func (p *Stochastic) newSampler(cands []core.Section, weights []float64) *sampler {
	w := sampleuv.NewWeighted(weights, p.src)
	return &sampler{cands: cands, w: &w}
}

// resolveWeights maps candidates to sampling weights under key: attribute
// value when present, the default weight otherwise. An all-zero vector
// falls back to uniform so a degenerate dictionary still selects.
func resolveWeights(cands []core.Section, key string) []float64 {
	ws := make([]float64, len(cands))
	for i, s := range cands {
		ws[i] = lexicon.Weight(s, key)
	}
	if floats.Sum(ws) == 0 {
		for i := range ws {
			ws[i] = 1
		}
	}
	return ws
}

// LexiconDistribution exposes the cached candidates for to with their
// normalized probabilities, comma-ok. Intended for inspection and tests;
// it reflects the full dictionary weights, not a branch's remaining set.
func (p *Stochastic) LexiconDistribution(to core.Connector) ([]core.Section, []float64, bool) {
	set := p.baseSet(to)
	if set == nil {
		return nil, nil, false
	}
	total := floats.Sum(set.weights)
	probs := make([]float64, len(set.weights))
	for i, w := range set.weights {
		probs[i] = w / total
	}
	return set.cands, probs, true
}

// MakeLink interns the undirected link in the space.
func (p *Stochastic) MakeLink(fromCon, toCon core.Connector, fromPt, toPt string) core.Link {
	return p.space.MakeLink(fromCon, toCon, fromPt, toPt)
}

// HaveLink probes the space without creating.
func (p *Stochastic) HaveLink(fromCon, toCon core.Connector, fromPt, toPt string) (core.Link, bool) {
	return p.space.HaveLink(fromCon, toCon, fromPt, toPt)
}

// PushFrame checkpoints the open-phase samplers and starts a fresh frame
// scope.
func (p *Stochastic) PushFrame(*core.Frame) {
	p.openStack = append(p.openStack, p.openSamp)
	p.openSamp = make(map[core.Connector]*sampler)
	p.log.Debug("push frame", "depth", len(p.openStack))
}

// PopFrame restores the open-phase samplers saved by the matching
// PushFrame, consumed draws included. Panics when unbalanced.
func (p *Stochastic) PopFrame(*core.Frame) {
	n := len(p.openStack)
	if n == 0 {
		panic("selection: PopFrame without matching PushFrame")
	}
	p.openSamp = p.openStack[n-1]
	p.openStack = p.openStack[:n-1]
	p.log.Debug("pop frame", "depth", n-1)
}

// PushOdometer checkpoints the lexicon samplers and starts a fresh
// odometer scope. The process-lifetime candidate cache is not scoped.
func (p *Stochastic) PushOdometer(*core.Odometer) {
	p.lexStack = append(p.lexStack, p.lexSamp)
	p.lexSamp = make(map[core.Connector]*sampler)
	p.log.Debug("push odometer", "depth", len(p.lexStack))
}

// PopOdometer restores the lexicon samplers saved by the matching
// PushOdometer. Panics when unbalanced.
func (p *Stochastic) PopOdometer(*core.Odometer) {
	n := len(p.lexStack)
	if n == 0 {
		panic("selection: PopOdometer without matching PushOdometer")
	}
	p.lexSamp = p.lexStack[n-1]
	p.lexStack = p.lexStack[:n-1]
	p.log.Debug("pop odometer", "depth", n-1)
}

// Step reports whether growth may continue: the solution cap first, then
// the injected cutoff.
func (p *Stochastic) Step(f *core.Frame) bool {
	if p.limits.MaxSolutions > 0 && p.solved >= p.limits.MaxSolutions {
		return false
	}
	return p.step(f)
}

// Solution records a closed frame with the sink and counts it.
func (p *Stochastic) Solution(f *core.Frame) error {
	if err := p.sink.Record(f); err != nil {
		return fmt.Errorf("selection: record solution: %w", err)
	}
	p.solved++
	p.log.Debug("solution recorded", "total", p.solved, "links", len(f.Linkage))
	return nil
}

// Limits exposes the tunables block.
func (p *Stochastic) Limits() *Limits { return &p.limits }
