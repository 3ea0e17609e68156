// File: space.go
// Role: The Space store: link interning (MakeLink/HaveLink), per-pair link
//       counts, and unique section instantiation.
// Determinism:
//   - Links() and Instances() return insertion-ordered snapshots.
//   - MakeLink of an existing link returns the interned value unchanged.

package core

import "github.com/google/uuid"

// pairKey is an unordered point pair with a <= b.
type pairKey struct{ a, b string }

func newPairKey(x, y string) pairKey {
	if y < x {
		x, y = y, x
	}
	return pairKey{a: x, b: y}
}

// Space owns link identity and section instantiation for one assembly run.
// Not safe for concurrent use.
type Space struct {
	links     map[Link]struct{}
	order     []Link
	pairs     map[pairKey]int
	instances []Section
}

// NewSpace returns an empty store.
func NewSpace() *Space {
	return &Space{
		links: make(map[Link]struct{}),
		pairs: make(map[pairKey]int),
	}
}

// MakeLink interns the undirected link joining fromPt's fromCon to toPt's
// toCon and returns it. Making the same link twice (in either endpoint
// order) returns the same value without creating anything.
// Complexity: O(1).
func (sp *Space) MakeLink(fromCon, toCon Connector, fromPt, toPt string) Link {
	l := NewLink(fromCon, toCon, fromPt, toPt)
	if _, ok := sp.links[l]; ok {
		return l
	}
	sp.links[l] = struct{}{}
	sp.order = append(sp.order, l)
	sp.pairs[newPairKey(fromPt, toPt)]++
	return l
}

// HaveLink reports whether the link joining fromPt's fromCon to toPt's toCon
// was already made, comma-ok. It never creates; endpoint order is irrelevant.
// Complexity: O(1).
func (sp *Space) HaveLink(fromCon, toCon Connector, fromPt, toPt string) (Link, bool) {
	l := NewLink(fromCon, toCon, fromPt, toPt)
	_, ok := sp.links[l]
	if !ok {
		return Link{}, false
	}
	return l, true
}

// PairLinkCount returns the number of distinct links whose endpoints are the
// unordered point pair {ptA, ptB}. Drivers use it to enforce a cap on
// parallel links between two pieces.
func (sp *Space) PairLinkCount(ptA, ptB string) int {
	return sp.pairs[newPairKey(ptA, ptB)]
}

// Links returns all interned links in creation order.
func (sp *Space) Links() []Link {
	return append([]Link(nil), sp.order...)
}

// LinkCount returns the number of distinct links made so far.
func (sp *Space) LinkCount() int { return len(sp.links) }

// Instantiate stamps out a fresh copy of a dictionary section: the connector
// list and attributes are carried over and the point is renamed
// "<point>@<uuid>", so repeated picks of one entry stay distinct pieces. The
// copy is registered with the space and returned.
func (sp *Space) Instantiate(s Section) Section {
	inst := Section{
		Point:      s.Point + "@" + uuid.NewString(),
		Connectors: s.Connectors,
	}
	if len(s.Attrs) > 0 {
		attrs := make(map[string]float64, len(s.Attrs))
		for k, v := range s.Attrs {
			attrs[k] = v
		}
		inst.Attrs = attrs
	}
	sp.instances = append(sp.instances, inst)
	return inst
}

// Instances returns every section stamped out so far, in creation order.
func (sp *Space) Instances() []Section {
	return append([]Section(nil), sp.instances...)
}

// SectionCount returns the number of instantiated sections. Drivers use it
// to enforce a cap on total network size.
func (sp *Space) SectionCount() int { return len(sp.instances) }
