// File: lexicon.go
// Role: The Lexicon container: insertion-ordered section lists per
//       connector, joints (mating) lookup, weight accessor.
// Determinism:
//   - Sections(c) preserves Add order; Joints(c) preserves first-seen order.

package lexicon

import "github.com/netknit/netknit/core"

// DefaultWeight is the selection weight of a section that does not carry the
// configured weight attribute.
const DefaultWeight = 1.0

// Lexicon is an ordered dictionary of sections indexed by connector.
// Not safe for concurrent mutation; build it fully before a search starts.
type Lexicon struct {
	entries  []core.Section
	byCon    map[core.Connector][]core.Section
	conOrder []core.Connector
	points   []string
	seenPt   map[string]struct{}
}

// New returns an empty lexicon.
func New() *Lexicon {
	return &Lexicon{
		byCon:  make(map[core.Connector][]core.Section),
		seenPt: make(map[string]struct{}),
	}
}

// Add appends sections to the dictionary. Each section is indexed once per
// distinct connector it exposes, in the order given, so that Sections(c)
// enumerates candidates in dictionary order.
func (lx *Lexicon) Add(sections ...core.Section) {
	for _, s := range sections {
		lx.entries = append(lx.entries, s)
		if _, ok := lx.seenPt[s.Point]; !ok {
			lx.seenPt[s.Point] = struct{}{}
			lx.points = append(lx.points, s.Point)
		}
		seen := make(map[core.Connector]struct{}, len(s.Connectors))
		for _, c := range s.Connectors {
			if _, dup := seen[c]; dup {
				continue
			}
			seen[c] = struct{}{}
			if _, known := lx.byCon[c]; !known {
				lx.conOrder = append(lx.conOrder, c)
			}
			lx.byCon[c] = append(lx.byCon[c], s)
		}
	}
}

// Sections returns the dictionary-ordered sections exposing a connector
// structurally equal to c. The returned slice is the lexicon's own and must
// be treated as read-only. Unknown connectors yield an empty list.
// Complexity: O(1).
func (lx *Lexicon) Sections(c core.Connector) []core.Section {
	return lx.byCon[c]
}

// Joints returns the connectors c may mate with, restricted to connectors
// that occur somewhere in the lexicon, in first-seen order. An empty result
// means c can never be closed with this dictionary.
func (lx *Lexicon) Joints(c core.Connector) []core.Connector {
	var joints []core.Connector
	for _, o := range lx.conOrder {
		if c.Mates(o) {
			joints = append(joints, o)
		}
	}
	return joints
}

// Len returns the number of entries added.
func (lx *Lexicon) Len() int { return len(lx.entries) }

// Entries returns every dictionary entry in Add order.
func (lx *Lexicon) Entries() []core.Section {
	return append([]core.Section(nil), lx.entries...)
}

// Points returns the distinct entry points in first-seen order.
func (lx *Lexicon) Points() []string {
	return append([]string(nil), lx.points...)
}

// Weight returns the selection weight of s under the attribute key: the
// attribute value when present, DefaultWeight when the key is absent or
// empty. An explicit zero is returned as zero; what zero means is up to the
// sampler consuming it.
func Weight(s core.Section, key string) float64 {
	if key == "" {
		return DefaultWeight
	}
	if w, ok := s.Attr(key); ok {
		return w
	}
	return DefaultWeight
}
