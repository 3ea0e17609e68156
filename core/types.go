// File: types.go
// Role: Value types of the assembly substrate: Polarity, Connector, Section,
//       Endpoint, Link. All are plain values; none carry hidden state.
// Determinism:
//   - String forms are stable and used in logs, tests and the SQLite store.
//   - Link endpoints are canonically ordered at construction time.

package core

import "strings"

// Polarity is the mating parity of a connector. Plus mates Minus; a
// connector without polarity mates only other polarity-free connectors.
type Polarity uint8

const (
	// PolarityNone marks a connector that mates its own bare label.
	PolarityNone Polarity = iota
	// PolarityPlus marks the "+" side of a mating pair.
	PolarityPlus
	// PolarityMinus marks the "-" side of a mating pair.
	PolarityMinus
)

// String returns "", "+" or "-".
func (p Polarity) String() string {
	switch p {
	case PolarityPlus:
		return "+"
	case PolarityMinus:
		return "-"
	default:
		return ""
	}
}

// Connector is a typed attachment point on a section: a label plus a mating
// polarity. Connectors are value-comparable and usable as map keys.
type Connector struct {
	Label    string
	Polarity Polarity
}

// NewConnector builds a connector from a label and polarity.
func NewConnector(label string, p Polarity) Connector {
	return Connector{Label: label, Polarity: p}
}

// Plus is shorthand for NewConnector(label, PolarityPlus).
func Plus(label string) Connector { return Connector{Label: label, Polarity: PolarityPlus} }

// Minus is shorthand for NewConnector(label, PolarityMinus).
func Minus(label string) Connector { return Connector{Label: label, Polarity: PolarityMinus} }

// Mates reports whether c may connect to o: equal labels and complementary
// polarity (+ with -), or two polarity-free connectors of the same label.
func (c Connector) Mates(o Connector) bool {
	if c.Label != o.Label {
		return false
	}
	switch c.Polarity {
	case PolarityPlus:
		return o.Polarity == PolarityMinus
	case PolarityMinus:
		return o.Polarity == PolarityPlus
	default:
		return o.Polarity == PolarityNone
	}
}

// String returns the compact form "label", "label+" or "label-".
func (c Connector) String() string { return c.Label + c.Polarity.String() }

// Section is a puzzle piece: a point plus the ordered list of connectors it
// still wants to mate. Attrs carries optional numeric attributes (selection
// weights); Attrs never participates in structural equality.
type Section struct {
	Point      string
	Connectors []Connector
	Attrs      map[string]float64
}

// NewSection builds a section for point with the given connector order.
func NewSection(point string, cons ...Connector) Section {
	s := Section{Point: point}
	if len(cons) > 0 {
		s.Connectors = append([]Connector(nil), cons...)
	}
	return s
}

// WithAttr returns a copy of s carrying the attribute key=val. The copy
// shares the connector list (connector lists are immutable by convention).
func (s Section) WithAttr(key string, val float64) Section {
	attrs := make(map[string]float64, len(s.Attrs)+1)
	for k, v := range s.Attrs {
		attrs[k] = v
	}
	attrs[key] = val
	s.Attrs = attrs
	return s
}

// Attr returns the numeric attribute under key, comma-ok.
func (s Section) Attr(key string) (float64, bool) {
	v, ok := s.Attrs[key]
	return v, ok
}

// Arity returns the number of connectors on s.
func (s Section) Arity() int { return len(s.Connectors) }

// HasConnector reports whether s exposes a connector structurally equal to c.
// Complexity: O(arity).
func (s Section) HasConnector(c Connector) bool {
	for _, have := range s.Connectors {
		if have == c {
			return true
		}
	}
	return false
}

// Equal reports structural equality: same point and same ordered connector
// list. Attributes are ignored; a degenerate section with no connectors is
// equal only to another empty section at the same point.
func (s Section) Equal(o Section) bool {
	if s.Point != o.Point || len(s.Connectors) != len(o.Connectors) {
		return false
	}
	for i, c := range s.Connectors {
		if c != o.Connectors[i] {
			return false
		}
	}
	return true
}

// String returns the compact form "point [c1+ c2-]".
func (s Section) String() string {
	var b strings.Builder
	b.WriteString(s.Point)
	b.WriteString(" [")
	for i, c := range s.Connectors {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	b.WriteByte(']')
	return b.String()
}

// Endpoint is one side of a link: the point it lands on and the connector it
// consumed there.
type Endpoint struct {
	Point     string
	Connector Connector
}

// String returns "point.connector".
func (e Endpoint) String() string { return e.Point + "." + e.Connector.String() }

// less orders endpoints by point, then label, then polarity. Used to store
// Link endpoints canonically.
func (e Endpoint) less(o Endpoint) bool {
	if e.Point != o.Point {
		return e.Point < o.Point
	}
	if e.Connector.Label != o.Connector.Label {
		return e.Connector.Label < o.Connector.Label
	}
	return e.Connector.Polarity < o.Connector.Polarity
}

// Link is an undirected edge between two endpoints. The pair is unordered:
// NewLink(x, y, ...) and NewLink(y, x, ...) build the same value, so links
// are directly comparable with == and usable as map keys.
type Link struct {
	A, B Endpoint
}

// NewLink builds the canonical link joining fromPt's fromCon to toPt's
// toCon. Endpoint order is normalized, so the argument order is irrelevant.
func NewLink(fromCon, toCon Connector, fromPt, toPt string) Link {
	a := Endpoint{Point: fromPt, Connector: fromCon}
	b := Endpoint{Point: toPt, Connector: toCon}
	if b.less(a) {
		a, b = b, a
	}
	return Link{A: a, B: b}
}

// Points returns the two endpoint points in canonical order.
func (l Link) Points() (string, string) { return l.A.Point, l.B.Point }

// Involves reports whether point is one of the link's endpoint points.
func (l Link) Involves(point string) bool { return l.A.Point == point || l.B.Point == point }

// String returns "a.cx -- b.cy" in canonical endpoint order.
func (l Link) String() string { return l.A.String() + " -- " + l.B.String() }
