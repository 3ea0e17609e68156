// File: cursor.go
// Role: Per-connector cursor state in explicit three-state form, shared by
//       both policies.
// States:
//   - unattempted: no map entry for the connector.
//   - iterating:   entry present, spent == false.
//   - exhausted:   entry present, spent == true (sticky within the scope).

package selection

import "github.com/netknit/netknit/core"

// openCursor is the frame-scoped open-phase state for one connector: the
// candidate list cached at first scan plus the resume index. A connector
// whose first scan comes up empty gets no cursor at all, so the open set is
// re-scanned on later calls within the same frame.
type openCursor struct {
	cands []core.Section
	next  int
	spent bool
}

// lexCursor is the odometer-scoped lexicon-phase state for one connector.
// spent stays set until a push opens a fresh scope or a pop restores an
// earlier one; an exhausted dictionary never silently restarts.
type lexCursor struct {
	next  int
	spent bool
}

// openCandidates scans the frame's open sections for those exposing a
// connector structurally equal to to, preserving frame order.
// Complexity: O(open sections × arity).
func openCandidates(f *core.Frame, to core.Connector) []core.Section {
	var cands []core.Section
	for _, s := range f.Open {
		if s.HasConnector(to) {
			cands = append(cands, s)
		}
	}
	return cands
}
