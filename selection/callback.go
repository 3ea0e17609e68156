// File: callback.go
// Role: The Policy contract a driver programs against, the Limits tunables
//       block, and the package's sentinel errors.

package selection

import (
	"errors"
	"fmt"

	"github.com/netknit/netknit/core"
)

// Sentinel errors for policy construction.
var (
	// ErrNilSpace is returned when a constructor receives a nil space.
	ErrNilSpace = errors.New("selection: space is nil")

	// ErrNilLexicon is returned when a constructor receives a nil lexicon.
	ErrNilLexicon = errors.New("selection: lexicon is nil")

	// ErrOptionViolation is returned when an invalid or inapplicable Option
	// is supplied.
	ErrOptionViolation = errors.New("selection: invalid option supplied")

	// ErrLimitViolation is returned when the Limits block carries a
	// negative value.
	ErrLimitViolation = errors.New("selection: invalid limits")
)

// Policy is the callback contract between an assembly driver and a
// selection strategy. A driver calls Select repeatedly per connector,
// mirrors its own backtracking through the push/pop pairs, and reports
// closed frames via Solution.
//
// All methods are single-goroutine; a Policy must never be shared across
// concurrent searches.
type Policy interface {
	// Joints returns the connector types c may mate with, dictionary-bound.
	Joints(c core.Connector) []core.Connector

	// Select returns the next candidate section exposing to, given that the
	// connector at offset within from is being closed. It answers
	// (zero, false) when the possibilities at this point are exhausted.
	// Repeated calls resume the iteration; push/pop reset and restore it.
	Select(f *core.Frame, from core.Section, offset int, to core.Connector) (core.Section, bool)

	// MakeLink interns the undirected link joining fromPt's fromCon to
	// toPt's toCon, creating it if needed.
	MakeLink(fromCon, toCon core.Connector, fromPt, toPt string) core.Link

	// HaveLink probes for an existing link without creating one.
	HaveLink(fromCon, toCon core.Connector, fromPt, toPt string) (core.Link, bool)

	// PushFrame checkpoints frame-scoped selection state (the open-phase
	// cursors). PopFrame restores the previous checkpoint and panics when
	// no matching PushFrame happened.
	PushFrame(f *core.Frame)
	PopFrame(f *core.Frame)

	// PushOdometer checkpoints odometer-scoped selection state (the
	// lexicon-phase cursors). PopOdometer restores the previous checkpoint
	// and panics when no matching PushOdometer happened.
	PushOdometer(o *core.Odometer)
	PopOdometer(o *core.Odometer)

	// Step reports whether the driver should keep growing the network.
	Step(f *core.Frame) bool

	// Solution reports a frame with no open connectors. The policy forwards
	// it to its sink and counts it toward MaxSolutions.
	Solution(f *core.Frame) error

	// Limits exposes the tunables block the policy was built with.
	Limits() *Limits
}

// StepFunc decides whether assembly may continue growing from f. Used by
// the Stochastic policy's Step hook.
type StepFunc func(f *core.Frame) bool

// StepSizeLimit returns a StepFunc that stops growth once the frame's
// linkage holds n links. n == 0 never stops.
func StepSizeLimit(n int) StepFunc {
	return func(f *core.Frame) bool {
		return n == 0 || len(f.Linkage) < n
	}
}

// Limits is the tunables block shared by every policy. The zero value of
// each field except MaxPairLinks means "no limit"; DefaultLimits returns
// the canonical defaults.
type Limits struct {
	// MaxSolutions stops Step once this many solutions were recorded.
	// 0 disables the cap.
	MaxSolutions int `yaml:"max_solutions"`

	// AllowSelfConnections permits a section to mate with itself. Off by
	// default: candidates structurally equal to the from-section are
	// skipped.
	AllowSelfConnections bool `yaml:"allow_self_connections"`

	// MaxPairLinks caps the number of parallel links between one endpoint
	// pair. Drivers enforce it via HaveLink/PairLinkCount. 0 disables the
	// cap.
	MaxPairLinks int `yaml:"max_pair_links"`

	// MaxNetworkSize caps the total number of instantiated sections,
	// driver-enforced. 0 disables the cap.
	MaxNetworkSize int `yaml:"max_network_size"`

	// MaxDepth caps recursion depth, driver-enforced. 0 disables the cap.
	MaxDepth int `yaml:"max_depth"`
}

// DefaultLimits returns the canonical tunables: unlimited solutions, no
// self connections, one link per endpoint pair, unlimited size and depth.
func DefaultLimits() Limits {
	return Limits{MaxPairLinks: 1}
}

// validate rejects negative values.
func (l Limits) validate() error {
	switch {
	case l.MaxSolutions < 0:
		return fmt.Errorf("%w: MaxSolutions cannot be negative (%d)", ErrLimitViolation, l.MaxSolutions)
	case l.MaxPairLinks < 0:
		return fmt.Errorf("%w: MaxPairLinks cannot be negative (%d)", ErrLimitViolation, l.MaxPairLinks)
	case l.MaxNetworkSize < 0:
		return fmt.Errorf("%w: MaxNetworkSize cannot be negative (%d)", ErrLimitViolation, l.MaxNetworkSize)
	case l.MaxDepth < 0:
		return fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrLimitViolation, l.MaxDepth)
	}
	return nil
}
