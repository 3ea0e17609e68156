// Package selection implements the policy layer of puzzle-piece network
// assembly: given a frame of open sections and a dictionary, a Policy
// answers "which section should attach to this connector next?" and keeps
// every bit of iteration state checkpointed for backtracking.
//
// What
//
// A driver grows a network by mating open connectors. For each connector it
// asks the policy:
//
//   - Joints(c) — which connector types may close c at all.
//   - Select(frame, from, offset, to) — one concrete candidate section
//     exposing to, or (zero, false) when the possibilities at this point are
//     spent. Repeated calls resume where the previous one left off.
//   - MakeLink / HaveLink — create or probe the undirected link once a
//     candidate is accepted.
//   - Solution(frame) — a frame with no open connectors is a solution.
//   - Step(frame) — whether growing should continue at all.
//
// Select works in two phases, always in this order:
//
//  1. Open phase: try sections already open in the frame. The candidate
//     list is scanned once per frame and cached per connector; an empty
//     scan caches nothing, so the (legitimately changing) open set is
//     re-scanned on later calls.
//  2. Lexicon phase: reached only while the connector has no cached open
//     candidates. Dictionary entries are enumerated (Exhaustive) or sampled
//     without replacement (Stochastic); every pick is instantiated into a
//     fresh unique piece. Once a connector's open candidates were cached,
//     its lexicon is off limits until the frame is popped; that rule is what
//     keeps a rolled-over odometer from alternating between the two phases
//     forever.
//
// Candidates structurally equal to the from-section are skipped unless
// AllowSelfConnections is set; a piece never mates with itself.
//
// Scoping and backtracking
//
// Cursor state is held per connector in explicit three-state form:
// unattempted (no entry), iterating, exhausted (spent, sticky). PushFrame
// checkpoints the open-phase state and PushOdometer the lexicon-phase
// state; the matching Pop restores the exact prior maps, spent markers
// included, so re-entering an exhausted branch stays exhausted and a
// restored branch resumes mid-iteration. The two stacks are independent and
// must stay balanced: popping without a matching push panics.
//
// Policies
//
//   - Exhaustive — deterministic in-order enumeration. Identical call
//     sequences over identical inputs replay identical results.
//   - Stochastic — weighted sampling without replacement, driven by the
//     weight attribute under WithWeightKey (absent attribute = weight 1,
//     zero weight = never drawn while positive weights remain, all-zero
//     set = uniform). Deterministic for a fixed WithSeed.
//
// Usage
//
//	lx := lexicon.New()
//	lx.Add(
//		core.NewSection("A", core.Plus("c1")),
//		core.NewSection("B", core.Minus("c1")),
//	)
//	sp := core.NewSpace()
//	pol, err := selection.NewExhaustive(sp, lx)
//	if err != nil { ... }
//
//	frame := core.NewFrame()
//	from := lx.Entries()[0]
//	pol.PushFrame(frame)
//	pol.PushOdometer(core.NewOdometer())
//	for _, to := range pol.Joints(core.Plus("c1")) { ... }
//	cand, ok := pol.Select(frame, from, 0, core.Minus("c1"))
//
// Options
//
//   - WithLimits — the tunables block (solution cap, self connections,
//     pair-link cap, network size, depth).
//   - WithSink — where solutions go (record.Discard by default).
//   - WithLogger — slog debug logging of phase decisions and checkpoints.
//   - WithSeed, WithWeightKey, WithStepFunc — Stochastic only; supplying
//     them to NewExhaustive is an option violation.
//
// Errors
//
//	ErrNilSpace        - constructor got a nil space.
//	ErrNilLexicon      - constructor got a nil lexicon.
//	ErrOptionViolation - invalid or inapplicable Option supplied.
//	ErrLimitViolation  - negative value in the Limits block.
//
// Absence of a candidate is never an error: Select answers with comma-ok.
// Unbalanced PopFrame/PopOdometer calls are programming errors and panic.
package selection
