// Package core provides the in-memory substrate for puzzle-piece network
// assembly: connectors, sections, undirected links, frames and the Space
// store that owns link identity and unique section instantiation.
//
// The vocabulary:
//
//   - Connector — a typed attachment point: a label plus a mating polarity
//     ("+" mates "-", bare labels mate bare labels). Value-comparable and
//     usable as a map key.
//   - Section — a puzzle piece: a named point plus an ordered connector
//     list, optionally carrying numeric attributes (selection weights).
//     Structural equality (Section.Equal) compares the point and the
//     connector list, never the attributes.
//   - Link — an undirected edge between two (point, connector) endpoints.
//     Endpoints are stored in canonical order, so links compare equal
//     regardless of the order their ends were named in.
//   - Frame — a snapshot of in-progress assembly: the open (unconnected)
//     sections and the linkage built so far. Owned and mutated by whoever
//     drives the assembly; selection policies only read it.
//   - Odometer — one level of a driver's backtracking stack: the connector
//     "wheels" being stepped at that level.
//   - Space — the store: interns links (creating the same link twice yields
//     the same value), answers existence probes, counts links per endpoint
//     pair, and stamps out unique copies of dictionary sections.
//
// Why a Space?
//
//   - Link identity must be stable: "make then probe" has to return the very
//     link that was made, with endpoint order irrelevant.
//   - Dictionary entries are reusable: each pick of an entry must become a
//     distinct piece, so Instantiate renames the point with a unique suffix
//     while keeping the connector list and attributes.
//
// Determinism: Links() and Instances() return insertion-ordered snapshots.
// No randomness outside Instantiate's suffix generation.
//
// Concurrency: none. The whole assembly model is single-threaded; a Space,
// like the frames and cursors around it, must be confined to one goroutine.
//
// Errors: core defines no sentinel errors. Absence (a link that was never
// made, a connector a section does not have) is reported with comma-ok
// booleans, never with errors.
package core
