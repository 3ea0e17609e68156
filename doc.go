// Package netknit is an in-memory toolkit for growing networks out of
// puzzle pieces — sections with typed connectors — by picking, mating and
// linking them until every connector is closed.
//
// 🧩 What is netknit?
//
//	A small, deterministic-by-default library that brings together:
//		• Core primitives: connectors, sections, undirected links, frames
//		• A lexicon: ordered dictionaries of sections, +/- mating rules, YAML loading
//		• Selection policies: exhaustive in-order enumeration & weighted sampling
//		• Scoped backtracking: push/pop checkpoints that restore cursor state exactly
//		• Solution sinks: in-memory collection or SQLite persistence
//
// ✨ Why choose netknit?
//
//   - Predictable – the exhaustive policy replays identical sequences on identical input
//   - Honest randomness – weighted draws without replacement, reproducible under a seed
//   - Pure Go – the SQLite driver included
//   - Extensible – inject your own step cutoffs, sinks and loggers
//
// Everything is organized under five subpackages:
//
//	core/      — Connector, Section, Link, Frame, Odometer and the Space store
//	lexicon/   — dictionaries: ordered section lists, joints, weights, YAML
//	selection/ — the policy layer: Exhaustive & Stochastic selection
//	record/    — solution sinks: Discard, Memory, SQLite Store
//	config/    — defaults → YAML file → env → validate, plus policy assembly
//
// Quick ASCII example:
//
//	    A(c1+)   B(c1-)
//	       └──c1───┘
//
//	two one-connector pieces mate on the c1 label and close the network.
//
// Dive into examples/ for full scenario walkthroughs.
//
//	go get github.com/netknit/netknit
package netknit
