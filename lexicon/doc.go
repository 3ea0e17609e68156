// Package lexicon holds the dictionary a selection policy draws from: for
// every connector, the ordered list of sections that expose it, plus the
// mating rules that say which connectors may join.
//
// What
//
//   - Lexicon — insertion-ordered section lists per connector. Order is
//     stable across calls, which is what makes exhaustive enumeration
//     deterministic.
//   - Joints — the connectors a given connector may mate with: equal label,
//     complementary polarity ("+" with "-"), bare labels with bare labels.
//     Only connectors that actually occur in the lexicon are returned.
//   - Weight — the numeric selection weight of a section under a
//     configurable attribute key; absent key or empty key name means the
//     default weight 1.
//   - LoadYAML / LoadYAMLFile — dictionaries from YAML:
//
//     sections:
//       - point: A
//         connectors: ["c1+", "c2-"]
//         attrs: {weight: 2.0}
//
// Lookups for unknown connectors return empty results; absence is never an
// error. Loading reports ErrNoPoint and ErrBadConnector for malformed
// entries, wrapped so errors.Is works.
package lexicon
