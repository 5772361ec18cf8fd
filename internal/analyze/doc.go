// Package analyze implements the exposure scoring pipeline: five
// sub-analyzers (exchange linkage, activity, clustering, identity,
// financial), a risk narrator, and the weighted score aggregator.
//
// Every analyzer is a pure function of already-fetched provider data.
// Given identical inputs, the pipeline produces identical output; there
// is no hidden randomness and no time-dependent behavior beyond date
// formatting of each transaction's own timestamp.
//
// Scoring thresholds are expressed as ordered (threshold, score) ladder
// tables with a highest-match lookup. The ladder values are design
// constants, not measured domain truth; changing them changes scores but
// never breaks the 0-100 clamp invariant.
package analyze
