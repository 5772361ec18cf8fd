// Package model defines the domain types for wallet exposure analysis.
//
// It contains the provider-side records (transactions, assets, portfolio
// data) decoded at the provider boundary, and the result-side records
// (exposure report, score breakdown, risk level) produced by the analysis
// pipeline. All types are plain data: they carry no behavior beyond
// validation and derived accessors, and they are never mutated after the
// pipeline hands them to a writer.
package model
