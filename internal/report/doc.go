// Package report loads KmerFinder species-identification results.
//
// A report is read from the `kmerfinder.results.species_hits` object of the
// tool's JSON output. Hits and the fields of each hit keep the order they have
// in the document, because downstream selection addresses the score by its row
// position when no named score field is present. Values are kept raw and only
// coerced to numbers on demand.
package report
