// Package species picks the most probable species from a KmerFinder report.
//
// Extract drops ambiguous " sp. " hits, reads every remaining hit's score from
// the score row, and returns the best hit together with its normalized key:
// the genus initial followed by the species epithet, lowercased
// ("Escherichia coli" becomes "ecoli"). The key is what translation tables
// are indexed by.
//
// Ties on the maximal score resolve to the lexicographically smallest label so
// the result never depends on report ordering.
package species
