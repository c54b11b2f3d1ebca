// Package translation maps normalized species keys to MLST database names.
//
// A Table is an immutable mapping built once at startup, either from a YAML
// file on disk or from the copy bundled into the binary, and passed to callers
// explicitly. Resolve performs exact-match lookups only and falls back to the
// key itself for species the table does not mention.
package translation
