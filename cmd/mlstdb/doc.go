// Package main hosts the mlstdb CLI entrypoint and command graph.
//
// The root command reads a KmerFinder data.json report, selects the most
// probable species, and prints the matching MLST database name as a single
// line on standard output. Subcommands rank every candidate, list the
// translation table, and scaffold or validate configuration. Logs and errors
// go to standard error so the result line can be captured by pipelines.
//
// Keep this package lean: selection and translation live in internal
// packages; commands only wire configuration, logging, and output.
package main
