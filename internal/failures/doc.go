// Package failures defines the error kinds surfaced by mlstdb.
//
// Every failure that reaches the process boundary carries one of the exported
// sentinel markers so callers and tests can tell a missing input file from an
// ambiguous report or a broken translation table with errors.Is instead of
// matching message text. Wrap attaches component and operation context while
// keeping the marker and the underlying cause in the chain.
package failures
