// Package destination holds the destination catalog: canonical identifier →
// display name and price.
//
// Records are loaded once (see package loader), then the table is sealed and
// becomes read-only. Lookup never fails loudly: a missing identifier is a
// normal outcome for start/goal sentinels and pure waypoints, reported through
// the boolean result.
//
// Errors:
//
//	ErrEmptyID       – zero-length identifier
//	ErrNegativePrice – price below zero
//	ErrSealed        – Add after Seal
package destination
