// Package mcdcerrors is the error taxonomy of spec §7: ParseError,
// IOError and InternalInvariantBreach, modeled as go-errors.v1 Kinds the
// way dolthub's go-mysql-server declares its auth error kinds.
package mcdcerrors

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrParse wraps a host-parser failure, naming the file. The file then
	// has no function entries: the façade does not analyze a partial tree
	// returned alongside the error.
	ErrParse = errors.NewKind("parse error in %s: %s")

	// ErrIO wraps a failure to read one source file. Fatal for the one
	// file it names, never for the whole run. Path and directory-scan
	// failures in cmd/mcdctree are not wrapped in it; they end the run.
	ErrIO = errors.NewKind("I/O error reading %s: %s")

	// ErrInvariant describes a violation of I1-I5, a programmer error
	// rather than a recoverable condition. Package bdd reports such a
	// violation by panicking with its own *bdd.InvariantError; the façade
	// does not recover that panic, so no code path in this module
	// produces an ErrInvariant.
	ErrInvariant = errors.NewKind("internal invariant violated while analyzing %s: %s")
)
