// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// maxVariables bounds the number of distinct variables a single Diagram can
// hold. Real decisions have a handful of conditions; this is only a sanity
// fence against a malformed caller, not a tuning knob like rudd's _MAXVAR.
const maxVariables = 1 << 16

// InvariantError reports a violation of one of the reduction invariants
// (I1-I5) of package bdd. It can only be raised by a defect in this
// package itself, never by well-formed caller input (spec §7:
// InternalInvariantBreach is "programmer error; fail loud"), so the
// constructors that could return it instead panic with it.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return "bdd: invariant violated: " + e.Msg
}

func invariantViolation(msg string) {
	panic(&InvariantError{Msg: msg})
}
