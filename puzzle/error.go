// Copyright (c) The PuzzleEngine Authors.  All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package puzzle

import "fmt"

/*

Errors

Domain failures are reported as structured Error values rather than
bare strings, so callers can dispatch on what went wrong and where
while still getting a readable message from the error interface.
Internal logic errors (broken preconditions, impossible states) are
not Errors; those panic.

*/

// An Error describes a problem with a puzzle or a requested
// operation: the part of the system it concerns, the predicate that
// failed, and supplemental values for the message.
type Error struct {
	Scope     ErrorScope     `json:"scope"`
	Condition ErrorCondition `json:"condition"`
	Values    ErrorData      `json:"values,omitempty"`
}

// An ErrorScope names the part of the system the error concerns.
type ErrorScope int

// Constants for the error scopes.
const (
	UnknownScope ErrorScope = iota
	LoadScope
	GridScope
	MaxScope
)

// An ErrorCondition is the predicate that failed.
type ErrorCondition int

// Constants for the error conditions.
const (
	UnknownCondition ErrorCondition = iota
	ShortInputCondition
	TooManySymbolsCondition
	ConflictingValuesCondition
	UnsolvableCondition
	MaxCondition
)

// ErrorData holds the supplemental values of an Error.  Everything
// in it must be JSON-serializable so errors can be archived next to
// the puzzles that produced them.
type ErrorData []interface{}

// Return an error string from an Error.
func (e Error) Error() string {
	var es string
	switch e.Scope {
	case LoadScope:
		es = "Invalid puzzle input: "
	case GridScope:
		es = "Invalid grid: "
	default:
		es = "Unknown error: "
	}
	values := e.Values
	nextVal := func() interface{} {
		if len(values) == 0 {
			return "<unknown>"
		}
		val := values[0]
		values = values[1:]
		return val
	}
	switch e.Condition {
	case ShortInputCondition:
		es += fmt.Sprintf("Input ended after %v of 81 cells", nextVal())
	case TooManySymbolsCondition:
		es += fmt.Sprintf("Symbol %q would be the 10th distinct symbol", nextVal())
	case ConflictingValuesCondition:
		es += fmt.Sprintf("Cell %v conflicts with an earlier given", nextVal())
	case UnsolvableCondition:
		es += "The given cells admit no completion"
	default:
		es += fmt.Sprintf("Supplemental data is %v", values)
	}
	return es
}
