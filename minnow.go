// Package minnow provides source-anchored syntax error values for parsing
// engines. When a matcher fails, it knows which grammar rules it expected to
// see and which it could not accept at the deepest position it reached;
// minnow turns those facts, or an explicit custom message, into a precise
// human-readable report anchored to the offending line of input:
//
//	 --> 2:2
//	  |
//	2 | cd
//	  |  ^---
//	  |
//	  = unexpected semicolon; expected identifier or number
//
// Errors are plain immutable values. Construct one with [NewParseError],
// [NewCustomError], or [NewSpanError], optionally rewrite its rule names with
// [Error.RenamedRules], and render it with Error. No operation on an already
// constructed value can fail, and values may be shared and rendered freely
// from multiple goroutines.
package minnow

import (
	"github.com/dekarrin/minnow/pos"
)

// kind of error value; exactly one is active per Error.
type errKind int

const (
	// built from expected/unexpected rule sets at a position.
	kindParse errKind = iota

	// explicit message anchored to a single position.
	kindCustomPos

	// explicit message anchored to a span of input.
	kindCustomSpan
)

// Error is a source-anchored parse failure. It takes exactly one of three
// shapes: a parse error carrying the rules a matcher expected and rejected at
// the deepest position it reached, a custom message anchored to a single
// position, or a custom message anchored to a span of input.
//
// R is the rule identifier type of the grammar that produced the failure; any
// comparable type serves. Rules are shown in their fmt "%v" form unless
// rewritten with [Error.RenamedRules].
type Error[R comparable] struct {
	kind errKind

	// rule sets for kindParse, in insertion order. Never deduplicated or
	// sorted; the matcher's order of first occurrence is preserved.
	positives []R
	negatives []R

	// message for the custom kinds.
	message string

	// pos for kindParse and kindCustomPos.
	pos pos.Position

	// span for kindCustomSpan.
	span pos.Span
}

// NewParseError creates an Error from the rules a matcher expected to match
// (positives) and the rules it could not accept (negatives) at the deepest
// position it reached before failing. Either or both rule sets may be empty;
// both are copied and kept in the order given.
func NewParseError[R comparable](positives, negatives []R, at pos.Position) *Error[R] {
	e := &Error[R]{
		kind:      kindParse,
		positives: make([]R, len(positives)),
		negatives: make([]R, len(negatives)),
		pos:       at,
	}
	copy(e.positives, positives)
	copy(e.negatives, negatives)
	return e
}

// NewCustomError creates an Error with an explicit message anchored to a
// single position.
func NewCustomError[R comparable](message string, at pos.Position) *Error[R] {
	return &Error[R]{
		kind:    kindCustomPos,
		message: message,
		pos:     at,
	}
}

// NewSpanError creates an Error with an explicit message anchored to a span
// of input. The report's underline covers the full width of the span.
func NewSpanError[R comparable](message string, over pos.Span) *Error[R] {
	return &Error[R]{
		kind:    kindCustomSpan,
		message: message,
		span:    over,
	}
}

// RenamedRules rewrites the rule sets of a parse error with the given
// renderer, producing a position-anchored custom Error whose message is the
// composed "unexpected ...; expected ..." text. Called on an Error that is
// not a parse error, it returns the receiver unchanged.
//
// This is useful to rename verbose grammar rules or to give per-rule display
// text. The transform goes one way; the returned value has no rule sets left
// to rename.
func (e *Error[R]) RenamedRules(render func(R) string) *Error[R] {
	if e.kind != kindParse {
		return e
	}
	return &Error[R]{
		kind:    kindCustomPos,
		message: parseErrorMessage(e.positives, e.negatives, render),
		pos:     e.pos,
	}
}

// Positives returns a copy of the rules the matcher expected at the failure
// point. It is empty for the custom error shapes.
func (e *Error[R]) Positives() []R {
	rules := make([]R, len(e.positives))
	copy(rules, e.positives)
	return rules
}

// Negatives returns a copy of the rules the matcher could not accept at the
// failure point. It is empty for the custom error shapes.
func (e *Error[R]) Negatives() []R {
	rules := make([]R, len(e.negatives))
	copy(rules, e.negatives)
	return rules
}

// Position returns the position the error's report is anchored to. For a
// span-anchored error this is the start boundary of its span.
func (e *Error[R]) Position() pos.Position {
	if e.kind == kindCustomSpan {
		start, _ := e.span.Split()
		return start
	}
	return e.pos
}

// Span returns the span of a span-anchored error. The second return value is
// false for the other error shapes.
func (e *Error[R]) Span() (pos.Span, bool) {
	return e.span, e.kind == kindCustomSpan
}

// Message returns the message text of the error without any source context.
// For a parse error this is composed from its rule sets, with each rule shown
// in its fmt "%v" form; for the custom shapes it is the stored message,
// verbatim.
func (e *Error[R]) Message() string {
	switch e.kind {
	case kindParse:
		return parseErrorMessage(e.positives, e.negatives, renderRule[R])
	default:
		return e.message
	}
}

// Description returns a short description of the error: "parsing error" for a
// parse error, and the stored message for the custom shapes.
func (e *Error[R]) Description() string {
	switch e.kind {
	case kindParse:
		return "parsing error"
	default:
		return e.message
	}
}

// Error returns the canonical rendering of the value: the full multi-line
// report, anchored to the source line the failure is on. It never includes a
// trailing newline.
func (e *Error[R]) Error() string {
	return e.report()
}
