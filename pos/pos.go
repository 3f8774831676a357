// Package pos defines locations within source text. A [Position] is a single
// point in an input and a [Span] is a contiguous region of it bounded by two
// points. Both hold a reference to the complete original input rather than a
// copy of it; because Go strings are immutable and string values share their
// backing storage, keeping the full input on every Position is zero-copy no
// matter how large the input is.
package pos

import "strings"

// Position is an immutable handle to a single point in source text,
// identified by byte offset. The zero value is a position at the start of an
// empty input.
type Position struct {
	input  string
	offset int
}

// New returns a Position pointing at the given byte offset of input. The
// offset is clamped to the range [0, len(input)] so that every operation on
// the returned Position is well-defined.
func New(input string, offset int) Position {
	return Position{input: input, offset: clamp(offset, len(input))}
}

// Offset returns the byte offset of the position within its input.
func (p Position) Offset() int {
	return p.offset
}

// LineCol returns the 1-indexed line number of the line the position is on
// and the 1-indexed character-of-line of the position within that line.
func (p Position) LineCol() (line, col int) {
	before := p.input[:p.offset]
	line = strings.Count(before, "\n") + 1
	col = p.offset - strings.LastIndexByte(before, '\n')
	return line, col
}

// LineOf returns the full text of the line that the position is on, including
// anything that comes before and after the position on that line but not the
// line terminator. Both "\n" and "\r\n" terminators are recognized.
func (p Position) LineOf() string {
	start := strings.LastIndexByte(p.input[:p.offset], '\n') + 1
	end := strings.IndexByte(p.input[p.offset:], '\n')
	if end == -1 {
		end = len(p.input)
	} else {
		end += p.offset
	}
	return strings.TrimSuffix(p.input[start:end], "\r")
}

// Span is an immutable region of source text bounded by two byte offsets,
// start inclusive and end exclusive. A Span always satisfies start <= end.
type Span struct {
	input string
	start int
	end   int
}

// NewSpan returns a Span over input from start to end. Both offsets are
// clamped to the range [0, len(input)], and they are swapped if given out of
// order, so the returned Span always holds its ordering invariant.
func NewSpan(input string, start, end int) Span {
	start = clamp(start, len(input))
	end = clamp(end, len(input))
	if start > end {
		start, end = end, start
	}
	return Span{input: input, start: start, end: end}
}

// Start returns the byte offset of the start of the span.
func (s Span) Start() int {
	return s.start
}

// End returns the byte offset one past the end of the span.
func (s Span) End() int {
	return s.end
}

// Len returns the width of the span in bytes.
func (s Span) Len() int {
	return s.end - s.start
}

// Split breaks the span into its two boundary Positions.
func (s Span) Split() (Position, Position) {
	return Position{input: s.input, offset: s.start}, Position{input: s.input, offset: s.end}
}

func clamp(offset, max int) int {
	if offset < 0 {
		return 0
	}
	if offset > max {
		return max
	}
	return offset
}
