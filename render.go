package minnow

import (
	"fmt"
	"strconv"
	"strings"
)

// renderRule is the default rule renderer used when no renaming has been
// applied.
func renderRule[R comparable](r R) string {
	return fmt.Sprintf("%v", r)
}

// enumerate renders rules as an English list: a single rule stands alone, two
// rules are joined with "or", and three or more are comma-separated with
// ", or" before the last. rules must not be empty; callers branch on empty
// rule sets before getting here.
func enumerate[R comparable](rules []R, render func(R) string) string {
	switch len(rules) {
	case 1:
		return render(rules[0])
	case 2:
		return render(rules[0]) + " or " + render(rules[1])
	default:
		var sb strings.Builder
		for i := 0; i < len(rules)-1; i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(render(rules[i]))
		}
		sb.WriteString(", or ")
		sb.WriteString(render(rules[len(rules)-1]))
		return sb.String()
	}
}

// parseErrorMessage composes the message text for a parse error from its rule
// sets. Empty sets select shorter forms; with both sets empty there is
// nothing to report and a fixed fallback message is used.
func parseErrorMessage[R comparable](positives, negatives []R, render func(R) string) string {
	switch {
	case len(negatives) > 0 && len(positives) > 0:
		return "unexpected " + enumerate(negatives, render) + "; expected " + enumerate(positives, render)
	case len(negatives) > 0:
		return "unexpected " + enumerate(negatives, render)
	case len(positives) > 0:
		return "expected " + enumerate(positives, render)
	default:
		return "unknown parsing error"
	}
}

// underline builds the marker row of a report, starting with indent spaces. A
// span-anchored error gets carets bounding the full width of its span; every
// other shape gets the fixed point marker "^---", regardless of how wide the
// offending token may have been.
func (e *Error[R]) underline(indent int) string {
	var sb strings.Builder
	for i := 0; i < indent; i++ {
		sb.WriteByte(' ')
	}

	if e.kind == kindCustomSpan {
		if w := e.span.Len(); w > 1 {
			sb.WriteByte('^')
			for i := 2; i < w; i++ {
				sb.WriteByte('-')
			}
			sb.WriteByte('^')
		} else {
			sb.WriteByte('^')
		}
	} else {
		sb.WriteString("^---")
	}

	return sb.String()
}

// report renders the boxed source-context block. The gutter is sized to the
// decimal width of the line number so reports line up at any line count.
func (e *Error[R]) report() string {
	p := e.Position()
	line, col := p.LineCol()

	lineStr := strconv.Itoa(line)
	spacing := strings.Repeat(" ", len(lineStr))

	var sb strings.Builder
	sb.WriteString(spacing)
	sb.WriteString("--> ")
	sb.WriteString(lineStr)
	sb.WriteByte(':')
	sb.WriteString(strconv.Itoa(col))
	sb.WriteByte('\n')

	sb.WriteString(spacing)
	sb.WriteString(" |\n")

	sb.WriteString(lineStr)
	sb.WriteString(" | ")
	sb.WriteString(p.LineOf())
	sb.WriteByte('\n')

	sb.WriteString(spacing)
	sb.WriteString(" | ")
	sb.WriteString(e.underline(col - 1))
	sb.WriteByte('\n')

	sb.WriteString(spacing)
	sb.WriteString(" |\n")

	sb.WriteString(spacing)
	sb.WriteString(" = ")
	sb.WriteString(e.Message())

	return sb.String()
}
