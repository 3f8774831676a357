package minnow

import (
	"testing"

	"github.com/dekarrin/minnow/pos"
	"github.com/stretchr/testify/assert"
)

func Test_enumerate(t *testing.T) {
	testCases := []struct {
		name   string
		rules  []int
		expect string
	}{
		{"single rule has no connective", []int{1}, "1"},
		{"two rules joined with or", []int{1, 2}, "1 or 2"},
		{"three rules get the comma before or", []int{1, 2, 3}, "1, 2, or 3"},
		{"four rules", []int{1, 2, 3, 4}, "1, 2, 3, or 4"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual := enumerate(tc.rules, renderRule[int])

			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_parseErrorMessage(t *testing.T) {
	testCases := []struct {
		name      string
		positives []int
		negatives []int
		expect    string
	}{
		{
			name:      "both sets present",
			positives: []int{1, 2, 3},
			negatives: []int{4, 5, 6},
			expect:    "unexpected 4, 5, or 6; expected 1, 2, or 3",
		},
		{
			name:      "only negatives",
			positives: nil,
			negatives: []int{4, 5, 6},
			expect:    "unexpected 4, 5, or 6",
		},
		{
			name:      "only positives",
			positives: []int{1, 2},
			negatives: nil,
			expect:    "expected 1 or 2",
		},
		{
			name:      "both sets empty",
			positives: nil,
			negatives: nil,
			expect:    "unknown parsing error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual := parseErrorMessage(tc.positives, tc.negatives, renderRule[int])

			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_Error_underline(t *testing.T) {
	input := "abcdefgh"

	testCases := []struct {
		name   string
		err    *Error[string]
		indent int
		expect string
	}{
		{
			name:   "parse error gets the fixed point marker",
			err:    NewParseError([]string{"a"}, nil, pos.New(input, 0)),
			indent: 0,
			expect: "^---",
		},
		{
			name:   "point marker is shifted by indent",
			err:    NewParseError([]string{"a"}, nil, pos.New(input, 2)),
			indent: 2,
			expect: "  ^---",
		},
		{
			name:   "custom error gets the fixed point marker",
			err:    NewCustomError[string]("oops", pos.New(input, 0)),
			indent: 0,
			expect: "^---",
		},
		{
			name:   "zero-width span collapses to one caret",
			err:    NewSpanError[string]("oops", pos.NewSpan(input, 3, 3)),
			indent: 0,
			expect: "^",
		},
		{
			name:   "one-wide span collapses to one caret",
			err:    NewSpanError[string]("oops", pos.NewSpan(input, 3, 4)),
			indent: 0,
			expect: "^",
		},
		{
			name:   "two-wide span is bounded carets only",
			err:    NewSpanError[string]("oops", pos.NewSpan(input, 3, 5)),
			indent: 0,
			expect: "^^",
		},
		{
			name:   "wide span fills with dashes",
			err:    NewSpanError[string]("oops", pos.NewSpan(input, 2, 7)),
			indent: 0,
			expect: "^---^",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual := tc.err.underline(tc.indent)

			assert.Equal(tc.expect, actual)
		})
	}
}
