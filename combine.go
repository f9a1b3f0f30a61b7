package clam

import (
	"github.com/zostay/go-std/slices"

	"github.com/clamlib/clam/match"
)

// First tries each matcher in order against input and returns the first
// non-zero Result. It returns 0 if none of them match. This is the ordered
// short-circuit alternative pattern: put the most specific spellings first.
func First(input string, ms ...Matcher) match.Result {
	for _, m := range ms {
		if r := m(input); r != 0 {
			return r
		}
	}
	return 0
}

// selectLongest is an internal helper used to find the longest match out of
// a list of match results.
func selectLongest(rs []match.Result) int {
	ln := -1
	var lr match.Result
	for n, r := range rs {
		if r > lr {
			ln = n
			lr = r
		}
	}
	return ln
}

// Longest tries all the given matchers against input and returns the longest
// Result found, or 0 if none match. When two matchers tie, the earlier one
// wins.
func Longest(input string, ms ...Matcher) match.Result {
	rs := slices.Map(ms, func(m Matcher) match.Result {
		return m(input)
	})

	if w := selectLongest(rs); w != -1 {
		return rs[w]
	}
	return 0
}

// Seq applies each matcher in turn, each one starting where the previous
// match ended, and returns the total length matched. It returns 0 as soon as
// any matcher in the sequence fails. End reports success as 1 without
// consuming anything, so it may only appear as the final matcher of a Seq,
// and then only when the caller wants the off-by-one total as a pure
// success test.
func Seq(input string, ms ...Matcher) match.Result {
	var total match.Result
	for _, m := range ms {
		r := m(input[min(int(total), len(input)):])
		if r == 0 {
			return 0
		}
		total += r
	}
	return total
}
