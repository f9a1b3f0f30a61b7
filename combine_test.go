package clam_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clamlib/clam"
	"github.com/clamlib/clam/match"
)

func TestFirst(t *testing.T) {
	r := clam.First("-h",
		clam.PosixOption(match.OneOf("h")),
		clam.PosixLongOption("-help"),
	)
	assert.Equal(t, match.Result(2), r)

	r = clam.First("--help",
		clam.PosixOption(match.OneOf("h")),
		clam.PosixLongOption("-help"),
	)
	assert.Equal(t, match.Result(6), r)

	r = clam.First("-x",
		clam.PosixOption(match.OneOf("h")),
		clam.PosixLongOption("-help"),
	)
	assert.Equal(t, match.Result(0), r)

	assert.Equal(t, match.Result(0), clam.First("-h"), "no matchers, no match")
}

func TestFirstOrder(t *testing.T) {
	// Both alternatives match "--hello"; the earlier, shorter one wins
	// because First never looks further.
	r := clam.First("--hello",
		clam.Chars("--h"),
		clam.Chars("--hello"),
	)
	assert.Equal(t, match.Result(3), r)
}

func TestLongest(t *testing.T) {
	r := clam.Longest("--hello",
		clam.Chars("--h"),
		clam.Chars("--hello"),
		clam.Chars("--he"),
	)
	assert.Equal(t, match.Result(7), r)

	assert.Equal(t, match.Result(0), clam.Longest("xyz",
		clam.Chars("--h"),
		clam.Chars("--hello"),
	))

	assert.Equal(t, match.Result(0), clam.Longest("xyz"))
}

func TestLongestTie(t *testing.T) {
	// Two alternatives of equal length agree on the result; a tie cannot
	// change what the caller consumes.
	r := clam.Longest("--he",
		clam.Chars("--he"),
		clam.AtLeastNChars(2, "--help"),
	)
	assert.Equal(t, match.Result(4), r)
}

func TestSeq(t *testing.T) {
	// A signed number assembled from primitives: sign, then digits.
	r := clam.Seq("-12x",
		clam.Char('-'),
		clam.UnsignedInteger10(),
	)
	assert.Equal(t, match.Result(3), r)

	assert.Equal(t, match.Result(0), clam.Seq("12x",
		clam.Char('-'),
		clam.UnsignedInteger10(),
	), "Seq fails as soon as one matcher fails")

	assert.Equal(t, match.Result(0), clam.Seq("-x",
		clam.Char('-'),
		clam.UnsignedInteger10(),
	))
}

func TestSeqWithEnd(t *testing.T) {
	// End as the final matcher turns a prefix match into an exact one. The
	// total carries End's success flag, so it is one past the length.
	r := clam.Seq("-12",
		clam.Char('-'),
		clam.UnsignedInteger10(),
		clam.End(),
	)
	assert.Equal(t, match.Result(4), r)

	assert.Equal(t, match.Result(0), clam.Seq("-12x",
		clam.Char('-'),
		clam.UnsignedInteger10(),
		clam.End(),
	))
}

func TestMatcherConstructors(t *testing.T) {
	cases := []struct {
		name  string
		m     clam.Matcher
		input string
		want  match.Result
	}{
		{"Char", clam.Char('-'), "-a", 1},
		{"End", clam.End(), "", 1},
		{"AnyChar", clam.AnyChar(match.OneOf("ab")), "b", 1},
		{"Chars", clam.Chars("ab"), "abc", 2},
		{"CharsToEnd", clam.CharsToEnd("ab"), "ab", 2},
		{"AtLeastNChars", clam.AtLeastNChars(2, "abc"), "abq", 2},
		{"UnsignedInteger10", clam.UnsignedInteger10(), "42x", 2},
		{"SignedInteger10", clam.SignedInteger10(), "-42x", 3},
		{"PosixOption", clam.PosixOption(match.OneOf("a")), "-a", 2},
		{"PosixFlags", clam.PosixFlags(match.Any), "-abc", 4},
		{"PosixLongOption", clam.PosixLongOption("-help"), "--help", 6},
		{"PosixTerminateOptions", clam.PosixTerminateOptions(), "--", 2},
		{"WindowsSwitch", clam.WindowsSwitch(match.OneOf("f")), "/f", 2},
		{"WindowsLongSwitch", clam.WindowsLongSwitch("help"), "/help", 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.m(tc.input))
		})
	}
}
