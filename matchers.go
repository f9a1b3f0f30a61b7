package clam

import "github.com/clamlib/clam/match"

// The constructors below wrap each primitive from the match package as a
// Matcher closure, for use with First, Longest, and Seq.

// Char returns a Matcher for match.Char against c.
func Char(c byte) Matcher {
	return func(input string) match.Result {
		return match.Char(input, c)
	}
}

// End returns a Matcher for match.End. Its success Result of 1 is a flag,
// not a length; see match.End.
func End() Matcher {
	return match.End
}

// AnyChar returns a Matcher for match.AnyChar against the allowed set.
func AnyChar(allowed match.Set) Matcher {
	return func(input string) match.Result {
		return match.AnyChar(input, allowed)
	}
}

// Chars returns a Matcher that prefix-matches the literal chars.
func Chars(chars string) Matcher {
	return func(input string) match.Result {
		return match.Chars(input, chars)
	}
}

// CharsToEnd returns a Matcher that exact-matches the literal chars.
func CharsToEnd(chars string) Matcher {
	return func(input string) match.Result {
		return match.CharsToEnd(input, chars)
	}
}

// AtLeastNChars returns a Matcher for match.AtLeastNChars with the given
// minimum and literal.
func AtLeastNChars(n int, chars string) Matcher {
	return func(input string) match.Result {
		return match.AtLeastNChars(input, n, chars)
	}
}

// UnsignedInteger10 returns a Matcher for match.UnsignedInteger10.
func UnsignedInteger10() Matcher {
	return match.UnsignedInteger10
}

// SignedInteger10 returns a Matcher for match.SignedInteger10.
func SignedInteger10() Matcher {
	return match.SignedInteger10
}

// PosixOption returns a Matcher for a single-character POSIX option drawn
// from allowed.
func PosixOption(allowed match.Set) Matcher {
	return func(input string) match.Result {
		return match.PosixOption(input, allowed)
	}
}

// PosixFlags returns a Matcher for combined POSIX flags drawn from allowed.
func PosixFlags(allowed match.Set) Matcher {
	return func(input string) match.Result {
		return match.PosixFlags(input, allowed)
	}
}

// PosixLongOption returns a Matcher for a long POSIX option. As with
// match.PosixLongOption, pass "-name" to match "--name".
func PosixLongOption(option string) Matcher {
	return func(input string) match.Result {
		return match.PosixLongOption(input, option)
	}
}

// PosixTerminateOptions returns a Matcher for the "--" terminator.
func PosixTerminateOptions() Matcher {
	return match.PosixTerminateOptions
}

// WindowsSwitch returns a Matcher for a single-character Windows switch
// drawn from allowed.
func WindowsSwitch(allowed match.Set) Matcher {
	return func(input string) match.Result {
		return match.WindowsSwitch(input, allowed)
	}
}

// WindowsLongSwitch returns a Matcher for a long Windows switch.
func WindowsLongSwitch(switchName string) Matcher {
	return func(input string) match.Result {
		return match.WindowsLongSwitch(input, switchName)
	}
}
