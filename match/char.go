// Package match provides composable string-matching primitives for building
// command line argument parsers with explicit control flow.
//
// Every matcher is a pure function that attempts to consume a prefix of its
// input and returns a Result: the number of leading characters matched, or 0
// for no match. Matchers keep no state, never modify their arguments, and
// are safe to call from any number of goroutines at once. Sequencing and
// branching between matchers is entirely the caller's business; the typical
// pattern is to try alternatives in order and slice the input forward by the
// first non-zero Result.
package match

// Char matches the first character of input if it equals c. It returns 1 on
// a match and 0 otherwise, including when input is empty.
func Char(input string, c byte) Result {
	if input != "" && input[0] == c {
		return 1
	}
	return 0
}

// End matches the end of input. It returns 1 when input is empty and 0
// otherwise. The 1 is a success flag for a zero-width match, not a consumed
// length; see Result.
func End(input string) Result {
	if input == "" {
		return 1
	}
	return 0
}

// AnyChar matches the first character of input if the allowed set accepts
// it. It returns 0 when input is empty, whatever the set.
func AnyChar(input string, allowed Set) Result {
	if input == "" {
		return 0
	}
	if allowed.Contains(input[0]) {
		return 1
	}
	return 0
}

// Numeric10Char matches the first character of input if it is a base-10
// digit.
func Numeric10Char(input string) Result {
	if input != "" && input[0] >= '0' && input[0] <= '9' {
		return 1
	}
	return 0
}

// Numeric16Char matches the first character of input if it is a base-16
// digit (0-9, a-f, A-F).
func Numeric16Char(input string) Result {
	if input == "" {
		return 0
	}
	c := input[0]
	if c >= '0' && c <= '9' || c >= 'A' && c <= 'F' || c >= 'a' && c <= 'f' {
		return 1
	}
	return 0
}

// UppercaseChar matches the first character of input if it is an uppercase
// ASCII letter.
func UppercaseChar(input string) Result {
	if input != "" && input[0] >= 'A' && input[0] <= 'Z' {
		return 1
	}
	return 0
}

// LowercaseChar matches the first character of input if it is a lowercase
// ASCII letter.
func LowercaseChar(input string) Result {
	if input != "" && input[0] >= 'a' && input[0] <= 'z' {
		return 1
	}
	return 0
}

// AlphaChar matches the first character of input if it is an ASCII letter.
func AlphaChar(input string) Result {
	if LowercaseChar(input) == 1 || UppercaseChar(input) == 1 {
		return 1
	}
	return 0
}

// AlphanumericChar matches the first character of input if it is an ASCII
// letter or a base-10 digit.
func AlphanumericChar(input string) Result {
	if AlphaChar(input) == 1 || Numeric10Char(input) == 1 {
		return 1
	}
	return 0
}
