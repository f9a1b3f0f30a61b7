package match

// AtLeastNChars matches leading characters of input against chars in
// lock-step for as long as they agree and neither string runs out. If at
// least n characters agreed, the full agreeing length is returned, which may
// exceed n. Otherwise the result is 0.
func AtLeastNChars(input string, n int, chars string) Result {
	i := 0
	for i < len(input) && i < len(chars) && input[i] == chars[i] {
		i++
	}
	if i < n {
		return 0
	}
	return Result(i)
}

// Chars matches input if all of chars is a prefix of it. On a match the
// length of chars is returned; trailing input beyond chars is ignored. The
// result is 0 when chars is empty, when input is empty, or on any mismatch
// before chars runs out.
func Chars(input, chars string) Result {
	if chars == "" {
		return 0
	}
	i := 0
	for i < len(input) && i < len(chars) && input[i] == chars[i] {
		i++
	}
	if i == len(chars) {
		return Result(i)
	}
	return 0
}

// CharsToEnd matches input if it equals chars exactly, with nothing left
// over. Too short, too long, and content mismatches all yield 0.
func CharsToEnd(input, chars string) Result {
	i := Chars(input, chars)
	if i == 0 {
		return 0
	}
	if End(input[i:]) == 1 {
		return i
	}
	return 0
}

// UnsignedInteger10 matches the maximal leading run of base-10 digits in
// input. A Result of 0 means input does not start with a digit.
func UnsignedInteger10(input string) Result {
	i := Result(0)
	for Numeric10Char(input[i:]) == 1 {
		i++
	}
	return i
}

var signs = OneOf("-+")

// SignedInteger10 matches an optional single + or - sign followed by at
// least one base-10 digit. A sign with no digits after it is not a match.
func SignedInteger10(input string) Result {
	sign := AnyChar(input, signs)
	digits := UnsignedInteger10(input[sign:])
	if digits == 0 {
		return 0
	}
	return sign + digits
}
