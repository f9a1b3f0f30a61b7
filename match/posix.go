package match

// PosixOption matches a single-character POSIX option: a dash followed by
// one alphanumeric character accepted by allowed. The result is always 0 or
// exactly 2; anything after the option character is left untouched, so
// "-lname" matches as "-l" with "name" remaining.
func PosixOption(input string, allowed Set) Result {
	if Char(input, '-') == 1 &&
		AlphanumericChar(input[1:]) == 1 &&
		AnyChar(input[1:], allowed) == 1 {
		return 2
	}
	return 0
}

// PosixFlags matches a dash followed by one or more combined flag
// characters, as in "-xvf". Every character up to the end of input must be
// alphanumeric and accepted by allowed, or the whole match fails. A bare
// dash is not a match.
func PosixFlags(input string, allowed Set) Result {
	i := Char(input, '-')
	if i == 0 {
		return 0
	}
	for End(input[i:]) == 0 {
		if AlphanumericChar(input[i:]) == 0 || AnyChar(input[i:], allowed) == 0 {
			return 0
		}
		i++
	}
	if i > 1 {
		return i
	}
	return 0
}

// PosixLongOption matches a dash followed by option as a prefix of the rest
// of input. To match GNU-style "--name" arguments, pass option with its own
// leading dash, e.g. PosixLongOption(arg, "-name"). The match is a prefix
// match; trailing input such as "=value" is left for the caller.
func PosixLongOption(input, option string) Result {
	dash := Char(input, '-')
	if dash == 0 {
		return 0
	}
	opt := Chars(input[1:], option)
	if opt == 0 {
		return 0
	}
	return dash + opt
}

// PosixTerminateOptions matches input if it is exactly the "--" option list
// terminator, returning 2. Anything before or after the two dashes defeats
// the match.
func PosixTerminateOptions(input string) Result {
	return CharsToEnd(input, "--")
}
