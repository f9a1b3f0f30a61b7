package match

// WindowsSwitch matches a single-character Windows switch: a forward slash
// followed by one alphanumeric character accepted by allowed. Like
// PosixOption, the result is always 0 or exactly 2.
func WindowsSwitch(input string, allowed Set) Result {
	if Char(input, '/') == 1 &&
		AlphanumericChar(input[1:]) == 1 &&
		AnyChar(input[1:], allowed) == 1 {
		return 2
	}
	return 0
}

// WindowsLongSwitch matches a forward slash followed by switchName as a
// prefix of the rest of input, e.g. WindowsLongSwitch("/help", "help") == 5.
func WindowsLongSwitch(input, switchName string) Result {
	slash := Char(input, '/')
	if slash == 0 {
		return 0
	}
	sw := Chars(input[1:], switchName)
	if sw == 0 {
		return 0
	}
	return slash + sw
}
