package match

// Set is an allow-set of single-byte characters used by AnyChar,
// PosixOption, PosixFlags, WindowsSwitch and friends.
//
// A Set is in one of two states and they are not interchangeable:
//
//   - Any is the wildcard set. It accepts every character.
//   - OneOf(chars) accepts exactly the characters in chars. OneOf("") and
//     the zero value accept nothing.
type Set struct {
	chars string
	any   bool
}

// Any is the wildcard Set, accepting every character.
var Any = Set{any: true}

// OneOf returns a Set accepting exactly the characters in chars. OneOf("")
// accepts no character at all, which is distinct from Any.
func OneOf(chars string) Set {
	return Set{chars: chars}
}

// Contains reports whether the set accepts c.
func (s Set) Contains(c byte) bool {
	if s.any {
		return true
	}
	for i := 0; i < len(s.chars); i++ {
		if s.chars[i] == c {
			return true
		}
	}
	return false
}
