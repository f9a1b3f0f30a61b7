package match

// Result is the value returned by every matcher in this package. It is the
// number of leading characters of the input that were matched. A Result of 0
// means no match.
//
// End is the one exception: it matches the zero-width end of input and
// reports success as 1. Its Result is a success flag, not a consumed length,
// and must not be used to advance a cursor.
//
// A non-zero Result from any other matcher never exceeds the length of the
// input it was given, so input[r:] is always a valid remainder.
type Result int
