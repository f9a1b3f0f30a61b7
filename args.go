package clam

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/clamlib/clam/match"
)

// Args is a cursor over a list of command line arguments. It tracks which
// argument is current and how much of it has already been matched, so that
// partially consumed arguments like "-lname" can carry their tail into the
// next matching step.
//
// Matchers never move the cursor themselves; call Advance with a match
// Result to consume what was matched.
type Args struct {
	// TraceFunc may be set to help track the progress of a parse for
	// debugging.
	TraceFunc Tracer

	argv []string
	n    int
	off  int
}

// New creates a cursor over argv. The cursor starts before the first
// argument; call Next to move onto it.
func New(argv []string) *Args {
	return &Args{argv: argv, n: -1}
}

// Next moves the cursor to the start of the next argument. It reports false
// when the arguments are exhausted.
func (a *Args) Next() bool {
	if a.n+1 >= len(a.argv) {
		a.n = len(a.argv)
		return false
	}
	a.n++
	a.off = 0
	return true
}

// Arg returns the unmatched remainder of the current argument. Before the
// first Next or after the last argument it returns "".
func (a *Args) Arg() string {
	if a.n < 0 || a.n >= len(a.argv) {
		return ""
	}
	return a.argv[a.n][a.off:]
}

// Advance consumes r characters of the current argument, so that Arg returns
// the tail beyond the match. Advancing past the end of the argument clamps
// to the end. End's success flag is not a length; do not feed it to Advance.
func (a *Args) Advance(r match.Result) {
	if a.n < 0 || a.n >= len(a.argv) {
		return
	}
	a.off += int(r)
	if a.off > len(a.argv[a.n]) {
		a.off = len(a.argv[a.n])
	}
}

// Shift consumes and returns the next whole argument, bypassing matching.
// This is how option values are collected, as in "--link name". It reports
// false when no argument remains.
func (a *Args) Shift() (string, bool) {
	if a.n+1 >= len(a.argv) {
		a.n = len(a.argv)
		return "", false
	}
	a.n++
	a.off = 0
	return a.argv[a.n], true
}

// Rest returns the arguments after the current one, unconsumed. It is what a
// caller typically hands off wholesale once PosixTerminateOptions matches.
func (a *Args) Rest() []string {
	if a.n+1 >= len(a.argv) {
		return nil
	}
	return a.argv[a.n+1:]
}

// Trace may be called to help track the progress through a parse for help in
// debugging. It is a no-op unless TraceFunc is set.
func (a *Args) Trace(stage Stage, name string, args ...any) {
	if a.TraceFunc == nil {
		return
	}

	out := &strings.Builder{}
	switch stage {
	case StageFail:
		fmt.Fprint(out, "ERR ")
	case StageGot:
		fmt.Fprint(out, "GOT ")
	case StageTry:
		fmt.Fprint(out, "TRY ")
	}

	fmt.Fprint(out, name)
	fmt.Fprint(out, "(")

	in := a.Arg()
	if len(in) > 10 {
		in = in[:10] + "…"
	}
	fmt.Fprint(out, in)

	for _, arg := range args {
		fmt.Fprint(out, ", ")

		if reflect.TypeOf(arg).Kind() == reflect.Func {
			fmt.Fprint(out, runtime.FuncForPC(reflect.ValueOf(arg).Pointer()).Name())
			continue
		}

		fmt.Fprint(out, arg)
	}

	fmt.Fprint(out, ")")

	a.TraceFunc(out.String())
}
