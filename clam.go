// Package clam composes the matcher primitives of
// github.com/clamlib/clam/match into command line argument parsers with
// fully explicit control flow.
//
// Unlike table-driven option parsers, which interpret a declarative list of
// options behind your back, clam leaves every branch in your hands. You walk
// the argument list with an Args cursor, try matchers against the current
// argument, and advance by whatever length matched:
//
//	args := clam.New(os.Args[1:])
//	for args.Next() {
//		arg := args.Arg()
//		if i := clam.First(arg,
//			clam.PosixOption(match.OneOf("h")),
//			clam.PosixLongOption("-help"),
//		); i > 0 {
//			usage()
//			return
//		}
//		// ... further alternatives ...
//	}
package clam

import "github.com/clamlib/clam/match"

// Matcher is a matching function ready to be tried against an argument. It
// returns the number of leading characters it matched, or 0 for no match.
// Any func with this shape works; the constructors in this package wrap the
// primitives from the match package.
type Matcher func(input string) match.Result

// Tracer is a function used to log or report parse traces. This signature
// was chosen because it is commonly available, such as fmt.Println or
// log.Println.
type Tracer func(v ...any)

// Stage identifies the point in a match attempt that a trace line reports.
type Stage int

const (
	StageTry Stage = iota
	StageGot
	StageFail
)
