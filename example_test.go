package clam_test

import (
	"fmt"

	"github.com/clamlib/clam"
	"github.com/clamlib/clam/match"
)

func Example() {
	argv := []string{"-h", "--link", "libm", "-ltiny", "--", "in.txt"}

	args := clam.New(argv)
	for args.Next() {
		arg := args.Arg()

		if i := clam.First(arg,
			clam.PosixOption(match.OneOf("h")),
			clam.PosixLongOption("-help"),
		); i > 0 {
			fmt.Println("help requested")
			continue
		}

		if i := clam.First(arg,
			clam.PosixLongOption("-link"),
			clam.PosixOption(match.OneOf("l")),
		); i > 0 {
			args.Advance(i)
			name := args.Arg()
			if match.End(name) == 1 {
				name, _ = args.Shift()
			}
			fmt.Println("linking with", name)
			continue
		}

		if match.PosixTerminateOptions(arg) > 0 {
			fmt.Println("arguments:", args.Rest())
			break
		}
	}

	// Output:
	// help requested
	// linking with libm
	// linking with tiny
	// arguments: [in.txt]
}
