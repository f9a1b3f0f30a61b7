// Command clam-demo shows what a hand-rolled argument parser built on clam
// matchers looks like. It understands a help option, a "link" option in all
// the usual POSIX spellings, a Windows-style /f switch, and the -- option
// terminator.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/clamlib/clam"
	"github.com/clamlib/clam/match"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(argv []string, out, errOut io.Writer) int {
	fail := color.New(color.FgRed)

	args := clam.New(argv)
	for args.Next() {
		arg := args.Arg()

		if i := clam.First(arg,
			clam.PosixOption(match.OneOf("h")),
			clam.PosixLongOption("-help"),
		); i > 0 {
			usage(out)
			return 0
		}

		var (
			longopt bool
			i       match.Result
		)
		if i = match.PosixLongOption(arg, "link"); i > 0 {
			longopt = true
		} else if i = match.PosixLongOption(arg, "-link"); i > 0 {
			longopt = true
		} else if i = match.PosixOption(arg, match.OneOf("l")); i > 0 {
			longopt = false
		}
		if i > 0 {
			var eq match.Result
			if longopt && match.End(arg[i:]) == 0 && match.Char(arg[i:], '=') == 0 {
				fail.Fprintf(errOut, "invalid trailer %s at %d in %s\n", arg[i:], i, arg)
				return 1
			}
			if longopt {
				eq = match.Char(arg[i:], '=')
				i += eq
			}

			args.Advance(i)
			value := args.Arg()
			if eq == 0 && match.End(value) == 1 {
				var ok bool
				if value, ok = args.Shift(); !ok {
					fail.Fprintln(errOut, "link requires an argument")
					return 1
				}
			}

			fmt.Fprintf(out, "linking with %s\n", value)
			continue
		}

		if i := match.WindowsSwitch(arg, match.OneOf("Ff")); i > 0 {
			if value, ok := args.Shift(); ok {
				fmt.Fprintf(out, "doing something with %s\n", value)
			} else {
				fmt.Fprintln(out, "using a default with /f")
			}
			continue
		}

		if match.PosixTerminateOptions(arg) > 0 {
			for _, rest := range args.Rest() {
				fmt.Fprintf(out, "argument %s\n", rest)
			}
			return 0
		}

		fail.Fprintf(errOut, "unrecognized argument %s\n", arg)
		return 1
	}

	return 0
}

func usage(out io.Writer) {
	fmt.Fprintln(out, "Usage: clam-demo [option]")
	fmt.Fprintln(out, "  -h | --help  This help information")
	fmt.Fprintln(out, "  -lname | -l name | --link name | --link=name | -link name | -link=name")
	fmt.Fprintln(out, "  /f [value]")
	fmt.Fprintln(out, "  --           Treat the rest as plain arguments")
}
