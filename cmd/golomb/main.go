// Command golomb compresses or expands a stream of fixed-width
// integers using Exponential-Golomb coding, in the spirit of
// original_source/util/golomb.cpp: a single-pass, low-memory utility
// for exercising the codec against real files or pipes.
package main

import (
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

func main() {
	args, err := parseArgs(os.Args[1:])
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			printHelp()
			return
		}
		fatal(err)
	}

	if err := run(args); err != nil {
		fatal(err)
	}
}

func run(args parsedArgs) error {
	f, err := lookupFormat(args.format)
	if err != nil {
		return errors.WithStack(err)
	}

	in, inCloser, err := openInput(args.input)
	if err != nil {
		return errors.Wrap(err, "input")
	}
	defer inCloser.Close()

	out, outCloser, err := openOutput(args.output)
	if err != nil {
		return errors.Wrap(err, "output")
	}
	defer outCloser.Close()

	transform := f.Encode
	if args.dir == directionDecode {
		transform = f.Decode
	}

	if err := transform(in, out, args.k, args.adaptive); err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(out.Flush())
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	fmt.Fprintln(os.Stderr, "Use the '-h' option to read about the usage of this program.")
	os.Exit(1)
}
