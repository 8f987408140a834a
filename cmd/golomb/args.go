package main

import (
	"fmt"
	"strconv"
	"strings"

	flags "github.com/jessevdk/go-flags"
)

// cliOptions mirrors the option set original_source/util/golomb.cpp's
// hand-rolled `options` scanner recognizes, expressed as go-flags
// struct tags (the same shape martin2250/minitsdb's
// cmd/minitsdb/commandline.go uses for its own CommandLineOptions).
// EncodeFormat/DecodeFormat use an optional string argument
// (go-flags' "optional-value" tag) so that bare "-e"/"-d" default to
// "u8", matching decode_format_arg's empty-string fallback.
type cliOptions struct {
	Encode   string `short:"e" long:"encode" optional:"true" optional-value:"u8" description:"encode; FORMAT selects the input element type (default u8)"`
	Decode   string `short:"d" long:"decode" optional:"true" optional-value:"u8" description:"decode; FORMAT selects the output element type (default u8)"`
	Order    string `short:"k" long:"order" default:"0" description:"golomb order, a non-negative integer (default 0)"`
	Adaptive string `short:"a" long:"adaptive" description:"enable adaptive mode with the given smoothing factor"`

	Positional struct {
		Input  string `positional-arg-name:"input"`
		Output string `positional-arg-name:"output"`
	} `positional-args:"true"`
}

// direction and parsedArgs hold the fully validated, resolved arguments
// main dispatches on.
type direction int

const (
	directionEncode direction = iota
	directionDecode
)

type parsedArgs struct {
	dir      direction
	format   string
	k        int
	adaptive int // -1 means adaptive mode disabled, matching original_source's sentinel
	input    string
	output   string
}

func parseArgs(argv []string) (parsedArgs, error) {
	var opts cliOptions
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Usage = usageLine

	if _, err := parser.ParseArgs(argv); err != nil {
		return parsedArgs{}, err
	}

	dir := directionEncode
	format := "u8"
	switch {
	case opts.Decode != "":
		dir = directionDecode
		format = opts.Decode
	case opts.Encode != "":
		dir = directionEncode
		format = opts.Encode
	}
	if _, err := lookupFormat(format); err != nil {
		return parsedArgs{}, fmt.Errorf("invalid argument for option 'e'/'d': %s", format)
	}

	k, err := strconv.Atoi(opts.Order)
	if err != nil || k < 0 {
		return parsedArgs{}, fmt.Errorf("invalid argument for option 'k': %q", opts.Order)
	}

	adaptive := -1
	if opts.Adaptive != "" {
		adaptive, err = strconv.Atoi(opts.Adaptive)
		if err != nil || adaptive < 0 {
			return parsedArgs{}, fmt.Errorf("invalid argument for option 'a': %q", opts.Adaptive)
		}
	}

	if strings.TrimSpace(opts.Positional.Input) == "" {
		return parsedArgs{}, fmt.Errorf("no input parameter provided")
	}
	if strings.TrimSpace(opts.Positional.Output) == "" {
		return parsedArgs{}, fmt.Errorf("no output parameter provided")
	}

	return parsedArgs{
		dir:      dir,
		format:   format,
		k:        k,
		adaptive: adaptive,
		input:    opts.Positional.Input,
		output:   opts.Positional.Output,
	}, nil
}

const usageLine = "[-aN] [-e[FORMAT]|-d[FORMAT]] [-kN] input output"
