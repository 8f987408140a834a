package main

import "fmt"

// printHelp restates original_source/util/golomb.cpp's print_help() in
// the CLI's own words rather than transliterating its text verbatim.
func printHelp() {
	fmt.Print(`golomb

Compress or expand a stream of fixed-width integers with streaming
Exponential-Golomb coding.

USAGE
    golomb [-aN] [-e[FORMAT]|-d[FORMAT]] [-kN] input output

OPTIONS
    -e[FORMAT]   encode; FORMAT selects the input element type, default u8
    -d[FORMAT]   decode; FORMAT selects the output element type, default u8
    -kN          golomb order N, a non-negative integer, default 0
    -aN          enable adaptive mode with smoothing factor N
    -h           show this help

FORMAT
    i8 u8 i16 u16 i32 u32 i64 u64 (signed/unsigned, bit width)

    Element values are read and written in the host's native byte
    order. Decoding with a narrower format than was used to encode is
    undefined; use the same format on both sides.

ADAPTIVE MODE
    With -aN, the order is re-derived after every value from an
    exponential moving average of that value's bit width instead of
    staying fixed at the -k order. The same -aN must be given on
    decode as was given on encode, and -kN still sets the order the
    average starts from.

EXAMPLES
    golomb file1 file2
        encode file1 as u8 with order 0 into file2

    golomb -ei16 -k4 file1 file2
        encode file1 as signed 16-bit values with order 4

    golomb -du32 -k0 file1 file2
        decode file1, order 0, writing unsigned 32-bit values

    cat file1 | golomb -ei8 - file2
        encode from standard input

    golomb -di8 file1 -
        decode to standard output
`)
}
