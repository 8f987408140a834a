package main

import (
	"bufio"
	"io"
	"os"
)

// openInput opens path for reading, treating "-" as stdin, mirroring
// original_source/util/golomb.cpp's `input == "-" ? stdin : fopen(...)`.
// The returned closer is a no-op for stdin so main can defer it
// unconditionally.
func openInput(path string) (io.Reader, io.Closer, error) {
	if path == "-" {
		return bufio.NewReader(os.Stdin), io.NopCloser(nil), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return bufio.NewReader(f), f, nil
}

// openOutput opens path for writing, treating "-" as stdout.
func openOutput(path string) (*bufio.Writer, io.Closer, error) {
	if path == "-" {
		return bufio.NewWriter(os.Stdout), io.NopCloser(nil), nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return bufio.NewWriter(f), f, nil
}
