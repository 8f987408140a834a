package golomb

import (
	"encoding/binary"
	"io"
)

// Sink accepts code units in stream order. It must not reorder or
// coalesce units in a way that would be visible to a Decoder reading
// them back with a matching Source.
type Sink[U Unit] interface {
	EmitCodeUnit(u U) error
}

// Source produces code units in stream order and signals end-of-input
// cleanly. NextCodeUnit returns ok == false once the input is
// exhausted, without regard to symbol boundaries (the Decoder reports
// exhaustion mid-symbol as ErrTruncatedStream); a read failure is
// reported through err.
type Source[U Unit] interface {
	NextCodeUnit() (u U, ok bool, err error)
}

// SliceSink appends emitted code units to an in-memory slice. It is
// the sink used by the package-level Encode convenience function and
// is convenient for tests that want the raw code-unit sequence rather
// than a byte stream.
type SliceSink[U Unit] struct {
	Units []U
}

// EmitCodeUnit implements Sink.
func (s *SliceSink[U]) EmitCodeUnit(u U) error {
	s.Units = append(s.Units, u)
	return nil
}

// SliceSource replays code units from an in-memory slice.
type SliceSource[U Unit] struct {
	Units []U
	pos   int
}

// NewSliceSource wraps units for sequential reading.
func NewSliceSource[U Unit](units []U) *SliceSource[U] {
	return &SliceSource[U]{Units: units}
}

// NextCodeUnit implements Source.
func (s *SliceSource[U]) NextCodeUnit() (u U, ok bool, err error) {
	if s.pos >= len(s.Units) {
		return u, false, nil
	}
	u = s.Units[s.pos]
	s.pos++
	return u, true, nil
}

// WriterSink adapts an io.Writer into a Sink, writing each code unit
// in the platform's native byte order via binary.NativeEndian rather
// than pinning a specific endianness or hand-rolling a byte-swap.
// Cross-platform byte-order normalization for multi-byte code units is
// deliberately not handled here.
type WriterSink[U Unit] struct {
	w io.Writer
}

// NewWriterSink builds a Sink that writes to w.
func NewWriterSink[U Unit](w io.Writer) *WriterSink[U] {
	return &WriterSink[U]{w: w}
}

// EmitCodeUnit implements Sink.
func (s *WriterSink[U]) EmitCodeUnit(u U) error {
	return binary.Write(s.w, binary.NativeEndian, u)
}

// ReaderSource adapts an io.Reader into a Source, reading each code
// unit in the platform's native byte order.
type ReaderSource[U Unit] struct {
	r io.Reader
}

// NewReaderSource builds a Source that reads from r.
func NewReaderSource[U Unit](r io.Reader) *ReaderSource[U] {
	return &ReaderSource[U]{r: r}
}

// NextCodeUnit implements Source. A clean EOF with zero bytes consumed
// is reported as ok == false, err == nil; any other read failure,
// including a short read that leaves a partial code unit, is reported
// through err.
func (s *ReaderSource[U]) NextCodeUnit() (u U, ok bool, err error) {
	err = binary.Read(s.r, binary.NativeEndian, &u)
	if err == io.EOF {
		return u, false, nil
	}
	if err != nil {
		return u, false, err
	}
	return u, true, nil
}
