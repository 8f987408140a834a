package main

import (
	"io"

	"github.com/cocosip/expgolomb/codec"
	"github.com/cocosip/expgolomb/golomb"
)

// elementCodec adapts encodeStream[T]/decodeStream[T] to codec.Codec.
// A format tag ("i16", "u32", ...) selects an already-monomorphized
// generic instantiation rather than a boxed runtime type: there is one
// elementCodec value per element type, built once at init time.
type elementCodec[T golomb.Integer] struct {
	tag string
}

func (c elementCodec[T]) Tag() string { return c.tag }

func (c elementCodec[T]) Encode(r io.Reader, w io.Writer, k, adaptive int) error {
	return encodeStream[T](r, w, k, adaptive)
}

func (c elementCodec[T]) Decode(r io.Reader, w io.Writer, k, adaptive int) error {
	return decodeStream[T](r, w, k, adaptive)
}

func init() {
	registerFormat[int8]("i8")
	registerFormat[uint8]("u8")
	registerFormat[int16]("i16")
	registerFormat[uint16]("u16")
	registerFormat[int32]("i32")
	registerFormat[uint32]("u32")
	registerFormat[int64]("i64")
	registerFormat[uint64]("u64")
}

func registerFormat[T golomb.Integer](tag string) {
	if err := codec.Register(elementCodec[T]{tag: tag}); err != nil {
		panic(err)
	}
}

func lookupFormat(tag string) (codec.Codec, error) {
	return codec.Get(tag)
}
