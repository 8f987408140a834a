package codec_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/cocosip/expgolomb/codec"
)

type fakeCodec struct {
	tag string
}

func (f fakeCodec) Tag() string { return f.tag }

func (f fakeCodec) Encode(r io.Reader, w io.Writer, k, adaptive int) error {
	_, err := io.Copy(w, r)
	return err
}

func (f fakeCodec) Decode(r io.Reader, w io.Writer, k, adaptive int) error {
	_, err := io.Copy(w, r)
	return err
}

func TestRegistryRegisterAndGet(t *testing.T) {
	c := fakeCodec{tag: "test-fmt"}
	r := codec.NewRegistry()
	if err := r.Register(c); err != nil {
		t.Fatalf("Register: %v", err)
	}

	got, err := r.Get("test-fmt")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Tag() != "test-fmt" {
		t.Errorf("Tag() = %q, want %q", got.Tag(), "test-fmt")
	}

	if _, err := r.Get("nonexistent"); err != codec.ErrCodecNotFound {
		t.Errorf("Get(nonexistent) error = %v, want ErrCodecNotFound", err)
	}
}

func TestRegistryDuplicateTag(t *testing.T) {
	r := codec.NewRegistry()
	if err := r.Register(fakeCodec{tag: "dup"}); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if err := r.Register(fakeCodec{tag: "dup"}); err != codec.ErrDuplicateTag {
		t.Errorf("second Register error = %v, want ErrDuplicateTag", err)
	}
}

func TestRegistryList(t *testing.T) {
	r := codec.NewRegistry()
	tags := []string{"a", "b", "c"}
	for _, tag := range tags {
		if err := r.Register(fakeCodec{tag: tag}); err != nil {
			t.Fatalf("Register(%s): %v", tag, err)
		}
	}

	list := r.List()
	if len(list) != len(tags) {
		t.Fatalf("List() returned %d codecs, want %d", len(list), len(tags))
	}
}

func TestDefaultRegistryEncodeDecodeRoundTrip(t *testing.T) {
	if err := codec.Register(fakeCodec{tag: "roundtrip-fmt"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	c, err := codec.Get("roundtrip-fmt")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	var buf bytes.Buffer
	if err := c.Encode(bytes.NewReader([]byte("payload")), &buf, 0, -1); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if buf.String() != "payload" {
		t.Errorf("Encode output = %q, want %q", buf.String(), "payload")
	}

	var out bytes.Buffer
	if err := c.Decode(bytes.NewReader(buf.Bytes()), &out, 0, -1); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if out.String() != "payload" {
		t.Errorf("Decode output = %q, want %q", out.String(), "payload")
	}
}
