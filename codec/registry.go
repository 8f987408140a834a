package codec

import "sync"

// Registry manages the available stream formats, keyed by tag.
type Registry struct {
	mu     sync.RWMutex
	codecs map[string]Codec
}

var defaultRegistry = &Registry{
	codecs: make(map[string]Codec),
}

// NewRegistry constructs an empty, independently-lockable Registry,
// for tests that want isolation from the package-level default one.
func NewRegistry() *Registry {
	return &Registry{codecs: make(map[string]Codec)}
}

// Register registers a codec under its own tag in the default registry.
func Register(codec Codec) error {
	return defaultRegistry.Register(codec)
}

// Get retrieves a codec by tag from the default registry.
func Get(tag string) (Codec, error) {
	return defaultRegistry.Get(tag)
}

// List returns all registered codecs from the default registry.
func List() []Codec {
	return defaultRegistry.List()
}

// Register registers codec under its own tag. It reports
// ErrDuplicateTag if the tag is already taken.
func (r *Registry) Register(codec Codec) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.codecs[codec.Tag()]; exists {
		return ErrDuplicateTag
	}
	r.codecs[codec.Tag()] = codec
	return nil
}

// Get retrieves a codec by tag.
func (r *Registry) Get(tag string) (Codec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codec, ok := r.codecs[tag]
	if !ok {
		return nil, ErrCodecNotFound
	}
	return codec, nil
}

// List returns all registered codecs, in no particular order.
func (r *Registry) List() []Codec {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codecs := make([]Codec, 0, len(r.codecs))
	for _, codec := range r.codecs {
		codecs = append(codecs, codec)
	}
	return codecs
}
