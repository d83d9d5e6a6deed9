// Package codec holds the serializers that turn a document into the text
// persisted locally and mirrored to the bucket.
//
// Every built-in codec produces deterministic output (sorted map keys,
// fixed indentation) so that stored documents diff cleanly between writes.
// Switching codecs on an existing store is a breaking change: documents
// written by one codec are generally not readable by another.
package codec

import "fmt"

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	case "yaml":
		return YAML{}, true
	case "toml":
		return TOML{}, true
	default:
		return nil, false
	}
}

// Names lists the names accepted by ByName.
func Names() []string {
	return []string{"json", "go-json", "yaml", "toml"}
}

// Default is the codec used when none is configured.
var Default Codec = JSON{}

// MustMarshal is a helper for tests and examples.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
