package codec

import (
	"bytes"

	"github.com/pelletier/go-toml/v2"
)

// TOML is a codec backed by github.com/pelletier/go-toml/v2.
//
// TOML documents are tables: the top-level value must be a map or a
// struct. Scalars and slices at the top level fail to encode.
type TOML struct{}

// Marshal encodes the value to TOML.
func (TOML) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	enc.SetIndentSymbol(indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes the TOML data into v.
func (TOML) Unmarshal(data []byte, v any) error { return toml.Unmarshal(data, v) }

// Name returns the unique name of the codec ("toml").
func (TOML) Name() string { return "toml" }
