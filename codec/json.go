package codec

import (
	"encoding/json"
)

// indent is the indentation shared by the text codecs.
const indent = "  "

// JSON is the standard-library JSON codec and the default.
//
// Output is indented with two spaces and map keys are sorted, so the same
// document always encodes to the same bytes. Struct fields keep their
// declaration order.
type JSON struct{}

// Marshal encodes the value to indented JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.MarshalIndent(v, "", indent) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }
