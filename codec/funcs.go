package codec

import "errors"

// ErrMissingFunc is returned by Funcs when one of its functions is nil.
var ErrMissingFunc = errors.New("codec: missing marshal or unmarshal func")

// Funcs adapts a pair of plain functions to the Codec interface.
//
// It is the hook for custom encodings and for wrapping a codec with
// instrumentation:
//
//	var decodes int
//	c := codec.Funcs{
//	    MarshalFunc: codec.JSON{}.Marshal,
//	    UnmarshalFunc: func(data []byte, v any) error {
//	        decodes++
//	        return codec.JSON{}.Unmarshal(data, v)
//	    },
//	}
type Funcs struct {
	MarshalFunc   func(v any) ([]byte, error)
	UnmarshalFunc func(data []byte, v any) error
	// CodecName is reported by Name. Defaults to "custom".
	CodecName string
}

// Marshal calls MarshalFunc.
func (f Funcs) Marshal(v any) ([]byte, error) {
	if f.MarshalFunc == nil {
		return nil, ErrMissingFunc
	}
	return f.MarshalFunc(v)
}

// Unmarshal calls UnmarshalFunc.
func (f Funcs) Unmarshal(data []byte, v any) error {
	if f.UnmarshalFunc == nil {
		return ErrMissingFunc
	}
	return f.UnmarshalFunc(data, v)
}

// Name returns CodecName, or "custom" when unset.
func (f Funcs) Name() string {
	if f.CodecName == "" {
		return "custom"
	}
	return f.CodecName
}
