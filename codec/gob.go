package codec

import (
	"bytes"
	"encoding/gob"
)

// NewGob returns a codec which serializes values using the self describing
// binary format of the encoding/gob package. Any value the gob package can
// represent round trips through this codec. Struct fields are encoded in a
// fixed order so the same value encodes to the same bytes each time, with
// the exception of maps for which the key order is not guaranteed.
func NewGob() Codec {
	return &gobCodec{}
}

type gobCodec struct{}

func (c *gobCodec) Encode(v interface{}) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := gob.NewEncoder(buf).Encode(v); err != nil {
		return nil, NewError(err)
	}
	return buf.Bytes(), nil
}

func (c *gobCodec) Decode(data []byte, v interface{}) error {
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(v); err != nil {
		return NewError(err)
	}
	return nil
}
