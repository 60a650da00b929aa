package codec

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

const rawPrefixLen = 4

// NewRaw returns a codec intended only for plain byte slice payloads. The
// bytes are stored with a four byte big endian length prefix instead of a
// general structural serialization. Encoding any other type or decoding into
// a target other than *[]byte is a misuse reported as a codec error.
func NewRaw() Codec {
	return &rawCodec{}
}

type rawCodec struct{}

func (c *rawCodec) Encode(v interface{}) ([]byte, error) {
	var data []byte
	switch b := v.(type) {
	case []byte:
		data = b
	case *[]byte:
		data = *b
	default:
		return nil, NewError(errors.Errorf("raw codec can not encode %T", v))
	}

	rv := make([]byte, rawPrefixLen+len(data))
	binary.BigEndian.PutUint32(rv, uint32(len(data)))
	copy(rv[rawPrefixLen:], data)
	return rv, nil
}

func (c *rawCodec) Decode(data []byte, v interface{}) error {
	target, ok := v.(*[]byte)
	if !ok {
		return NewError(errors.Errorf("raw codec can not decode into %T", v))
	}

	if len(data) < rawPrefixLen {
		return NewError(errors.New("input shorter than the length prefix"))
	}
	length := binary.BigEndian.Uint32(data)
	if int(length) != len(data)-rawPrefixLen {
		return NewError(errors.Errorf("declared %d payload bytes but %d are present", length, len(data)-rawPrefixLen))
	}

	rv := make([]byte, length)
	copy(rv, data[rawPrefixLen:])
	*target = rv
	return nil
}
