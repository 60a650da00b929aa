package codec

import (
	"github.com/golang/protobuf/proto"
	"github.com/pkg/errors"
)

// NewProto returns a codec for protobuf message payloads. Unlike the gob
// codec it does not carry type information on the wire, both peers have to
// agree on the message type beforehand. Values which do not implement
// proto.Message are reported as a codec error.
func NewProto() Codec {
	return &protoCodec{}
}

type protoCodec struct{}

func (c *protoCodec) Encode(v interface{}) ([]byte, error) {
	msg, ok := v.(proto.Message)
	if !ok {
		return nil, NewError(errors.Errorf("proto codec can not encode %T", v))
	}
	data, err := proto.Marshal(msg)
	if err != nil {
		return nil, NewError(err)
	}
	return data, nil
}

func (c *protoCodec) Decode(data []byte, v interface{}) error {
	msg, ok := v.(proto.Message)
	if !ok {
		return NewError(errors.Errorf("proto codec can not decode into %T", v))
	}
	if err := proto.Unmarshal(data, msg); err != nil {
		return NewError(err)
	}
	return nil
}
