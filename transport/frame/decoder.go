package frame

import (
	"encoding/binary"
	"io"

	"github.com/boreq/fabric/utils/size"
	"github.com/pkg/errors"
)

const sizeHeaderLen = 4

// NewDecoder creates a decoder which reads frames from the provided reader.
func NewDecoder(reader io.Reader) *Decoder {
	return &Decoder{
		reader: reader,
	}
}

type Decoder struct {
	reader io.Reader
}

// Decode reads a single frame and returns its payload. An orderly shutdown
// performed by the peer is reported as ErrConnectionClosed and a declared
// payload length exceeding MaxLen as ErrInvalidFrame. The payload length is
// validated before the payload is allocated or read.
func (d *Decoder) Decode() ([]byte, error) {
	buf := make([]byte, sizeHeaderLen)
	if _, err := io.ReadFull(d.reader, buf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, ErrConnectionClosed
		}
		return nil, err
	}

	length := binary.BigEndian.Uint32(buf)
	if size.Size(length) > MaxLen {
		return nil, errors.Wrapf(ErrInvalidFrame, "declared payload of %d bytes exceeds the frame ceiling", length)
	}

	data := make([]byte, length)
	if _, err := io.ReadFull(d.reader, data); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, ErrConnectionClosed
		}
		return nil, err
	}
	return data, nil
}
