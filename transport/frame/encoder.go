package frame

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/boreq/fabric/utils/size"
	"github.com/pkg/errors"
)

// NewEncoder creates an encoder which writes frames to the provided writer.
func NewEncoder(writer io.Writer) *Encoder {
	return &Encoder{
		writer: writer,
	}
}

type Encoder struct {
	writer io.Writer
}

// Encode writes a single frame containing the provided payload. The frame is
// assembled in memory first so that it reaches the writer in one write.
func (e *Encoder) Encode(data []byte) error {
	if size.Size(len(data)) > MaxLen {
		return errors.Wrapf(ErrInvalidFrame, "payload of %d bytes exceeds the frame ceiling", len(data))
	}

	buf := &bytes.Buffer{}
	if err := binary.Write(buf, binary.BigEndian, uint32(len(data))); err != nil {
		return err
	}
	buf.Write(data)
	_, err := buf.WriteTo(e.writer)
	return err
}
