package frame

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

// TestEncodeDecode checks if payloads are correctly encoded and then decoded.
func TestEncodeDecode(t *testing.T) {
	payloads := [][]byte{
		[]byte("data"),
		{},
		{0, 1, 2, 3, 255},
	}

	for _, payload := range payloads {
		buf := &bytes.Buffer{}

		if err := NewEncoder(buf).Encode(payload); err != nil {
			t.Fatal(err)
		}

		decoded, err := NewDecoder(buf).Decode()
		if err != nil {
			t.Fatal(err)
		}

		if !bytes.Equal(payload, decoded) {
			t.Fatalf("decoded payload %x differs from %x", decoded, payload)
		}
	}
}

// TestBoundaries checks if consecutive frames written to the same stream are
// read back as the same separate payloads in the same order.
func TestBoundaries(t *testing.T) {
	payloads := [][]byte{
		[]byte("first"),
		[]byte("second"),
		[]byte("third"),
	}

	buf := &bytes.Buffer{}
	e := NewEncoder(buf)
	for _, payload := range payloads {
		if err := e.Encode(payload); err != nil {
			t.Fatal(err)
		}
	}

	d := NewDecoder(buf)
	for _, payload := range payloads {
		decoded, err := d.Decode()
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(payload, decoded) {
			t.Fatalf("decoded payload %s differs from %s", decoded, payload)
		}
	}
}

func TestWireFormat(t *testing.T) {
	buf := &bytes.Buffer{}

	if err := NewEncoder(buf).Encode([]byte("data")); err != nil {
		t.Fatal(err)
	}

	expected := []byte{0, 0, 0, 4, 'd', 'a', 't', 'a'}
	if !bytes.Equal(buf.Bytes(), expected) {
		t.Fatalf("frame %x differs from %x", buf.Bytes(), expected)
	}
}

// TestDecodeClosed checks if an exhausted reader is reported as a closed
// connection instead of a generic io error.
func TestDecodeClosed(t *testing.T) {
	d := NewDecoder(&bytes.Buffer{})

	_, err := d.Decode()
	if !errors.Is(err, ErrConnectionClosed) {
		t.Fatalf("expected ErrConnectionClosed, got %v", err)
	}
}

// TestDecodeTruncated checks if a stream ending in the middle of a frame is
// reported as a closed connection.
func TestDecodeTruncated(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := binary.Write(buf, binary.BigEndian, uint32(100)); err != nil {
		t.Fatal(err)
	}
	buf.WriteString("not a hundred bytes")

	_, err := NewDecoder(buf).Decode()
	if !errors.Is(err, ErrConnectionClosed) {
		t.Fatalf("expected ErrConnectionClosed, got %v", err)
	}
}

// TestDecodeRejectsOversizedFrame checks if a declared length exceeding the
// frame ceiling is rejected before the payload is read. Only the size header
// is present in the buffer so an attempt to read the payload would fail with
// a different error.
func TestDecodeRejectsOversizedFrame(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := binary.Write(buf, binary.BigEndian, uint32(200*1024*1024)); err != nil {
		t.Fatal(err)
	}

	_, err := NewDecoder(buf).Decode()
	if !errors.Is(err, ErrInvalidFrame) {
		t.Fatalf("expected ErrInvalidFrame, got %v", err)
	}
}

func TestDecodeAcceptsMaxLen(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := binary.Write(buf, binary.BigEndian, uint32(MaxLen)); err != nil {
		t.Fatal(err)
	}

	_, err := NewDecoder(buf).Decode()
	if errors.Is(err, ErrInvalidFrame) {
		t.Fatal("a payload of exactly MaxLen bytes should be permitted")
	}
}

func TestEncodeRejectsOversizedPayload(t *testing.T) {
	data := make([]byte, int(MaxLen)+1)

	err := NewEncoder(&bytes.Buffer{}).Encode(data)
	if !errors.Is(err, ErrInvalidFrame) {
		t.Fatalf("expected ErrInvalidFrame, got %v", err)
	}
}
