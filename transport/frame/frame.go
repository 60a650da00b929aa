// Package frame implements the wire format used by the transports. Each
// frame carries information about the size of the payload so that it is
// possible to send discrete variable length messages via a stream
// connection.
//
// Structure of a frame:
//     LEN      TYPE      DESCRIPTION
//     4        uint32    Size of the payload, big endian.
//     ?        []byte    Payload.
//
// There is no version field, magic number or checksum. Ordering and delivery
// rely entirely on the guarantees of the underlying stream.
package frame

import (
	"errors"

	"github.com/boreq/fabric/utils/size"
)

// MaxLen defines the max length of the payload of a single frame. A frame
// declaring a larger payload is rejected before the payload is read which
// guards against memory exhaustion caused by a malicious or buggy peer.
const MaxLen = 100 * size.Mebibyte

// ErrConnectionClosed is returned when the peer performed an orderly shutdown
// of the connection. It is a terminal signal and not a failure of the
// connection itself.
var ErrConnectionClosed = errors.New("connection closed")

// ErrInvalidFrame is returned when the declared payload length exceeds
// MaxLen. The connection should be abandoned as the stream can no longer be
// assumed to be frame aligned.
var ErrInvalidFrame = errors.New("invalid frame")
