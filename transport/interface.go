// Package transport turns stream connections into reliable sequences of
// discrete messages. Each message is sent as a single length prefixed frame
// as defined by the frame package. Two kinds of connections are supported,
// TCP and unix domain sockets, and both share the same framing and timeout
// behaviour.
package transport

import (
	"errors"
	"net"
	"time"

	"github.com/boreq/fabric/transport/frame"
)

// Transport sends and receives whole frames over a single open connection.
//
// A transport is not safe for use by multiple callers concurrently issuing
// sends or concurrently issuing receives, each direction assumes exclusive
// sequential access. Independent transports are fully independent and can be
// used concurrently.
//
// After Send or Receive fails with ErrTimeout the exact position of the
// stream is no longer known to be frame aligned. Such a transport must be
// discarded and not reused.
type Transport interface {
	// Send writes a single frame containing the provided payload. On
	// failure the connection has to be treated as unusable for further
	// sends.
	Send(data []byte) error

	// Receive reads a single frame and returns its payload. An orderly
	// shutdown performed by the peer is reported as ErrConnectionClosed.
	Receive() ([]byte, error)

	// Close shuts down the underlying connection. Calling Close on an
	// already broken connection reports an error but is otherwise safe.
	Close() error

	// LocalAddr returns the local address of the connection.
	LocalAddr() net.Addr

	// RemoteAddr returns the address of the peer.
	RemoteAddr() net.Addr
}

// Listener accepts incoming connections and produces transports. The
// returned transports have no timeouts configured, those have to be layered
// by the caller. Accept can be called concurrently, each call produces an
// independent transport.
type Listener interface {
	Accept() (Transport, error)
	Close() error
}

// Config specifies the target of a connection together with the optional
// timeouts. A zero timeout means that the related operation is unbounded.
type Config struct {
	// Address of the remote listener in the form accepted by the net
	// package, used by DialTCP.
	Address string

	// Path of the remote socket file, used by DialUnix.
	Path string

	ConnectTimeout time.Duration
	SendTimeout    time.Duration
	ReceiveTimeout time.Duration
}

var (
	// ErrConnectionClosed signals an orderly shutdown performed by the
	// peer. See frame.ErrConnectionClosed.
	ErrConnectionClosed = frame.ErrConnectionClosed

	// ErrInvalidFrame signals a protocol violation. See
	// frame.ErrInvalidFrame.
	ErrInvalidFrame = frame.ErrInvalidFrame

	// ErrTimeout is returned when a connect, send or receive exceeded its
	// configured timeout.
	ErrTimeout = errors.New("timeout exceeded")

	// ErrAddressMissing is returned by DialTCP if no address was set in
	// the config.
	ErrAddressMissing = errors.New("address not set")

	// ErrPathMissing is returned by DialUnix if no path was set in the
	// config.
	ErrPathMissing = errors.New("path not set")
)
