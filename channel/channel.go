// Package channel composes a transport with a codec to exchange structured
// values over a persistent bidirectional connection.
package channel

import (
	"github.com/boreq/fabric/codec"
	"github.com/boreq/fabric/transport"
	"golang.org/x/net/context"
)

// New combines an existing transport with a codec. The channel takes
// ownership of the transport and closes it when the channel is closed. This
// works for transports obtained in any role, by dialing or by accepting.
func New(t transport.Transport, c codec.Codec) *Channel {
	return &Channel{
		transport: t,
		codec:     c,
	}
}

// DialTCP establishes a new TCP connection as described by the config and
// pairs it with the provided codec.
func DialTCP(ctx context.Context, conf transport.Config, c codec.Codec) (*Channel, error) {
	t, err := transport.DialTCP(ctx, conf)
	if err != nil {
		return nil, err
	}
	return New(t, c), nil
}

// DialUnix establishes a new unix domain socket connection as described by
// the config and pairs it with the provided codec.
func DialUnix(ctx context.Context, conf transport.Config, c codec.Codec) (*Channel, error) {
	t, err := transport.DialUnix(ctx, conf)
	if err != nil {
		return nil, err
	}
	return New(t, c), nil
}

// A Channel carries an arbitrary number of sends and receives interleaved in
// any order the application protocol dictates. Every call sees exactly one
// complete frame. Like the underlying transport a channel is not safe for
// concurrent sends or concurrent receives by independent callers.
type Channel struct {
	transport transport.Transport
	codec     codec.Codec
}

// Send encodes a value and sends it as a single frame. Codec and transport
// failures surface directly, nothing is retried.
func (ch *Channel) Send(v interface{}) error {
	data, err := ch.codec.Encode(v)
	if err != nil {
		return err
	}
	return ch.transport.Send(data)
}

// Receive reads a single frame and decodes it into the value pointed to by
// v. A frame which arrived intact but does not decode into the requested
// type is reported as a codec error, distinct from transport failures.
func (ch *Channel) Receive(v interface{}) error {
	data, err := ch.transport.Receive()
	if err != nil {
		return err
	}
	return ch.codec.Decode(data, v)
}

// Close closes the underlying transport. The channel can not be used
// afterwards.
func (ch *Channel) Close() error {
	return ch.transport.Close()
}
