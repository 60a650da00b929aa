// Package request implements one shot interactions for callers which do not
// need a persistent connection. Every helper opens a channel, performs its
// exchange and guarantees that the connection is closed before returning, on
// every exit path.
package request

import (
	"github.com/boreq/fabric/channel"
	"github.com/boreq/fabric/codec"
	"github.com/boreq/fabric/transport"
	"golang.org/x/net/context"
)

// RequestTCP performs a single round trip over a new TCP connection. It
// sends req, receives one response into resp and closes the connection.
func RequestTCP(ctx context.Context, conf transport.Config, c codec.Codec, req, resp interface{}) error {
	ch, err := channel.DialTCP(ctx, conf, c)
	if err != nil {
		return err
	}
	defer ch.Close()

	if err := ch.Send(req); err != nil {
		return err
	}
	return ch.Receive(resp)
}

// RequestUnix performs a single round trip over a new unix domain socket
// connection.
func RequestUnix(ctx context.Context, conf transport.Config, c codec.Codec, req, resp interface{}) error {
	ch, err := channel.DialUnix(ctx, conf, c)
	if err != nil {
		return err
	}
	defer ch.Close()

	if err := ch.Send(req); err != nil {
		return err
	}
	return ch.Receive(resp)
}

// SendTCP sends a single message over a new TCP connection without awaiting
// a response.
func SendTCP(ctx context.Context, conf transport.Config, c codec.Codec, msg interface{}) error {
	ch, err := channel.DialTCP(ctx, conf, c)
	if err != nil {
		return err
	}
	defer ch.Close()

	return ch.Send(msg)
}

// SendUnix sends a single message over a new unix domain socket connection
// without awaiting a response.
func SendUnix(ctx context.Context, conf transport.Config, c codec.Codec, msg interface{}) error {
	ch, err := channel.DialUnix(ctx, conf, c)
	if err != nil {
		return err
	}
	defer ch.Close()

	return ch.Send(msg)
}
