package transport

import (
	"net"
	"time"

	"github.com/boreq/fabric/transport/frame"
	"github.com/boreq/fabric/utils"
	"github.com/pkg/errors"
	"golang.org/x/net/context"
)

var log = utils.GetLogger("transport")

// NewTransport wraps an already established connection, for example one
// returned by a listener. The transport has no timeouts configured.
func NewTransport(conn net.Conn) Transport {
	return newTransport(conn, Config{})
}

func newTransport(conn net.Conn, conf Config) Transport {
	return &transport{
		conn:           conn,
		encoder:        frame.NewEncoder(conn),
		decoder:        frame.NewDecoder(conn),
		sendTimeout:    conf.SendTimeout,
		receiveTimeout: conf.ReceiveTimeout,
	}
}

type transport struct {
	conn           net.Conn
	encoder        *frame.Encoder
	decoder        *frame.Decoder
	sendTimeout    time.Duration
	receiveTimeout time.Duration
}

func (t *transport) Send(data []byte) error {
	if t.sendTimeout == 0 {
		return t.encoder.Encode(data)
	}

	result := make(chan error, 1)
	go func() {
		result <- t.encoder.Encode(data)
	}()

	select {
	case err := <-result:
		return err
	case <-time.After(t.sendTimeout):
		log.Debugf("send to %s timed out after %s", t.conn.RemoteAddr(), t.sendTimeout)
		return errors.Wrap(ErrTimeout, "send")
	}
}

func (t *transport) Receive() ([]byte, error) {
	if t.receiveTimeout == 0 {
		return t.decoder.Decode()
	}

	type received struct {
		data []byte
		err  error
	}

	result := make(chan received, 1)
	go func() {
		data, err := t.decoder.Decode()
		result <- received{data, err}
	}()

	select {
	case r := <-result:
		return r.data, r.err
	case <-time.After(t.receiveTimeout):
		log.Debugf("receive from %s timed out after %s", t.conn.RemoteAddr(), t.receiveTimeout)
		return nil, errors.Wrap(ErrTimeout, "receive")
	}
}

func (t *transport) Close() error {
	return t.conn.Close()
}

func (t *transport) LocalAddr() net.Addr {
	return t.conn.LocalAddr()
}

func (t *transport) RemoteAddr() net.Addr {
	return t.conn.RemoteAddr()
}

// dial establishes a new connection honouring the connect timeout set in the
// config.
func dial(ctx context.Context, network, target string, conf Config) (Transport, error) {
	if conf.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, conf.ConnectTimeout)
		defer cancel()
	}

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, network, target)
	if err != nil {
		if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
			return nil, errors.Wrap(ErrTimeout, "connect")
		}
		return nil, errors.Wrap(err, "dial failed")
	}
	return newTransport(conn, conf), nil
}
