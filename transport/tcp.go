package transport

import (
	"net"

	"github.com/pkg/errors"
	"golang.org/x/net/context"
)

// DialTCP establishes a new TCP connection to the address set in the config.
// Setting the address is required, the timeouts are optional.
func DialTCP(ctx context.Context, conf Config) (Transport, error) {
	if conf.Address == "" {
		return nil, ErrAddressMissing
	}
	return dial(ctx, "tcp", conf.Address, conf)
}

// ListenTCP starts listening for incoming TCP connections on the provided
// address.
func ListenTCP(address string) (*TCPListener, error) {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, errors.Wrap(err, "listen failed")
	}
	return &TCPListener{listener: listener}, nil
}

type TCPListener struct {
	listener net.Listener
}

// Addr returns the address the listener is bound to. This is mainly useful
// after binding to port zero.
func (l *TCPListener) Addr() net.Addr {
	return l.listener.Addr()
}

func (l *TCPListener) Accept() (Transport, error) {
	conn, err := l.listener.Accept()
	if err != nil {
		return nil, errors.Wrap(err, "accept failed")
	}
	return NewTransport(conn), nil
}

func (l *TCPListener) Close() error {
	return l.listener.Close()
}
