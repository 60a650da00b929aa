package transport

import (
	"net"
	"os"
	"runtime"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/net/context"
)

// DialUnix establishes a new connection to the unix domain socket at the
// path set in the config. Setting the path is required, the timeouts are
// optional.
func DialUnix(ctx context.Context, conf Config) (Transport, error) {
	if conf.Path == "" {
		return nil, ErrPathMissing
	}
	return dial(ctx, "unix", conf.Path, conf)
}

// ListenUnix starts listening for incoming connections on a unix domain
// socket bound to the provided path. A stale socket file already present at
// that path is removed first. There is no liveness check, the path is
// assumed to be exclusively owned by this listener by convention.
//
// The socket file is removed when the listener is closed. If the listener is
// abandoned without calling Close the removal is still attempted but its
// failure is not reported anywhere.
func ListenUnix(path string) (*UnixListener, error) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "could not remove the stale socket file")
	}

	listener, err := net.Listen("unix", path)
	if err != nil {
		return nil, errors.Wrap(err, "listen failed")
	}

	rv := &UnixListener{
		listener: listener,
		path:     path,
	}
	runtime.SetFinalizer(rv, func(l *UnixListener) {
		l.listener.Close()
		l.remove()
	})
	return rv, nil
}

type UnixListener struct {
	listener   net.Listener
	path       string
	removeOnce sync.Once
}

// Path returns the path of the socket file the listener is bound to.
func (l *UnixListener) Path() string {
	return l.path
}

func (l *UnixListener) Accept() (Transport, error) {
	conn, err := l.listener.Accept()
	if err != nil {
		return nil, errors.Wrap(err, "accept failed")
	}
	return NewTransport(conn), nil
}

// Close closes the listener and removes the socket file.
func (l *UnixListener) Close() error {
	runtime.SetFinalizer(l, nil)
	err := l.listener.Close()
	if removeErr := l.remove(); removeErr != nil && err == nil {
		err = removeErr
	}
	return err
}

// remove deletes the socket file at most once. A file which is already gone
// is not an error.
func (l *UnixListener) remove() error {
	var err error
	l.removeOnce.Do(func() {
		if removeErr := os.Remove(l.path); removeErr != nil && !os.IsNotExist(removeErr) {
			err = removeErr
		}
	})
	return err
}
