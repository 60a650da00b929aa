package channel

import (
	"errors"
	"net"
	"reflect"
	"testing"

	"github.com/boreq/fabric/codec"
	"github.com/boreq/fabric/transport"
	"golang.org/x/net/context"
)

type testMessage struct {
	Id   uint32
	Data string
}

// pipe returns two channels connected to each other using an in memory
// connection.
func pipe(c codec.Codec) (*Channel, *Channel) {
	connA, connB := net.Pipe()
	return New(transport.NewTransport(connA), c), New(transport.NewTransport(connB), c)
}

func TestSendReceive(t *testing.T) {
	a, b := pipe(codec.NewGob())
	defer a.Close()
	defer b.Close()

	msg := testMessage{Id: 42, Data: "test data"}

	go func() {
		a.Send(msg)
	}()

	var received testMessage
	if err := b.Receive(&received); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(msg, received) {
		t.Fatalf("received %+v instead of %+v", received, msg)
	}
}

// TestBidirectional checks if a single channel can be used to both send and
// receive.
func TestBidirectional(t *testing.T) {
	a, b := pipe(codec.NewGob())
	defer a.Close()
	defer b.Close()

	// The peer receives a message and responds to it.
	go func() {
		var msg testMessage
		if err := b.Receive(&msg); err != nil {
			return
		}
		msg.Id++
		b.Send(msg)
	}()

	if err := a.Send(testMessage{Id: 1, Data: "ping"}); err != nil {
		t.Fatal(err)
	}
	var response testMessage
	if err := a.Receive(&response); err != nil {
		t.Fatal(err)
	}
	if response.Id != 2 || response.Data != "ping" {
		t.Fatalf("unexpected response %+v", response)
	}
}

// TestReceiveDecodeFailure checks if a frame which arrived intact but holds
// unexpected content is reported as a codec error so that the caller can
// tell it apart from a broken connection.
func TestReceiveDecodeFailure(t *testing.T) {
	connA, connB := net.Pipe()
	sender := transport.NewTransport(connA)
	receiver := New(transport.NewTransport(connB), codec.NewRaw())
	defer sender.Close()
	defer receiver.Close()

	go func() {
		sender.Send([]byte("not a raw codec payload"))
	}()

	var decoded string
	err := receiver.Receive(&decoded)
	if err == nil {
		t.Fatal("no error")
	}
	if !codec.IsCodecError(err) {
		t.Fatalf("expected a codec error, got %v", err)
	}
	if errors.Is(err, transport.ErrConnectionClosed) || errors.Is(err, transport.ErrInvalidFrame) {
		t.Fatal("a decode failure must not carry a transport error class")
	}
}

// TestReceiveTransportFailure checks if transport errors keep their class
// when surfaced through a channel.
func TestReceiveTransportFailure(t *testing.T) {
	a, b := pipe(codec.NewGob())
	defer b.Close()

	a.Close()

	var msg testMessage
	err := b.Receive(&msg)
	if err == nil {
		t.Fatal("no error")
	}
	if codec.IsCodecError(err) {
		t.Fatal("a transport failure must not be reported as a codec error")
	}
}

func TestSendEncodeFailure(t *testing.T) {
	a, b := pipe(codec.NewRaw())
	defer a.Close()
	defer b.Close()

	err := a.Send(testMessage{Id: 42})
	if err == nil {
		t.Fatal("no error")
	}
	if !codec.IsCodecError(err) {
		t.Fatalf("expected a codec error, got %v", err)
	}
}

func TestDialTCPRequiresAddress(t *testing.T) {
	_, err := DialTCP(context.Background(), transport.Config{}, codec.NewGob())
	if !errors.Is(err, transport.ErrAddressMissing) {
		t.Fatalf("expected ErrAddressMissing, got %v", err)
	}
}
