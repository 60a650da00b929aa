package commands

import (
	"fmt"

	"github.com/boreq/fabric/codec"
	"github.com/boreq/fabric/message"
	"github.com/boreq/fabric/request"
	"github.com/boreq/fabric/transport"
	"github.com/boreq/guinea"
	"github.com/golang/protobuf/proto"
	"golang.org/x/net/context"
)

var requestCmd = guinea.Command{
	Options: []guinea.Option{
		{
			Name:        "unix",
			Type:        guinea.Bool,
			Description: "Connect to the unix domain socket instead of TCP",
		},
	},
	Arguments: []guinea.Argument{
		{Name: "message", Multiple: false, Description: "message to send"},
	},
	Run:              runRequest,
	ShortDescription: "performs a single round trip",
	Description: `
Sends a message, waits for a single response and prints it. The message is
exchanged using the protobuf codec.`,
}

func runRequest(c guinea.Context) error {
	conf, err := GetConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	req := &message.Echo{Text: proto.String(c.Arguments[0])}
	resp := &message.Echo{}

	if c.Options["unix"].Bool() {
		transportConf := transport.Config{
			Path:           conf.SocketPath,
			ConnectTimeout: conf.ConnectTimeout,
			SendTimeout:    conf.SendTimeout,
			ReceiveTimeout: conf.ReceiveTimeout,
		}
		err = request.RequestUnix(ctx, transportConf, codec.NewProto(), req, resp)
	} else {
		transportConf := transport.Config{
			Address:        conf.ListenAddress,
			ConnectTimeout: conf.ConnectTimeout,
			SendTimeout:    conf.SendTimeout,
			ReceiveTimeout: conf.ReceiveTimeout,
		}
		err = request.RequestTCP(ctx, transportConf, codec.NewProto(), req, resp)
	}
	if err != nil {
		return err
	}

	fmt.Println(resp.GetText())
	return nil
}
