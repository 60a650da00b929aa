package commands

import (
	"github.com/boreq/fabric/codec"
	"github.com/boreq/fabric/request"
	"github.com/boreq/fabric/transport"
	"github.com/boreq/guinea"
	"golang.org/x/net/context"
)

var sendCmd = guinea.Command{
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
	Run:              runSend,
	ShortDescription: "sends a single message without awaiting a response",
}

func runSend(c guinea.Context) error {
	conf, err := GetConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	msg := []byte(c.Arguments[0])

	if c.Options["unix"].Bool() {
		transportConf := transport.Config{
			Path:           conf.SocketPath,
			ConnectTimeout: conf.ConnectTimeout,
			SendTimeout:    conf.SendTimeout,
		}
		return request.SendUnix(ctx, transportConf, codec.NewRaw(), msg)
	}

	transportConf := transport.Config{
		Address:        conf.ListenAddress,
		ConnectTimeout: conf.ConnectTimeout,
		SendTimeout:    conf.SendTimeout,
	}
	return request.SendTCP(ctx, transportConf, codec.NewRaw(), msg)
}
