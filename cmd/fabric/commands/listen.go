package commands

import (
	"fmt"

	"github.com/boreq/fabric/transport"
	"github.com/boreq/fabric/utils"
	"github.com/boreq/guinea"
)

var log = utils.GetLogger("commands")

var listenCmd = guinea.Command{
	Options: []guinea.Option{
		{
			Name:        "unix",
			Type:        guinea.Bool,
			Description: "Listen on the unix domain socket instead of TCP",
		},
	},
	Run:              runListen,
	ShortDescription: "runs an echo server",
	Description: `
Accepts connections and sends every received message back to the peer
unchanged.`,
}

func runListen(c guinea.Context) error {
	conf, err := GetConfig()
	if err != nil {
		return err
	}

	var listener transport.Listener
	if c.Options["unix"].Bool() {
		unixListener, err := transport.ListenUnix(conf.SocketPath)
		if err != nil {
			return err
		}
		fmt.Printf("listening on %s\n", unixListener.Path())
		listener = unixListener
	} else {
		tcpListener, err := transport.ListenTCP(conf.ListenAddress)
		if err != nil {
			return err
		}
		fmt.Printf("listening on %s\n", tcpListener.Addr())
		listener = tcpListener
	}
	defer listener.Close()

	for {
		tr, err := listener.Accept()
		if err != nil {
			return err
		}
		go serve(tr)
	}
}

func serve(tr transport.Transport) {
	defer tr.Close()
	log.Debugf("%s connected", tr.RemoteAddr())

	for {
		data, err := tr.Receive()
		if err != nil {
			log.Debugf("%s receive: %s", tr.RemoteAddr(), err)
			return
		}
		if err := tr.Send(data); err != nil {
			log.Debugf("%s send: %s", tr.RemoteAddr(), err)
			return
		}
	}
}
