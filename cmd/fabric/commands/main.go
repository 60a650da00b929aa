package commands

import (
	"github.com/boreq/guinea"
)

var MainCmd = guinea.Command{
	Run: func(c guinea.Context) error {
		return guinea.ErrInvalidParms
	},
	Subcommands: map[string]*guinea.Command{
		"listen":  &listenCmd,
		"send":    &sendCmd,
		"request": &requestCmd,
	},
	ShortDescription: "framed message transport tool",
	Description: `
Fabric exchanges discrete messages over TCP or unix domain socket
connections. It is mainly useful for trying the wire protocol out against a
running service.`,
}
