// Package config implements configuration of the fabric command line tool.
package config

import (
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config holds the settings used by the command line tool. The library
// itself is configured directly through transport.Config.
type Config struct {
	// ListenAddress is the TCP address of the echo server.
	ListenAddress string

	// SocketPath is the path of the unix domain socket used instead of
	// TCP when requested.
	SocketPath string

	ConnectTimeout time.Duration
	SendTimeout    time.Duration
	ReceiveTimeout time.Duration
}

// Default returns a config filled with default values.
func Default() *Config {
	return &Config{
		ListenAddress:  ":1860",
		SocketPath:     "/tmp/fabric.socket",
		ConnectTimeout: 5 * time.Second,
	}
}

type fileConfig struct {
	ListenAddress  string `toml:"listen_address"`
	SocketPath     string `toml:"socket_path"`
	ConnectTimeout string `toml:"connect_timeout"`
	SendTimeout    string `toml:"send_timeout"`
	ReceiveTimeout string `toml:"receive_timeout"`
}

// Load reads a config file in the TOML format. Values missing from the file
// keep their defaults. Timeouts are specified using the syntax accepted by
// time.ParseDuration, for example "500ms".
func Load(path string) (*Config, error) {
	conf := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, errors.Wrap(err, "could not load the config file")
	}

	if meta.IsDefined("listen_address") {
		conf.ListenAddress = raw.ListenAddress
	}
	if meta.IsDefined("socket_path") {
		conf.SocketPath = raw.SocketPath
	}
	if meta.IsDefined("connect_timeout") {
		if conf.ConnectTimeout, err = parseTimeout(raw.ConnectTimeout); err != nil {
			return nil, errors.Wrap(err, "could not parse connect_timeout")
		}
	}
	if meta.IsDefined("send_timeout") {
		if conf.SendTimeout, err = parseTimeout(raw.SendTimeout); err != nil {
			return nil, errors.Wrap(err, "could not parse send_timeout")
		}
	}
	if meta.IsDefined("receive_timeout") {
		if conf.ReceiveTimeout, err = parseTimeout(raw.ReceiveTimeout); err != nil {
			return nil, errors.Wrap(err, "could not parse receive_timeout")
		}
	}
	return conf, nil
}

func parseTimeout(value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, errors.New("timeouts can not be negative")
	}
	return d, nil
}
