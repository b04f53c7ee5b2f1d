package server

import (
	"net"
	"strconv"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the TCP port where the server will listen. Zero picks an ephemeral port.
	Port int `mapstructure:"port" default:"8000"`
	// Host is the interface to bind. Empty means all interfaces.
	Host string `mapstructure:"host" default:""`
}

// Addr returns the listen address for the configured host and port.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// URL returns the root URL announced to the user for the given bound port.
func URL(port int) string {
	return "http://localhost:" + strconv.Itoa(port) + "/"
}
