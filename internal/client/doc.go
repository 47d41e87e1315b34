// Package client assembles and runs the interactive client application:
// configuration, server adapter, client services, and the terminal UI.
package client
