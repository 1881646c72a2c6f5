package sbb

import "errors"

var (
	// ErrClientConfigNil indicates that a nil ClientConfig was provided.
	ErrClientConfigNil = errors.New("client config is nil")

	// ErrInvalidIP indicates that the device IP is not a dotted-decimal
	// IPv4 address.
	ErrInvalidIP = errors.New("ip looks invalid")
)

// ErrConnect indicates that establishing the connection or running the
// initialization handshake failed within the bounded attempts.
var ErrConnect = errors.New("connect to device failed")
