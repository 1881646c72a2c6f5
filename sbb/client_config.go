package sbb

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/6a-realm/go-sbb/logger"
)

// ipv4Pattern matches strict dotted-decimal IPv4 addresses: four octets in
// [0, 255] with no leading zeros. Deliberately stricter than net.ParseIP,
// which accepts forms the agent's tooling does not.
var ipv4Pattern = regexp.MustCompile(
	`^(([0-9])|([1-9][0-9])|(1[0-9]{2})|(2[0-4][0-9])|(25[0-5]))` +
		`(\.(([0-9])|([1-9][0-9])|(1[0-9]{2})|(2[0-4][0-9])|(25[0-5]))){3}$`)

// ClientConfig represents the configuration parameters for a sys-botbase
// client.
type ClientConfig struct {
	// ip is the dotted-decimal IPv4 address of the sys-botbase device.
	ip string

	// port is the TCP port number of the sys-botbase agent.
	// Defaults to 6000.
	port int

	// timeout bounds every individual I/O step: dialing, each command
	// write, and each response line read.
	// Defaults to 1 second.
	timeout time.Duration

	// verbose selects the level the client logs its progress messages at:
	// Info when true, Debug when false.
	// Defaults to false.
	verbose bool

	// readBufferSize is the buffered read capacity for the connection.
	// It must be large enough to hold the longest single response line;
	// screen captures arrive as one hex blob per line.
	// Defaults to 1 MiB.
	readBufferSize int

	// connectAttempts bounds the dial + handshake attempts per call.
	// Defaults to 1.
	connectAttempts int

	// logger provides a logger instance for client events.
	logger logger.Logger
}

// NewClientConfig creates a client configuration for the device at the
// given IPv4 address and port, applying the provided functional options.
//
// The ip parameter must be a strict dotted-decimal IPv4 address; anything
// else fails construction. A port of 0 selects DefaultPort.
//
// Returns a pointer to the initialized ClientConfig and an error if any
// occurred during the configuration process.
func NewClientConfig(ip string, port int, opts ...ClientOption) (*ClientConfig, error) {
	cfg := &ClientConfig{
		timeout:         1 * time.Second,
		verbose:         false,
		readBufferSize:  1024 * 1024,
		connectAttempts: 1,
		logger:          logger.GetLogger(),
	}

	if err := withDeviceIP(ip).apply(cfg); err != nil {
		return cfg, err
	}

	if err := withPort(port).apply(cfg); err != nil {
		return cfg, err
	}

	for _, opt := range opts {
		if err := opt.apply(cfg); err != nil {
			return cfg, err
		}
	}

	return cfg, nil
}

// IP returns the configured device address.
func (cfg *ClientConfig) IP() string { return cfg.ip }

// Port returns the configured device port.
func (cfg *ClientConfig) Port() int { return cfg.port }

// Timeout returns the configured per-operation timeout.
func (cfg *ClientConfig) Timeout() time.Duration { return cfg.timeout }

// ClientOption represents a functional option for configuring a ClientConfig.
type ClientOption interface {
	apply(*ClientConfig) error
}

type clientOptFunc struct {
	name      string
	applyFunc func(*ClientConfig) error
}

func (c *clientOptFunc) apply(cfg *ClientConfig) error { return c.applyFunc(cfg) }

func newClientOptFunc(name string, f func(*ClientConfig) error) *clientOptFunc {
	return &clientOptFunc{
		name:      name,
		applyFunc: f,
	}
}

// withDeviceIP sets and validates the device address.
// An error is returned if the address is not strict dotted-decimal IPv4.
func withDeviceIP(ip string) ClientOption {
	return newClientOptFunc("withDeviceIP", func(cfg *ClientConfig) error {
		if cfg == nil {
			return ErrClientConfigNil
		}

		if !ipv4Pattern.MatchString(ip) {
			return fmt.Errorf("%w: %q", ErrInvalidIP, ip)
		}
		cfg.ip = ip

		return nil
	})
}

// withPort sets the TCP port number. A port of 0 selects DefaultPort.
// An error is returned if the port number is out of the valid range.
func withPort(port int) ClientOption {
	return newClientOptFunc("withPort", func(cfg *ClientConfig) error {
		if cfg == nil {
			return ErrClientConfigNil
		}

		if port < 0 || port > 65535 {
			return errors.New("port is out of range [0, 65535]")
		}
		if port == 0 {
			port = DefaultPort
		}
		cfg.port = port

		return nil
	})
}

// WithTimeout sets the timeout that bounds every individual I/O step.
// An error is returned if the timeout is outside the valid range
// (10 milliseconds to 240 seconds) or if the configuration is nil.
//
// The default value is 1 second.
func WithTimeout(val time.Duration) ClientOption {
	return newClientOptFunc("WithTimeout", func(cfg *ClientConfig) error {
		if cfg == nil {
			return ErrClientConfigNil
		}

		if val < 10*time.Millisecond || val > 240*time.Second {
			return errors.New("timeout out of range [0.01, 240]")
		}
		cfg.timeout = val

		return nil
	})
}

// WithVerbose selects whether the client logs its progress messages at
// Info level (true) or Debug level (false).
//
// The default value is false.
func WithVerbose(val bool) ClientOption {
	return newClientOptFunc("WithVerbose", func(cfg *ClientConfig) error {
		if cfg == nil {
			return ErrClientConfigNil
		}

		cfg.verbose = val

		return nil
	})
}

// WithReadBufferSize sets the buffered read capacity for the connection.
// It must be large enough to hold the longest single response line; screen
// captures arrive as one hex blob per line.
// An error is returned if the size is outside the valid range
// (4 KiB to 16 MiB) or if the configuration is nil.
//
// The default value is 1 MiB.
func WithReadBufferSize(size int) ClientOption {
	return newClientOptFunc("WithReadBufferSize", func(cfg *ClientConfig) error {
		if cfg == nil {
			return ErrClientConfigNil
		}

		if size < 4*1024 || size > 16*1024*1024 {
			return errors.New("read buffer size out of range [4KiB, 16MiB]")
		}
		cfg.readBufferSize = size

		return nil
	})
}

// WithConnectAttempts bounds the dial + handshake attempts per call.
// Retries within a call pause briefly between attempts.
// An error is returned if the count is outside the valid range (1 to 10)
// or if the configuration is nil.
//
// The default value is 1.
func WithConnectAttempts(count int) ClientOption {
	return newClientOptFunc("WithConnectAttempts", func(cfg *ClientConfig) error {
		if cfg == nil {
			return ErrClientConfigNil
		}

		if count < 1 || count > 10 {
			return errors.New("connect attempts out of range [1, 10]")
		}
		cfg.connectAttempts = count

		return nil
	})
}

// WithLogger sets the logger for the client.
//
// The default logger is the global logger instance.
func WithLogger(l logger.Logger) ClientOption {
	return newClientOptFunc("WithLogger", func(cfg *ClientConfig) error {
		if cfg == nil {
			return ErrClientConfigNil
		}

		cfg.logger = l

		return nil
	})
}
