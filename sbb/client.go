package sbb

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"strconv"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/6a-realm/go-sbb/internal/pool"
	"github.com/6a-realm/go-sbb/logger"
)

// connectRetryDelay is the pause between bounded dial/handshake attempts
// within a single call.
const connectRetryDelay = 100 * time.Millisecond

// Client is a session with a sys-botbase device.
//
// It owns the TCP connection, the connection state, and the capacity-1
// exclusion gate that admits one transaction at a time. A Client is safe
// for concurrent use; concurrent callers serialize on the gate rather than
// interleaving their command streams on the wire.
//
// The connection is established lazily on the first call (and again after
// any fault); construction performs no I/O.
type Client struct {
	cfg    *ClientConfig
	logger logger.Logger

	// gate admits exactly one transaction at a time.
	gate *semaphore.Weighted

	state AtomicConnState

	// conn and reader are valid if and only if state is Connected.
	// They are touched only while the gate is held.
	conn   net.Conn
	reader *bufio.Reader

	lastFault atomic.Pointer[Fault]
	metrics   *ClientMetrics
}

// NewClient creates a new Client with the given configuration.
// Returns an error if the configuration is nil; address validation has
// already happened during config construction.
func NewClient(cfg *ClientConfig) (*Client, error) {
	if cfg == nil {
		return nil, ErrClientConfigNil
	}

	c := &Client{
		cfg:     cfg,
		logger:  cfg.logger,
		gate:    semaphore.NewWeighted(1),
		metrics: newClientMetrics(),
	}

	return c, nil
}

// Addr returns the device address in host:port form.
func (c *Client) Addr() string {
	return net.JoinHostPort(c.cfg.ip, strconv.Itoa(c.cfg.port))
}

// State returns the current connection state.
func (c *Client) State() ConnState {
	return c.state.Get()
}

// GetLogger returns the logger associated with the client.
func (c *Client) GetLogger() logger.Logger {
	return c.logger
}

// GetMetrics returns the metrics associated with the client.
func (c *Client) GetMetrics() *ClientMetrics {
	return c.metrics
}

// LastFault returns the most recent fault, or nil if none has occurred.
// It distinguishes connect faults from mid-transaction faults, which both
// project to the same result at the Do call site.
func (c *Client) LastFault() *Fault {
	return c.lastFault.Load()
}

// Do sends the given commands to the device as one transaction and returns
// the projected result.
//
// If the client is disconnected it first dials the device and runs the
// initialization handshake; failure there is returned as an error wrapping
// ErrConnect. Once connected, a timeout at any I/O step is a transaction
// fault: the client is forced back to Disconnected (the next call
// reconnects from scratch) and Do returns the partial result collected so
// far with a nil error. Use LastFault to observe transaction faults.
//
// Calling Do with no commands is a no-op that returns an acknowledged
// result without touching the connection.
func (c *Client) Do(ctx context.Context, commands ...string) (Result, error) {
	if len(commands) == 0 {
		return Result{}, nil
	}

	if err := c.gate.Acquire(ctx, 1); err != nil {
		return Result{}, err
	}
	defer c.gate.Release(1)

	if err := c.ensureConnected(ctx); err != nil {
		return Result{}, err
	}

	txn := newTransaction(c, commands)

	lines, err := txn.run(ctx)
	if err != nil {
		c.fault(FaultTransaction, err)
	}

	c.log("transaction finished", "responses", len(lines))

	return newResult(lines), nil
}

// Disconnect closes the connection and resets the state. It is an
// idempotent no-op when already disconnected.
func (c *Client) Disconnect() error {
	if err := c.gate.Acquire(context.Background(), 1); err != nil {
		return err
	}
	defer c.gate.Release(1)

	if c.state.IsDisconnected() {
		return nil
	}

	c.log("disconnecting", "addr", c.Addr())

	err := c.conn.Close()
	c.conn = nil
	c.reader = nil
	c.state.Set(DisconnectedState)

	return err
}

// ensureConnected guarantees a live, initialized connection, dialing and
// running the init handshake when disconnected. Attempts are bounded by
// the configured connect attempts; all failures are recorded as connect
// faults and the last one is returned wrapped in ErrConnect.
//
// The caller must hold the gate.
func (c *Client) ensureConnected(ctx context.Context) error {
	if c.state.IsConnected() {
		return nil
	}

	addr := c.Addr()

	var lastErr error

	for attempt := 1; attempt <= c.cfg.connectAttempts; attempt++ {
		if attempt > 1 {
			timer := pool.GetTimer(connectRetryDelay)
			select {
			case <-ctx.Done():
				pool.PutTimer(timer)
				return ctx.Err()
			case <-timer.C:
			}
			pool.PutTimer(timer)
		}

		c.log("attempting to connect", "addr", addr, "attempt", attempt)

		if lastErr = c.connect(ctx, addr); lastErr != nil {
			c.fault(FaultConnect, lastErr)
			continue
		}

		c.metrics.incConnectCount()
		c.log("successfully connected", "addr", addr)

		return nil
	}

	return fmt.Errorf("%w: %w", ErrConnect, lastErr)
}

// connect dials the device and runs the fixed initialization handshake as
// an ordinary transaction over the new connection.
func (c *Client) connect(ctx context.Context, addr string) error {
	conn, err := net.DialTimeout("tcp", addr, c.cfg.timeout)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}

	c.conn = conn
	c.reader = bufio.NewReaderSize(conn, c.cfg.readBufferSize)
	c.state.Set(ConnectedState)

	c.log("setting up connection", "addr", addr)

	txn := newTransaction(c, initCommands)
	if _, err := txn.run(ctx); err != nil {
		c.closeConn()
		return fmt.Errorf("init handshake: %w", err)
	}

	return nil
}

// fault records a timeout fault and invalidates the connection so the next
// call reconnects from scratch. The caller must hold the gate.
func (c *Client) fault(kind FaultKind, err error) {
	c.metrics.incFaultCount()
	c.lastFault.Store(&Fault{Kind: kind, Err: err, At: time.Now()})
	c.logger.Error("session timed out", "kind", kind.String(), "error", err)

	c.closeConn()
}

// closeConn tears the connection down without the idempotence checks or
// logging of Disconnect. The caller must hold the gate.
func (c *Client) closeConn() {
	if c.conn != nil {
		if tcpConn, ok := c.conn.(*net.TCPConn); ok {
			_ = tcpConn.SetLinger(0)
		}
		_ = c.conn.Close()
	}

	c.conn = nil
	c.reader = nil
	c.state.Set(DisconnectedState)
}

// log logs at Info level when the client is verbose, Debug otherwise.
func (c *Client) log(msg string, keysAndValues ...any) {
	if c.cfg.verbose {
		c.logger.Info(msg, keysAndValues...)
	} else {
		c.logger.Debug(msg, keysAndValues...)
	}
}
