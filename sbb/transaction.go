package sbb

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/6a-realm/go-sbb/logger"
)

// transaction is the unit of work created per client invocation: one or
// more commands sent back-to-back over the shared connection, with
// response collection shared across all commands in the batch.
//
// A transaction must only run while its client holds the exclusion gate.
type transaction struct {
	client   *Client
	commands []string
	lines    []string
	logger   logger.Logger
}

func newTransaction(c *Client, commands []string) *transaction {
	return &transaction{
		client:   c,
		commands: commands,
		logger:   c.logger.With("txn", ulid.Make().String()),
	}
}

// run sends each command and collects its response lines, applying the
// per-command protocol:
//
//  1. Write the CR-LF terminated command, bounded by the timeout.
//  2. Read LF-terminated lines, each read bounded by the timeout:
//     - A line byte-identical to the written command line is the echo.
//       For a sequence command the loop keeps reading; otherwise the echo
//       ends this command's read loop.
//     - The sentinel line ends a sequence command's read loop and is not
//       collected.
//     - Any other line is a data line, appended in arrival order. For
//       non-sequence commands this covers data lines arriving before the
//       echo.
//
// On any I/O error, run returns the partial batch collected so far along
// with the error; the caller decides the fault policy.
func (t *transaction) run(ctx context.Context) ([]string, error) {
	for _, command := range t.commands {
		if err := ctx.Err(); err != nil {
			return t.lines, err
		}

		if err := t.runCommand(command); err != nil {
			return t.lines, err
		}
	}

	return t.lines, nil
}

func (t *transaction) runCommand(command string) error {
	c := t.client
	wire := command + commandTerminator

	t.log("sending command", "command", command)

	if err := c.conn.SetWriteDeadline(time.Now().Add(c.cfg.timeout)); err != nil {
		return fmt.Errorf("set write deadline: %w", err)
	}

	if _, err := c.conn.Write([]byte(wire)); err != nil {
		return fmt.Errorf("write command: %w", err)
	}

	c.metrics.incCommandSendCount(command)

	isSeq := strings.Contains(command, SequenceMarker)

	for {
		if err := c.conn.SetReadDeadline(time.Now().Add(c.cfg.timeout)); err != nil {
			return fmt.Errorf("set read deadline: %w", err)
		}

		line, err := c.reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("read response: %w", err)
		}

		c.metrics.incLineRecvCount()

		if line == wire {
			c.metrics.incEchoRecvCount()
			t.log("received command echo")

			if isSeq {
				// The agent keeps streaming lines after the echo and only
				// signals completion with the sentinel.
				t.log("waiting for sequence to finish")
				continue
			}

			return nil
		}

		response := strings.TrimSuffix(line, "\n")
		if response == SentinelDone {
			c.metrics.incSequenceDoneCount()
			t.log("sequence finished")

			return nil
		}

		t.log("received response", "len", len(response))
		t.lines = append(t.lines, response)
	}
}

// log logs at Info level when the client is verbose, Debug otherwise.
func (t *transaction) log(msg string, keysAndValues ...any) {
	if t.client.cfg.verbose {
		t.logger.Info(msg, keysAndValues...)
	} else {
		t.logger.Debug(msg, keysAndValues...)
	}
}
