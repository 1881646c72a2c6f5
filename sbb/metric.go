package sbb

import (
	"strings"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v3"
)

// ClientMetrics contains atomic metrics for a client.
// Metrics can be used as the value of a prometheus CounterFunc or GaugeFunc.
type ClientMetrics struct {
	// ConnectCount indicates the number of successful connect + handshake
	// sequences, including automatic reconnects after a fault.
	ConnectCount atomic.Uint64
	// CommandSendCount indicates the number of commands written to the wire,
	// init handshake commands included.
	CommandSendCount atomic.Uint64
	// LineRecvCount indicates the number of response lines read, echoes and
	// sentinels included.
	LineRecvCount atomic.Uint64
	// EchoRecvCount indicates the number of command echoes received.
	EchoRecvCount atomic.Uint64
	// SequenceDoneCount indicates the number of sequence completion
	// sentinels received.
	SequenceDoneCount atomic.Uint64
	// FaultCount indicates the number of timeout faults, connect and
	// transaction faults combined.
	FaultCount atomic.Uint64

	// commandCounts counts sent commands per command verb.
	commandCounts *xsync.MapOf[string, *atomic.Uint64]
}

func newClientMetrics() *ClientMetrics {
	return &ClientMetrics{
		commandCounts: xsync.NewMapOf[string, *atomic.Uint64](),
	}
}

// CommandCounts returns a snapshot of per-verb send counts, keyed by the
// first token of each command.
func (m *ClientMetrics) CommandCounts() map[string]uint64 {
	counts := make(map[string]uint64)
	m.commandCounts.Range(func(verb string, count *atomic.Uint64) bool {
		counts[verb] = count.Load()
		return true
	})

	return counts
}

func (m *ClientMetrics) incConnectCount() {
	m.ConnectCount.Add(1)
}

func (m *ClientMetrics) incCommandSendCount(command string) {
	m.CommandSendCount.Add(1)

	count, _ := m.commandCounts.LoadOrCompute(commandVerb(command), func() *atomic.Uint64 {
		return &atomic.Uint64{}
	})
	count.Add(1)
}

func (m *ClientMetrics) incLineRecvCount() {
	m.LineRecvCount.Add(1)
}

func (m *ClientMetrics) incEchoRecvCount() {
	m.EchoRecvCount.Add(1)
}

func (m *ClientMetrics) incSequenceDoneCount() {
	m.SequenceDoneCount.Add(1)
}

func (m *ClientMetrics) incFaultCount() {
	m.FaultCount.Add(1)
}

// commandVerb returns the first space-delimited token of a command.
func commandVerb(command string) string {
	if idx := strings.IndexByte(command, ' '); idx >= 0 {
		return command[:idx]
	}

	return command
}
