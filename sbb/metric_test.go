package sbb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClientMetrics_Counters(t *testing.T) {
	require := require.New(t)

	agent := newTestAgent(t, nil)
	client := newTestClient(t, agent)

	_, err := client.Do(context.Background(), "click A")
	require.NoError(err)

	_, err = client.Do(context.Background(), "click B")
	require.NoError(err)

	metrics := client.GetMetrics()

	require.Equal(uint64(1), metrics.ConnectCount.Load())
	// 2 handshake commands + 2 caller commands
	require.Equal(uint64(4), metrics.CommandSendCount.Load())
	require.Equal(uint64(4), metrics.EchoRecvCount.Load())
	require.Equal(uint64(4), metrics.LineRecvCount.Load())
	require.Equal(uint64(0), metrics.FaultCount.Load())

	counts := metrics.CommandCounts()
	require.Equal(uint64(2), counts["click"])
	require.Equal(uint64(1), counts["configure"])
	require.Equal(uint64(1), counts["detatchController"])
}

func TestCommandVerb(t *testing.T) {
	require := require.New(t)

	require.Equal("peak", commandVerb("peak 100 10"))
	require.Equal("freezeCount", commandVerb("freezeCount"))
	require.Equal("clickSeq", commandVerb("clickSeq A,B"))
}
