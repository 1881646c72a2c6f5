package sbb

import "sync/atomic"

// ConnState represents the connection state of a Client.
type ConnState uint32

const (
	// DisconnectedState indicates that no TCP connection is established.
	DisconnectedState ConnState = iota
	// ConnectedState indicates that the TCP connection is established and
	// the initialization handshake has completed.
	ConnectedState
)

// IsConnected returns if the state is connected.
func (cs ConnState) IsConnected() bool { return cs == ConnectedState }

// IsDisconnected returns if the state is disconnected.
func (cs ConnState) IsDisconnected() bool { return cs == DisconnectedState }

// String returns string representation of the state.
func (cs ConnState) String() string {
	switch cs {
	case DisconnectedState:
		return "disconnected"
	case ConnectedState:
		return "connected"
	default:
		return "unknown"
	}
}

// AtomicConnState holds a ConnState with atomic access.
type AtomicConnState struct {
	state atomic.Uint32
}

// Get returns the current state.
func (st *AtomicConnState) Get() ConnState {
	return ConnState(st.state.Load())
}

// Set sets the state.
func (st *AtomicConnState) Set(state ConnState) {
	st.state.Store(uint32(state))
}

func (st *AtomicConnState) IsConnected() bool {
	return st.Get() == ConnectedState
}

func (st *AtomicConnState) IsDisconnected() bool {
	return st.Get() == DisconnectedState
}

func (st *AtomicConnState) String() string {
	return st.Get().String()
}
