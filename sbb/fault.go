package sbb

import "time"

// FaultKind classifies the most recent fault observed by a Client.
type FaultKind uint32

const (
	// FaultNone indicates no fault has occurred.
	FaultNone FaultKind = iota
	// FaultConnect indicates TCP connect or the initialization handshake
	// exceeded the timeout.
	FaultConnect
	// FaultTransaction indicates a read or write within an established
	// connection exceeded the timeout.
	FaultTransaction
)

// String returns string representation of the fault kind.
func (k FaultKind) String() string {
	switch k {
	case FaultNone:
		return "none"
	case FaultConnect:
		return "connect"
	case FaultTransaction:
		return "transaction"
	default:
		return "unknown"
	}
}

// Fault records a timeout observed at an I/O step.
//
// A fault invalidates the client's connection state immediately but is not
// raised past the transaction boundary; transactions terminate with their
// partial batch instead. Fault is the side channel that lets callers tell
// a connect fault from a mid-transaction fault after the fact.
type Fault struct {
	// Kind classifies where the fault occurred.
	Kind FaultKind
	// Err is the underlying I/O error, typically a timeout.
	Err error
	// At is when the fault was recorded.
	At time.Time
}
