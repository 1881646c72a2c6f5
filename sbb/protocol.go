package sbb

// Wire protocol constants for the sys-botbase agent.
//
// Commands are CR-LF terminated ASCII lines. Responses are LF terminated.
// The agent echoes every received command line verbatim; that echo is the
// acknowledgment. There is no framing beyond line boundaries, so streaming
// ("sequence") commands are detected heuristically by substring and their
// end is signaled by a sentinel line.
const (
	// DefaultPort is the TCP port sys-botbase listens on.
	DefaultPort = 6000

	// SequenceMarker flags a command as a multi-line/streaming command.
	// Presence of this substring anywhere in the command text means the
	// read loop must not stop at the command echo.
	SequenceMarker = "Seq"

	// SentinelDone is the literal line that ends a sequence command's
	// streamed output. It is a frame marker, never part of the result.
	SentinelDone = "done"

	// commandTerminator ends every command line on the wire.
	commandTerminator = "\r\n"
)

// initCommands is the fixed handshake executed once per new connection,
// before any caller-issued command: enable command echo and detach the
// device's virtual controller. The second literal keeps the agent's own
// spelling of the command.
var initCommands = []string{"configure echoCommands 1", "detatchController"}
