// Package sbb implements a client for the sys-botbase remote automation
// agent: a line-oriented, request/response ASCII protocol spoken over a
// persistent TCP connection to an embedded device.
//
// The client owns a single shared connection and serializes all command
// traffic through it. Commands are newline-terminated ASCII lines; the
// agent acknowledges each command by echoing it verbatim. Commands whose
// name contains the "Seq" marker stream intermediate output lines and
// signal completion with a literal "done" line instead.
//
// Key behaviors:
//   - Lazy connection: the first call dials the device and runs the fixed
//     initialization handshake before the caller's commands.
//   - Serialized transactions: a capacity-1 gate admits one transaction at
//     a time; concurrent callers queue rather than interleave on the wire.
//   - Timeout faults: every read and write is bounded by the configured
//     timeout. A timeout mid-transaction forces the client back to the
//     Disconnected state and the call returns whatever partial output was
//     collected; the next call reconnects from scratch.
//   - Untyped results: responses project to acknowledged / scalar line /
//     ordered lines. Decoding payloads (hex blobs, numbers) is left to the
//     command layer in the commands package.
//
// Usage Example:
//
//	func main() {
//	    cfg, err := sbb.NewClientConfig("192.168.1.10", 6000,
//	        sbb.WithTimeout(2*time.Second),
//	        sbb.WithVerbose(true),
//	    )
//	    // ... handle error ...
//
//	    client, err := sbb.NewClient(cfg)
//	    // ... handle error ...
//	    defer client.Disconnect()
//
//	    // First call connects and runs the init handshake transparently.
//	    res, err := client.Do(ctx, "getVersion")
//	    // ... handle error ...
//	    fmt.Println(res.Scalar())
//	}
package sbb
