// Package commands provides thin builders for the sys-botbase command
// catalog: one function per device command, each formatting a single
// command line and sending it through one client transaction.
//
// The wire strings are byte-compatible with the agent's command table,
// including the agent's own "peak" spelling for the heap-relative read.
// Addresses are formatted as bare hexadecimal, decimal quantities as
// decimal, exactly as the agent parses them.
//
// The builders stay untyped on purpose: read commands return the raw
// response line (usually a hex blob) and leave decoding to the caller;
// input and write commands return only an error. Connection management,
// serialization, and fault handling all live in the sbb package.
package commands
