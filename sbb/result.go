package sbb

import "slices"

// Result is the projected outcome of one transaction.
//
// The projection is intentionally untyped; the client has no visibility
// into the semantic type of any command's output:
//   - zero response lines: the command(s) were acknowledged with no payload
//   - exactly one line: a scalar result
//   - multiple lines: an ordered sequence of lines, in arrival order
type Result struct {
	lines []string
}

func newResult(lines []string) Result {
	return Result{lines: lines}
}

// Acked reports whether the transaction produced no payload lines, i.e.
// the command(s) were acknowledged by echo alone.
func (r Result) Acked() bool { return len(r.lines) == 0 }

// IsScalar reports whether the transaction produced exactly one line.
func (r Result) IsScalar() bool { return len(r.lines) == 1 }

// Scalar returns the first response line, or the empty string when the
// transaction produced no payload.
func (r Result) Scalar() string {
	if len(r.lines) == 0 {
		return ""
	}
	return r.lines[0]
}

// Lines returns a copy of all response lines in arrival order.
func (r Result) Lines() []string {
	return slices.Clone(r.lines)
}

// Len returns the number of response lines.
func (r Result) Len() int { return len(r.lines) }

// Value returns the untyped projection: true for an acknowledged command
// with no payload, a string for a single line, and a []string for multiple
// lines.
func (r Result) Value() any {
	switch len(r.lines) {
	case 0:
		return true
	case 1:
		return r.lines[0]
	default:
		return slices.Clone(r.lines)
	}
}
