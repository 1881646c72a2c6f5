package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/6a-realm/go-sbb/sbb"
)

// PeekRange identifies a contiguous RAM region to read.
type PeekRange struct {
	// Offset is the address, relative to the base the command implies.
	Offset uint64
	// Size is the number of bytes to read.
	Size int
}

// Peek reads size bytes at the given address relative to the heap and
// returns them as a hex string.
//
// The agent's command table spells this command "peak".
func Peek(ctx context.Context, c *sbb.Client, offset uint64, size int) (string, error) {
	return scalar(ctx, c, fmt.Sprintf("peak %x %d", offset, size))
}

// PeekAbsolute reads size bytes at the given absolute address and returns
// them as a hex string.
func PeekAbsolute(ctx context.Context, c *sbb.Client, offset uint64, size int) (string, error) {
	return scalar(ctx, c, fmt.Sprintf("peekAbsolute %x %d", offset, size))
}

// PeekMain reads size bytes at the given address relative to NSOMain and
// returns them as a hex string.
func PeekMain(ctx context.Context, c *sbb.Client, offset uint64, size int) (string, error) {
	return scalar(ctx, c, fmt.Sprintf("peekMain %x %d", offset, size))
}

// PeekMulti reads several heap-relative regions in one command and returns
// the concatenated hex string.
func PeekMulti(ctx context.Context, c *sbb.Client, ranges ...PeekRange) (string, error) {
	return scalar(ctx, c, multiPeekCommand("peekMulti", ranges))
}

// PeekAbsoluteMulti reads several absolute regions in one command and
// returns the concatenated hex string.
func PeekAbsoluteMulti(ctx context.Context, c *sbb.Client, ranges ...PeekRange) (string, error) {
	return scalar(ctx, c, multiPeekCommand("peekAbsoluteMulti", ranges))
}

// PeekMainMulti reads several NSOMain-relative regions in one command and
// returns the concatenated hex string.
func PeekMainMulti(ctx context.Context, c *sbb.Client, ranges ...PeekRange) (string, error) {
	return scalar(ctx, c, multiPeekCommand("peekMainMulti", ranges))
}

func multiPeekCommand(verb string, ranges []PeekRange) string {
	var b strings.Builder
	b.WriteString(verb)
	b.WriteByte(' ')
	for _, r := range ranges {
		// keep the trailing space the agent's parser expects
		fmt.Fprintf(&b, "%x %d ", r.Offset, r.Size)
	}

	return b.String()
}
