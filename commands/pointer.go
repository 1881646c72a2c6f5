package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/6a-realm/go-sbb/sbb"
)

// PointerPeek follows a chain of pointer jumps and reads size bytes from
// the final address, returned as a hex string. Jumps may be negative.
func PointerPeek(ctx context.Context, c *sbb.Client, size int, jumps ...int64) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "pointerPeek %d", size)
	appendJumps(&b, jumps)

	return scalar(ctx, c, b.String())
}

// PointerPeekMulti follows several pointer chains in one command, reading
// size bytes from each final address.
func PointerPeekMulti(ctx context.Context, c *sbb.Client, size int, chains ...[]int64) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "pointerPeekMulti %d", size)
	for _, chain := range chains {
		appendJumps(&b, chain)
	}

	return scalar(ctx, c, b.String())
}

// Pointer follows a chain of pointer jumps and returns the final
// heap-relative address as a hex string.
func Pointer(ctx context.Context, c *sbb.Client, jumps ...int64) (string, error) {
	var b strings.Builder
	b.WriteString("pointer")
	appendJumps(&b, jumps)

	return scalar(ctx, c, b.String())
}

// PointerAll follows a chain of pointer jumps and returns the final
// absolute address as a hex string.
func PointerAll(ctx context.Context, c *sbb.Client, jumps ...int64) (string, error) {
	var b strings.Builder
	b.WriteString("pointerAll")
	appendJumps(&b, jumps)

	return scalar(ctx, c, b.String())
}

// PointerRelative follows a chain of pointer jumps and returns the final
// address with finalOffset applied, as a hex string.
func PointerRelative(ctx context.Context, c *sbb.Client, finalOffset int64, jumps ...int64) (string, error) {
	var b strings.Builder
	b.WriteString("pointerRelative")
	appendJumps(&b, jumps)
	fmt.Fprintf(&b, " %x", finalOffset)

	return scalar(ctx, c, b.String())
}

// PointerPoke follows a chain of pointer jumps and writes data at the
// final address.
func PointerPoke(ctx context.Context, c *sbb.Client, data uint64, jumps ...int64) error {
	var b strings.Builder
	fmt.Fprintf(&b, "pointerPoke %x", data)
	appendJumps(&b, jumps)

	return ack(ctx, c, b.String())
}

func appendJumps(b *strings.Builder, jumps []int64) {
	for _, jump := range jumps {
		fmt.Fprintf(b, " %x", jump)
	}
}
