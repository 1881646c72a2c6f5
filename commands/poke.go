package commands

import (
	"context"
	"fmt"

	"github.com/6a-realm/go-sbb/sbb"
)

// Poke writes data at the given address relative to the heap.
func Poke(ctx context.Context, c *sbb.Client, address, data uint64) error {
	return ack(ctx, c, fmt.Sprintf("poke %x %x", address, data))
}

// PokeAbsolute writes data at the given absolute address.
func PokeAbsolute(ctx context.Context, c *sbb.Client, address, data uint64) error {
	return ack(ctx, c, fmt.Sprintf("pokeAbsolute %x %x", address, data))
}

// PokeMain writes data at the given address relative to NSOMain.
func PokeMain(ctx context.Context, c *sbb.Client, address, data uint64) error {
	return ack(ctx, c, fmt.Sprintf("pokeMain %x %x", address, data))
}
