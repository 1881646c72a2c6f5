package commands

import (
	"context"
	"fmt"

	"github.com/6a-realm/go-sbb/sbb"
)

// DefaultFreezeInterval is the rewrite interval the agent uses when none
// is given, in milliseconds.
const DefaultFreezeInterval = 200

// Freeze repeatedly rewrites value at the given heap-relative address
// every interval milliseconds. An interval <= 0 selects
// DefaultFreezeInterval.
func Freeze(ctx context.Context, c *sbb.Client, address, value uint64, interval int) error {
	if interval <= 0 {
		interval = DefaultFreezeInterval
	}

	return ack(ctx, c, fmt.Sprintf("freeze %x %x %d", address, value, interval))
}

// Unfreeze stops rewriting the value at the given address.
func Unfreeze(ctx context.Context, c *sbb.Client, address uint64) error {
	return ack(ctx, c, fmt.Sprintf("unfreeze %x", address))
}

// FreezeCount returns the number of active freezes.
func FreezeCount(ctx context.Context, c *sbb.Client) (string, error) {
	return scalar(ctx, c, "freezeCount")
}

// FreezeClear removes all active freezes.
func FreezeClear(ctx context.Context, c *sbb.Client) error {
	return ack(ctx, c, "freezeClear")
}

// FreezePause suspends all active freezes without removing them.
func FreezePause(ctx context.Context, c *sbb.Client) error {
	return ack(ctx, c, "freezePause")
}

// FreezeUnpause resumes all paused freezes.
func FreezeUnpause(ctx context.Context, c *sbb.Client) error {
	return ack(ctx, c, "freezeUnpause")
}
