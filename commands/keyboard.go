package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/6a-realm/go-sbb/sbb"
)

// Key presses the given HID keyboard keys in order.
func Key(ctx context.Context, c *sbb.Client, keys ...int) error {
	return ack(ctx, c, keyCommand("key", keys))
}

// KeyMod presses modified keys, passed as alternating key/modifier pairs.
func KeyMod(ctx context.Context, c *sbb.Client, pairs ...int) error {
	if len(pairs)%2 != 0 {
		return errors.New("keyMod requires key/modifier pairs")
	}

	return ack(ctx, c, keyCommand("keyMod", pairs))
}

// KeyMulti presses the given HID keyboard keys simultaneously.
func KeyMulti(ctx context.Context, c *sbb.Client, keys ...int) error {
	return ack(ctx, c, keyCommand("keyMulti", keys))
}

func keyCommand(verb string, keys []int) string {
	var b strings.Builder
	b.WriteString(verb)
	for _, key := range keys {
		fmt.Fprintf(&b, " %d", key)
	}

	return b.String()
}
