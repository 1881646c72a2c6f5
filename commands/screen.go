package commands

import (
	"context"

	"github.com/6a-realm/go-sbb/sbb"
)

// PixelPeek captures the current screen and returns it as one hex-encoded
// JPEG line. The line can be several hundred KiB; size the client's read
// buffer accordingly.
func PixelPeek(ctx context.Context, c *sbb.Client) (string, error) {
	return scalar(ctx, c, "pixelPeek")
}

// ScreenOff turns the device screen off.
func ScreenOff(ctx context.Context, c *sbb.Client) error {
	return ack(ctx, c, "screenOff")
}

// ScreenOn turns the device screen back on.
func ScreenOn(ctx context.Context, c *sbb.Client) error {
	return ack(ctx, c, "screenOn")
}
