package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/6a-realm/go-sbb/sbb"
)

// Touch taps the screen at the given coordinates, passed as alternating
// x y pairs in screen pixels (1280x720).
func Touch(ctx context.Context, c *sbb.Client, coordinates ...int) error {
	return ack(ctx, c, coordinateCommand("touch", coordinates))
}

// TouchHold holds a touch at (x, y) for the given number of milliseconds.
func TouchHold(ctx context.Context, c *sbb.Client, x, y, milliseconds int) error {
	return ack(ctx, c, fmt.Sprintf("touchHold %d %d %d", x, y, milliseconds))
}

// TouchDraw drags a touch through the given coordinates, passed as
// alternating x y pairs.
func TouchDraw(ctx context.Context, c *sbb.Client, coordinates ...int) error {
	return ack(ctx, c, coordinateCommand("touchDraw", coordinates))
}

// TouchCancel aborts a running touch sequence.
func TouchCancel(ctx context.Context, c *sbb.Client) error {
	return ack(ctx, c, "touchCancel")
}

func coordinateCommand(verb string, coordinates []int) string {
	var b strings.Builder
	b.WriteString(verb)
	for _, coordinate := range coordinates {
		fmt.Fprintf(&b, " %d", coordinate)
	}

	return b.String()
}
