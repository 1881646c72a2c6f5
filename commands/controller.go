package commands

import (
	"context"
	"fmt"

	"github.com/6a-realm/go-sbb/sbb"
)

// Button names accepted by the controller commands.
const (
	ButtonA       = "A"
	ButtonB       = "B"
	ButtonX       = "X"
	ButtonY       = "Y"
	ButtonL       = "L"
	ButtonR       = "R"
	ButtonZL      = "ZL"
	ButtonZR      = "ZR"
	ButtonPlus    = "PLUS"
	ButtonMinus   = "MINUS"
	ButtonLStick  = "LSTICK"
	ButtonRStick  = "RSTICK"
	ButtonHome    = "HOME"
	ButtonCapture = "CAPTURE"
	ButtonDUp     = "DUP"
	ButtonDDown   = "DDOWN"
	ButtonDLeft   = "DLEFT"
	ButtonDRight  = "DRIGHT"
)

// Stick sides accepted by SetStick.
const (
	StickLeft  = "LEFT"
	StickRight = "RIGHT"
)

// Press holds down the given controller button until it is released.
func Press(ctx context.Context, c *sbb.Client, button string) error {
	return ack(ctx, c, fmt.Sprintf("press %s", button))
}

// Release releases a held controller button.
func Release(ctx context.Context, c *sbb.Client, button string) error {
	return ack(ctx, c, fmt.Sprintf("release %s", button))
}

// Click presses and releases the given controller button.
func Click(ctx context.Context, c *sbb.Client, button string) error {
	return ack(ctx, c, fmt.Sprintf("click %s", button))
}

// SetStick moves the given analog stick. Axis values range from -0x8000
// to 0x7FFF.
func SetStick(ctx context.Context, c *sbb.Client, side string, x, y int) error {
	return ack(ctx, c, fmt.Sprintf("setStick %s %d %d", side, x, y))
}

// ClickSeq runs a comma-separated click sequence, e.g. "A,W1000,B" to
// click A, wait one second, then click B. The command streams until the
// agent signals completion, so it blocks for the sequence's duration.
func ClickSeq(ctx context.Context, c *sbb.Client, seq string) error {
	return ack(ctx, c, fmt.Sprintf("clickSeq %s", seq))
}

// ClickCancel aborts a running click sequence.
func ClickCancel(ctx context.Context, c *sbb.Client) error {
	return ack(ctx, c, "clickCancel")
}

// DetachController detaches the agent's virtual controller so a physical
// controller can take over.
func DetachController(ctx context.Context, c *sbb.Client) error {
	return ack(ctx, c, "detachController")
}
