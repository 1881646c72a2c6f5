package commands

import (
	"context"
	"fmt"

	"github.com/6a-realm/go-sbb/sbb"
)

// GetTitleID returns the title ID of the running game.
func GetTitleID(ctx context.Context, c *sbb.Client) (string, error) {
	return scalar(ctx, c, "getTitleID")
}

// GetTitleVersion returns the version of the running game.
func GetTitleVersion(ctx context.Context, c *sbb.Client) (string, error) {
	return scalar(ctx, c, "getTitleVersion")
}

// GetSystemLanguage returns the device's language code.
func GetSystemLanguage(ctx context.Context, c *sbb.Client) (string, error) {
	return scalar(ctx, c, "getSystemLanguage")
}

// GetBuildID returns the build ID of the running game.
func GetBuildID(ctx context.Context, c *sbb.Client) (string, error) {
	return scalar(ctx, c, "getBuildID")
}

// GetHeapBase returns the heap base address as a hex string.
func GetHeapBase(ctx context.Context, c *sbb.Client) (string, error) {
	return scalar(ctx, c, "getHeapBase")
}

// GetMainNsoBase returns the NSOMain base address as a hex string.
func GetMainNsoBase(ctx context.Context, c *sbb.Client) (string, error) {
	return scalar(ctx, c, "getMainNsoBase")
}

// IsProgramRunning reports whether the program with the given ID is
// currently running.
func IsProgramRunning(ctx context.Context, c *sbb.Client, programID string) (bool, error) {
	res, err := scalar(ctx, c, fmt.Sprintf("isProgramRunning %s", programID))
	if err != nil {
		return false, err
	}

	return res == "1", nil
}

// Game queries metadata about the running game; metadata is one of
// "icon", "version", "rating", "author", "name".
func Game(ctx context.Context, c *sbb.Client, metadata string) (string, error) {
	return scalar(ctx, c, fmt.Sprintf("game %s", metadata))
}

// GetVersion returns the sys-botbase version running on the device.
func GetVersion(ctx context.Context, c *sbb.Client) (string, error) {
	return scalar(ctx, c, "getVersion")
}

// Charge returns the battery charge percentage.
func Charge(ctx context.Context, c *sbb.Client) (string, error) {
	return scalar(ctx, c, "charge")
}

// Configure sets an agent setting, e.g. Configure(ctx, c,
// "mainLoopSleepTime", "50").
func Configure(ctx context.Context, c *sbb.Client, name, value string) error {
	return ack(ctx, c, fmt.Sprintf("configure %s %s", name, value))
}
