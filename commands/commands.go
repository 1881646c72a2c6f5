package commands

import (
	"context"

	"github.com/6a-realm/go-sbb/sbb"
)

// scalar sends one command and projects the response as a single line.
func scalar(ctx context.Context, c *sbb.Client, command string) (string, error) {
	res, err := c.Do(ctx, command)
	if err != nil {
		return "", err
	}

	return res.Scalar(), nil
}

// ack sends one command that is acknowledged by echo alone.
func ack(ctx context.Context, c *sbb.Client, command string) error {
	_, err := c.Do(ctx, command)
	return err
}
