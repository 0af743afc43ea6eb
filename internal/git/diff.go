package git

import (
	"context"
	"fmt"
)

// Diff returns the unified diff of unstaged changes, optionally limited
// to the given paths. Output is raw, trailing newline included.
func (c *Client) Diff(ctx context.Context, paths ...string) (string, error) {
	return c.diff(ctx, false, paths)
}

// StagedDiff returns the unified diff of staged changes.
func (c *Client) StagedDiff(ctx context.Context, paths ...string) (string, error) {
	return c.diff(ctx, true, paths)
}

func (c *Client) diff(ctx context.Context, cached bool, paths []string) (string, error) {
	args := []string{"diff"}
	if cached {
		args = append(args, "--cached")
	}
	if len(paths) > 0 {
		args = append(args, "--")
		args = append(args, paths...)
	}
	output, err := c.runRaw(ctx, args...)
	if err != nil {
		return "", fmt.Errorf("failed to get diff: %w", err)
	}
	return output, nil
}
