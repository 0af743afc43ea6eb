package git

import (
	"context"
	"fmt"
)

// Clone clones the repository at url into path. It runs without a
// working directory since no repository exists yet.
func Clone(ctx context.Context, url, path string) error {
	_, err := NewCommandRunner("").Run(ctx, "clone", url, path)
	if err != nil {
		return fmt.Errorf("failed to clone %s: %w", url, err)
	}
	return nil
}

// Push pushes to the remote. branch is optional; when empty, git's
// configured upstream decides what is pushed.
func (c *Client) Push(ctx context.Context, remote, branch string) error {
	args := []string{"push", remote}
	if branch != "" {
		args = append(args, branch)
	}
	_, err := c.run(ctx, args...)
	if err != nil {
		return fmt.Errorf("failed to push to %s: %w", remote, err)
	}
	return nil
}

// Pull pulls from the remote. branch is optional.
func (c *Client) Pull(ctx context.Context, remote, branch string) error {
	args := []string{"pull", remote}
	if branch != "" {
		args = append(args, branch)
	}
	_, err := c.run(ctx, args...)
	if err != nil {
		return fmt.Errorf("failed to pull from %s: %w", remote, err)
	}
	return nil
}
