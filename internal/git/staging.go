package git

import (
	"context"
	"fmt"
)

// StageFiles stages the given paths for commit. With no paths, all
// changes in the working tree are staged.
func (c *Client) StageFiles(ctx context.Context, paths ...string) error {
	args := []string{"add"}
	if len(paths) == 0 {
		args = append(args, ".")
	} else {
		args = append(args, paths...)
	}
	_, err := c.run(ctx, args...)
	if err != nil {
		return fmt.Errorf("failed to stage files: %w", err)
	}
	return nil
}

// UnstageFiles removes the given paths from the index. With no paths,
// everything staged is unstaged.
func (c *Client) UnstageFiles(ctx context.Context, paths ...string) error {
	args := []string{"reset"}
	args = append(args, paths...)
	_, err := c.run(ctx, args...)
	if err != nil {
		return fmt.Errorf("failed to unstage files: %w", err)
	}
	return nil
}

// DiscardChanges discards working tree modifications to the given paths,
// or to every tracked file when no paths are given. Untracked files are
// left alone.
func (c *Client) DiscardChanges(ctx context.Context, paths ...string) error {
	args := []string{"checkout", "--"}
	if len(paths) == 0 {
		args = append(args, ".")
	} else {
		args = append(args, paths...)
	}
	_, err := c.run(ctx, args...)
	if err != nil {
		return fmt.Errorf("failed to discard changes: %w", err)
	}
	return nil
}
