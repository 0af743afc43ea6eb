package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Branch is one entry of branch listing output.
type Branch struct {
	Name      string
	IsCurrent bool
}

// parseBranchLines parses `git branch` output lines: each loses its
// two-character prefix, a leading '*' marks the checked-out branch, and
// lines that trim to an empty name are dropped.
func parseBranchLines(lines []string) []Branch {
	branches := []Branch{}
	for _, line := range lines {
		isCurrent := strings.HasPrefix(line, "* ")
		name := line
		if len(line) >= 2 {
			name = line[2:]
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		branches = append(branches, Branch{Name: name, IsCurrent: isCurrent})
	}
	return branches
}

// ListBranches returns the repository's branches in git's output order.
// With all set, remote-tracking branches are included.
func (c *Client) ListBranches(ctx context.Context, all bool) ([]Branch, error) {
	args := []string{"branch"}
	if all {
		args = append(args, "-a")
	}
	lines, err := c.runLines(ctx, args...)
	if err != nil {
		return nil, err
	}
	return parseBranchLines(lines), nil
}

// CurrentBranch returns the name of the checked-out branch, or "HEAD"
// when detached.
func (c *Client) CurrentBranch(ctx context.Context) (string, error) {
	name, err := c.run(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}
	return name, nil
}

// BranchNames returns just the names from ListBranches.
func (c *Client) BranchNames(ctx context.Context) ([]string, error) {
	branches, err := c.ListBranches(ctx, false)
	if err != nil {
		return nil, err
	}
	return lo.Map(branches, func(b Branch, _ int) string { return b.Name }), nil
}

// CreateBranch creates and checks out a new branch.
func (c *Client) CreateBranch(ctx context.Context, name string) error {
	_, err := c.run(ctx, "checkout", "-b", name)
	if err != nil {
		return fmt.Errorf("failed to create branch %s: %w", name, err)
	}
	return nil
}

// SwitchBranch checks out an existing branch.
func (c *Client) SwitchBranch(ctx context.Context, name string) error {
	_, err := c.run(ctx, "checkout", name)
	if err != nil {
		return fmt.Errorf("failed to checkout branch %s: %w", name, err)
	}
	return nil
}
