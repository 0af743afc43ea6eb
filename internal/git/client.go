package git

import (
	"context"
)

// Client exposes git operations against a single repository directory.
// A Client holds no mutable state: every method is one subprocess round
// trip, and concurrent calls are resolved by git's own index locking.
type Client struct {
	runner *CommandRunner
}

// NewClient creates a Client bound to the given repository directory.
func NewClient(dir string) *Client {
	return &Client{runner: NewCommandRunner(dir)}
}

// Dir returns the working directory the client is bound to.
func (c *Client) Dir() string {
	return c.runner.workingDir
}

// run executes a git command in the client's directory and returns trimmed stdout.
func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	return c.runner.Run(ctx, args...)
}

// runRaw executes a git command and returns stdout without trimming.
func (c *Client) runRaw(ctx context.Context, args ...string) (string, error) {
	return c.runner.RunRaw(ctx, args...)
}

// runLines executes a git command and returns stdout as lines.
func (c *Client) runLines(ctx context.Context, args ...string) ([]string, error) {
	return c.runner.RunLines(ctx, args...)
}

// Init initializes a new repository in the client's directory.
// initialBranch sets the name of the initial branch when non-empty.
func (c *Client) Init(ctx context.Context, initialBranch string) error {
	args := []string{"init"}
	if initialBranch != "" {
		args = append(args, "-b", initialBranch)
	}
	_, err := c.run(ctx, args...)
	return err
}
