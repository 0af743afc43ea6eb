package git

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	gitkiterrors "gitkit.dev/gitkit/internal/errors"
)

// NoCommitsSentinel is the fixed value reported as the last commit
// summary when the repository has no commits yet.
const NoCommitsSentinel = "No commits yet"

// Status is a snapshot of the working tree as reported by one status query.
// All slices preserve git's output order.
type Status struct {
	Branch     string
	Staged     []string
	Unstaged   []string
	Untracked  []string
	LastCommit string
	IsRepo     bool
	Message    string
}

// statusParser translates one porcelain format version into a Status.
// Parsers are keyed by format version so a future porcelain v3 can be
// added without touching the call sites.
type statusParser interface {
	parse(output string) *Status
}

var statusParsers = map[string]statusParser{
	"v2": porcelainV2Parser{},
}

// Porcelain v2 line markers
const (
	branchHeadPrefix = "# branch.head "
	changedPrefix    = "1 "
	renamedPrefix    = "2 "
	untrackedPrefix  = "? "
)

// porcelainV2Parser parses `git status --porcelain=v2 --branch` output.
type porcelainV2Parser struct{}

func (porcelainV2Parser) parse(output string) *Status {
	status := &Status{
		Staged:    []string{},
		Unstaged:  []string{},
		Untracked: []string{},
	}

	for _, line := range strings.Split(output, "\n") {
		switch {
		case strings.HasPrefix(line, branchHeadPrefix):
			status.Branch = strings.TrimPrefix(line, branchHeadPrefix)

		case strings.HasPrefix(line, changedPrefix):
			// 1 <XY> <sub> <mH> <mI> <mW> <hH> <hI> <path>
			fields := strings.Split(strings.TrimPrefix(line, changedPrefix), "\t")
			path := fields[len(fields)-1]
			if len(fields) == 1 {
				// The ordinary change line carries no tab; the path is
				// the trailing space-separated token.
				if tokens := strings.Fields(path); len(tokens) > 0 {
					path = tokens[len(tokens)-1]
				}
			}
			// Only modification codes are classified, and only as
			// unstaged; the staged list is never populated. This
			// mirrors the upstream behavior exactly (see DESIGN.md).
			if strings.HasPrefix(fields[0], "M") {
				status.Unstaged = append(status.Unstaged, path)
			}

		case strings.HasPrefix(line, renamedPrefix):
			// 2 <XY> ... <path>\t<origPath>; the new path is the
			// trailing token of the first tab field.
			fields := strings.Split(line, "\t")
			switch {
			case len(fields) >= 3:
				status.Unstaged = append(status.Unstaged, fields[2])
			case len(fields) == 2:
				tokens := strings.Fields(fields[0])
				status.Unstaged = append(status.Unstaged, tokens[len(tokens)-1])
			}

		case strings.HasPrefix(line, untrackedPrefix):
			status.Untracked = append(status.Untracked, strings.TrimPrefix(line, untrackedPrefix))
		}
	}

	return status
}

// Status reports the current state of the repository: branch, staged,
// unstaged and untracked paths, and the last commit subject. When the
// status query fails because the directory holds no repository marker,
// the returned Status has IsRepo false and a Message instead of an error.
func (c *Client) Status(ctx context.Context) (*Status, error) {
	output, err := c.run(ctx, "status", "--porcelain=v2", "--branch")
	if err != nil {
		dir := c.Dir()
		if dir == "" {
			dir = "."
		}
		if _, statErr := os.Stat(filepath.Join(dir, ".git")); os.IsNotExist(statErr) {
			return &Status{
				IsRepo:  false,
				Message: gitkiterrors.NewNotARepositoryError(dir).Error(),
			}, nil
		}
		// The marker exists, so the failure is something else entirely.
		return nil, err
	}

	status := statusParsers["v2"].parse(output)
	status.IsRepo = true

	subject, err := c.run(ctx, "log", "-1", "--pretty=format:%s")
	if err != nil || subject == "" {
		status.LastCommit = NoCommitsSentinel
	} else {
		status.LastCommit = subject
	}

	return status, nil
}
