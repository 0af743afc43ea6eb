package git

import (
	"context"
	"errors"
	"strconv"
	"strings"

	gitkiterrors "gitkit.dev/gitkit/internal/errors"
)

// logFieldSep joins the pretty-format fields; it is not expected to
// appear inside any of them.
const logFieldSep = "|"

// logFormat yields hash, short hash, author name, author email,
// relative date and subject, one commit per line.
const logFormat = "%H|%h|%an|%ae|%ar|%s"

// Commit is one record of log output.
type Commit struct {
	Hash        string
	ShortHash   string
	AuthorName  string
	AuthorEmail string
	Date        string
	Subject     string
}

// parseLogOutput splits each line into the six log format fields,
// preserving line order. Lines that do not produce six fields are dropped.
func parseLogOutput(output string) []Commit {
	commits := []Commit{}
	if output == "" {
		return commits
	}
	for _, line := range strings.Split(output, "\n") {
		fields := strings.SplitN(line, logFieldSep, 6)
		if len(fields) != 6 {
			continue
		}
		commits = append(commits, Commit{
			Hash:        fields[0],
			ShortHash:   fields[1],
			AuthorName:  fields[2],
			AuthorEmail: fields[3],
			Date:        fields[4],
			Subject:     fields[5],
		})
	}
	return commits
}

// Log returns up to limit commits, newest first. A repository with no
// commits yields an empty slice, not an error.
func (c *Client) Log(ctx context.Context, limit int) ([]Commit, error) {
	output, err := c.run(ctx, "log", "--pretty=format:"+logFormat, "-n", strconv.Itoa(limit))
	if err != nil {
		var cmdErr *gitkiterrors.CommandFailedError
		if errors.As(err, &cmdErr) && strings.Contains(cmdErr.Stderr, "does not have any commits") {
			return []Commit{}, nil
		}
		return nil, err
	}
	return parseLogOutput(output), nil
}
