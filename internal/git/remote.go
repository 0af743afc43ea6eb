package git

import (
	"context"
	"regexp"
	"strings"
)

// remoteLinePattern matches one `git remote -v` line:
// "<name>\t<url> (fetch|push)".
var remoteLinePattern = regexp.MustCompile(`^(\S+)\s+(\S+)\s+\((fetch|push)\)$`)

// Remote is one configured remote with its fetch and push URLs.
type Remote struct {
	Name     string
	FetchURL string
	PushURL  string
}

// parseRemoteOutput parses `git remote -v` output. Entries are
// deduplicated by name, preserving first-seen order, and the fetch and
// push URLs are both carried on the resulting record.
func parseRemoteOutput(output string) []Remote {
	byName := make(map[string]*Remote)
	order := []string{}

	for _, line := range strings.Split(output, "\n") {
		match := remoteLinePattern.FindStringSubmatch(strings.TrimSpace(line))
		if match == nil {
			continue
		}
		name, url, direction := match[1], match[2], match[3]

		remote, ok := byName[name]
		if !ok {
			remote = &Remote{Name: name}
			byName[name] = remote
			order = append(order, name)
		}
		switch direction {
		case "fetch":
			remote.FetchURL = url
		case "push":
			remote.PushURL = url
		}
	}

	remotes := make([]Remote, 0, len(order))
	for _, name := range order {
		remotes = append(remotes, *byName[name])
	}
	return remotes
}

// ListRemotes returns the configured remotes with their URLs.
func (c *Client) ListRemotes(ctx context.Context) ([]Remote, error) {
	output, err := c.run(ctx, "remote", "-v")
	if err != nil {
		return nil, err
	}
	return parseRemoteOutput(output), nil
}
