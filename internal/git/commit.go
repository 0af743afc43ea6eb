package git

import (
	"context"
	"errors"
	"regexp"
	"strings"

	gitkiterrors "gitkit.dev/gitkit/internal/errors"
)

// commitHashPattern matches the bracketed short hash in git's
// human-readable commit confirmation, e.g. "[main abc1234] subject" or
// "[main (root-commit) abc1234] subject".
var commitHashPattern = regexp.MustCompile(`\[[^\]]*\s([0-9a-f]{4,40})\]`)

// identityPhrases are the stderr fragments git emits when committing
// without user.name/user.email configured. Substring sniffing is fragile
// across git versions and locales; it stays a best-effort heuristic until
// git offers a structured error channel.
var identityPhrases = []string{
	"Please tell me who you are",
	"user.name",
	"user.email",
	"empty ident",
}

// CommitOptions contains options for creating a commit.
type CommitOptions struct {
	// Author overrides the commit author ("Name <email>" form).
	Author string
}

// extractCommitHash pulls the short hash out of a commit confirmation
// line. Output of an unrecognized shape is returned verbatim; re-parsing
// that fallback yields itself.
func extractCommitHash(output string) string {
	match := commitHashPattern.FindStringSubmatch(output)
	if match == nil {
		return output
	}
	return match[1]
}

// isIdentityError reports whether stderr references missing identity
// configuration.
func isIdentityError(stderr string) bool {
	for _, phrase := range identityPhrases {
		if strings.Contains(stderr, phrase) {
			return true
		}
	}
	return false
}

// Commit records the staged changes with the given message and returns
// the short hash of the new commit. Staging is a separate call
// (StageFiles); stage-then-commit is not atomic. A failure caused by
// missing identity configuration is reclassified as
// IdentityNotConfiguredError with remediation instructions.
func (c *Client) Commit(ctx context.Context, message string, opts CommitOptions) (string, error) {
	args := []string{"commit", "-m", message}
	if opts.Author != "" {
		args = append(args, "--author", opts.Author)
	}

	output, err := c.run(ctx, args...)
	if err != nil {
		var cmdErr *gitkiterrors.CommandFailedError
		if errors.As(err, &cmdErr) && isIdentityError(cmdErr.Stderr) {
			return "", gitkiterrors.NewIdentityNotConfiguredError(cmdErr.Stderr)
		}
		return "", err
	}

	return extractCommitHash(output), nil
}
