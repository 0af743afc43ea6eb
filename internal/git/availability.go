package git

import (
	"context"
	"sync"
	"time"
)

// probeTimeout bounds the version query so a wedged git install cannot
// hang the caller.
const probeTimeout = 10 * time.Second

// probeGit reports whether the git binary answers a trivial version query.
var probeGit = sync.OnceValue(func() bool {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	_, err := NewCommandRunner("").Run(ctx, "--version")
	return err == nil
})

// IsAvailable reports whether the git executable is invocable at all.
// The underlying probe runs at most once per process; the result is
// cached for the process lifetime (written once by sync.OnceValue, read
// many times thereafter) and never invalidated. It never returns an error.
func IsAvailable() bool {
	return probeGit()
}
