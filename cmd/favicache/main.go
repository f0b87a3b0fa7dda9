// Command favicache resolves site favicons into a local content-addressed cache.
package main

import (
	"runtime"

	"github.com/bnema/favicache/internal/cli/cmd"
	"github.com/bnema/favicache/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})

	cmd.Execute()
}
