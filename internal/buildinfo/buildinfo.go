package buildinfo

import "fmt"

// Version, Commit and Date are set at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for the window title and log.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Long is the -version output.
func Long() string {
	return fmt.Sprintf("wirecube %s (commit %s, built %s)", Version, Commit, Date)
}
