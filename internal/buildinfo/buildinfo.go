// Package buildinfo carries the values stamped in by -ldflags, e.g.
//
//	-X sparkcalc/internal/buildinfo.Version=v1.2.0
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short is the compact identifier shown in the window title.
func Short() string {
	switch {
	case Version != "" && Version != "dev":
		return Version
	case Commit != "" && Commit != "unknown":
		if len(Commit) > 7 {
			return Commit[:7]
		}
		return Commit
	}
	return "dev"
}

// String is the full line printed by the version command.
func String() string {
	return fmt.Sprintf("sparkcalc %s (commit %s, built %s)", Version, Commit, Date)
}
