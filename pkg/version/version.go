package version

// (potentially) set by makefile
var (
	Version   = "unknown"
	GitCommit = "unknown"
	BuildDate = "unknown"
)
