package version

// Set at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func Full() string {
	if Commit == "none" {
		return Version
	}
	return Version + " (" + Commit + ")"
}
