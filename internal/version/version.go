package version

import "fmt"

// These variables are set at build time using ldflags.
// Example: go build -ldflags "-X github.com/pablasso/prdkanban/internal/version.Version=v1.0.0"
var (
	// Version is the semantic version of the application.
	Version = "dev"

	// CommitSHA is the git commit SHA at build time.
	CommitSHA = "unknown"

	// BuildDate is the date when the binary was built.
	BuildDate = "unknown"
)

// String returns a one-line description of the build.
func String() string {
	return fmt.Sprintf("prdkanban %s (commit %s, built %s)", Version, CommitSHA, BuildDate)
}
