// Package version holds build information stamped in at link time:
//
//	go build -ldflags "-X github.com/rickgao/kalshi-calibration/internal/version.Version=1.0.0 \
//	                   -X github.com/rickgao/kalshi-calibration/internal/version.Commit=$(git rev-parse --short HEAD) \
//	                   -X github.com/rickgao/kalshi-calibration/internal/version.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/...
//
// Unstamped builds report "dev".
package version

var (
	Version   = "dev"     // semantic version
	Commit    = "unknown" // short git hash
	BuildTime = "unknown" // UTC, RFC 3339
)

// String returns "version (commit) built time".
func String() string {
	return Version + " (" + Commit + ") built " + BuildTime
}

// UserAgent returns the User-Agent sent with exchange API requests.
func UserAgent() string {
	return "kalshi-calibration/" + Version
}

// LogAttrs returns the build info as slog key/value pairs.
func LogAttrs() []any {
	return []any{"version", Version, "commit", Commit, "build_time", BuildTime}
}
