// Package version reports the uconv build version.
package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// devVersion is reported by builds without release ldflags.
const devVersion = "0.0.0-dev"

// version is set at build time:
//
//	go build -ldflags "-X github.com/rshade/uconv/pkg/version.version=1.2.3"
//
//nolint:gochecknoglobals // Overridden by ldflags.
var version = devVersion

// GetVersion returns the build version without a leading "v".
func GetVersion() string {
	return strings.TrimPrefix(version, "v")
}

// Parse parses a version string such as "1.2.3" or "v1.2.3-rc.1".
func Parse(v string) (*semver.Version, error) {
	parsed, err := semver.NewVersion(v)
	if err != nil {
		return nil, fmt.Errorf("invalid version %q: %w", v, err)
	}
	return parsed, nil
}
