package helper

import (
	"github.com/Masterminds/semver/v3"
	"github.com/sirupsen/logrus"
)

const DefaultVersion = "1.0.0"

// ResolveVersion normalizes a build-injected version string. Anything that
// is not a semantic version falls back to DefaultVersion.
func ResolveVersion(raw string) string {
	if raw == "" {
		return DefaultVersion
	}

	v, err := semver.NewVersion(raw)
	if err != nil {
		logrus.Warnf("invalid version %q, using %s: %v", raw, DefaultVersion, err)
		return DefaultVersion
	}

	return v.String()
}
