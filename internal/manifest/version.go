package manifest

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// SupportedVersions is the range of manifest versions this build can read.
// Minor and patch bumps are additive; a new major breaks installers.
const SupportedVersions = "^1.0.0"

// CheckVersion returns an error if version is not valid semver or falls
// outside SupportedVersions. A leading "v" is tolerated.
func CheckVersion(version string) error {
	v, err := parseSemver(version)
	if err != nil {
		return fmt.Errorf("parsing manifest version %q: %w", version, err)
	}
	c, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return fmt.Errorf("parsing version constraint %q: %w", SupportedVersions, err)
	}
	if !c.Check(v) {
		return fmt.Errorf("manifest version %s is not supported (want %s)", v, SupportedVersions)
	}
	return nil
}

// CompareVersions compares two manifest versions.
// Returns -1 if a < b, 0 if equal, 1 if a > b.
func CompareVersions(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := parseSemver(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(version, "v"))
}
