package history

import (
	"fmt"

	"golang.org/x/mod/semver"
)

// Version is the procgen release. Ledgers written by a different major
// version are refused.
const Version = "v1.0.0"

// IsCompatibleVersion reports whether two versions share a major version.
func IsCompatibleVersion(stored, current string) (bool, error) {
	if !semver.IsValid(stored) {
		return false, fmt.Errorf("invalid stored version: %s", stored)
	}
	if !semver.IsValid(current) {
		return false, fmt.Errorf("invalid current version: %s", current)
	}
	return semver.Major(stored) == semver.Major(current), nil
}
