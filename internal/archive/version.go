package archive

import (
	"fmt"

	"golang.org/x/mod/semver"
)

// ToolVersion is stamped on every archived run.
// Bump the major version whenever a seed stops reproducing the same cases.
const ToolVersion = "v1.0.0"

// IsCompatibleVersion reports whether a run recorded by runVersion replays identically under
// toolVersion. Major versions must match; minor and patch may differ.
func IsCompatibleVersion(runVersion, toolVersion string) (bool, error) {
	if !semver.IsValid(runVersion) {
		return false, fmt.Errorf("invalid run version: %s", runVersion)
	}
	if !semver.IsValid(toolVersion) {
		return false, fmt.Errorf("invalid tool version: %s", toolVersion)
	}

	return semver.Major(runVersion) == semver.Major(toolVersion), nil
}
