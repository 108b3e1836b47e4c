package artifact

import (
	"path"
	"regexp"
	"strings"
)

// versionSuffix matches a trailing "-<version>" where the version is made
// of digits, dots and dashes, e.g. "jenkins-1.2.4" or "app-2.0-1".
var versionSuffix = regexp.MustCompile(`-([\d.\-]+)$`)

// ExtractVersion derives a version tag from an artifact location following
// the <name>-<version>.<ext> filename convention. The second return value
// is false when the filename encodes no parseable version; callers
// normalize that to the empty string rather than failing.
func ExtractVersion(location string) (string, bool) {
	base := path.Base(strings.ReplaceAll(location, "\\", "/"))
	if idx := strings.IndexAny(base, "?#"); idx >= 0 {
		base = base[:idx]
	}
	if idx := strings.LastIndexByte(base, '.'); idx > 0 {
		base = base[:idx]
	}

	match := versionSuffix.FindStringSubmatch(base)
	if match == nil {
		return "", false
	}
	return match[1], true
}
