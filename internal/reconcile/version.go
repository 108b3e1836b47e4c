package reconcile

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"warctl/internal/artifact"
)

type versionMode int

const (
	versionAuto versionMode = iota
	versionNone
	versionExact
)

// VersionSpec selects how the effective desired version is derived.
//
// The zero value (auto) derives the version from the WAR filename.
// NoVersion suppresses version handling entirely. ExactVersion overrides
// whatever the filename encodes.
type VersionSpec struct {
	mode  versionMode
	value string
}

// AutoVersion derives the version from the WAR filename.
func AutoVersion() VersionSpec {
	return VersionSpec{}
}

// NoVersion suppresses version handling; the resolved version is always
// empty, even when the filename encodes one.
func NoVersion() VersionSpec {
	return VersionSpec{mode: versionNone}
}

// ExactVersion uses the supplied value verbatim.
func ExactVersion(version string) VersionSpec {
	return VersionSpec{mode: versionExact, value: version}
}

// Resolve computes the effective desired version for the given artifact
// location. A missing or unparseable filename version is never fatal; it
// normalizes to the empty string.
func (v VersionSpec) Resolve(warLocation string) string {
	switch v.mode {
	case versionNone:
		return ""
	case versionExact:
		return v.value
	default:
		version, ok := artifact.ExtractVersion(warLocation)
		if !ok {
			return ""
		}
		return version
	}
}

// UnmarshalYAML accepts the spec-file forms: omitted or empty for auto,
// false for none, any other scalar as an exact override.
func (v *VersionSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("version must be a scalar, got %s", node.Tag)
	}
	if node.Tag == "!!bool" {
		var suppress bool
		if err := node.Decode(&suppress); err != nil {
			return err
		}
		if suppress {
			*v = AutoVersion()
		} else {
			*v = NoVersion()
		}
		return nil
	}
	if node.Tag == "!!null" || node.Value == "" {
		*v = AutoVersion()
		return nil
	}
	*v = ExactVersion(node.Value)
	return nil
}

// MarshalYAML renders the spec back into its file form.
func (v VersionSpec) MarshalYAML() (interface{}, error) {
	switch v.mode {
	case versionNone:
		return false, nil
	case versionExact:
		return v.value, nil
	default:
		return nil, nil
	}
}
