// Package vercomp parses and orders Android platform versions as published in build file paths,
// e.g. "/15.2/x1/rom.zip" is Android 15 QPR2.
package vercomp

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"

	"github.com/Masterminds/semver/v3"
)

// compare result
const (
	Less    = -1
	Equal   = 0
	Greater = 1
)

var pathVersion = regexp.MustCompile(`^/(\d+)(?:\.(\d+))?/`)

// AndroidVersion is a major release plus an optional quarterly platform release (QPR) number.
// The zero value means unknown.
type AndroidVersion struct {
	Major uint64
	Minor uint64
}

// FromFilepath reads the version from the leading directory of a build file path. Paths without
// a numeric leading directory yield the zero version.
func FromFilepath(filepath string) AndroidVersion {
	m := pathVersion.FindStringSubmatch(filepath)
	if m == nil {
		return AndroidVersion{}
	}
	major, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return AndroidVersion{}
	}
	var minor uint64
	if m[2] != "" {
		minor, err = strconv.ParseUint(m[2], 10, 64)
		if err != nil {
			return AndroidVersion{}
		}
	}
	return AndroidVersion{Major: major, Minor: minor}
}

// Parse accepts labels such as "15", "15.2" or "15.0.0".
func Parse(label string) (AndroidVersion, error) {
	v, err := semver.NewVersion(label)
	if err != nil {
		return AndroidVersion{}, fmt.Errorf("parse android version %q: %w", label, err)
	}
	if v.Patch() != 0 || v.Prerelease() != "" {
		return AndroidVersion{}, fmt.Errorf("parse android version %q: unexpected patch or prerelease", label)
	}
	return AndroidVersion{Major: v.Major(), Minor: v.Minor()}, nil
}

func (v AndroidVersion) IsZero() bool {
	return v.Major == 0 && v.Minor == 0
}

func (v AndroidVersion) semver() *semver.Version {
	return semver.New(v.Major, v.Minor, 0, "", "")
}

// Compare orders by major then minor and returns Less, Equal or Greater.
func (v AndroidVersion) Compare(o AndroidVersion) int {
	return v.semver().Compare(o.semver())
}

// Matches reports whether a branch label such as "15.2" names this version.
func (v AndroidVersion) Matches(branch string) bool {
	if v.IsZero() {
		return false
	}
	b, err := Parse(branch)
	if err != nil {
		return false
	}
	return v.Compare(b) == Equal
}

// String is the label used in archive paths and branch names: "15.2", "14", "0".
func (v AndroidVersion) String() string {
	if v.Minor == 0 {
		return strconv.FormatUint(v.Major, 10)
	}
	return strconv.FormatUint(v.Major, 10) + "." + strconv.FormatUint(v.Minor, 10)
}

// Display renders the human label, "15 (QPR2)" or "14".
func (v AndroidVersion) Display() string {
	if v.Minor == 0 {
		return strconv.FormatUint(v.Major, 10)
	}
	return fmt.Sprintf("%d (QPR%d)", v.Major, v.Minor)
}

// MarshalJSON writes the label as a JSON string. As a number, 15.10 would read back as 15.1.
func (v AndroidVersion) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, v.String()), nil
}

func (v *AndroidVersion) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || string(b) == "0" || string(b) == "null" {
		*v = AndroidVersion{}
		return nil
	}
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
