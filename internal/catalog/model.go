package catalog

import (
	"time"

	"github.com/WitAqua/website/internal/vercomp"
)

// OemEntry is one brand of the OEM inventory feed.
type OemEntry struct {
	Name    string      `json:"name"`
	Devices []OemDevice `json:"devices"`
}

type OemDevice struct {
	// Model is the device codename.
	Model string `json:"model"`
	Name  string `json:"name"`
}

// Builds is the build history feed, keyed by codename.
type Builds map[string][]BuildEntry

type BuildEntry struct {
	Date     string      `json:"date"`
	Datetime int64       `json:"datetime"`
	Version  string      `json:"version"`
	Files    []BuildFile `json:"files"`
}

type BuildFile struct {
	Date     string `json:"date"`
	Filename string `json:"filename"`
	Filepath string `json:"filepath"`
	SHA256   string `json:"sha256"`
	Size     int64  `json:"size"`
}

type Maintainer struct {
	Name   string `json:"name"`
	Github string `json:"github,omitempty"`
}

// Device is one listed model joined with its latest build. A Device with Datetime 0 has no
// builds yet and carries no size, checksum, filename or URLs.
type Device struct {
	Name                 string                 `json:"name"`
	Codename             string                 `json:"codename"`
	Brand                string                 `json:"brand"`
	Size                 int64                  `json:"size"`
	SHA256               string                 `json:"sha256"`
	Maintainer           Maintainer             `json:"maintainer"`
	DownloadURL          string                 `json:"downloadUrl"`
	ArchiveURL           string                 `json:"archiveUrl"`
	ImgsURL              string                 `json:"imgsUrl"`
	InstallURL           string                 `json:"installUrl"`
	Filename             string                 `json:"filename"`
	Datetime             int64                  `json:"datetime"`
	LatestAndroidVersion vercomp.AndroidVersion `json:"latestAndroidVersion"`
	Deprecated           bool                   `json:"deprecated"`
}

func (d Device) HasBuild() bool {
	return d.Datetime > 0
}

func (d Device) BuildTime() time.Time {
	return time.Unix(d.Datetime, 0).UTC()
}

// URLs holds the bases the derived download and wiki links are built from.
type URLs struct {
	DownloadBase string
	WikiBase     string
}
