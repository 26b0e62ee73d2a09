package catalog

import (
	"context"
	"strings"

	"github.com/WitAqua/website/internal/config"
	"github.com/WitAqua/website/internal/pkg/errs"
	"github.com/WitAqua/website/internal/vercomp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	FeedOems   = "OEMs"
	FeedBuilds = "builds"
)

// JSONFetcher is the subset of the upstream client the builder needs.
type JSONFetcher interface {
	GetJSON(ctx context.Context, feed, url string, dest any) error
}

type Builder struct {
	logger    *zap.Logger
	fetcher   JSONFetcher
	oemsURL   string
	buildsURL string
	urls      URLs
}

func NewBuilder(logger *zap.Logger, fetcher JSONFetcher, conf *config.Config) *Builder {
	return &Builder{
		logger:    logger,
		fetcher:   fetcher,
		oemsURL:   conf.Upstream.OemsURL,
		buildsURL: conf.Upstream.BuildsURL,
		urls: URLs{
			DownloadBase: conf.Site.DownloadBase,
			WikiBase:     conf.Site.WikiBase,
		},
	}
}

// Fetch downloads the OEM inventory and the build history concurrently and joins them.
// Any failure of either feed fails the whole call with errs.ErrFetchDeviceData.
func (b *Builder) Fetch(ctx context.Context) ([]Device, error) {
	var (
		oems   []OemEntry
		builds Builds
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return b.fetcher.GetJSON(gctx, FeedOems, b.oemsURL, &oems)
	})
	g.Go(func() error {
		return b.fetcher.GetJSON(gctx, FeedBuilds, b.buildsURL, &builds)
	})

	if err := g.Wait(); err != nil {
		b.logger.Error("Error fetching device data",
			zap.Error(err),
		)
		return nil, errs.ErrFetchDeviceData.Wrap(err)
	}

	devices := Build(oems, builds, b.urls)
	b.logger.Debug("Device catalog built",
		zap.Int("oems", len(oems)),
		zap.Int("codenames with builds", len(builds)),
		zap.Int("devices", len(devices)),
	)
	return devices, nil
}

type latestBuild struct {
	datetime int64
	filename string
	filepath string
	size     int64
	sha256   string
	version  vercomp.AndroidVersion
}

// latestBuilds picks, per codename, the entry with the greatest datetime (the first one in
// input order on ties) and summarises its first file. Codenames without entries or whose
// latest entry has no files are left out.
func latestBuilds(builds Builds) map[string]latestBuild {
	latest := make(map[string]latestBuild, len(builds))
	for codename, entries := range builds {
		if len(entries) == 0 {
			continue
		}
		best := entries[0]
		for _, e := range entries[1:] {
			if e.Datetime > best.Datetime {
				best = e
			}
		}
		if len(best.Files) == 0 {
			continue
		}
		file := best.Files[0]
		latest[codename] = latestBuild{
			datetime: best.Datetime,
			filename: file.Filename,
			filepath: file.Filepath,
			size:     file.Size,
			sha256:   file.SHA256,
			version:  vercomp.FromFilepath(file.Filepath),
		}
	}
	return latest
}

// Build joins the inventory with the build history, one Device per listed model, sorted by
// Android version (newest first), brand and name. Inputs are not modified.
func Build(oems []OemEntry, builds Builds, urls URLs) []Device {
	var (
		latest = latestBuilds(builds)
		total  int
	)
	for _, oem := range oems {
		total += len(oem.Devices)
	}

	devices := make([]Device, 0, total)
	for _, oem := range oems {
		for _, dev := range oem.Devices {
			d := Device{
				Name:     dev.Name,
				Codename: dev.Model,
				Brand:    oem.Name,
			}
			if l, ok := latest[dev.Model]; ok {
				d.Size = l.size
				d.SHA256 = l.sha256
				d.Filename = l.filename
				d.Datetime = l.datetime
				d.LatestAndroidVersion = l.version
				d.DownloadURL = urls.DownloadBase + "/builds" + l.filepath
				d.ArchiveURL = urls.DownloadBase + "/builds/" + l.version.String() + "/" + dev.Model
				d.ImgsURL = urls.DownloadBase + "/builds" + directory(l.filepath)
				d.InstallURL = urls.WikiBase + "/devices/" + dev.Model
			}
			devices = append(devices, d)
		}
	}

	sortDevices(devices)
	return devices
}

// directory returns p up to and including its last slash.
func directory(p string) string {
	return p[:strings.LastIndex(p, "/")+1]
}
