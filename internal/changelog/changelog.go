// Package changelog loads the text shown in a device's changelog dialog.
package changelog

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/WitAqua/website/internal/catalog"
	"github.com/WitAqua/website/internal/config"
	"github.com/WitAqua/website/internal/upstream"
	"github.com/WitAqua/website/internal/vercomp"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const (
	FeedChanges = "changes"
	FeedLegacy  = "changelog"
)

var errNotArray = errors.New("changes feed is not an array")

type Fetcher interface {
	GetBytes(ctx context.Context, feed, url, accept string) ([]byte, error)
	GetText(ctx context.Context, feed, url string) (string, error)
}

type Service struct {
	logger     *zap.Logger
	fetcher    Fetcher
	mode       string
	changesURL string
	legacyURL  string
}

func NewService(logger *zap.Logger, fetcher Fetcher, conf *config.Config) *Service {
	return &Service{
		logger:     logger,
		fetcher:    fetcher,
		mode:       conf.Upstream.ChangelogMode,
		changesURL: conf.Upstream.ChangesURL,
		legacyURL:  conf.Upstream.LegacyChangelogURL,
	}
}

// ForDevice returns the changelog text for d. An empty string with a nil error means there is
// nothing new since d's latest build.
func (s *Service) ForDevice(ctx context.Context, d catalog.Device) (string, error) {
	if s.mode == config.ChangelogModeLegacy {
		return s.legacy(ctx, d.Codename)
	}
	return s.changes(ctx, d)
}

func (s *Service) legacy(ctx context.Context, codename string) (string, error) {
	u := s.legacyURL + "/" + url.PathEscape(codename)
	text, err := s.fetcher.GetText(ctx, FeedLegacy, u)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(text, "\n"), nil
}

func (s *Service) changes(ctx context.Context, d catalog.Device) (string, error) {
	body, err := s.fetcher.GetBytes(ctx, FeedChanges, s.changesURL, "application/json")
	if err != nil {
		return "", err
	}
	subjects, err := Since(body, d.Datetime, d.LatestAndroidVersion)
	if err != nil {
		s.logger.Error("Failed to read changes feed",
			zap.String("codename", d.Codename),
			zap.Error(err),
		)
		return "", &upstream.ParseError{Feed: FeedChanges, URL: s.changesURL, Err: err}
	}
	return strings.Join(subjects, "\n"), nil
}

// Since returns, in feed order, the subjects of changes submitted after the build time and
// merged on the branch of the given Android version.
func Since(feed []byte, buildTime int64, version vercomp.AndroidVersion) ([]string, error) {
	if !gjson.ValidBytes(feed) {
		return nil, errors.New("changes feed is not valid JSON")
	}
	result := gjson.ParseBytes(feed)
	if !result.IsArray() {
		return nil, errNotArray
	}

	var subjects []string
	result.ForEach(func(_, change gjson.Result) bool {
		if change.Get("submitted").Int() <= buildTime {
			return true
		}
		if !version.Matches(change.Get("branch").String()) {
			return true
		}
		subjects = append(subjects, change.Get("subject").String())
		return true
	})
	return subjects, nil
}
