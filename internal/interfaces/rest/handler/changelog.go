package handler

import (
	"context"
	"fmt"

	"github.com/WitAqua/website/internal/catalog"
	"github.com/WitAqua/website/internal/i18n"
	"github.com/WitAqua/website/internal/model"
	"go.uber.org/zap"
)

// changelogText never fails: load errors turn into the localized failure message.
func changelogText(ctx context.Context, logger *zap.Logger, source ChangelogSource, p i18n.Preferences, d catalog.Device) model.ChangelogResponseData {
	data := model.ChangelogResponseData{Codename: d.Codename}

	text, err := source.ForDevice(ctx, d)
	switch {
	case err != nil:
		logger.Error("Error fetching changelog",
			zap.String("codename", d.Codename),
			zap.Error(err),
		)
		data.Text = changelogFailed(p, d.Name, d.Codename)
		data.Failed = true
	case text == "":
		data.Text = p.T(i18n.NoNewChanges)
		data.NoChanges = true
	default:
		data.Text = text
	}
	return data
}

func changelogFailed(p i18n.Preferences, name, codename string) string {
	return fmt.Sprintf(p.T(i18n.ChangelogFailed), name, codename)
}
