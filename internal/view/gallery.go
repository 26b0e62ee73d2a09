package view

import (
	"strconv"

	"github.com/WitAqua/website/internal/config"
	"github.com/WitAqua/website/internal/i18n"
)

const screenshotCount = 7

type Highlight struct {
	Title       i18n.Key
	Description i18n.Key
}

var Highlights = []Highlight{
	{Title: i18n.HighlightPure, Description: i18n.HighlightPureD},
	{Title: i18n.HighlightPractical, Description: i18n.HighlightPracticalD},
	{Title: i18n.HighlightSmooth, Description: i18n.HighlightSmoothD},
	{Title: i18n.HighlightSecurity, Description: i18n.HighlightSecurityD},
	{Title: i18n.HighlightSimple, Description: i18n.HighlightSimpleD},
	{Title: i18n.HighlightThemes, Description: i18n.HighlightThemesD},
}

// Screenshots lists the gallery images, screenshot-1.png through screenshot-7.png under base.
func Screenshots(site config.SiteConfig) []string {
	shots := make([]string, 0, screenshotCount)
	for i := 1; i <= screenshotCount; i++ {
		shots = append(shots, site.ScreenshotBase+"/screenshot-"+strconv.Itoa(i)+".png")
	}
	return shots
}
