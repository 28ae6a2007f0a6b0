package templates

import (
	"github.com/louisbranch/megamix/internal/services/admin/i18n"
	"github.com/louisbranch/megamix/internal/services/admin/notice"
)

// AppName is the product name shown in titles and the header.
const AppName = "MegaMix"

// PageContext provides shared layout context for admin pages.
type PageContext struct {
	Lang          string
	Loc           Localizer
	Title         string
	CurrentPath   string
	CurrentQuery  string
	Authenticated bool
	Notices       []notice.Notice
	Languages     []i18n.LanguageOption
}

// FullTitle is the document title for the page.
func (p PageContext) FullTitle() string {
	if p.Title == "" {
		return AppName
	}
	return p.Title + " · " + AppName
}
