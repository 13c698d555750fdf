package controllers

import (
	"github.com/ozgurweb/sitepanel/internal/app/services"
)

// Controllers bundles every HTTP controller for route wiring.
type Controllers struct {
	Blogs    *ContentController
	Services *ContentController
	Abouts   *ContentController
	Courses  *TitleController
	Keywords *TitleController
	Seo      *SeoController
	Sliders  *SliderController
	Inbox    *InboxController
	Auth     *AuthController
}

// NewControllers creates all controllers over the given services.
func NewControllers(svcs *services.Services) *Controllers {
	return &Controllers{
		Blogs:    NewContentController(svcs.Blogs),
		Services: NewContentController(svcs.Services),
		Abouts:   NewContentController(svcs.Abouts),
		Courses:  NewTitleController(svcs.Courses),
		Keywords: NewTitleController(svcs.Keywords),
		Seo:      NewSeoController(svcs.Seo),
		Sliders:  NewSliderController(svcs.Sliders),
		Inbox:    NewInboxController(svcs.Inbox),
		Auth:     NewAuthController(svcs.Auth),
	}
}
