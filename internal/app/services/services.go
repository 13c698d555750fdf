package services

import (
	"github.com/ozgurweb/sitepanel/internal/app/repositories"
	"github.com/ozgurweb/sitepanel/internal/pkg/auth"
	"github.com/ozgurweb/sitepanel/internal/pkg/filestorage"
)

// Services bundles every service for dependency wiring.
type Services struct {
	Blogs    *ContentService
	Services *ContentService
	Abouts   *ContentService
	Courses  *TitleService
	Keywords *TitleService
	Seo      *SeoService
	Sliders  *SliderService
	Inbox    *InboxService
	Auth     *AuthService
}

// NewServices creates all services over the given repositories and storage.
func NewServices(repos *repositories.Repositories, storage filestorage.Storage, jwtService *auth.JWTService, blacklist *auth.TokenBlacklist, defaultImage string) *Services {
	return &Services{
		Blogs:    NewContentService(repos.Blogs, storage, "Blog", defaultImage),
		Services: NewContentService(repos.Services, storage, "Service", defaultImage),
		Abouts:   NewContentService(repos.Abouts, storage, "About", defaultImage),
		Courses:  NewTitleService(repos.Courses, "Course"),
		Keywords: NewTitleService(repos.Keywords, "Keyword"),
		Seo:      NewSeoService(repos.Seo),
		Sliders:  NewSliderService(repos.Sliders, storage, defaultImage),
		Inbox:    NewInboxService(repos.Contacts, repos.Bookings),
		Auth:     NewAuthService(repos.Users, jwtService, blacklist),
	}
}
