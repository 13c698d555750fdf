package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles every store for dependency wiring.
type Repositories struct {
	Blogs    *ContentRepository
	Services *ContentRepository
	Abouts   *ContentRepository
	Courses  *TitleRepository
	Keywords *TitleRepository
	Seo      *SeoRepository
	Sliders  *SliderRepository
	Contacts *ContactRepository
	Bookings *BookingRepository
	Users    *UserRepository
}

// NewRepositories creates all repositories over one connection pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Blogs:    NewContentRepository(db, "blogs"),
		Services: NewContentRepository(db, "services"),
		Abouts:   NewContentRepository(db, "abouts"),
		Courses:  NewTitleRepository(db, "courses"),
		Keywords: NewTitleRepository(db, "keywords"),
		Seo:      NewSeoRepository(db),
		Sliders:  NewSliderRepository(db),
		Contacts: NewContactRepository(db),
		Bookings: NewBookingRepository(db),
		Users:    NewUserRepository(db),
	}
}

// isDuplicateKeyError checks for a PostgreSQL unique violation.
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
