package panel

// Resource descriptors for every managed collection. They mirror the forms
// the admin screens show for each one. Media collections require an image
// when adding; the server would fall back to the placeholder, but the admin
// screens never let a new record go out without one.
var (
	Blogs = Resource{
		Path:      "/api/blog",
		Fields:    []Field{{Name: "title", Required: true}, {Name: "description", Required: true}},
		Multipart: true,
		NeedsFile: true,
	}

	Services = Resource{
		Path:      "/api/service",
		Fields:    []Field{{Name: "title", Required: true}, {Name: "description", Required: true}},
		Multipart: true,
		NeedsFile: true,
	}

	Abouts = Resource{
		Path:      "/api/about",
		Fields:    []Field{{Name: "title", Required: true}, {Name: "description", Required: true}},
		Multipart: true,
		NeedsFile: true,
	}

	Courses = Resource{
		Path:   "/api/course",
		Fields: []Field{{Name: "title", Required: true}},
	}

	Keywords = Resource{
		Path:   "/api/keyword",
		Fields: []Field{{Name: "title", Required: true}},
	}

	Seo = Resource{
		Path: "/api/seo",
		Fields: []Field{
			{Name: "page", Required: true},
			{Name: "title", Required: true},
			{Name: "description", Required: true},
		},
	}

	Sliders = Resource{
		Path:      "/api/slider",
		Fields:    []Field{{Name: "title", Required: true}},
		Multipart: true,
		NeedsFile: true,
	}

	// Contacts and Bookings are read-only here; submissions come from
	// the public site, staff can only list and delete.
	Contacts = Resource{Path: "/api/contact"}
	Bookings = Resource{Path: "/api/booking"}
)
