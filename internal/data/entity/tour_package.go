package entity

type TourPackage struct {
	Base
	Slug          string  `db:"slug"`
	Title         string  `db:"title"`
	Summary       string  `db:"summary"`
	Description   string  `db:"description"`
	DurationDays  int     `db:"duration_days"`
	PriceFrom     float64 `db:"price_from"`
	Currency      string  `db:"currency"`
	ImageURL      string  `db:"image_url"`
	DestinationID *int64  `db:"destination_id"`
	Featured      bool    `db:"featured"`
	Published     bool    `db:"published"`
}

// TourPackageRef is the short form of a package embedded in bookings.
type TourPackageRef struct {
	ID    int64  `db:"id"`
	Slug  string `db:"slug"`
	Title string `db:"title"`
}

// TourPackageFilter narrows public package listings.
type TourPackageFilter struct {
	FeaturedOnly    bool
	DestinationSlug string
	IncludeDrafts   bool
}
