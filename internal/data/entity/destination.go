package entity

type Destination struct {
	Base
	Slug        string `db:"slug"`
	Name        string `db:"name"`
	Country     string `db:"country"`
	Summary     string `db:"summary"`
	Description string `db:"description"`
	ImageURL    string `db:"image_url"`
}
