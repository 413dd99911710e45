package entity

type Lodge struct {
	Base
	Slug          string `db:"slug"`
	Name          string `db:"name"`
	Location      string `db:"location"`
	Description   string `db:"description"`
	ImageURL      string `db:"image_url"`
	DestinationID *int64 `db:"destination_id"`
}
