package entity

type ItineraryDay struct {
	ID            int64  `db:"id"`
	TourPackageID int64  `db:"tour_package_id"`
	DayNumber     int    `db:"day_number"`
	Title         string `db:"title"`
	Description   string `db:"description"`
	LodgeID       *int64 `db:"lodge_id"`
	Meals         string `db:"meals"`
}
