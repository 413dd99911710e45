package request

type TourPackageRequest struct {
	Slug          string  `json:"slug" validate:"required,slug,max=120"`
	Title         string  `json:"title" validate:"required,max=200"`
	Summary       string  `json:"summary" validate:"max=500"`
	Description   string  `json:"description"`
	DurationDays  int     `json:"duration_days" validate:"min=1,max=60"`
	PriceFrom     float64 `json:"price_from" validate:"min=0"`
	Currency      string  `json:"currency" validate:"omitempty,len=3"`
	ImageURL      string  `json:"image_url" validate:"omitempty,url"`
	DestinationID *int64  `json:"destination_id,omitempty"`
	Featured      bool    `json:"featured"`
	Published     bool    `json:"published"`
}

// TourPackageUpdateRequest is a partial update; nil fields keep their value.
type TourPackageUpdateRequest struct {
	Slug          *string  `json:"slug,omitempty" validate:"omitempty,slug,max=120"`
	Title         *string  `json:"title,omitempty" validate:"omitempty,max=200"`
	Summary       *string  `json:"summary,omitempty" validate:"omitempty,max=500"`
	Description   *string  `json:"description,omitempty"`
	DurationDays  *int     `json:"duration_days,omitempty" validate:"omitempty,min=1,max=60"`
	PriceFrom     *float64 `json:"price_from,omitempty" validate:"omitempty,min=0"`
	Currency      *string  `json:"currency,omitempty" validate:"omitempty,len=3"`
	ImageURL      *string  `json:"image_url,omitempty" validate:"omitempty,url"`
	DestinationID *int64   `json:"destination_id,omitempty"`
	Featured      *bool    `json:"featured,omitempty"`
	Published     *bool    `json:"published,omitempty"`
}

type ItineraryDayRequest struct {
	DayNumber   int    `json:"day_number" validate:"min=1,max=60"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
	LodgeID     *int64 `json:"lodge_id,omitempty"`
	Meals       string `json:"meals" validate:"max=40"`
}

type ItineraryRequest struct {
	Days []ItineraryDayRequest `json:"days" validate:"dive"`
}

type LodgeRequest struct {
	Slug          string `json:"slug" validate:"required,slug,max=120"`
	Name          string `json:"name" validate:"required,max=200"`
	Location      string `json:"location" validate:"max=200"`
	Description   string `json:"description"`
	ImageURL      string `json:"image_url" validate:"omitempty,url"`
	DestinationID *int64 `json:"destination_id,omitempty"`
}

type LodgeUpdateRequest struct {
	Slug          *string `json:"slug,omitempty" validate:"omitempty,slug,max=120"`
	Name          *string `json:"name,omitempty" validate:"omitempty,max=200"`
	Location      *string `json:"location,omitempty" validate:"omitempty,max=200"`
	Description   *string `json:"description,omitempty"`
	ImageURL      *string `json:"image_url,omitempty" validate:"omitempty,url"`
	DestinationID *int64  `json:"destination_id,omitempty"`
}

type DestinationRequest struct {
	Slug        string `json:"slug" validate:"required,slug,max=120"`
	Name        string `json:"name" validate:"required,max=200"`
	Country     string `json:"country" validate:"required,max=120"`
	Summary     string `json:"summary" validate:"max=500"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
}

type DestinationUpdateRequest struct {
	Slug        *string `json:"slug,omitempty" validate:"omitempty,slug,max=120"`
	Name        *string `json:"name,omitempty" validate:"omitempty,max=200"`
	Country     *string `json:"country,omitempty" validate:"omitempty,max=120"`
	Summary     *string `json:"summary,omitempty" validate:"omitempty,max=500"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty" validate:"omitempty,url"`
}

type HeroRequest struct {
	Headline    string `json:"headline" validate:"required,max=200"`
	Subheadline string `json:"subheadline" validate:"max=400"`
	CtaLabel    string `json:"cta_label" validate:"max=60"`
	CtaHref     string `json:"cta_href" validate:"max=300"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
}
