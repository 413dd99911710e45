package response

import (
	"safari-booking/internal/data/entity"
	"safari-booking/pkg/utils"
)

type TourPackageResponse struct {
	ID              int64   `json:"id"`
	Slug            string  `json:"slug"`
	Title           string  `json:"title"`
	Summary         string  `json:"summary"`
	Description     string  `json:"description"`
	DescriptionHTML string  `json:"description_html"`
	DurationDays    int     `json:"duration_days"`
	PriceFrom       float64 `json:"price_from"`
	Currency        string  `json:"currency"`
	ImageURL        string  `json:"image_url"`
	DestinationID   *int64  `json:"destination_id"`
	Featured        bool    `json:"featured"`
	Published       bool    `json:"published"`
	CreatedAt       string  `json:"created_at,omitempty"`
	UpdatedAt       string  `json:"updated_at,omitempty"`
}

type ItineraryDayResponse struct {
	ID              int64  `json:"id"`
	TourPackageID   int64  `json:"tour_package_id"`
	DayNumber       int    `json:"day_number"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	DescriptionHTML string `json:"description_html"`
	LodgeID         *int64 `json:"lodge_id"`
	Meals           string `json:"meals"`
}

type PackageDetailResponse struct {
	TourPackageResponse
	Itinerary []ItineraryDayResponse `json:"itinerary"`
}

type LodgeResponse struct {
	ID              int64  `json:"id"`
	Slug            string `json:"slug"`
	Name            string `json:"name"`
	Location        string `json:"location"`
	Description     string `json:"description"`
	DescriptionHTML string `json:"description_html"`
	ImageURL        string `json:"image_url"`
	DestinationID   *int64 `json:"destination_id"`
	CreatedAt       string `json:"created_at,omitempty"`
	UpdatedAt       string `json:"updated_at,omitempty"`
}

type DestinationResponse struct {
	ID              int64  `json:"id"`
	Slug            string `json:"slug"`
	Name            string `json:"name"`
	Country         string `json:"country"`
	Summary         string `json:"summary"`
	Description     string `json:"description"`
	DescriptionHTML string `json:"description_html"`
	ImageURL        string `json:"image_url"`
	CreatedAt       string `json:"created_at,omitempty"`
	UpdatedAt       string `json:"updated_at,omitempty"`
}

type HeroResponse struct {
	ID          int64  `json:"id"`
	Headline    string `json:"headline"`
	Subheadline string `json:"subheadline"`
	CtaLabel    string `json:"cta_label"`
	CtaHref     string `json:"cta_href"`
	ImageURL    string `json:"image_url"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

type HomeResponse struct {
	Hero             HeroResponse          `json:"hero"`
	FeaturedPackages []TourPackageResponse `json:"featured_packages"`
	Destinations     []DestinationResponse `json:"destinations"`
}

func TourPackageToResponse(pkg *entity.TourPackage) TourPackageResponse {
	return TourPackageResponse{
		ID:              pkg.ID,
		Slug:            pkg.Slug,
		Title:           pkg.Title,
		Summary:         pkg.Summary,
		Description:     pkg.Description,
		DescriptionHTML: utils.RenderMarkdown(pkg.Description),
		DurationDays:    pkg.DurationDays,
		PriceFrom:       pkg.PriceFrom,
		Currency:        pkg.Currency,
		ImageURL:        pkg.ImageURL,
		DestinationID:   pkg.DestinationID,
		Featured:        pkg.Featured,
		Published:       pkg.Published,
		CreatedAt:       Timestamp(pkg.CreatedAt),
		UpdatedAt:       Timestamp(pkg.UpdatedAt),
	}
}

func TourPackagesToResponse(pkgs []*entity.TourPackage) []TourPackageResponse {
	out := make([]TourPackageResponse, 0, len(pkgs))
	for _, pkg := range pkgs {
		out = append(out, TourPackageToResponse(pkg))
	}
	return out
}

func ItineraryDayToResponse(day *entity.ItineraryDay) ItineraryDayResponse {
	return ItineraryDayResponse{
		ID:              day.ID,
		TourPackageID:   day.TourPackageID,
		DayNumber:       day.DayNumber,
		Title:           day.Title,
		Description:     day.Description,
		DescriptionHTML: utils.RenderMarkdown(day.Description),
		LodgeID:         day.LodgeID,
		Meals:           day.Meals,
	}
}

func ItineraryToResponse(days []*entity.ItineraryDay) []ItineraryDayResponse {
	out := make([]ItineraryDayResponse, 0, len(days))
	for _, day := range days {
		out = append(out, ItineraryDayToResponse(day))
	}
	return out
}

func LodgeToResponse(lodge *entity.Lodge) LodgeResponse {
	return LodgeResponse{
		ID:              lodge.ID,
		Slug:            lodge.Slug,
		Name:            lodge.Name,
		Location:        lodge.Location,
		Description:     lodge.Description,
		DescriptionHTML: utils.RenderMarkdown(lodge.Description),
		ImageURL:        lodge.ImageURL,
		DestinationID:   lodge.DestinationID,
		CreatedAt:       Timestamp(lodge.CreatedAt),
		UpdatedAt:       Timestamp(lodge.UpdatedAt),
	}
}

func LodgesToResponse(lodges []*entity.Lodge) []LodgeResponse {
	out := make([]LodgeResponse, 0, len(lodges))
	for _, lodge := range lodges {
		out = append(out, LodgeToResponse(lodge))
	}
	return out
}

func DestinationToResponse(dest *entity.Destination) DestinationResponse {
	return DestinationResponse{
		ID:              dest.ID,
		Slug:            dest.Slug,
		Name:            dest.Name,
		Country:         dest.Country,
		Summary:         dest.Summary,
		Description:     dest.Description,
		DescriptionHTML: utils.RenderMarkdown(dest.Description),
		ImageURL:        dest.ImageURL,
		CreatedAt:       Timestamp(dest.CreatedAt),
		UpdatedAt:       Timestamp(dest.UpdatedAt),
	}
}

func DestinationsToResponse(dests []*entity.Destination) []DestinationResponse {
	out := make([]DestinationResponse, 0, len(dests))
	for _, dest := range dests {
		out = append(out, DestinationToResponse(dest))
	}
	return out
}

func HeroToResponse(hero *entity.HeroContent) HeroResponse {
	return HeroResponse{
		ID:          hero.ID,
		Headline:    hero.Headline,
		Subheadline: hero.Subheadline,
		CtaLabel:    hero.CtaLabel,
		CtaHref:     hero.CtaHref,
		ImageURL:    hero.ImageURL,
		UpdatedAt:   Timestamp(hero.UpdatedAt),
	}
}

// Pointers adapts fallback values to the row-pointer form repositories return.
func Pointers[T any](values []T) []*T {
	out := make([]*T, len(values))
	for i := range values {
		out[i] = &values[i]
	}
	return out
}
