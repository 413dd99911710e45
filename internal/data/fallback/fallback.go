// Package fallback holds the static content served by public read endpoints
// when no database is configured or a database read fails.
package fallback

import (
	"fmt"

	"safari-booking/internal/data/entity"

	"github.com/spf13/viper"
)

// Set is read-only once constructed.
type Set struct {
	TourPackages []entity.TourPackage
	Itineraries  map[string][]entity.ItineraryDay // keyed by package slug
	Lodges       []entity.Lodge
	Destinations []entity.Destination
	Hero         entity.HeroContent
}

// Default returns the built-in set: no catalog content and a generic hero.
func Default() *Set {
	return &Set{
		TourPackages: []entity.TourPackage{},
		Itineraries:  map[string][]entity.ItineraryDay{},
		Lodges:       []entity.Lodge{},
		Destinations: []entity.Destination{},
		Hero: entity.HeroContent{
			Headline:    "Tailor-made safaris across East Africa",
			Subheadline: "Tell us how you want to travel and we will plan the rest.",
			CtaLabel:    "Plan your safari",
			CtaHref:     "/contact",
		},
	}
}

func (s *Set) PackageBySlug(slug string) *entity.TourPackage {
	for i := range s.TourPackages {
		if s.TourPackages[i].Slug == slug {
			pkg := s.TourPackages[i]
			return &pkg
		}
	}
	return nil
}

// ItineraryFor never returns nil so the JSON body is always an array.
func (s *Set) ItineraryFor(slug string) []entity.ItineraryDay {
	if days, ok := s.Itineraries[slug]; ok && days != nil {
		return days
	}
	return []entity.ItineraryDay{}
}

func (s *Set) LodgeBySlug(slug string) *entity.Lodge {
	for i := range s.Lodges {
		if s.Lodges[i].Slug == slug {
			lodge := s.Lodges[i]
			return &lodge
		}
	}
	return nil
}

func (s *Set) DestinationBySlug(slug string) *entity.Destination {
	for i := range s.Destinations {
		if s.Destinations[i].Slug == slug {
			dest := s.Destinations[i]
			return &dest
		}
	}
	return nil
}

// FeaturedPackages filters the fallback catalog the same way the home page
// query does.
func (s *Set) FeaturedPackages() []entity.TourPackage {
	featured := []entity.TourPackage{}
	for _, pkg := range s.TourPackages {
		if pkg.Featured {
			featured = append(featured, pkg)
		}
	}
	return featured
}

// ==================== FILE LOADING ====================

type fileSet struct {
	Packages     []filePackage     `mapstructure:"packages"`
	Lodges       []fileLodge       `mapstructure:"lodges"`
	Destinations []fileDestination `mapstructure:"destinations"`
	Hero         *fileHero         `mapstructure:"hero"`
}

type filePackage struct {
	Slug         string          `mapstructure:"slug"`
	Title        string          `mapstructure:"title"`
	Summary      string          `mapstructure:"summary"`
	Description  string          `mapstructure:"description"`
	DurationDays int             `mapstructure:"duration_days"`
	PriceFrom    float64         `mapstructure:"price_from"`
	Currency     string          `mapstructure:"currency"`
	ImageURL     string          `mapstructure:"image_url"`
	Featured     bool            `mapstructure:"featured"`
	Itinerary    []fileItinerary `mapstructure:"itinerary"`
}

type fileItinerary struct {
	DayNumber   int    `mapstructure:"day_number"`
	Title       string `mapstructure:"title"`
	Description string `mapstructure:"description"`
	Meals       string `mapstructure:"meals"`
}

type fileLodge struct {
	Slug        string `mapstructure:"slug"`
	Name        string `mapstructure:"name"`
	Location    string `mapstructure:"location"`
	Description string `mapstructure:"description"`
	ImageURL    string `mapstructure:"image_url"`
}

type fileDestination struct {
	Slug        string `mapstructure:"slug"`
	Name        string `mapstructure:"name"`
	Country     string `mapstructure:"country"`
	Summary     string `mapstructure:"summary"`
	Description string `mapstructure:"description"`
	ImageURL    string `mapstructure:"image_url"`
}

type fileHero struct {
	Headline    string `mapstructure:"headline"`
	Subheadline string `mapstructure:"subheadline"`
	CtaLabel    string `mapstructure:"cta_label"`
	CtaHref     string `mapstructure:"cta_href"`
	ImageURL    string `mapstructure:"image_url"`
}

// Load reads a YAML or JSON file (by extension) on top of Default. Records
// get synthetic ids in file order; missing sections stay empty.
func Load(path string) (*Set, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read fallback file %s: %w", path, err)
	}

	var file fileSet
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("decode fallback file %s: %w", path, err)
	}

	set := Default()

	for i, p := range file.Packages {
		pkgID := int64(i + 1)
		set.TourPackages = append(set.TourPackages, entity.TourPackage{
			Base:         entity.Base{ID: pkgID},
			Slug:         p.Slug,
			Title:        p.Title,
			Summary:      p.Summary,
			Description:  p.Description,
			DurationDays: p.DurationDays,
			PriceFrom:    p.PriceFrom,
			Currency:     p.Currency,
			ImageURL:     p.ImageURL,
			Featured:     p.Featured,
			Published:    true,
		})

		days := make([]entity.ItineraryDay, 0, len(p.Itinerary))
		for j, d := range p.Itinerary {
			dayNumber := d.DayNumber
			if dayNumber == 0 {
				dayNumber = j + 1
			}
			days = append(days, entity.ItineraryDay{
				ID:            int64(j + 1),
				TourPackageID: pkgID,
				DayNumber:     dayNumber,
				Title:         d.Title,
				Description:   d.Description,
				Meals:         d.Meals,
			})
		}
		set.Itineraries[p.Slug] = days
	}

	for i, l := range file.Lodges {
		set.Lodges = append(set.Lodges, entity.Lodge{
			Base:        entity.Base{ID: int64(i + 1)},
			Slug:        l.Slug,
			Name:        l.Name,
			Location:    l.Location,
			Description: l.Description,
			ImageURL:    l.ImageURL,
		})
	}

	for i, d := range file.Destinations {
		set.Destinations = append(set.Destinations, entity.Destination{
			Base:        entity.Base{ID: int64(i + 1)},
			Slug:        d.Slug,
			Name:        d.Name,
			Country:     d.Country,
			Summary:     d.Summary,
			Description: d.Description,
			ImageURL:    d.ImageURL,
		})
	}

	if file.Hero != nil {
		set.Hero = entity.HeroContent{
			Headline:    file.Hero.Headline,
			Subheadline: file.Hero.Subheadline,
			CtaLabel:    file.Hero.CtaLabel,
			CtaHref:     file.Hero.CtaHref,
			ImageURL:    file.Hero.ImageURL,
		}
	}

	return set, nil
}
