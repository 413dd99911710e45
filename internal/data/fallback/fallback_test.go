package fallback

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsEmptyCatalogWithHero(t *testing.T) {
	set := Default()

	assert.NotNil(t, set.TourPackages)
	assert.Empty(t, set.TourPackages)
	assert.Empty(t, set.Lodges)
	assert.Empty(t, set.Destinations)
	assert.NotEmpty(t, set.Hero.Headline)
	assert.Nil(t, set.PackageBySlug("anything"))
	assert.NotNil(t, set.ItineraryFor("anything"))
	assert.Empty(t, set.ItineraryFor("anything"))
}

const sampleYAML = `
hero:
  headline: Into the wild
  cta_label: Enquire
  cta_href: /contact
packages:
  - slug: great-migration
    title: Great Migration
    duration_days: 7
    price_from: 3450
    currency: USD
    featured: true
    itinerary:
      - title: Arrive Arusha
      - title: Serengeti
        meals: B,L,D
  - slug: gorilla-trek
    title: Gorilla Trek
lodges:
  - slug: river-camp
    name: River Camp
destinations:
  - slug: serengeti
    name: Serengeti
    country: Tanzania
`

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fallback.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	set, err := Load(path)
	require.NoError(t, err)

	require.Len(t, set.TourPackages, 2)
	assert.Equal(t, int64(1), set.TourPackages[0].ID)
	assert.Equal(t, 3450.0, set.TourPackages[0].PriceFrom)
	assert.True(t, set.TourPackages[0].Published)

	days := set.ItineraryFor("great-migration")
	require.Len(t, days, 2)
	assert.Equal(t, 1, days[0].DayNumber)
	assert.Equal(t, 2, days[1].DayNumber)
	assert.Equal(t, "B,L,D", days[1].Meals)

	assert.Empty(t, set.ItineraryFor("gorilla-trek"))

	featured := set.FeaturedPackages()
	require.Len(t, featured, 1)
	assert.Equal(t, "great-migration", featured[0].Slug)

	require.NotNil(t, set.LodgeBySlug("river-camp"))
	require.NotNil(t, set.DestinationBySlug("serengeti"))
	assert.Equal(t, "Into the wild", set.Hero.Headline)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestPackageBySlug_ReturnsCopy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fallback.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))
	set, err := Load(path)
	require.NoError(t, err)

	pkg := set.PackageBySlug("great-migration")
	require.NotNil(t, pkg)
	pkg.Title = "changed"

	assert.Equal(t, "Great Migration", set.PackageBySlug("great-migration").Title)
}
