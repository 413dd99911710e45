package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"safari-booking/internal/data/entity"
	"safari-booking/internal/data/repository"
)

type ContentServiceSuite struct {
	suite.Suite
	ctx context.Context
}

func TestContentServiceSuite(t *testing.T) {
	suite.Run(t, new(ContentServiceSuite))
}

func (s *ContentServiceSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *ContentServiceSuite) withFallbackCatalog(env *testEnv) {
	env.deps.Fallback.TourPackages = []entity.TourPackage{
		{Base: entity.Base{ID: 1}, Slug: "serengeti-classic", Title: "Serengeti Classic", Featured: true},
		{Base: entity.Base{ID: 2}, Slug: "zanzibar-escape", Title: "Zanzibar Escape"},
	}
	env.deps.Fallback.Itineraries["serengeti-classic"] = []entity.ItineraryDay{
		{ID: 1, TourPackageID: 1, DayNumber: 1, Title: "Arrival in Arusha"},
	}
}

func (s *ContentServiceSuite) TestNoDatabase_ServesFallbackIgnoringFilters() {
	env := newTestEnv(s.T(), nil)
	s.withFallbackCatalog(env)
	svc := NewContentService(env.deps, zap.NewNop())

	pkgs := svc.ListPackages(s.ctx, PackageQuery{FeaturedOnly: true, DestinationSlug: "kenya"})

	s.Require().Len(pkgs, 2)
	s.Equal("serengeti-classic", pkgs[0].Slug)
	s.Equal("zanzibar-escape", pkgs[1].Slug)
}

func (s *ContentServiceSuite) TestDatabaseError_FallsBack() {
	env := newTestEnv(s.T(), &repository.Repository{
		TourPackage: &fakeTourPackageRepo{err: errDBDown},
		Itinerary:   &fakeItineraryRepo{err: errDBDown},
	})
	s.withFallbackCatalog(env)
	svc := NewContentService(env.deps, zap.NewNop())

	pkgs := svc.ListPackages(s.ctx, PackageQuery{})
	s.Len(pkgs, 2)

	detail, err := svc.GetPackage(s.ctx, "serengeti-classic")
	s.Require().NoError(err)
	s.Equal("Serengeti Classic", detail.Title)
	s.Require().Len(detail.Itinerary, 1)
	s.Equal("Arrival in Arusha", detail.Itinerary[0].Title)
}

func (s *ContentServiceSuite) TestDatabase_ServesRowsAndFilters() {
	env := newTestEnv(s.T(), &repository.Repository{
		TourPackage: &fakeTourPackageRepo{packages: []*entity.TourPackage{
			{Base: entity.Base{ID: 10}, Slug: "masai-mara", Title: "Masai Mara", Featured: true},
			{Base: entity.Base{ID: 11}, Slug: "amboseli", Title: "Amboseli"},
		}},
		Itinerary: &fakeItineraryRepo{days: map[string][]*entity.ItineraryDay{
			"masai-mara": {{ID: 5, TourPackageID: 10, DayNumber: 1, Title: "Game drive"}},
		}},
	})
	svc := NewContentService(env.deps, zap.NewNop())

	featured := svc.ListPackages(s.ctx, PackageQuery{FeaturedOnly: true})
	s.Require().Len(featured, 1)
	s.Equal(int64(10), featured[0].ID)

	detail, err := svc.GetPackage(s.ctx, "masai-mara")
	s.Require().NoError(err)
	s.Len(detail.Itinerary, 1)

	_, err = svc.GetPackage(s.ctx, "unknown")
	s.ErrorIs(err, ErrNotFound)
}

func (s *ContentServiceSuite) TestItinerary_UnknownSlugIsEmptyArray() {
	env := newTestEnv(s.T(), nil)
	svc := NewContentService(env.deps, zap.NewNop())

	days := svc.GetItinerary(s.ctx, "nope")

	s.NotNil(days)
	s.Empty(days)
}

func (s *ContentServiceSuite) TestDetailMissingFromFallback_NotFound() {
	env := newTestEnv(s.T(), nil)
	svc := NewContentService(env.deps, zap.NewNop())

	_, err := svc.GetLodge(s.ctx, "none")
	s.ErrorIs(err, ErrNotFound)
	_, err = svc.GetDestination(s.ctx, "none")
	s.ErrorIs(err, ErrNotFound)
	_, err = svc.GetPackage(s.ctx, "none")
	s.ErrorIs(err, ErrNotFound)
}

func (s *ContentServiceSuite) TestHero_NoSavedRowUsesFallback() {
	env := newTestEnv(s.T(), &repository.Repository{Hero: &fakeHeroRepo{}})
	svc := NewContentService(env.deps, zap.NewNop())

	hero := svc.GetHero(s.ctx)

	s.Equal(env.deps.Fallback.Hero.Headline, hero.Headline)
}

func TestGetHome_EachSectionFallsBackIndependently(t *testing.T) {
	env := newTestEnv(t, &repository.Repository{
		Hero:        &fakeHeroRepo{hero: &entity.HeroContent{ID: 3, Headline: "Into the wild"}},
		TourPackage: &fakeTourPackageRepo{err: errDBDown},
		Destination: &fakeDestinationRepo{destinations: []*entity.Destination{{Slug: "tanzania", Name: "Tanzania"}}},
	})
	env.deps.Fallback.TourPackages = []entity.TourPackage{
		{Slug: "featured", Featured: true},
		{Slug: "plain"},
	}
	svc := NewContentService(env.deps, zap.NewNop())

	home, err := svc.GetHome(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Into the wild", home.Hero.Headline)
	require.Len(t, home.FeaturedPackages, 1)
	assert.Equal(t, "featured", home.FeaturedPackages[0].Slug)
	require.Len(t, home.Destinations, 1)
	assert.Equal(t, "tanzania", home.Destinations[0].Slug)
}
