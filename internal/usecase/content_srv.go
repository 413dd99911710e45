package usecase

import (
	"context"

	"safari-booking/internal/data/entity"
	"safari-booking/internal/data/fallback"
	"safari-booking/internal/data/repository"
	"safari-booking/internal/data/resolve"
	"safari-booking/internal/dto/response"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// PackageQuery holds the optional public listing filters. They only apply to
// database reads; fallback content is returned unfiltered.
type PackageQuery struct {
	FeaturedOnly    bool
	DestinationSlug string
}

// ContentService serves the public catalog. Reads never fail: database
// errors degrade to fallback content. Detail lookups return ErrNotFound.
type ContentService interface {
	ListPackages(ctx context.Context, query PackageQuery) []response.TourPackageResponse
	GetPackage(ctx context.Context, slug string) (*response.PackageDetailResponse, error)
	GetItinerary(ctx context.Context, slug string) []response.ItineraryDayResponse
	ListLodges(ctx context.Context) []response.LodgeResponse
	GetLodge(ctx context.Context, slug string) (*response.LodgeResponse, error)
	ListDestinations(ctx context.Context) []response.DestinationResponse
	GetDestination(ctx context.Context, slug string) (*response.DestinationResponse, error)
	GetHero(ctx context.Context) response.HeroResponse
	GetHome(ctx context.Context) (*response.HomeResponse, error)
}

type contentService struct {
	repo     *repository.Repository
	fallback *fallback.Set
	resolver *resolve.Resolver
	log      *zap.Logger
}

func NewContentService(deps Dependencies, log *zap.Logger) ContentService {
	return &contentService{
		repo:     deps.Repo,
		fallback: deps.Fallback,
		resolver: deps.Resolver,
		log:      log.With(zap.String("service", "content")),
	}
}

func (s *contentService) ListPackages(ctx context.Context, query PackageQuery) []response.TourPackageResponse {
	pkgs := resolve.Read(ctx, s.resolver, "tour_packages",
		func(ctx context.Context) ([]*entity.TourPackage, error) {
			return s.repo.TourPackage.FindAll(ctx, entity.TourPackageFilter{
				FeaturedOnly:    query.FeaturedOnly,
				DestinationSlug: query.DestinationSlug,
			})
		},
		response.Pointers(s.fallback.TourPackages),
	)
	return response.TourPackagesToResponse(pkgs)
}

type packageDetail struct {
	pkg  *entity.TourPackage
	days []*entity.ItineraryDay
}

func (s *contentService) GetPackage(ctx context.Context, slug string) (*response.PackageDetailResponse, error) {
	fallbackDetail := packageDetail{
		pkg:  s.fallback.PackageBySlug(slug),
		days: response.Pointers(s.fallback.ItineraryFor(slug)),
	}

	detail := resolve.Read(ctx, s.resolver, "tour_package",
		func(ctx context.Context) (packageDetail, error) {
			var d packageDetail
			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				pkg, err := s.repo.TourPackage.FindBySlug(gctx, slug)
				d.pkg = pkg
				return err
			})
			g.Go(func() error {
				days, err := s.repo.Itinerary.FindByPackageSlug(gctx, slug)
				d.days = days
				return err
			})
			return d, g.Wait()
		},
		fallbackDetail,
	)

	if detail.pkg == nil {
		return nil, ErrNotFound
	}

	return &response.PackageDetailResponse{
		TourPackageResponse: response.TourPackageToResponse(detail.pkg),
		Itinerary:           response.ItineraryToResponse(detail.days),
	}, nil
}

func (s *contentService) GetItinerary(ctx context.Context, slug string) []response.ItineraryDayResponse {
	days := resolve.Read(ctx, s.resolver, "itinerary",
		func(ctx context.Context) ([]*entity.ItineraryDay, error) {
			return s.repo.Itinerary.FindByPackageSlug(ctx, slug)
		},
		response.Pointers(s.fallback.ItineraryFor(slug)),
	)
	return response.ItineraryToResponse(days)
}

func (s *contentService) ListLodges(ctx context.Context) []response.LodgeResponse {
	lodges := resolve.Read(ctx, s.resolver, "lodges",
		func(ctx context.Context) ([]*entity.Lodge, error) {
			return s.repo.Lodge.FindAll(ctx)
		},
		response.Pointers(s.fallback.Lodges),
	)
	return response.LodgesToResponse(lodges)
}

func (s *contentService) GetLodge(ctx context.Context, slug string) (*response.LodgeResponse, error) {
	lodge := resolve.Read(ctx, s.resolver, "lodge",
		func(ctx context.Context) (*entity.Lodge, error) {
			return s.repo.Lodge.FindBySlug(ctx, slug)
		},
		s.fallback.LodgeBySlug(slug),
	)
	if lodge == nil {
		return nil, ErrNotFound
	}

	resp := response.LodgeToResponse(lodge)
	return &resp, nil
}

func (s *contentService) ListDestinations(ctx context.Context) []response.DestinationResponse {
	return response.DestinationsToResponse(s.destinations(ctx))
}

func (s *contentService) destinations(ctx context.Context) []*entity.Destination {
	return resolve.Read(ctx, s.resolver, "destinations",
		func(ctx context.Context) ([]*entity.Destination, error) {
			return s.repo.Destination.FindAll(ctx)
		},
		response.Pointers(s.fallback.Destinations),
	)
}

func (s *contentService) GetDestination(ctx context.Context, slug string) (*response.DestinationResponse, error) {
	dest := resolve.Read(ctx, s.resolver, "destination",
		func(ctx context.Context) (*entity.Destination, error) {
			return s.repo.Destination.FindBySlug(ctx, slug)
		},
		s.fallback.DestinationBySlug(slug),
	)
	if dest == nil {
		return nil, ErrNotFound
	}

	resp := response.DestinationToResponse(dest)
	return &resp, nil
}

func (s *contentService) GetHero(ctx context.Context) response.HeroResponse {
	hero := s.fallback.Hero
	current := resolve.Read(ctx, s.resolver, "hero",
		func(ctx context.Context) (*entity.HeroContent, error) {
			found, err := s.repo.Hero.FindCurrent(ctx)
			if err != nil || found == nil {
				// No saved hero yet is served like a fallback.
				return &hero, err
			}
			return found, nil
		},
		&hero,
	)
	return response.HeroToResponse(current)
}

// GetHome fetches the three home page sections in parallel. Each section
// falls back on its own, so one failing table does not blank the page.
func (s *contentService) GetHome(ctx context.Context) (*response.HomeResponse, error) {
	var home response.HomeResponse

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		home.Hero = s.GetHero(gctx)
		return nil
	})
	g.Go(func() error {
		featured := resolve.Read(gctx, s.resolver, "featured_packages",
			func(ctx context.Context) ([]*entity.TourPackage, error) {
				return s.repo.TourPackage.FindAll(ctx, entity.TourPackageFilter{FeaturedOnly: true})
			},
			response.Pointers(s.fallback.FeaturedPackages()),
		)
		home.FeaturedPackages = response.TourPackagesToResponse(featured)
		return nil
	})
	g.Go(func() error {
		home.Destinations = response.DestinationsToResponse(s.destinations(gctx))
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &home, nil
}
