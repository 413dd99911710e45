package usecase

import (
	"context"

	"safari-booking/internal/data/entity"
	"safari-booking/internal/data/repository"
	"safari-booking/internal/data/resolve"
	"safari-booking/internal/dto/request"
	"safari-booking/internal/dto/response"

	"go.uber.org/zap"
)

// AdminContentService edits the catalog. Every operation needs a database;
// without one they return resolve.ErrNotConfigured.
type AdminContentService interface {
	ListPackages(ctx context.Context) ([]response.TourPackageResponse, error)
	GetPackage(ctx context.Context, id int64) (*response.PackageDetailResponse, error)
	CreatePackage(ctx context.Context, req *request.TourPackageRequest) (*response.TourPackageResponse, error)
	UpdatePackage(ctx context.Context, id int64, req *request.TourPackageUpdateRequest) (*response.TourPackageResponse, error)
	DeletePackage(ctx context.Context, id int64) error
	ReplaceItinerary(ctx context.Context, packageID int64, req *request.ItineraryRequest) ([]response.ItineraryDayResponse, error)

	CreateLodge(ctx context.Context, req *request.LodgeRequest) (*response.LodgeResponse, error)
	UpdateLodge(ctx context.Context, id int64, req *request.LodgeUpdateRequest) (*response.LodgeResponse, error)
	DeleteLodge(ctx context.Context, id int64) error

	CreateDestination(ctx context.Context, req *request.DestinationRequest) (*response.DestinationResponse, error)
	UpdateDestination(ctx context.Context, id int64, req *request.DestinationUpdateRequest) (*response.DestinationResponse, error)
	DeleteDestination(ctx context.Context, id int64) error

	SaveHero(ctx context.Context, req *request.HeroRequest) (*response.HeroResponse, error)
}

type adminContentService struct {
	repo     *repository.Repository
	resolver *resolve.Resolver
	log      *zap.Logger
}

func NewAdminContentService(deps Dependencies, log *zap.Logger) AdminContentService {
	return &adminContentService{
		repo:     deps.Repo,
		resolver: deps.Resolver,
		log:      log.With(zap.String("service", "admin_content")),
	}
}

// dbOnly runs op against the database, or fails with ErrNotConfigured.
func dbOnly[T any](ctx context.Context, r *resolve.Resolver, op resolve.Op[T]) (T, error) {
	value, err := resolve.Write(ctx, r, op, nil)
	return value, translateRepoError(err)
}

func (s *adminContentService) ListPackages(ctx context.Context) ([]response.TourPackageResponse, error) {
	pkgs, err := dbOnly(ctx, s.resolver, func(ctx context.Context) ([]*entity.TourPackage, error) {
		return s.repo.TourPackage.FindAll(ctx, entity.TourPackageFilter{IncludeDrafts: true})
	})
	if err != nil {
		return nil, err
	}
	return response.TourPackagesToResponse(pkgs), nil
}

func (s *adminContentService) GetPackage(ctx context.Context, id int64) (*response.PackageDetailResponse, error) {
	detail, err := dbOnly(ctx, s.resolver, func(ctx context.Context) (packageDetail, error) {
		pkg, err := s.repo.TourPackage.FindByID(ctx, id)
		if err != nil || pkg == nil {
			return packageDetail{}, err
		}
		days, err := s.repo.Itinerary.FindByPackageID(ctx, id)
		if err != nil {
			return packageDetail{}, err
		}
		return packageDetail{pkg: pkg, days: days}, nil
	})
	if err != nil {
		return nil, err
	}
	if detail.pkg == nil {
		return nil, ErrNotFound
	}

	return &response.PackageDetailResponse{
		TourPackageResponse: response.TourPackageToResponse(detail.pkg),
		Itinerary:           response.ItineraryToResponse(detail.days),
	}, nil
}

func (s *adminContentService) CreatePackage(ctx context.Context, req *request.TourPackageRequest) (*response.TourPackageResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	pkg := &entity.TourPackage{
		Slug:          req.Slug,
		Title:         req.Title,
		Summary:       req.Summary,
		Description:   req.Description,
		DurationDays:  req.DurationDays,
		PriceFrom:     req.PriceFrom,
		Currency:      currencyOrDefault(req.Currency),
		ImageURL:      req.ImageURL,
		DestinationID: req.DestinationID,
		Featured:      req.Featured,
		Published:     req.Published,
	}

	_, err := dbOnly(ctx, s.resolver, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.repo.TourPackage.Create(ctx, pkg)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Tour package created", zap.Int64("package_id", pkg.ID), zap.String("slug", pkg.Slug))
	resp := response.TourPackageToResponse(pkg)
	return &resp, nil
}

func currencyOrDefault(currency string) string {
	if currency == "" {
		return "USD"
	}
	return currency
}

func (s *adminContentService) UpdatePackage(ctx context.Context, id int64, req *request.TourPackageUpdateRequest) (*response.TourPackageResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	pkg, err := dbOnly(ctx, s.resolver, func(ctx context.Context) (*entity.TourPackage, error) {
		pkg, err := s.repo.TourPackage.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if pkg == nil {
			return nil, ErrNotFound
		}

		setIf(&pkg.Slug, req.Slug)
		setIf(&pkg.Title, req.Title)
		setIf(&pkg.Summary, req.Summary)
		setIf(&pkg.Description, req.Description)
		setIf(&pkg.DurationDays, req.DurationDays)
		setIf(&pkg.PriceFrom, req.PriceFrom)
		setIf(&pkg.Currency, req.Currency)
		setIf(&pkg.ImageURL, req.ImageURL)
		setIf(&pkg.Featured, req.Featured)
		setIf(&pkg.Published, req.Published)
		if req.DestinationID != nil {
			pkg.DestinationID = req.DestinationID
		}

		return pkg, s.repo.TourPackage.Update(ctx, pkg)
	})
	if err != nil {
		return nil, err
	}

	resp := response.TourPackageToResponse(pkg)
	return &resp, nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func (s *adminContentService) DeletePackage(ctx context.Context, id int64) error {
	_, err := dbOnly(ctx, s.resolver, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.repo.TourPackage.Delete(ctx, id)
	})
	if err == nil {
		s.log.Info("Tour package deleted", zap.Int64("package_id", id))
	}
	return err
}

func (s *adminContentService) ReplaceItinerary(ctx context.Context, packageID int64, req *request.ItineraryRequest) ([]response.ItineraryDayResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	days := make([]*entity.ItineraryDay, 0, len(req.Days))
	seen := make(map[int]bool, len(req.Days))
	for _, d := range req.Days {
		if seen[d.DayNumber] {
			return nil, invalidField("day_number", "day_number values must be unique")
		}
		seen[d.DayNumber] = true
		days = append(days, &entity.ItineraryDay{
			DayNumber:   d.DayNumber,
			Title:       d.Title,
			Description: d.Description,
			LodgeID:     d.LodgeID,
			Meals:       d.Meals,
		})
	}

	_, err := dbOnly(ctx, s.resolver, func(ctx context.Context) (struct{}, error) {
		pkg, err := s.repo.TourPackage.FindByID(ctx, packageID)
		if err != nil {
			return struct{}{}, err
		}
		if pkg == nil {
			return struct{}{}, ErrNotFound
		}
		return struct{}{}, s.repo.Itinerary.ReplaceForPackage(ctx, packageID, days)
	})
	if err != nil {
		return nil, err
	}

	return response.ItineraryToResponse(days), nil
}

func (s *adminContentService) CreateLodge(ctx context.Context, req *request.LodgeRequest) (*response.LodgeResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	lodge := &entity.Lodge{
		Slug:          req.Slug,
		Name:          req.Name,
		Location:      req.Location,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		DestinationID: req.DestinationID,
	}

	_, err := dbOnly(ctx, s.resolver, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.repo.Lodge.Create(ctx, lodge)
	})
	if err != nil {
		return nil, err
	}

	resp := response.LodgeToResponse(lodge)
	return &resp, nil
}

func (s *adminContentService) UpdateLodge(ctx context.Context, id int64, req *request.LodgeUpdateRequest) (*response.LodgeResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	lodge, err := dbOnly(ctx, s.resolver, func(ctx context.Context) (*entity.Lodge, error) {
		lodge, err := s.repo.Lodge.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if lodge == nil {
			return nil, ErrNotFound
		}

		setIf(&lodge.Slug, req.Slug)
		setIf(&lodge.Name, req.Name)
		setIf(&lodge.Location, req.Location)
		setIf(&lodge.Description, req.Description)
		setIf(&lodge.ImageURL, req.ImageURL)
		if req.DestinationID != nil {
			lodge.DestinationID = req.DestinationID
		}

		return lodge, s.repo.Lodge.Update(ctx, lodge)
	})
	if err != nil {
		return nil, err
	}

	resp := response.LodgeToResponse(lodge)
	return &resp, nil
}

func (s *adminContentService) DeleteLodge(ctx context.Context, id int64) error {
	_, err := dbOnly(ctx, s.resolver, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.repo.Lodge.Delete(ctx, id)
	})
	return err
}

func (s *adminContentService) CreateDestination(ctx context.Context, req *request.DestinationRequest) (*response.DestinationResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	dest := &entity.Destination{
		Slug:        req.Slug,
		Name:        req.Name,
		Country:     req.Country,
		Summary:     req.Summary,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}

	_, err := dbOnly(ctx, s.resolver, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.repo.Destination.Create(ctx, dest)
	})
	if err != nil {
		return nil, err
	}

	resp := response.DestinationToResponse(dest)
	return &resp, nil
}

func (s *adminContentService) UpdateDestination(ctx context.Context, id int64, req *request.DestinationUpdateRequest) (*response.DestinationResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	dest, err := dbOnly(ctx, s.resolver, func(ctx context.Context) (*entity.Destination, error) {
		dest, err := s.repo.Destination.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if dest == nil {
			return nil, ErrNotFound
		}

		setIf(&dest.Slug, req.Slug)
		setIf(&dest.Name, req.Name)
		setIf(&dest.Country, req.Country)
		setIf(&dest.Summary, req.Summary)
		setIf(&dest.Description, req.Description)
		setIf(&dest.ImageURL, req.ImageURL)

		return dest, s.repo.Destination.Update(ctx, dest)
	})
	if err != nil {
		return nil, err
	}

	resp := response.DestinationToResponse(dest)
	return &resp, nil
}

func (s *adminContentService) DeleteDestination(ctx context.Context, id int64) error {
	_, err := dbOnly(ctx, s.resolver, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.repo.Destination.Delete(ctx, id)
	})
	return err
}

func (s *adminContentService) SaveHero(ctx context.Context, req *request.HeroRequest) (*response.HeroResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	hero := &entity.HeroContent{
		Headline:    req.Headline,
		Subheadline: req.Subheadline,
		CtaLabel:    req.CtaLabel,
		CtaHref:     req.CtaHref,
		ImageURL:    req.ImageURL,
	}

	_, err := dbOnly(ctx, s.resolver, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.repo.Hero.Save(ctx, hero)
	})
	if err != nil {
		return nil, err
	}

	resp := response.HeroToResponse(hero)
	return &resp, nil
}
