package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"

	"safari-booking/internal/data/entity"
	"safari-booking/internal/data/fallback"
	"safari-booking/internal/data/memory"
	"safari-booking/internal/data/repository"
	"safari-booking/internal/data/resolve"
	"safari-booking/pkg/utils"
)

var errDBDown = errors.New("connection refused")

type recordingNotifier struct {
	bookings []*entity.Booking
	contacts []*entity.ContactMessage
	err      error
}

func (n *recordingNotifier) BookingReceived(_ context.Context, b *entity.Booking) error {
	n.bookings = append(n.bookings, b)
	return n.err
}

func (n *recordingNotifier) ContactReceived(_ context.Context, m *entity.ContactMessage) error {
	n.contacts = append(n.contacts, m)
	return n.err
}

type fakeBookingRepo struct {
	repository.BookingRepository
	created []*entity.Booking
	err     error

	lastLimit, lastOffset int
	lastFilter            entity.BookingFilter
}

func (f *fakeBookingRepo) Create(_ context.Context, b *entity.Booking) error {
	if f.err != nil {
		return f.err
	}
	b.ID = int64(len(f.created) + 100)
	b.Status = entity.BookingStatusPending
	b.CreatedAt = time.Now()
	f.created = append(f.created, b)
	return nil
}

func (f *fakeBookingRepo) matching(filter entity.BookingFilter) []*entity.Booking {
	out := []*entity.Booking{}
	for _, b := range f.created {
		if filter.Status == "" || string(b.Status) == filter.Status {
			out = append(out, b)
		}
	}
	return out
}

func (f *fakeBookingRepo) FindAll(_ context.Context, filter entity.BookingFilter, limit, offset int) ([]*entity.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastFilter, f.lastLimit, f.lastOffset = filter, limit, offset
	rows := f.matching(filter)
	if offset >= len(rows) {
		return []*entity.Booking{}, nil
	}
	end := min(offset+limit, len(rows))
	return rows[offset:end], nil
}

func (f *fakeBookingRepo) CountAll(_ context.Context, filter entity.BookingFilter) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.matching(filter))), nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id int64) (*entity.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, b := range f.created {
		if b.ID == id {
			copied := *b
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) Update(_ context.Context, id int64, update entity.BookingUpdate) (*entity.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, b := range f.created {
		if b.ID != id {
			continue
		}
		if update.Status != nil {
			b.Status = *update.Status
			if b.Status == entity.BookingStatusCompleted {
				now := time.Now()
				b.CompletedAt = &now
			}
		}
		if update.AdminNotes != nil {
			b.AdminNotes = update.AdminNotes
		}
		copied := *b
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	for i, b := range f.created {
		if b.ID == id {
			f.created = append(f.created[:i], f.created[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("delete booking %d: %w", id, repository.ErrNoRows)
}

type fakeContactRepo struct {
	repository.ContactMessageRepository
	messages []*entity.ContactMessage
	err      error

	lastLimit, lastOffset int
}

func (f *fakeContactRepo) matching(filter entity.ContactFilter) []*entity.ContactMessage {
	out := []*entity.ContactMessage{}
	for _, m := range f.messages {
		if filter.Status == "" || string(m.Status) == filter.Status {
			out = append(out, m)
		}
	}
	return out
}

func (f *fakeContactRepo) FindAll(_ context.Context, filter entity.ContactFilter, limit, offset int) ([]*entity.ContactMessage, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastLimit, f.lastOffset = limit, offset
	rows := f.matching(filter)
	if offset >= len(rows) {
		return []*entity.ContactMessage{}, nil
	}
	end := min(offset+limit, len(rows))
	return rows[offset:end], nil
}

func (f *fakeContactRepo) CountAll(_ context.Context, filter entity.ContactFilter) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.matching(filter))), nil
}

func (f *fakeContactRepo) FindByID(_ context.Context, id int64) (*entity.ContactMessage, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, m := range f.messages {
		if m.ID == id {
			copied := *m
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeContactRepo) UpdateStatus(_ context.Context, id int64, status entity.ContactStatus) (*entity.ContactMessage, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, m := range f.messages {
		if m.ID != id {
			continue
		}
		m.Status = status
		m.ResolvedAt = nil
		if status == entity.ContactStatusClosed {
			now := time.Now()
			m.ResolvedAt = &now
		}
		copied := *m
		return &copied, nil
	}
	return nil, nil
}

type fakeTourPackageRepo struct {
	repository.TourPackageRepository
	packages []*entity.TourPackage
	err      error
}

func (f *fakeTourPackageRepo) FindAll(_ context.Context, filter entity.TourPackageFilter) ([]*entity.TourPackage, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []*entity.TourPackage{}
	for _, p := range f.packages {
		if filter.FeaturedOnly && !p.Featured {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeTourPackageRepo) FindBySlug(_ context.Context, slug string) (*entity.TourPackage, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.packages {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeTourPackageRepo) FindByID(_ context.Context, id int64) (*entity.TourPackage, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.packages {
		if p.ID == id {
			copied := *p
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeTourPackageRepo) slugTaken(slug string, except int64) bool {
	for _, p := range f.packages {
		if p.Slug == slug && p.ID != except {
			return true
		}
	}
	return false
}

func (f *fakeTourPackageRepo) Create(_ context.Context, pkg *entity.TourPackage) error {
	if f.err != nil {
		return f.err
	}
	if f.slugTaken(pkg.Slug, 0) {
		return fmt.Errorf("create tour package %s: %w", pkg.Slug, repository.ErrDuplicate)
	}
	pkg.ID = int64(len(f.packages) + 1)
	stored := *pkg
	f.packages = append(f.packages, &stored)
	return nil
}

func (f *fakeTourPackageRepo) Update(_ context.Context, pkg *entity.TourPackage) error {
	if f.err != nil {
		return f.err
	}
	if f.slugTaken(pkg.Slug, pkg.ID) {
		return fmt.Errorf("update tour package %d: %w", pkg.ID, repository.ErrDuplicate)
	}
	for i, p := range f.packages {
		if p.ID == pkg.ID {
			stored := *pkg
			f.packages[i] = &stored
			return nil
		}
	}
	return fmt.Errorf("update tour package %d: %w", pkg.ID, repository.ErrNoRows)
}

func (f *fakeTourPackageRepo) Delete(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	for i, p := range f.packages {
		if p.ID == id {
			f.packages = append(f.packages[:i], f.packages[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("delete tour package %d: %w", id, repository.ErrNoRows)
}

func (f *fakeTourPackageRepo) IDBySlug(ctx context.Context, slug string) (*int64, error) {
	p, err := f.FindBySlug(ctx, slug)
	if err != nil || p == nil {
		return nil, err
	}
	return &p.ID, nil
}

type fakeItineraryRepo struct {
	repository.ItineraryRepository
	days     map[string][]*entity.ItineraryDay
	replaced map[int64][]*entity.ItineraryDay
	err      error
}

func (f *fakeItineraryRepo) FindByPackageSlug(_ context.Context, slug string) ([]*entity.ItineraryDay, error) {
	if f.err != nil {
		return nil, f.err
	}
	if days, ok := f.days[slug]; ok {
		return days, nil
	}
	return []*entity.ItineraryDay{}, nil
}

func (f *fakeItineraryRepo) FindByPackageID(_ context.Context, packageID int64) ([]*entity.ItineraryDay, error) {
	if f.err != nil {
		return nil, f.err
	}
	if days, ok := f.replaced[packageID]; ok {
		return days, nil
	}
	return []*entity.ItineraryDay{}, nil
}

func (f *fakeItineraryRepo) ReplaceForPackage(_ context.Context, packageID int64, days []*entity.ItineraryDay) error {
	if f.err != nil {
		return f.err
	}
	if f.replaced == nil {
		f.replaced = map[int64][]*entity.ItineraryDay{}
	}
	for i, day := range days {
		day.ID = int64(i + 1)
		day.TourPackageID = packageID
	}
	f.replaced[packageID] = days
	return nil
}

type fakeHeroRepo struct {
	repository.HeroRepository
	hero *entity.HeroContent
	err  error
}

func (f *fakeHeroRepo) FindCurrent(context.Context) (*entity.HeroContent, error) {
	return f.hero, f.err
}

type fakeDestinationRepo struct {
	repository.DestinationRepository
	destinations []*entity.Destination
	err          error
}

func (f *fakeDestinationRepo) FindAll(context.Context) ([]*entity.Destination, error) {
	return f.destinations, f.err
}

type fakeUserRepo struct {
	repository.UserRepository
	users map[string]*entity.User
	err   error
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[email], nil
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if f.err != nil {
		return f.err
	}
	if f.users == nil {
		f.users = map[string]*entity.User{}
	}
	u.ID = int64(len(f.users) + 1)
	f.users[u.Email] = u
	return nil
}

type testEnv struct {
	deps     Dependencies
	store    *memory.Store
	notifier *recordingNotifier
}

// newTestEnv wires services against repo; a nil repo means no database.
func newTestEnv(t *testing.T, repo *repository.Repository) *testEnv {
	t.Helper()
	store := memory.NewStore()
	notifier := &recordingNotifier{}
	resolver := resolve.NewResolver(resolve.Configured(repo != nil), zap.NewNop(), nil)

	return &testEnv{
		deps: Dependencies{
			Repo:     repo,
			Store:    store,
			Fallback: fallback.Default(),
			Resolver: resolver,
			Notifier: notifier,
			Config:   &utils.Config{},
		},
		store:    store,
		notifier: notifier,
	}
}
