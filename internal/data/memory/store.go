// Package memory holds bookings and contact messages for processes that run
// without a database. Nothing here survives a restart, and identifiers are
// only unique within one process run.
package memory

import (
	"sync"
	"time"

	"safari-booking/internal/data/entity"
)

// Store is the write-path fallback. It is created once at startup and
// injected; the mutex makes it safe for concurrent handlers.
type Store struct {
	mu sync.Mutex

	contactMessages []*entity.ContactMessage
	bookings        []*entity.Booking

	lastContactID int64
	lastBookingID int64

	now func() time.Time
}

func NewStore() *Store {
	return &Store{now: func() time.Time { return time.Now().UTC() }}
}

// ==================== CONTACT MESSAGES ====================

// CreateContactMessage stores a copy of in with the next id, status "new" and
// the current time. It never fails.
func (s *Store) CreateContactMessage(in *entity.ContactMessage) *entity.ContactMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastContactID++
	msg := &entity.ContactMessage{
		ID:        s.lastContactID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Message:   in.Message,
		Status:    entity.ContactStatusNew,
		CreatedAt: s.now(),
	}
	s.contactMessages = append(s.contactMessages, msg)

	out := *msg
	return &out
}

// ListContactMessages returns the newest messages first together with the
// total number matching filter.
func (s *Store) ListContactMessages(filter entity.ContactFilter, limit, offset int) ([]*entity.ContactMessage, int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []*entity.ContactMessage
	for i := len(s.contactMessages) - 1; i >= 0; i-- {
		msg := s.contactMessages[i]
		if filter.Status != "" && string(msg.Status) != filter.Status {
			continue
		}
		out := *msg
		matched = append(matched, &out)
	}

	return page(matched, limit, offset), int64(len(matched))
}

func (s *Store) GetContactMessage(id int64) *entity.ContactMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := s.findContactMessage(id)
	if msg == nil {
		return nil
	}
	out := *msg
	return &out
}

// UpdateContactMessageStatus sets the status in place and returns the updated
// record, or nil when id is unknown. Closing stamps resolved_at; any other
// status clears it.
func (s *Store) UpdateContactMessageStatus(id int64, status entity.ContactStatus) *entity.ContactMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := s.findContactMessage(id)
	if msg == nil {
		return nil
	}

	msg.Status = status
	if status == entity.ContactStatusClosed {
		resolvedAt := s.now()
		msg.ResolvedAt = &resolvedAt
	} else {
		msg.ResolvedAt = nil
	}

	out := *msg
	return &out
}

func (s *Store) findContactMessage(id int64) *entity.ContactMessage {
	for _, msg := range s.contactMessages {
		if msg.ID == id {
			return msg
		}
	}
	return nil
}

// ==================== BOOKINGS ====================

// CreateBooking stores a copy of in with the next id, status "pending" and
// the current time.
func (s *Store) CreateBooking(in *entity.Booking) *entity.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastBookingID++
	booking := *in
	booking.ID = s.lastBookingID
	booking.Status = entity.BookingStatusPending
	booking.AdminNotes = nil
	booking.CompletedAt = nil
	booking.CreatedAt = s.now()
	booking.TourPackage = nil
	s.bookings = append(s.bookings, &booking)

	out := booking
	return &out
}

// ListBookings returns the newest bookings first together with the total
// number matching filter.
func (s *Store) ListBookings(filter entity.BookingFilter, limit, offset int) ([]*entity.Booking, int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []*entity.Booking
	for i := len(s.bookings) - 1; i >= 0; i-- {
		booking := s.bookings[i]
		if filter.Status != "" && string(booking.Status) != filter.Status {
			continue
		}
		out := *booking
		matched = append(matched, &out)
	}

	return page(matched, limit, offset), int64(len(matched))
}

func (s *Store) GetBooking(id int64) *entity.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking := s.findBooking(id)
	if booking == nil {
		return nil
	}
	out := *booking
	return &out
}

// UpdateBooking applies the non-nil fields of upd and returns the updated
// record, or nil when id is unknown. Every transition to "completed" stamps
// completed_at with the current time.
func (s *Store) UpdateBooking(id int64, upd entity.BookingUpdate) *entity.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking := s.findBooking(id)
	if booking == nil {
		return nil
	}

	if upd.Status != nil {
		booking.Status = *upd.Status
		if *upd.Status == entity.BookingStatusCompleted {
			completedAt := s.now()
			booking.CompletedAt = &completedAt
		}
	}
	if upd.AdminNotes != nil {
		notes := *upd.AdminNotes
		booking.AdminNotes = &notes
	}

	out := *booking
	return &out
}

// TourPackageIDBySlug always returns nil: there is no package catalog
// without a database, so slug references cannot be resolved.
func (s *Store) TourPackageIDBySlug(string) *int64 {
	return nil
}

func (s *Store) findBooking(id int64) *entity.Booking {
	for _, booking := range s.bookings {
		if booking.ID == id {
			return booking
		}
	}
	return nil
}

func page[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && limit < end-offset {
		end = offset + limit
	}
	return items[offset:end]
}
