package service

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/singleflight"

	"github.com/surendhiran2000/theatre-management/internal/cache"
	dom "github.com/surendhiran2000/theatre-management/internal/domain"
	"github.com/surendhiran2000/theatre-management/internal/repo"
)

var ErrNotFound = errors.New("not found")

// BookingService handles booking creation, listing and deletion.
type BookingService struct {
	repo  repo.BookingRepo
	cache *cache.BookingCache
	sf    singleflight.Group
}

// NewBookingService creates a BookingService. If c is nil, caching is disabled.
func NewBookingService(r repo.BookingRepo, c *cache.BookingCache) *BookingService {
	return &BookingService{repo: r, cache: c}
}

// Create persists a new booking. The owning user id is taken as-is;
// it is not checked against the users collection.
func (s *BookingService) Create(ctx context.Context, userID, customerName, customerMobileNo string, numberOfTickets int) (dom.Booking, error) {
	b, err := s.repo.Create(ctx, dom.Booking{
		UserID:           strings.TrimSpace(userID),
		CustomerName:     strings.TrimSpace(customerName),
		CustomerMobileNo: strings.TrimSpace(customerMobileNo),
		NumberOfTickets:  numberOfTickets,
	})
	if err != nil {
		return dom.Booking{}, err
	}
	s.invalidateCache(ctx)
	return b, nil
}

// List returns every booking in the store.
func (s *BookingService) List(ctx context.Context) ([]dom.Booking, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do("list:all", func() (interface{}, error) {
			if list, err := s.cache.GetAll(ctx); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.ListAll(ctx)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetAll(ctx, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Booking), nil
	}
	return s.repo.ListAll(ctx)
}

// ListByUser returns all bookings for the given user id, possibly empty.
func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]dom.Booking, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do("list:user:"+userID, func() (interface{}, error) {
			if list, err := s.cache.GetByUser(ctx, userID); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.ListByUser(ctx, userID)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetByUser(ctx, userID, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Booking), nil
	}
	return s.repo.ListByUser(ctx, userID)
}

// Delete removes the booking with the given ticket id.
func (s *BookingService) Delete(ctx context.Context, ticketID string) error {
	err := s.repo.Delete(ctx, strings.TrimSpace(ticketID))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *BookingService) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateAll(ctx)
	}
}
