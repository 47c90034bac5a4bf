package negotiation

import (
	"sync"

	"github.com/xtharshh/kwick-backend/models"
)

// OfferStore holds the in-memory negotiation record for each booking: the
// latest offered price and the offering worker's snapshot. It is a cache
// over the booking document, rebuilt empty on restart. Every read-modify-
// write goes through a single mutex.
type OfferStore struct {
	mu     sync.RWMutex
	offers map[string]models.Bid
}

func NewOfferStore() *OfferStore {
	return &OfferStore{offers: make(map[string]models.Bid)}
}

// Put records the latest offer for a booking, replacing any previous one.
func (s *OfferStore) Put(bid models.Bid) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offers[bid.BookingID] = bid
}

// Get returns the current offer for a booking, if any.
func (s *OfferStore) Get(bookingID string) (models.Bid, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bid, ok := s.offers[bookingID]
	return bid, ok
}

// Delete retires the negotiation record for a booking.
func (s *OfferStore) Delete(bookingID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.offers, bookingID)
}

// PurgeByPrice removes the cached offer for a booking if its price equals
// the given one. Used on decline so the rejected offer cannot linger.
func (s *OfferStore) PurgeByPrice(bookingID string, price float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if bid, ok := s.offers[bookingID]; ok && bid.Price == price {
		delete(s.offers, bookingID)
	}
}

// Len reports the number of open negotiation records.
func (s *OfferStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.offers)
}
