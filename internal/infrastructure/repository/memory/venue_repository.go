package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/clubdeskhq/clubdesk/internal/domain/venue"
)

type VenueRepository struct {
	mu     sync.RWMutex
	items  map[string]venue.Venue
	orders []string
}

func NewVenueRepository(venues []venue.Venue) *VenueRepository {
	items := make(map[string]venue.Venue, len(venues))
	orders := make([]string, 0, len(venues))

	for _, v := range venues {
		items[v.ID] = v
		orders = append(orders, v.ID)
	}

	return &VenueRepository{
		items:  items,
		orders: orders,
	}
}

func (r *VenueRepository) List(_ context.Context) ([]venue.Venue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]venue.Venue, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *VenueRepository) GetByID(_ context.Context, venueID string) (venue.Venue, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.items[venueID]
	if !ok {
		return venue.Venue{}, false, nil
	}

	return v, true, nil
}

func (r *VenueRepository) Create(_ context.Context, item venue.Venue) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; exists {
		return fmt.Errorf("create venue: duplicate id %s", item.ID)
	}

	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now
	r.items[item.ID] = item
	r.orders = append(r.orders, item.ID)

	return nil
}

func (r *VenueRepository) Update(_ context.Context, item venue.Venue) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[item.ID]
	if !ok {
		return fmt.Errorf("update venue: not found")
	}

	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = time.Now().UTC()
	r.items[item.ID] = item

	return nil
}
