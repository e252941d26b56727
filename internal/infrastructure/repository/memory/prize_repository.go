package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/clubdeskhq/clubdesk/internal/domain/prize"
)

type PrizeRepository struct {
	mu     sync.RWMutex
	items  map[string]prize.Prize
	orders []string
}

func NewPrizeRepository(prizes []prize.Prize) *PrizeRepository {
	items := make(map[string]prize.Prize, len(prizes))
	orders := make([]string, 0, len(prizes))

	for _, p := range prizes {
		items[p.ID] = p
		orders = append(orders, p.ID)
	}

	return &PrizeRepository{
		items:  items,
		orders: orders,
	}
}

func (r *PrizeRepository) ListByTournament(_ context.Context, tournamentID string, filter prize.ListFilter) ([]prize.Prize, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]prize.Prize, 0, len(r.orders))
	for _, id := range r.orders {
		item := r.items[id]
		if item.TournamentID != tournamentID {
			continue
		}
		if filter.Type != "" && item.Type != filter.Type {
			continue
		}
		if filter.TeamID != "" && item.TeamID != filter.TeamID {
			continue
		}
		if filter.PlayerID != "" && item.PlayerID != filter.PlayerID {
			continue
		}
		out = append(out, item)
	}

	return out, nil
}

func (r *PrizeRepository) GetByID(_ context.Context, tournamentID, prizeID string) (prize.Prize, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[prizeID]
	if !ok || item.TournamentID != tournamentID {
		return prize.Prize{}, false, nil
	}

	return item, true, nil
}

func (r *PrizeRepository) Create(_ context.Context, item prize.Prize) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; exists {
		return fmt.Errorf("create prize: duplicate id %s", item.ID)
	}

	r.items[item.ID] = item
	r.orders = append(r.orders, item.ID)

	return nil
}

func (r *PrizeRepository) Update(_ context.Context, item prize.Prize) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[item.ID]
	if !ok || existing.TournamentID != item.TournamentID {
		return fmt.Errorf("update prize: not found")
	}

	r.items[item.ID] = item

	return nil
}

func (r *PrizeRepository) Delete(_ context.Context, tournamentID, prizeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[prizeID]
	if !ok || existing.TournamentID != tournamentID {
		return fmt.Errorf("delete prize: not found")
	}

	delete(r.items, prizeID)
	for i, id := range r.orders {
		if id == prizeID {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			break
		}
	}

	return nil
}
