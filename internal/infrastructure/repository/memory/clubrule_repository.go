package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/clubdeskhq/clubdesk/internal/domain/clubrule"
)

type ClubRuleRepository struct {
	mu     sync.RWMutex
	items  map[string]clubrule.ClubRule
	orders []string
}

func NewClubRuleRepository(rules []clubrule.ClubRule) *ClubRuleRepository {
	items := make(map[string]clubrule.ClubRule, len(rules))
	orders := make([]string, 0, len(rules))

	for _, rule := range rules {
		items[rule.ID] = rule
		orders = append(orders, rule.ID)
	}

	return &ClubRuleRepository{
		items:  items,
		orders: orders,
	}
}

func (r *ClubRuleRepository) List(_ context.Context) ([]clubrule.ClubRule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]clubrule.ClubRule, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *ClubRuleRepository) GetByID(_ context.Context, ruleID string) (clubrule.ClubRule, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rule, ok := r.items[ruleID]
	if !ok {
		return clubrule.ClubRule{}, false, nil
	}

	return rule, true, nil
}

func (r *ClubRuleRepository) Create(_ context.Context, item clubrule.ClubRule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; exists {
		return fmt.Errorf("create club rule: duplicate id %s", item.ID)
	}

	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now
	r.items[item.ID] = item
	r.orders = append(r.orders, item.ID)

	return nil
}

func (r *ClubRuleRepository) Update(_ context.Context, item clubrule.ClubRule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[item.ID]
	if !ok {
		return fmt.Errorf("update club rule: not found")
	}

	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = time.Now().UTC()
	r.items[item.ID] = item

	return nil
}
