package cache

import (
	"context"

	"github.com/clubdeskhq/clubdesk/internal/domain/clubrule"
	"github.com/clubdeskhq/clubdesk/internal/domain/prize"
	"github.com/clubdeskhq/clubdesk/internal/domain/role"
	"github.com/clubdeskhq/clubdesk/internal/domain/venue"
	basecache "github.com/clubdeskhq/clubdesk/internal/platform/cache"
)

type VenueRepository struct {
	next  venue.Repository
	cache *basecache.Store
}

func NewVenueRepository(next venue.Repository, cache *basecache.Store) *VenueRepository {
	return &VenueRepository{next: next, cache: cache}
}

func (r *VenueRepository) List(ctx context.Context) ([]venue.Venue, error) {
	v, err := r.cache.GetOrLoad(ctx, "venue:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]venue.Venue(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]venue.Venue)
	return append([]venue.Venue(nil), items...), nil
}

func (r *VenueRepository) GetByID(ctx context.Context, venueID string) (venue.Venue, bool, error) {
	key := "venue:id:" + venueID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, venueID)
		if err != nil {
			return nil, err
		}
		return cachedVenueByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return venue.Venue{}, false, err
	}

	cached, _ := v.(cachedVenueByID)
	return cached.value, cached.exists, nil
}

func (r *VenueRepository) Create(ctx context.Context, item venue.Venue) error {
	if err := r.next.Create(ctx, item); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "venue:")
	return nil
}

func (r *VenueRepository) Update(ctx context.Context, item venue.Venue) error {
	if err := r.next.Update(ctx, item); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "venue:")
	return nil
}

type cachedVenueByID struct {
	value  venue.Venue
	exists bool
}

type ClubRuleRepository struct {
	next  clubrule.Repository
	cache *basecache.Store
}

func NewClubRuleRepository(next clubrule.Repository, cache *basecache.Store) *ClubRuleRepository {
	return &ClubRuleRepository{next: next, cache: cache}
}

func (r *ClubRuleRepository) List(ctx context.Context) ([]clubrule.ClubRule, error) {
	v, err := r.cache.GetOrLoad(ctx, "club-rule:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]clubrule.ClubRule(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]clubrule.ClubRule)
	return append([]clubrule.ClubRule(nil), items...), nil
}

func (r *ClubRuleRepository) GetByID(ctx context.Context, ruleID string) (clubrule.ClubRule, bool, error) {
	key := "club-rule:id:" + ruleID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, ruleID)
		if err != nil {
			return nil, err
		}
		return cachedClubRuleByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return clubrule.ClubRule{}, false, err
	}

	cached, _ := v.(cachedClubRuleByID)
	return cached.value, cached.exists, nil
}

func (r *ClubRuleRepository) Create(ctx context.Context, item clubrule.ClubRule) error {
	if err := r.next.Create(ctx, item); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "club-rule:")
	return nil
}

func (r *ClubRuleRepository) Update(ctx context.Context, item clubrule.ClubRule) error {
	if err := r.next.Update(ctx, item); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "club-rule:")
	return nil
}

type cachedClubRuleByID struct {
	value  clubrule.ClubRule
	exists bool
}

type PrizeRepository struct {
	next  prize.Repository
	cache *basecache.Store
}

func NewPrizeRepository(next prize.Repository, cache *basecache.Store) *PrizeRepository {
	return &PrizeRepository{next: next, cache: cache}
}

func (r *PrizeRepository) ListByTournament(ctx context.Context, tournamentID string, filter prize.ListFilter) ([]prize.Prize, error) {
	key := "prize:list:" + tournamentID + ":" + string(filter.Type) + ":" + filter.TeamID + ":" + filter.PlayerID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByTournament(ctx, tournamentID, filter)
		if err != nil {
			return nil, err
		}
		return clonePrizes(items), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]prize.Prize)
	return clonePrizes(items), nil
}

func (r *PrizeRepository) GetByID(ctx context.Context, tournamentID, prizeID string) (prize.Prize, bool, error) {
	key := "prize:id:" + tournamentID + ":" + prizeID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, tournamentID, prizeID)
		if err != nil {
			return nil, err
		}
		return cachedPrizeByID{value: clonePrize(item), exists: exists}, nil
	})
	if err != nil {
		return prize.Prize{}, false, err
	}

	cached, _ := v.(cachedPrizeByID)
	return clonePrize(cached.value), cached.exists, nil
}

func (r *PrizeRepository) Create(ctx context.Context, item prize.Prize) error {
	if err := r.next.Create(ctx, item); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, prizeTournamentPrefix(item.TournamentID))
	return nil
}

func (r *PrizeRepository) Update(ctx context.Context, item prize.Prize) error {
	if err := r.next.Update(ctx, item); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, prizeTournamentPrefix(item.TournamentID))
	return nil
}

func (r *PrizeRepository) Delete(ctx context.Context, tournamentID, prizeID string) error {
	if err := r.next.Delete(ctx, tournamentID, prizeID); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, prizeTournamentPrefix(tournamentID))
	return nil
}

func prizeTournamentPrefix(tournamentID string) string {
	return "prize:list:" + tournamentID + ":"
}

type cachedPrizeByID struct {
	value  prize.Prize
	exists bool
}

func clonePrize(item prize.Prize) prize.Prize {
	out := item
	out.ImageLinks = append([]string(nil), item.ImageLinks...)
	return out
}

func clonePrizes(items []prize.Prize) []prize.Prize {
	out := make([]prize.Prize, 0, len(items))
	for _, item := range items {
		out = append(out, clonePrize(item))
	}
	return out
}

type RoleRepository struct {
	next  role.Repository
	cache *basecache.Store
}

func NewRoleRepository(next role.Repository, cache *basecache.Store) *RoleRepository {
	return &RoleRepository{next: next, cache: cache}
}

func (r *RoleRepository) List(ctx context.Context) ([]role.Role, error) {
	v, err := r.cache.GetOrLoad(ctx, "role:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return cloneRoles(items), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]role.Role)
	return cloneRoles(items), nil
}

func (r *RoleRepository) GetByID(ctx context.Context, roleID string) (role.Role, bool, error) {
	key := "role:id:" + roleID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, roleID)
		if err != nil {
			return nil, err
		}
		return cachedRoleByID{value: cloneRole(item), exists: exists}, nil
	})
	if err != nil {
		return role.Role{}, false, err
	}

	cached, _ := v.(cachedRoleByID)
	return cloneRole(cached.value), cached.exists, nil
}

func (r *RoleRepository) Update(ctx context.Context, item role.Role) error {
	if err := r.next.Update(ctx, item); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "role:")
	return nil
}

func (r *RoleRepository) Assign(ctx context.Context, assignment role.Assignment) error {
	if err := r.next.Assign(ctx, assignment); err != nil {
		return err
	}
	r.cache.Delete(ctx, playerRolesKey(assignment.PlayerID))
	return nil
}

func (r *RoleRepository) ListByPlayer(ctx context.Context, playerID string) ([]role.Role, error) {
	v, err := r.cache.GetOrLoad(ctx, playerRolesKey(playerID), func(ctx context.Context) (any, error) {
		items, err := r.next.ListByPlayer(ctx, playerID)
		if err != nil {
			return nil, err
		}
		return cloneRoles(items), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]role.Role)
	return cloneRoles(items), nil
}

type cachedRoleByID struct {
	value  role.Role
	exists bool
}

func cloneRole(item role.Role) role.Role {
	out := item
	out.Permissions = append([]string(nil), item.Permissions...)
	return out
}

func cloneRoles(items []role.Role) []role.Role {
	out := make([]role.Role, 0, len(items))
	for _, item := range items {
		out = append(out, cloneRole(item))
	}
	return out
}

func playerRolesKey(playerID string) string {
	return "role:player:" + playerID
}
