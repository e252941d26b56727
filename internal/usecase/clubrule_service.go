package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/clubdeskhq/clubdesk/internal/domain/clubrule"
	idgen "github.com/clubdeskhq/clubdesk/internal/platform/id"
)

type CreateClubRuleInput struct {
	Description string
}

type UpdateClubRuleInput struct {
	RuleID      string
	Description string
}

type ClubRuleService struct {
	ruleRepo clubrule.Repository
	idGen    idgen.Generator
	now      func() time.Time
}

func NewClubRuleService(ruleRepo clubrule.Repository, idGen idgen.Generator) *ClubRuleService {
	return &ClubRuleService{
		ruleRepo: ruleRepo,
		idGen:    idGen,
		now:      time.Now,
	}
}

func (s *ClubRuleService) ListClubRules(ctx context.Context) ([]clubrule.ClubRule, error) {
	rules, err := s.ruleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list club rules: %w", err)
	}

	return rules, nil
}

func (s *ClubRuleService) GetClubRule(ctx context.Context, ruleID string) (clubrule.ClubRule, error) {
	ruleID = strings.TrimSpace(ruleID)
	if ruleID == "" {
		return clubrule.ClubRule{}, fmt.Errorf("%w: rule id is required", ErrInvalidInput)
	}

	item, exists, err := s.ruleRepo.GetByID(ctx, ruleID)
	if err != nil {
		return clubrule.ClubRule{}, fmt.Errorf("get club rule: %w", err)
	}
	if !exists {
		return clubrule.ClubRule{}, fmt.Errorf("%w: club rule=%s", ErrNotFound, ruleID)
	}

	return item, nil
}

func (s *ClubRuleService) CreateClubRule(ctx context.Context, input CreateClubRuleInput) (clubrule.ClubRule, error) {
	ruleID, err := s.idGen.NewID()
	if err != nil {
		return clubrule.ClubRule{}, fmt.Errorf("generate club rule id: %w", err)
	}

	now := s.now().UTC()
	item := clubrule.ClubRule{
		ID:          ruleID,
		Description: strings.TrimSpace(input.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := item.Validate(); err != nil {
		return clubrule.ClubRule{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.ruleRepo.Create(ctx, item); err != nil {
		return clubrule.ClubRule{}, fmt.Errorf("create club rule: %w", err)
	}

	return item, nil
}

func (s *ClubRuleService) UpdateClubRule(ctx context.Context, input UpdateClubRuleInput) (clubrule.ClubRule, error) {
	input.RuleID = strings.TrimSpace(input.RuleID)
	if input.RuleID == "" {
		return clubrule.ClubRule{}, fmt.Errorf("%w: rule id is required", ErrInvalidInput)
	}

	current, exists, err := s.ruleRepo.GetByID(ctx, input.RuleID)
	if err != nil {
		return clubrule.ClubRule{}, fmt.Errorf("get club rule for update: %w", err)
	}
	if !exists {
		return clubrule.ClubRule{}, fmt.Errorf("%w: club rule=%s", ErrNotFound, input.RuleID)
	}

	item := current
	item.Description = strings.TrimSpace(input.Description)
	item.UpdatedAt = s.now().UTC()
	if err := item.Validate(); err != nil {
		return clubrule.ClubRule{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.ruleRepo.Update(ctx, item); err != nil {
		return clubrule.ClubRule{}, fmt.Errorf("update club rule: %w", err)
	}

	return item, nil
}
