package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/clubdeskhq/clubdesk/internal/infrastructure/repository/memory"
)

func TestClubRuleService_CreateAndUpdate(t *testing.T) {
	ruleRepo := memory.NewClubRuleRepository(nil)
	service := NewClubRuleService(ruleRepo, staticIDGenerator{id: "rule-100"})

	createdAt := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return createdAt }

	created, err := service.CreateClubRule(context.Background(), CreateClubRuleInput{
		Description: " Training starts at 19:00 sharp. ",
	})
	if err != nil {
		t.Fatalf("create club rule: %v", err)
	}
	if created.ID != "rule-100" {
		t.Fatalf("unexpected rule id: %s", created.ID)
	}
	if created.Description != "Training starts at 19:00 sharp." {
		t.Fatalf("expected trimmed description, got %q", created.Description)
	}

	updatedAt := createdAt.Add(48 * time.Hour)
	service.now = func() time.Time { return updatedAt }

	updated, err := service.UpdateClubRule(context.Background(), UpdateClubRuleInput{
		RuleID:      "rule-100",
		Description: "Training starts at 19:30.",
	})
	if err != nil {
		t.Fatalf("update club rule: %v", err)
	}
	if updated.Description != "Training starts at 19:30." {
		t.Fatalf("unexpected description: %s", updated.Description)
	}
	if !updated.CreatedAt.Equal(createdAt) {
		t.Fatal("update must preserve created_at")
	}
	if !updated.UpdatedAt.Equal(updatedAt) {
		t.Fatalf("unexpected updated_at: %v", updated.UpdatedAt)
	}
}

func TestClubRuleService_CreateClubRule_RejectsBlankDescription(t *testing.T) {
	service := NewClubRuleService(memory.NewClubRuleRepository(nil), staticIDGenerator{id: "rule-100"})

	_, err := service.CreateClubRule(context.Background(), CreateClubRuleInput{Description: "  "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestClubRuleService_UpdateClubRule_NotFound(t *testing.T) {
	service := NewClubRuleService(memory.NewClubRuleRepository(memory.SeedClubRules()), staticIDGenerator{id: "unused"})

	_, err := service.UpdateClubRule(context.Background(), UpdateClubRuleInput{
		RuleID:      "missing-rule",
		Description: "Does not matter.",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClubRuleService_ListClubRules(t *testing.T) {
	service := NewClubRuleService(memory.NewClubRuleRepository(memory.SeedClubRules()), staticIDGenerator{id: "unused"})

	rules, err := service.ListClubRules(context.Background())
	if err != nil {
		t.Fatalf("list club rules: %v", err)
	}
	if len(rules) != 3 {
		t.Fatalf("unexpected rule count: %d", len(rules))
	}
}
