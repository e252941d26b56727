package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/clubdeskhq/clubdesk/internal/infrastructure/repository/memory"
)

type staticIDGenerator struct {
	id string
}

func (g staticIDGenerator) NewID() (string, error) {
	return g.id, nil
}

func TestVenueService_CreateVenue(t *testing.T) {
	venueRepo := memory.NewVenueRepository(nil)
	service := NewVenueService(venueRepo, staticIDGenerator{id: "venue-001"})

	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	created, err := service.CreateVenue(context.Background(), CreateVenueInput{
		Name:    "  Lapangan Senayan  ",
		Address: "Jl. Pintu Satu Senayan, Jakarta",
		Active:  true,
	})
	if err != nil {
		t.Fatalf("create venue: %v", err)
	}
	if created.ID != "venue-001" {
		t.Fatalf("unexpected venue id: %s", created.ID)
	}
	if created.Name != "Lapangan Senayan" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}
	if !created.CreatedAt.Equal(now) || !created.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected timestamps: created=%v updated=%v", created.CreatedAt, created.UpdatedAt)
	}

	got, err := service.GetVenue(context.Background(), "venue-001")
	if err != nil {
		t.Fatalf("get venue after create: %v", err)
	}
	if got.Address != created.Address {
		t.Fatalf("unexpected address: %s", got.Address)
	}
}

func TestVenueService_CreateVenue_RejectsBlankName(t *testing.T) {
	service := NewVenueService(memory.NewVenueRepository(nil), staticIDGenerator{id: "venue-001"})

	_, err := service.CreateVenue(context.Background(), CreateVenueInput{
		Name:    "   ",
		Address: "Jl. Sudirman 1",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestVenueService_UpdateVenue(t *testing.T) {
	venueRepo := memory.NewVenueRepository(memory.SeedVenues())
	service := NewVenueService(venueRepo, staticIDGenerator{id: "unused"})

	venues, err := service.ListVenues(context.Background())
	if err != nil {
		t.Fatalf("list venues: %v", err)
	}
	if len(venues) == 0 {
		t.Fatal("expected seeded venues")
	}

	target := venues[0]
	updatedAt := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return updatedAt }

	updated, err := service.UpdateVenue(context.Background(), UpdateVenueInput{
		VenueID: target.ID,
		Name:    "Renamed Ground",
		Address: target.Address,
		Active:  false,
	})
	if err != nil {
		t.Fatalf("update venue: %v", err)
	}
	if updated.Name != "Renamed Ground" {
		t.Fatalf("unexpected name: %s", updated.Name)
	}
	if updated.Active {
		t.Fatal("expected venue to be deactivated")
	}
	if !updated.CreatedAt.Equal(target.CreatedAt) {
		t.Fatal("update must preserve created_at")
	}
	if !updated.UpdatedAt.Equal(updatedAt) {
		t.Fatalf("unexpected updated_at: %v", updated.UpdatedAt)
	}
}

func TestVenueService_UpdateVenue_NotFound(t *testing.T) {
	service := NewVenueService(memory.NewVenueRepository(nil), staticIDGenerator{id: "unused"})

	_, err := service.UpdateVenue(context.Background(), UpdateVenueInput{
		VenueID: "missing-venue",
		Name:    "Name",
		Address: "Address",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestVenueService_GetVenue_RequiresID(t *testing.T) {
	service := NewVenueService(memory.NewVenueRepository(nil), staticIDGenerator{id: "unused"})

	_, err := service.GetVenue(context.Background(), "   ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
