package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/clubdeskhq/clubdesk/internal/domain/venue"
	idgen "github.com/clubdeskhq/clubdesk/internal/platform/id"
)

type CreateVenueInput struct {
	Name    string
	Address string
	Active  bool
}

type UpdateVenueInput struct {
	VenueID string
	Name    string
	Address string
	Active  bool
}

type VenueService struct {
	venueRepo venue.Repository
	idGen     idgen.Generator
	now       func() time.Time
}

func NewVenueService(venueRepo venue.Repository, idGen idgen.Generator) *VenueService {
	return &VenueService{
		venueRepo: venueRepo,
		idGen:     idGen,
		now:       time.Now,
	}
}

func (s *VenueService) ListVenues(ctx context.Context) ([]venue.Venue, error) {
	venues, err := s.venueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}

	return venues, nil
}

func (s *VenueService) GetVenue(ctx context.Context, venueID string) (venue.Venue, error) {
	venueID = strings.TrimSpace(venueID)
	if venueID == "" {
		return venue.Venue{}, fmt.Errorf("%w: venue id is required", ErrInvalidInput)
	}

	item, exists, err := s.venueRepo.GetByID(ctx, venueID)
	if err != nil {
		return venue.Venue{}, fmt.Errorf("get venue: %w", err)
	}
	if !exists {
		return venue.Venue{}, fmt.Errorf("%w: venue=%s", ErrNotFound, venueID)
	}

	return item, nil
}

func (s *VenueService) CreateVenue(ctx context.Context, input CreateVenueInput) (venue.Venue, error) {
	venueID, err := s.idGen.NewID()
	if err != nil {
		return venue.Venue{}, fmt.Errorf("generate venue id: %w", err)
	}

	now := s.now().UTC()
	item := venue.Venue{
		ID:        venueID,
		Name:      strings.TrimSpace(input.Name),
		Address:   strings.TrimSpace(input.Address),
		Active:    input.Active,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := item.Validate(); err != nil {
		return venue.Venue{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.venueRepo.Create(ctx, item); err != nil {
		return venue.Venue{}, fmt.Errorf("create venue: %w", err)
	}

	return item, nil
}

func (s *VenueService) UpdateVenue(ctx context.Context, input UpdateVenueInput) (venue.Venue, error) {
	input.VenueID = strings.TrimSpace(input.VenueID)
	if input.VenueID == "" {
		return venue.Venue{}, fmt.Errorf("%w: venue id is required", ErrInvalidInput)
	}

	current, exists, err := s.venueRepo.GetByID(ctx, input.VenueID)
	if err != nil {
		return venue.Venue{}, fmt.Errorf("get venue for update: %w", err)
	}
	if !exists {
		return venue.Venue{}, fmt.Errorf("%w: venue=%s", ErrNotFound, input.VenueID)
	}

	item := current
	item.Name = strings.TrimSpace(input.Name)
	item.Address = strings.TrimSpace(input.Address)
	item.Active = input.Active
	item.UpdatedAt = s.now().UTC()
	if err := item.Validate(); err != nil {
		return venue.Venue{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.venueRepo.Update(ctx, item); err != nil {
		return venue.Venue{}, fmt.Errorf("update venue: %w", err)
	}

	return item, nil
}
