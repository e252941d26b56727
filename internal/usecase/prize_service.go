package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/clubdeskhq/clubdesk/internal/domain/prize"
	idgen "github.com/clubdeskhq/clubdesk/internal/platform/id"
)

type CreatePrizeInput struct {
	TournamentID string
	Type         prize.Type
	TeamID       string
	TeamName     string
	PlayerID     string
	PlayerName   string
	EmployeeID   string
	PositionRank int
	Amount       float64
	Category     prize.Category
	Description  string
	ImageLinks   []string
}

type UpdatePrizeInput struct {
	TournamentID string
	PrizeID      string
	Type         prize.Type
	TeamID       string
	TeamName     string
	PlayerID     string
	PlayerName   string
	EmployeeID   string
	PositionRank int
	Amount       float64
	Category     prize.Category
	Description  string
	ImageLinks   []string
}

type PrizeService struct {
	prizeRepo prize.Repository
	idGen     idgen.Generator
}

func NewPrizeService(prizeRepo prize.Repository, idGen idgen.Generator) *PrizeService {
	return &PrizeService{
		prizeRepo: prizeRepo,
		idGen:     idGen,
	}
}

func (s *PrizeService) ListTournamentPrizes(ctx context.Context, tournamentID string, filter prize.ListFilter) ([]prize.Prize, error) {
	tournamentID = strings.TrimSpace(tournamentID)
	if tournamentID == "" {
		return nil, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}
	if filter.Type != "" && filter.Type != prize.TypeTeam && filter.Type != prize.TypePlayer {
		return nil, fmt.Errorf("%w: invalid prize type filter: %s", ErrInvalidInput, filter.Type)
	}

	prizes, err := s.prizeRepo.ListByTournament(ctx, tournamentID, filter)
	if err != nil {
		return nil, fmt.Errorf("list tournament prizes: %w", err)
	}

	return prizes, nil
}

func (s *PrizeService) GetTournamentPrize(ctx context.Context, tournamentID, prizeID string) (prize.Prize, error) {
	tournamentID = strings.TrimSpace(tournamentID)
	prizeID = strings.TrimSpace(prizeID)
	if tournamentID == "" || prizeID == "" {
		return prize.Prize{}, fmt.Errorf("%w: tournament id and prize id are required", ErrInvalidInput)
	}

	item, exists, err := s.prizeRepo.GetByID(ctx, tournamentID, prizeID)
	if err != nil {
		return prize.Prize{}, fmt.Errorf("get tournament prize: %w", err)
	}
	if !exists {
		return prize.Prize{}, fmt.Errorf("%w: prize=%s", ErrNotFound, prizeID)
	}

	return item, nil
}

func (s *PrizeService) CreateTournamentPrize(ctx context.Context, input CreatePrizeInput) (prize.Prize, error) {
	prizeID, err := s.idGen.NewID()
	if err != nil {
		return prize.Prize{}, fmt.Errorf("generate prize id: %w", err)
	}

	item := prizeFromInput(prizeID, input.TournamentID, input)
	if err := item.Validate(); err != nil {
		return prize.Prize{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.prizeRepo.Create(ctx, item); err != nil {
		return prize.Prize{}, fmt.Errorf("create tournament prize: %w", err)
	}

	return item, nil
}

func (s *PrizeService) UpdateTournamentPrize(ctx context.Context, input UpdatePrizeInput) (prize.Prize, error) {
	input.TournamentID = strings.TrimSpace(input.TournamentID)
	input.PrizeID = strings.TrimSpace(input.PrizeID)
	if input.TournamentID == "" || input.PrizeID == "" {
		return prize.Prize{}, fmt.Errorf("%w: tournament id and prize id are required", ErrInvalidInput)
	}

	_, exists, err := s.prizeRepo.GetByID(ctx, input.TournamentID, input.PrizeID)
	if err != nil {
		return prize.Prize{}, fmt.Errorf("get tournament prize for update: %w", err)
	}
	if !exists {
		return prize.Prize{}, fmt.Errorf("%w: prize=%s", ErrNotFound, input.PrizeID)
	}

	item := prizeFromInput(input.PrizeID, input.TournamentID, CreatePrizeInput{
		TournamentID: input.TournamentID,
		Type:         input.Type,
		TeamID:       input.TeamID,
		TeamName:     input.TeamName,
		PlayerID:     input.PlayerID,
		PlayerName:   input.PlayerName,
		EmployeeID:   input.EmployeeID,
		PositionRank: input.PositionRank,
		Amount:       input.Amount,
		Category:     input.Category,
		Description:  input.Description,
		ImageLinks:   input.ImageLinks,
	})
	if err := item.Validate(); err != nil {
		return prize.Prize{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.prizeRepo.Update(ctx, item); err != nil {
		return prize.Prize{}, fmt.Errorf("update tournament prize: %w", err)
	}

	return item, nil
}

func (s *PrizeService) DeleteTournamentPrize(ctx context.Context, tournamentID, prizeID string) error {
	tournamentID = strings.TrimSpace(tournamentID)
	prizeID = strings.TrimSpace(prizeID)
	if tournamentID == "" || prizeID == "" {
		return fmt.Errorf("%w: tournament id and prize id are required", ErrInvalidInput)
	}

	_, exists, err := s.prizeRepo.GetByID(ctx, tournamentID, prizeID)
	if err != nil {
		return fmt.Errorf("get tournament prize for delete: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: prize=%s", ErrNotFound, prizeID)
	}

	if err := s.prizeRepo.Delete(ctx, tournamentID, prizeID); err != nil {
		return fmt.Errorf("delete tournament prize: %w", err)
	}

	return nil
}

func prizeFromInput(prizeID, tournamentID string, input CreatePrizeInput) prize.Prize {
	links := make([]string, 0, len(input.ImageLinks))
	for _, link := range input.ImageLinks {
		link = strings.TrimSpace(link)
		if link == "" {
			continue
		}
		links = append(links, link)
	}

	return prize.Prize{
		ID:           prizeID,
		TournamentID: strings.TrimSpace(tournamentID),
		Type:         input.Type,
		TeamID:       strings.TrimSpace(input.TeamID),
		TeamName:     strings.TrimSpace(input.TeamName),
		PlayerID:     strings.TrimSpace(input.PlayerID),
		PlayerName:   strings.TrimSpace(input.PlayerName),
		EmployeeID:   strings.TrimSpace(input.EmployeeID),
		PositionRank: input.PositionRank,
		Amount:       input.Amount,
		Category:     prize.Category(strings.ToUpper(strings.TrimSpace(string(input.Category)))),
		Description:  strings.TrimSpace(input.Description),
		ImageLinks:   links,
	}
}
