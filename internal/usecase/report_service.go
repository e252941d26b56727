package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/clubdeskhq/clubdesk/internal/domain/contribution"
	basecache "github.com/clubdeskhq/clubdesk/internal/platform/cache"
)

// AccountSummary is the club-wide financial rollup owned by the accounts
// service.
type AccountSummary struct {
	TotalCollected float64
	TotalExpenses  float64
	Balance        float64
	PendingPlayers int
}

// AccountMetricsReport is one year of per-player contribution data as the
// accounts service reports it.
type AccountMetricsReport struct {
	Players        []contribution.PlayerMetric
	AvailableYears []int
}

// AccountReportProvider is the upstream accounts service surface the report
// use cases depend on.
type AccountReportProvider interface {
	FetchSummary(ctx context.Context) (AccountSummary, error)
	FetchPlayerCollectionMetrics(ctx context.Context, year int) (AccountMetricsReport, error)
}

type PlayerMetricsQuery struct {
	Year   int
	Month  int
	Filter contribution.FilterMode
}

type PlayerMetricRow struct {
	Player contribution.PlayerMetric
	Stats  contribution.PlayerStats
	Due    bool
}

type PlayerMetricsReport struct {
	Year           int
	Month          int
	Filter         contribution.FilterMode
	Rows           []PlayerMetricRow
	Stats          contribution.Stats
	AvailableYears []int
}

// ClubDashboard is the combined view the admin frontend renders on its
// landing page.
type ClubDashboard struct {
	Summary AccountSummary
	Metrics PlayerMetricsReport
}

type ReportService struct {
	accounts AccountReportProvider
	cache    *basecache.Store
	now      func() time.Time
}

func NewReportService(accounts AccountReportProvider, cache *basecache.Store) *ReportService {
	return &ReportService{
		accounts: accounts,
		cache:    cache,
		now:      time.Now,
	}
}

func (s *ReportService) GetSummary(ctx context.Context) (AccountSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.GetSummary")
	defer span.End()

	v, err := s.cache.GetOrLoad(ctx, "accounts:summary", func(ctx context.Context) (any, error) {
		return s.accounts.FetchSummary(ctx)
	})
	if err != nil {
		return AccountSummary{}, fmt.Errorf("fetch account summary: %w", err)
	}

	summary, _ := v.(AccountSummary)
	return summary, nil
}

func (s *ReportService) GetPlayerCollectionMetrics(ctx context.Context, query PlayerMetricsQuery) (PlayerMetricsReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.GetPlayerCollectionMetrics")
	defer span.End()

	query, err := s.normalizeQuery(query)
	if err != nil {
		return PlayerMetricsReport{}, err
	}

	report, err := s.loadMetrics(ctx, query.Year)
	if err != nil {
		return PlayerMetricsReport{}, err
	}

	return s.buildMetricsReport(report, query), nil
}

// GetDashboard fans out to the summary and metrics reads in parallel; the
// frontend renders both on one screen.
func (s *ReportService) GetDashboard(ctx context.Context, query PlayerMetricsQuery) (ClubDashboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.GetDashboard")
	defer span.End()

	query, err := s.normalizeQuery(query)
	if err != nil {
		return ClubDashboard{}, err
	}

	var (
		summary AccountSummary
		metrics PlayerMetricsReport
	)

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		var err error
		summary, err = s.GetSummary(ctx)
		return err
	})
	p.Go(func(ctx context.Context) error {
		report, err := s.loadMetrics(ctx, query.Year)
		if err != nil {
			return err
		}
		metrics = s.buildMetricsReport(report, query)
		return nil
	})
	if err := p.Wait(); err != nil {
		return ClubDashboard{}, err
	}

	return ClubDashboard{
		Summary: summary,
		Metrics: metrics,
	}, nil
}

// RefreshMetricsYear reloads one year from the accounts service and replaces
// the cached entry. Used by the warm-up job.
func (s *ReportService) RefreshMetricsYear(ctx context.Context, year int) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.RefreshMetricsYear")
	defer span.End()

	if year <= 0 {
		return fmt.Errorf("%w: year must be greater than zero", ErrInvalidInput)
	}

	report, err := s.accounts.FetchPlayerCollectionMetrics(ctx, year)
	if err != nil {
		return fmt.Errorf("refresh metrics for year %d: %w", year, err)
	}

	s.cache.Set(ctx, metricsYearKey(year), report)
	return nil
}

// AvailableYears reports which years the accounts service can serve, probing
// through the current year's cached report.
func (s *ReportService) AvailableYears(ctx context.Context) ([]int, error) {
	report, err := s.loadMetrics(ctx, s.now().UTC().Year())
	if err != nil {
		return nil, err
	}

	return append([]int(nil), report.AvailableYears...), nil
}

func (s *ReportService) loadMetrics(ctx context.Context, year int) (AccountMetricsReport, error) {
	v, err := s.cache.GetOrLoad(ctx, metricsYearKey(year), func(ctx context.Context) (any, error) {
		return s.accounts.FetchPlayerCollectionMetrics(ctx, year)
	})
	if err != nil {
		return AccountMetricsReport{}, fmt.Errorf("fetch player collection metrics: %w", err)
	}

	report, _ := v.(AccountMetricsReport)
	return report, nil
}

func (s *ReportService) buildMetricsReport(report AccountMetricsReport, query PlayerMetricsQuery) PlayerMetricsReport {
	now := s.now().UTC()
	filtered := contribution.Filter(report.Players, query.Filter, query.Year, query.Month)

	rows := make([]PlayerMetricRow, 0, len(filtered))
	for _, player := range filtered {
		rows = append(rows, PlayerMetricRow{
			Player: player,
			Stats:  contribution.StatsFor(player, query.Year, query.Month),
			Due:    contribution.IsDue(player, query.Year, query.Month, now),
		})
	}

	// Header stats always cover the full roster; the filter narrows rows only.
	return PlayerMetricsReport{
		Year:           query.Year,
		Month:          query.Month,
		Filter:         query.Filter,
		Rows:           rows,
		Stats:          contribution.Aggregate(report.Players, query.Year, query.Month),
		AvailableYears: append([]int(nil), report.AvailableYears...),
	}
}

func (s *ReportService) normalizeQuery(query PlayerMetricsQuery) (PlayerMetricsQuery, error) {
	now := s.now().UTC()
	if query.Year == 0 {
		query.Year = now.Year()
	}
	if query.Month == 0 {
		query.Month = int(now.Month())
	}
	if query.Filter == "" {
		query.Filter = contribution.FilterAll
	}

	if query.Year < 0 {
		return PlayerMetricsQuery{}, fmt.Errorf("%w: year must be greater than zero", ErrInvalidInput)
	}
	if query.Month < 1 || query.Month > 12 {
		return PlayerMetricsQuery{}, fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidInput)
	}
	if _, ok := contribution.AllFilterModes[query.Filter]; !ok {
		return PlayerMetricsQuery{}, fmt.Errorf("%w: invalid filter mode: %s", ErrInvalidInput, query.Filter)
	}

	return query, nil
}

func metricsYearKey(year int) string {
	return "accounts:metrics:year:" + strconv.Itoa(year)
}
