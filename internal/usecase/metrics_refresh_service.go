package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
)

const (
	refreshStatusSuccess = "success"
	refreshStatusFailed  = "failed"
)

type RefreshMetricsInput struct {
	// Years overrides the refresh targets; empty means every year the
	// accounts service reports as available.
	Years      []int
	MaxWorkers int
}

type RefreshMetricsResult struct {
	TaskCount    int                        `json:"task_count"`
	SuccessCount int                        `json:"success_count"`
	FailedCount  int                        `json:"failed_count"`
	WorkerCount  int                        `json:"worker_count"`
	Tasks        []RefreshMetricsTaskResult `json:"tasks"`
}

type RefreshMetricsTaskResult struct {
	Year       int    `json:"year"`
	Status     string `json:"status"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

type metricsRefresher interface {
	RefreshMetricsYear(ctx context.Context, year int) error
	AvailableYears(ctx context.Context) ([]int, error)
}

// MetricsRefreshService warms the contribution metrics cache so dashboard
// reads after a deploy or cache flush do not all pay the upstream latency.
type MetricsRefreshService struct {
	reports    metricsRefresher
	maxWorkers int
}

func NewMetricsRefreshService(reports metricsRefresher, maxWorkers int) *MetricsRefreshService {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &MetricsRefreshService{
		reports:    reports,
		maxWorkers: maxWorkers,
	}
}

func (s *MetricsRefreshService) Run(ctx context.Context, input RefreshMetricsInput) (RefreshMetricsResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MetricsRefreshService.Run")
	defer span.End()

	years, err := s.resolveYears(ctx, input.Years)
	if err != nil {
		return RefreshMetricsResult{}, err
	}

	workerCount := input.MaxWorkers
	if workerCount < 1 {
		workerCount = s.maxWorkers
	}
	if workerCount > len(years) && len(years) > 0 {
		workerCount = len(years)
	}

	result := RefreshMetricsResult{
		TaskCount:   len(years),
		WorkerCount: workerCount,
		Tasks:       make([]RefreshMetricsTaskResult, 0, len(years)),
	}
	if len(years) == 0 {
		return result, nil
	}

	results := make(chan RefreshMetricsTaskResult, len(years))

	var successCount atomic.Int32
	var failedCount atomic.Int32

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return RefreshMetricsResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, year := range years {
		year := year
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := RefreshMetricsTaskResult{Year: year}

			if err := s.reports.RefreshMetricsYear(ctx, year); err != nil {
				row.Status = refreshStatusFailed
				row.Message = err.Error()
				failedCount.Add(1)
			} else {
				row.Status = refreshStatusSuccess
				successCount.Add(1)
			}
			row.DurationMs = time.Since(start).Milliseconds()

			results <- row
		}); err != nil {
			workers.Done()
			return RefreshMetricsResult{}, fmt.Errorf("submit refresh task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		result.Tasks = append(result.Tasks, row)
	}

	sort.SliceStable(result.Tasks, func(i, j int) bool {
		return result.Tasks[i].Year < result.Tasks[j].Year
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	return result, nil
}

func (s *MetricsRefreshService) resolveYears(ctx context.Context, requested []int) ([]int, error) {
	if len(requested) == 0 {
		years, err := s.reports.AvailableYears(ctx)
		if err != nil {
			return nil, fmt.Errorf("resolve available years: %w", err)
		}
		return dedupeYears(years), nil
	}

	for _, year := range requested {
		if year <= 0 {
			return nil, fmt.Errorf("%w: year must be greater than zero", ErrInvalidInput)
		}
	}

	return dedupeYears(requested), nil
}

func dedupeYears(years []int) []int {
	seen := make(map[int]struct{}, len(years))
	out := make([]int, 0, len(years))
	for _, year := range years {
		if _, ok := seen[year]; ok {
			continue
		}
		seen[year] = struct{}{}
		out = append(out, year)
	}
	return out
}
