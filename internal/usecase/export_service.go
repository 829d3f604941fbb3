package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/hasysamur-cmd/cosmus-league/internal/platform/logging"
	"github.com/hasysamur-cmd/cosmus-league/internal/store"
)

const (
	exportStatusSuccess = "success"
	exportStatusFailed  = "failed"
)

type ExportResult struct {
	SeasonCount  int                `json:"season_count"`
	SuccessCount int                `json:"success_count"`
	FailedCount  int                `json:"failed_count"`
	WorkerCount  int                `json:"worker_count"`
	Seasons      []ExportTaskResult `json:"seasons"`
}

type ExportTaskResult struct {
	SeasonID   string `json:"season_id"`
	SeasonName string `json:"season_name"`
	Status     string `json:"status"`
	DurationMs int64  `json:"duration_ms"`
	Message    string `json:"message,omitempty"`
}

// ExportService pushes archived seasons to the external backup endpoint.
// Bulk export fans the archive out over a bounded worker pool; one dead
// season upload never blocks the rest.
type ExportService struct {
	store      *store.Store
	exporter   ArchiveExporter
	logger     *logging.Logger
	maxWorkers int
}

func NewExportService(st *store.Store, exporter ArchiveExporter, maxWorkers int, logger *logging.Logger) *ExportService {
	if maxWorkers <= 0 {
		maxWorkers = 4
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &ExportService{
		store:      st,
		exporter:   exporter,
		logger:     logger,
		maxWorkers: maxWorkers,
	}
}

// ExportAll re-pushes the whole archive.
func (s *ExportService) ExportAll(ctx context.Context) (ExportResult, error) {
	if s.exporter == nil {
		return ExportResult{}, fmt.Errorf("%w: archive export is not configured", ErrDependencyUnavailable)
	}

	archived := s.store.View().ArchivedSeasons
	result := ExportResult{SeasonCount: len(archived)}
	if len(archived) == 0 {
		return result, nil
	}

	workerCount := s.maxWorkers
	if workerCount > len(archived) {
		workerCount = len(archived)
	}
	result.WorkerCount = workerCount

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return ExportResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make(chan ExportTaskResult, len(archived))

	var successCount atomic.Int32
	var failedCount atomic.Int32

	var workers sync.WaitGroup
	for _, past := range archived {
		past := past
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := ExportTaskResult{
				SeasonID:   past.ID,
				SeasonName: past.Name,
				Status:     exportStatusSuccess,
			}

			if pushErr := s.exporter.PushSeason(ctx, past); pushErr != nil {
				row.Status = exportStatusFailed
				row.Message = pushErr.Error()
				failedCount.Add(1)
			} else {
				successCount.Add(1)
			}
			row.DurationMs = time.Since(start).Milliseconds()

			results <- row
		}); err != nil {
			workers.Done()
			return ExportResult{}, fmt.Errorf("submit season to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		result.Seasons = append(result.Seasons, row)
	}
	sort.SliceStable(result.Seasons, func(i, j int) bool {
		return result.Seasons[i].SeasonID < result.Seasons[j].SeasonID
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())

	s.logger.InfoContext(ctx, "archive export finished",
		"seasons", result.SeasonCount,
		"success", result.SuccessCount,
		"failed", result.FailedCount,
	)
	return result, nil
}
