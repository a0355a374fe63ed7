package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/onelearning/edusphere-api/internal/dto"
	appErrors "github.com/onelearning/edusphere-api/pkg/errors"
)

// statsCacheKeyPrefix namespaces the per-user dashboard counters in Redis.
// Writers that change the counters invalidate statsCacheKeyPrefix + "*".
const statsCacheKeyPrefix = "dash:stats:"

type dashboardRepository interface {
	CountAssignedCourses(ctx context.Context, username string) (int, error)
	CountAvailableCourses(ctx context.Context) (int, error)
	AmendmentsTableExists(ctx context.Context) (bool, error)
	CountAmendments(ctx context.Context, username string) (int, error)
}

type dashboardCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// DashboardService aggregates the three per-user counters shown on the
// landing page. The counting queries run concurrently; a Redis cache in
// front of them is optional and off by default.
type DashboardService struct {
	repo    dashboardRepository
	cache   dashboardCache
	metrics *MetricsService
	logger  *zap.Logger

	cacheEnabled bool
	cacheTTL     time.Duration
}

// NewDashboardService constructs a DashboardService. cache and metrics may be
// nil when those features are disabled.
func NewDashboardService(repo dashboardRepository, cache dashboardCache, metrics *MetricsService, cacheEnabled bool, cacheTTL time.Duration, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cacheTTL <= 0 {
		cacheTTL = 30 * time.Second
	}
	return &DashboardService{
		repo:         repo,
		cache:        cache,
		metrics:      metrics,
		logger:       logger,
		cacheEnabled: cacheEnabled && cache != nil,
		cacheTTL:     cacheTTL,
	}
}

// GetStats returns the dashboard counters for the username. Amendments
// degrades to zero on deployments missing the optional amendments table.
func (s *DashboardService) GetStats(ctx context.Context, username string) (*dto.DashboardStats, error) {
	if username == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Username is required")
	}

	cacheKey := statsCacheKeyPrefix + username
	if s.cacheEnabled {
		var cached dto.DashboardStats
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			s.metrics.RecordCacheLookup(true)
			return &cached, nil
		} else if !errors.Is(err, appErrors.ErrCacheMiss) {
			s.logger.Warn("dashboard cache read failed", zap.Error(err))
		}
		s.metrics.RecordCacheLookup(false)
	}

	var (
		wg        sync.WaitGroup
		assigned  int
		available int
		amendCnt  int

		assignedErr  error
		availableErr error
		amendErr     error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		assigned, assignedErr = s.repo.CountAssignedCourses(ctx, username)
	}()
	go func() {
		defer wg.Done()
		available, availableErr = s.repo.CountAvailableCourses(ctx)
	}()
	go func() {
		defer wg.Done()
		exists, err := s.repo.AmendmentsTableExists(ctx)
		if err != nil {
			amendErr = err
			return
		}
		if !exists {
			return
		}
		amendCnt, amendErr = s.repo.CountAmendments(ctx, username)
	}()
	wg.Wait()

	if err := errors.Join(assignedErr, availableErr); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to fetch dashboard stats")
	}
	// The amendments table is optional; any failure on that path degrades
	// the counter to zero instead of failing the request.
	if amendErr != nil {
		s.logger.Warn("amendments count unavailable", zap.String("username", username), zap.Error(amendErr))
		amendCnt = 0
	}

	stats := &dto.DashboardStats{
		Username:         username,
		AssignedCourses:  assigned,
		AvailableCourses: available,
		Amendments:       amendCnt,
	}

	if s.cacheEnabled {
		if err := s.cache.Set(ctx, cacheKey, stats, s.cacheTTL); err != nil {
			s.logger.Warn("dashboard cache write failed", zap.Error(err))
		}
	}
	return stats, nil
}
