package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/raulk/clock"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/provider"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/repository"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/eligibility"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/infrastructure/metrics"
)

const snapshotCacheKey = "loan:reference:snapshot:v1"

// ReferenceRepositories groups the reference data repositories
type ReferenceRepositories struct {
	Banks          repository.BankRepository
	Products       repository.ProductRepository
	Categories     repository.CompanyCategoryRepository
	Companies      repository.CompanyRepository
	SalaryCriteria repository.SalaryCriteriaRepository
	LoanRules      repository.LoanRuleRepository
}

// ReferenceService manages lender reference data and serves the snapshot
// the matching engine evaluates against. Every write invalidates the cached
// snapshot.
type ReferenceService struct {
	repos       ReferenceRepositories
	cache       provider.SnapshotCache
	snapshotTTL time.Duration
	blobs       provider.BlobStore
	clock       clock.Clock
	logger      *zap.Logger
}

// NewReferenceService creates a new reference service. cache and blobs may
// be nil when redis or object storage are disabled.
func NewReferenceService(
	repos ReferenceRepositories,
	cache provider.SnapshotCache,
	snapshotTTL time.Duration,
	blobs provider.BlobStore,
	clk clock.Clock,
	logger *zap.Logger,
) *ReferenceService {
	return &ReferenceService{
		repos:       repos,
		cache:       cache,
		snapshotTTL: snapshotTTL,
		blobs:       blobs,
		clock:       clk,
		logger:      logger,
	}
}

// Snapshot returns the current reference data, from cache when possible.
// Cache failures degrade to a database read.
func (s *ReferenceService) Snapshot(ctx context.Context) (*eligibility.Snapshot, error) {
	if s.cache == nil {
		metrics.ObserveSnapshotCache(metrics.CacheDisabled)
	} else {
		var cached eligibility.Snapshot
		found, err := s.cache.GetJSON(ctx, snapshotCacheKey, &cached)
		switch {
		case err != nil:
			metrics.ObserveSnapshotCache(metrics.CacheError)
			s.logger.Warn("Failed to read reference snapshot from cache", zap.Error(err))
		case found:
			metrics.ObserveSnapshotCache(metrics.CacheHit)
			return &cached, nil
		default:
			metrics.ObserveSnapshotCache(metrics.CacheMiss)
		}
	}

	banks, err := s.repos.Banks.ListForMatching(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load reference snapshot: %w", err)
	}
	snapshot := &eligibility.Snapshot{
		Banks:    banks,
		LoadedAt: s.clock.Now().UTC(),
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, snapshotCacheKey, snapshot, s.snapshotTTL); err != nil {
			s.logger.Warn("Failed to cache reference snapshot", zap.Error(err))
		}
	}

	return snapshot, nil
}

// invalidate drops the cached snapshot after a reference data write.
func (s *ReferenceService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, snapshotCacheKey); err != nil {
		s.logger.Warn("Failed to invalidate reference snapshot", zap.Error(err))
	}
}
