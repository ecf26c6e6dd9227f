// Package feed provides the read-only catalog snapshot the query engine
// works over. Businesses, plans and categories are loaded independently and
// handed out as one immutable snapshot with explicit refresh semantics; no
// ambient global caches.
package feed

import (
	"context"
	"sync"
	"time"

	"tucomercio/internal/domain/entity"
	"tucomercio/internal/domain/repository"
	"tucomercio/pkg/errors"
	"tucomercio/pkg/logger"
)

type Feed struct {
	businessRepo repository.BusinessRepository
	planRepo     repository.PlanRepository
	categoryRepo repository.CategoryRepository

	mu       sync.RWMutex
	snapshot *entity.CatalogSnapshot
	loadErr  error
}

func New(
	businessRepo repository.BusinessRepository,
	planRepo repository.PlanRepository,
	categoryRepo repository.CategoryRepository,
) *Feed {
	return &Feed{
		businessRepo: businessRepo,
		planRepo:     planRepo,
		categoryRepo: categoryRepo,
	}
}

// Start loads the first snapshot and refreshes it periodically until the
// context is cancelled.
func (f *Feed) Start(ctx context.Context, interval time.Duration) {
	if err := f.Refresh(ctx); err != nil {
		logger.Error("Initial catalog load failed: %v", err)
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := f.Refresh(ctx); err != nil {
					logger.Error("Catalog refresh failed: %v", err)
				}
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Refresh reloads the catalog. A business load failure marks the feed
// unavailable; plan or category failures only degrade ranking and colors to
// their defaults, matching how the engine treats missing optional data.
func (f *Feed) Refresh(ctx context.Context) error {
	businesses, err := f.businessRepo.List(ctx)
	if err != nil {
		f.mu.Lock()
		f.loadErr = err
		f.mu.Unlock()
		return err
	}

	plans, err := f.planRepo.List(ctx)
	if err != nil {
		logger.Warn("Plan load failed, ranking falls back to price 0: %v", err)
		plans = nil
	}

	categories, err := f.categoryRepo.List(ctx)
	if err != nil {
		logger.Warn("Category load failed, colors fall back to default: %v", err)
		categories = nil
	}

	f.mu.Lock()
	f.snapshot = &entity.CatalogSnapshot{
		Businesses: businesses,
		Plans:      plans,
		Categories: categories,
	}
	f.loadErr = nil
	f.mu.Unlock()

	return nil
}

// Snapshot returns the last good snapshot. Before the first load completes
// callers see a LOADING condition; after a failed first load they see the
// load error.
func (f *Feed) Snapshot(ctx context.Context) (*entity.CatalogSnapshot, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.snapshot != nil {
		return f.snapshot, nil
	}
	if f.loadErr != nil {
		return nil, errors.Unavailable("Catalog feed failed to load", f.loadErr)
	}
	return nil, errors.Loading("Catalog feed has not loaded yet")
}
