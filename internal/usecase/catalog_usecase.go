package usecase

import (
	"context"
	"sort"
	"strings"
	"sync"

	"tucomercio/internal/domain/entity"
	"tucomercio/internal/infrastructure/analytics"
	"tucomercio/pkg/errors"
	"tucomercio/pkg/locale"
)

// DefaultPageSize matches the 3x4 card grid of the home page.
const DefaultPageSize = 12

// SnapshotProvider hands out the read-only catalog state the engine filters
// over. The engine never mutates what it receives.
type SnapshotProvider interface {
	Snapshot(ctx context.Context) (*entity.CatalogSnapshot, error)
}

type SearchSpec struct {
	Term       string
	Location   string
	Categories []string
}

type SearchResult struct {
	Items   []*entity.RankedBusiness `json:"items"`
	Total   int                      `json:"total"`
	HasMore bool                     `json:"hasMore"`
}

type CatalogUseCase struct {
	feed     SnapshotProvider
	tracker  analytics.Tracker
	loc      *locale.Localizer
	pageSize int

	mu       sync.Mutex
	lastSpec string
}

func NewCatalogUseCase(
	feed SnapshotProvider,
	tracker analytics.Tracker,
	loc *locale.Localizer,
	pageSize int,
) *CatalogUseCase {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return &CatalogUseCase{
		feed:     feed,
		tracker:  tracker,
		loc:      loc,
		pageSize: pageSize,
	}
}

func (uc *CatalogUseCase) PageSize() int {
	return uc.pageSize
}

// Search filters, ranks and pages the catalog. The whole pass is pure over
// the snapshot: one filter sweep, one stable sort, one slice, so it stays
// cheap to recompute on every spec change.
func (uc *CatalogUseCase) Search(ctx context.Context, spec SearchSpec, displayCount int) (*SearchResult, error) {
	snapshot, err := uc.feed.Snapshot(ctx)
	if err != nil {
		return nil, uc.mapFeedError(err)
	}

	uc.track(ctx, spec)

	filtered := make([]*entity.Business, 0, len(snapshot.Businesses))
	for _, business := range snapshot.Businesses {
		if matchesSpec(business, spec) {
			filtered = append(filtered, business)
		}
	}

	// Paid placement first, newest first within a tier. The sort must be
	// stable so pagination reproduces the same order across reloads.
	prices := planPrices(snapshot.Plans)
	sort.SliceStable(filtered, func(i, j int) bool {
		priceI := prices[filtered[i].PlanID]
		priceJ := prices[filtered[j].PlanID]
		if priceI != priceJ {
			return priceI > priceJ
		}
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	total := len(filtered)
	if displayCount <= 0 {
		displayCount = uc.pageSize
	}
	end := displayCount
	if end > total {
		end = total
	}

	colors := categoryColors(snapshot.Categories)
	items := make([]*entity.RankedBusiness, 0, end)
	for _, business := range filtered[:end] {
		items = append(items, &entity.RankedBusiness{
			Business:   business,
			Categories: resolveCategoryTags(business.Categories, colors),
		})
	}

	return &SearchResult{
		Items:   items,
		Total:   total,
		HasMore: end < total,
	}, nil
}

// ActiveCategories feeds the filter panel.
func (uc *CatalogUseCase) ActiveCategories(ctx context.Context) ([]*entity.Category, error) {
	snapshot, err := uc.feed.Snapshot(ctx)
	if err != nil {
		return nil, uc.mapFeedError(err)
	}

	active := make([]*entity.Category, 0, len(snapshot.Categories))
	for _, category := range snapshot.Categories {
		if category.IsActive {
			active = append(active, category)
		}
	}

	return active, nil
}

func (uc *CatalogUseCase) Plans(ctx context.Context) ([]*entity.Plan, error) {
	snapshot, err := uc.feed.Snapshot(ctx)
	if err != nil {
		return nil, uc.mapFeedError(err)
	}

	return snapshot.Plans, nil
}

// track emits one analytics event per filter kind, once per spec change.
// Re-running the same spec (a re-render, a load-more call) emits nothing.
func (uc *CatalogUseCase) track(ctx context.Context, spec SearchSpec) {
	fingerprint := specFingerprint(spec)

	uc.mu.Lock()
	changed := fingerprint != uc.lastSpec
	if changed {
		uc.lastSpec = fingerprint
	}
	uc.mu.Unlock()

	if !changed {
		return
	}

	if spec.Term != "" {
		uc.tracker.TrackSearch(ctx, "business", spec.Term)
	}
	if spec.Location != "" {
		uc.tracker.TrackSearch(ctx, "location", spec.Location)
	}
	if len(spec.Categories) > 0 {
		uc.tracker.TrackFilter(ctx, "categories", spec.Categories)
	}
}

func (uc *CatalogUseCase) mapFeedError(err error) error {
	if errors.Is(err, errors.CodeLoading) {
		return errors.Loading(uc.loc.T(locale.MsgCatalogLoading))
	}
	return errors.Unavailable(uc.loc.T(locale.MsgCatalogUnavailable), err)
}

// matchesSpec applies the four conjunctive predicates. Empty criteria are
// vacuously true; matching is case-folded substring.
func matchesSpec(business *entity.Business, spec SearchSpec) bool {
	if !business.IsActive {
		return false
	}

	if spec.Term != "" {
		term := strings.ToLower(spec.Term)
		if !strings.Contains(strings.ToLower(business.Name), term) &&
			!strings.Contains(strings.ToLower(business.Description), term) &&
			!strings.Contains(strings.ToLower(business.ShortDescription), term) {
			return false
		}
	}

	if spec.Location != "" {
		if !strings.Contains(strings.ToLower(business.Address), strings.ToLower(spec.Location)) {
			return false
		}
	}

	if len(spec.Categories) > 0 {
		requested := make(map[string]bool, len(spec.Categories))
		for _, name := range spec.Categories {
			requested[name] = true
		}

		found := false
		for _, name := range business.Categories {
			if requested[name] {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

func planPrices(plans []*entity.Plan) map[string]float64 {
	prices := make(map[string]float64, len(plans))
	for _, plan := range plans {
		prices[plan.ID] = plan.Price
	}
	return prices
}

func categoryColors(categories []*entity.Category) map[string]string {
	colors := make(map[string]string, len(categories))
	for _, category := range categories {
		colors[category.Name] = category.Color
	}
	return colors
}

// resolveCategoryTags looks colors up by category NAME. A stale name gets
// the default color instead of failing the query.
func resolveCategoryTags(names []string, colors map[string]string) []entity.CategoryTag {
	tags := make([]entity.CategoryTag, 0, len(names))
	for _, name := range names {
		color, ok := colors[name]
		if !ok || color == "" {
			color = entity.DefaultCategoryColor
		}
		tags = append(tags, entity.CategoryTag{Name: name, Color: color})
	}
	return tags
}

func specFingerprint(spec SearchSpec) string {
	categories := append([]string(nil), spec.Categories...)
	sort.Strings(categories)

	var b strings.Builder
	b.WriteString(spec.Term)
	b.WriteByte(0)
	b.WriteString(spec.Location)
	b.WriteByte(0)
	b.WriteString(strings.Join(categories, ","))
	return b.String()
}
