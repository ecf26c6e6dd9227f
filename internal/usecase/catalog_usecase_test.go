package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tucomercio/internal/domain/entity"
	"tucomercio/pkg/errors"
	"tucomercio/pkg/locale"
)

type fakeFeed struct {
	snapshot *entity.CatalogSnapshot
	err      error
}

func (f *fakeFeed) Snapshot(ctx context.Context) (*entity.CatalogSnapshot, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.snapshot, nil
}

type recordingTracker struct {
	searches []string
	filters  []string
}

func (t *recordingTracker) TrackSearch(ctx context.Context, kind, value string) {
	t.searches = append(t.searches, kind+"="+value)
}

func (t *recordingTracker) TrackFilter(ctx context.Context, kind string, values []string) {
	t.filters = append(t.filters, kind)
}

func testLocalizer(t *testing.T) *locale.Localizer {
	t.Helper()
	loc, err := locale.New("es")
	require.NoError(t, err)
	return loc
}

func business(id, name string, opts ...func(*entity.Business)) *entity.Business {
	b := &entity.Business{
		ID:       id,
		Name:     name,
		IsActive: true,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func withPlan(planID string) func(*entity.Business) {
	return func(b *entity.Business) { b.PlanID = planID }
}

func withCreatedAt(t time.Time) func(*entity.Business) {
	return func(b *entity.Business) { b.CreatedAt = t }
}

func withCategories(names ...string) func(*entity.Business) {
	return func(b *entity.Business) { b.Categories = names }
}

func withAddress(address string) func(*entity.Business) {
	return func(b *entity.Business) { b.Address = address }
}

func withDescription(description string) func(*entity.Business) {
	return func(b *entity.Business) { b.Description = description }
}

func inactive() func(*entity.Business) {
	return func(b *entity.Business) { b.IsActive = false }
}

func newCatalog(t *testing.T, snapshot *entity.CatalogSnapshot) (*CatalogUseCase, *recordingTracker) {
	t.Helper()
	tracker := &recordingTracker{}
	uc := NewCatalogUseCase(&fakeFeed{snapshot: snapshot}, tracker, testLocalizer(t), DefaultPageSize)
	return uc, tracker
}

func TestSearchFiltersInactiveBusinesses(t *testing.T) {
	uc, _ := newCatalog(t, &entity.CatalogSnapshot{
		Businesses: []*entity.Business{
			business("b1", "Panadería La Espiga"),
			business("b2", "Cerrado", inactive()),
		},
	})

	result, err := uc.Search(context.Background(), SearchSpec{}, 0)
	require.NoError(t, err)

	require.Len(t, result.Items, 1)
	assert.Equal(t, "b1", result.Items[0].Business.ID)
}

func TestSearchTermMatchesNameDescriptionAndShortDescription(t *testing.T) {
	uc, _ := newCatalog(t, &entity.CatalogSnapshot{
		Businesses: []*entity.Business{
			business("b1", "Librería Central"),
			business("b2", "Otra cosa", withDescription("vendemos libros usados")),
			business("b3", "Otra cosa", func(b *entity.Business) { b.ShortDescription = "LIBROS y más" }),
			business("b4", "Ferretería"),
		},
	})

	result, err := uc.Search(context.Background(), SearchSpec{Term: "libr"}, 0)
	require.NoError(t, err)

	ids := resultIDs(result)
	assert.ElementsMatch(t, []string{"b1", "b2", "b3"}, ids)
}

func TestSearchLocationMatchesAddress(t *testing.T) {
	uc, _ := newCatalog(t, &entity.CatalogSnapshot{
		Businesses: []*entity.Business{
			business("b1", "Uno", withAddress("Av. Italia 1234")),
			business("b2", "Dos", withAddress("Bulevar Artigas 55")),
		},
	})

	result, err := uc.Search(context.Background(), SearchSpec{Location: "italia"}, 0)
	require.NoError(t, err)

	ids := resultIDs(result)
	assert.Equal(t, []string{"b1"}, ids)
}

func TestSearchCategoryIntersectionNotSubset(t *testing.T) {
	uc, _ := newCatalog(t, &entity.CatalogSnapshot{
		Businesses: []*entity.Business{
			business("b1", "Uno", withCategories("Comida")),
			business("b2", "Dos", withCategories("Ropa")),
			business("b3", "Tres", withCategories("Comida", "Ropa")),
		},
	})

	// One shared category is enough; a business does not need them all.
	result, err := uc.Search(context.Background(), SearchSpec{Categories: []string{"Comida", "Deportes"}}, 0)
	require.NoError(t, err)

	ids := resultIDs(result)
	assert.ElementsMatch(t, []string{"b1", "b3"}, ids)
}

func TestSearchPredicatesAreConjunctive(t *testing.T) {
	uc, _ := newCatalog(t, &entity.CatalogSnapshot{
		Businesses: []*entity.Business{
			business("b1", "Café Uno", withAddress("Centro"), withCategories("Comida")),
			business("b2", "Café Dos", withAddress("Pocitos"), withCategories("Comida")),
			business("b3", "Bar Tres", withAddress("Centro"), withCategories("Comida")),
		},
	})

	result, err := uc.Search(context.Background(), SearchSpec{
		Term:       "café",
		Location:   "centro",
		Categories: []string{"Comida"},
	}, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"b1"}, resultIDs(result))
}

func TestSearchAddingCategoryNeverShrinksResults(t *testing.T) {
	snapshot := &entity.CatalogSnapshot{
		Businesses: []*entity.Business{
			business("b1", "Uno", withCategories("Comida")),
			business("b2", "Dos", withCategories("Ropa")),
		},
	}

	uc, _ := newCatalog(t, snapshot)
	one, err := uc.Search(context.Background(), SearchSpec{Categories: []string{"Comida"}}, 0)
	require.NoError(t, err)

	two, err := uc.Search(context.Background(), SearchSpec{Categories: []string{"Comida", "Ropa"}}, 0)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, two.Total, one.Total)
	assert.Subset(t, resultIDs(two), resultIDs(one))
}

func TestSearchAddingTermNeverGrowsResults(t *testing.T) {
	snapshot := &entity.CatalogSnapshot{
		Businesses: []*entity.Business{
			business("b1", "Panadería"),
			business("b2", "Carnicería"),
		},
	}

	uc, _ := newCatalog(t, snapshot)
	all, err := uc.Search(context.Background(), SearchSpec{}, 0)
	require.NoError(t, err)

	narrowed, err := uc.Search(context.Background(), SearchSpec{Term: "pan"}, 0)
	require.NoError(t, err)

	assert.LessOrEqual(t, narrowed.Total, all.Total)
}

func TestRankingByPlanPriceThenCreationDate(t *testing.T) {
	day := func(n int) time.Time {
		return time.Date(2024, 1, n, 0, 0, 0, 0, time.UTC)
	}

	uc, _ := newCatalog(t, &entity.CatalogSnapshot{
		Businesses: []*entity.Business{
			business("A", "A", withPlan("basic"), withCreatedAt(day(1))),
			business("B", "B", withPlan("basic"), withCreatedAt(day(2))),
			business("C", "C", withPlan("premium"), withCreatedAt(day(3))),
		},
		Plans: []*entity.Plan{
			{ID: "basic", Price: 10},
			{ID: "premium", Price: 20},
		},
	})

	result, err := uc.Search(context.Background(), SearchSpec{}, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"C", "B", "A"}, resultIDs(result))
}

func TestRankingMissingPlanSortsAsPriceZero(t *testing.T) {
	uc, _ := newCatalog(t, &entity.CatalogSnapshot{
		Businesses: []*entity.Business{
			business("b1", "Sin plan", withPlan("missing")),
			business("b2", "Con plan", withPlan("paid")),
		},
		Plans: []*entity.Plan{{ID: "paid", Price: 5}},
	})

	result, err := uc.Search(context.Background(), SearchSpec{}, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"b2", "b1"}, resultIDs(result))
}

func TestRankingIsStableForFullTies(t *testing.T) {
	created := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	businesses := make([]*entity.Business, 0, 6)
	for i := 0; i < 6; i++ {
		businesses = append(businesses,
			business(fmt.Sprintf("b%d", i), "Empate", withPlan("p"), withCreatedAt(created)))
	}

	uc, _ := newCatalog(t, &entity.CatalogSnapshot{
		Businesses: businesses,
		Plans:      []*entity.Plan{{ID: "p", Price: 10}},
	})

	first, err := uc.Search(context.Background(), SearchSpec{}, 0)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := uc.Search(context.Background(), SearchSpec{}, 0)
		require.NoError(t, err)
		assert.Equal(t, resultIDs(first), resultIDs(again))
	}

	// Ties keep input order.
	assert.Equal(t, []string{"b0", "b1", "b2", "b3", "b4", "b5"}, resultIDs(first))
}

func TestPaginationLoadMoreArithmetic(t *testing.T) {
	businesses := make([]*entity.Business, 0, 30)
	for i := 0; i < 30; i++ {
		businesses = append(businesses,
			business(fmt.Sprintf("b%02d", i), "Negocio", withCreatedAt(time.Date(2024, 1, 1, 0, 0, i, 0, time.UTC))))
	}

	uc, _ := newCatalog(t, &entity.CatalogSnapshot{Businesses: businesses})

	previous := []string{}
	for k := 0; k < 4; k++ {
		count := DefaultPageSize * (k + 1)
		result, err := uc.Search(context.Background(), SearchSpec{}, count)
		require.NoError(t, err)

		expected := count
		if expected > 30 {
			expected = 30
		}
		assert.Len(t, result.Items, expected)
		assert.Equal(t, expected < 30, result.HasMore)

		// Earlier pages must be byte-for-byte unchanged.
		ids := resultIDs(result)
		assert.Equal(t, previous, ids[:len(previous)])
		previous = ids
	}
}

func TestCategoryColorResolvedByNameWithDefault(t *testing.T) {
	uc, _ := newCatalog(t, &entity.CatalogSnapshot{
		Businesses: []*entity.Business{
			business("b1", "Uno", withCategories("Comida", "Fantasma")),
		},
		Categories: []*entity.Category{
			{ID: "cat-1", Name: "Comida", Color: "#FF0000", IsActive: true},
		},
	})

	result, err := uc.Search(context.Background(), SearchSpec{}, 0)
	require.NoError(t, err)

	require.Len(t, result.Items, 1)
	tags := result.Items[0].Categories
	require.Len(t, tags, 2)
	assert.Equal(t, "#FF0000", tags[0].Color)
	assert.Equal(t, entity.DefaultCategoryColor, tags[1].Color)
}

func TestSearchTracksOncePerSpecChange(t *testing.T) {
	uc, tracker := newCatalog(t, &entity.CatalogSnapshot{
		Businesses: []*entity.Business{business("b1", "Uno")},
	})

	spec := SearchSpec{Term: "pan", Location: "centro", Categories: []string{"Comida"}}

	for i := 0; i < 3; i++ {
		_, err := uc.Search(context.Background(), spec, 0)
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"business=pan", "location=centro"}, tracker.searches)
	assert.Equal(t, []string{"categories"}, tracker.filters)

	// A changed spec emits again; an empty spec emits nothing.
	_, err := uc.Search(context.Background(), SearchSpec{Term: "queso"}, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"business=pan", "location=centro", "business=queso"}, tracker.searches)

	_, err = uc.Search(context.Background(), SearchSpec{}, 0)
	require.NoError(t, err)
	assert.Len(t, tracker.searches, 3)
}

func TestSearchSurfacesFeedStates(t *testing.T) {
	loc := testLocalizer(t)

	loading := NewCatalogUseCase(&fakeFeed{err: errors.Loading("not ready")}, &recordingTracker{}, loc, 0)
	_, err := loading.Search(context.Background(), SearchSpec{}, 0)
	assert.True(t, errors.Is(err, errors.CodeLoading))

	down := NewCatalogUseCase(&fakeFeed{err: errors.Unavailable("boom", nil)}, &recordingTracker{}, loc, 0)
	_, err = down.Search(context.Background(), SearchSpec{}, 0)
	assert.True(t, errors.Is(err, errors.CodeUnavailable))
	assert.Contains(t, err.Error(), "No se pudieron cargar los comercios")
}

func resultIDs(result *SearchResult) []string {
	ids := make([]string, 0, len(result.Items))
	for _, item := range result.Items {
		ids = append(ids, item.Business.ID)
	}
	return ids
}
