package feed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tucomercio/internal/domain/entity"
	"tucomercio/pkg/errors"
)

type stubBusinessRepo struct {
	businesses []*entity.Business
	err        error
}

func (s *stubBusinessRepo) GetByID(ctx context.Context, id string) (*entity.Business, error) {
	for _, b := range s.businesses {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, errors.NotFound("Business", nil)
}

func (s *stubBusinessRepo) List(ctx context.Context) ([]*entity.Business, error) {
	return s.businesses, s.err
}

type stubPlanRepo struct {
	plans []*entity.Plan
	err   error
}

func (s *stubPlanRepo) List(ctx context.Context) ([]*entity.Plan, error) {
	return s.plans, s.err
}

type stubCategoryRepo struct {
	categories []*entity.Category
	err        error
}

func (s *stubCategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	return s.categories, s.err
}

func TestSnapshotBeforeFirstLoadIsLoading(t *testing.T) {
	f := New(&stubBusinessRepo{}, &stubPlanRepo{}, &stubCategoryRepo{})

	_, err := f.Snapshot(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeLoading))
}

func TestSnapshotAfterFailedLoadIsUnavailable(t *testing.T) {
	businessRepo := &stubBusinessRepo{err: errors.Unavailable("store down", nil)}
	f := New(businessRepo, &stubPlanRepo{}, &stubCategoryRepo{})

	require.Error(t, f.Refresh(context.Background()))

	_, err := f.Snapshot(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeUnavailable))
}

func TestRefreshDegradesOnPlanAndCategoryFailure(t *testing.T) {
	businessRepo := &stubBusinessRepo{businesses: []*entity.Business{{ID: "b1", IsActive: true}}}
	f := New(
		businessRepo,
		&stubPlanRepo{err: errors.Unavailable("plans down", nil)},
		&stubCategoryRepo{err: errors.Unavailable("categories down", nil)},
	)

	require.NoError(t, f.Refresh(context.Background()))

	snapshot, err := f.Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, snapshot.Businesses, 1)
	assert.Empty(t, snapshot.Plans)
	assert.Empty(t, snapshot.Categories)
}

func TestFailedRefreshKeepsLastGoodSnapshot(t *testing.T) {
	businessRepo := &stubBusinessRepo{businesses: []*entity.Business{{ID: "b1", IsActive: true}}}
	f := New(businessRepo, &stubPlanRepo{}, &stubCategoryRepo{})

	require.NoError(t, f.Refresh(context.Background()))

	businessRepo.err = errors.Unavailable("store down", nil)
	require.Error(t, f.Refresh(context.Background()))

	snapshot, err := f.Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, snapshot.Businesses, 1)
	assert.Equal(t, "b1", snapshot.Businesses[0].ID)
}
