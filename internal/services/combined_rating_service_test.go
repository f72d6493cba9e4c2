package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freelancehub_backend/internal/models"
	"freelancehub_backend/pkg/apperrors"
)

func TestGetCombinedRating(t *testing.T) {
	ctx := context.Background()

	t.Run("no ratings gives baseline", func(t *testing.T) {
		ts := newTestServices()
		ts.store.addFreelancer("fl-1", models.ExperienceBeginner, "", "")

		got, err := ts.combined.GetCombinedRating(ctx, nil, "fl-1")
		require.NoError(t, err)
		assert.Equal(t, 5.0, got)
	})

	t.Run("unknown or non-freelancer user", func(t *testing.T) {
		ts := newTestServices()
		ts.store.addClient("cl-1")

		_, err := ts.combined.GetCombinedRating(ctx, nil, "missing")
		assert.ErrorIs(t, err, apperrors.ErrFreelancerNotFound)

		_, err = ts.combined.GetCombinedRating(ctx, nil, "cl-1")
		assert.ErrorIs(t, err, apperrors.ErrFreelancerNotFound)
	})

	// AI average 8, every client rating 6, one completed project per rating.
	weightCases := []struct {
		clientRatings int
		want          float64
	}{
		{4, 7.6}, // 8*0.6 + 6*0.4 + 0.4
		{5, 7.1}, // 8*0.3 + 6*0.7 + 0.5
		{10, 6.9}, // 8*0.2 + 6*0.8 + 0.5
	}
	for _, tc := range weightCases {
		t.Run(fmt.Sprintf("%d client ratings", tc.clientRatings), func(t *testing.T) {
			ts := newTestServices()
			ts.store.addFreelancer("fl", models.ExperienceBeginner, "", "")
			ts.store.addAIRating("post-x", "fl", 8)
			for i := 0; i < tc.clientRatings; i++ {
				id := fmt.Sprintf("proj-%d", i)
				ts.store.addProject(id, "cl", "fl", models.ProjectStatusCompleted)
				ts.store.addClientRating(id, 6)
			}

			got, err := ts.combined.GetCombinedRating(ctx, nil, "fl")
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("ratings on unfinished projects are ignored", func(t *testing.T) {
		ts := newTestServices()
		ts.store.addFreelancer("fl", models.ExperienceBeginner, "", "")
		ts.store.addAIRating("post-x", "fl", 8)
		ts.store.addProject("proj-1", "cl", "fl", models.ProjectStatusInProgress)
		ts.store.addClientRating("proj-1", 2)

		got, err := ts.combined.GetCombinedRating(ctx, nil, "fl")
		require.NoError(t, err)
		assert.Equal(t, 8.0, got)
	})

	t.Run("served from cache", func(t *testing.T) {
		ts := newTestServices()
		ts.store.addFreelancer("fl", models.ExperienceBeginner, "", "")
		ts.cache.values["fl"] = 9.9

		got, err := ts.combined.GetCombinedRating(ctx, nil, "fl")
		require.NoError(t, err)
		assert.Equal(t, 9.9, got)
	})

	t.Run("computed value is cached", func(t *testing.T) {
		ts := newTestServices()
		ts.store.addFreelancer("fl", models.ExperienceBeginner, "", "")

		_, err := ts.combined.GetCombinedRating(ctx, nil, "fl")
		require.NoError(t, err)
		assert.Equal(t, 5.0, ts.cache.values["fl"])
	})
}

func TestUpdateExperienceTier(t *testing.T) {
	ctx := context.Background()

	t.Run("promotes to advanced", func(t *testing.T) {
		ts := newTestServices()
		ts.store.addFreelancer("fl", models.ExperienceBeginner, "", "")
		ts.store.addPost("p1", "fl", models.Post{})
		ts.store.addPost("p2", "fl", models.Post{})
		ts.store.addAIRating("p1", "fl", 9)
		ts.store.addAIRating("p2", "fl", 9)
		ts.cache.values["fl"] = 1.0

		res, err := ts.combined.UpdateExperienceTier(ctx, nil, "fl")
		require.NoError(t, err)

		assert.Equal(t, 9.1, res.CombinedRating)
		assert.Equal(t, models.ExperienceAdvanced, res.Experience)
		assert.Equal(t, models.ExperienceAdvanced, ts.store.users["fl"].Experience)
		assert.Equal(t, 9.1, ts.cache.values["fl"], "stale cache entry replaced")
	})

	t.Run("demotes to beginner", func(t *testing.T) {
		ts := newTestServices()
		ts.store.addFreelancer("fl", models.ExperienceAdvanced, "", "")

		res, err := ts.combined.UpdateExperienceTier(ctx, nil, "fl")
		require.NoError(t, err)
		assert.Equal(t, models.ExperienceBeginner, res.Experience)
	})

	t.Run("not found", func(t *testing.T) {
		ts := newTestServices()
		_, err := ts.combined.UpdateExperienceTier(ctx, nil, "missing")
		assert.ErrorIs(t, err, apperrors.ErrFreelancerNotFound)
	})
}

func TestRecomputeAllTiers(t *testing.T) {
	ts := newTestServices()
	ts.store.addFreelancer("fl-1", models.ExperienceAdvanced, "", "")
	ts.store.addFreelancer("fl-2", models.ExperienceAdvanced, "", "")
	ts.store.addFreelancer("fl-3", models.ExperienceBeginner, "", "")
	ts.store.addAIRating("p", "fl-3", 7)
	ts.store.addClient("cl")

	n, err := ts.combined.RecomputeAllTiers(context.Background(), nil, 2)
	require.NoError(t, err)

	assert.Equal(t, 3, n)
	assert.Equal(t, models.ExperienceBeginner, ts.store.users["fl-1"].Experience)
	assert.Equal(t, models.ExperienceBeginner, ts.store.users["fl-2"].Experience)
	assert.Equal(t, models.ExperienceIntermediate, ts.store.users["fl-3"].Experience)
}

func TestTierRecomputeRefreshesCachedRating(t *testing.T) {
	ctx := context.Background()
	ts := newTestServices()
	ts.store.addFreelancer("fl-1", models.ExperienceBeginner, "", "")

	got, err := ts.combined.GetCombinedRating(ctx, nil, "fl-1")
	require.NoError(t, err)
	require.Equal(t, 5.0, got)

	// posts created elsewhere do not touch the cache
	for i := 0; i < 5; i++ {
		ts.store.addPost(fmt.Sprintf("post-%d", i), "fl-1", models.Post{Views: 10})
	}
	got, err = ts.combined.GetCombinedRating(ctx, nil, "fl-1")
	require.NoError(t, err)
	assert.Equal(t, 5.0, got)

	_, err = ts.combined.RecomputeAllTiers(ctx, nil, 1)
	require.NoError(t, err)

	got, err = ts.combined.GetCombinedRating(ctx, nil, "fl-1")
	require.NoError(t, err)
	assert.Equal(t, 5.3, got)
	assert.Equal(t, 5.3, ts.cache.values["fl-1"])
}
