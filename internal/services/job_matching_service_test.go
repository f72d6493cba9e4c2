package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freelancehub_backend/internal/models"
	"freelancehub_backend/pkg/apperrors"
)

func matchingFixture() *testServices {
	ts := newTestServices()
	ts.store.addClient("cl")
	ts.store.addClient("other")
	ts.store.addFreelancer("beg-1", models.ExperienceBeginner, "golang postgres", "Backend developer")
	ts.store.addFreelancer("int-1", models.ExperienceIntermediate, "golang", "")
	ts.store.addFreelancer("adv-1", models.ExperienceAdvanced, "golang kubernetes postgres", "Platform engineer")
	ts.store.addPost("post-adv", "adv-1", models.Post{Tags: []string{"Backend"}})
	ts.store.addAIRating("post-adv", "adv-1", 9)

	ts.store.addJob("job-beg", "cl", models.ExperienceBeginner, "Golang backend", "postgres")
	ts.store.addJob("job-adv", "cl", models.ExperienceAdvanced, "Golang backend", "postgres")
	return ts
}

func TestFindMatchesForJob(t *testing.T) {
	ctx := context.Background()

	t.Run("beginner job only sees beginners", func(t *testing.T) {
		ts := matchingFixture()

		matches, err := ts.matching.FindMatchesForJob(ctx, nil, "job-beg", 10)
		require.NoError(t, err)

		require.Len(t, matches, 1)
		assert.Equal(t, "beg-1", matches[0].FreelancerID)
	})

	t.Run("advanced job ranks every tier", func(t *testing.T) {
		ts := matchingFixture()

		matches, err := ts.matching.FindMatchesForJob(ctx, nil, "job-adv", 10)
		require.NoError(t, err)

		require.Len(t, matches, 3)
		assert.Equal(t, "adv-1", matches[0].FreelancerID)
		for i := 1; i < len(matches); i++ {
			assert.GreaterOrEqual(t, matches[i-1].MatchScore, matches[i].MatchScore)
		}
	})

	t.Run("never more than limit", func(t *testing.T) {
		ts := matchingFixture()

		matches, err := ts.matching.FindMatchesForJob(ctx, nil, "job-adv", 2)
		require.NoError(t, err)
		assert.Len(t, matches, 2)
	})

	t.Run("equal scores ordered by id", func(t *testing.T) {
		ts := matchingFixture()
		ts.store.addFreelancer("beg-3", models.ExperienceBeginner, "golang postgres", "Backend developer")
		ts.store.addFreelancer("beg-2", models.ExperienceBeginner, "golang postgres", "Backend developer")

		matches, err := ts.matching.FindMatchesForJob(ctx, nil, "job-beg", 10)
		require.NoError(t, err)

		require.Len(t, matches, 3)
		assert.Equal(t, []string{"beg-1", "beg-2", "beg-3"},
			[]string{matches[0].FreelancerID, matches[1].FreelancerID, matches[2].FreelancerID})
	})

	t.Run("missing job", func(t *testing.T) {
		ts := matchingFixture()
		_, err := ts.matching.FindMatchesForJob(ctx, nil, "nope", 10)
		assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
	})
}

func TestFindMatchesForClient(t *testing.T) {
	ctx := context.Background()

	t.Run("owner of an open job", func(t *testing.T) {
		ts := matchingFixture()
		res, err := ts.matching.FindMatchesForClient(ctx, nil, "cl", "job-adv", 0)
		require.NoError(t, err)
		assert.Equal(t, "job-adv", res.JobID)
		assert.Len(t, res.Matches, 3)
	})

	t.Run("not the owner", func(t *testing.T) {
		ts := matchingFixture()
		_, err := ts.matching.FindMatchesForClient(ctx, nil, "other", "job-adv", 5)
		assert.ErrorIs(t, err, apperrors.ErrNotJobOwner)
	})

	t.Run("job no longer open", func(t *testing.T) {
		ts := matchingFixture()
		ts.store.jobs["job-adv"].Status = models.JobStatusInProgress

		_, err := ts.matching.FindMatchesForClient(ctx, nil, "cl", "job-adv", 5)
		assert.ErrorIs(t, err, apperrors.ErrJobNotOpen)
	})
}

func TestNotifyMatchedFreelancers(t *testing.T) {
	ts := matchingFixture()

	res, err := ts.matching.NotifyMatchedFreelancers(context.Background(), nil, "cl", "job-adv")
	require.NoError(t, err)

	// notify limit is 2 in the test wiring
	assert.Equal(t, 2, res.Notified)
	require.Len(t, ts.store.notifications, 2)
	for _, n := range ts.store.notifications {
		assert.Equal(t, models.NotificationTypeJobMatch, n.Type)
		assert.Contains(t, n.Message, "Golang backend")
	}
	assert.Equal(t, "adv-1", ts.store.notifications[0].UserID)

	_, err = ts.matching.NotifyMatchedFreelancers(context.Background(), nil, "other", "job-adv")
	assert.ErrorIs(t, err, apperrors.ErrNotJobOwner)
}

func TestAnalyzeJobSkillMatch(t *testing.T) {
	ctx := context.Background()

	t.Run("recent posts act as portfolio", func(t *testing.T) {
		ts := newTestServices()
		ts.store.addClient("cl")
		ts.store.addFreelancer("fl", models.ExperienceBeginner, "", "")
		ts.store.addPost("p1", "fl", models.Post{Description: "Built a react dashboard"})
		ts.store.addPost("p2", "fl", models.Post{Description: "typescript tooling"})
		ts.store.addJob("job", "cl", models.ExperienceBeginner, "Frontend dev", "react typescript")

		res, err := ts.matching.AnalyzeJobSkillMatch(ctx, nil, "job", "fl")
		require.NoError(t, err)
		// 2 of 4 job keywords (frontend, dev, react, typescript)
		assert.Equal(t, 7.5, res.Score)
	})

	t.Run("post text is truncated", func(t *testing.T) {
		ts := newTestServices()
		ts.store.addClient("cl")
		ts.store.addFreelancer("fl", models.ExperienceBeginner, "", "")
		ts.store.addPost("p1", "fl", models.Post{Description: strings.Repeat("x", 200) + " kubernetes"})
		ts.store.addJob("job", "cl", models.ExperienceBeginner, "", "kubernetes")

		res, err := ts.matching.AnalyzeJobSkillMatch(ctx, nil, "job", "fl")
		require.NoError(t, err)
		assert.Equal(t, 5.0, res.Score)
	})

	t.Run("unknown freelancer", func(t *testing.T) {
		ts := matchingFixture()
		_, err := ts.matching.AnalyzeJobSkillMatch(ctx, nil, "job-adv", "cl")
		assert.ErrorIs(t, err, apperrors.ErrFreelancerNotFound)
	})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab", truncate("abcdef", 2))
	assert.Equal(t, "жё", truncate("жёлтый", 2))
}
