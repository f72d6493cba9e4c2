package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freelancehub_backend/internal/models"
	"freelancehub_backend/pkg/apperrors"
)

func TestCreateRatingHandler(t *testing.T) {
	client := token(t, "cl-1", models.UserTypeClient)
	body := map[string]interface{}{
		"projectId":          "proj-1",
		"deliveryScore":      9,
		"qualityScore":       8,
		"communicationScore": 0,
	}

	t.Run("created", func(t *testing.T) {
		h := newHarness()
		w := h.do(t, http.MethodPost, "/api/v1/ratings", client, body)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "cl-1", h.rating.lastClient)
		require.NotNil(t, h.rating.lastRequest.CommunicationScore)
		assert.Equal(t, 0.0, *h.rating.lastRequest.CommunicationScore)
	})

	t.Run("missing score", func(t *testing.T) {
		h := newHarness()
		w := h.do(t, http.MethodPost, "/api/v1/ratings", client, map[string]interface{}{"projectId": "proj-1", "qualityScore": 5, "communicationScore": 5})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "deliveryScore")
	})

	t.Run("already rated", func(t *testing.T) {
		h := newHarness()
		h.rating.createErr = apperrors.ErrRatingAlreadyExists
		w := h.do(t, http.MethodPost, "/api/v1/ratings", client, body)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("freelancers cannot rate", func(t *testing.T) {
		h := newHarness()
		w := h.do(t, http.MethodPost, "/api/v1/ratings", token(t, "fl-1", models.UserTypeFreelancer), body)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestRatingQueriesHandler(t *testing.T) {
	h := newHarness()
	client := token(t, "cl-1", models.UserTypeClient)

	w := h.do(t, http.MethodPut, "/api/v1/ratings/rating-1", client, map[string]interface{}{"qualityScore": 7})
	assert.Equal(t, http.StatusOK, w.Code)

	w = h.do(t, http.MethodPut, "/api/v1/ratings/rating-1", token(t, "cl-2", models.UserTypeClient), map[string]interface{}{"qualityScore": 7})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = h.do(t, http.MethodGet, "/api/v1/ratings/freelancer/fl-1", client, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"averages"`)

	w = h.do(t, http.MethodGet, "/api/v1/ratings/client/me", client, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)

	w = h.do(t, http.MethodGet, "/api/v1/ratings/project/proj-1", client, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = h.do(t, http.MethodGet, "/api/v1/ratings/project/proj-rated/has-rated", client, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"projectId":"proj-rated","hasRated":true}`, w.Body.String())

	w = h.do(t, http.MethodGet, "/api/v1/ratings/top?limit=5", client, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, h.rating.topLimit)

	w = h.do(t, http.MethodGet, "/api/v1/ratings/top?limit=500", client, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFreelancerHandler(t *testing.T) {
	tok := token(t, "fl-1", models.UserTypeFreelancer)

	t.Run("combined rating", func(t *testing.T) {
		h := newHarness()
		w := h.do(t, http.MethodGet, "/api/v1/freelancers/fl-1/combined-rating", tok, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"freelancerId":"fl-1","combinedRating":8.4}`, w.Body.String())
	})

	t.Run("experience tier", func(t *testing.T) {
		h := newHarness()
		w := h.do(t, http.MethodPost, "/api/v1/freelancers/fl-1/experience", tok, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"experience":"ADVANCED"`)
	})

	t.Run("deadline exceeded", func(t *testing.T) {
		h := newHarness(func(c *harnessConfig) { c.timeout = 20 * time.Millisecond })
		h.combined.block = true

		w := h.do(t, http.MethodGet, "/api/v1/freelancers/fl-1/combined-rating", tok, nil)
		assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	})
}
