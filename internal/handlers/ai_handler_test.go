package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freelancehub_backend/internal/middleware"
	"freelancehub_backend/internal/models"
	"freelancehub_backend/internal/services/dto"
	"freelancehub_backend/pkg/apperrors"
)

func TestRequiresToken(t *testing.T) {
	h := newHarness()

	w := h.do(t, http.MethodPost, "/api/v1/ai/analyze-comment", "", map[string]string{"comment": "great"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = h.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAnalyzePost(t *testing.T) {
	tok := token(t, "fl-1", models.UserTypeFreelancer)

	t.Run("ok", func(t *testing.T) {
		h := newHarness()
		w := h.do(t, http.MethodPost, "/api/v1/ai/analyze-post", tok, map[string]string{"postId": "post-1"})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"postId":"post-1"`)
	})

	t.Run("missing post id", func(t *testing.T) {
		h := newHarness()
		w := h.do(t, http.MethodPost, "/api/v1/ai/analyze-post", tok, map[string]string{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, apperrors.CodeValidationFailed, errorCode(t, w))
		assert.Equal(t, 0, h.ai.calls)
	})

	t.Run("not found", func(t *testing.T) {
		h := newHarness()
		h.ai.analyzePost = func(string) (*dto.PostAnalysisResult, error) { return nil, apperrors.ErrPostNotFound }

		w := h.do(t, http.MethodPost, "/api/v1/ai/analyze-post", tok, map[string]string{"postId": "nope"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("transient error retried once", func(t *testing.T) {
		h := newHarness()
		h.ai.analyzePost = func(postID string) (*dto.PostAnalysisResult, error) {
			if h.ai.calls == 1 {
				return nil, apperrors.TransientStorage(assert.AnError)
			}
			return &dto.PostAnalysisResult{Rating: &models.AIRating{PostID: postID}}, nil
		}

		w := h.do(t, http.MethodPost, "/api/v1/ai/analyze-post", tok, map[string]string{"postId": "post-1"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 2, h.ai.calls)
	})

	t.Run("persistent transient error", func(t *testing.T) {
		h := newHarness()
		h.ai.analyzePost = func(string) (*dto.PostAnalysisResult, error) {
			return nil, apperrors.TransientStorage(assert.AnError)
		}

		w := h.do(t, http.MethodPost, "/api/v1/ai/analyze-post", tok, map[string]string{"postId": "post-1"})
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, 2, h.ai.calls)
	})
}

func TestStatelessAnalyzers(t *testing.T) {
	h := newHarness()
	tok := token(t, "fl-1", models.UserTypeFreelancer)

	w := h.do(t, http.MethodPost, "/api/v1/ai/analyze-comment", tok, map[string]string{"comment": "excellent amazing work"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"sentiment":"positive"`)

	w = h.do(t, http.MethodPost, "/api/v1/ai/analyze-comment", tok, map[string]string{"comment": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(t, http.MethodPost, "/api/v1/ai/content-quality", tok, map[string]string{"content": "Short."})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"score"`)

	w = h.do(t, http.MethodPost, "/api/v1/ai/skill-match", tok, map[string]interface{}{
		"job":        map[string]string{"title": "Frontend dev", "requirements": "react typescript"},
		"freelancer": map[string]interface{}{"portfolio": []string{"Built a react dashboard", "typescript tooling"}},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"score":7.5}`, w.Body.String())
}

func TestGetFreelancerAIRatings(t *testing.T) {
	h := newHarness()
	tok := token(t, "cl-1", models.UserTypeClient)

	w := h.do(t, http.MethodGet, "/api/v1/ai/rating/fl-1", tok, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"combinedRating":7.2`)

	w = h.do(t, http.MethodGet, "/api/v1/ai/rating/cl-1", tok, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAIRateLimit(t *testing.T) {
	h := newHarness(func(c *harnessConfig) { c.limiter = middleware.NewClientLimiter(0.001, 1) })
	tok := token(t, "fl-1", models.UserTypeFreelancer)

	body := map[string]string{"comment": "fine"}
	assert.Equal(t, http.StatusOK, h.do(t, http.MethodPost, "/api/v1/ai/analyze-comment", tok, body).Code)
	assert.Equal(t, http.StatusTooManyRequests, h.do(t, http.MethodPost, "/api/v1/ai/analyze-comment", tok, body).Code)

	// other users have their own bucket
	other := token(t, "fl-2", models.UserTypeFreelancer)
	assert.Equal(t, http.StatusOK, h.do(t, http.MethodPost, "/api/v1/ai/analyze-comment", other, body).Code)
}
