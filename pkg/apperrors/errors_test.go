package apperrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTransient(t *testing.T) {
	t.Parallel()

	base := errors.New("connection reset")
	assert.True(t, IsTransient(TransientStorage(base)))
	assert.True(t, IsTransient(fmt.Errorf("load post: %w", TransientStorage(base))))
	assert.False(t, IsTransient(ErrPostNotFound))
	assert.False(t, IsTransient(base))
	assert.False(t, IsTransient(nil))
}

func TestWithDetailsDoesNotMutateSentinel(t *testing.T) {
	t.Parallel()

	withDetails := ErrJobNotFound.WithDetails(map[string]string{"job_id": "42"})

	assert.Nil(t, ErrJobNotFound.Details)
	assert.NotNil(t, withDetails.Details)
	assert.Equal(t, http.StatusNotFound, withDetails.HTTPCode)
}

func TestSentinelsSurviveWrapping(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("analyze: %w", ErrPostNotFound)
	assert.ErrorIs(t, err, ErrPostNotFound)
	assert.True(t, IsNotFound(err))

	appErr, ok := AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, CodeNotFound, appErr.Code)
}

func TestHTTPStatusByCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.StatusConflict, ErrRatingAlreadyExists.HTTPCode)
	assert.Equal(t, http.StatusForbidden, ErrNotJobOwner.HTTPCode)
	assert.Equal(t, http.StatusBadRequest, ErrJobNotOpen.HTTPCode)
	assert.Equal(t, http.StatusServiceUnavailable, TransientStorage(errors.New("x")).HTTPCode)
	assert.Equal(t, http.StatusGatewayTimeout, NewTimeoutError().HTTPCode)
	assert.Equal(t, http.StatusInternalServerError, ErrorCode("SOMETHING_ELSE").HTTPStatus())
}

func TestHandleErrorHidesCause(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

	HandleError(c, errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "password")

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, CodeInternalError, body.Error.Code)
}
