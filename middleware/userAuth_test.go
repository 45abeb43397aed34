package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tourvia/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessionStore struct {
	err      error
	calls    int
	lastUID  string
	lastHash string
}

func (f *fakeSessionStore) Validate(ctx context.Context, uid, tokenHash string) error {
	f.calls++
	f.lastUID = uid
	f.lastHash = tokenHash
	return f.err
}

func authedRouter(store AuthSessionStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", JWTAuthUserMiddleware(store), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"uid": UserIDFromContext(c)})
	})
	return r
}

func bearerRequest(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestJWTAuthUserMiddleware_ValidSession(t *testing.T) {
	token, err := utils.GenerateToken("user-1", "aina@example.com", time.Hour)
	require.NoError(t, err)

	store := &fakeSessionStore{}
	w := httptest.NewRecorder()
	authedRouter(store).ServeHTTP(w, bearerRequest(token))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
	assert.Equal(t, "user-1", store.lastUID)
	assert.Equal(t, utils.HashToken(token), store.lastHash)
}

func TestJWTAuthUserMiddleware_RevokedSessionRejected(t *testing.T) {
	token, err := utils.GenerateToken("user-1", "aina@example.com", time.Hour)
	require.NoError(t, err)

	store := &fakeSessionStore{err: utils.ErrAuthSessionInvalid}
	w := httptest.NewRecorder()
	authedRouter(store).ServeHTTP(w, bearerRequest(token))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthUserMiddleware_MissingHeader(t *testing.T) {
	store := &fakeSessionStore{}
	w := httptest.NewRecorder()
	authedRouter(store).ServeHTTP(w, bearerRequest(""))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, store.calls)
}

func TestJWTAuthUserMiddleware_GarbageToken(t *testing.T) {
	store := &fakeSessionStore{}
	w := httptest.NewRecorder()
	authedRouter(store).ServeHTTP(w, bearerRequest("not-a-jwt"))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, store.calls)
}

func TestJWTAuthUserMiddleware_RegistryOutageFallsOpen(t *testing.T) {
	token, err := utils.GenerateToken("user-1", "aina@example.com", time.Hour)
	require.NoError(t, err)

	// A registry outage must not lock out holders of valid tokens.
	store := &fakeSessionStore{err: errors.New("connection refused")}
	w := httptest.NewRecorder()
	authedRouter(store).ServeHTTP(w, bearerRequest(token))

	assert.Equal(t, http.StatusOK, w.Code)
}
