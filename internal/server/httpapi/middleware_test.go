package httpapi_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmarques/despesas/internal/server/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AuthMiddlewareSuite struct {
	APISuite
}

func (s *AuthMiddlewareSuite) request(token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/expenses", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *AuthMiddlewareSuite) TestExpiredToken() {
	tok, err := auth.GenerateToken(1, "Ana", []byte(testSecret), -time.Minute)
	require.NoError(s.T(), err)

	rec := s.request(tok)
	assert.Equal(s.T(), http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestTokenSignedWithOtherKey() {
	tok, err := auth.GenerateToken(1, "Ana", []byte("other-key"), time.Hour)
	require.NoError(s.T(), err)

	rec := s.request(tok)
	assert.Equal(s.T(), http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestValidTokenPassesThrough() {
	require.Equal(s.T(), http.StatusCreated, s.register("Ana", "ana@x.com", "abc123").Code)
	token, _ := s.login("ana@x.com", "abc123")

	rec := s.request(token)
	assert.Equal(s.T(), http.StatusOK, rec.Code)
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}
