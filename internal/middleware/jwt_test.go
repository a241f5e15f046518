package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nayanpawar03/Distributed-Event-Booking/internal/utils"
)

const testSecret = "test-secret"

func contextWithToken(t *testing.T, token string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestJWTAuthInjectsSubject(t *testing.T) {
	access, err := utils.NewAccessToken(testSecret, "alice", 5)
	require.NoError(t, err)

	c, rec := contextWithToken(t, access.Token)
	var got string
	h := JWTAuth(testSecret)(func(c echo.Context) error {
		got, _ = c.Get("user_id").(string)
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, h(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", got)
}

func TestJWTAuthRejectsBadTokens(t *testing.T) {
	access, err := utils.NewAccessToken("other-secret", "alice", 5)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "missing header", token: ""},
		{name: "garbage token", token: "not-a-jwt"},
		{name: "wrong secret", token: access.Token},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := contextWithToken(t, tt.token)
			h := JWTAuth(testSecret)(func(c echo.Context) error {
				t.Fatal("handler must not run")
				return nil
			})
			require.NoError(t, h(c))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestParseSubjectIsLenient(t *testing.T) {
	access, err := utils.NewAccessToken(testSecret, "bob", 5)
	require.NoError(t, err)

	c, _ := contextWithToken(t, access.Token)
	assert.Equal(t, "bob", ParseSubject(c, testSecret))

	c, _ = contextWithToken(t, "")
	assert.Empty(t, ParseSubject(c, testSecret))

	c, _ = contextWithToken(t, "junk")
	assert.Empty(t, ParseSubject(c, testSecret))
}
