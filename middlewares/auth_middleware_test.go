package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims Claims, secret string) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return tok
}

func freshClaims(ttl time.Duration) Claims {
	return Claims{
		UserID: "u1",
		Email:  "user@company.com",
		Role:   "employee",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
}

func newContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRequireAuthSetsContext(t *testing.T) {
	tok := signToken(t, freshClaims(time.Hour), testSecret)
	c, _ := newContext("Bearer " + tok)

	called := false
	h := RequireAuth(testSecret)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, h(c))
	assert.True(t, called)
	assert.Equal(t, "u1", c.Get("user_id"))
	assert.Equal(t, "user@company.com", c.Get("email"))
	assert.Equal(t, "employee", c.Get("role"))
}

func TestRequireAuthRejections(t *testing.T) {
	expired := signToken(t, freshClaims(-time.Hour), testSecret)
	wrongKey := signToken(t, freshClaims(time.Hour), "other-secret")

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not.a.token"},
		{"expired token", "Bearer " + expired},
		{"wrong secret", "Bearer " + wrongKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newContext(tt.header)
			h := RequireAuth(testSecret)(func(c echo.Context) error {
				t.Fatal("handler must not run")
				return nil
			})
			err := h(c)
			var he *echo.HTTPError
			require.ErrorAs(t, err, &he)
			assert.Equal(t, http.StatusUnauthorized, he.Code)
		})
	}
}

func TestParseTokenRoundTrip(t *testing.T) {
	tok := signToken(t, freshClaims(time.Hour), testSecret)
	claims, err := ParseToken(tok, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "employee", claims.Role)
}

func TestRequireRole(t *testing.T) {
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	c, _ := newContext("")
	c.Set("role", "admin")
	assert.NoError(t, RequireRole("admin")(next)(c))

	c, _ = newContext("")
	c.Set("role", "employee")
	err := RequireRole("admin")(next)(c)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusForbidden, he.Code)

	c, _ = newContext("")
	err = RequireRole("admin")(next)(c)
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusForbidden, he.Code)
}
