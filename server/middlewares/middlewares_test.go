package middlewares

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ortoo/marketfeed/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test_signing_secret")
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// identityProbe runs one request through AuthContext and reports the identity
// the downstream handler observed.
func identityProbe(t *testing.T, authorization string) (string, bool) {
	t.Helper()

	var (
		userId string
		ok     bool
	)
	router := gin.New()
	router.Use(AuthContext())
	router.GET("/", func(c *gin.Context) {
		userId, ok = UserId(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	return userId, ok
}

func TestAuthContextValidToken(t *testing.T) {
	token, err := utils.SignToken("user_1")
	require.NoError(t, err)

	userId, ok := identityProbe(t, "Bearer "+token)
	assert.True(t, ok)
	assert.Equal(t, "user_1", userId)
}

func TestAuthContextMissingHeaderIsAnonymous(t *testing.T) {
	_, ok := identityProbe(t, "")
	assert.False(t, ok)
}

func TestAuthContextGarbageTokenIsAnonymous(t *testing.T) {
	_, ok := identityProbe(t, "Bearer garbage")
	assert.False(t, ok)

	_, ok = identityProbe(t, "Bearer")
	assert.False(t, ok)
}
