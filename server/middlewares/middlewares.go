package middlewares

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ortoo/marketfeed/utils"
	"github.com/ortoo/marketfeed/utils/flag"
)

type contextKey string

// userIdKey carries the authenticated user's id through the request context.
const userIdKey contextKey = "sub"

// AuthContext derives the per-request identity from the Authorization header
// of the form "Bearer <token>". Verification failure of any kind (missing
// header, malformed token, bad signature, expiry) degrades to an anonymous
// request instead of aborting: resolvers that require a caller decide for
// themselves. The identity is recomputed on every request, never cached.
//
// With -no_auth the token check is skipped and the identity is read from a
// plain "sub" header, local development only.
func AuthContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		if flag.ByPassAuth {
			if sub := c.GetHeader("sub"); sub != "" {
				c.Request = c.Request.WithContext(WithUserId(c.Request.Context(), sub))
			}
			c.Next()
			return
		}

		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.Next()
			return
		}

		userId, err := utils.VerifyToken(token)
		if err != nil {
			// Anonymous. The authorization decision is deferred to the
			// resolver layer.
			c.Next()
			return
		}

		c.Request = c.Request.WithContext(WithUserId(c.Request.Context(), userId))
		c.Next()
	}
}

// bearerToken splits the header on the first space and returns the credential
// part, or "" when absent.
func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	return parts[1]
}

// WithUserId attaches an authenticated user id to ctx.
func WithUserId(ctx context.Context, userId string) context.Context {
	return context.WithValue(ctx, userIdKey, userId)
}

// UserId returns the authenticated user's id, or false for an anonymous
// request.
func UserId(ctx context.Context) (string, bool) {
	userId, ok := ctx.Value(userIdKey).(string)
	return userId, ok && userId != ""
}
