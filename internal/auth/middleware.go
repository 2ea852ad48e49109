package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Wizz677/applysmart/internal/models"
	"github.com/Wizz677/applysmart/internal/token"
)

// CookieName is the HTTP-only cookie carrying the session token. Client code
// never reads the raw token.
const CookieName = "auth_token"

const identityKey = "identity"

// Guard resolves callers from their session cookie and gates routes by role.
type Guard struct {
	codec  *token.Codec
	secure bool
}

func NewGuard(codec *token.Codec, secureCookies bool) *Guard {
	return &Guard{codec: codec, secure: secureCookies}
}

// RequireAuth extracts the session cookie, verifies it and attaches the
// resolved identity to the request context. Absent or invalid tokens end the
// request with 401.
func (g *Guard) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(CookieName)
		if err != nil || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		id, err := g.codec.Verify(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		c.Set(identityKey, id)
		c.Next()
	}
}

// RequireRole must run after RequireAuth. Exact match only; a missing
// identity denies as well.
func (g *Guard) RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := IdentityFrom(c)
		if !ok || id.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}

// IdentityFrom returns the identity attached by RequireAuth.
func IdentityFrom(c *gin.Context) (token.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return token.Identity{}, false
	}
	id, ok := v.(token.Identity)
	return id, ok
}

// SetSessionCookie installs the signed token for the full validity window.
func (g *Guard) SetSessionCookie(c *gin.Context, tok string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, tok, int(token.Validity.Seconds()), "/", "", g.secure, true)
}

func (g *Guard) ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", g.secure, true)
}
