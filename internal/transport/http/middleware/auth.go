package middleware

import (
	"github.com/gin-gonic/gin"

	"go-shop-admin/internal/core/auth"
	"go-shop-admin/internal/domain"
	resp "go-shop-admin/internal/transport/http/response"
)

// Token header names, checked in order.
const (
	headerAccessToken = "x-access-token"
	headerToken       = "token"
)

const identityKey = "identity"

// Identity is the resolved caller, attached to the context by the gate.
type Identity struct {
	User *domain.User
}

// UserFinder resolves a token subject to an active (non-deleted) user.
type UserFinder interface {
	FindActiveByID(id string) (*domain.User, error)
}

// SetIdentity attaches u as the request identity.
func SetIdentity(c *gin.Context, u *domain.User) {
	c.Set(identityKey, Identity{User: u})
}

// CurrentUser returns the identity attached by the access gate.
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	id, ok := v.(Identity)
	if !ok || id.User == nil {
		return nil, false
	}
	return id.User, true
}

func bearerToken(c *gin.Context) string {
	if t := c.GetHeader(headerAccessToken); t != "" {
		return t
	}
	return c.GetHeader(headerToken)
}

// authenticate verifies the bearer token and resolves the subject.
// Only session-scoped tokens pass; a reset token grants nothing here.
func authenticate(c *gin.Context, j *auth.JWTer, users UserFinder) (*domain.User, bool) {
	token := bearerToken(c)
	if token == "" {
		c.AbortWithStatusJSON(resp.StatusUnauthorized, resp.Error(resp.StatusUnauthorized, "missing token"))
		return nil, false
	}
	claims, err := j.Parse(token)
	if err != nil || claims.Scope != auth.ScopeSession {
		c.AbortWithStatusJSON(resp.StatusUnauthorized, resp.Error(resp.StatusUnauthorized, "please provide a valid token, your token might be expired"))
		return nil, false
	}
	u, err := users.FindActiveByID(claims.UID)
	if err != nil {
		c.AbortWithStatusJSON(resp.StatusServerError, resp.Error(resp.StatusServerError, ""))
		return nil, false
	}
	if u == nil {
		c.AbortWithStatusJSON(resp.StatusUnauthorized, resp.Error(resp.StatusUnauthorized, "sorry, user not found"))
		return nil, false
	}
	return u, true
}

// AuthUser gates ordinary authenticated endpoints. Admins are rejected
// here: user-scope routes explicitly exclude the admin role.
func AuthUser(j *auth.JWTer, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := authenticate(c, j, users)
		if !ok {
			return
		}
		if u.Role == domain.RoleAdmin {
			c.AbortWithStatusJSON(resp.StatusForbidden, resp.Error(resp.StatusForbidden, "you do not have permission to access this resource"))
			return
		}
		SetIdentity(c, u)
		c.Next()
	}
}

// AuthAdmin gates admin endpoints.
func AuthAdmin(j *auth.JWTer, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := authenticate(c, j, users)
		if !ok {
			return
		}
		if u.Role != domain.RoleAdmin {
			c.AbortWithStatusJSON(resp.StatusForbidden, resp.Error(resp.StatusForbidden, "you do not have permission to access this resource"))
			return
		}
		SetIdentity(c, u)
		c.Next()
	}
}
