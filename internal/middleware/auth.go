package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"cmms-backend/internal/model"
	"cmms-backend/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	cache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

// Context keys populated by RequireAuth.
const (
	CtxUserKey = "currentUser"
	CtxRoleKey = "userRole"
)

// AuthGuard resolves bearer tokens to user rows and gates routes on role
// names. It owns its DB handle; nothing here is process-global.
type AuthGuard struct {
	db        *gorm.DB
	secret    []byte
	roleCache *cache.Cache
}

// NewAuthGuard returns a guard backed by the given DB and signing secret.
// Role names are cached briefly to keep one DB lookup per request.
func NewAuthGuard(db *gorm.DB, secret string) *AuthGuard {
	return &AuthGuard{
		db:        db,
		secret:    []byte(secret),
		roleCache: cache.New(5*time.Minute, 10*time.Minute),
	}
}

func (g *AuthGuard) parseToken(c *gin.Context) (uint, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return 0, false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return 0, false
	}

	token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return g.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// RoleName resolves a role id to its name, consulting the cache first.
// Missing roles fall back to the default USER name, mirroring login.
func (g *AuthGuard) RoleName(roleID uint) string {
	key := strconv.FormatUint(uint64(roleID), 10)
	if cached, found := g.roleCache.Get(key); found {
		return cached.(string)
	}

	name := model.RoleUser
	var role model.Role
	if err := g.db.First(&role, "id = ?", roleID).Error; err == nil {
		name = role.Name
	}
	g.roleCache.Set(key, name, cache.DefaultExpiration)
	return name
}

// RequireAuth validates the bearer token, loads the user row and stores the
// user and resolved role name in the request context. Missing, invalid or
// expired tokens yield 401; an inactive account yields 403.
func (g *AuthGuard) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := g.parseToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid or missing token"))
			return
		}

		var user model.User
		if err := g.db.First(&user, "id = ?", userID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid or missing token"))
			return
		}
		if !user.IsActive {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Error(http.StatusForbidden, "User account is inactive"))
			return
		}

		c.Set(CtxUserKey, &user)
		c.Set(CtxRoleKey, g.RoleName(user.RoleID))
		c.Next()
	}
}

// RequireRole gates a route on the resolved role name. Must run after
// RequireAuth.
func (g *AuthGuard) RequireRole(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleName := c.GetString(CtxRoleKey)

		for _, allowed := range allowedRoles {
			if roleName == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, response.Error(http.StatusForbidden, "Not enough permissions"))
	}
}

// CurrentUser pulls the authenticated user out of the request context.
func CurrentUser(c *gin.Context) (*model.User, bool) {
	val, exists := c.Get(CtxUserKey)
	if !exists {
		return nil, false
	}
	user, ok := val.(*model.User)
	return user, ok
}
