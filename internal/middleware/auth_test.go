package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"cmms-backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

func newGuardTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.Role{}, &model.User{}))
	return db
}

func mintToken(t *testing.T, userID uint) string {
	t.Helper()
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"iat": now.Unix(),
		"exp": now.Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func seedUserWithRole(t *testing.T, db *gorm.DB, roleName string, active bool) *model.User {
	t.Helper()

	role := model.Role{Name: roleName}
	require.NoError(t, db.Create(&role).Error)

	email := roleName + "@example.com"
	user := model.User{Username: roleName, Email: &email, PasswordHash: "x", RoleID: role.ID, IsActive: true}
	require.NoError(t, db.Create(&user).Error)
	if !active {
		require.NoError(t, db.Model(&model.User{}).Where("id = ?", user.ID).Update("is_active", false).Error)
	}
	return &user
}

func newGuardRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	guard := NewAuthGuard(db, testSecret)

	router := gin.New()
	router.GET("/protected", guard.RequireAuth(), func(c *gin.Context) {
		user, _ := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"username": user.Username})
	})
	router.GET("/admin", guard.RequireAuth(), guard.RequireRole(model.AdminRoleNames...), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestRequireAuth_MissingToken(t *testing.T) {
	router := newGuardRouter(newGuardTestDB(t))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_GarbageToken(t *testing.T) {
	router := newGuardRouter(newGuardTestDB(t))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_ValidToken(t *testing.T) {
	db := newGuardTestDB(t)
	user := seedUserWithRole(t, db, model.RoleUser, true)
	router := newGuardRouter(db)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, user.ID))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), user.Username)
}

func TestRequireAuth_InactiveUser(t *testing.T) {
	db := newGuardTestDB(t)
	user := seedUserWithRole(t, db, model.RoleUser, false)
	router := newGuardRouter(db)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, user.ID))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAuth_UnknownUser(t *testing.T) {
	router := newGuardRouter(newGuardTestDB(t))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, 999))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole_ForbidsNonAdmin(t *testing.T) {
	db := newGuardTestDB(t)
	user := seedUserWithRole(t, db, model.RoleUser, true)
	router := newGuardRouter(db)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, user.ID))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Not enough permissions")
}

func TestRequireRole_AllowsAdmin(t *testing.T) {
	db := newGuardTestDB(t)
	user := seedUserWithRole(t, db, model.RoleAdmin, true)
	router := newGuardRouter(db)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, user.ID))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoleName_CachesLookups(t *testing.T) {
	db := newGuardTestDB(t)
	role := model.Role{Name: "OPERATOR"}
	require.NoError(t, db.Create(&role).Error)

	guard := NewAuthGuard(db, testSecret)
	assert.Equal(t, "OPERATOR", guard.RoleName(role.ID))

	// Subsequent lookups come from the cache, surviving a row rename.
	require.NoError(t, db.Model(&model.Role{}).Where("id = ?", role.ID).Update("name", "RENAMED").Error)
	assert.Equal(t, "OPERATOR", guard.RoleName(role.ID))

	// Unknown role ids fall back to the default name.
	assert.Equal(t, model.RoleUser, guard.RoleName(999))
}
