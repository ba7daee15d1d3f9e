package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cmms-backend/internal/middleware"
	"cmms-backend/internal/model"
	"cmms-backend/internal/repository"
	"cmms-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestRouter wires the auth and user endpoints against an in-memory
// database, the same way main does.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.Role{}, &model.User{}))
	require.NoError(t, db.Create(&model.Role{Name: model.RoleUser}).Error)
	require.NoError(t, db.Create(&model.Role{Name: model.RoleAdmin}).Error)

	repo := repository.NewUserRepository(db)
	authService := service.NewAuthService(repo, "test-secret", 30)
	userService := service.NewUserService(repo, authService)
	guard := middleware.NewAuthGuard(db, "test-secret")

	noLimit := func(c *gin.Context) { c.Next() }
	router := gin.New()
	api := router.Group("/api/v1")
	NewAuthHandler(authService, noLimit).RegisterRoutes(api)
	NewUserHandler(userService, guard).RegisterRoutes(api)
	return router
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterLoginMeFlow(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(router, "/api/v1/auth/register", service.RegisterRequest{
		Email:    "tech@example.com",
		Password: "s3cret",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = postJSON(router, "/api/v1/auth/login", service.LoginRequest{
		Username: "tech",
		Password: "s3cret",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var envelope struct {
		Data service.TokenResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotEmpty(t, envelope.Data.AccessToken)
	assert.Equal(t, "Bearer", envelope.Data.TokenType)
	assert.Equal(t, model.RoleUser, envelope.Data.RoleName)

	me := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+envelope.Data.AccessToken)
	router.ServeHTTP(me, req)

	assert.Equal(t, http.StatusOK, me.Code)
	assert.Contains(t, me.Body.String(), "tech@example.com")
}

func TestLogin_BadCredentialsEnvelope(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(router, "/api/v1/auth/login", service.LoginRequest{
		Username: "ghost",
		Password: "nope",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestRegister_MalformedPayload(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(router, "/api/v1/auth/register", map[string]string{"email": "not-an-email", "password": "pw"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestListUsers_RequiresAdmin(t *testing.T) {
	router := newTestRouter(t)

	postJSON(router, "/api/v1/auth/register", service.RegisterRequest{Email: "tech@example.com", Password: "pw"})
	w := postJSON(router, "/api/v1/auth/login", service.LoginRequest{Username: "tech", Password: "pw"})
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data service.TokenResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))

	list := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	req.Header.Set("Authorization", "Bearer "+envelope.Data.AccessToken)
	router.ServeHTTP(list, req)

	assert.Equal(t, http.StatusForbidden, list.Code)
}

func TestLogout_NoContent(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(router, "/api/v1/auth/logout", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
