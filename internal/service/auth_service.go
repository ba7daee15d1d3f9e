package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"cmms-backend/internal/model"
	"cmms-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DTOs

type LoginRequest struct {
	Username string `json:"username"`
	// Email is a legacy alias for Username kept for older clients.
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"` // seconds
	UserID      uint   `json:"user_id"`
	Username    string `json:"username"`
	RoleName    string `json:"role_name"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

type RegisterResponse struct {
	UserID uint `json:"user_id"`
}

// AuthService covers login, registration and token issuance.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, error)
	Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error)
	CreateUserWithRole(ctx context.Context, email, password, roleName string) (*model.User, error)
}

type authService struct {
	repo          repository.UserRepository
	jwtSecret     []byte
	expireMinutes int
}

// NewAuthService returns a new instance of AuthService.
func NewAuthService(repo repository.UserRepository, jwtSecret string, expireMinutes int) AuthService {
	return &authService{
		repo:          repo,
		jwtSecret:     []byte(jwtSecret),
		expireMinutes: expireMinutes,
	}
}

func (s *authService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	login := req.Username
	if login == "" {
		login = req.Email
	}

	// Lookup by username first, then email for backward compatibility.
	user, err := s.repo.GetByUsername(ctx, login)
	if err != nil {
		user, err = s.repo.GetByEmail(ctx, login)
	}
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrAccountInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	roleName := model.RoleUser
	if role, err := s.repo.GetRoleByID(ctx, user.RoleID); err == nil {
		roleName = role.Name
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, err
	}

	username := user.Username
	if username == "" && user.Email != nil {
		username = *user.Email
	}

	return &TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   s.expireMinutes * 60,
		UserID:      user.ID,
		Username:    username,
		RoleName:    roleName,
	}, nil
}

func (s *authService) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	user, err := s.CreateUserWithRole(ctx, req.Email, req.Password, req.Role)
	if err != nil {
		return nil, err
	}
	return &RegisterResponse{UserID: user.ID}, nil
}

// CreateUserWithRole holds the shared register/admin-create path: uniqueness
// checks, role resolution with USER fallback, username derived from the email
// local part.
func (s *authService) CreateUserWithRole(ctx context.Context, email, password, roleName string) (*model.User, error) {
	username := strings.SplitN(email, "@", 2)[0]

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, ErrConflict
	}
	if _, err := s.repo.GetByUsername(ctx, username); err == nil {
		return nil, ErrConflict
	}

	if roleName == "" {
		roleName = model.RoleUser
	}
	role, err := s.repo.GetRoleByName(ctx, roleName)
	if err != nil {
		role, err = s.repo.GetRoleByName(ctx, model.RoleUser)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrDefaultRoleMissing
			}
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     username,
		Email:        &email,
		PasswordHash: string(hash),
		RoleID:       role.ID,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) issueToken(userID uint) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"iat": now.Unix(),
		"exp": now.Add(time.Duration(s.expireMinutes) * time.Minute).Unix(),
	})
	return token.SignedString(s.jwtSecret)
}
