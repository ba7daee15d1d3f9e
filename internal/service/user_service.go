package service

import (
	"context"
	"time"

	"cmms-backend/internal/model"
	"cmms-backend/internal/repository"
)

// DTOs

type UserResponse struct {
	ID        uint    `json:"id"`
	Email     *string `json:"email"`
	Username  string  `json:"username"`
	Role      string  `json:"role"`
	CreatedAt string  `json:"created_at"`
}

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

type CreateUserResponse struct {
	ID uint `json:"id"`
}

// UserService serves the /users routes. Role gating happens in the route
// guard, not here.
type UserService interface {
	GetUserByID(ctx context.Context, id uint) (*UserResponse, error)
	ListUsers(ctx context.Context, offset, limit int) ([]UserResponse, int64, error)
	CreateUser(ctx context.Context, req CreateUserRequest) (*CreateUserResponse, error)
}

type userService struct {
	repo repository.UserRepository
	auth AuthService
}

// NewUserService returns a new instance of UserService. Creation delegates to
// the auth service so register and admin-create share one code path.
func NewUserService(repo repository.UserRepository, auth AuthService) UserService {
	return &userService{repo: repo, auth: auth}
}

func (s *userService) mapToResponse(ctx context.Context, user *model.User) UserResponse {
	roleName := ""
	if role, err := s.repo.GetRoleByID(ctx, user.RoleID); err == nil {
		roleName = role.Name
	}
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		Role:      roleName,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

func (s *userService) GetUserByID(ctx context.Context, id uint) (*UserResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	resp := s.mapToResponse(ctx, user)
	return &resp, nil
}

func (s *userService) ListUsers(ctx context.Context, offset, limit int) ([]UserResponse, int64, error) {
	users, total, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, s.mapToResponse(ctx, &users[i]))
	}
	return responses, total, nil
}

func (s *userService) CreateUser(ctx context.Context, req CreateUserRequest) (*CreateUserResponse, error) {
	user, err := s.auth.CreateUserWithRole(ctx, req.Email, req.Password, req.Role)
	if err != nil {
		return nil, err
	}
	return &CreateUserResponse{ID: user.ID}, nil
}
