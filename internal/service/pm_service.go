package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cmms-backend/internal/model"

	"gorm.io/gorm"
)

// DTOs. The wire format carries the cadence as a free-text string like
// "7 days"; storage keeps an integer day count.

type PMTaskResponse struct {
	ID          uint       `json:"id"`
	MachineID   *uint      `json:"machine_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Frequency   *string    `json:"frequency"`
	NextDueDate *time.Time `json:"next_due_date"`
}

type CreatePMTaskRequest struct {
	MachineID   *uint      `json:"machine_id"`
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Frequency   *string    `json:"frequency"`
	NextDueDate *time.Time `json:"next_due_date"`
}

// UpdatePMTaskRequest uses pointers: nil fields stay untouched.
type UpdatePMTaskRequest struct {
	MachineID   *uint      `json:"machine_id"`
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Frequency   *string    `json:"frequency"`
	NextDueDate *time.Time `json:"next_due_date"`
}

// PMService serves the /pm/tasks routes.
type PMService interface {
	ListTasks(ctx context.Context) ([]PMTaskResponse, error)
	GetTask(ctx context.Context, id uint) (*PMTaskResponse, error)
	CreateTask(ctx context.Context, req CreatePMTaskRequest) (*PMTaskResponse, error)
	UpdateTask(ctx context.Context, id uint, req UpdatePMTaskRequest) (*PMTaskResponse, error)
	DeleteTask(ctx context.Context, id uint) error
}

type pmService struct {
	db *gorm.DB
}

// NewPMService returns a new instance of PMService.
func NewPMService(db *gorm.DB) PMService {
	return &pmService{db: db}
}

// ParseFrequency extracts a day count from a cadence string like "14 days".
// Only the leading whitespace-delimited token is considered; unparseable
// input yields nil without error.
func ParseFrequency(s string) *int {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil
	}
	return &n
}

// FormatFrequency renders a stored day count back into the wire format.
func FormatFrequency(days *int) *string {
	if days == nil {
		return nil
	}
	s := fmt.Sprintf("%d days", *days)
	return &s
}

func pmTaskToResponse(t *model.PMTask) PMTaskResponse {
	return PMTaskResponse{
		ID:          t.ID,
		MachineID:   t.MachineID,
		Title:       t.TaskName,
		Description: t.TaskDescription,
		Frequency:   FormatFrequency(t.FrequencyDays),
		NextDueDate: t.NextDueDate,
	}
}

func (s *pmService) ListTasks(ctx context.Context) ([]PMTaskResponse, error) {
	var tasks []model.PMTask
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}

	result := make([]PMTaskResponse, 0, len(tasks))
	for i := range tasks {
		result = append(result, pmTaskToResponse(&tasks[i]))
	}
	return result, nil
}

func (s *pmService) GetTask(ctx context.Context, id uint) (*PMTaskResponse, error) {
	var task model.PMTask
	if err := s.db.WithContext(ctx).First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	resp := pmTaskToResponse(&task)
	return &resp, nil
}

func (s *pmService) CreateTask(ctx context.Context, req CreatePMTaskRequest) (*PMTaskResponse, error) {
	task := model.PMTask{
		MachineID:       req.MachineID,
		TaskName:        req.Title,
		TaskDescription: req.Description,
		NextDueDate:     req.NextDueDate,
		IsActive:        true,
	}
	if req.Frequency != nil {
		task.FrequencyDays = ParseFrequency(*req.Frequency)
	}

	if err := s.db.WithContext(ctx).Create(&task).Error; err != nil {
		return nil, err
	}
	resp := pmTaskToResponse(&task)
	return &resp, nil
}

func (s *pmService) UpdateTask(ctx context.Context, id uint, req UpdatePMTaskRequest) (*PMTaskResponse, error) {
	var task model.PMTask
	if err := s.db.WithContext(ctx).First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		task.TaskName = *req.Title
	}
	if req.Description != nil {
		task.TaskDescription = *req.Description
	}
	if req.MachineID != nil {
		task.MachineID = req.MachineID
	}
	if req.NextDueDate != nil {
		task.NextDueDate = req.NextDueDate
	}
	if req.Frequency != nil {
		// An unparseable cadence leaves the stored day count as-is.
		if days := ParseFrequency(*req.Frequency); days != nil {
			task.FrequencyDays = days
		}
	}

	if err := s.db.WithContext(ctx).Save(&task).Error; err != nil {
		return nil, err
	}
	resp := pmTaskToResponse(&task)
	return &resp, nil
}

func (s *pmService) DeleteTask(ctx context.Context, id uint) error {
	var task model.PMTask
	if err := s.db.WithContext(ctx).First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.db.WithContext(ctx).Delete(&task).Error
}
