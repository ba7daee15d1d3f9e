package service

import (
	"context"
	"errors"
	"time"

	"cmms-backend/internal/model"

	"gorm.io/gorm"
)

// DTOs

type MachineResponse struct {
	ID               uint       `json:"id"`
	ProductionLineID uint       `json:"production_line_id"`
	Name             string     `json:"name"`
	SerialNumber     *string    `json:"serial_number"`
	Model            string     `json:"model"`
	Manufacturer     string     `json:"manufacturer"`
	Status           string     `json:"status"`
	AssetTag         *string    `json:"asset_tag"`
	Description      string     `json:"description"`
	InstallDate      *time.Time `json:"install_date"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type CreateMachineRequest struct {
	ProductionLineID *uint      `json:"production_line_id"`
	Name             string     `json:"name" binding:"required"`
	SerialNumber     *string    `json:"serial_number"`
	Model            string     `json:"model"`
	Manufacturer     string     `json:"manufacturer"`
	Status           string     `json:"status"`
	AssetTag         *string    `json:"asset_tag"`
	Description      string     `json:"description"`
	InstallDate      *time.Time `json:"install_date"`
}

// UpdateMachineRequest uses pointers throughout: nil means the field was not
// in the request body and stays untouched.
type UpdateMachineRequest struct {
	ProductionLineID *uint      `json:"production_line_id"`
	Name             *string    `json:"name"`
	SerialNumber     *string    `json:"serial_number"`
	Model            *string    `json:"model"`
	Manufacturer     *string    `json:"manufacturer"`
	Status           *string    `json:"status"`
	AssetTag         *string    `json:"asset_tag"`
	Description      *string    `json:"description"`
	InstallDate      *time.Time `json:"install_date"`
}

type ProductionLineResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateProductionLineRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// MachineService serves machines and production lines.
type MachineService interface {
	ListMachines(ctx context.Context, statusFilter string) ([]MachineResponse, error)
	GetMachine(ctx context.Context, id uint) (*MachineResponse, error)
	CreateMachine(ctx context.Context, req CreateMachineRequest) (*MachineResponse, error)
	UpdateMachine(ctx context.Context, id uint, req UpdateMachineRequest) (*MachineResponse, error)
	DeleteMachine(ctx context.Context, id uint) error
	ListProductionLines(ctx context.Context) ([]ProductionLineResponse, error)
	CreateProductionLine(ctx context.Context, req CreateProductionLineRequest) (*ProductionLineResponse, error)
}

type machineService struct {
	db *gorm.DB
}

// NewMachineService returns a new instance of MachineService.
func NewMachineService(db *gorm.DB) MachineService {
	return &machineService{db: db}
}

func machineToResponse(m *model.Machine) MachineResponse {
	return MachineResponse{
		ID:               m.ID,
		ProductionLineID: m.ProductionLineID,
		Name:             m.Name,
		SerialNumber:     m.SerialNumber,
		Model:            m.Model,
		Manufacturer:     m.Manufacturer,
		Status:           m.Status,
		AssetTag:         m.AssetTag,
		Description:      m.Notes,
		InstallDate:      m.InstallDate,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func (s *machineService) ListMachines(ctx context.Context, statusFilter string) ([]MachineResponse, error) {
	query := s.db.WithContext(ctx).Model(&model.Machine{})
	if statusFilter != "" {
		query = query.Where("status = ?", statusFilter)
	}

	var machines []model.Machine
	if err := query.Order("id ASC").Find(&machines).Error; err != nil {
		return nil, err
	}

	res := make([]MachineResponse, 0, len(machines))
	for i := range machines {
		res = append(res, machineToResponse(&machines[i]))
	}
	return res, nil
}

func (s *machineService) GetMachine(ctx context.Context, id uint) (*MachineResponse, error) {
	var machine model.Machine
	if err := s.db.WithContext(ctx).First(&machine, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	resp := machineToResponse(&machine)
	return &resp, nil
}

func (s *machineService) CreateMachine(ctx context.Context, req CreateMachineRequest) (*MachineResponse, error) {
	machine := model.Machine{
		Name:         req.Name,
		SerialNumber: req.SerialNumber,
		Model:        req.Model,
		Manufacturer: req.Manufacturer,
		Status:       req.Status,
		AssetTag:     req.AssetTag,
		Notes:        req.Description,
		InstallDate:  req.InstallDate,
	}
	if req.ProductionLineID != nil {
		machine.ProductionLineID = *req.ProductionLineID
	}

	if err := s.db.WithContext(ctx).Create(&machine).Error; err != nil {
		return nil, err
	}
	resp := machineToResponse(&machine)
	return &resp, nil
}

// UpdateMachine applies a partial update: only fields present in the request
// body are written.
func (s *machineService) UpdateMachine(ctx context.Context, id uint, req UpdateMachineRequest) (*MachineResponse, error) {
	var machine model.Machine
	if err := s.db.WithContext(ctx).First(&machine, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.ProductionLineID != nil {
		machine.ProductionLineID = *req.ProductionLineID
	}
	if req.Name != nil {
		machine.Name = *req.Name
	}
	if req.SerialNumber != nil {
		machine.SerialNumber = req.SerialNumber
	}
	if req.Model != nil {
		machine.Model = *req.Model
	}
	if req.Manufacturer != nil {
		machine.Manufacturer = *req.Manufacturer
	}
	if req.Status != nil {
		machine.Status = *req.Status
	}
	if req.AssetTag != nil {
		machine.AssetTag = req.AssetTag
	}
	if req.Description != nil {
		machine.Notes = *req.Description
	}
	if req.InstallDate != nil {
		machine.InstallDate = req.InstallDate
	}

	if err := s.db.WithContext(ctx).Save(&machine).Error; err != nil {
		return nil, err
	}
	resp := machineToResponse(&machine)
	return &resp, nil
}

func (s *machineService) DeleteMachine(ctx context.Context, id uint) error {
	var machine model.Machine
	if err := s.db.WithContext(ctx).First(&machine, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.db.WithContext(ctx).Delete(&machine).Error
}

func (s *machineService) ListProductionLines(ctx context.Context) ([]ProductionLineResponse, error) {
	var lines []model.ProductionLine
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&lines).Error; err != nil {
		return nil, err
	}

	res := make([]ProductionLineResponse, 0, len(lines))
	for _, l := range lines {
		res = append(res, ProductionLineResponse{
			ID:          l.ID,
			Name:        l.Name,
			Description: l.Description,
			Location:    l.Location,
			CreatedAt:   l.CreatedAt,
		})
	}
	return res, nil
}

func (s *machineService) CreateProductionLine(ctx context.Context, req CreateProductionLineRequest) (*ProductionLineResponse, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.ProductionLine{}).Where("name = ?", req.Name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrConflict
	}

	line := model.ProductionLine{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
	}
	if err := s.db.WithContext(ctx).Create(&line).Error; err != nil {
		return nil, err
	}
	return &ProductionLineResponse{
		ID:          line.ID,
		Name:        line.Name,
		Description: line.Description,
		Location:    line.Location,
		CreatedAt:   line.CreatedAt,
	}, nil
}
