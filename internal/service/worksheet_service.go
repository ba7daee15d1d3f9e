package service

import (
	"context"
	"errors"
	"time"

	"cmms-backend/internal/model"
	ws "cmms-backend/internal/websocket"

	"gorm.io/gorm"
)

// DTOs

type WorksheetPartResponse struct {
	InventoryID uint `json:"inventory_id"`
	Qty         int  `json:"qty"`
}

type WorksheetResponse struct {
	ID               uint                    `json:"id"`
	MachineID        uint                    `json:"machine_id"`
	Title            string                  `json:"title"`
	Description      string                  `json:"description"`
	Status           string                  `json:"status"`
	AssignedToUserID uint                    `json:"assigned_to_user_id"`
	ActualStartDate  *time.Time              `json:"actual_start_date"`
	ActualEndDate    *time.Time              `json:"actual_end_date"`
	CompletionNotes  string                  `json:"completion_notes"`
	PartsUsed        []WorksheetPartResponse `json:"parts_used"`
}

type CreateWorksheetRequest struct {
	MachineID        uint   `json:"machine_id" binding:"required"`
	Title            string `json:"title" binding:"required"`
	Description      string `json:"description"`
	AssignedToUserID *uint  `json:"assigned_to_user_id"`
}

// UpdateWorksheetRequest uses pointers: nil fields stay untouched.
type UpdateWorksheetRequest struct {
	Title            *string    `json:"title"`
	Description      *string    `json:"description"`
	Status           *string    `json:"status"`
	AssignedToUserID *uint      `json:"assigned_to_user_id"`
	ActualStartDate  *time.Time `json:"actual_start_date"`
	ActualEndDate    *time.Time `json:"actual_end_date"`
	CompletionNotes  *string    `json:"completion_notes"`
}

type AddWorksheetPartRequest struct {
	PartID uint   `json:"part_id" binding:"required"`
	Qty    int    `json:"qty" binding:"required,gt=0"`
	Notes  string `json:"notes"`
}

// WorksheetService serves the /worksheets routes.
type WorksheetService interface {
	ListWorksheets(ctx context.Context, statusFilter string) ([]WorksheetResponse, error)
	GetWorksheet(ctx context.Context, id uint) (*WorksheetResponse, error)
	CreateWorksheet(ctx context.Context, callerID uint, req CreateWorksheetRequest) (*WorksheetResponse, error)
	UpdateWorksheet(ctx context.Context, id uint, req UpdateWorksheetRequest) (*WorksheetResponse, error)
	DeleteWorksheet(ctx context.Context, id uint) error
	AddPart(ctx context.Context, worksheetID uint, req AddWorksheetPartRequest) (*WorksheetPartResponse, error)
}

type worksheetService struct {
	db  *gorm.DB
	hub *ws.Hub
}

// NewWorksheetService returns a new instance of WorksheetService. The hub may
// be nil; status events are then skipped.
func NewWorksheetService(db *gorm.DB, hub *ws.Hub) WorksheetService {
	return &worksheetService{db: db, hub: hub}
}

func (s *worksheetService) partsUsed(ctx context.Context, worksheetID uint) ([]WorksheetPartResponse, error) {
	var parts []model.WorksheetPart
	if err := s.db.WithContext(ctx).Where("worksheet_id = ?", worksheetID).Order("id ASC").Find(&parts).Error; err != nil {
		return nil, err
	}
	used := make([]WorksheetPartResponse, 0, len(parts))
	for _, p := range parts {
		used = append(used, WorksheetPartResponse{InventoryID: p.PartID, Qty: p.QuantityUsed})
	}
	return used, nil
}

func worksheetToResponse(w *model.Worksheet, parts []WorksheetPartResponse) WorksheetResponse {
	return WorksheetResponse{
		ID:               w.ID,
		MachineID:        w.MachineID,
		Title:            w.Title,
		Description:      w.Description,
		Status:           w.Status,
		AssignedToUserID: w.AssignedToUserID,
		ActualStartDate:  w.BreakdownTime,
		ActualEndDate:    w.RepairFinishedTime,
		CompletionNotes:  w.Notes,
		PartsUsed:        parts,
	}
}

func (s *worksheetService) ListWorksheets(ctx context.Context, statusFilter string) ([]WorksheetResponse, error) {
	query := s.db.WithContext(ctx).Model(&model.Worksheet{})
	if statusFilter != "" {
		query = query.Where("status = ?", statusFilter)
	}

	var worksheets []model.Worksheet
	if err := query.Order("id ASC").Find(&worksheets).Error; err != nil {
		return nil, err
	}

	result := make([]WorksheetResponse, 0, len(worksheets))
	for i := range worksheets {
		parts, err := s.partsUsed(ctx, worksheets[i].ID)
		if err != nil {
			return nil, err
		}
		result = append(result, worksheetToResponse(&worksheets[i], parts))
	}
	return result, nil
}

func (s *worksheetService) GetWorksheet(ctx context.Context, id uint) (*WorksheetResponse, error) {
	var worksheet model.Worksheet
	if err := s.db.WithContext(ctx).First(&worksheet, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	parts, err := s.partsUsed(ctx, worksheet.ID)
	if err != nil {
		return nil, err
	}
	resp := worksheetToResponse(&worksheet, parts)
	return &resp, nil
}

// CreateWorksheet requires an explicit machine id and verifies the machine
// exists. The caller becomes the assignee unless one is given.
func (s *worksheetService) CreateWorksheet(ctx context.Context, callerID uint, req CreateWorksheetRequest) (*WorksheetResponse, error) {
	var machineCount int64
	if err := s.db.WithContext(ctx).Model(&model.Machine{}).Where("id = ?", req.MachineID).Count(&machineCount).Error; err != nil {
		return nil, err
	}
	if machineCount == 0 {
		return nil, ErrNotFound
	}

	assignee := callerID
	if req.AssignedToUserID != nil {
		assignee = *req.AssignedToUserID
	}

	worksheet := model.Worksheet{
		MachineID:        req.MachineID,
		AssignedToUserID: assignee,
		Title:            req.Title,
		Description:      req.Description,
		Status:           model.WorksheetStatusPending,
	}
	if err := s.db.WithContext(ctx).Create(&worksheet).Error; err != nil {
		return nil, err
	}

	resp := worksheetToResponse(&worksheet, []WorksheetPartResponse{})
	return &resp, nil
}

// UpdateWorksheet applies a partial update; only fields present in the
// request body are written.
func (s *worksheetService) UpdateWorksheet(ctx context.Context, id uint, req UpdateWorksheetRequest) (*WorksheetResponse, error) {
	var worksheet model.Worksheet
	if err := s.db.WithContext(ctx).First(&worksheet, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	statusChanged := false
	if req.Status != nil && *req.Status != worksheet.Status {
		worksheet.Status = *req.Status
		statusChanged = true
	}
	if req.Title != nil {
		worksheet.Title = *req.Title
	}
	if req.Description != nil {
		worksheet.Description = *req.Description
	}
	if req.AssignedToUserID != nil {
		worksheet.AssignedToUserID = *req.AssignedToUserID
	}
	if req.ActualStartDate != nil {
		worksheet.BreakdownTime = req.ActualStartDate
	}
	if req.ActualEndDate != nil {
		worksheet.RepairFinishedTime = req.ActualEndDate
	}
	if req.CompletionNotes != nil {
		worksheet.Notes = *req.CompletionNotes
	}

	if err := s.db.WithContext(ctx).Save(&worksheet).Error; err != nil {
		return nil, err
	}

	if statusChanged && s.hub != nil {
		s.hub.BroadcastEvent("worksheet.status_changed", map[string]interface{}{
			"worksheet_id": worksheet.ID,
			"status":       worksheet.Status,
		})
	}

	parts, err := s.partsUsed(ctx, worksheet.ID)
	if err != nil {
		return nil, err
	}
	resp := worksheetToResponse(&worksheet, parts)
	return &resp, nil
}

// DeleteWorksheet removes the consumption records before the worksheet so the
// foreign key is never violated and no orphans remain.
func (s *worksheetService) DeleteWorksheet(ctx context.Context, id uint) error {
	var worksheet model.Worksheet
	if err := s.db.WithContext(ctx).First(&worksheet, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("worksheet_id = ?", worksheet.ID).Delete(&model.WorksheetPart{}).Error; err != nil {
			return err
		}
		return tx.Delete(&worksheet).Error
	})
}

// AddPart records a part consumed by a worksheet, capturing the part's buy
// price at the time of recording. The inventory level is left untouched.
func (s *worksheetService) AddPart(ctx context.Context, worksheetID uint, req AddWorksheetPartRequest) (*WorksheetPartResponse, error) {
	var worksheetCount int64
	if err := s.db.WithContext(ctx).Model(&model.Worksheet{}).Where("id = ?", worksheetID).Count(&worksheetCount).Error; err != nil {
		return nil, err
	}
	if worksheetCount == 0 {
		return nil, ErrNotFound
	}

	var part model.Part
	if err := s.db.WithContext(ctx).First(&part, "id = ?", req.PartID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	record := model.WorksheetPart{
		WorksheetID:    worksheetID,
		PartID:         part.ID,
		QuantityUsed:   req.Qty,
		UnitCostAtTime: part.BuyPrice,
		Notes:          req.Notes,
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}

	return &WorksheetPartResponse{InventoryID: record.PartID, Qty: record.QuantityUsed}, nil
}
