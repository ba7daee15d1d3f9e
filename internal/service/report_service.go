package service

import (
	"context"
	"time"

	"cmms-backend/internal/model"

	"gorm.io/gorm"
)

type ReportsSummaryResponse struct {
	MachinesTotal     int64 `json:"machines_total"`
	WorksheetsOpen    int64 `json:"worksheets_open"`
	InventoryLowStock int64 `json:"inventory_low_stock"`
	PMDueThisWeek     int64 `json:"pm_due_this_week"`
}

// ReportService computes the dashboard summary. Every call aggregates
// directly from the database; nothing is cached.
type ReportService interface {
	GetSummary(ctx context.Context) (*ReportsSummaryResponse, error)
}

type reportService struct {
	db *gorm.DB
}

// NewReportService returns a new instance of ReportService.
func NewReportService(db *gorm.DB) ReportService {
	return &reportService{db: db}
}

func (s *reportService) GetSummary(ctx context.Context) (*ReportsSummaryResponse, error) {
	var summary ReportsSummaryResponse

	if err := s.db.WithContext(ctx).Model(&model.Machine{}).Count(&summary.MachinesTotal).Error; err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(&model.Worksheet{}).
		Where("status NOT IN ?", model.WorksheetTerminalStatuses).
		Count(&summary.WorksheetsOpen).Error; err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(&model.Part{}).
		Joins("JOIN inventory_levels ON inventory_levels.part_id = parts.id").
		Where("inventory_levels.quantity_on_hand < parts.safety_stock").
		Count(&summary.InventoryLowStock).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	weekStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekEnd := weekStart.AddDate(0, 0, 7)
	if err := s.db.WithContext(ctx).Model(&model.PMTask{}).
		Where("next_due_date >= ? AND next_due_date <= ? AND is_active = ?", weekStart, weekEnd, true).
		Count(&summary.PMDueThisWeek).Error; err != nil {
		return nil, err
	}

	return &summary, nil
}
