package service

import (
	"context"
	"testing"
	"time"

	"cmms-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSummary(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	for i := 0; i < 5; i++ {
		require.NoError(t, db.Create(&model.Machine{Name: "M", Status: "OPERATIONAL"}).Error)
	}

	// Two open, three terminal.
	for _, status := range []string{
		model.WorksheetStatusPending,
		model.WorksheetStatusInProgress,
		model.WorksheetStatusCompleted,
		model.WorksheetStatusCompleted,
		model.WorksheetStatusCancelled,
	} {
		require.NoError(t, db.Create(&model.Worksheet{
			MachineID:        1,
			AssignedToUserID: 1,
			Title:            "W",
			Status:           status,
		}).Error)
	}

	// One part below its safety stock, one at it, one with no level row.
	low := model.Part{Name: "Low", SKU: "LOW", SafetyStock: 5}
	require.NoError(t, db.Create(&low).Error)
	require.NoError(t, db.Create(&model.InventoryLevel{PartID: low.ID, QuantityOnHand: 2}).Error)

	ok := model.Part{Name: "OK", SKU: "OK", SafetyStock: 5}
	require.NoError(t, db.Create(&ok).Error)
	require.NoError(t, db.Create(&model.InventoryLevel{PartID: ok.ID, QuantityOnHand: 5}).Error)

	require.NoError(t, db.Create(&model.Part{Name: "Orphan", SKU: "ORPH", SafetyStock: 5}).Error)

	// Due within the week, due beyond it, inactive, and overdue.
	in3 := time.Now().AddDate(0, 0, 3)
	in10 := time.Now().AddDate(0, 0, 10)
	yesterday := time.Now().AddDate(0, 0, -1)
	require.NoError(t, db.Create(&model.PMTask{TaskName: "Due", NextDueDate: &in3, IsActive: true}).Error)
	require.NoError(t, db.Create(&model.PMTask{TaskName: "Later", NextDueDate: &in10, IsActive: true}).Error)
	inactive := model.PMTask{TaskName: "Off", NextDueDate: &in3}
	require.NoError(t, db.Create(&inactive).Error)
	require.NoError(t, db.Model(&model.PMTask{}).Where("id = ?", inactive.ID).Update("is_active", false).Error)
	require.NoError(t, db.Create(&model.PMTask{TaskName: "Overdue", NextDueDate: &yesterday, IsActive: true}).Error)

	summary, err := svc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(5), summary.MachinesTotal)
	assert.Equal(t, int64(2), summary.WorksheetsOpen)
	assert.Equal(t, int64(1), summary.InventoryLowStock)
	assert.Equal(t, int64(1), summary.PMDueThisWeek)
}

func TestGetSummary_EmptyDatabase(t *testing.T) {
	svc := NewReportService(newTestDB(t))

	summary, err := svc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.MachinesTotal)
	assert.Equal(t, int64(0), summary.WorksheetsOpen)
	assert.Equal(t, int64(0), summary.InventoryLowStock)
	assert.Equal(t, int64(0), summary.PMDueThisWeek)
}
