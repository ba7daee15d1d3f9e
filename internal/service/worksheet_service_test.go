package service

import (
	"context"
	"testing"

	"cmms-backend/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newWorksheetService(t *testing.T) (WorksheetService, *gorm.DB) {
	db := newTestDB(t)
	return NewWorksheetService(db, nil), db
}

func seedMachine(t *testing.T, db *gorm.DB) *model.Machine {
	t.Helper()
	machine := model.Machine{Name: "CNC mill", Status: "OPERATIONAL"}
	require.NoError(t, db.Create(&machine).Error)
	return &machine
}

func TestCreateWorksheet_UnknownMachine(t *testing.T) {
	svc, _ := newWorksheetService(t)

	_, err := svc.CreateWorksheet(context.Background(), 1, CreateWorksheetRequest{
		MachineID: 42,
		Title:     "Spindle jammed",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateWorksheet_DefaultsAssigneeToCaller(t *testing.T) {
	svc, db := newWorksheetService(t)
	machine := seedMachine(t, db)

	resp, err := svc.CreateWorksheet(context.Background(), 7, CreateWorksheetRequest{
		MachineID: machine.ID,
		Title:     "Spindle jammed",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(7), resp.AssignedToUserID)
	assert.Equal(t, model.WorksheetStatusPending, resp.Status)
	assert.Empty(t, resp.PartsUsed)
}

func TestCreateWorksheet_ExplicitAssignee(t *testing.T) {
	svc, db := newWorksheetService(t)
	machine := seedMachine(t, db)

	assignee := uint(12)
	resp, err := svc.CreateWorksheet(context.Background(), 7, CreateWorksheetRequest{
		MachineID:        machine.ID,
		Title:            "Belt replacement",
		AssignedToUserID: &assignee,
	})
	require.NoError(t, err)
	assert.Equal(t, assignee, resp.AssignedToUserID)
}

func TestUpdateWorksheet_PartialMerge(t *testing.T) {
	svc, db := newWorksheetService(t)
	machine := seedMachine(t, db)
	ctx := context.Background()

	created, err := svc.CreateWorksheet(ctx, 1, CreateWorksheetRequest{
		MachineID:   machine.ID,
		Title:       "Spindle jammed",
		Description: "Makes a grinding noise",
	})
	require.NoError(t, err)

	status := model.WorksheetStatusInProgress
	updated, err := svc.UpdateWorksheet(ctx, created.ID, UpdateWorksheetRequest{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, model.WorksheetStatusInProgress, updated.Status)
	assert.Equal(t, "Spindle jammed", updated.Title)
	assert.Equal(t, "Makes a grinding noise", updated.Description)
}

func TestDeleteWorksheet_RemovesPartUsage(t *testing.T) {
	svc, db := newWorksheetService(t)
	machine := seedMachine(t, db)
	ctx := context.Background()

	part := model.Part{Name: "Bearing", SKU: "BRG-1"}
	require.NoError(t, db.Create(&part).Error)

	created, err := svc.CreateWorksheet(ctx, 1, CreateWorksheetRequest{MachineID: machine.ID, Title: "Repair"})
	require.NoError(t, err)

	_, err = svc.AddPart(ctx, created.ID, AddWorksheetPartRequest{PartID: part.ID, Qty: 2})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteWorksheet(ctx, created.ID))

	var usage int64
	require.NoError(t, db.Model(&model.WorksheetPart{}).Where("worksheet_id = ?", created.ID).Count(&usage).Error)
	assert.Equal(t, int64(0), usage)

	_, err = svc.GetWorksheet(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddPart_LeavesInventoryUntouched(t *testing.T) {
	svc, db := newWorksheetService(t)
	machine := seedMachine(t, db)
	ctx := context.Background()

	part := model.Part{Name: "Bearing", SKU: "BRG-1", BuyPrice: decimal.RequireFromString("12.30")}
	require.NoError(t, db.Create(&part).Error)
	level := model.InventoryLevel{PartID: part.ID, QuantityOnHand: 10}
	require.NoError(t, db.Create(&level).Error)

	created, err := svc.CreateWorksheet(ctx, 1, CreateWorksheetRequest{MachineID: machine.ID, Title: "Repair"})
	require.NoError(t, err)

	resp, err := svc.AddPart(ctx, created.ID, AddWorksheetPartRequest{PartID: part.ID, Qty: 3})
	require.NoError(t, err)
	assert.Equal(t, part.ID, resp.InventoryID)
	assert.Equal(t, 3, resp.Qty)

	// Recording usage never decrements stock.
	var after model.InventoryLevel
	require.NoError(t, db.First(&after, "part_id = ?", part.ID).Error)
	assert.Equal(t, 10, after.QuantityOnHand)

	// The part's buy price is captured on the usage row.
	var record model.WorksheetPart
	require.NoError(t, db.First(&record, "worksheet_id = ?", created.ID).Error)
	assert.True(t, record.UnitCostAtTime.Equal(decimal.RequireFromString("12.30")))
}

func TestAddPart_UnknownWorksheetOrPart(t *testing.T) {
	svc, db := newWorksheetService(t)
	machine := seedMachine(t, db)
	ctx := context.Background()

	_, err := svc.AddPart(ctx, 99, AddWorksheetPartRequest{PartID: 1, Qty: 1})
	assert.ErrorIs(t, err, ErrNotFound)

	created, err := svc.CreateWorksheet(ctx, 1, CreateWorksheetRequest{MachineID: machine.ID, Title: "Repair"})
	require.NoError(t, err)

	_, err = svc.AddPart(ctx, created.ID, AddWorksheetPartRequest{PartID: 99, Qty: 1})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListWorksheets_StatusFilter(t *testing.T) {
	svc, db := newWorksheetService(t)
	machine := seedMachine(t, db)
	ctx := context.Background()

	first, err := svc.CreateWorksheet(ctx, 1, CreateWorksheetRequest{MachineID: machine.ID, Title: "First"})
	require.NoError(t, err)
	_, err = svc.CreateWorksheet(ctx, 1, CreateWorksheetRequest{MachineID: machine.ID, Title: "Second"})
	require.NoError(t, err)

	done := model.WorksheetStatusCompleted
	_, err = svc.UpdateWorksheet(ctx, first.ID, UpdateWorksheetRequest{Status: &done})
	require.NoError(t, err)

	completed, err := svc.ListWorksheets(ctx, model.WorksheetStatusCompleted)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, "First", completed[0].Title)

	all, err := svc.ListWorksheets(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
