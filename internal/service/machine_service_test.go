package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachineCRUD(t *testing.T) {
	svc := NewMachineService(newTestDB(t))
	ctx := context.Background()

	created, err := svc.CreateMachine(ctx, CreateMachineRequest{
		Name:         "CNC mill",
		Status:       "OPERATIONAL",
		Manufacturer: "Haas",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := svc.GetMachine(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "CNC mill", got.Name)

	newStatus := "DOWN"
	updated, err := svc.UpdateMachine(ctx, created.ID, UpdateMachineRequest{Status: &newStatus})
	require.NoError(t, err)
	assert.Equal(t, "DOWN", updated.Status)
	assert.Equal(t, "Haas", updated.Manufacturer)

	require.NoError(t, svc.DeleteMachine(ctx, created.ID))
	_, err = svc.GetMachine(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListMachines_StatusFilter(t *testing.T) {
	svc := NewMachineService(newTestDB(t))
	ctx := context.Background()

	_, err := svc.CreateMachine(ctx, CreateMachineRequest{Name: "Mill", Status: "OPERATIONAL"})
	require.NoError(t, err)
	_, err = svc.CreateMachine(ctx, CreateMachineRequest{Name: "Lathe", Status: "DOWN"})
	require.NoError(t, err)

	down, err := svc.ListMachines(ctx, "DOWN")
	require.NoError(t, err)
	require.Len(t, down, 1)
	assert.Equal(t, "Lathe", down[0].Name)

	all, err := svc.ListMachines(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCreateProductionLine_DuplicateName(t *testing.T) {
	svc := NewMachineService(newTestDB(t))
	ctx := context.Background()

	_, err := svc.CreateProductionLine(ctx, CreateProductionLineRequest{Name: "Line A"})
	require.NoError(t, err)

	_, err = svc.CreateProductionLine(ctx, CreateProductionLineRequest{Name: "Line A"})
	assert.ErrorIs(t, err, ErrConflict)
}
