package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrequency(t *testing.T) {
	cases := []struct {
		in   string
		want *int
	}{
		{"14 days", intPtr(14)},
		{"7", intPtr(7)},
		{"  30 days  ", intPtr(30)},
		{"every day", nil},
		{"", nil},
		{"days 14", nil},
	}
	for _, tc := range cases {
		got := ParseFrequency(tc.in)
		if tc.want == nil {
			assert.Nil(t, got, "input %q", tc.in)
		} else {
			require.NotNil(t, got, "input %q", tc.in)
			assert.Equal(t, *tc.want, *got, "input %q", tc.in)
		}
	}
}

func TestFormatFrequency(t *testing.T) {
	assert.Nil(t, FormatFrequency(nil))

	got := FormatFrequency(intPtr(14))
	require.NotNil(t, got)
	assert.Equal(t, "14 days", *got)
}

func TestCreateTask_ParsesFrequency(t *testing.T) {
	svc := NewPMService(newTestDB(t))

	task, err := svc.CreateTask(context.Background(), CreatePMTaskRequest{
		Title:     "Grease spindle",
		Frequency: strPtr("14 days"),
	})
	require.NoError(t, err)
	require.NotNil(t, task.Frequency)
	assert.Equal(t, "14 days", *task.Frequency)
}

func TestCreateTask_UnparseableFrequency(t *testing.T) {
	svc := NewPMService(newTestDB(t))

	task, err := svc.CreateTask(context.Background(), CreatePMTaskRequest{
		Title:     "Inspect belts",
		Frequency: strPtr("monthly"),
	})
	require.NoError(t, err)
	assert.Nil(t, task.Frequency)
}

func TestUpdateTask_UnparseableFrequencyKeepsStoredCadence(t *testing.T) {
	svc := NewPMService(newTestDB(t))
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, CreatePMTaskRequest{
		Title:     "Grease spindle",
		Frequency: strPtr("14 days"),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateTask(ctx, created.ID, UpdatePMTaskRequest{Frequency: strPtr("whenever")})
	require.NoError(t, err)
	require.NotNil(t, updated.Frequency)
	assert.Equal(t, "14 days", *updated.Frequency)
}

func TestUpdateTask_PartialMerge(t *testing.T) {
	svc := NewPMService(newTestDB(t))
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, CreatePMTaskRequest{
		Title:       "Grease spindle",
		Description: "Use lithium grease",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateTask(ctx, created.ID, UpdatePMTaskRequest{Title: strPtr("Grease spindle bearings")})
	require.NoError(t, err)
	assert.Equal(t, "Grease spindle bearings", updated.Title)
	assert.Equal(t, "Use lithium grease", updated.Description)
}

func TestDeleteTask_NotFound(t *testing.T) {
	svc := NewPMService(newTestDB(t))
	assert.ErrorIs(t, svc.DeleteTask(context.Background(), 99), ErrNotFound)
}
