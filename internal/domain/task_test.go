package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Status
		wantErr bool
	}{
		{
			name: "should parse Pending",
			raw:  "Pending",
			want: StatusPending,
		},
		{
			name: "should parse Completed",
			raw:  "Completed",
			want: StatusCompleted,
		},
		{
			name:    "should reject lowercase pending",
			raw:     "pending",
			wantErr: true,
		},
		{
			name:    "should reject uppercase COMPLETED",
			raw:     "COMPLETED",
			wantErr: true,
		},
		{
			name:    "should reject unknown value",
			raw:     "Done",
			wantErr: true,
		},
		{
			name:    "should reject empty string",
			raw:     "",
			wantErr: true,
		},
		{
			name:    "should reject padded value",
			raw:     " Pending ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatus(tt.raw)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "unknown status")
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestStatus_IsValid(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusCompleted.IsValid())
	assert.False(t, Status("Done").IsValid())
	assert.False(t, Status("").IsValid())
}

func TestNewTask(t *testing.T) {
	task := NewTask("Buy milk", "Two liters")

	assert.Equal(t, int64(0), task.ID) // assigned by the store, not here
	assert.Equal(t, "Buy milk", task.Name)
	assert.Equal(t, "Two liters", task.Description)
	assert.Equal(t, StatusPending, task.Status)
}

func TestTask_IsValid(t *testing.T) {
	tests := []struct {
		name string
		task Task
		want bool
	}{
		{
			name: "should accept named pending task",
			task: Task{Name: "Buy milk", Status: StatusPending},
			want: true,
		},
		{
			name: "should accept named completed task",
			task: Task{Name: "Buy milk", Status: StatusCompleted},
			want: true,
		},
		{
			name: "should reject empty name",
			task: Task{Name: "", Status: StatusPending},
			want: false,
		},
		{
			name: "should reject unknown status",
			task: Task{Name: "Buy milk", Status: Status("Done")},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.task.IsValid())
		})
	}
}
