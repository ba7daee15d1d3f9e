package model

import (
	"time"
)

// PMTask is a recurring preventive-maintenance activity, optionally tied to a
// machine. FrequencyDays is nil when the cadence was never given or could not
// be parsed from the wire format.
type PMTask struct {
	ID               uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	MachineID        *uint      `gorm:"index" json:"machine_id"`
	TaskName         string     `gorm:"type:varchar(150);not null" json:"task_name"`
	TaskDescription  string     `gorm:"type:text" json:"task_description"`
	FrequencyDays    *int       `json:"frequency_days"`
	LastExecutedDate *time.Time `json:"last_executed_date"`
	NextDueDate      *time.Time `json:"next_due_date"`
	IsActive         bool       `gorm:"default:true" json:"is_active"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
