package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Worksheet statuses. COMPLETED and CANCELLED are terminal; everything else
// counts as open in the reports summary.
const (
	WorksheetStatusPending    = "PENDING"
	WorksheetStatusInProgress = "IN_PROGRESS"
	WorksheetStatusCompleted  = "COMPLETED"
	WorksheetStatusCancelled  = "CANCELLED"
)

// WorksheetTerminalStatuses lists statuses that close a worksheet.
var WorksheetTerminalStatuses = []string{WorksheetStatusCompleted, WorksheetStatusCancelled}

// Worksheet is a maintenance work order covering one machine fault/repair
// cycle.
type Worksheet struct {
	ID                 uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	MachineID          uint       `gorm:"not null;index" json:"machine_id"`
	AssignedToUserID   uint       `gorm:"not null;index" json:"assigned_to_user_id"`
	Title              string     `gorm:"type:varchar(200);not null" json:"title"`
	Description        string     `gorm:"type:text" json:"description"`
	Status             string     `gorm:"type:varchar(50);not null" json:"status"`
	BreakdownTime      *time.Time `json:"breakdown_time"`
	RepairFinishedTime *time.Time `json:"repair_finished_time"`
	TotalDowntimeHours float64    `json:"total_downtime_hours"`
	FaultCause         string     `gorm:"type:text" json:"fault_cause"`
	Notes              string     `gorm:"type:text" json:"notes"`
	CreatedAt          time.Time  `gorm:"autoCreateTime" json:"created_at"`
	ClosedAt           *time.Time `json:"closed_at"`

	Parts []WorksheetPart `gorm:"foreignKey:WorksheetID" json:"-"`
}

// WorksheetPart records a part consumed while working a worksheet. Recording
// one does not touch the part's inventory level.
type WorksheetPart struct {
	ID             uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	WorksheetID    uint            `gorm:"not null;index" json:"worksheet_id"`
	PartID         uint            `gorm:"not null;index" json:"part_id"`
	QuantityUsed   int             `gorm:"not null" json:"quantity_used"`
	UnitCostAtTime decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"unit_cost_at_time"`
	Notes          string          `gorm:"type:text" json:"notes"`
	AddedAt        time.Time       `gorm:"autoCreateTime" json:"added_at"`
}
