package model

import (
	"time"
)

// ProductionLine is a physical line on the factory floor. Every machine
// belongs to exactly one line.
type ProductionLine struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Location    string    `gorm:"type:varchar(200)" json:"location"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Machines []Machine `gorm:"foreignKey:ProductionLineID" json:"-"`
}

// Machine is a maintainable asset on a production line.
type Machine struct {
	ID               uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductionLineID uint       `gorm:"not null;index" json:"production_line_id"`
	Name             string     `gorm:"type:varchar(100);not null" json:"name"`
	SerialNumber     *string    `gorm:"type:varchar(100);uniqueIndex" json:"serial_number"`
	Model            string     `gorm:"type:varchar(100)" json:"model"`
	Manufacturer     string     `gorm:"type:varchar(100)" json:"manufacturer"`
	Status           string     `gorm:"type:varchar(50)" json:"status"`
	AssetTag         *string    `gorm:"type:varchar(50);uniqueIndex" json:"asset_tag"`
	InstallDate      *time.Time `json:"install_date"`
	Notes            string     `gorm:"type:text" json:"notes"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
