package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Part is a spare part kept in stock. Each part pairs 1:1 with an
// InventoryLevel row carrying the on-hand quantity and bin location.
type Part struct {
	ID              uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	SKU             string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"sku"`
	Name            string          `gorm:"type:varchar(150);not null" json:"name"`
	Description     string          `gorm:"type:text" json:"description"`
	Category        string          `gorm:"type:varchar(100)" json:"category"`
	Unit            string          `gorm:"type:varchar(20)" json:"unit"`
	BuyPrice        decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"buy_price"`
	SellPrice       decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"sell_price"`
	SafetyStock     int             `gorm:"default:0" json:"safety_stock"`
	ReorderQuantity int             `gorm:"default:0" json:"reorder_quantity"`
	SupplierID      *uint           `gorm:"index" json:"supplier_id"`
	Supplier        *Supplier       `gorm:"foreignKey:SupplierID" json:"-"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// InventoryLevel holds the current stock state of a part.
// QuantityOnHand carries no non-negative constraint.
type InventoryLevel struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PartID           uint      `gorm:"uniqueIndex;not null" json:"part_id"`
	QuantityOnHand   int       `gorm:"default:0" json:"quantity_on_hand"`
	QuantityReserved int       `gorm:"default:0" json:"quantity_reserved"`
	BinLocation      *string   `gorm:"type:varchar(100)" json:"bin_location"`
	LastUpdated      time.Time `gorm:"autoUpdateTime" json:"last_updated"`
}

// Supplier is where parts are sourced from. Referenced by Part, no routes of
// its own.
type Supplier struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string    `gorm:"type:varchar(150);uniqueIndex;not null" json:"name"`
	ContactPerson string    `gorm:"type:varchar(100)" json:"contact_person"`
	Email         string    `gorm:"type:varchar(120)" json:"email"`
	Phone         string    `gorm:"type:varchar(20)" json:"phone"`
	Address       string    `gorm:"type:varchar(200)" json:"address"`
	City          string    `gorm:"type:varchar(100)" json:"city"`
	PostalCode    string    `gorm:"type:varchar(20)" json:"postal_code"`
	Country       string    `gorm:"type:varchar(100)" json:"country"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}
