package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"cmms-backend/internal/model"
	ws "cmms-backend/internal/websocket"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DTOs. The inventory API is a flattened view over Part + InventoryLevel:
// quantity and location live on the level row, unit_price maps to the part's
// buy price and min_stock_level to its safety stock.

type InventoryItemResponse struct {
	ID            uint            `json:"id"`
	Name          string          `json:"name"`
	SKU           string          `json:"sku"`
	Quantity      int             `json:"quantity"`
	MinStockLevel int             `json:"min_stock_level"`
	Location      *string         `json:"location"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	CreatedAt     time.Time       `json:"created_at"`
}

type CreateInventoryRequest struct {
	Name          string           `json:"name" binding:"required"`
	SKU           string           `json:"sku"`
	Quantity      *int             `json:"quantity"`
	MinStockLevel *int             `json:"min_stock_level"`
	Location      *string          `json:"location"`
	UnitPrice     *decimal.Decimal `json:"unit_price"`
}

// UpdateInventoryRequest uses pointers: nil fields stay untouched.
type UpdateInventoryRequest struct {
	Name          *string          `json:"name"`
	SKU           *string          `json:"sku"`
	Quantity      *int             `json:"quantity"`
	MinStockLevel *int             `json:"min_stock_level"`
	Location      *string          `json:"location"`
	UnitPrice     *decimal.Decimal `json:"unit_price"`
}

type InventoryFilter struct {
	Search        string
	Category      string
	MinStockLevel *int
}

// InventoryService serves the /inventory routes.
type InventoryService interface {
	ListItems(ctx context.Context, filter InventoryFilter) ([]InventoryItemResponse, error)
	GetItem(ctx context.Context, id uint) (*InventoryItemResponse, error)
	CreateItem(ctx context.Context, req CreateInventoryRequest) (*InventoryItemResponse, error)
	UpdateItem(ctx context.Context, id uint, req UpdateInventoryRequest) (*InventoryItemResponse, error)
	DeleteItem(ctx context.Context, id uint) error
}

type inventoryService struct {
	db  *gorm.DB
	hub *ws.Hub
}

// NewInventoryService returns a new instance of InventoryService. The hub may
// be nil; stock events are then skipped.
func NewInventoryService(db *gorm.DB, hub *ws.Hub) InventoryService {
	return &inventoryService{db: db, hub: hub}
}

func (s *inventoryService) levelFor(ctx context.Context, partID uint) *model.InventoryLevel {
	var level model.InventoryLevel
	if err := s.db.WithContext(ctx).First(&level, "part_id = ?", partID).Error; err != nil {
		return nil
	}
	return &level
}

func itemResponse(part *model.Part, level *model.InventoryLevel) InventoryItemResponse {
	resp := InventoryItemResponse{
		ID:            part.ID,
		Name:          part.Name,
		SKU:           part.SKU,
		MinStockLevel: part.SafetyStock,
		UnitPrice:     part.BuyPrice,
		CreatedAt:     part.CreatedAt,
	}
	if level != nil {
		resp.Quantity = level.QuantityOnHand
		resp.Location = level.BinLocation
	}
	return resp
}

func (s *inventoryService) notifyStockChange(part *model.Part, quantity int) {
	if s.hub == nil {
		return
	}
	s.hub.BroadcastEvent("inventory.stock_changed", map[string]interface{}{
		"part_id":          part.ID,
		"sku":              part.SKU,
		"quantity_on_hand": quantity,
	})
}

func (s *inventoryService) ListItems(ctx context.Context, filter InventoryFilter) ([]InventoryItemResponse, error) {
	query := s.db.WithContext(ctx).Model(&model.Part{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR sku LIKE ?", pattern, pattern)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	var parts []model.Part
	if err := query.Order("id ASC").Find(&parts).Error; err != nil {
		return nil, err
	}

	result := make([]InventoryItemResponse, 0, len(parts))
	for i := range parts {
		level := s.levelFor(ctx, parts[i].ID)
		quantity := 0
		if level != nil {
			quantity = level.QuantityOnHand
		}

		// The stock threshold is applied after the query, on the joined
		// quantity: items at or above the threshold are dropped.
		if filter.MinStockLevel != nil && quantity >= *filter.MinStockLevel {
			continue
		}

		result = append(result, itemResponse(&parts[i], level))
	}
	return result, nil
}

func (s *inventoryService) GetItem(ctx context.Context, id uint) (*InventoryItemResponse, error) {
	var part model.Part
	if err := s.db.WithContext(ctx).First(&part, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	resp := itemResponse(&part, s.levelFor(ctx, part.ID))
	return &resp, nil
}

// defaultSKU derives a placeholder SKU from the item name.
func defaultSKU(name string) string {
	prefix := name
	if len(prefix) > 10 {
		prefix = prefix[:10]
	}
	return "SKU-" + strings.ToUpper(prefix)
}

func (s *inventoryService) CreateItem(ctx context.Context, req CreateInventoryRequest) (*InventoryItemResponse, error) {
	sku := req.SKU
	if sku == "" {
		sku = defaultSKU(req.Name)
	}

	// Reject duplicate SKUs before any write so a conflict never leaves a
	// partial part/level pair behind.
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Part{}).Where("sku = ?", sku).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrConflict
	}

	part := model.Part{
		Name: req.Name,
		SKU:  sku,
	}
	if req.UnitPrice != nil {
		part.BuyPrice = *req.UnitPrice
	}
	if req.MinStockLevel != nil {
		part.SafetyStock = *req.MinStockLevel
	}

	quantity := 0
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&part).Error; err != nil {
			return err
		}
		level := model.InventoryLevel{
			PartID:         part.ID,
			QuantityOnHand: quantity,
			BinLocation:    req.Location,
		}
		return tx.Create(&level).Error
	})
	if err != nil {
		return nil, err
	}

	s.notifyStockChange(&part, quantity)

	resp := itemResponse(&part, s.levelFor(ctx, part.ID))
	return &resp, nil
}

// UpdateItem applies a partial update, merging each present field into its
// target: quantity and location into the level row (created on demand),
// unit_price into buy_price, min_stock_level into safety_stock.
func (s *inventoryService) UpdateItem(ctx context.Context, id uint, req UpdateInventoryRequest) (*InventoryItemResponse, error) {
	var part model.Part
	if err := s.db.WithContext(ctx).First(&part, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		part.Name = *req.Name
	}
	if req.SKU != nil {
		part.SKU = *req.SKU
	}
	if req.UnitPrice != nil {
		part.BuyPrice = *req.UnitPrice
	}
	if req.MinStockLevel != nil {
		part.SafetyStock = *req.MinStockLevel
	}

	stockChanged := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&part).Error; err != nil {
			return err
		}

		if req.Quantity != nil || req.Location != nil {
			var level model.InventoryLevel
			findErr := tx.First(&level, "part_id = ?", part.ID).Error
			if findErr != nil && !errors.Is(findErr, gorm.ErrRecordNotFound) {
				return findErr
			}
			level.PartID = part.ID
			if req.Quantity != nil {
				level.QuantityOnHand = *req.Quantity
				stockChanged = true
			}
			if req.Location != nil {
				level.BinLocation = req.Location
			}
			if err := tx.Save(&level).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	level := s.levelFor(ctx, part.ID)
	if stockChanged && level != nil {
		s.notifyStockChange(&part, level.QuantityOnHand)
	}

	resp := itemResponse(&part, level)
	return &resp, nil
}

// DeleteItem removes the level row first, then the part.
func (s *inventoryService) DeleteItem(ctx context.Context, id uint) error {
	var part model.Part
	if err := s.db.WithContext(ctx).First(&part, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("part_id = ?", part.ID).Delete(&model.InventoryLevel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&part).Error
	})
}
