package handler

import (
	"net/http"
	"strconv"

	"cmms-backend/internal/middleware"
	"cmms-backend/internal/service"
	"cmms-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	inventoryService service.InventoryService
	guard            *middleware.AuthGuard
}

func NewInventoryHandler(inventoryService service.InventoryService, guard *middleware.AuthGuard) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService, guard: guard}
}

// RegisterRoutes binds inventory endpoints under the given group.
func (h *InventoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	inventory := router.Group("/inventory", h.guard.RequireAuth())
	{
		inventory.GET("", h.ListItems)
		inventory.GET("/:id", h.GetItem)
		inventory.POST("", h.CreateItem)
		inventory.PUT("/:id", h.UpdateItem)
		inventory.DELETE("/:id", h.DeleteItem)
	}
}

// ListItems returns spare part inventory, optionally filtered
// @Summary      List inventory items
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        search           query     string  false  "Substring match on name or SKU"
// @Param        category         query     string  false  "Exact category match"
// @Param        min_stock_level  query     int     false  "Only items whose quantity is below this value"
// @Success      200              {object}  response.Response{data=[]service.InventoryItemResponse}
// @Router       /api/v1/inventory [get]
func (h *InventoryHandler) ListItems(c *gin.Context) {
	filter := service.InventoryFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
	}
	if raw := c.Query("min_stock_level"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			filter.MinStockLevel = &v
		}
	}

	items, err := h.inventoryService.ListItems(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, items))
}

// GetItem returns one inventory item
// @Summary      Get inventory item
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Item ID"
// @Success      200  {object}  response.Response{data=service.InventoryItemResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/v1/inventory/{id} [get]
func (h *InventoryHandler) GetItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	item, err := h.inventoryService.GetItem(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, item))
}

// CreateItem creates a part with its stock level
// @Summary      Create inventory item
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.CreateInventoryRequest  true  "Item payload"
// @Success      201      {object}  response.Response{data=service.InventoryItemResponse}
// @Failure      409      {object}  response.Response
// @Router       /api/v1/inventory [post]
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var req service.CreateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, response.Error(http.StatusUnprocessableEntity, "Invalid request payload: "+err.Error()))
		return
	}

	item, err := h.inventoryService.CreateItem(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, item))
}

// UpdateItem applies a partial update to a part and its stock level
// @Summary      Update inventory item
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int                             true  "Item ID"
// @Param        payload  body      service.UpdateInventoryRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=service.InventoryItemResponse}
// @Failure      404      {object}  response.Response
// @Router       /api/v1/inventory/{id} [put]
func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req service.UpdateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, response.Error(http.StatusUnprocessableEntity, "Invalid request payload: "+err.Error()))
		return
	}

	item, err := h.inventoryService.UpdateItem(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, item))
}

// DeleteItem removes a part and its stock level
// @Summary      Delete inventory item
// @Tags         inventory
// @Security     BearerAuth
// @Param        id   path  int  true  "Item ID"
// @Success      204  "No Content"
// @Failure      404  {object}  response.Response
// @Router       /api/v1/inventory/{id} [delete]
func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.inventoryService.DeleteItem(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
