package handler

import (
	"net/http"

	"cmms-backend/internal/middleware"
	"cmms-backend/internal/service"
	"cmms-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type MachineHandler struct {
	machineService service.MachineService
	guard          *middleware.AuthGuard
}

// NewMachineHandler sets up the routing dependencies for machine endpoints.
func NewMachineHandler(machineService service.MachineService, guard *middleware.AuthGuard) *MachineHandler {
	return &MachineHandler{machineService: machineService, guard: guard}
}

// RegisterRoutes binds machine and production line endpoints under the given
// group.
func (h *MachineHandler) RegisterRoutes(router *gin.RouterGroup) {
	machines := router.Group("/machines", h.guard.RequireAuth())
	{
		machines.GET("", h.ListMachines)
		machines.GET("/:id", h.GetMachine)
		machines.POST("", h.CreateMachine)
		machines.PUT("/:id", h.UpdateMachine)
		machines.DELETE("/:id", h.DeleteMachine)
	}

	lines := router.Group("/production-lines", h.guard.RequireAuth())
	{
		lines.GET("", h.ListProductionLines)
		lines.POST("", h.CreateProductionLine)
	}
}

// ListMachines returns all machines
// @Summary      List machines
// @Tags         machines
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status"
// @Success      200     {object}  response.Response{data=[]service.MachineResponse}
// @Router       /api/v1/machines [get]
func (h *MachineHandler) ListMachines(c *gin.Context) {
	machines, err := h.machineService.ListMachines(c.Request.Context(), c.Query("status"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, machines))
}

// GetMachine returns one machine by id
// @Summary      Get machine
// @Tags         machines
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Machine ID"
// @Success      200  {object}  response.Response{data=service.MachineResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/v1/machines/{id} [get]
func (h *MachineHandler) GetMachine(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	machine, err := h.machineService.GetMachine(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, machine))
}

// CreateMachine creates a machine
// @Summary      Create machine
// @Tags         machines
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.CreateMachineRequest  true  "Machine payload"
// @Success      201      {object}  response.Response{data=service.MachineResponse}
// @Router       /api/v1/machines [post]
func (h *MachineHandler) CreateMachine(c *gin.Context) {
	var req service.CreateMachineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, response.Error(http.StatusUnprocessableEntity, "Invalid request payload: "+err.Error()))
		return
	}

	machine, err := h.machineService.CreateMachine(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, machine))
}

// UpdateMachine applies a partial update
// @Summary      Update machine
// @Tags         machines
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int                           true  "Machine ID"
// @Param        payload  body      service.UpdateMachineRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=service.MachineResponse}
// @Failure      404      {object}  response.Response
// @Router       /api/v1/machines/{id} [put]
func (h *MachineHandler) UpdateMachine(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req service.UpdateMachineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, response.Error(http.StatusUnprocessableEntity, "Invalid request payload: "+err.Error()))
		return
	}

	machine, err := h.machineService.UpdateMachine(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, machine))
}

// DeleteMachine removes a machine
// @Summary      Delete machine
// @Tags         machines
// @Security     BearerAuth
// @Param        id   path  int  true  "Machine ID"
// @Success      204  "No Content"
// @Failure      404  {object}  response.Response
// @Router       /api/v1/machines/{id} [delete]
func (h *MachineHandler) DeleteMachine(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.machineService.DeleteMachine(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListProductionLines returns all production lines
// @Summary      List production lines
// @Tags         machines
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]service.ProductionLineResponse}
// @Router       /api/v1/production-lines [get]
func (h *MachineHandler) ListProductionLines(c *gin.Context) {
	lines, err := h.machineService.ListProductionLines(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, lines))
}

// CreateProductionLine creates a production line
// @Summary      Create production line
// @Tags         machines
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.CreateProductionLineRequest  true  "Production line payload"
// @Success      201      {object}  response.Response{data=service.ProductionLineResponse}
// @Failure      409      {object}  response.Response
// @Router       /api/v1/production-lines [post]
func (h *MachineHandler) CreateProductionLine(c *gin.Context) {
	var req service.CreateProductionLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, response.Error(http.StatusUnprocessableEntity, "Invalid request payload: "+err.Error()))
		return
	}

	line, err := h.machineService.CreateProductionLine(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, line))
}
