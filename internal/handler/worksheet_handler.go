package handler

import (
	"net/http"

	"cmms-backend/internal/middleware"
	"cmms-backend/internal/service"
	"cmms-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type WorksheetHandler struct {
	worksheetService service.WorksheetService
	guard            *middleware.AuthGuard
}

func NewWorksheetHandler(worksheetService service.WorksheetService, guard *middleware.AuthGuard) *WorksheetHandler {
	return &WorksheetHandler{worksheetService: worksheetService, guard: guard}
}

// RegisterRoutes binds worksheet endpoints under the given group.
func (h *WorksheetHandler) RegisterRoutes(router *gin.RouterGroup) {
	worksheets := router.Group("/worksheets", h.guard.RequireAuth())
	{
		worksheets.GET("", h.ListWorksheets)
		worksheets.GET("/:id", h.GetWorksheet)
		worksheets.POST("", h.CreateWorksheet)
		worksheets.PUT("/:id", h.UpdateWorksheet)
		worksheets.DELETE("/:id", h.DeleteWorksheet)
		worksheets.POST("/:id/parts", h.AddPart)
	}
}

// ListWorksheets returns maintenance worksheets, optionally filtered by status
// @Summary      List worksheets
// @Tags         worksheets
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by status"
// @Success      200     {object}  response.Response{data=[]service.WorksheetResponse}
// @Router       /api/v1/worksheets [get]
func (h *WorksheetHandler) ListWorksheets(c *gin.Context) {
	worksheets, err := h.worksheetService.ListWorksheets(c.Request.Context(), c.Query("status"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, worksheets))
}

// GetWorksheet returns one worksheet with its parts usage
// @Summary      Get worksheet
// @Tags         worksheets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Worksheet ID"
// @Success      200  {object}  response.Response{data=service.WorksheetResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/v1/worksheets/{id} [get]
func (h *WorksheetHandler) GetWorksheet(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	worksheet, err := h.worksheetService.GetWorksheet(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, worksheet))
}

// CreateWorksheet opens a worksheet against an existing machine. The caller
// becomes the assignee unless the payload names one.
// @Summary      Create worksheet
// @Tags         worksheets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.CreateWorksheetRequest  true  "Worksheet payload"
// @Success      201      {object}  response.Response{data=service.WorksheetResponse}
// @Failure      404      {object}  response.Response
// @Router       /api/v1/worksheets [post]
func (h *WorksheetHandler) CreateWorksheet(c *gin.Context) {
	var req service.CreateWorksheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, response.Error(http.StatusUnprocessableEntity, "Invalid request payload: "+err.Error()))
		return
	}

	caller, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Could not validate credentials"))
		return
	}

	worksheet, err := h.worksheetService.CreateWorksheet(c.Request.Context(), caller.ID, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, worksheet))
}

// UpdateWorksheet applies a partial update
// @Summary      Update worksheet
// @Tags         worksheets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int                             true  "Worksheet ID"
// @Param        payload  body      service.UpdateWorksheetRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=service.WorksheetResponse}
// @Failure      404      {object}  response.Response
// @Router       /api/v1/worksheets/{id} [put]
func (h *WorksheetHandler) UpdateWorksheet(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req service.UpdateWorksheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, response.Error(http.StatusUnprocessableEntity, "Invalid request payload: "+err.Error()))
		return
	}

	worksheet, err := h.worksheetService.UpdateWorksheet(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, worksheet))
}

// DeleteWorksheet removes a worksheet and its part usage rows
// @Summary      Delete worksheet
// @Tags         worksheets
// @Security     BearerAuth
// @Param        id   path  int  true  "Worksheet ID"
// @Success      204  "No Content"
// @Failure      404  {object}  response.Response
// @Router       /api/v1/worksheets/{id} [delete]
func (h *WorksheetHandler) DeleteWorksheet(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.worksheetService.DeleteWorksheet(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddPart records a part consumption against a worksheet
// @Summary      Add part usage to worksheet
// @Tags         worksheets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int                              true  "Worksheet ID"
// @Param        payload  body      service.AddWorksheetPartRequest  true  "Part usage payload"
// @Success      201      {object}  response.Response{data=service.WorksheetPartResponse}
// @Failure      404      {object}  response.Response
// @Router       /api/v1/worksheets/{id}/parts [post]
func (h *WorksheetHandler) AddPart(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req service.AddWorksheetPartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, response.Error(http.StatusUnprocessableEntity, "Invalid request payload: "+err.Error()))
		return
	}

	part, err := h.worksheetService.AddPart(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, part))
}
