package handler

import (
	"net/http"

	"cmms-backend/internal/middleware"
	"cmms-backend/internal/service"
	"cmms-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type PMHandler struct {
	pmService service.PMService
	guard     *middleware.AuthGuard
}

func NewPMHandler(pmService service.PMService, guard *middleware.AuthGuard) *PMHandler {
	return &PMHandler{pmService: pmService, guard: guard}
}

// RegisterRoutes binds preventive maintenance endpoints under the given group.
func (h *PMHandler) RegisterRoutes(router *gin.RouterGroup) {
	tasks := router.Group("/pm/tasks", h.guard.RequireAuth())
	{
		tasks.GET("", h.ListTasks)
		tasks.GET("/:id", h.GetTask)
		tasks.POST("", h.CreateTask)
		tasks.PUT("/:id", h.UpdateTask)
		tasks.DELETE("/:id", h.DeleteTask)
	}
}

// ListTasks returns all preventive maintenance tasks
// @Summary      List PM tasks
// @Tags         pm
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]service.PMTaskResponse}
// @Router       /api/v1/pm/tasks [get]
func (h *PMHandler) ListTasks(c *gin.Context) {
	tasks, err := h.pmService.ListTasks(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, tasks))
}

// GetTask returns one preventive maintenance task
// @Summary      Get PM task
// @Tags         pm
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Task ID"
// @Success      200  {object}  response.Response{data=service.PMTaskResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/v1/pm/tasks/{id} [get]
func (h *PMHandler) GetTask(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	task, err := h.pmService.GetTask(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, task))
}

// CreateTask creates a preventive maintenance task
// @Summary      Create PM task
// @Tags         pm
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.CreatePMTaskRequest  true  "Task payload"
// @Success      201      {object}  response.Response{data=service.PMTaskResponse}
// @Router       /api/v1/pm/tasks [post]
func (h *PMHandler) CreateTask(c *gin.Context) {
	var req service.CreatePMTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, response.Error(http.StatusUnprocessableEntity, "Invalid request payload: "+err.Error()))
		return
	}

	task, err := h.pmService.CreateTask(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, task))
}

// UpdateTask applies a partial update
// @Summary      Update PM task
// @Tags         pm
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int                          true  "Task ID"
// @Param        payload  body      service.UpdatePMTaskRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=service.PMTaskResponse}
// @Failure      404      {object}  response.Response
// @Router       /api/v1/pm/tasks/{id} [put]
func (h *PMHandler) UpdateTask(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req service.UpdatePMTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, response.Error(http.StatusUnprocessableEntity, "Invalid request payload: "+err.Error()))
		return
	}

	task, err := h.pmService.UpdateTask(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, task))
}

// DeleteTask removes a preventive maintenance task
// @Summary      Delete PM task
// @Tags         pm
// @Security     BearerAuth
// @Param        id   path  int  true  "Task ID"
// @Success      204  "No Content"
// @Failure      404  {object}  response.Response
// @Router       /api/v1/pm/tasks/{id} [delete]
func (h *PMHandler) DeleteTask(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.pmService.DeleteTask(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
