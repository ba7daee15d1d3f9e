package handler

import (
	"net/http"

	"cmms-backend/internal/middleware"
	"cmms-backend/internal/service"
	"cmms-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService service.ReportService
	guard         *middleware.AuthGuard
}

func NewReportHandler(reportService service.ReportService, guard *middleware.AuthGuard) *ReportHandler {
	return &ReportHandler{reportService: reportService, guard: guard}
}

// RegisterRoutes binds reporting endpoints under the given group.
func (h *ReportHandler) RegisterRoutes(router *gin.RouterGroup) {
	reports := router.Group("/reports", h.guard.RequireAuth())
	{
		reports.GET("/summary", h.GetSummary)
	}
}

// GetSummary returns dashboard counters computed live from the database
// @Summary      Reports summary
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=service.ReportsSummaryResponse}
// @Router       /api/v1/reports/summary [get]
func (h *ReportHandler) GetSummary(c *gin.Context) {
	summary, err := h.reportService.GetSummary(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, summary))
}
