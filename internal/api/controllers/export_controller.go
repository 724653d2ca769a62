package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cruisy/internal/models/request_models"
	"cruisy/internal/services"
	"cruisy/pkg/utils"
)

type ExportController struct {
	exportService services.ExportServiceInterface
}

func NewExportController(exportService services.ExportServiceInterface) *ExportController {
	return &ExportController{
		exportService: exportService,
	}
}

// GetChecklist returns the serialized checklist plus a ready-made mailto
// link for the front end's "Email Checklist" button.
func (e *ExportController) GetChecklist(c *gin.Context) {
	utils.RespondSuccess(c, e.exportService.Checklist(), "Checklist built successfully")
}

// GetChecklistText serves the raw body for printing.
func (e *ExportController) GetChecklistText(c *gin.Context) {
	checklist := e.exportService.Checklist()
	c.String(http.StatusOK, checklist.Body)
}

func (e *ExportController) EmailChecklist(c *gin.Context) {
	var req request_models.EmailChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.To == "" {
		utils.RespondError(c, http.StatusBadRequest, "Recipient address is required")
		return
	}

	if err := e.exportService.EmailChecklist(req.To); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Checklist emailed successfully")
}
