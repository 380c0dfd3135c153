package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type ExportController struct {
	Svc *services.ExportService
}

func NewExportController(svc *services.ExportService) *ExportController {
	return &ExportController{Svc: svc}
}

// GET /export?archive=true; archive=true also stores the snapshot in S3
func (h *ExportController) ExportData(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	bundle, err := h.Svc.Export(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if c.Query("archive") == "true" {
		url, err := h.Svc.ExportToS3(user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"archive_url": url, "export": bundle})
		return
	}

	c.JSON(http.StatusOK, bundle)
}

func (h *ExportController) ImportData(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var bundle services.ExportBundle
	if err := c.ShouldBindJSON(&bundle); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Svc.Import(user, &bundle)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
