package controllers

import (
	"net/http"
	"strconv"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type WaterController struct {
	Svc *services.WaterService
}

func NewWaterController(svc *services.WaterService) *WaterController {
	return &WaterController{Svc: svc}
}

func (h *WaterController) LogWater(c *gin.Context) {
	var body struct {
		AmountMl float64    `json:"amount_ml" binding:"required,gt=0"`
		DrankAt  *time.Time `json:"drank_at"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	drankAt := time.Now()
	if body.DrankAt != nil {
		drankAt = *body.DrankAt
	}

	entry, err := h.Svc.Log(user.ID, body.AmountMl, drankAt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	services.EmitDayProgress(user, drankAt)
	c.JSON(http.StatusCreated, entry)
}

func (h *WaterController) DeleteWater(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.Svc.Delete(user.ID, uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /water?date=YYYY-MM-DD; defaults to today
func (h *WaterController) GetWater(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	date := time.Now()
	if v := c.Query("date"); v != "" {
		parsed, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	entries, err := h.Svc.ListByDate(user.ID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	total := 0.0
	for _, e := range entries {
		total += e.AmountMl
	}
	c.JSON(http.StatusOK, gin.H{
		"date":     date.Format("2006-01-02"),
		"total_ml": total,
		"entries":  entries,
	})
}
