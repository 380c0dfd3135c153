package controllers

import (
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	Targets  *services.TargetService
	Progress *services.ProgressService
}

func NewGoalController(targets *services.TargetService, progress *services.ProgressService) *GoalController {
	return &GoalController{Targets: targets, Progress: progress}
}

// GET /goals; resolved daily targets plus where they came from
func (h *GoalController) GetTargets(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	targets, source, err := h.Targets.Resolve(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"targets": targets, "source": source})
}

func (h *GoalController) UpdateTargets(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req struct {
		Calories float64  `json:"calories" binding:"required,gt=0"`
		Protein  *float64 `json:"protein"`
		Carbs    *float64 `json:"carbs"`
		Fat      *float64 `json:"fat"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// missing macros default to 0; a complete custom target is the
	// client's responsibility
	targets := services.MacroTargets{Calories: req.Calories}
	if req.Protein != nil {
		targets.Protein = *req.Protein
	}
	if req.Carbs != nil {
		targets.Carbs = *req.Carbs
	}
	if req.Fat != nil {
		targets.Fat = *req.Fat
	}

	if err := h.Targets.Upsert(user.ID, targets); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /progress?date=YYYY-MM-DD; defaults to today
func (h *GoalController) GetDailyProgress(c *gin.Context) {
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

	progress, err := h.Progress.DayProgress(c.Request.Context(), user, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, progress)
}

// GET /progress/summary?from=&to=&includeMissingDays=
func (h *GoalController) GetSummary(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	now := time.Now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	last := first.AddDate(0, 1, -1)

	fromStr := c.DefaultQuery("from", first.Format("2006-01-02"))
	toStr := c.DefaultQuery("to", last.Format("2006-01-02"))
	includeMissing := c.DefaultQuery("includeMissingDays", "false") == "true"

	from, err := time.ParseInLocation("2006-01-02", fromStr, now.Location())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date"})
		return
	}
	to, err := time.ParseInLocation("2006-01-02", toStr, now.Location())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date"})
		return
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "`to` must be on/after `from`"})
		return
	}

	out, err := h.Progress.Summary(c.Request.Context(), user, from, to, includeMissing)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}
