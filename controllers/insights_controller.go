package controllers

import (
	"net/http"
	"strconv"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type InsightsController struct {
	Foods    *services.FoodService
	Meals    *services.MealService
	Progress *services.ProgressService
}

func NewInsightsController(foods *services.FoodService, meals *services.MealService, progress *services.ProgressService) *InsightsController {
	return &InsightsController{Foods: foods, Meals: meals, Progress: progress}
}

// GET /insights/recommendations?meal_type=&limit=
// Without meal_type, foods are ranked against today's open macro gaps; with
// it, against the slot's typical macro profile.
func (h *InsightsController) GetRecommendations(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	progress, err := h.Progress.DayProgress(c.Request.Context(), user, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	catalog, err := h.Foods.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if mealType := c.Query("meal_type"); mealType != "" {
		recs := services.RecommendForMealType(mealType, progress.Gaps, catalog)
		c.JSON(http.StatusOK, gin.H{"meal_type": mealType, "recommendations": recs})
		return
	}

	limit := 0
	if v := c.Query("limit"); v != "" {
		limit, _ = strconv.Atoi(v)
	}

	profile := user.ProfileAt(time.Now())
	recs := services.Recommend(progress.Gaps, catalog, &profile, limit)
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}

// GET /insights/timing?days=N; defaults to the last 7 days
func (h *InsightsController) GetTimingProfile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	days := 7
	if v := c.Query("days"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer"})
			return
		}
		days = parsed
	}

	to := time.Now()
	from := to.AddDate(0, 0, -days)

	byDay, err := h.Meals.EntriesByDay(user.ID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, services.AnalyzeTiming(byDay))
}
