package controllers

import (
	"net/http"
	"strconv"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	Svc *services.MealService
}

func NewMealController(svc *services.MealService) *MealController {
	return &MealController{Svc: svc}
}

type mealInput struct {
	Type  string                     `json:"type" binding:"required"`
	AteAt time.Time                  `json:"ate_at" binding:"required"`
	Items []services.MealItemRequest `json:"items" binding:"required"`
}

func (h *MealController) LogMeal(c *gin.Context) {
	var body mealInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	meal, err := h.Svc.AddMeal(user.ID, body.Type, body.AteAt, body.Items)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	services.EmitDayProgress(user, body.AteAt)
	c.JSON(http.StatusCreated, meal)
}

func (h *MealController) UpdateMeal(c *gin.Context) {
	mealID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}
	var body mealInput
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	meal, err := h.Svc.UpdateMeal(user.ID, uint(mealID), body.Type, body.AteAt, body.Items)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	services.EmitDayProgress(user, body.AteAt)
	c.JSON(http.StatusOK, meal)
}

func (h *MealController) DeleteMeal(c *gin.Context) {
	mealID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	user, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.Svc.DeleteMeal(user.ID, uint(mealID)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	services.EmitDayProgress(user, time.Now())
	c.Status(http.StatusNoContent)
}

// GET /meals?date=YYYY-MM-DD; omit date to list everything
func (h *MealController) ListMeals(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		meals, err := h.Svc.ListMeals(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, meals)
		return
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}
	meals, err := h.Svc.ListMealsByDateRange(user.ID, date, date.AddDate(0, 0, 1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meals)
}
