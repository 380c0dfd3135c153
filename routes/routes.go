package routes

import (
	"backend/config"
	"backend/controllers"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(hub *services.RealtimeHub) *gin.Engine {
	r := gin.Default()

	foodSvc := services.NewFoodService(config.DB)
	mealSvc := services.NewMealService(config.DB)
	waterSvc := services.NewWaterService(config.DB)
	targetSvc := services.NewTargetService(config.DB)
	progressSvc := services.NewProgressService(config.DB, mealSvc, waterSvc, targetSvc)
	exportSvc := services.NewExportService(config.DB)

	services.InitProgressFeed(hub, progressSvc)

	foodCtl := controllers.NewFoodController(foodSvc)
	mealCtl := controllers.NewMealController(mealSvc)
	waterCtl := controllers.NewWaterController(waterSvc)
	goalCtl := controllers.NewGoalController(targetSvc, progressSvc)
	insightsCtl := controllers.NewInsightsController(foodSvc, mealSvc, progressSvc)
	exportCtl := controllers.NewExportController(exportSvc)
	realtimeCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Everything else requires a valid token
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/user/profile", controllers.GetProfile)
		api.PUT("/user/profile", controllers.UpdateProfile)

		api.GET("/foods", foodCtl.SearchFoods)
		api.POST("/foods", foodCtl.CreateFood)
		api.PUT("/foods/:id", foodCtl.UpdateFood)
		api.DELETE("/foods/:id", foodCtl.DeleteFood)

		api.GET("/meals", mealCtl.ListMeals)
		api.POST("/meals", mealCtl.LogMeal)
		api.PUT("/meals/:id", mealCtl.UpdateMeal)
		api.DELETE("/meals/:id", mealCtl.DeleteMeal)

		api.GET("/water", waterCtl.GetWater)
		api.POST("/water", waterCtl.LogWater)
		api.DELETE("/water/:id", waterCtl.DeleteWater)

		api.GET("/goals", goalCtl.GetTargets)
		api.PUT("/goals", goalCtl.UpdateTargets)
		api.GET("/progress", goalCtl.GetDailyProgress)
		api.GET("/progress/summary", goalCtl.GetSummary)

		api.GET("/insights/recommendations", insightsCtl.GetRecommendations)
		api.GET("/insights/timing", insightsCtl.GetTimingProfile)

		api.GET("/export", exportCtl.ExportData)
		api.POST("/import", exportCtl.ImportData)

		api.GET("/ws/progress", realtimeCtl.ProgressWS)
	}

	return r
}
