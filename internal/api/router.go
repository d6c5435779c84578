package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/workoutkit/tcx-backend-go/internal/config"
	"github.com/workoutkit/tcx-backend-go/internal/database"
	"github.com/workoutkit/tcx-backend-go/internal/handler"
	"github.com/workoutkit/tcx-backend-go/internal/middleware"
	"github.com/workoutkit/tcx-backend-go/internal/repository"
	"github.com/workoutkit/tcx-backend-go/internal/service"
)

// SetupRouter wires repositories, services and handlers into the HTTP API.
func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Workout Editor API is running",
		})
	})

	db := database.GetDB()
	workoutRepo := repository.NewWorkoutRepository(db)
	operationRepo := repository.NewOperationRepository(db)
	workoutService := service.NewWorkoutService(workoutRepo, operationRepo)
	workoutHandler := handler.NewWorkoutHandler(workoutService, cfg.MaxUploadBytes)

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(120, time.Minute))
	if cfg.JWTSecret != "" {
		api.Use(middleware.Auth(cfg.JWTSecret))
	}
	{
		workouts := api.Group("/workouts")
		{
			workouts.POST("", workoutHandler.UploadWorkout)
			workouts.GET("", workoutHandler.ListWorkouts)
			workouts.POST("/merge", workoutHandler.MergeWorkouts)
			workouts.GET("/:id", workoutHandler.GetWorkout)
			workouts.GET("/:id/download", workoutHandler.DownloadWorkout)
			workouts.POST("/:id/scale", workoutHandler.ScaleWorkout)
			workouts.DELETE("/:id", workoutHandler.DeleteWorkout)
		}

		api.GET("/operations", workoutHandler.ListOperations)
	}

	return r
}
