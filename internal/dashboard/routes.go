package dashboard

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stridehq/stride/internal/progress"
	"github.com/stridehq/stride/internal/store"
	"gorm.io/gorm"
)

// registerRoutes sets up all dashboard routes on the Gin router.
func registerRoutes(router *gin.Engine, db *gorm.DB, now func() time.Time) {
	api := router.Group("/api")
	api.GET("/goals", handleGoalList(db))
	api.GET("/goals/:id", handleGoalDetail(db, now))
	api.GET("/goals/:id/analysis", handleAnalysis(db, now))
	api.GET("/today", handleToday(db, now))
	api.GET("/upcoming", handleUpcoming(db, now))
	api.GET("/overdue", handleOverdue(db, now))

	// SSE stream of task completions.
	api.GET("/events", handleSSE(db))
}

func handleGoalList(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		activeOnly := c.Query("all") == ""
		rows, err := GoalList(db, c.Query("category"), activeOnly)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"goals": rows})
	}
}

func handleGoalDetail(db *gorm.DB, now func() time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		detail, err := GetGoalDetail(db, c.Param("id"), now())
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, store.ErrGoalNotFound) {
				status = http.StatusNotFound
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, detail)
	}
}

func handleAnalysis(db *gorm.DB, now func() time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		goal, err := store.GetGoal(db, c.Param("id"))
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, store.ErrGoalNotFound) {
				status = http.StatusNotFound
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		if goal.Schedule == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "goal has no schedule"})
			return
		}
		c.JSON(http.StatusOK, progress.Analyze(goal, goal.Schedule, now()))
	}
}

func handleToday(db *gorm.DB, now func() time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		tasks, err := TodayTasks(db, now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"tasks": tasks})
	}
}

func handleUpcoming(db *gorm.DB, now func() time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
		tasks, err := UpcomingTasks(db, now(), limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"tasks": tasks})
	}
}

func handleOverdue(db *gorm.DB, now func() time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		tasks, err := OverdueTasks(db, now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"tasks": tasks})
	}
}
