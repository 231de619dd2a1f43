package dashboard

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stridehq/stride/internal/models"
	"gorm.io/gorm"
)

// completionEvent holds data for a task-completed SSE event.
type completionEvent struct {
	TaskID      string    `json:"task_id"`
	Title       string    `json:"title"`
	CompletedAt time.Time `json:"completed_at"`
	Count       int64     `json:"count"`
}

// handleSSE creates an SSE handler that polls for newly completed tasks.
func handleSSE(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/event-stream")
		c.Header("Cache-Control", "no-cache")
		c.Header("Connection", "keep-alive")
		c.Header("X-Accel-Buffering", "no")

		// Send connected event.
		writeSSE(c.Writer, "connected", map[string]string{"type": "connected"})
		c.Writer.Flush()

		// If no DB, just send connected and return. Tests use nil DB.
		if db == nil {
			return
		}

		// Only alert on completions after the stream started.
		lastSeen := time.Now()

		ctx := c.Request.Context()
		ticker := time.NewTicker(3 * time.Second)
		heartbeat := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		defer heartbeat.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-heartbeat.C:
				writeSSE(c.Writer, "heartbeat", map[string]string{
					"timestamp": time.Now().UTC().Format(time.RFC3339),
				})
				c.Writer.Flush()
			case <-ticker.C:
				var newDone []models.ScheduledTask
				db.Where("completed = ? AND completed_at > ?", true, lastSeen).
					Order("completed_at ASC").
					Find(&newDone)

				if len(newDone) == 0 {
					continue
				}

				latest := newDone[len(newDone)-1]
				if latest.CompletedAt != nil {
					lastSeen = *latest.CompletedAt
				}

				var count int64
				db.Model(&models.ScheduledTask{}).
					Where("completed = ?", true).
					Count(&count)

				evt := completionEvent{
					TaskID: latest.ID,
					Title:  latest.Title,
					Count:  count,
				}
				if latest.CompletedAt != nil {
					evt.CompletedAt = *latest.CompletedAt
				}
				writeSSE(c.Writer, "task_completed", evt)
				c.Writer.Flush()
			}
		}
	}
}

// writeSSE writes a single SSE event to the writer.
func writeSSE(w io.Writer, event string, data any) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, string(jsonData))
}
