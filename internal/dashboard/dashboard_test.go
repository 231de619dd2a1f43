package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stridehq/stride/internal/db"
	"github.com/stridehq/stride/internal/models"
	"github.com/stridehq/stride/internal/store"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testNow = time.Date(2026, 6, 10, 9, 0, 0, 0, time.Local)

func day(offset int) time.Time {
	return time.Date(2026, 6, 10, 0, 0, 0, 0, time.Local).AddDate(0, 0, offset)
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

func newTestRouter(t *testing.T, gdb *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	registerRoutes(router, gdb, func() time.Time { return testNow })
	return router
}

func seedGoal(t *testing.T, gdb *gorm.DB, title string) *models.Goal {
	t.Helper()
	goal, err := store.CreateGoal(gdb, store.CreateOpts{Title: title, Category: "learning"})
	if err != nil {
		t.Fatalf("create goal: %v", err)
	}
	s := &models.Schedule{
		ID:                  models.MustID("sched"),
		GoalID:              goal.ID,
		GeneratedAt:         day(-7),
		EstimatedCompletion: day(14),
		WeeklyHours:         5,
		Phases: []models.Phase{
			{
				ID:        models.MustID("phase"),
				Title:     "Foundation",
				StartDate: day(-7),
				EndDate:   day(14),
			},
		},
	}
	phaseID := s.Phases[0].ID
	for _, offset := range []int{-2, 0, 3} {
		s.Phases[0].Tasks = append(s.Phases[0].Tasks, models.ScheduledTask{
			ID:              models.MustID("task"),
			PhaseID:         phaseID,
			Title:           "Session",
			ScheduledDate:   day(offset),
			DurationMinutes: 30,
		})
	}
	if err := store.ReplaceSchedule(gdb, goal.ID, s); err != nil {
		t.Fatalf("seed schedule: %v", err)
	}
	return goal
}

func get(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, into interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), into); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func TestGoalListEndpoint(t *testing.T) {
	gdb := openTestDB(t)
	router := newTestRouter(t, gdb)
	active := seedGoal(t, gdb, "Learn Spanish")
	paused := seedGoal(t, gdb, "Paused goal")
	gdb.Model(&models.Goal{}).Where("id = ?", paused.ID).Update("active", false)

	w := get(t, router, "/api/goals")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		Goals []GoalRow `json:"goals"`
	}
	decode(t, w, &body)
	if len(body.Goals) != 1 || body.Goals[0].ID != active.ID {
		t.Errorf("goals = %+v, want the active one only", body.Goals)
	}

	w = get(t, router, "/api/goals?all=1")
	decode(t, w, &body)
	if len(body.Goals) != 2 {
		t.Errorf("got %d goals with ?all, want 2", len(body.Goals))
	}
}

func TestGoalDetailEndpoint(t *testing.T) {
	gdb := openTestDB(t)
	router := newTestRouter(t, gdb)
	goal := seedGoal(t, gdb, "Learn Spanish")

	w := get(t, router, "/api/goals/"+goal.ID)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var detail GoalDetail
	decode(t, w, &detail)
	if !detail.HasSchedule {
		t.Error("detail missing schedule")
	}
	if detail.TotalTasks != 3 {
		t.Errorf("total tasks = %d, want 3", detail.TotalTasks)
	}
	// Tasks at day -2 and midnight today are overdue at 9am.
	if detail.OverdueTasks != 2 {
		t.Errorf("overdue = %d, want 2", detail.OverdueTasks)
	}
	if detail.OnTrack {
		t.Error("on track with overdue tasks")
	}
	if detail.CurrentPhase != "Foundation" {
		t.Errorf("current phase = %q", detail.CurrentPhase)
	}
	if len(detail.Phases) != 1 || detail.Phases[0].TaskCount != 3 {
		t.Errorf("phases = %+v", detail.Phases)
	}
}

func TestGoalDetailEndpoint_NotFound(t *testing.T) {
	gdb := openTestDB(t)
	router := newTestRouter(t, gdb)

	w := get(t, router, "/api/goals/goal-nope1")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestAnalysisEndpoint(t *testing.T) {
	gdb := openTestDB(t)
	router := newTestRouter(t, gdb)
	goal := seedGoal(t, gdb, "Learn Spanish")

	w := get(t, router, "/api/goals/"+goal.ID+"/analysis")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var analysis struct {
		Score           float64  `json:"score"`
		OnTrack         bool     `json:"on_track"`
		Recommendations []string `json:"recommendations"`
	}
	decode(t, w, &analysis)
	if analysis.Score < 0 || analysis.Score > 100 {
		t.Errorf("score = %v", analysis.Score)
	}
	if len(analysis.Recommendations) == 0 {
		t.Error("expected recommendations")
	}
}

func TestAnalysisEndpoint_NoSchedule(t *testing.T) {
	gdb := openTestDB(t)
	router := newTestRouter(t, gdb)
	goal, err := store.CreateGoal(gdb, store.CreateOpts{Title: "No plan"})
	if err != nil {
		t.Fatalf("create goal: %v", err)
	}

	w := get(t, router, "/api/goals/"+goal.ID+"/analysis")
	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", w.Code)
	}
}

func TestTodayEndpoint(t *testing.T) {
	gdb := openTestDB(t)
	router := newTestRouter(t, gdb)
	goal := seedGoal(t, gdb, "Learn Spanish")

	w := get(t, router, "/api/today")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		Tasks []TaskView `json:"tasks"`
	}
	decode(t, w, &body)
	if len(body.Tasks) != 1 {
		t.Fatalf("got %d tasks, want 1", len(body.Tasks))
	}
	if body.Tasks[0].GoalID != goal.ID || body.Tasks[0].GoalTitle != "Learn Spanish" {
		t.Errorf("task = %+v", body.Tasks[0])
	}
}

func TestOverdueEndpoint(t *testing.T) {
	gdb := openTestDB(t)
	router := newTestRouter(t, gdb)
	seedGoal(t, gdb, "Learn Spanish")

	w := get(t, router, "/api/overdue")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		Tasks []TaskView `json:"tasks"`
	}
	decode(t, w, &body)
	if len(body.Tasks) != 2 {
		t.Errorf("got %d overdue tasks, want 2", len(body.Tasks))
	}
}

func TestUpcomingEndpoint(t *testing.T) {
	gdb := openTestDB(t)
	router := newTestRouter(t, gdb)
	seedGoal(t, gdb, "Learn Spanish")

	w := get(t, router, "/api/upcoming")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		Tasks []TaskView `json:"tasks"`
	}
	decode(t, w, &body)
	if len(body.Tasks) != 1 {
		t.Fatalf("got %d upcoming tasks, want 1", len(body.Tasks))
	}

	w = get(t, router, "/api/upcoming?limit=0")
	decode(t, w, &body)
	if len(body.Tasks) != 1 {
		t.Errorf("limit=0 means uncapped, got %d tasks", len(body.Tasks))
	}
}

func TestEmptyCollectionsAreArrays(t *testing.T) {
	gdb := openTestDB(t)
	router := newTestRouter(t, gdb)

	for _, path := range []string{"/api/today", "/api/upcoming", "/api/overdue"} {
		w := get(t, router, path)
		if w.Code != http.StatusOK {
			t.Errorf("%s: status = %d", path, w.Code)
			continue
		}
		var body map[string]json.RawMessage
		decode(t, w, &body)
		if string(body["tasks"]) != "[]" {
			t.Errorf("%s: tasks = %s, want []", path, body["tasks"])
		}
	}
}
