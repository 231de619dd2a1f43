package store

import (
	"errors"
	"testing"
	"time"

	"github.com/stridehq/stride/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := gdb.AutoMigrate(
		&models.Goal{}, &models.Milestone{}, &models.Schedule{},
		&models.Phase{}, &models.ScheduledTask{}, &models.Adjustment{},
		&models.UserProfile{}, &models.Commitment{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

func seedSchedule(t *testing.T, gdb *gorm.DB, goalID string) *models.Schedule {
	t.Helper()
	base := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	s := &models.Schedule{
		ID:                  models.MustID("sched"),
		GoalID:              goalID,
		GeneratedAt:         base,
		EstimatedCompletion: base.AddDate(0, 0, 14),
		Phases: []models.Phase{
			{
				ID:        models.MustID("phase"),
				Title:     "Foundation",
				StartDate: base,
				EndDate:   base.AddDate(0, 0, 14),
				Tasks: []models.ScheduledTask{
					{ID: models.MustID("task"), Title: "First", ScheduledDate: base.AddDate(0, 0, 1)},
					{ID: models.MustID("task"), Title: "Second", ScheduledDate: base.AddDate(0, 0, 3)},
				},
			},
		},
	}
	for ti := range s.Phases[0].Tasks {
		s.Phases[0].Tasks[ti].PhaseID = s.Phases[0].ID
	}
	if err := ReplaceSchedule(gdb, goalID, s); err != nil {
		t.Fatalf("seed schedule: %v", err)
	}
	return s
}

func TestCreateGoal(t *testing.T) {
	gdb := openTestDB(t)

	goal, err := CreateGoal(gdb, CreateOpts{Title: "Learn Spanish", Category: "learning"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if goal.ID == "" || goal.ID[:5] != "goal-" {
		t.Errorf("id = %q", goal.ID)
	}
	if !goal.Active {
		t.Error("new goal should be active")
	}

	loaded, err := GetGoal(gdb, goal.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded.Title != "Learn Spanish" || loaded.Category != "learning" {
		t.Errorf("loaded = %+v", loaded)
	}
}

func TestCreateGoal_Validation(t *testing.T) {
	gdb := openTestDB(t)

	if _, err := CreateGoal(gdb, CreateOpts{}); err == nil {
		t.Error("expected error for empty title")
	}
	if _, err := CreateGoal(gdb, CreateOpts{Title: "x", Category: "astrology"}); err == nil {
		t.Error("expected error for unknown category")
	}

	// Empty category defaults to personal.
	goal, err := CreateGoal(gdb, CreateOpts{Title: "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if goal.Category != models.CategoryPersonal {
		t.Errorf("category = %q, want personal", goal.Category)
	}
}

func TestGetGoal_NotFound(t *testing.T) {
	gdb := openTestDB(t)
	if _, err := GetGoal(gdb, "goal-nope1"); !errors.Is(err, ErrGoalNotFound) {
		t.Errorf("err = %v, want ErrGoalNotFound", err)
	}
}

func TestListGoals_Filters(t *testing.T) {
	gdb := openTestDB(t)

	a, _ := CreateGoal(gdb, CreateOpts{Title: "A", Category: "fitness"})
	b, _ := CreateGoal(gdb, CreateOpts{Title: "B", Category: "learning"})
	gdb.Model(&models.Goal{}).Where("id = ?", b.ID).Update("active", false)

	active, err := ListGoals(gdb, ListFilters{ActiveOnly: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(active) != 1 || active[0].ID != a.ID {
		t.Errorf("active = %v", active)
	}

	all, err := ListGoals(gdb, ListFilters{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("got %d goals, want 2", len(all))
	}

	fitness, err := ListGoals(gdb, ListFilters{Category: "fitness"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fitness) != 1 || fitness[0].ID != a.ID {
		t.Errorf("fitness = %v", fitness)
	}
}

func TestUpdateGoalProgress(t *testing.T) {
	gdb := openTestDB(t)
	goal, _ := CreateGoal(gdb, CreateOpts{Title: "x"})

	if err := UpdateGoalProgress(gdb, goal.ID, 37.5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	loaded, _ := GetGoal(gdb, goal.ID)
	if loaded.Progress != 37.5 {
		t.Errorf("progress = %v, want 37.5", loaded.Progress)
	}
}

func TestReplaceSchedule_CarriesAdjustmentsForward(t *testing.T) {
	gdb := openTestDB(t)
	goal, _ := CreateGoal(gdb, CreateOpts{Title: "x"})

	first := seedSchedule(t, gdb, goal.ID)
	if err := AppendAdjustments(gdb, first.ID, []models.Adjustment{{
		ID:          models.MustID("adj"),
		Reason:      models.ReasonMissedTasks,
		Description: "first round",
		CreatedAt:   time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC),
	}}); err != nil {
		t.Fatalf("append: %v", err)
	}

	second := seedSchedule(t, gdb, goal.ID)

	loaded, err := LoadSchedule(gdb, goal.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded.ID != second.ID {
		t.Errorf("schedule id = %q, want the replacement %q", loaded.ID, second.ID)
	}
	if len(loaded.Adjustments) != 1 {
		t.Fatalf("got %d adjustments, want the carried-over one", len(loaded.Adjustments))
	}
	if loaded.Adjustments[0].Description != "first round" {
		t.Errorf("adjustment = %+v", loaded.Adjustments[0])
	}
	if loaded.Adjustments[0].ScheduleID != second.ID {
		t.Error("carried adjustment not re-pointed at the new schedule")
	}

	// Old phases and tasks are gone.
	var phaseCount int64
	gdb.Model(&models.Phase{}).Where("schedule_id = ?", first.ID).Count(&phaseCount)
	if phaseCount != 0 {
		t.Errorf("old schedule still has %d phases", phaseCount)
	}
}

func TestLoadSchedule_NilWhenAbsent(t *testing.T) {
	gdb := openTestDB(t)
	goal, _ := CreateGoal(gdb, CreateOpts{Title: "x"})

	s, err := LoadSchedule(gdb, goal.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != nil {
		t.Errorf("schedule = %+v, want nil", s)
	}
}

func TestSaveTaskState(t *testing.T) {
	gdb := openTestDB(t)
	goal, _ := CreateGoal(gdb, CreateOpts{Title: "x"})
	s := seedSchedule(t, gdb, goal.ID)

	task := &s.Phases[0].Tasks[0]
	at := time.Date(2026, 6, 11, 9, 0, 0, 0, time.UTC)
	task.Completed = true
	task.CompletedAt = &at
	s.Phases[0].Completed = false

	if err := SaveTaskState(gdb, task, &s.Phases[0]); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, _ := LoadSchedule(gdb, goal.ID)
	var found *models.ScheduledTask
	for ti := range loaded.Phases[0].Tasks {
		if loaded.Phases[0].Tasks[ti].ID == task.ID {
			found = &loaded.Phases[0].Tasks[ti]
		}
	}
	if found == nil || !found.Completed || found.CompletedAt == nil {
		t.Errorf("persisted task = %+v", found)
	}
}

func TestSaveTaskDates(t *testing.T) {
	gdb := openTestDB(t)
	goal, _ := CreateGoal(gdb, CreateOpts{Title: "x"})
	s := seedSchedule(t, gdb, goal.ID)

	moved := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	s.Phases[0].Tasks[0].ScheduledDate = moved
	if err := SaveTaskDates(gdb, s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, _ := LoadSchedule(gdb, goal.ID)
	var dates []time.Time
	for _, task := range loaded.Phases[0].Tasks {
		dates = append(dates, task.ScheduledDate)
	}
	var found bool
	for _, d := range dates {
		if d.Equal(moved) {
			found = true
		}
	}
	if !found {
		t.Errorf("moved date not persisted, dates = %v", dates)
	}
}

func TestDeleteGoal_Cascades(t *testing.T) {
	gdb := openTestDB(t)
	goal, _ := CreateGoal(gdb, CreateOpts{Title: "x"})
	s := seedSchedule(t, gdb, goal.ID)
	AppendAdjustments(gdb, s.ID, []models.Adjustment{{ID: models.MustID("adj"), Reason: models.ReasonMissedTasks}})
	ReplaceMilestones(gdb, goal.ID, []models.Milestone{{ID: models.MustID("mile"), Title: "M1", TargetDate: time.Now()}})

	if err := DeleteGoal(gdb, goal.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, probe := range []struct {
		name  string
		model interface{}
	}{
		{"goals", &models.Goal{}},
		{"schedules", &models.Schedule{}},
		{"phases", &models.Phase{}},
		{"tasks", &models.ScheduledTask{}},
		{"adjustments", &models.Adjustment{}},
		{"milestones", &models.Milestone{}},
	} {
		var n int64
		gdb.Model(probe.model).Count(&n)
		if n != 0 {
			t.Errorf("%s: %d rows left after delete", probe.name, n)
		}
	}
}

func TestDeleteGoal_NotFound(t *testing.T) {
	gdb := openTestDB(t)
	if err := DeleteGoal(gdb, "goal-nope1"); !errors.Is(err, ErrGoalNotFound) {
		t.Errorf("err = %v, want ErrGoalNotFound", err)
	}
}

func TestReplaceMilestones_KeepsUserMilestones(t *testing.T) {
	gdb := openTestDB(t)
	goal, _ := CreateGoal(gdb, CreateOpts{Title: "x"})

	user := models.Milestone{
		ID: models.MustID("mile"), GoalID: goal.ID,
		Title: "My own milestone", TargetDate: time.Now(),
	}
	if err := gdb.Create(&user).Error; err != nil {
		t.Fatalf("create user milestone: %v", err)
	}

	gen := []models.Milestone{
		{ID: models.MustID("mile"), Title: "Complete Foundation", TargetDate: time.Now()},
	}
	if err := ReplaceMilestones(gdb, goal.ID, gen); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Replacing again only swaps generated rows.
	gen2 := []models.Milestone{
		{ID: models.MustID("mile"), Title: "Complete Momentum", TargetDate: time.Now()},
	}
	if err := ReplaceMilestones(gdb, goal.ID, gen2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, _ := GetGoal(gdb, goal.ID)
	if len(loaded.Milestones) != 2 {
		t.Fatalf("got %d milestones, want user + latest generated", len(loaded.Milestones))
	}
	titles := map[string]bool{}
	for _, m := range loaded.Milestones {
		titles[m.Title] = true
	}
	if !titles["My own milestone"] || !titles["Complete Momentum"] {
		t.Errorf("milestones = %v", titles)
	}
	if titles["Complete Foundation"] {
		t.Error("stale generated milestone survived the swap")
	}
}

func TestGetProfile_NilWhenUnseeded(t *testing.T) {
	gdb := openTestDB(t)
	p, err := GetProfile(gdb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != nil {
		t.Errorf("profile = %+v, want nil", p)
	}
}

func TestCommitments(t *testing.T) {
	gdb := openTestDB(t)

	d1 := time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC)
	if _, err := AddCommitment(gdb, "Dentist", d1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := AddCommitment(gdb, "Trip", d2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all, err := ListCommitments(gdb, time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 || all[0].Title != "Dentist" {
		t.Errorf("all = %v", all)
	}

	window, err := ListCommitments(gdb, d1, d2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(window) != 1 || window[0].Title != "Dentist" {
		t.Errorf("window = %v", window)
	}
}
