package schedule

import (
	"testing"
	"time"

	"github.com/stridehq/stride/internal/models"
)

var testNow = time.Date(2026, 6, 10, 12, 0, 0, 0, time.Local)

func day(offset int) time.Time {
	return time.Date(2026, 6, 10, 0, 0, 0, 0, time.Local).AddDate(0, 0, offset)
}

// twoPhaseSchedule builds a schedule spanning day -3 to day +11 with two
// tasks per phase.
func twoPhaseSchedule() *models.Schedule {
	return &models.Schedule{
		ID:                  "sched-test1",
		GoalID:              "goal-test1",
		GeneratedAt:         day(-3),
		EstimatedCompletion: day(11),
		Phases: []models.Phase{
			{
				ID:        "phase-aaaaa",
				Title:     "Foundation",
				StartDate: day(-3),
				EndDate:   day(4),
				Tasks: []models.ScheduledTask{
					{ID: "task-00001", PhaseID: "phase-aaaaa", Title: "First", ScheduledDate: day(-2)},
					{ID: "task-00002", PhaseID: "phase-aaaaa", Title: "Second", ScheduledDate: day(0)},
				},
			},
			{
				ID:         "phase-bbbbb",
				Title:      "Momentum",
				StartDate:  day(5),
				EndDate:    day(11),
				OrderIndex: 1,
				Tasks: []models.ScheduledTask{
					{ID: "task-00003", PhaseID: "phase-bbbbb", Title: "Third", ScheduledDate: day(6)},
					{ID: "task-00004", PhaseID: "phase-bbbbb", Title: "Fourth", ScheduledDate: day(8)},
				},
			},
		},
	}
}

func TestMarkTaskComplete(t *testing.T) {
	s := twoPhaseSchedule()

	if !MarkTaskComplete(s, "task-00001", testNow) {
		t.Fatal("expected first completion to report a change")
	}
	task := s.Phases[0].Tasks[0]
	if !task.Completed || task.CompletedAt == nil {
		t.Errorf("task not marked: completed=%v completedAt=%v", task.Completed, task.CompletedAt)
	}
	if s.Phases[0].Completed {
		t.Error("phase complete with one task still open")
	}

	// Idempotent: completing again changes nothing.
	if MarkTaskComplete(s, "task-00001", testNow.Add(time.Hour)) {
		t.Error("second completion reported a change")
	}
	if !s.Phases[0].Tasks[0].CompletedAt.Equal(testNow) {
		t.Error("repeat completion overwrote the timestamp")
	}
}

func TestMarkTaskComplete_RestoresPhaseInvariant(t *testing.T) {
	s := twoPhaseSchedule()
	MarkTaskComplete(s, "task-00001", testNow)
	MarkTaskComplete(s, "task-00002", testNow)
	if !s.Phases[0].Completed {
		t.Error("phase should be complete once all its tasks are")
	}
	if s.Phases[1].Completed {
		t.Error("untouched phase marked complete")
	}

	if !MarkTaskIncomplete(s, "task-00002") {
		t.Fatal("expected undo to report a change")
	}
	if s.Phases[0].Completed {
		t.Error("phase still complete after a task was reopened")
	}
	if s.Phases[0].Tasks[1].CompletedAt != nil {
		t.Error("undo left the completion timestamp")
	}
}

func TestMarkTaskIncomplete_NoOp(t *testing.T) {
	s := twoPhaseSchedule()
	if MarkTaskIncomplete(s, "task-00001") {
		t.Error("undoing an incomplete task reported a change")
	}
	if MarkTaskComplete(s, "task-nope1", testNow) {
		t.Error("unknown task reported a change")
	}
	if MarkTaskIncomplete(s, "task-nope1") {
		t.Error("unknown task reported a change")
	}
}

func TestFindTask(t *testing.T) {
	s := twoPhaseSchedule()
	pi, ti := FindTask(s, "task-00004")
	if pi != 1 || ti != 1 {
		t.Errorf("FindTask = (%d, %d), want (1, 1)", pi, ti)
	}
	pi, ti = FindTask(s, "task-nope1")
	if pi != -1 || ti != -1 {
		t.Errorf("FindTask for unknown id = (%d, %d), want (-1, -1)", pi, ti)
	}
}

func TestClone_Isolated(t *testing.T) {
	s := twoPhaseSchedule()
	MarkTaskComplete(s, "task-00001", testNow)

	c := Clone(s)
	MarkTaskComplete(c, "task-00002", testNow)
	c.Phases[0].Tasks[0].CompletedAt = nil
	c.Adjustments = append(c.Adjustments, models.Adjustment{ID: "adj-xxxxx"})

	if s.Phases[0].Tasks[1].Completed {
		t.Error("mutating the clone changed the original task")
	}
	if s.Phases[0].Tasks[0].CompletedAt == nil {
		t.Error("mutating the clone changed the original timestamp")
	}
	if len(s.Adjustments) != 0 {
		t.Error("mutating the clone changed the original adjustment log")
	}
}

func TestCounts(t *testing.T) {
	s := twoPhaseSchedule()
	if got := TotalTasks(s); got != 4 {
		t.Errorf("TotalTasks = %d, want 4", got)
	}
	if got := CompletedTasks(s); got != 0 {
		t.Errorf("CompletedTasks = %d, want 0", got)
	}
	MarkTaskComplete(s, "task-00003", testNow)
	if got := CompletedTasks(s); got != 1 {
		t.Errorf("CompletedTasks = %d, want 1", got)
	}
	if got := OverallProgress(s); got != 0.25 {
		t.Errorf("OverallProgress = %v, want 0.25", got)
	}
}

func TestOverallProgress_EmptySchedule(t *testing.T) {
	s := &models.Schedule{}
	if got := OverallProgress(s); got != 0 {
		t.Errorf("OverallProgress = %v, want 0", got)
	}
}

func TestCurrentPhase(t *testing.T) {
	s := twoPhaseSchedule()
	if p := CurrentPhase(s); p == nil || p.ID != "phase-aaaaa" {
		t.Errorf("CurrentPhase = %v, want first phase", p)
	}

	MarkTaskComplete(s, "task-00001", testNow)
	MarkTaskComplete(s, "task-00002", testNow)
	if p := CurrentPhase(s); p == nil || p.ID != "phase-bbbbb" {
		t.Errorf("CurrentPhase = %v, want second phase", p)
	}

	MarkTaskComplete(s, "task-00003", testNow)
	MarkTaskComplete(s, "task-00004", testNow)
	if p := CurrentPhase(s); p != nil {
		t.Errorf("CurrentPhase = %v, want nil when everything is done", p)
	}
}

func TestOverdueTasks_OrderedByDate(t *testing.T) {
	s := twoPhaseSchedule()
	// Make the later task overdue too, out of phase order.
	s.Phases[1].Tasks[0].ScheduledDate = day(-5)

	overdue := OverdueTasks(s, testNow)
	if len(overdue) != 3 {
		t.Fatalf("got %d overdue tasks, want 3", len(overdue))
	}
	if overdue[0].ID != "task-00003" || overdue[1].ID != "task-00001" {
		t.Errorf("overdue order = %s, %s; want task-00003 first", overdue[0].ID, overdue[1].ID)
	}

	MarkTaskComplete(s, "task-00003", testNow)
	if got := len(OverdueTasks(s, testNow)); got != 2 {
		t.Errorf("completed task still counted overdue: %d", got)
	}
}

func TestTasksForToday(t *testing.T) {
	s := twoPhaseSchedule()
	today := TasksForToday(s, testNow)
	if len(today) != 1 || today[0].ID != "task-00002" {
		t.Errorf("TasksForToday = %v, want task-00002 only", today)
	}
}

func TestUpcomingTasks(t *testing.T) {
	s := twoPhaseSchedule()
	up := UpcomingTasks(s, testNow, 0)
	if len(up) != 2 {
		t.Fatalf("got %d upcoming, want 2", len(up))
	}
	if up[0].ID != "task-00003" || up[1].ID != "task-00004" {
		t.Errorf("upcoming order = %s, %s", up[0].ID, up[1].ID)
	}

	if got := UpcomingTasks(s, testNow, 1); len(got) != 1 || got[0].ID != "task-00003" {
		t.Errorf("limit 1 = %v", got)
	}

	MarkTaskComplete(s, "task-00003", testNow)
	if got := UpcomingTasks(s, testNow, 0); len(got) != 1 {
		t.Errorf("completed task still listed as upcoming: %v", got)
	}
}

func TestIsOnTrack(t *testing.T) {
	s := twoPhaseSchedule()
	if IsOnTrack(s, testNow) {
		t.Error("schedule with overdue tasks reported on track")
	}
	// Today's task counts as overdue once its midnight has passed.
	MarkTaskComplete(s, "task-00001", testNow)
	MarkTaskComplete(s, "task-00002", testNow)
	if !IsOnTrack(s, testNow) {
		t.Error("schedule with nothing overdue reported off track")
	}
}

func TestDaysRemaining(t *testing.T) {
	s := twoPhaseSchedule()
	if got := DaysRemaining(s, testNow); got != 11 {
		t.Errorf("DaysRemaining = %d, want 11", got)
	}
	if got := DaysRemaining(s, testNow.AddDate(0, 0, 30)); got != 0 {
		t.Errorf("DaysRemaining past completion = %d, want 0", got)
	}
}

func TestExpectedProgress(t *testing.T) {
	s := twoPhaseSchedule()

	if got := ExpectedProgress(s, s.GeneratedAt); got != 0 {
		t.Errorf("at generation time = %v, want 0", got)
	}
	if got := ExpectedProgress(s, s.GeneratedAt.AddDate(0, 0, -5)); got != 0 {
		t.Errorf("before generation = %v, want 0 (clamped)", got)
	}
	if got := ExpectedProgress(s, s.EstimatedCompletion.AddDate(0, 0, 5)); got != 1 {
		t.Errorf("past completion = %v, want 1 (clamped)", got)
	}

	mid := s.GeneratedAt.Add(s.EstimatedCompletion.Sub(s.GeneratedAt) / 2)
	got := ExpectedProgress(s, mid)
	if got < 0.49 || got > 0.51 {
		t.Errorf("midway = %v, want ~0.5", got)
	}

	degenerate := &models.Schedule{GeneratedAt: testNow, EstimatedCompletion: testNow}
	if got := ExpectedProgress(degenerate, testNow); got != 1 {
		t.Errorf("zero-duration schedule = %v, want 1", got)
	}
}

func TestAdjust_FansOutMissedTasks(t *testing.T) {
	s := twoPhaseSchedule()
	missed := OverdueTasks(s, testNow)
	if len(missed) != 2 {
		t.Fatalf("setup: got %d overdue, want 2", len(missed))
	}

	next, applied, err := Adjust(s, &models.Goal{ID: s.GoalID}, nil, missed, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Missed tasks land on consecutive days starting tomorrow.
	if !next.Phases[0].Tasks[0].ScheduledDate.Equal(day(1)) {
		t.Errorf("first missed task moved to %v, want %v", next.Phases[0].Tasks[0].ScheduledDate, day(1))
	}
	if !next.Phases[0].Tasks[1].ScheduledDate.Equal(day(2)) {
		t.Errorf("second missed task moved to %v, want %v", next.Phases[0].Tasks[1].ScheduledDate, day(2))
	}

	if len(applied) != 1 {
		t.Fatalf("got %d adjustments, want 1", len(applied))
	}
	if applied[0].Reason != models.ReasonMissedTasks {
		t.Errorf("reason = %q", applied[0].Reason)
	}
	if len(next.Adjustments) != 1 {
		t.Errorf("adjustment not appended to the new schedule's log")
	}

	// The input schedule is untouched.
	if !s.Phases[0].Tasks[0].ScheduledDate.Equal(day(-2)) {
		t.Error("input schedule was mutated")
	}
	if len(s.Adjustments) != 0 {
		t.Error("input adjustment log was mutated")
	}
}

func TestAdjust_SkipsUnknownMissedTasks(t *testing.T) {
	s := twoPhaseSchedule()
	missed := []models.ScheduledTask{
		{ID: "task-gone1", ScheduledDate: day(-4)},
		{ID: "task-00001", ScheduledDate: day(-2)},
	}

	next, applied, err := Adjust(s, &models.Goal{ID: s.GoalID}, nil, missed, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The unknown task consumed day +1; the known one lands on day +2.
	if !next.Phases[0].Tasks[0].ScheduledDate.Equal(day(2)) {
		t.Errorf("known task moved to %v, want %v", next.Phases[0].Tasks[0].ScheduledDate, day(2))
	}
	if len(applied) != 1 {
		t.Fatalf("got %d adjustments, want 1", len(applied))
	}
}

func TestAdjust_AheadOfSchedule(t *testing.T) {
	s := twoPhaseSchedule()
	for _, id := range []string{"task-00001", "task-00002", "task-00003"} {
		MarkTaskComplete(s, id, testNow)
	}

	// Early in the horizon with 75% done: well past the ahead margin.
	early := s.GeneratedAt.AddDate(0, 0, 1)
	next, applied, err := Adjust(s, &models.Goal{ID: s.GoalID}, nil, nil, early)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(applied) != 1 {
		t.Fatalf("got %d adjustments, want 1", len(applied))
	}
	if applied[0].Reason != models.ReasonAheadOfSchedule {
		t.Errorf("reason = %q", applied[0].Reason)
	}
	if len(next.Adjustments) != 1 {
		t.Error("adjustment not recorded on the new schedule")
	}
}

func TestAdjust_NothingToDo(t *testing.T) {
	s := twoPhaseSchedule()
	// No missed tasks, progress not ahead: no adjustments.
	next, applied, err := Adjust(s, &models.Goal{ID: s.GoalID}, nil, nil, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(applied) != 0 {
		t.Errorf("got %d adjustments, want 0", len(applied))
	}
	if len(next.Adjustments) != 0 {
		t.Errorf("log grew without an applied adjustment")
	}
}
