package remote

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/stridehq/stride/internal/models"
	"github.com/stridehq/stride/internal/planning"
)

// planDocument is the JSON shape the model is asked to produce.
type planDocument struct {
	EstimatedCompletion string          `json:"estimated_completion"` // YYYY-MM-DD
	Phases              []phaseDocument `json:"phases"`
}

type phaseDocument struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	StartDate   string         `json:"start_date"`
	EndDate     string         `json:"end_date"`
	Tasks       []taskDocument `json:"tasks"`
}

type taskDocument struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	ScheduledDate   string   `json:"scheduled_date"`
	DurationMinutes int      `json:"duration_minutes"`
	Resources       []string `json:"resources,omitempty"`
}

const planSystemPrompt = `You are a goal-planning assistant. Respond with a single JSON object and nothing else. The object has "estimated_completion" (YYYY-MM-DD) and "phases": 2-4 date-bounded phases, each with "title", "description", "start_date", "end_date", and "tasks". Every task has "title", "description", "scheduled_date" (a weekday, never Saturday or Sunday, never a committed day), "duration_minutes", and optional "resources". Dates are YYYY-MM-DD.`

// buildPlanPrompt renders the user's goal, time budget, and commitments
// into the user message for plan generation.
func buildPlanPrompt(goal *models.Goal, profile *models.UserProfile, commitments []models.Commitment, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Goal: %s\nCategory: %s\n", goal.Title, goal.Category)
	if goal.Description != "" {
		fmt.Fprintf(&b, "Details: %s\n", goal.Description)
	}
	fmt.Fprintf(&b, "Today: %s\n", now.Format("2006-01-02"))
	if goal.TargetDate != nil {
		fmt.Fprintf(&b, "Target date: %s\n", goal.TargetDate.Format("2006-01-02"))
	}
	fmt.Fprintf(&b, "Available hours per week: %.1f\n", profile.WeeklyHours)
	if len(profile.Interests) > 0 {
		fmt.Fprintf(&b, "Interests: %s\n", strings.Join(profile.Interests, ", "))
	}
	if len(commitments) > 0 {
		b.WriteString("Committed days (do not schedule tasks on these):\n")
		for _, c := range commitments {
			fmt.Fprintf(&b, "- %s\n", c.StartDate.Format("2006-01-02"))
		}
	}
	return b.String()
}

// parsePlanResponse decodes the model's JSON into a Schedule. Markdown
// code fences around the JSON are tolerated.
func parsePlanResponse(content string, goal *models.Goal, profile *models.UserProfile, now time.Time) (*models.Schedule, error) {
	var doc planDocument
	if err := json.Unmarshal([]byte(stripFences(content)), &doc); err != nil {
		return nil, &planning.RemoteError{Kind: planning.RemoteInvalidResponse, Err: err}
	}
	if len(doc.Phases) == 0 {
		return nil, &planning.RemoteError{Kind: planning.RemoteInvalidResponse, Err: fmt.Errorf("plan has no phases")}
	}

	scheduleID, err := models.NewID("sched")
	if err != nil {
		return nil, err
	}
	s := &models.Schedule{
		ID:          scheduleID,
		GoalID:      goal.ID,
		GeneratedAt: now,
		WeeklyHours: profile.WeeklyHours,
	}

	for i, pd := range doc.Phases {
		start, err := parseDay(pd.StartDate)
		if err != nil {
			return nil, &planning.RemoteError{Kind: planning.RemoteInvalidResponse, Err: fmt.Errorf("phase %d start: %w", i, err)}
		}
		end, err := parseDay(pd.EndDate)
		if err != nil {
			return nil, &planning.RemoteError{Kind: planning.RemoteInvalidResponse, Err: fmt.Errorf("phase %d end: %w", i, err)}
		}
		phaseID, err := models.NewID("phase")
		if err != nil {
			return nil, err
		}
		phase := models.Phase{
			ID:          phaseID,
			ScheduleID:  scheduleID,
			Title:       pd.Title,
			Description: pd.Description,
			StartDate:   start,
			EndDate:     end,
			OrderIndex:  i,
		}
		for _, td := range pd.Tasks {
			day, err := parseDay(td.ScheduledDate)
			if err != nil {
				return nil, &planning.RemoteError{Kind: planning.RemoteInvalidResponse, Err: fmt.Errorf("task %q date: %w", td.Title, err)}
			}
			taskID, err := models.NewID("task")
			if err != nil {
				return nil, err
			}
			duration := td.DurationMinutes
			if duration <= 0 {
				duration = 30
			}
			phase.Tasks = append(phase.Tasks, models.ScheduledTask{
				ID:              taskID,
				PhaseID:         phaseID,
				Title:           td.Title,
				Description:     td.Description,
				ScheduledDate:   day,
				DurationMinutes: duration,
				Resources:       models.StringList(td.Resources),
			})
		}
		s.Phases = append(s.Phases, phase)
	}

	s.EstimatedCompletion = s.Phases[len(s.Phases)-1].EndDate
	if done, err := parseDay(doc.EstimatedCompletion); err == nil {
		s.EstimatedCompletion = done
	}
	return s, nil
}

// stripFences removes a surrounding markdown code fence, if present.
func stripFences(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

func parseDay(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.Local)
}
