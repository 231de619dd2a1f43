package reminder

import (
	"fmt"
	"strings"
)

// Color constants for event severity.
const (
	ColorSuccess = "#36a64f"
	ColorInfo    = "#2196f3"
	ColorWarning = "#ff9800"
	ColorError   = "#e53935"
)

// severityColor maps a severity string to a sidebar color.
func severityColor(severity string) string {
	switch severity {
	case "success":
		return ColorSuccess
	case "info":
		return ColorInfo
	case "warning":
		return ColorWarning
	case "error":
		return ColorError
	default:
		return ColorInfo
	}
}

// FormatDigest renders a digest as one outbound message with a section
// per non-empty bucket. An empty digest gets a short all-clear note.
func FormatDigest(d *Digest) OutboundMessage {
	if d.Empty() {
		return OutboundMessage{
			Text: "All caught up — nothing overdue, nothing due today.",
			Events: []FormattedEvent{{
				Title:    "All caught up",
				Body:     "No pending tasks in the next week.",
				Severity: "success",
				Color:    ColorSuccess,
			}},
		}
	}

	var events []FormattedEvent
	if len(d.Overdue) > 0 {
		events = append(events, formatBucket(
			fmt.Sprintf("%s overdue", countTasks(len(d.Overdue))), d.Overdue, "warning"))
	}
	if len(d.DueToday) > 0 {
		events = append(events, formatBucket(
			fmt.Sprintf("%s due today", countTasks(len(d.DueToday))), d.DueToday, "info"))
	}
	if len(d.Upcoming) > 0 {
		events = append(events, formatBucket(
			fmt.Sprintf("%s coming up this week", countTasks(len(d.Upcoming))), d.Upcoming, "info"))
	}

	return OutboundMessage{
		Text:   summaryLine(d),
		Events: events,
	}
}

// formatBucket renders one digest bucket as a FormattedEvent.
func formatBucket(title string, tasks []DigestTask, severity string) FormattedEvent {
	var lines []string
	for _, dt := range tasks {
		lines = append(lines, fmt.Sprintf("%s — %s (%s)",
			dt.Task.ScheduledDate.Format("Mon Jan 2"), dt.Task.Title, dt.GoalTitle))
	}

	fields := []Field{
		{Name: "Tasks", Value: fmt.Sprintf("%d", len(tasks)), Short: true},
	}
	if goals := distinctGoals(tasks); goals != "" {
		fields = append(fields, Field{Name: "Goals", Value: goals, Short: true})
	}

	return FormattedEvent{
		Title:    title,
		Body:     strings.Join(lines, "\n"),
		Severity: severity,
		Color:    severityColor(severity),
		Fields:   fields,
	}
}

// summaryLine is the plain-text fallback for platforms without attachments.
func summaryLine(d *Digest) string {
	var parts []string
	if len(d.Overdue) > 0 {
		parts = append(parts, fmt.Sprintf("%d overdue", len(d.Overdue)))
	}
	if len(d.DueToday) > 0 {
		parts = append(parts, fmt.Sprintf("%d due today", len(d.DueToday)))
	}
	if len(d.Upcoming) > 0 {
		parts = append(parts, fmt.Sprintf("%d upcoming", len(d.Upcoming)))
	}
	return "Task reminder: " + strings.Join(parts, ", ")
}

func countTasks(n int) string {
	if n == 1 {
		return "1 task"
	}
	return fmt.Sprintf("%d tasks", n)
}

// distinctGoals joins the distinct goal titles in a bucket, in order of
// first appearance.
func distinctGoals(tasks []DigestTask) string {
	seen := make(map[string]bool)
	var titles []string
	for _, dt := range tasks {
		if !seen[dt.GoalID] {
			seen[dt.GoalID] = true
			titles = append(titles, dt.GoalTitle)
		}
	}
	return strings.Join(titles, ", ")
}
