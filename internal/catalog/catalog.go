// Package catalog maps goal categories and title keywords to plan templates.
// The catalog is static data: it is never mutated at runtime and is safe to
// read concurrently.
package catalog

import "strings"

// TaskBlueprint describes one activity that the task placer can schedule.
// Placed tasks copy title, description, duration, and resources verbatim;
// only the date is computed.
type TaskBlueprint struct {
	Title           string
	Description     string
	DurationMinutes int
	Resources       []string
}

// PhaseBlueprint describes one stage of a template, with a pool of task
// blueprints consumed cyclically during placement.
type PhaseBlueprint struct {
	Title       string
	Description string
	TaskPool    []TaskBlueprint
}

// GoalTemplate is an ordered list of phase blueprints for one goal shape.
type GoalTemplate struct {
	Name   string
	Phases []PhaseBlueprint
}

// keywordRule matches lower-cased goal titles against substrings.
type keywordRule struct {
	keywords []string
	template *GoalTemplate
}

// keywordRules are evaluated in priority order, first match wins. They
// specialize the most common goal shapes ahead of the category fallback.
var keywordRules = []keywordRule{
	{[]string{"weight", "lose", "fit"}, &weightLossTemplate},
	{[]string{"learn", "study", "course"}, &learningTemplate},
	{[]string{"job", "career", "interview"}, &jobSearchTemplate},
	{[]string{"save", "money", "budget"}, &savingsTemplate},
	{[]string{"read", "book"}, &readingTemplate},
	{[]string{"meditat", "mindful", "stress"}, &mindfulnessTemplate},
}

// categoryTemplates is the fallback table covering every goal category.
var categoryTemplates = map[string]*GoalTemplate{
	"career":        &careerTemplate,
	"health":        &healthTemplate,
	"education":     &learningTemplate,
	"finance":       &savingsTemplate,
	"personal":      &personalTemplate,
	"fitness":       &fitnessTemplate,
	"creativity":    &creativityTemplate,
	"relationships": &relationshipsTemplate,
}

// SelectTemplate picks the template for a goal. Title keywords take priority
// over the category; an unknown category falls back to the personal template.
func SelectTemplate(category, title string) GoalTemplate {
	lower := strings.ToLower(title)
	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return *rule.template
			}
		}
	}
	if tmpl, ok := categoryTemplates[category]; ok {
		return *tmpl
	}
	return personalTemplate
}
