// Package activity holds the static catalog of loggable activities.
package activity

import (
	"slices"

	"github.com/osse101/StudyQuest_Go/internal/domain"
)

// Activity ids referenced outside the catalog
const (
	IDStudy    = "study"
	IDExamPrep = "exam-prep"
)

// catalog is grouped by target stat. Order is the display order.
var catalog = []domain.ActivityDefinition{
	// Knowledge
	{ID: IDStudy, Name: "Study Session", Stat: domain.StatKnowledge, BaseXP: 20, StatGain: 1, UsesMinutes: true},
	{ID: IDExamPrep, Name: "Exam Prep", Stat: domain.StatKnowledge, BaseXP: 30, StatGain: 1, UsesMinutes: true},
	{ID: "reading", Name: "Reading", Stat: domain.StatKnowledge, BaseXP: 15, StatGain: 1, UsesMinutes: true},
	{ID: "homework", Name: "Homework", Stat: domain.StatKnowledge, BaseXP: 25, StatGain: 2},
	{ID: "lecture", Name: "Attend Lecture", Stat: domain.StatKnowledge, BaseXP: 20, StatGain: 1},
	{ID: "research", Name: "Research Project", Stat: domain.StatKnowledge, BaseXP: 35, StatGain: 2},

	// Strength
	{ID: "weightlifting", Name: "Weightlifting", Stat: domain.StatStrength, BaseXP: 25, StatGain: 2},
	{ID: "pushups", Name: "Push-ups", Stat: domain.StatStrength, BaseXP: 10, StatGain: 1},
	{ID: "rock-climbing", Name: "Rock Climbing", Stat: domain.StatStrength, BaseXP: 30, StatGain: 2, UsesMinutes: true},
	{ID: "yoga", Name: "Yoga", Stat: domain.StatStrength, BaseXP: 15, StatGain: 1, UsesMinutes: true},
	{ID: "sports-practice", Name: "Sports Practice", Stat: domain.StatStrength, BaseXP: 25, StatGain: 2, UsesMinutes: true},

	// Stamina
	{ID: "running", Name: "Running", Stat: domain.StatStamina, BaseXP: 20, StatGain: 2, UsesMinutes: true},
	{ID: "cycling", Name: "Cycling", Stat: domain.StatStamina, BaseXP: 20, StatGain: 2, UsesMinutes: true},
	{ID: "swimming", Name: "Swimming", Stat: domain.StatStamina, BaseXP: 25, StatGain: 2, UsesMinutes: true},
	{ID: "walking", Name: "Walking", Stat: domain.StatStamina, BaseXP: 10, StatGain: 1, UsesMinutes: true},
	{ID: "dance", Name: "Dance", Stat: domain.StatStamina, BaseXP: 20, StatGain: 1, UsesMinutes: true},

	// Social
	{ID: "club-meeting", Name: "Club Meeting", Stat: domain.StatSocial, BaseXP: 20, StatGain: 1},
	{ID: "volunteering", Name: "Volunteering", Stat: domain.StatSocial, BaseXP: 35, StatGain: 2, UsesMinutes: true},
	{ID: "group-study", Name: "Group Study", Stat: domain.StatSocial, BaseXP: 20, StatGain: 1, UsesMinutes: true},
	{ID: "call-family", Name: "Call Family", Stat: domain.StatSocial, BaseXP: 10, StatGain: 1},
	{ID: "presentation", Name: "Give a Presentation", Stat: domain.StatSocial, BaseXP: 40, StatGain: 3},
	{ID: "networking-event", Name: "Networking Event", Stat: domain.StatSocial, BaseXP: 30, StatGain: 2},

	// Focus
	{ID: "meditation", Name: "Meditation", Stat: domain.StatFocus, BaseXP: 15, StatGain: 1, UsesMinutes: true},
	{ID: "deep-work", Name: "Deep Work Block", Stat: domain.StatFocus, BaseXP: 25, StatGain: 1, UsesMinutes: true},
	{ID: "journaling", Name: "Journaling", Stat: domain.StatFocus, BaseXP: 10, StatGain: 1},
	{ID: "no-phone-block", Name: "No-Phone Block", Stat: domain.StatFocus, BaseXP: 20, StatGain: 1, UsesMinutes: true},
	{ID: "planning", Name: "Weekly Planning", Stat: domain.StatFocus, BaseXP: 15, StatGain: 1},
}

var byID = func() map[string]domain.ActivityDefinition {
	m := make(map[string]domain.ActivityDefinition, len(catalog))
	for _, def := range catalog {
		m[def.ID] = def
	}
	return m
}()

// Lookup returns the activity definition for id
func Lookup(id string) (domain.ActivityDefinition, bool) {
	def, ok := byID[id]
	return def, ok
}

// All returns a copy of the catalog in display order
func All() []domain.ActivityDefinition {
	return slices.Clone(catalog)
}

// ByStat returns the activities that train stat
func ByStat(stat domain.Stat) []domain.ActivityDefinition {
	var out []domain.ActivityDefinition
	for _, def := range catalog {
		if def.Stat == stat {
			out = append(out, def)
		}
	}
	return out
}

// IsStudyClass reports whether the activity gets the knowledge/focus flavor bonus in boss fights
func IsStudyClass(id string) bool {
	return id == IDStudy || id == IDExamPrep
}
