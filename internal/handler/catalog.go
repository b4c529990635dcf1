package handler

import (
	"net/http"

	"github.com/osse101/StudyQuest_Go/internal/activity"
	"github.com/osse101/StudyQuest_Go/internal/class"
	"github.com/osse101/StudyQuest_Go/internal/cosmetic"
	"github.com/osse101/StudyQuest_Go/internal/domain"
)

// QuestLister is the part of the progression service the catalog needs
type QuestLister interface {
	Quests() []domain.SpecialQuest
}

// HandleGetActivities lists the activity catalog
func HandleGetActivities() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, DataResponse{Data: activity.All()})
	}
}

// HandleGetCosmetics lists every cosmetic and its unlock condition
func HandleGetCosmetics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, DataResponse{Data: cosmetic.All()})
	}
}

// HandleGetClasses lists the character class presets
func HandleGetClasses() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, DataResponse{Data: class.All()})
	}
}

// HandleGetQuests lists the special quests
func HandleGetQuests(quests QuestLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, DataResponse{Data: quests.Quests()})
	}
}
