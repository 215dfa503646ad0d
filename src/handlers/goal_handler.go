package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"kitawise-server/src/logging"
	"kitawise-server/src/models"
	"kitawise-server/src/records"
)

func ListGoals(svc *records.GoalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		goals, err := svc.List(r.Context())
		if err != nil {
			logging.Logger.Errorf("Failed to list goals: %v", err)
			writeError(w, "goal", err)
			return
		}
		if goals == nil {
			goals = []models.Goal{}
		}
		writeJSON(w, http.StatusOK, goals)
	}
}

func CreateGoal(svc *records.GoalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := readBody(r)
		if err != nil {
			writeError(w, "goal", err)
			return
		}
		goal, err := svc.Create(r.Context(), body)
		if err != nil {
			logging.Logger.Errorf("Failed to create goal: %v", err)
			writeError(w, "goal", err)
			return
		}
		logging.Logger.Infof("Created goal %s (%s)", goal.ID, goal.Title)
		writeJSON(w, http.StatusCreated, goal)
	}
}

func UpdateGoal(svc *records.GoalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		body, err := readBody(r)
		if err != nil {
			writeError(w, "goal", err)
			return
		}
		goal, err := svc.Update(r.Context(), id, body)
		if err != nil {
			logging.Logger.Errorf("Failed to update goal %s: %v", id, err)
			writeError(w, "goal", err)
			return
		}
		logging.Logger.Infof("Updated goal %s", goal.ID)
		writeJSON(w, http.StatusOK, goal)
	}
}

func DeleteGoal(svc *records.GoalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := svc.Delete(r.Context(), id); err != nil {
			logging.Logger.Errorf("Failed to delete goal %s: %v", id, err)
			writeError(w, "goal", err)
			return
		}
		logging.Logger.Infof("Deleted goal %s", id)
		w.WriteHeader(http.StatusNoContent)
	}
}
