package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"kitawise-server/src/logging"
	"kitawise-server/src/models"
	"kitawise-server/src/records"
)

func ListProjects(svc *records.ProjectService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := svc.List(r.Context())
		if err != nil {
			logging.Logger.Errorf("Failed to list projects: %v", err)
			writeError(w, "project", err)
			return
		}
		if projects == nil {
			projects = []models.Project{}
		}
		writeJSON(w, http.StatusOK, projects)
	}
}

func CreateProject(svc *records.ProjectService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := readBody(r)
		if err != nil {
			writeError(w, "project", err)
			return
		}
		project, err := svc.Create(r.Context(), body)
		if err != nil {
			logging.Logger.Errorf("Failed to create project: %v", err)
			writeError(w, "project", err)
			return
		}
		logging.Logger.Infof("Created project %s (%s)", project.ID, project.Name)
		writeJSON(w, http.StatusCreated, project)
	}
}

func UpdateProject(svc *records.ProjectService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		body, err := readBody(r)
		if err != nil {
			writeError(w, "project", err)
			return
		}
		project, err := svc.Update(r.Context(), id, body)
		if err != nil {
			logging.Logger.Errorf("Failed to update project %s: %v", id, err)
			writeError(w, "project", err)
			return
		}
		logging.Logger.Infof("Updated project %s", project.ID)
		writeJSON(w, http.StatusOK, project)
	}
}

func DeleteProject(svc *records.ProjectService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := svc.Delete(r.Context(), id); err != nil {
			logging.Logger.Errorf("Failed to delete project %s: %v", id, err)
			writeError(w, "project", err)
			return
		}
		logging.Logger.Infof("Deleted project %s", id)
		w.WriteHeader(http.StatusNoContent)
	}
}
