package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"kitawise-server/src/logging"
	"kitawise-server/src/models"
	"kitawise-server/src/records"
)

func ListExpenses(svc *records.ExpenseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		expenses, err := svc.List(r.Context())
		if err != nil {
			logging.Logger.Errorf("Failed to list expenses: %v", err)
			writeError(w, "expense", err)
			return
		}
		if expenses == nil {
			expenses = []models.Expense{}
		}
		writeJSON(w, http.StatusOK, expenses)
	}
}

func CreateExpense(svc *records.ExpenseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := readBody(r)
		if err != nil {
			writeError(w, "expense", err)
			return
		}
		expense, err := svc.Create(r.Context(), body)
		if err != nil {
			logging.Logger.Errorf("Failed to create expense: %v", err)
			writeError(w, "expense", err)
			return
		}
		logging.Logger.Infof("Created expense %s (%s, %.2f)", expense.ID, expense.Category, float64(expense.Amount))
		writeJSON(w, http.StatusCreated, expense)
	}
}

func UpdateExpense(svc *records.ExpenseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		body, err := readBody(r)
		if err != nil {
			writeError(w, "expense", err)
			return
		}
		expense, err := svc.Update(r.Context(), id, body)
		if err != nil {
			logging.Logger.Errorf("Failed to update expense %s: %v", id, err)
			writeError(w, "expense", err)
			return
		}
		logging.Logger.Infof("Updated expense %s", expense.ID)
		writeJSON(w, http.StatusOK, expense)
	}
}

func DeleteExpense(svc *records.ExpenseService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := svc.Delete(r.Context(), id); err != nil {
			logging.Logger.Errorf("Failed to delete expense %s: %v", id, err)
			writeError(w, "expense", err)
			return
		}
		logging.Logger.Infof("Deleted expense %s", id)
		w.WriteHeader(http.StatusNoContent)
	}
}
