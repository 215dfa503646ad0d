package models

import "time"

const (
	ExpenseTypeProject  = "project"
	ExpenseTypePersonal = "personal"
)

type Expense struct {
	ID          string    `json:"id,omitempty"`
	Description string    `json:"description"`
	Amount      Number    `json:"amount"`
	Date        string    `json:"date"`
	Category    string    `json:"category"`
	Type        string    `json:"type,omitempty"`
	Project     string    `json:"project,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}
