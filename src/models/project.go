package models

import "time"

const (
	ProjectStatusActive     = "active"
	ProjectStatusCompleted  = "completed"
	ProjectStatusNotStarted = "notStarted"
	ProjectStatusInProgress = "inProgress"
)

type Project struct {
	ID             string    `json:"id,omitempty"`
	Name           string    `json:"name"`
	Client         string    `json:"client,omitempty"`
	ExpectedIncome Number    `json:"expectedIncome"`
	ActualIncome   Number    `json:"actualIncome"`
	Date           string    `json:"date,omitempty"`
	Timeline       string    `json:"timeline,omitempty"`
	Status         string    `json:"status,omitempty"`
	Description    string    `json:"description,omitempty"`
	Profitability  Number    `json:"profitability"`
	CreatedAt      time.Time `json:"createdAt,omitempty"`
}
