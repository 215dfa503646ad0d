package models

import "time"

const (
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
	GoalStatusOverdue   = "overdue"
)

type Goal struct {
	ID            string    `json:"id,omitempty"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	TargetAmount  Number    `json:"targetAmount"`
	CurrentAmount Number    `json:"currentAmount"`
	Deadline      string    `json:"deadline,omitempty"`
	Category      string    `json:"category,omitempty"`
	Status        string    `json:"status,omitempty"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
}
