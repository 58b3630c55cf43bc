package records

import "time"

const RecentLimit = 10

type Record struct {
	ID           int       `json:"id"`
	UserID       string    `json:"userId"`
	ExerciseName string    `json:"exerciseName"`
	Value        string    `json:"value"`
	AchievedAt   time.Time `json:"achievedAt"`
}

type NewRecordRequest struct {
	ExerciseName string     `json:"exerciseName" validate:"required,max=120"`
	Value        string     `json:"value" validate:"required,max=60"`
	AchievedAt   *time.Time `json:"achievedAt,omitempty"`
}
