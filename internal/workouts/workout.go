package workouts

import (
	"errors"
	"math"
	"time"
)

var (
	ErrWorkoutNotFound  = errors.New("workout not found")
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrNotOwner         = errors.New("workout belongs to another user")
)

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Set is one entry of an exercise's set list, stored inside the exercise row.
type Set struct {
	Reps      int      `json:"reps" validate:"min=0"`
	Weight    *float64 `json:"weight,omitempty" validate:"omitempty,min=0"`
	RPE       *float64 `json:"rpe,omitempty" validate:"omitempty,min=0,max=10"`
	Completed bool     `json:"completed"`
}

// Volume is reps times weight for a completed set, zero otherwise.
// A missing or zero weight counts as 1, so bodyweight reps still add up.
func (s Set) Volume() float64 {
	if !s.Completed {
		return 0
	}
	weight := 1.0
	if s.Weight != nil && *s.Weight != 0 {
		weight = *s.Weight
	}
	return float64(s.Reps) * weight
}

type Exercise struct {
	ID        int    `json:"id"`
	WorkoutID int    `json:"workoutId"`
	Name      string `json:"name"`
	Sets      []Set  `json:"sets"`
	Order     int    `json:"order"`
}

func (e Exercise) Volume() float64 {
	total := 0.0
	for _, s := range e.Sets {
		total += s.Volume()
	}
	return total
}

type Workout struct {
	ID          int        `json:"id"`
	UserID      string     `json:"userId"`
	Name        string     `json:"name"`
	Date        time.Time  `json:"date"`
	Duration    *int       `json:"duration"`
	TotalVolume int        `json:"totalVolume"`
	Notes       *string    `json:"notes"`
	Status      Status     `json:"status"`
	CompletedAt *time.Time `json:"completedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	Exercises   []Exercise `json:"exercises,omitempty"`
}

func (w *Workout) IsCompleted() bool {
	return w.Status == StatusCompleted
}

// TotalVolume sums the volume of all completed sets, rounded to the nearest integer.
func TotalVolume(exercises []Exercise) int {
	total := 0.0
	for _, e := range exercises {
		total += e.Volume()
	}
	return int(math.Round(total))
}

type NewWorkoutRequest struct {
	Name  string     `json:"name" validate:"required,max=120"`
	Notes *string    `json:"notes,omitempty" validate:"omitempty,max=4000"`
	Date  *time.Time `json:"date,omitempty"`
}

type UpdateWorkoutRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Notes       *string `json:"notes,omitempty" validate:"omitempty,max=4000"`
	Duration    *int    `json:"duration,omitempty" validate:"omitempty,min=0"`
	TotalVolume *int    `json:"totalVolume,omitempty" validate:"omitempty,min=0"`
	Status      *Status `json:"status,omitempty" validate:"omitempty,oneof=in_progress completed"`
}

type ExerciseRequest struct {
	Name  string `json:"name" validate:"required,max=120"`
	Sets  []Set  `json:"sets" validate:"dive"`
	Order int    `json:"order" validate:"min=0"`
}

// UpdateExerciseRequest replaces the given fields; a missing sets list
// keeps the stored one, an empty list clears it.
type UpdateExerciseRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Sets  []Set   `json:"sets" validate:"omitempty,dive"`
	Order *int    `json:"order,omitempty" validate:"omitempty,min=0"`
}

type ListParams struct {
	Limit         int
	From          *time.Time
	To            *time.Time
	WithExercises bool
}
