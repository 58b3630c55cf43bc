package templates

import (
	"errors"
	"time"

	"github.com/2beens/calisthenix/internal/workouts"
)

var (
	ErrTemplateNotFound         = errors.New("template not found")
	ErrNotOwner                 = errors.New("template belongs to another user")
	ErrInvalidExerciseReference = errors.New("invalid exercise reference")
)

const (
	// SystemUserID owns the built-in public templates.
	SystemUserID = "system"

	DefaultSets = 3
	DefaultReps = 10
	DefaultRPE  = 7

	copySuffix = " (Copy)"
)

type ExerciseSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
}

type TemplateExercise struct {
	ID                 int              `json:"id"`
	ExerciseID         string           `json:"exerciseId"`
	OrderIndex         int              `json:"orderIndex"`
	DefaultSets        *int             `json:"defaultSets"`
	DefaultReps        *int             `json:"defaultReps"`
	DefaultRestSeconds *int             `json:"defaultRestSeconds"`
	Notes              *string          `json:"notes"`
	Exercise           *ExerciseSummary `json:"exercise,omitempty"`
}

type Template struct {
	ID          string             `json:"id"`
	UserID      string             `json:"userId"`
	Name        string             `json:"name"`
	Description *string            `json:"description"`
	Difficulty  *string            `json:"difficulty"`
	Category    *string            `json:"category"`
	IsPublic    bool               `json:"isPublic"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
	Exercises   []TemplateExercise `json:"exercises"`
}

// VisibleTo reports whether userID may read the template.
func (t *Template) VisibleTo(userID string) bool {
	return t.IsPublic || t.UserID == userID
}

// ListItem is a template row as shown in the listing, without its exercises.
type ListItem struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	Name          string    `json:"name"`
	Description   *string   `json:"description"`
	Difficulty    *string   `json:"difficulty"`
	Category      *string   `json:"category"`
	IsPublic      bool      `json:"isPublic"`
	CreatedAt     time.Time `json:"createdAt"`
	IsOwner       bool      `json:"isOwner"`
	ExerciseCount int       `json:"exerciseCount"`
}

type ListFilter struct {
	Difficulty string
	Category   string
}

type TemplateExerciseRequest struct {
	ExerciseID         string  `json:"exerciseId" validate:"required,uuid"`
	OrderIndex         int     `json:"orderIndex" validate:"min=0"`
	DefaultSets        *int    `json:"defaultSets,omitempty" validate:"omitempty,min=1,max=20"`
	DefaultReps        *int    `json:"defaultReps,omitempty" validate:"omitempty,min=0,max=1000"`
	DefaultRestSeconds *int    `json:"defaultRestSeconds,omitempty" validate:"omitempty,min=0,max=3600"`
	Notes              *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

type TemplateRequest struct {
	Name        string                    `json:"name" validate:"required,max=120"`
	Description *string                   `json:"description,omitempty" validate:"omitempty,max=2000"`
	Difficulty  *string                   `json:"difficulty,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
	Category    *string                   `json:"category,omitempty" validate:"omitempty,oneof=push pull legs core full_body skill"`
	IsPublic    bool                      `json:"isPublic"`
	Exercises   []TemplateExerciseRequest `json:"exercises" validate:"omitempty,max=50,dive"`
}

func (req TemplateRequest) exercises() []TemplateExercise {
	list := make([]TemplateExercise, 0, len(req.Exercises))
	for _, e := range req.Exercises {
		list = append(list, TemplateExercise{
			ExerciseID:         e.ExerciseID,
			OrderIndex:         e.OrderIndex,
			DefaultSets:        e.DefaultSets,
			DefaultReps:        e.DefaultReps,
			DefaultRestSeconds: e.DefaultRestSeconds,
			Notes:              e.Notes,
		})
	}
	return list
}

func (req TemplateRequest) exerciseIDs() []string {
	ids := make([]string, 0, len(req.Exercises))
	for _, e := range req.Exercises {
		ids = append(ids, e.ExerciseID)
	}
	return ids
}

// MaterializeSets expands template defaults into the set list of a fresh
// workout exercise: defaultSets copies of {reps, weight 0, rpe 7, not completed}.
func MaterializeSets(defaultSets, defaultReps *int) []workouts.Set {
	count, reps := DefaultSets, DefaultReps
	if defaultSets != nil {
		count = *defaultSets
	}
	if defaultReps != nil {
		reps = *defaultReps
	}
	if count < 0 {
		count = 0
	}

	sets := make([]workouts.Set, count)
	for i := range sets {
		weight, rpe := 0.0, float64(DefaultRPE)
		sets[i] = workouts.Set{
			Reps:      reps,
			Weight:    &weight,
			RPE:       &rpe,
			Completed: false,
		}
	}
	return sets
}

func listItemOf(t *Template, userID string) ListItem {
	return ListItem{
		ID:            t.ID,
		UserID:        t.UserID,
		Name:          t.Name,
		Description:   t.Description,
		Difficulty:    t.Difficulty,
		Category:      t.Category,
		IsPublic:      t.IsPublic,
		CreatedAt:     t.CreatedAt,
		IsOwner:       t.UserID == userID,
		ExerciseCount: len(t.Exercises),
	}
}
