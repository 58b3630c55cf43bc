package coach

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/calisthenix/internal/library"
	"github.com/2beens/calisthenix/internal/templates"
	"github.com/2beens/calisthenix/pkg"
)

var (
	ErrInvalidModelOutput    = errors.New("coach model returned an unusable template")
	ErrNoResolvableExercises = errors.New("generated template has no known exercises")
)

const (
	maxTemplateNameLen        = 120
	maxTemplateDescriptionLen = 2000
	maxGeneratedSets          = 10
	maxGeneratedReps          = 100
	maxGeneratedRest          = 600
)

type GenerateTemplateRequest struct {
	Goal       string   `json:"goal" validate:"required,max=1000"`
	Level      string   `json:"level,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
	FocusAreas []string `json:"focusAreas,omitempty" validate:"omitempty,max=10,dive,max=60"`
	Name       string   `json:"name,omitempty" validate:"omitempty,max=120"`
}

type GeneratedTemplate struct {
	TemplateID   string `json:"templateId"`
	TemplateName string `json:"templateName"`
}

// generatedExercise and generatedPlan are the JSON shape the model is asked to produce.
type generatedExercise struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Sets        int    `json:"sets" validate:"min=0"`
	Reps        int    `json:"reps" validate:"min=0"`
	RestSeconds int    `json:"restSeconds" validate:"min=0"`
	Notes       string `json:"notes" validate:"max=1000"`
}

type generatedPlan struct {
	Name        string              `json:"name" validate:"max=200"`
	Description string              `json:"description" validate:"max=2000"`
	Difficulty  string              `json:"difficulty"`
	Category    string              `json:"category"`
	Exercises   []generatedExercise `json:"exercises" validate:"required,min=1,max=50,dive"`
}

// extractJSON returns the outermost JSON object in text, tolerating markdown fences
// and prose around it.
func extractJSON(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

func parsePlan(reply string) (*generatedPlan, error) {
	raw, ok := extractJSON(reply)
	if !ok {
		return nil, fmt.Errorf("%w: no json object in reply", ErrInvalidModelOutput)
	}
	var plan generatedPlan
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidModelOutput, err)
	}
	if err := pkg.ValidateStruct(&plan); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidModelOutput, err)
	}
	return &plan, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

var templateCategories = map[string]bool{
	library.CategoryPush:  true,
	library.CategoryPull:  true,
	library.CategoryLegs:  true,
	library.CategoryCore:  true,
	library.CategorySkill: true,
	"full_body":           true,
}

// templateRequest turns the plan into a template create request. resolved holds
// the library entry for each plan exercise, nil where none was found.
func templateRequest(req GenerateTemplateRequest, plan *generatedPlan, resolved []*library.Entry) templates.TemplateRequest {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = strings.TrimSpace(plan.Name)
	}
	if name == "" {
		name = "Coach plan"
	}
	name = pkg.TruncateRunes(name, maxTemplateNameLen)

	difficulty := req.Level
	if difficulty == "" && library.IsDifficulty(plan.Difficulty) {
		difficulty = plan.Difficulty
	}
	var category string
	if templateCategories[plan.Category] {
		category = plan.Category
	}

	description := optionalString(plan.Description)
	if description == nil {
		description = optionalString("Generated for goal: " + req.Goal)
	}
	if description != nil {
		trimmed := pkg.TruncateRunes(*description, maxTemplateDescriptionLen)
		description = &trimmed
	}

	exercises := make([]templates.TemplateExerciseRequest, 0, len(plan.Exercises))
	for i, e := range plan.Exercises {
		entry := resolved[i]
		if entry == nil {
			continue
		}
		sets := clamp(e.Sets, 1, maxGeneratedSets)
		reps := clamp(e.Reps, 1, maxGeneratedReps)
		ex := templates.TemplateExerciseRequest{
			ExerciseID:  entry.ID,
			OrderIndex:  len(exercises),
			DefaultSets: &sets,
			DefaultReps: &reps,
			Notes:       optionalString(e.Notes),
		}
		if e.RestSeconds > 0 {
			rest := clamp(e.RestSeconds, 0, maxGeneratedRest)
			ex.DefaultRestSeconds = &rest
		}
		exercises = append(exercises, ex)
	}

	return templates.TemplateRequest{
		Name:        name,
		Description: description,
		Difficulty:  optionalString(difficulty),
		Category:    optionalString(category),
		IsPublic:    false,
		Exercises:   exercises,
	}
}
