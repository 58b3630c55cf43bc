package templates

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/calisthenix/internal/library"

	log "github.com/sirupsen/logrus"
)

type seedRepo interface {
	Create(ctx context.Context, t *Template) error
	Delete(ctx context.Context, id string) error
}

type seedExercise struct {
	slug       string
	sets, reps int
	rest       int
	notes      string
}

func systemTemplate(id, name, description, difficulty, category string, exercises ...seedExercise) Template {
	t := Template{
		ID:          id,
		UserID:      SystemUserID,
		Name:        name,
		Description: &description,
		Difficulty:  &difficulty,
		Category:    &category,
		IsPublic:    true,
		Exercises:   make([]TemplateExercise, 0, len(exercises)),
	}
	for i, e := range exercises {
		sets, reps, rest, notes := e.sets, e.reps, e.rest, e.notes
		t.Exercises = append(t.Exercises, TemplateExercise{
			ExerciseID:         library.EntryID(e.slug),
			OrderIndex:         i + 1,
			DefaultSets:        &sets,
			DefaultReps:        &reps,
			DefaultRestSeconds: &rest,
			Notes:              &notes,
		})
	}
	return t
}

// SystemTemplates are the public templates shipped with the catalog.
func SystemTemplates() []Template {
	return []Template{
		systemTemplate("a1b2c3d4-e5f6-7890-abcd-ef1234567890", "Push Day Fundamentals",
			"A solid push workout for chest, shoulders and triceps. Good first step into calisthenics.",
			library.DifficultyBeginner, library.CategoryPush,
			seedExercise{"push-up", 3, 12, 60, "Full range of motion, chest to floor"},
			seedExercise{"diamond-push-up", 3, 8, 90, "Elbows close to the body"},
			seedExercise{"pike-push-up", 3, 10, 90, "Hips elevated"},
			seedExercise{"dip", 3, 8, 90, "Go to 90 degrees"},
		),
		systemTemplate("b2c3d4e5-f6a7-8901-bcde-f12345678901", "Pull Day Foundations",
			"Foundational pulling for back and biceps.",
			library.DifficultyBeginner, library.CategoryPull,
			seedExercise{"chin-up", 3, 8, 90, "Underhand grip"},
			seedExercise{"ring-row", 3, 10, 60, "Body straight, retract the scapula"},
			seedExercise{"hanging-leg-raise", 3, 10, 60, "No swinging"},
		),
		systemTemplate("c3d4e5f6-a7b8-9012-cdef-123456789012", "Legs Day Basics",
			"Lower body strength and mobility, no equipment needed.",
			library.DifficultyBeginner, library.CategoryLegs,
			seedExercise{"squat", 4, 15, 60, "Full depth, knees over toes"},
			seedExercise{"lunge", 3, 10, 60, "Alternate legs"},
			seedExercise{"jump-squat", 3, 10, 90, "Land softly"},
		),
		systemTemplate("d4e5f6a7-b8c9-0123-def0-234567890123", "Core & Stability",
			"Essential core work, the base of every movement.",
			library.DifficultyBeginner, library.CategoryCore,
			seedExercise{"plank", 3, 45, 60, "Hold for 45 seconds, no hip sag"},
			seedExercise{"hollow-body-hold", 3, 30, 60, "Lower back pressed to the floor"},
			seedExercise{"hanging-leg-raise", 3, 10, 60, "Controlled movement"},
		),
		systemTemplate("e5f6a7b8-c9d0-1234-ef01-345678901234", "Full Body Strength",
			"Balanced full body session hitting all major muscle groups.",
			library.DifficultyIntermediate, "full_body",
			seedExercise{"pull-up", 4, 8, 120, "Control the negative"},
			seedExercise{"push-up", 4, 12, 90, "Chest to floor each rep"},
			seedExercise{"dip", 4, 10, 90, "Full depth"},
			seedExercise{"squat", 4, 15, 90, "Knees track over toes"},
			seedExercise{"lunge", 3, 10, 60, "Maintain balance"},
			seedExercise{"plank", 3, 45, 60, "Keep the core tight"},
		),
		systemTemplate("f6a7b8c9-d0e1-2345-f012-456789012345", "Advanced Push Power",
			"Advanced pushing, needs a solid base in the basic push exercises.",
			library.DifficultyAdvanced, library.CategoryPush,
			seedExercise{"handstand-push-up", 4, 5, 180, "Wall supported, full range"},
			seedExercise{"dip", 4, 8, 120, "Deep dips, full extension"},
			seedExercise{"diamond-push-up", 3, 10, 90, "Slow and controlled"},
			seedExercise{"pike-push-up", 3, 12, 90, "Hips high"},
		),
		systemTemplate("a7b8c9d0-e1f2-3456-0123-567890123456", "Advanced Pull Mastery",
			"Muscle-ups and lever work for strong pullers.",
			library.DifficultyAdvanced, library.CategoryPull,
			seedExercise{"muscle-up", 4, 3, 180, "Explosive pull, fast transition"},
			seedExercise{"pull-up", 4, 8, 120, "Strict form"},
			seedExercise{"hanging-leg-raise", 3, 15, 90, "Toes to bar if possible"},
			seedExercise{"l-sit", 3, 20, 60, "Time under tension"},
		),
	}
}

// SeedSystemTemplates replaces the built-in templates. The exercise library
// has to be seeded first.
func SeedSystemTemplates(ctx context.Context, repo seedRepo) (int, error) {
	seeded := 0
	for _, t := range SystemTemplates() {
		if err := repo.Delete(ctx, t.ID); err != nil && !errors.Is(err, ErrTemplateNotFound) {
			return seeded, fmt.Errorf("delete template %s: %w", t.ID, err)
		}
		if err := repo.Create(ctx, &t); err != nil {
			return seeded, fmt.Errorf("create template %s: %w", t.Name, err)
		}
		seeded++
		log.Debugf("system template seeded: %s", t.Name)
	}
	return seeded, nil
}
