package coach

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/calisthenix/internal/records"
	"github.com/2beens/calisthenix/internal/templates"
	"github.com/2beens/calisthenix/internal/users"
	"github.com/2beens/calisthenix/internal/workouts"
)

const (
	DigestWorkouts  = 7
	DigestTemplates = 5
	DigestRecords   = records.RecentLimit
)

var levelNames = []string{"Beginner", "Novice", "Intermediate", "Advanced", "Elite"}

// TrainingContext is the slice of a user's history the coach gets to see.
type TrainingContext struct {
	Profile   *users.User          `json:"profile"`
	Workouts  []workouts.Workout   `json:"workouts"`
	Templates []templates.Template `json:"templates"`
	Records   []records.Record     `json:"records"`
}

func LevelName(level int) string {
	if level < 0 || level >= len(levelNames) {
		return levelNames[0]
	}
	return levelNames[level]
}

// Digest renders the training context as markdown prompt text.
func (tc *TrainingContext) Digest(loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	if tc.Profile == nil {
		return "User profile not found.\n"
	}

	var b strings.Builder
	b.WriteString("## User Profile\n")
	fmt.Fprintf(&b, "- Display Name: %s\n", tc.Profile.DisplayName)
	fmt.Fprintf(&b, "- Current Level: %s (%d%% to next)\n", LevelName(tc.Profile.CurrentLevel), tc.Profile.LevelProgress)
	fmt.Fprintf(&b, "- Current Streak: %d days\n", tc.Profile.Streak)
	if tc.Profile.Weight != nil {
		fmt.Fprintf(&b, "- Body Weight: %d kg\n", *tc.Profile.Weight)
	}
	fmt.Fprintf(&b, "- Member since: %s\n\n", tc.Profile.CreatedAt.In(loc).Format(time.DateOnly))

	if len(tc.Workouts) == 0 {
		b.WriteString("## Recent Workouts\nNo workouts recorded yet.\n\n")
	} else {
		fmt.Fprintf(&b, "## Recent Workouts (Last %d)\n", len(tc.Workouts))
		for i, w := range tc.Workouts {
			if i > 0 {
				b.WriteString("\n")
			}
			writeWorkout(&b, w, loc)
		}
		b.WriteString("\n")
	}

	if len(tc.Templates) > 0 {
		b.WriteString("## Saved Workout Templates\n")
		for _, t := range tc.Templates {
			b.WriteString("- " + t.Name)
			if t.Description != nil && *t.Description != "" {
				b.WriteString(": " + *t.Description)
			}
			fmt.Fprintf(&b, " (%d exercises)\n", len(t.Exercises))
		}
		b.WriteString("\n")
	}

	if len(tc.Records) > 0 {
		b.WriteString("## Personal Records\n")
		for _, r := range tc.Records {
			fmt.Fprintf(&b, "- %s: %s (%s)\n", r.ExerciseName, r.Value, r.AchievedAt.In(loc).Format(time.DateOnly))
		}
	}

	return b.String()
}

func writeWorkout(b *strings.Builder, w workouts.Workout, loc *time.Location) {
	fmt.Fprintf(b, "%s (%s)", w.Name, w.Date.In(loc).Format(time.DateOnly))
	if w.Duration != nil {
		fmt.Fprintf(b, ", %d min", *w.Duration/60)
	}
	if w.TotalVolume > 0 {
		fmt.Fprintf(b, ", Volume: %d", w.TotalVolume)
	}
	if !w.IsCompleted() {
		b.WriteString(", in progress")
	}
	b.WriteString("\n")
	for _, e := range w.Exercises {
		fmt.Fprintf(b, "  - %s: %s\n", e.Name, formatSets(e.Sets))
	}
}

// formatSets lists the completed sets as reps, with the weight when one was used.
func formatSets(sets []workouts.Set) string {
	parts := make([]string, 0, len(sets))
	for _, s := range sets {
		if !s.Completed {
			continue
		}
		part := strconv.Itoa(s.Reps) + " reps"
		if s.Weight != nil && *s.Weight > 0 {
			part += " @ " + strconv.FormatFloat(*s.Weight, 'f', -1, 64) + "kg"
		}
		parts = append(parts, part)
	}
	if len(parts) == 0 {
		return "no completed sets"
	}
	return fmt.Sprintf("%d sets: %s", len(parts), strings.Join(parts, ", "))
}
