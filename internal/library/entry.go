package library

import (
	"errors"
	"regexp"
	"strings"
)

var ErrExerciseNotFound = errors.New("exercise not found")

const (
	CategoryPush  = "push"
	CategoryPull  = "pull"
	CategoryLegs  = "legs"
	CategoryCore  = "core"
	CategorySkill = "skill"

	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"

	filterAll = "all"

	DefaultListLimit = 50
	MaxListLimit     = 200
)

var (
	Categories   = []string{CategoryPush, CategoryPull, CategoryLegs, CategoryCore, CategorySkill}
	Difficulties = []string{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}
)

// Entry is a catalog exercise. It is seeded and never edited through the API.
type Entry struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Slug             string   `json:"slug"`
	Category         string   `json:"category"`
	Difficulty       string   `json:"difficulty"`
	ShortDescription string   `json:"shortDescription"`
	LongDescription  string   `json:"longDescription"`
	MusclesPrimary   []string `json:"musclesPrimary"`
	MusclesSecondary []string `json:"musclesSecondary"`
	Equipment        []string `json:"equipment"`
	Progressions     []string `json:"progressions"`
	Regressions      []string `json:"regressions"`
	Tips             []string `json:"tips"`
	DemoImageURL     *string  `json:"demoImageUrl"`
	DemoGifURL       *string  `json:"demoGifUrl"`
}

type ListParams struct {
	Query      string
	Category   string
	Difficulty string
	Limit      int
	Offset     int
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func IsCategory(v string) bool {
	return contains(Categories, v)
}

func IsDifficulty(v string) bool {
	return contains(Difficulties, v)
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns an exercise name into its URL-safe slug, e.g. "L-Sit Hold" -> "l-sit-hold".
func Slugify(name string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}
