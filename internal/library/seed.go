package library

import (
	"github.com/google/uuid"
)

// seedNamespace keeps catalog ids stable across re-seeds, so templates that
// reference them survive a library refresh.
var seedNamespace = uuid.MustParse("6f1c1b0e-3d0a-4c55-9a53-2a4f7f1de0c1")

// EntryID is the stable id of the catalog entry with the given slug.
func EntryID(slug string) string {
	return uuid.NewSHA1(seedNamespace, []byte(slug)).String()
}

func entry(name, category, difficulty, short string, primary, secondary, equipment, progressions, regressions, tips []string) Entry {
	slug := Slugify(name)
	return Entry{
		ID:               EntryID(slug),
		Name:             name,
		Slug:             slug,
		Category:         category,
		Difficulty:       difficulty,
		ShortDescription: short,
		LongDescription:  short,
		MusclesPrimary:   primary,
		MusclesSecondary: secondary,
		Equipment:        equipment,
		Progressions:     progressions,
		Regressions:      regressions,
		Tips:             tips,
	}
}

func list(items ...string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

// SeedEntries is the built-in exercise catalog.
func SeedEntries() []Entry {
	return []Entry{
		entry("Push-up", CategoryPush, DifficultyBeginner,
			"Classic horizontal push from a straight body plank.",
			list("chest", "triceps"), list("front delts", "core"), list(),
			list("Diamond Push-up", "Archer Push-up"), list("Incline Push-up", "Knee Push-up"),
			list("Keep a straight line from head to heels", "Chest touches the floor every rep")),
		entry("Knee Push-up", CategoryPush, DifficultyBeginner,
			"Push-up performed from the knees to reduce the load.",
			list("chest", "triceps"), list("front delts"), list(),
			list("Incline Push-up", "Push-up"), list(),
			list("Hips stay in line with the torso")),
		entry("Incline Push-up", CategoryPush, DifficultyBeginner,
			"Push-up with hands elevated on a bench or bar.",
			list("chest", "triceps"), list("front delts"), list("bench"),
			list("Push-up"), list("Knee Push-up"),
			list("Lower the incline over time")),
		entry("Diamond Push-up", CategoryPush, DifficultyIntermediate,
			"Close grip push-up with hands forming a diamond, triceps focused.",
			list("triceps", "chest"), list("front delts"), list(),
			list("Archer Push-up"), list("Push-up"),
			list("Keep elbows close to the body")),
		entry("Pike Push-up", CategoryPush, DifficultyIntermediate,
			"Vertical push with hips high, builds shoulders for handstand work.",
			list("shoulders"), list("triceps", "upper chest"), list(),
			list("Handstand Push-up"), list("Push-up"),
			list("Head travels in front of the hands")),
		entry("Archer Push-up", CategoryPush, DifficultyAdvanced,
			"Wide push-up shifting the load to one arm at a time.",
			list("chest", "triceps"), list("shoulders", "core"), list(),
			list(), list("Diamond Push-up"),
			list("Straight arm stays locked")),
		entry("Dip", CategoryPush, DifficultyIntermediate,
			"Parallel bar dip to at least 90 degrees at the elbow.",
			list("chest", "triceps"), list("front delts"), list("parallel bars"),
			list("Handstand Push-up"), list("Bench Dip"),
			list("Shoulders stay down and back", "Go to 90 degrees")),
		entry("Bench Dip", CategoryPush, DifficultyBeginner,
			"Dip with hands on a bench behind the body and feet on the floor.",
			list("triceps"), list("chest", "front delts"), list("bench"),
			list("Dip"), list(),
			list("Keep the back close to the bench")),
		entry("Handstand Push-up", CategoryPush, DifficultyAdvanced,
			"Wall supported vertical press from a handstand.",
			list("shoulders", "triceps"), list("upper back", "core"), list("wall"),
			list(), list("Pike Push-up"),
			list("Stack wrists, shoulders and hips", "Full range of motion")),
		entry("Pull-up", CategoryPull, DifficultyIntermediate,
			"Overhand grip vertical pull until the chin clears the bar.",
			list("lats", "biceps"), list("rear delts", "forearms"), list("pull-up bar"),
			list("Muscle-up"), list("Negative Pull-up", "Chin-up"),
			list("Start from a dead hang", "No kipping")),
		entry("Chin-up", CategoryPull, DifficultyBeginner,
			"Underhand grip vertical pull, easier than the pull-up.",
			list("biceps", "lats"), list("forearms"), list("pull-up bar"),
			list("Pull-up"), list("Negative Pull-up"),
			list("Pull the elbows down to the ribs")),
		entry("Negative Pull-up", CategoryPull, DifficultyBeginner,
			"Jump to the top position and lower slowly.",
			list("lats", "biceps"), list("forearms"), list("pull-up bar"),
			list("Pull-up"), list("Ring Row"),
			list("Lower over 3 to 5 seconds")),
		entry("Ring Row", CategoryPull, DifficultyBeginner,
			"Inclined horizontal row on rings or a low bar.",
			list("upper back", "biceps"), list("rear delts"), list("rings"),
			list("Pull-up"), list(),
			list("Keep the body straight", "Retract the scapula")),
		entry("Muscle-up", CategoryPull, DifficultyAdvanced,
			"Explosive pull-up transitioning into a dip above the bar.",
			list("lats", "chest", "triceps"), list("biceps", "core"), list("pull-up bar"),
			list(), list("Pull-up", "Dip"),
			list("Pull to the lower chest", "Fast transition")),
		entry("Front Lever", CategoryPull, DifficultyAdvanced,
			"Horizontal hold hanging under the bar with a straight body.",
			list("lats", "core"), list("rear delts"), list("pull-up bar"),
			list(), list("Hanging Leg Raise"),
			list("Straight arms", "Squeeze the glutes")),
		entry("Squat", CategoryLegs, DifficultyBeginner,
			"Bodyweight squat to full depth.",
			list("quads", "glutes"), list("hamstrings", "calves"), list(),
			list("Jump Squat", "Pistol Squat"), list(),
			list("Knees track over the toes", "Heels stay down")),
		entry("Lunge", CategoryLegs, DifficultyBeginner,
			"Alternating forward lunge.",
			list("quads", "glutes"), list("hamstrings"), list(),
			list("Bulgarian Split Squat"), list("Squat"),
			list("Front knee stays over the ankle")),
		entry("Jump Squat", CategoryLegs, DifficultyIntermediate,
			"Explosive squat into a vertical jump.",
			list("quads", "glutes"), list("calves"), list(),
			list("Pistol Squat"), list("Squat"),
			list("Land softly")),
		entry("Bulgarian Split Squat", CategoryLegs, DifficultyIntermediate,
			"Single leg squat with the rear foot elevated.",
			list("quads", "glutes"), list("hamstrings"), list("bench"),
			list("Pistol Squat"), list("Lunge"),
			list("Torso stays upright")),
		entry("Pistol Squat", CategoryLegs, DifficultyAdvanced,
			"Single leg squat to full depth with the free leg extended.",
			list("quads", "glutes"), list("core", "calves"), list(),
			list(), list("Bulgarian Split Squat"),
			list("Reach forward with the arms for balance")),
		entry("Plank", CategoryCore, DifficultyBeginner,
			"Forearm plank hold.",
			list("abs"), list("shoulders", "glutes"), list(),
			list("Hollow Body Hold"), list(),
			list("No hip sag")),
		entry("Hollow Body Hold", CategoryCore, DifficultyIntermediate,
			"Supine hold with lower back pressed to the floor.",
			list("abs"), list("hip flexors"), list(),
			list("L-Sit"), list("Plank"),
			list("Point the toes", "Lower back stays on the floor")),
		entry("Hanging Leg Raise", CategoryCore, DifficultyIntermediate,
			"Raise straight legs while hanging from a bar.",
			list("abs", "hip flexors"), list("forearms"), list("pull-up bar"),
			list("Front Lever"), list("Plank"),
			list("No swinging", "Toes to bar if possible")),
		entry("L-Sit", CategoryCore, DifficultyAdvanced,
			"Support hold with legs extended parallel to the floor.",
			list("abs", "hip flexors"), list("triceps"), list("parallettes"),
			list(), list("Hollow Body Hold"),
			list("Push the shoulders down")),
		entry("Handstand", CategorySkill, DifficultyAdvanced,
			"Freestanding balance on the hands.",
			list("shoulders"), list("core", "forearms"), list(),
			list("Handstand Push-up"), list("Crow Pose"),
			list("Balance with the fingers")),
		entry("Crow Pose", CategorySkill, DifficultyBeginner,
			"Arm balance with knees resting on the elbows.",
			list("shoulders", "core"), list("wrists"), list(),
			list("Handstand"), list(),
			list("Lean forward until the feet lift")),
	}
}
