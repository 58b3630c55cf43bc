package coach

import "strings"

const MaxFollowUps = 3

var followUpRules = []struct {
	keywords  []string
	followUps []string
}{
	{
		keywords:  []string{"workout", "exercise"},
		followUps: []string{"What's the best progression for this exercise?", "How often should I train this?"},
	},
	{
		keywords:  []string{"form", "technique"},
		followUps: []string{"What are common mistakes to avoid?", "Can you suggest some drills to improve my form?"},
	},
	{
		keywords:  []string{"goal", "progress"},
		followUps: []string{"Create a weekly training plan for me", "What milestones should I aim for?"},
	},
}

var defaultFollowUps = []string{
	"What should I focus on next?",
	"Can you analyze my recent workouts?",
	"Suggest a workout for today",
}

var (
	startersWithHistory = []string{
		"Analyze my recent workouts and suggest improvements",
		"What should I focus on in my next workout?",
		"Help me create a weekly training plan",
		"What progressions should I work on?",
	}
	startersNewcomer = []string{
		"I'm new to calisthenics, where should I start?",
		"What's a good beginner workout routine?",
		"How do I do a proper push-up?",
		"What equipment do I need for calisthenics?",
	}
)

// SuggestFollowUps derives up to MaxFollowUps follow-up questions from keywords
// in the user's message.
func SuggestFollowUps(message string) []string {
	msg := strings.ToLower(message)
	suggestions := make([]string, 0, MaxFollowUps)
	for _, rule := range followUpRules {
		for _, kw := range rule.keywords {
			if strings.Contains(msg, kw) {
				suggestions = append(suggestions, rule.followUps...)
				break
			}
		}
	}
	if len(suggestions) == 0 {
		suggestions = append(suggestions, defaultFollowUps...)
	}
	if len(suggestions) > MaxFollowUps {
		suggestions = suggestions[:MaxFollowUps]
	}
	return suggestions
}

func ConversationStarters(hasWorkouts bool) []string {
	starters := startersNewcomer
	if hasWorkouts {
		starters = startersWithHistory
	}
	return append([]string(nil), starters...)
}
