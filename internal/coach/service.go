package coach

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/calisthenix/internal/library"
	"github.com/2beens/calisthenix/internal/records"
	"github.com/2beens/calisthenix/internal/telemetry/metrics"
	"github.com/2beens/calisthenix/internal/telemetry/tracing"
	"github.com/2beens/calisthenix/internal/templates"
	"github.com/2beens/calisthenix/internal/users"
	"github.com/2beens/calisthenix/internal/workouts"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=coach_test

type profileReader interface {
	Get(ctx context.Context, id string) (*users.User, error)
	CountWorkouts(ctx context.Context, id string) (int, error)
}

type workoutLister interface {
	List(ctx context.Context, userID string, params workouts.ListParams) ([]workouts.Workout, error)
}

type templatesService interface {
	ListOwned(ctx context.Context, userID string, limit int) ([]templates.Template, error)
	Create(ctx context.Context, userID string, req templates.TemplateRequest) (*templates.Template, error)
}

type recordLister interface {
	ListRecent(ctx context.Context, userID string, limit int) ([]records.Record, error)
}

type exerciseCatalog interface {
	List(ctx context.Context, params library.ListParams) ([]library.Entry, error)
	Resolve(ctx context.Context, slugOrName string) (*library.Entry, error)
}

const (
	OperationChat             = "chat"
	OperationGenerateTemplate = "generate_template"

	catalogLimit = 200
)

const systemPrompt = `You are Calisthenix Coach, an expert fitness assistant specializing in calisthenics and bodyweight training. Your role is to:

1. Provide personalized workout advice based on the user's current fitness level and goals
2. Help users progress through calisthenics skills (push-ups, pull-ups, dips, muscle-ups, handstands, etc.)
3. Offer form tips, progression strategies, and recovery advice
4. Motivate and encourage users while being realistic about their capabilities
5. Analyze their workout history to provide data-driven recommendations

Communication style:
- Be friendly, supportive, and encouraging
- Use clear, actionable language
- Keep responses concise but informative
- Reference the user's actual workout data when relevant
- Suggest specific exercises or progressions based on their level

Always prioritize safety and proper form. If unsure about something medical, recommend consulting a healthcare professional.`

const templatePrompt = `You design calisthenics workout templates. Answer with a single JSON object and nothing else, shaped like:
{"name": string, "description": string, "difficulty": "beginner"|"intermediate"|"advanced", "category": "push"|"pull"|"legs"|"core"|"full_body"|"skill", "exercises": [{"slug": string, "name": string, "sets": int, "reps": int, "restSeconds": int, "notes": string}]}
Use only exercises from the catalog below and copy their slug exactly. Keep it between 3 and 8 exercises.`

type ChatRequest struct {
	Message string `json:"message" validate:"required,max=4000"`
	History []Turn `json:"history" validate:"omitempty,max=50,dive"`
}

type ChatResponse struct {
	Reply              string   `json:"reply"`
	SuggestedFollowUps []string `json:"suggestedFollowUps"`
}

type Service struct {
	model          Model
	profiles       profileReader
	workouts       workoutLister
	templates      templatesService
	records        recordLister
	library        exerciseCatalog
	loc            *time.Location
	metricsManager *metrics.Manager
}

type NewServiceParams struct {
	// Model may be nil, the coach then answers ErrNotConfigured.
	Model          Model
	Profiles       profileReader
	Workouts       workoutLister
	Templates      templatesService
	Records        recordLister
	Library        exerciseCatalog
	Location       *time.Location
	MetricsManager *metrics.Manager
}

func NewService(params NewServiceParams) *Service {
	loc := params.Location
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		model:          params.Model,
		profiles:       params.Profiles,
		workouts:       params.Workouts,
		templates:      params.Templates,
		records:        params.Records,
		library:        params.Library,
		loc:            loc,
		metricsManager: params.MetricsManager,
	}
}

func (s *Service) Configured() bool {
	return s.model != nil
}

// TrainingContext gathers the profile, the last workouts with their exercises,
// owned templates and recent personal records of the user.
func (s *Service) TrainingContext(ctx context.Context, userID string) (_ *TrainingContext, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.coach.training-context")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	profile, err := s.profiles.Get(ctx, userID)
	if errors.Is(err, users.ErrUserNotFound) {
		return &TrainingContext{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	recent, err := s.workouts.List(ctx, userID, workouts.ListParams{
		Limit:         DigestWorkouts,
		WithExercises: true,
	})
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	owned, err := s.templates.ListOwned(ctx, userID, DigestTemplates)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	prs, err := s.records.ListRecent(ctx, userID, DigestRecords)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	return &TrainingContext{
		Profile:   profile,
		Workouts:  recent,
		Templates: owned,
		Records:   prs,
	}, nil
}

// Digest is the training context of the user rendered as prompt text.
func (s *Service) Digest(ctx context.Context, userID string) (string, error) {
	tc, err := s.TrainingContext(ctx, userID)
	if err != nil {
		return "", err
	}
	return tc.Digest(s.loc), nil
}

func (s *Service) generate(ctx context.Context, operation string, prompt Prompt) (string, error) {
	start := time.Now()
	reply, err := s.model.Generate(ctx, prompt)
	if s.metricsManager != nil {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		s.metricsManager.CounterCoachCalls.WithLabelValues(operation, outcome).Inc()
		s.metricsManager.HistogramCoachDuration.Observe(time.Since(start).Seconds())
	}
	return reply, err
}

func (s *Service) Chat(ctx context.Context, userID string, req ChatRequest) (_ *ChatResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.coach.chat")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if s.model == nil {
		return nil, ErrNotConfigured
	}

	digest, err := s.Digest(ctx, userID)
	if err != nil {
		log.Errorf("coach digest for [%s]: %s", userID, err)
		digest = "Unable to retrieve user data.\n"
	}

	turns := make([]Turn, 0, len(req.History)+1)
	turns = append(turns, req.History...)
	turns = append(turns, Turn{Role: RoleUser, Content: req.Message})

	reply, err := s.generate(ctx, OperationChat, Prompt{
		System: systemPrompt + "\n\n## Current User Context\n" + digest,
		Turns:  turns,
	})
	if err != nil {
		return nil, err
	}

	return &ChatResponse{
		Reply:              reply,
		SuggestedFollowUps: SuggestFollowUps(req.Message),
	}, nil
}

func (s *Service) Suggestions(ctx context.Context, userID string) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.coach.suggestions")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	count, err := s.profiles.CountWorkouts(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ConversationStarters(count > 0), nil
}

func (s *Service) catalog(ctx context.Context) (string, error) {
	entries, err := s.library.List(ctx, library.ListParams{Limit: catalogLimit})
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("## Exercise Catalog (slug: name, category, difficulty)\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "- %s: %s, %s, %s\n", e.Slug, e.Name, e.Category, e.Difficulty)
	}
	return b.String(), nil
}

func generateMessage(req GenerateTemplateRequest) string {
	var b strings.Builder
	b.WriteString("Goal: " + req.Goal + "\n")
	if req.Level != "" {
		b.WriteString("Level: " + req.Level + "\n")
	}
	if len(req.FocusAreas) > 0 {
		b.WriteString("Focus areas: " + strings.Join(req.FocusAreas, ", ") + "\n")
	}
	if req.Name != "" {
		b.WriteString("Template name: " + req.Name + "\n")
	}
	return b.String()
}

// GenerateTemplate asks the model for a template matching the goal and saves it
// for the user. Exercises the library does not know are dropped.
func (s *Service) GenerateTemplate(ctx context.Context, userID string, req GenerateTemplateRequest) (_ *GeneratedTemplate, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.coach.generate-template")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if s.model == nil {
		return nil, ErrNotConfigured
	}

	catalog, err := s.catalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("exercise catalog: %w", err)
	}
	digest, err := s.Digest(ctx, userID)
	if err != nil {
		log.Errorf("coach digest for [%s]: %s", userID, err)
		digest = ""
	}

	reply, err := s.generate(ctx, OperationGenerateTemplate, Prompt{
		System: templatePrompt + "\n\n" + catalog + "\n## Current User Context\n" + digest,
		Turns:  []Turn{{Role: RoleUser, Content: generateMessage(req)}},
		JSON:   true,
	})
	if err != nil {
		return nil, err
	}

	plan, err := parsePlan(reply)
	if err != nil {
		return nil, err
	}

	resolved := make([]*library.Entry, len(plan.Exercises))
	found := 0
	for i, e := range plan.Exercises {
		entry, err := s.resolve(ctx, e)
		if err != nil {
			return nil, err
		}
		if entry == nil {
			log.Debugf("coach template for [%s]: dropping unknown exercise %q / %q", userID, e.Slug, e.Name)
			continue
		}
		resolved[i] = entry
		found++
	}
	if found == 0 {
		return nil, ErrNoResolvableExercises
	}

	created, err := s.templates.Create(ctx, userID, templateRequest(req, plan, resolved))
	if err != nil {
		return nil, fmt.Errorf("create template: %w", err)
	}

	return &GeneratedTemplate{
		TemplateID:   created.ID,
		TemplateName: created.Name,
	}, nil
}

// resolve looks the exercise up by slug, then by name. A nil entry means neither matched.
func (s *Service) resolve(ctx context.Context, e generatedExercise) (*library.Entry, error) {
	for _, key := range []string{e.Slug, e.Name} {
		if strings.TrimSpace(key) == "" {
			continue
		}
		entry, err := s.library.Resolve(ctx, key)
		if err == nil {
			return entry, nil
		}
		if !errors.Is(err, library.ErrExerciseNotFound) {
			return nil, fmt.Errorf("resolve exercise %q: %w", key, err)
		}
	}
	return nil, nil
}
