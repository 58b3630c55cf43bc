package templates

import (
	"context"
	"fmt"

	"github.com/2beens/calisthenix/internal/telemetry/tracing"
	"github.com/2beens/calisthenix/internal/workouts"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=templates_test

type templatesRepo interface {
	List(ctx context.Context, userID string, filter ListFilter) ([]ListItem, error)
	ListOwned(ctx context.Context, userID string, limit int) ([]Template, error)
	Get(ctx context.Context, id string) (*Template, error)
	Create(ctx context.Context, t *Template) error
	Update(ctx context.Context, t *Template) error
	Delete(ctx context.Context, id string) error
}

type exerciseChecker interface {
	Exists(ctx context.Context, ids []string) (bool, error)
}

// workoutCreator is the workouts create path used to start a template.
type workoutCreator interface {
	Create(ctx context.Context, userID string, req workouts.NewWorkoutRequest, origin string) (*workouts.Workout, error)
	AddExercise(ctx context.Context, userID string, workoutID int, req workouts.ExerciseRequest) (*workouts.Exercise, error)
}

type Service struct {
	repo      templatesRepo
	exercises exerciseChecker
	workouts  workoutCreator
	newID     func() string
}

func NewService(repo templatesRepo, exercises exerciseChecker, workouts workoutCreator) *Service {
	return &Service{
		repo:      repo,
		exercises: exercises,
		workouts:  workouts,
		newID:     uuid.NewString,
	}
}

func (s *Service) List(ctx context.Context, userID string, filter ListFilter) (_ []ListItem, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.templates.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if filter.Difficulty == "all" {
		filter.Difficulty = ""
	}
	if filter.Category == "all" {
		filter.Category = ""
	}
	return s.repo.List(ctx, userID, filter)
}

func (s *Service) ListOwned(ctx context.Context, userID string, limit int) ([]Template, error) {
	return s.repo.ListOwned(ctx, userID, limit)
}

// Get returns a template the user can see. Private templates of other users
// are reported as not found.
func (s *Service) Get(ctx context.Context, userID, id string) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.templates.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	t, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !t.VisibleTo(userID) {
		return nil, ErrTemplateNotFound
	}
	return t, nil
}

func (s *Service) getOwned(ctx context.Context, userID, id string) (*Template, error) {
	t, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if t.UserID != userID {
		return nil, ErrNotOwner
	}
	return t, nil
}

func (s *Service) checkExercises(ctx context.Context, req TemplateRequest) error {
	if len(req.Exercises) == 0 {
		return nil
	}
	ok, err := s.exercises.Exists(ctx, req.exerciseIDs())
	if err != nil {
		return fmt.Errorf("check exercises: %w", err)
	}
	if !ok {
		return ErrInvalidExerciseReference
	}
	return nil
}

func (s *Service) Create(ctx context.Context, userID string, req TemplateRequest) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.templates.create")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := s.checkExercises(ctx, req); err != nil {
		return nil, err
	}

	t := &Template{
		ID:          s.newID(),
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Difficulty:  req.Difficulty,
		Category:    req.Category,
		IsPublic:    req.IsPublic,
		Exercises:   req.exercises(),
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	log.Debugf("template [%s] created by [%s] with %d exercises", t.ID, userID, len(t.Exercises))
	return t, nil
}

func (s *Service) Update(ctx context.Context, userID, id string, req TemplateRequest) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.templates.update")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	t, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkExercises(ctx, req); err != nil {
		return nil, err
	}

	t.Name = req.Name
	t.Description = req.Description
	t.Difficulty = req.Difficulty
	t.Category = req.Category
	t.IsPublic = req.IsPublic
	t.Exercises = req.exercises()

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.templates.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// Duplicate copies a visible template into a new private one owned by the caller.
func (s *Service) Duplicate(ctx context.Context, userID, id string) (_ *ListItem, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.templates.duplicate")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	src, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	exercises := make([]TemplateExercise, 0, len(src.Exercises))
	for _, e := range src.Exercises {
		exercises = append(exercises, TemplateExercise{
			ExerciseID:         e.ExerciseID,
			OrderIndex:         e.OrderIndex,
			DefaultSets:        e.DefaultSets,
			DefaultReps:        e.DefaultReps,
			DefaultRestSeconds: e.DefaultRestSeconds,
			Notes:              e.Notes,
		})
	}

	dup := &Template{
		ID:          s.newID(),
		UserID:      userID,
		Name:        src.Name + copySuffix,
		Description: src.Description,
		Difficulty:  src.Difficulty,
		Category:    src.Category,
		IsPublic:    false,
		Exercises:   exercises,
	}
	if err := s.repo.Create(ctx, dup); err != nil {
		return nil, err
	}

	item := listItemOf(dup, userID)
	return &item, nil
}

// Start materializes the template into a new in-progress workout. Rows
// inserted before a failure are left in place.
func (s *Service) Start(ctx context.Context, userID, id string) (_ *workouts.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.templates.start")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("template", id))

	t, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	w, err := s.workouts.Create(ctx, userID, workouts.NewWorkoutRequest{Name: t.Name}, workouts.OriginTemplate)
	if err != nil {
		return nil, fmt.Errorf("create workout: %w", err)
	}

	w.Exercises = make([]workouts.Exercise, 0, len(t.Exercises))
	for i, te := range t.Exercises {
		name := te.ExerciseID
		if te.Exercise != nil {
			name = te.Exercise.Name
		}
		e, err := s.workouts.AddExercise(ctx, userID, w.ID, workouts.ExerciseRequest{
			Name:  name,
			Sets:  MaterializeSets(te.DefaultSets, te.DefaultReps),
			Order: i,
		})
		if err != nil {
			return nil, fmt.Errorf("add exercise %d of template %s to workout %d: %w", i, t.ID, w.ID, err)
		}
		w.Exercises = append(w.Exercises, *e)
	}

	return w, nil
}
