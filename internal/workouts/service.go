package workouts

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/calisthenix/internal/telemetry/metrics"
	"github.com/2beens/calisthenix/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	Add(ctx context.Context, w Workout) (*Workout, error)
	Get(ctx context.Context, id int) (*Workout, error)
	List(ctx context.Context, userID string, params ListParams) ([]Workout, error)
	Update(ctx context.Context, w *Workout) error
	UpdateVolume(ctx context.Context, id int, totalVolume int) error
	Delete(ctx context.Context, id int) error
	ListExercises(ctx context.Context, workoutIDs ...int) ([]Exercise, error)
	GetExercise(ctx context.Context, id int) (*Exercise, error)
	AddExercise(ctx context.Context, e Exercise) (*Exercise, error)
	UpdateExercise(ctx context.Context, e *Exercise) error
	DeleteExercise(ctx context.Context, id int) error
}

// streakRecorder gets notified about every created workout.
type streakRecorder interface {
	RecordWorkout(ctx context.Context, userID string, date time.Time) error
}

const (
	OriginEmpty    = "empty"
	OriginTemplate = "template"

	DefaultListLimit = 50
	MaxListLimit     = 500
)

type Service struct {
	repo           workoutsRepo
	streaks        streakRecorder
	metricsManager *metrics.Manager
	nowFunc        func() time.Time
}

func NewService(repo workoutsRepo, streaks streakRecorder, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		streaks:        streaks,
		metricsManager: metricsManager,
		nowFunc:        time.Now,
	}
}

// SetNowFunc overrides the clock, used in tests.
func (s *Service) SetNowFunc(nowFunc func() time.Time) {
	s.nowFunc = nowFunc
}

// Create starts a new in-progress workout and recomputes the owner's streak.
// The streak update is a separate write; its failure is logged, not returned.
func (s *Service) Create(ctx context.Context, userID string, req NewWorkoutRequest, origin string) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.create")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("origin", origin))

	date := s.nowFunc()
	if req.Date != nil && !req.Date.IsZero() {
		date = *req.Date
	}

	added, err := s.repo.Add(ctx, Workout{
		UserID:      userID,
		Name:        req.Name,
		Date:        date,
		Notes:       req.Notes,
		Status:      StatusInProgress,
		TotalVolume: 0,
	})
	if err != nil {
		return nil, fmt.Errorf("add workout: %w", err)
	}
	s.metricsManager.CounterWorkoutsCreated.WithLabelValues(origin).Inc()

	if s.streaks != nil {
		if err := s.streaks.RecordWorkout(ctx, userID, added.Date); err != nil {
			log.Errorf("workout [%d] created, but streak update failed for user [%s]: %s", added.ID, userID, err)
		}
	}

	added.Exercises = []Exercise{}
	return added, nil
}

func (s *Service) getOwned(ctx context.Context, userID string, id int) (*Workout, error) {
	w, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if w.UserID != userID {
		return nil, ErrNotOwner
	}
	return w, nil
}

// Get returns the workout with its exercises.
func (s *Service) Get(ctx context.Context, userID string, id int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	w, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	w.Exercises, err = s.repo.ListExercises(ctx, w.ID)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return w, nil
}

func (s *Service) List(ctx context.Context, userID string, params ListParams) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if params.Limit <= 0 {
		params.Limit = DefaultListLimit
	}
	if params.Limit > MaxListLimit {
		params.Limit = MaxListLimit
	}

	list, err := s.repo.List(ctx, userID, params)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	if !params.WithExercises || len(list) == 0 {
		return list, nil
	}

	ids := make([]int, 0, len(list))
	for _, w := range list {
		ids = append(ids, w.ID)
	}
	exercises, err := s.repo.ListExercises(ctx, ids...)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}

	byWorkout := make(map[int][]Exercise, len(list))
	for _, e := range exercises {
		byWorkout[e.WorkoutID] = append(byWorkout[e.WorkoutID], e)
	}
	for i := range list {
		list[i].Exercises = byWorkout[list[i].ID]
		if list[i].Exercises == nil {
			list[i].Exercises = []Exercise{}
		}
	}

	return list, nil
}

// Update applies the requested changes. Moving a workout to completed stamps
// completedAt, keeps the client declared duration and recomputes the total
// volume from the stored sets.
func (s *Service) Update(ctx context.Context, userID string, id int, req UpdateWorkoutRequest) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.update")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	w, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		w.Name = *req.Name
	}
	if req.Notes != nil {
		w.Notes = req.Notes
	}
	if req.Duration != nil {
		w.Duration = req.Duration
	}

	finishing := false
	if req.Status != nil && *req.Status != w.Status {
		w.Status = *req.Status
		switch w.Status {
		case StatusCompleted:
			now := s.nowFunc()
			w.CompletedAt = &now
			finishing = true
		case StatusInProgress:
			w.CompletedAt = nil
		}
	}

	exercises, err := s.repo.ListExercises(ctx, w.ID)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	w.TotalVolume = TotalVolume(exercises)
	if req.TotalVolume != nil && *req.TotalVolume != w.TotalVolume {
		logFn := log.Debugf
		if finishing {
			logFn = log.Warnf
		}
		logFn("workout [%d]: client volume %d differs from computed %d, keeping computed", w.ID, *req.TotalVolume, w.TotalVolume)
	}

	if err := s.repo.Update(ctx, w); err != nil {
		return nil, fmt.Errorf("update workout: %w", err)
	}
	if finishing {
		s.metricsManager.CounterWorkoutsFinished.Inc()
	}

	w.Exercises = exercises
	return w, nil
}

func (s *Service) Delete(ctx context.Context, userID string, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if _, err := s.getOwned(ctx, userID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	return nil
}

func (s *Service) AddExercise(ctx context.Context, userID string, workoutID int, req ExerciseRequest) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.exercises.add")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	w, err := s.getOwned(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}

	sets := req.Sets
	if sets == nil {
		sets = []Set{}
	}
	added, err := s.repo.AddExercise(ctx, Exercise{
		WorkoutID: w.ID,
		Name:      req.Name,
		Sets:      sets,
		Order:     req.Order,
	})
	if err != nil {
		return nil, fmt.Errorf("add exercise: %w", err)
	}

	s.refreshVolume(ctx, w)
	return added, nil
}

// ownedExercise checks that the exercise exists and belongs to the caller's workout.
func (s *Service) ownedExercise(ctx context.Context, userID string, workoutID, exerciseID int) (*Workout, *Exercise, error) {
	w, err := s.getOwned(ctx, userID, workoutID)
	if err != nil {
		return nil, nil, err
	}
	e, err := s.repo.GetExercise(ctx, exerciseID)
	if err != nil {
		return nil, nil, err
	}
	if e.WorkoutID != w.ID {
		return nil, nil, ErrExerciseNotFound
	}
	return w, e, nil
}

func (s *Service) UpdateExercise(ctx context.Context, userID string, workoutID, exerciseID int, req UpdateExerciseRequest) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.exercises.update")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	w, e, err := s.ownedExercise(ctx, userID, workoutID, exerciseID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Sets != nil {
		e.Sets = req.Sets
	}
	if req.Order != nil {
		e.Order = *req.Order
	}

	if err := s.repo.UpdateExercise(ctx, e); err != nil {
		return nil, fmt.Errorf("update exercise: %w", err)
	}

	s.refreshVolume(ctx, w)
	return e, nil
}

func (s *Service) DeleteExercise(ctx context.Context, userID string, workoutID, exerciseID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.exercises.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	w, _, err := s.ownedExercise(ctx, userID, workoutID, exerciseID)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteExercise(ctx, exerciseID); err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}

	s.refreshVolume(ctx, w)
	return nil
}

// refreshVolume keeps the stored volume of a completed workout in line with
// its sets after they were edited. Failures are only logged.
func (s *Service) refreshVolume(ctx context.Context, w *Workout) {
	if !w.IsCompleted() {
		return
	}
	exercises, err := s.repo.ListExercises(ctx, w.ID)
	if err != nil {
		log.Errorf("refresh volume of workout [%d], list exercises: %s", w.ID, err)
		return
	}
	if err := s.repo.UpdateVolume(ctx, w.ID, TotalVolume(exercises)); err != nil {
		log.Errorf("refresh volume of workout [%d]: %s", w.ID, err)
	}
}
