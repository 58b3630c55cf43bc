package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/calisthenix/internal/telemetry/tracing"
	"github.com/2beens/calisthenix/internal/users"
	"github.com/2beens/calisthenix/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=stats_test

const WeekDays = 7

type usersRepo interface {
	Get(ctx context.Context, id string) (*users.User, error)
	UpdateStreak(ctx context.Context, id string, streak int, lastWorkoutDate time.Time) error
}

type statsRepo interface {
	WorkoutVolumes(ctx context.Context, userID string, from, to time.Time) ([]WorkoutVolume, error)
	Totals(ctx context.Context, userID string) (*Totals, error)
}

type DayVolume struct {
	Day    string `json:"day"`
	Date   string `json:"date"`
	Volume int    `json:"volume"`
}

type ProfileStats struct {
	Streak               int        `json:"streak"`
	CurrentStreak        int        `json:"currentStreak"`
	LastWorkoutDate      *time.Time `json:"lastWorkoutDate"`
	WorkoutCount         int        `json:"workoutCount"`
	CompletedWorkouts    int        `json:"completedWorkouts"`
	TotalVolume          int        `json:"totalVolume"`
	TotalDurationSeconds int        `json:"totalDurationSeconds"`
	CurrentLevel         int        `json:"currentLevel"`
	LevelProgress        int        `json:"levelProgress"`
}

type Service struct {
	users   usersRepo
	repo    statsRepo
	loc     *time.Location
	nowFunc func() time.Time
}

func NewService(users usersRepo, repo statsRepo, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		users:   users,
		repo:    repo,
		loc:     loc,
		nowFunc: time.Now,
	}
}

func (s *Service) SetNowFunc(nowFunc func() time.Time) {
	s.nowFunc = nowFunc
}

// RecordWorkout advances the user's streak for a workout logged on date.
// It is not transactional with the workout insert.
func (s *Service) RecordWorkout(ctx context.Context, userID string, date time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.stats.record-workout")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}

	streak, lastDate := NextStreak(user.Streak, user.LastWorkoutDate, date, s.loc)
	if user.LastWorkoutDate != nil && streak == user.Streak && lastDate.Equal(*user.LastWorkoutDate) {
		log.Debugf("user [%s] streak unchanged: %d", userID, streak)
		return nil
	}

	if err := s.users.UpdateStreak(ctx, userID, streak, lastDate); err != nil {
		return fmt.Errorf("update streak: %w", err)
	}

	log.Debugf("user [%s] streak: %d -> %d", userID, user.Streak, streak)
	return nil
}

// WeeklyVolume returns seven daily volume buckets, oldest first, ending today.
func (s *Service) WeeklyVolume(ctx context.Context, userID string) (_ []DayVolume, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.stats.weekly-volume")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	today := pkg.DayStart(s.nowFunc(), s.loc)
	from := today.AddDate(0, 0, -(WeekDays - 1))
	to := today.AddDate(0, 0, 1)

	volumes, err := s.repo.WorkoutVolumes(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("workout volumes: %w", err)
	}

	days := make([]DayVolume, WeekDays)
	for i := range days {
		d := from.AddDate(0, 0, i)
		days[i] = DayVolume{
			Day:  d.Weekday().String()[:3],
			Date: d.Format(time.DateOnly),
		}
	}
	for _, v := range volumes {
		i := pkg.CalendarDaysBetween(from, v.Date, s.loc)
		if i < 0 || i >= WeekDays {
			continue
		}
		days[i].Volume += v.Volume
	}

	return days, nil
}

func (s *Service) Profile(ctx context.Context, userID string) (_ *ProfileStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.stats.profile")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	totals, err := s.repo.Totals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("totals: %w", err)
	}

	return &ProfileStats{
		Streak:               user.Streak,
		CurrentStreak:        CurrentStreak(user.Streak, user.LastWorkoutDate, s.nowFunc(), s.loc),
		LastWorkoutDate:      user.LastWorkoutDate,
		WorkoutCount:         totals.WorkoutCount,
		CompletedWorkouts:    totals.CompletedWorkouts,
		TotalVolume:          totals.TotalVolume,
		TotalDurationSeconds: totals.TotalDurationSeconds,
		CurrentLevel:         user.CurrentLevel,
		LevelProgress:        user.LevelProgress,
	}, nil
}
