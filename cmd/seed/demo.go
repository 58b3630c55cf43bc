package main

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/calisthenix/internal/journal"
	"github.com/2beens/calisthenix/internal/library"
	"github.com/2beens/calisthenix/internal/records"
	"github.com/2beens/calisthenix/internal/stats"
	"github.com/2beens/calisthenix/internal/telemetry/metrics"
	"github.com/2beens/calisthenix/internal/users"
	"github.com/2beens/calisthenix/internal/workouts"
	"github.com/2beens/calisthenix/pkg"
)

const (
	demoSetsPerExercise     = 3
	demoExercisesPerWorkout = 3
	demoRecords             = 3
	demoWorkoutHour         = 18
)

var demoFocus = map[string]string{
	library.CategoryPush: "Push Day",
	library.CategoryPull: "Pull Day",
	library.CategoryLegs: "Leg Day",
	library.CategoryCore: "Core Session",
}

type demoParams struct {
	UserID   string
	Days     int
	Seed     int64
	Location *time.Location
}

type demoSummary struct {
	Workouts       int
	JournalEntries int
	Records        int
}

type demoWorkout struct {
	Name      string
	Date      time.Time
	Duration  int
	Exercises []workouts.ExerciseRequest
}

// buildDemoPlan generates the workouts of the last days, oldest first. Today
// and yesterday always get a workout, so the demo user has a running streak.
func buildDemoPlan(faker *gofakeit.Faker, catalog []library.Entry, days int, now time.Time, loc *time.Location) []demoWorkout {
	byCategory := map[string][]library.Entry{}
	for _, e := range catalog {
		if _, ok := demoFocus[e.Category]; ok {
			byCategory[e.Category] = append(byCategory[e.Category], e)
		}
	}
	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	if len(categories) == 0 {
		return nil
	}

	today := pkg.DayStart(now, loc)
	var plan []demoWorkout
	for daysAgo := days - 1; daysAgo >= 0; daysAgo-- {
		if daysAgo > 1 && faker.Number(0, 2) == 0 {
			continue // rest day
		}

		category := categories[faker.Number(0, len(categories)-1)]
		entries := byCategory[category]
		faker.ShuffleAnySlice(entries)
		if len(entries) > demoExercisesPerWorkout {
			entries = entries[:demoExercisesPerWorkout]
		}

		w := demoWorkout{
			Name:     demoFocus[category],
			Date:     today.AddDate(0, 0, -daysAgo).Add(demoWorkoutHour * time.Hour),
			Duration: faker.Number(25, 70) * 60,
		}
		for i, e := range entries {
			sets := make([]workouts.Set, 0, demoSetsPerExercise)
			for s := 0; s < demoSetsPerExercise; s++ {
				sets = append(sets, workouts.Set{
					Reps: faker.Number(5, 15),
					// an occasional missed last set, it does not count towards the volume
					Completed: s < demoSetsPerExercise-1 || faker.Number(0, 3) > 0,
				})
			}
			w.Exercises = append(w.Exercises, workouts.ExerciseRequest{
				Name:  e.Name,
				Sets:  sets,
				Order: i,
			})
		}
		plan = append(plan, w)
	}

	return plan
}

// demoRecordsFrom picks the best completed set per exercise, for the exercises
// trained most often.
func demoRecordsFrom(plan []demoWorkout, limit int) []records.Record {
	type best struct {
		reps     int
		achieved time.Time
		count    int
	}
	bests := map[string]*best{}
	for _, w := range plan {
		for _, e := range w.Exercises {
			b, ok := bests[e.Name]
			if !ok {
				b = &best{}
				bests[e.Name] = b
			}
			b.count++
			for _, s := range e.Sets {
				if s.Completed && s.Reps > b.reps {
					b.reps = s.Reps
					b.achieved = w.Date
				}
			}
		}
	}

	names := make([]string, 0, len(bests))
	for name, b := range bests {
		if b.reps > 0 {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		if bests[names[i]].count != bests[names[j]].count {
			return bests[names[i]].count > bests[names[j]].count
		}
		return names[i] < names[j]
	})
	if len(names) > limit {
		names = names[:limit]
	}

	recs := make([]records.Record, 0, len(names))
	for _, name := range names {
		recs = append(recs, records.Record{
			ExerciseName: name,
			Value:        fmt.Sprintf("%d reps", bests[name].reps),
			AchievedAt:   bests[name].achieved,
		})
	}
	return recs
}

func seedDemoHistory(ctx context.Context, dbPool *pgxpool.Pool, params demoParams) (*demoSummary, error) {
	faker := gofakeit.New(params.Seed)

	usersRepo := users.NewRepo(dbPool)
	if _, err := usersRepo.Upsert(ctx, users.UpsertParams{
		ID:        params.UserID,
		Email:     faker.Email(),
		FirstName: faker.FirstName(),
		LastName:  faker.LastName(),
	}); err != nil {
		return nil, fmt.Errorf("upsert demo user: %w", err)
	}

	metricsManager := metrics.NewManager("calisthenix", "seed", prometheus.NewRegistry())
	statsService := stats.NewService(usersRepo, stats.NewRepo(dbPool), params.Location)
	workoutsService := workouts.NewService(workouts.NewRepo(dbPool), statsService, metricsManager)
	journalRepo := journal.NewRepo(dbPool)
	recordsRepo := records.NewRepo(dbPool)

	plan := buildDemoPlan(faker, library.SeedEntries(), params.Days, time.Now(), params.Location)
	summary := &demoSummary{}
	completed := workouts.StatusCompleted
	for _, dw := range plan {
		date := dw.Date
		w, err := workoutsService.Create(ctx, params.UserID, workouts.NewWorkoutRequest{
			Name: dw.Name,
			Date: &date,
		}, workouts.OriginEmpty)
		if err != nil {
			return summary, fmt.Errorf("create workout: %w", err)
		}
		for _, e := range dw.Exercises {
			if _, err := workoutsService.AddExercise(ctx, params.UserID, w.ID, e); err != nil {
				return summary, fmt.Errorf("add exercise to workout %d: %w", w.ID, err)
			}
		}
		duration := dw.Duration
		if _, err := workoutsService.Update(ctx, params.UserID, w.ID, workouts.UpdateWorkoutRequest{
			Duration: &duration,
			Status:   &completed,
		}); err != nil {
			return summary, fmt.Errorf("finish workout %d: %w", w.ID, err)
		}
		summary.Workouts++

		notes := faker.Sentence(8)
		if _, err := journalRepo.Add(ctx, journal.Entry{
			UserID:      params.UserID,
			Date:        dw.Date,
			EnergyLevel: faker.Number(4, 9),
			Mood:        faker.Number(4, 9),
			Notes:       &notes,
		}); err != nil {
			return summary, fmt.Errorf("add journal entry: %w", err)
		}
		summary.JournalEntries++
	}

	for _, rec := range demoRecordsFrom(plan, demoRecords) {
		rec.UserID = params.UserID
		if _, err := recordsRepo.Add(ctx, rec); err != nil {
			return summary, fmt.Errorf("add record: %w", err)
		}
		summary.Records++
	}

	log.Debugf("demo plan: %d workouts over %d days", len(plan), params.Days)
	return summary, nil
}
