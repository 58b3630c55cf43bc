package workouts

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/calisthenix/internal/auth"
	"github.com/2beens/calisthenix/internal/telemetry/tracing"
	"github.com/2beens/calisthenix/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsService interface {
	Create(ctx context.Context, userID string, req NewWorkoutRequest, origin string) (*Workout, error)
	Get(ctx context.Context, userID string, id int) (*Workout, error)
	List(ctx context.Context, userID string, params ListParams) ([]Workout, error)
	Update(ctx context.Context, userID string, id int, req UpdateWorkoutRequest) (*Workout, error)
	Delete(ctx context.Context, userID string, id int) error
	AddExercise(ctx context.Context, userID string, workoutID int, req ExerciseRequest) (*Exercise, error)
	UpdateExercise(ctx context.Context, userID string, workoutID, exerciseID int, req UpdateExerciseRequest) (*Exercise, error)
	DeleteExercise(ctx context.Context, userID string, workoutID, exerciseID int) error
}

type Handler struct {
	service workoutsService
}

func NewHandler(service workoutsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/api/workouts", h.HandleList).Methods("GET", "OPTIONS").Name("workouts-list")
	r.HandleFunc("/api/workouts", h.HandleCreate).Methods("POST", "OPTIONS").Name("workouts-create")
	r.HandleFunc("/api/workouts/{id}", h.HandleGet).Methods("GET", "OPTIONS").Name("workouts-get")
	r.HandleFunc("/api/workouts/{id}", h.HandleUpdate).Methods("PATCH", "OPTIONS").Name("workouts-update")
	r.HandleFunc("/api/workouts/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("workouts-delete")
	r.HandleFunc("/api/workouts/{id}/exercises", h.HandleAddExercise).Methods("POST", "OPTIONS").Name("workouts-exercise-add")
	r.HandleFunc("/api/workouts/{id}/exercises/{exerciseId}", h.HandleUpdateExercise).Methods("PUT", "OPTIONS").Name("workouts-exercise-update")
	r.HandleFunc("/api/workouts/{id}/exercises/{exerciseId}", h.HandleDeleteExercise).Methods("DELETE", "OPTIONS").Name("workouts-exercise-delete")
}

// writeServiceError maps service errors to status codes. Ownership failures
// never echo the resource back.
func writeServiceError(w http.ResponseWriter, err error, op string) {
	switch {
	case pkg.IsRequestError(err):
		pkg.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrWorkoutNotFound):
		pkg.WriteErrorResponse(w, "workout not found", http.StatusNotFound)
	case errors.Is(err, ErrExerciseNotFound):
		pkg.WriteErrorResponse(w, "exercise not found", http.StatusNotFound)
	case errors.Is(err, ErrNotOwner):
		pkg.WriteErrorResponse(w, "forbidden", http.StatusForbidden)
	default:
		log.Errorf("%s: %s", op, err)
		pkg.WriteErrorResponse(w, "failed to "+op, http.StatusInternalServerError)
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	limit, err := pkg.QueryInt(r, "limit", DefaultListLimit)
	if err != nil {
		pkg.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	list, err := h.service.List(ctx, userID, ListParams{Limit: limit})
	if err != nil {
		writeServiceError(w, err, "list workouts")
		return
	}
	if list == nil {
		list = []Workout{}
	}

	pkg.WriteJSONResponseOK(w, list)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.create")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	var req NewWorkoutRequest
	if err := pkg.DecodeJSON(r.Body, &req); err != nil {
		pkg.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	workout, err := h.service.Create(ctx, userID, req, OriginEmpty)
	if err != nil {
		writeServiceError(w, err, "create workout")
		return
	}

	log.Debugf("workout [%d] created for user [%s]", workout.ID, userID)
	pkg.WriteJSON(w, workout, http.StatusCreated)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	id, err := pkg.PathIntVar(r, "id")
	if err != nil {
		pkg.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	workout, err := h.service.Get(ctx, userID, id)
	if err != nil {
		writeServiceError(w, err, "get workout")
		return
	}

	pkg.WriteJSONResponseOK(w, workout)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.update")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	id, err := pkg.PathIntVar(r, "id")
	if err != nil {
		pkg.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req UpdateWorkoutRequest
	if err := pkg.DecodeJSON(r.Body, &req); err != nil {
		pkg.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	workout, err := h.service.Update(ctx, userID, id, req)
	if err != nil {
		writeServiceError(w, err, "update workout")
		return
	}

	pkg.WriteJSONResponseOK(w, workout)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	id, err := pkg.PathIntVar(r, "id")
	if err != nil {
		pkg.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(ctx, userID, id); err != nil {
		writeServiceError(w, err, "delete workout")
		return
	}

	log.Debugf("workout [%d] deleted by user [%s]", id, userID)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.exercises.add")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	workoutID, err := pkg.PathIntVar(r, "id")
	if err != nil {
		pkg.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req ExerciseRequest
	if err := pkg.DecodeJSON(r.Body, &req); err != nil {
		pkg.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	exercise, err := h.service.AddExercise(ctx, userID, workoutID, req)
	if err != nil {
		writeServiceError(w, err, "add exercise")
		return
	}

	pkg.WriteJSON(w, exercise, http.StatusCreated)
}

func (h *Handler) HandleUpdateExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.exercises.update")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	workoutID, err := pkg.PathIntVar(r, "id")
	if err != nil {
		pkg.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}
	exerciseID, err := pkg.PathIntVar(r, "exerciseId")
	if err != nil {
		pkg.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req UpdateExerciseRequest
	if err := pkg.DecodeJSON(r.Body, &req); err != nil {
		pkg.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	exercise, err := h.service.UpdateExercise(ctx, userID, workoutID, exerciseID, req)
	if err != nil {
		writeServiceError(w, err, "update exercise")
		return
	}

	pkg.WriteJSONResponseOK(w, exercise)
}

func (h *Handler) HandleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.exercises.delete")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	workoutID, err := pkg.PathIntVar(r, "id")
	if err != nil {
		pkg.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}
	exerciseID, err := pkg.PathIntVar(r, "exerciseId")
	if err != nil {
		pkg.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteExercise(ctx, userID, workoutID, exerciseID); err != nil {
		writeServiceError(w, err, "delete exercise")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
