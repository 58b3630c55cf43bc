package users

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

//go:generate mockgen -source=$GOFILE -destination=users_mocks_test.go -package=users_test

type usersRepo interface {
	Get(ctx context.Context, id string) (*User, error)
	UpdateProfile(ctx context.Context, id string, req UpdateProfileRequest) (*User, error)
	CountWorkouts(ctx context.Context, id string) (int, error)
}

type MeResponse struct {
	*User
	WorkoutCount int `json:"workoutCount"`
}

type Handler struct {
	repo usersRepo
}

func NewHandler(repo usersRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/api/auth/user", h.HandleGetUser).Methods("GET", "OPTIONS").Name("auth-user")
	r.HandleFunc("/api/user/profile", h.HandleGetUser).Methods("GET", "OPTIONS").Name("user-profile-get")
	r.HandleFunc("/api/user/profile", h.HandleUpdateProfile).Methods("PATCH", "OPTIONS").Name("user-profile-update")
	r.HandleFunc("/api/users/me", h.HandleMe).Methods("GET", "OPTIONS").Name("users-me")
}

func writeUserError(w http.ResponseWriter, err error, op string) {
	if errors.Is(err, ErrUserNotFound) {
		pkg.WriteErrorResponse(w, "user not found", http.StatusNotFound)
		return
	}
	log.Errorf("%s: %s", op, err)
	pkg.WriteErrorResponse(w, "failed to "+op, http.StatusInternalServerError)
}

func (h *Handler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.get")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	user, err := h.repo.Get(ctx, userID)
	if err != nil {
		writeUserError(w, err, "get user")
		return
	}

	pkg.WriteJSONResponseOK(w, user)
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.me")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	user, err := h.repo.Get(ctx, userID)
	if err != nil {
		writeUserError(w, err, "get user")
		return
	}
	count, err := h.repo.CountWorkouts(ctx, userID)
	if err != nil {
		writeUserError(w, err, "count workouts")
		return
	}

	pkg.WriteJSONResponseOK(w, MeResponse{
		User:         user,
		WorkoutCount: count,
	})
}

func (h *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.update-profile")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := pkg.DecodeJSON(r.Body, &req); err != nil {
		pkg.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.repo.UpdateProfile(ctx, userID, req)
	if err != nil {
		writeUserError(w, err, "update profile")
		return
	}

	log.Debugf("profile of user [%s] updated", userID)
	pkg.WriteJSONResponseOK(w, user)
}
