package stats

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/calisthenix/internal/auth"
	"github.com/2beens/calisthenix/internal/telemetry/tracing"
	"github.com/2beens/calisthenix/internal/users"
	"github.com/2beens/calisthenix/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=stats_test

type statsService interface {
	WeeklyVolume(ctx context.Context, userID string) ([]DayVolume, error)
	Profile(ctx context.Context, userID string) (*ProfileStats, error)
}

type Handler struct {
	service statsService
}

func NewHandler(service statsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/api/stats/profile", h.HandleProfile).Methods("GET", "OPTIONS").Name("stats-profile")
	r.HandleFunc("/api/stats/weekly-volume", h.HandleWeeklyVolume).Methods("GET", "OPTIONS").Name("stats-weekly-volume")
}

func (h *Handler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.profile")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	profile, err := h.service.Profile(ctx, userID)
	if errors.Is(err, users.ErrUserNotFound) {
		pkg.WriteErrorResponse(w, "user not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("profile stats for [%s]: %s", userID, err)
		pkg.WriteErrorResponse(w, "failed to get profile stats", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, profile)
}

func (h *Handler) HandleWeeklyVolume(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.weekly-volume")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	days, err := h.service.WeeklyVolume(ctx, userID)
	if err != nil {
		log.Errorf("weekly volume for [%s]: %s", userID, err)
		pkg.WriteErrorResponse(w, "failed to get weekly volume", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, days)
}
