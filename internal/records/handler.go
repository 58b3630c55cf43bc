package records

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/calisthenix/internal/auth"
	"github.com/2beens/calisthenix/internal/telemetry/tracing"
	"github.com/2beens/calisthenix/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=records_mocks_test.go -package=records_test

type recordsRepo interface {
	ListRecent(ctx context.Context, userID string, limit int) ([]Record, error)
	Add(ctx context.Context, rec Record) (*Record, error)
}

type Handler struct {
	repo    recordsRepo
	nowFunc func() time.Time
}

func NewHandler(repo recordsRepo) *Handler {
	return &Handler{
		repo:    repo,
		nowFunc: time.Now,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/api/records", h.HandleList).Methods("GET", "OPTIONS").Name("records-list")
	r.HandleFunc("/api/records", h.HandleAdd).Methods("POST", "OPTIONS").Name("records-add")
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.list")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	records, err := h.repo.ListRecent(ctx, userID, RecentLimit)
	if err != nil {
		log.Errorf("list records of [%s]: %s", userID, err)
		pkg.WriteErrorResponse(w, "failed to list records", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, records)
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.add")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	var req NewRecordRequest
	if err := pkg.DecodeJSON(r.Body, &req); err != nil {
		pkg.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	achievedAt := h.nowFunc()
	if req.AchievedAt != nil {
		achievedAt = *req.AchievedAt
	}
	added, err := h.repo.Add(ctx, Record{
		UserID:       userID,
		ExerciseName: req.ExerciseName,
		Value:        req.Value,
		AchievedAt:   achievedAt,
	})
	if err != nil {
		log.Errorf("add record for [%s]: %s", userID, err)
		pkg.WriteErrorResponse(w, "failed to add record", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, added, http.StatusCreated)
}
