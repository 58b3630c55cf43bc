package journal

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/calisthenix/internal/auth"
	"github.com/2beens/calisthenix/internal/telemetry/tracing"
	"github.com/2beens/calisthenix/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=journal_mocks_test.go -package=journal_test

type journalRepo interface {
	List(ctx context.Context, userID string, limit int) ([]Entry, error)
	ListBetween(ctx context.Context, userID string, from, to time.Time) ([]Entry, error)
	Get(ctx context.Context, id int) (*Entry, error)
	Add(ctx context.Context, e Entry) (*Entry, error)
	Update(ctx context.Context, e *Entry) error
}

type Handler struct {
	repo    journalRepo
	loc     *time.Location
	nowFunc func() time.Time
}

func NewHandler(repo journalRepo, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		repo:    repo,
		loc:     loc,
		nowFunc: time.Now,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/api/journal", h.HandleList).Methods("GET", "OPTIONS").Name("journal-list")
	r.HandleFunc("/api/journal", h.HandleAdd).Methods("POST", "OPTIONS").Name("journal-add")
	r.HandleFunc("/api/journal/by-date", h.HandleByDate).Methods("GET", "OPTIONS").Name("journal-by-date")
	r.HandleFunc("/api/journal/{id}", h.HandleUpdate).Methods("PATCH", "OPTIONS").Name("journal-update")
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.journal.list")
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
	if limit <= 0 || limit > MaxListLimit {
		limit = DefaultListLimit
	}

	entries, err := h.repo.List(ctx, userID, limit)
	if err != nil {
		log.Errorf("list journal entries of [%s]: %s", userID, err)
		pkg.WriteErrorResponse(w, "failed to list journal entries", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, entries)
}

func (h *Handler) HandleByDate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.journal.by-date")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	day := pkg.DayStart(h.nowFunc(), h.loc)
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.ParseInLocation(time.DateOnly, raw, h.loc)
		if err != nil {
			pkg.WriteErrorResponse(w, "invalid field date: expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		day = parsed
	}

	entries, err := h.repo.ListBetween(ctx, userID, day, day.AddDate(0, 0, 1))
	if err != nil {
		log.Errorf("journal entries of [%s] on %s: %s", userID, day.Format(time.DateOnly), err)
		pkg.WriteErrorResponse(w, "failed to list journal entries", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, entries)
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.journal.add")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	var req NewEntryRequest
	if err := pkg.DecodeJSON(r.Body, &req); err != nil {
		pkg.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	date := h.nowFunc()
	if req.Date != nil {
		date = *req.Date
	}
	added, err := h.repo.Add(ctx, Entry{
		UserID:      userID,
		Date:        date,
		EnergyLevel: req.EnergyLevel,
		Mood:        req.Mood,
		Notes:       req.Notes,
		PhotoURL:    req.PhotoURL,
	})
	if err != nil {
		log.Errorf("add journal entry for [%s]: %s", userID, err)
		pkg.WriteErrorResponse(w, "failed to add journal entry", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.journal.update")
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

	var req UpdateEntryRequest
	if err := pkg.DecodeJSON(r.Body, &req); err != nil {
		pkg.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	entry, err := h.repo.Get(ctx, id)
	if err == nil && entry.UserID != userID {
		err = ErrNotOwner
	}
	if err == nil {
		req.apply(entry)
		err = h.repo.Update(ctx, entry)
	}

	switch {
	case err == nil:
		pkg.WriteJSONResponseOK(w, entry)
	case errors.Is(err, ErrEntryNotFound):
		pkg.WriteErrorResponse(w, "journal entry not found", http.StatusNotFound)
	case errors.Is(err, ErrNotOwner):
		pkg.WriteErrorResponse(w, "forbidden", http.StatusForbidden)
	default:
		log.Errorf("update journal entry %d: %s", id, err)
		pkg.WriteErrorResponse(w, "failed to update journal entry", http.StatusInternalServerError)
	}
}
