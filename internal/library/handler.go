package library

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/calisthenix/internal/telemetry/tracing"
	"github.com/2beens/calisthenix/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=library_test

type libraryService interface {
	List(ctx context.Context, params ListParams) ([]Entry, error)
	GetBySlug(ctx context.Context, slug string) (*Entry, error)
}

type Handler struct {
	service libraryService
}

func NewHandler(service libraryService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/api/exercises", h.HandleList).Methods("GET", "OPTIONS").Name("exercises-list")
	r.HandleFunc("/api/exercises/{slug}", h.HandleGet).Methods("GET", "OPTIONS").Name("exercises-get")
}

func parseListParams(r *http.Request) (ListParams, error) {
	q := r.URL.Query()
	params := ListParams{
		Query:      q.Get("q"),
		Category:   q.Get("category"),
		Difficulty: q.Get("difficulty"),
	}
	if params.Category != "" && params.Category != filterAll && !IsCategory(params.Category) {
		return params, &pkg.RequestError{Field: "category", Msg: "unknown category"}
	}
	if params.Difficulty != "" && params.Difficulty != filterAll && !IsDifficulty(params.Difficulty) {
		return params, &pkg.RequestError{Field: "difficulty", Msg: "unknown difficulty"}
	}

	var err error
	if params.Limit, err = pkg.QueryInt(r, "limit", DefaultListLimit); err != nil {
		return params, err
	}
	if params.Offset, err = pkg.QueryInt(r, "offset", 0); err != nil {
		return params, err
	}
	return params, nil
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.library.list")
	defer span.End()

	params, err := parseListParams(r)
	if err != nil {
		pkg.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	entries, err := h.service.List(ctx, params)
	if err != nil {
		log.Errorf("list exercises: %s", err)
		pkg.WriteErrorResponse(w, "failed to list exercises", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []Entry{}
	}

	pkg.WriteJSONResponseOK(w, entries)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.library.get")
	defer span.End()

	slug := mux.Vars(r)["slug"]
	e, err := h.service.GetBySlug(ctx, slug)
	if errors.Is(err, ErrExerciseNotFound) {
		pkg.WriteErrorResponse(w, "exercise not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("get exercise [%s]: %s", slug, err)
		pkg.WriteErrorResponse(w, "failed to get exercise", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, e)
}
