package templates

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/calisthenix/internal/auth"
	"github.com/2beens/calisthenix/internal/telemetry/tracing"
	"github.com/2beens/calisthenix/internal/workouts"
	"github.com/2beens/calisthenix/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=templates_test

type templatesService interface {
	List(ctx context.Context, userID string, filter ListFilter) ([]ListItem, error)
	Get(ctx context.Context, userID, id string) (*Template, error)
	Create(ctx context.Context, userID string, req TemplateRequest) (*Template, error)
	Update(ctx context.Context, userID, id string, req TemplateRequest) (*Template, error)
	Delete(ctx context.Context, userID, id string) error
	Duplicate(ctx context.Context, userID, id string) (*ListItem, error)
	Start(ctx context.Context, userID, id string) (*workouts.Workout, error)
}

type Handler struct {
	service templatesService
}

func NewHandler(service templatesService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/api/workout-templates", h.HandleList).Methods("GET", "OPTIONS").Name("templates-list")
	r.HandleFunc("/api/workout-templates", h.HandleCreate).Methods("POST", "OPTIONS").Name("templates-create")
	r.HandleFunc("/api/workout-templates/{id}", h.HandleGet).Methods("GET", "OPTIONS").Name("templates-get")
	r.HandleFunc("/api/workout-templates/{id}", h.HandleUpdate).Methods("PUT", "OPTIONS").Name("templates-update")
	r.HandleFunc("/api/workout-templates/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("templates-delete")
	r.HandleFunc("/api/workout-templates/{id}/duplicate", h.HandleDuplicate).Methods("POST", "OPTIONS").Name("templates-duplicate")
	r.HandleFunc("/api/workout-templates/{id}/start", h.HandleStart).Methods("POST", "OPTIONS").Name("templates-start")
}

func templateID(r *http.Request) (string, error) {
	id := mux.Vars(r)["id"]
	if _, err := uuid.Parse(id); err != nil {
		return "", &pkg.RequestError{Field: "id", Msg: "must be a valid UUID"}
	}
	return id, nil
}

func writeServiceError(w http.ResponseWriter, err error, op string) {
	switch {
	case pkg.IsRequestError(err):
		pkg.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrInvalidExerciseReference):
		pkg.WriteErrorResponse(w, ErrInvalidExerciseReference.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrTemplateNotFound):
		pkg.WriteErrorResponse(w, "template not found", http.StatusNotFound)
	case errors.Is(err, ErrNotOwner):
		pkg.WriteErrorResponse(w, "forbidden", http.StatusForbidden)
	default:
		log.Errorf("%s: %s", op, err)
		pkg.WriteErrorResponse(w, "failed to "+op, http.StatusInternalServerError)
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.list")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	items, err := h.service.List(ctx, userID, ListFilter{
		Difficulty: q.Get("difficulty"),
		Category:   q.Get("category"),
	})
	if err != nil {
		writeServiceError(w, err, "list templates")
		return
	}
	if items == nil {
		items = []ListItem{}
	}

	pkg.WriteJSONResponseOK(w, items)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.get")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	id, err := templateID(r)
	if err != nil {
		writeServiceError(w, err, "get template")
		return
	}

	t, err := h.service.Get(ctx, userID, id)
	if err != nil {
		writeServiceError(w, err, "get template")
		return
	}

	pkg.WriteJSONResponseOK(w, t)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.create")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	var req TemplateRequest
	if err := pkg.DecodeJSON(r.Body, &req); err != nil {
		writeServiceError(w, err, "create template")
		return
	}

	t, err := h.service.Create(ctx, userID, req)
	if err != nil {
		writeServiceError(w, err, "create template")
		return
	}

	pkg.WriteJSON(w, t, http.StatusCreated)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.update")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	id, err := templateID(r)
	if err != nil {
		writeServiceError(w, err, "update template")
		return
	}

	var req TemplateRequest
	if err := pkg.DecodeJSON(r.Body, &req); err != nil {
		writeServiceError(w, err, "update template")
		return
	}

	t, err := h.service.Update(ctx, userID, id, req)
	if err != nil {
		writeServiceError(w, err, "update template")
		return
	}

	pkg.WriteJSONResponseOK(w, t)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.delete")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	id, err := templateID(r)
	if err != nil {
		writeServiceError(w, err, "delete template")
		return
	}

	if err := h.service.Delete(ctx, userID, id); err != nil {
		writeServiceError(w, err, "delete template")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleDuplicate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.duplicate")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	id, err := templateID(r)
	if err != nil {
		writeServiceError(w, err, "duplicate template")
		return
	}

	item, err := h.service.Duplicate(ctx, userID, id)
	if err != nil {
		writeServiceError(w, err, "duplicate template")
		return
	}

	pkg.WriteJSON(w, item, http.StatusCreated)
}

func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.templates.start")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}
	id, err := templateID(r)
	if err != nil {
		writeServiceError(w, err, "start workout from template")
		return
	}

	workout, err := h.service.Start(ctx, userID, id)
	if err != nil {
		writeServiceError(w, err, "start workout from template")
		return
	}

	log.Debugf("workout [%d] started from template [%s] by [%s]", workout.ID, id, userID)
	pkg.WriteJSON(w, workout, http.StatusCreated)
}
