package coach

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=coach_test

type coachService interface {
	Chat(ctx context.Context, userID string, req ChatRequest) (*ChatResponse, error)
	Suggestions(ctx context.Context, userID string) ([]string, error)
	GenerateTemplate(ctx context.Context, userID string, req GenerateTemplateRequest) (*GeneratedTemplate, error)
}

const notConfiguredMessage = "coach is not configured, set GEMINI_API_KEY"

type Handler struct {
	service coachService
}

func NewHandler(service coachService) *Handler {
	return &Handler{
		service: service,
	}
}

// SetupRoutes registers the coach routes on r. The server mounts them on a
// rate limited subrouter.
func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/api/coach/chat", h.HandleChat).Methods("POST", "OPTIONS").Name("coach-chat")
	r.HandleFunc("/api/coach/suggestions", h.HandleSuggestions).Methods("GET", "OPTIONS").Name("coach-suggestions")
	r.HandleFunc("/api/coach/generate-template", h.HandleGenerateTemplate).Methods("POST", "OPTIONS").Name("coach-generate-template")
}

func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.chat")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	var req ChatRequest
	if err := pkg.DecodeJSON(r.Body, &req); err != nil {
		pkg.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := h.service.Chat(ctx, userID, req)
	switch {
	case err == nil:
		pkg.WriteJSONResponseOK(w, resp)
	case errors.Is(err, ErrNotConfigured):
		pkg.WriteErrorResponse(w, notConfiguredMessage, http.StatusServiceUnavailable)
	default:
		log.Errorf("coach chat for [%s]: %s", userID, err)
		pkg.WriteErrorResponse(w, "failed to process chat message", http.StatusInternalServerError)
	}
}

func (h *Handler) HandleSuggestions(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.suggestions")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	suggestions, err := h.service.Suggestions(ctx, userID)
	if err != nil {
		log.Errorf("coach suggestions for [%s]: %s", userID, err)
		pkg.WriteErrorResponse(w, "failed to get suggestions", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, map[string][]string{"suggestions": suggestions})
}

func (h *Handler) HandleGenerateTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.coach.generate-template")
	defer span.End()

	userID, ok := auth.RequireUserID(w, r)
	if !ok {
		return
	}

	var req GenerateTemplateRequest
	if err := pkg.DecodeJSON(r.Body, &req); err != nil {
		pkg.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	generated, err := h.service.GenerateTemplate(ctx, userID, req)
	switch {
	case err == nil:
		pkg.WriteJSON(w, generated, http.StatusCreated)
	case errors.Is(err, ErrNotConfigured):
		pkg.WriteErrorResponse(w, notConfiguredMessage, http.StatusServiceUnavailable)
	case errors.Is(err, ErrInvalidModelOutput), errors.Is(err, ErrNoResolvableExercises), errors.Is(err, ErrEmptyReply):
		log.Warnf("coach template for [%s]: %s", userID, err)
		pkg.WriteErrorResponse(w, "coach could not produce a usable template, try rephrasing the goal", http.StatusBadGateway)
	default:
		log.Errorf("coach template for [%s]: %s", userID, err)
		pkg.WriteErrorResponse(w, "failed to generate template", http.StatusInternalServerError)
	}
}
