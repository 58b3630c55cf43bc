package coach

import (
	"context"
	"errors"
)

var (
	ErrNotConfigured = errors.New("coach model not configured")
	ErrEmptyReply    = errors.New("coach model returned an empty reply")
)

const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Turn is one message of a coach conversation.
type Turn struct {
	Role    string `json:"role" validate:"required,oneof=user model"`
	Content string `json:"content" validate:"required,max=8000"`
}

// Prompt is everything sent to the model in one call. System carries the
// instructions and the training digest; Turns end with the newest user message.
type Prompt struct {
	System string
	Turns  []Turn
	// JSON asks the model for an application/json response.
	JSON bool
}

// Model generates a text reply for a prompt. Implementations make a single
// call to the provider and do not retry.
type Model interface {
	Generate(ctx context.Context, prompt Prompt) (string, error)
}
