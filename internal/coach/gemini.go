package coach

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/calisthenix/internal/telemetry/tracing"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/genai"
)

const (
	DefaultGeminiModel = "gemini-2.5-flash-lite"

	geminiTemperature     float32 = 0.7
	geminiTopP            float32 = 0.95
	geminiTopK            float32 = 40
	geminiMaxOutputTokens int32   = 1024
	geminiTimeout                 = 60 * time.Second
)

type GeminiParams struct {
	APIKey    string
	ModelName string
	// Endpoint overrides the provider base URL, empty means the public API.
	Endpoint string
}

// GeminiModel talks to the Gemini generateContent endpoint.
type GeminiModel struct {
	client    *genai.Client
	modelName string
}

func NewGeminiModel(ctx context.Context, params GeminiParams) (*GeminiModel, error) {
	if params.APIKey == "" {
		return nil, ErrNotConfigured
	}
	modelName := params.ModelName
	if modelName == "" {
		modelName = DefaultGeminiModel
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  params.APIKey,
		Backend: genai.BackendGeminiAPI,
		HTTPClient: &http.Client{
			Timeout:   geminiTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	if params.Endpoint != "" {
		clientConfig.HTTPOptions.BaseURL = params.Endpoint
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiModel{
		client:    client,
		modelName: modelName,
	}, nil
}

func (m *GeminiModel) Generate(ctx context.Context, prompt Prompt) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "coach.gemini.generate")
	span.SetAttributes(attribute.String("model", m.modelName))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	contents := make([]*genai.Content, 0, len(prompt.Turns))
	for _, t := range prompt.Turns {
		role := RoleUser
		if t.Role == RoleModel {
			role = RoleModel
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: t.Content}},
		})
	}

	temperature, topP, topK := geminiTemperature, geminiTopP, geminiTopK
	genConfig := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		TopP:            &topP,
		TopK:            &topK,
		MaxOutputTokens: geminiMaxOutputTokens,
	}
	if prompt.JSON {
		genConfig.ResponseMIMEType = "application/json"
	}
	if prompt.System != "" {
		genConfig.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: prompt.System}},
		}
	}

	resp, err := m.client.Models.GenerateContent(ctx, m.modelName, contents, genConfig)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	reply := replyText(resp)
	if reply == "" {
		return "", ErrEmptyReply
	}
	return reply, nil
}

// replyText joins the text parts of the first candidate.
func replyText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return ""
	}
	content := resp.Candidates[0].Content
	if content == nil {
		return ""
	}
	var b strings.Builder
	for _, p := range content.Parts {
		if p != nil {
			b.WriteString(p.Text)
		}
	}
	return strings.TrimSpace(b.String())
}
