package acl

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/jsamuelsen/disaster-response/internal/adapters/clients"
	"github.com/jsamuelsen/disaster-response/internal/domain"
	"github.com/jsamuelsen/disaster-response/internal/platform/logging"
)

const (
	// GeminiKeyHeader carries the API key on every generateContent call.
	GeminiKeyHeader = "x-goog-api-key"

	geminiAnswerPath = "$.candidates[0].content.parts[0].text"
)

// GeminiAuth returns a clients.Config AuthFunc that sets the API key header.
func GeminiAuth(apiKey string) func(*http.Request) {
	return func(r *http.Request) {
		if apiKey != "" {
			r.Header.Set(GeminiKeyHeader, apiKey)
		}
	}
}

// GeminiAdapter implements ports.LocationExtractor and ports.ImageAnalyzer
// over the Gemini generateContent API.
type GeminiAdapter struct {
	BaseAdapter
	model  string
	logger *slog.Logger
}

// NewGeminiAdapter creates a Gemini adapter. The client's BaseURL should be
// the Generative Language API root.
func NewGeminiAdapter(client *clients.Client, model string, logger *slog.Logger) *GeminiAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &GeminiAdapter{
		BaseAdapter: NewBaseAdapter(client),
		model:       model,
		logger:      logger.With(slog.String("component", "acl.GeminiAdapter")),
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"`
}

// ExtractLocation asks the model for the place named in description.
// Implements ports.LocationExtractor.
func (a *GeminiAdapter) ExtractLocation(ctx context.Context, description string) (string, error) {
	req := geminiRequest{Contents: []geminiContent{{
		Parts: []geminiPart{{Text: fmt.Sprintf(domain.LocationExtractionPrompt, description)}},
	}}}

	answer, err := a.generate(ctx, req, "extract location")
	if err != nil {
		return "", err
	}

	name := domain.CleanLocationName(answer)
	if name == "" {
		return "", domain.NewValidationError("description", "no location could be extracted")
	}

	a.logger.DebugContext(ctx, "location extracted", slog.String("location_name", name))
	return name, nil
}

// AnalyzeImage sends img inline with the verification prompt.
// Implements ports.ImageAnalyzer.
func (a *GeminiAdapter) AnalyzeImage(ctx context.Context, img *domain.Image) (*domain.ImageAssessment, error) {
	mime := img.MIMEType
	if mime == "" {
		mime = domain.DefaultImageMIMEType
	}

	req := geminiRequest{Contents: []geminiContent{{
		Parts: []geminiPart{
			{Text: domain.ImageVerificationPrompt},
			{InlineData: &geminiInlineData{
				MIMEType: mime,
				Data:     base64.StdEncoding.EncodeToString(img.Data),
			}},
		},
	}}}

	answer, err := a.generate(ctx, req, "analyze image")
	if err != nil {
		return nil, err
	}

	return &domain.ImageAssessment{Text: strings.TrimSpace(answer)}, nil
}

func (a *GeminiAdapter) generate(ctx context.Context, req geminiRequest, operation string) (string, error) {
	path := "/v1beta/models/" + url.PathEscape(a.model) + ":generateContent"

	body, err := a.PostJSON(ctx, path, req, operation)
	if err != nil {
		return "", err
	}
	defer func() { _ = body.Close() }()

	raw, err := io.ReadAll(body)
	if err != nil {
		return "", domain.NewUnavailableError(a.ServiceName(), "reading response: "+err.Error())
	}

	a.logger.Log(ctx, logging.LevelTrace, "gemini response", slog.Int("bytes", len(raw)))

	return a.answerText(raw)
}

// answerText pulls the first candidate's text out of a generateContent
// response.
func (a *GeminiAdapter) answerText(raw []byte) (string, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return "", domain.NewUnavailableError(a.ServiceName(), "decoding response: "+err.Error())
	}

	val, err := jsonpath.Get(geminiAnswerPath, doc)
	if err != nil {
		if reason := blockReason(doc); reason != "" {
			return "", domain.NewUnavailableError(a.ServiceName(), "prompt blocked: "+reason)
		}
		return "", domain.NewUnavailableError(a.ServiceName(), "response has no candidate text")
	}

	text, ok := val.(string)
	if !ok {
		return "", domain.NewUnavailableError(a.ServiceName(), fmt.Sprintf("candidate text is %T", val))
	}

	return text, nil
}

func blockReason(doc any) string {
	val, err := jsonpath.Get("$.promptFeedback.blockReason", doc)
	if err != nil {
		return ""
	}
	s, _ := val.(string)
	return s
}
