package evaluator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"naplan-prep/internal/config"
	"naplan-prep/internal/domain"
	"naplan-prep/internal/feedback"
	"naplan-prep/internal/logger"
	"naplan-prep/internal/port"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

const (
	ProviderOllama   = "ollama"
	ProviderGoogleAI = "googleai"
	ProviderOpenAI   = "openai"
)

// NewModel builds the chat model selected by cfg.Provider.
func NewModel(ctx context.Context, cfg config.LLMConfig) (llms.Model, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("llm model name cannot be empty")
	}
	switch cfg.Provider {
	case ProviderOllama:
		if cfg.ServerURL == "" {
			return nil, fmt.Errorf("ollama server URL cannot be empty")
		}
		return ollama.New(ollama.WithModel(cfg.Model), ollama.WithServerURL(cfg.ServerURL))
	case ProviderGoogleAI:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("googleai API key cannot be empty")
		}
		return googleai.New(ctx, googleai.WithAPIKey(cfg.APIKey), googleai.WithDefaultModel(cfg.Model))
	case ProviderOpenAI:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("openai API key cannot be empty")
		}
		opts := []openai.Option{openai.WithToken(cfg.APIKey), openai.WithModel(cfg.Model)}
		if cfg.ServerURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.ServerURL))
		}
		return openai.New(opts...)
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.Provider)
	}
}

// coachAttempts is how many times a subject coaching call is tried.
const coachAttempts = 2

var (
	_ port.WritingAssessor = (*LLMEvaluator)(nil)
	_ port.SubjectCoach    = (*LLMEvaluator)(nil)
)

// LLMEvaluator implements port.WritingAssessor and port.SubjectCoach on a
// langchaingo model.
type LLMEvaluator struct {
	model   llms.Model
	timeout time.Duration
}

// NewLLMEvaluator creates a new instance of LLMEvaluator
func NewLLMEvaluator(model llms.Model, timeout time.Duration) *LLMEvaluator {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &LLMEvaluator{model: model, timeout: timeout}
}

// Assess implements port.WritingAssessor
func (e *LLMEvaluator) Assess(ctx context.Context, req feedback.Request, textType feedback.TextType) (*feedback.RawAssessment, error) {
	l := logger.Get()

	prompt := feedback.BuildPrompt(
		req.YearLevel,
		textType,
		feedback.SanitizeText(req.WritingPrompt, 4000),
		feedback.SanitizeText(req.Writing, 0),
	)

	raw, err := e.callLLM(ctx, prompt)
	if err != nil {
		return nil, domain.NewLLMServiceError(err)
	}
	l.Debug("Raw LLM response received", zap.Int("length", len(raw)))

	doc, err := feedback.ExtractJSON(stripThinking(raw))
	if err != nil {
		l.Error("Could not find a JSON object in LLM response", zap.Error(err), zap.String("prefix", head(raw, 200)))
		return nil, domain.NewLLMServiceError(err)
	}

	assessment, err := feedback.DecodeAssessment(doc)
	if err != nil {
		l.Error("LLM response failed validation", zap.Error(err))
		return nil, domain.NewLLMServiceError(err)
	}
	return assessment, nil
}

// Coach implements port.SubjectCoach. A failed call or an unusable reply is
// retried once before the last error is returned.
func (e *LLMEvaluator) Coach(ctx context.Context, analysis feedback.PerformanceAnalysis, subject string) (*feedback.RawSubjectFeedback, error) {
	l := logger.Get()
	prompt := feedback.BuildSubjectPrompt(analysis, subject)

	var lastErr error
	for attempt := 1; attempt <= coachAttempts; attempt++ {
		raw, err := e.coachOnce(ctx, prompt)
		if err == nil {
			return raw, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
		l.Warn("Subject coaching attempt failed",
			zap.Int("attempt", attempt),
			zap.String("subject", subject),
			zap.Error(err))
	}
	return nil, domain.NewLLMServiceError(fmt.Errorf("failed after %d attempts: %w", coachAttempts, lastErr))
}

func (e *LLMEvaluator) coachOnce(ctx context.Context, prompt string) (*feedback.RawSubjectFeedback, error) {
	raw, err := e.generate(ctx, prompt, 0.4)
	if err != nil {
		return nil, err
	}
	doc, err := feedback.ExtractJSON(stripThinking(raw))
	if err != nil {
		return nil, err
	}
	return feedback.DecodeSubjectFeedback(doc)
}

func (e *LLMEvaluator) callLLM(ctx context.Context, prompt string) (string, error) {
	return e.generate(ctx, prompt, 0.25)
}

func (e *LLMEvaluator) generate(ctx context.Context, prompt string, temperature float64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	response, err := llms.GenerateFromSinglePrompt(ctx, e.model, prompt,
		llms.WithTemperature(temperature),
		llms.WithJSONMode(),
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("LLM request timed out: %w", err)
		}
		return "", fmt.Errorf("LLM call failed: %w", err)
	}
	return response, nil
}

// stripThinking removes a <think>...</think> preamble emitted by reasoning models.
func stripThinking(s string) string {
	s = strings.TrimSpace(s)
	start := strings.Index(s, "<think>")
	if start == -1 {
		return s
	}
	end := strings.Index(s, "</think>")
	if end <= start {
		return s
	}
	return strings.TrimSpace(s[:start] + s[end+len("</think>"):])
}

func head(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
