package flexiquiz

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"naplan-prep/internal/config"
	"naplan-prep/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// SourceName tags quizzes fetched from FlexiQuiz.
const SourceName = "flexiquiz"

const maxAttempts = 3

// quizDTO is one entry of GET /api/v1/quizzes.
type quizDTO struct {
	QuizID      string `json:"quiz_id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	DateCreated string `json:"date_created"`
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Client lists quizzes from the FlexiQuiz REST API. It implements domain.QuizSource.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	limiter *rate.Limiter
	logger  *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client (for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(fc *Client) {
		fc.client = c
	}
}

// NewClient creates a FlexiQuiz client from config.
func NewClient(cfg config.FlexiQuizConfig, logger *zap.Logger, opts ...Option) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("flexiquiz API key is required")
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("flexiquiz base URL is required")
	}
	perSec := cfg.RatePerSec
	if perSec <= 0 {
		perSec = 1
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(perSec), 1),
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Name implements domain.QuizSource
func (c *Client) Name() string {
	return SourceName
}

// FetchQuizzes implements domain.QuizSource. Rate limited and server errors
// are retried up to three times.
func (c *Client) FetchQuizzes(ctx context.Context) ([]domain.SourceQuiz, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, domain.NewSourceUnavailableError(SourceName, err)
		}

		quizzes, retry, err := c.fetchOnce(ctx)
		if err == nil {
			c.logger.Info("Fetched quizzes from FlexiQuiz", zap.Int("count", len(quizzes)))
			return quizzes, nil
		}
		lastErr = err
		if !retry {
			break
		}
		c.logger.Warn("FlexiQuiz request failed, retrying", zap.Int("attempt", attempt), zap.Error(err))
	}
	return nil, domain.NewSourceUnavailableError(SourceName, lastErr)
}

func (c *Client) fetchOnce(ctx context.Context) ([]domain.SourceQuiz, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/quizzes", nil)
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-API-KEY", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, ctx.Err() == nil, fmt.Errorf("flexiquiz API call: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		retry := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
		return nil, retry, fmt.Errorf("flexiquiz API error %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var dtos []quizDTO
	if err := json.Unmarshal(body, &dtos); err != nil {
		return nil, false, fmt.Errorf("parsing response: %w", err)
	}

	quizzes := make([]domain.SourceQuiz, 0, len(dtos))
	for _, d := range dtos {
		if strings.TrimSpace(d.QuizID) == "" {
			c.logger.Warn("Skipping FlexiQuiz record without quiz_id", zap.String("name", d.Name))
			continue
		}
		quizzes = append(quizzes, domain.SourceQuiz{
			ID:          d.QuizID,
			Name:        d.Name,
			Status:      d.Status,
			DateCreated: parseDate(d.DateCreated),
			Source:      SourceName,
		})
	}
	return quizzes, false, nil
}

// parseDate returns the zero time for empty or unrecognised values.
func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
