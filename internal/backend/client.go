package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/college-compass/internal/ai"
)

const (
	providerName     = "backend"
	userAgent        = "spigell/college-compass"
	defaultTimeout   = 3 * time.Minute
	generatePath     = "/generate"
	essayPath        = "/essay"
	roadmapField     = "roadmap"
	feedbackField    = "feedback"
	requestIDHeader  = "X-Request-ID"
	maxErrorBodySize = 512
)

// Client talks to the roadmap backend over HTTP. Generation can take minutes,
// so the default timeout is generous.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string

	token  string
	logger *zap.Logger
}

var _ ai.Advisor = (*Client)(nil)

func New(baseURL, token string, logger *zap.Logger) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("backend url is required")
	}
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("backend url %q must start with http:// or https://", baseURL)
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: defaultTimeout,
		},
		UserAgent: userAgent,
		token:     strings.TrimSpace(token),
		logger:    logger,
	}, nil
}

func (c *Client) Name() string { return providerName }

// Roadmap posts the profile to /generate and returns the value of the
// "roadmap" field, which may be text or an object.
func (c *Client) Roadmap(ctx context.Context, profile *ai.Profile) (any, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	return c.generate(ctx, generatePath, roadmapField, profile)
}

// EssayFeedback posts the essay to /essay and returns the "feedback" field.
func (c *Client) EssayFeedback(ctx context.Context, essay *ai.EssaySubmission) (any, error) {
	if err := essay.Validate(); err != nil {
		return nil, err
	}

	return c.generate(ctx, essayPath, feedbackField, essay)
}

func (c *Client) generate(ctx context.Context, path, field string, payload any) (any, error) {
	var envelope map[string]any
	if err := c.postJSON(ctx, c.BaseURL+path, payload, &envelope); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	value, err := FieldValue(envelope, field)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return value, nil
}
