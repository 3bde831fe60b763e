// Package gemini implements the completion-service interfaces using
// Google Gemini.
package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/rathaus"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Completer implements rathaus.Completer at compile time.
var _ rathaus.Completer = (*Completer)(nil)

// Completer implements rathaus.Completer using Google Gemini.
type Completer struct {
	client  *genai.Client
	model   string
	limiter *rate.Limiter
}

// Option configures a Completer.
type Option func(*Completer)

// WithModel overrides the model. Defaults to DefaultModel.
func WithModel(model string) Option {
	return func(c *Completer) {
		c.model = model
	}
}

// WithLimiter sets a client-side QPS guard applied before every call.
// Share one limiter across all Gemini-backed services of a process.
func WithLimiter(l *rate.Limiter) Option {
	return func(c *Completer) {
		c.limiter = l
	}
}

// NewCompleter creates a new Completer.
func NewCompleter(client *genai.Client, opts ...Option) *Completer {
	c := &Completer{client: client, model: DefaultModel}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Complete sends the system instruction and user messages to the model and
// returns the trimmed response text.
func (c *Completer) Complete(ctx context.Context, system string, messages ...string) (string, error) {
	if len(messages) == 0 {
		return "", rathaus.Errorf(rathaus.EINVALID, "at least one message required")
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, userContents(messages), BuildConfig(system))
	if err != nil {
		return "", rathaus.Errorf(rathaus.EUNAVAILABLE, "gemini: %v", err)
	}
	if result == nil {
		return "", rathaus.Errorf(rathaus.EINTERNAL, "gemini returned nil result")
	}

	return strings.TrimSpace(result.Text()), nil
}

// BuildConfig returns the GenerateContentConfig for free-text calls.
func BuildConfig(system string) *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		},
		Temperature: &temp,
	}
}

// userContents wraps each message in a user-role content.
func userContents(messages []string) []*genai.Content {
	contents := make([]*genai.Content, 0, len(messages))
	for _, msg := range messages {
		contents = append(contents, &genai.Content{
			Role:  genai.RoleUser,
			Parts: []*genai.Part{{Text: msg}},
		})
	}
	return contents
}
