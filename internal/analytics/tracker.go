// Package analytics forwards usage events to an external collector.
// Delivery is strictly best-effort: failures are logged by callers and
// never influence the reply path.
package analytics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// Event is one tracked interaction.
type Event struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	SenderID string `json:"sender_id"`
	Topic    string `json:"topic,omitempty"`
	At       string `json:"at"`
}

// Tracker posts events to a collector URL. A Tracker with an empty URL
// is a no-op, so callers can track unconditionally.
type Tracker struct {
	url  string
	http *resty.Client
	now  func() time.Time
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock injects a clock for tests.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		if now != nil {
			t.now = now
		}
	}
}

// NewTracker creates a Tracker. An empty collector URL disables it.
func NewTracker(url string, opts ...Option) *Tracker {
	t := &Tracker{
		url:  strings.TrimSpace(url),
		http: resty.New().SetTimeout(5 * time.Second),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Enabled reports whether events will actually be forwarded.
func (t *Tracker) Enabled() bool {
	return t.url != ""
}

// Track posts one event to the collector.
func (t *Tracker) Track(ctx context.Context, name, senderID, topic string) error {
	if !t.Enabled() {
		return nil
	}

	event := Event{
		ID:       uuid.NewString(),
		Name:     name,
		SenderID: senderID,
		Topic:    topic,
		At:       t.now().UTC().Format(time.RFC3339),
	}

	res, err := t.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(event).
		Post(t.url)
	if err != nil {
		return fmt.Errorf("analytics: post event: %w", err)
	}
	if res.StatusCode() < 200 || res.StatusCode() >= 300 {
		return fmt.Errorf("analytics: unexpected status %d", res.StatusCode())
	}
	return nil
}
