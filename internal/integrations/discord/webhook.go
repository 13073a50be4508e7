// Package discord posts operator alerts to a Discord channel webhook.
package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Webhook delivers support-takeover alerts. A zero-value URL is not
// allowed; callers that run without Discord should not construct one.
type Webhook struct {
	url    string
	pageID string
	http   *resty.Client
	now    func() time.Time
}

// Option configures a Webhook.
type Option func(*Webhook)

// WithClock injects a clock for tests.
func WithClock(now func() time.Time) Option {
	return func(w *Webhook) {
		if now != nil {
			w.now = now
		}
	}
}

// NewWebhook creates an alert sink for one Discord webhook URL. pageID
// is optional and only shapes the inbox deep link in the alert.
func NewWebhook(url, pageID string, opts ...Option) (*Webhook, error) {
	if strings.TrimSpace(url) == "" {
		return nil, errors.New("discord: webhook url must not be empty")
	}
	w := &Webhook{
		url:    url,
		pageID: pageID,
		http:   resty.New().SetTimeout(10 * time.Second),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

type webhookMessage struct {
	Embeds []embed `json:"embeds"`
}

type embed struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Color       int     `json:"color"`
	Fields      []field `json:"fields"`
	Timestamp   string  `json:"timestamp"`
}

type field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// SupportRequested posts the takeover alert for one sender.
func (w *Webhook) SupportRequested(ctx context.Context, senderID string) error {
	inboxLink := "https://business.facebook.com/latest/inbox"
	if w.pageID != "" {
		inboxLink = "https://business.facebook.com/latest/inbox/messenger?asset_id=" + w.pageID
	}

	msg := webhookMessage{
		Embeds: []embed{
			{
				Title:       "🚨 Шинэ тусламжийн хүсэлт - Оюунлаг сургууль",
				Description: fmt.Sprintf("Хэрэглэгч (PSID: %s) тусламж хүссэн байна.", senderID),
				Color:       3447003,
				Fields: []field{
					{
						Name:  "Үйлдэл шаардлагатай",
						Value: fmt.Sprintf("[Энд дарж хариу өгнө үү](%s)", inboxLink),
					},
				},
				Timestamp: w.now().UTC().Format(time.RFC3339),
			},
		},
	}

	res, err := w.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(msg).
		Post(w.url)
	if err != nil {
		return fmt.Errorf("discord: post webhook: %w", err)
	}
	if res.StatusCode() < 200 || res.StatusCode() >= 300 {
		return fmt.Errorf("discord: unexpected status %d: %s", res.StatusCode(), res.String())
	}
	return nil
}
