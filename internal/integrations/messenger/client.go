// Package messenger is a focused client for the Facebook Messenger
// Send API. It only knows how to shape and deliver the three message
// forms the bot uses; what to send is decided elsewhere.
package messenger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"oyunlag-bot/internal/domain"
)

const defaultBaseURL = "https://graph.facebook.com/v21.0"

// HTTPStatusError captures non-2xx Send API responses.
type HTTPStatusError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("messenger: unexpected status %d from %s: %s", e.StatusCode, e.URL, e.Body)
}

func (e *HTTPStatusError) HTTPStatusCode() int {
	return e.StatusCode
}

// Client delivers messages through the Graph API.
type Client struct {
	baseURL     string
	accessToken string
	http        *resty.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a non-default Graph endpoint (tests).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	}
}

// NewClient creates a Send API client for one page access token.
func NewClient(accessToken string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(accessToken) == "" {
		return nil, errors.New("messenger: access token must not be empty")
	}
	c := &Client{
		baseURL:     defaultBaseURL,
		accessToken: accessToken,
		http:        resty.New().SetTimeout(10 * time.Second),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type sendRequest struct {
	Recipient recipient      `json:"recipient"`
	Message   messagePayload `json:"message"`
}

type recipient struct {
	ID string `json:"id"`
}

type messagePayload struct {
	Text         string              `json:"text,omitempty"`
	QuickReplies []domain.QuickReply `json:"quick_replies,omitempty"`
	Attachment   *attachment         `json:"attachment,omitempty"`
}

type attachment struct {
	Type    string             `json:"type"`
	Payload attachmentTemplate `json:"payload"`
}

type attachmentTemplate struct {
	TemplateType string          `json:"template_type"`
	Text         string          `json:"text,omitempty"`
	Buttons      []domain.Button `json:"buttons,omitempty"`
	Elements     []domain.Card   `json:"elements,omitempty"`
}

// FetchUserName looks up the sender's first name through the Graph API
// user-profile endpoint. Messenger only exposes it for senders who have
// messaged the page; an empty name with a nil error means the field was
// not shared.
func (c *Client) FetchUserName(ctx context.Context, psid string) (string, error) {
	if strings.TrimSpace(psid) == "" {
		return "", errors.New("messenger: psid must not be empty")
	}
	url := c.baseURL + "/" + psid

	var profile struct {
		FirstName string `json:"first_name"`
	}
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("access_token", c.accessToken).
		SetQueryParam("fields", "first_name").
		SetResult(&profile).
		Get(url)
	if err != nil {
		return "", fmt.Errorf("messenger: fetch user profile: %w", err)
	}
	if res.StatusCode() < 200 || res.StatusCode() >= 300 {
		body := res.String()
		if len(body) > 4096 {
			body = body[:4096]
		}
		return "", &HTTPStatusError{StatusCode: res.StatusCode(), URL: url, Body: body}
	}
	return profile.FirstName, nil
}

// SendText delivers a plain text message, optionally with quick replies.
func (c *Client) SendText(ctx context.Context, recipientID, text string, quickReplies []domain.QuickReply) error {
	return c.send(ctx, recipientID, messagePayload{
		Text:         text,
		QuickReplies: quickReplies,
	})
}

// SendButtons delivers a button template. The Send API allows at most
// three buttons per template; extras are dropped rather than rejected.
func (c *Client) SendButtons(ctx context.Context, recipientID, text string, buttons []domain.Button) error {
	if len(buttons) > 3 {
		buttons = buttons[:3]
	}
	return c.send(ctx, recipientID, messagePayload{
		Attachment: &attachment{
			Type: "template",
			Payload: attachmentTemplate{
				TemplateType: "button",
				Text:         text,
				Buttons:      buttons,
			},
		},
	})
}

// SendCarousel delivers a generic-template card carousel.
func (c *Client) SendCarousel(ctx context.Context, recipientID string, cards []domain.Card) error {
	if len(cards) == 0 {
		return errors.New("messenger: carousel requires at least one card")
	}
	return c.send(ctx, recipientID, messagePayload{
		Attachment: &attachment{
			Type: "template",
			Payload: attachmentTemplate{
				TemplateType: "generic",
				Elements:     cards,
			},
		},
	})
}

func (c *Client) send(ctx context.Context, recipientID string, message messagePayload) error {
	if strings.TrimSpace(recipientID) == "" {
		return errors.New("messenger: recipient id must not be empty")
	}
	url := c.baseURL + "/me/messages"

	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("access_token", c.accessToken).
		SetHeader("Content-Type", "application/json").
		SetBody(sendRequest{
			Recipient: recipient{ID: recipientID},
			Message:   message,
		}).
		Post(url)
	if err != nil {
		return fmt.Errorf("messenger: send request: %w", err)
	}
	if res.StatusCode() < 200 || res.StatusCode() >= 300 {
		body := res.String()
		if len(body) > 4096 {
			body = body[:4096]
		}
		return &HTTPStatusError{StatusCode: res.StatusCode(), URL: url, Body: body}
	}
	return nil
}
