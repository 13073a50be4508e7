// Package handler exposes the bot over HTTP: the Messenger webhook
// pair, a health summary, and a guarded debug route.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"oyunlag-bot/internal/domain"
	"oyunlag-bot/internal/state"
)

// EventHandler processes one parsed webhook event.
type EventHandler interface {
	HandleEvent(ctx context.Context, event domain.InboundEvent) error
}

// StateAdmin is the slice of the state store the HTTP layer needs.
type StateAdmin interface {
	Clear(senderID string)
	Counts() state.Stats
}

// ServiceFlags reports which optional collaborators are configured,
// for the health summary.
type ServiceFlags struct {
	Messenger bool `json:"messenger"`
	AI        bool `json:"ai"`
	Profiles  bool `json:"profiles"`
	Alerts    bool `json:"alerts"`
	Analytics bool `json:"analytics"`
}

// Handler owns the gin routes.
type Handler struct {
	events      EventHandler
	states      StateAdmin
	verifyToken string
	adminSecret string
	flags       ServiceFlags
	logger      *slog.Logger
}

// New creates a Handler. adminSecret may be empty, which disables the
// debug route.
func New(events EventHandler, states StateAdmin, verifyToken, adminSecret string, flags ServiceFlags, logger *slog.Logger) (*Handler, error) {
	if events == nil {
		return nil, errMissing("event handler")
	}
	if states == nil {
		return nil, errMissing("state admin")
	}
	if strings.TrimSpace(verifyToken) == "" {
		return nil, errMissing("verify token")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		events:      events,
		states:      states,
		verifyToken: verifyToken,
		adminSecret: adminSecret,
		flags:       flags,
		logger:      logger,
	}, nil
}

type missingError string

func (e missingError) Error() string { return "handler: " + string(e) + " is required" }

func errMissing(what string) error { return missingError(what) }

// Register attaches all routes to the engine.
func (h *Handler) Register(r *gin.Engine) {
	r.GET("/", h.Status)
	r.GET("/webhook", h.Verify)
	r.POST("/webhook", h.Receive)
	r.POST("/admin/clear-state/:id", h.ClearState)
}

// Verify answers the Messenger subscription handshake.
func (h *Handler) Verify(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && token == h.verifyToken {
		h.logger.Info("webhook verified")
		c.String(http.StatusOK, challenge)
		return
	}
	c.Status(http.StatusForbidden)
}

// webhookBody mirrors the Messenger webhook delivery shape, reduced to
// the fields the bot consumes.
type webhookBody struct {
	Object string         `json:"object"`
	Entry  []webhookEntry `json:"entry"`
}

type webhookEntry struct {
	Messaging []messagingEvent `json:"messaging"`
}

type messagingEvent struct {
	Sender struct {
		ID string `json:"id"`
	} `json:"sender"`
	Postback *struct {
		Payload string `json:"payload"`
	} `json:"postback"`
	Message *struct {
		Text       string `json:"text"`
		QuickReply *struct {
			Payload string `json:"payload"`
		} `json:"quick_reply"`
	} `json:"message"`
}

// Receive processes a webhook delivery. Per the platform's retry
// contract it always answers 200 once processing finished, whatever
// happened per entry; only an unknown object type is a 404.
func (h *Handler) Receive(c *gin.Context) {
	var body webhookBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.logger.Warn("malformed webhook body", "err", err)
		c.String(http.StatusOK, "EVENT_RECEIVED")
		return
	}
	if body.Object != "page" {
		c.Status(http.StatusNotFound)
		return
	}

	for _, entry := range body.Entry {
		if len(entry.Messaging) == 0 {
			continue
		}
		event, ok := toInboundEvent(entry.Messaging[0])
		if !ok {
			continue
		}
		// Errors are logged per entry so one bad event cannot starve
		// its siblings or the acknowledgment.
		if err := h.events.HandleEvent(c.Request.Context(), event); err != nil {
			h.logger.Error("event processing failed", "sender", event.SenderID, "err", err)
		}
	}

	c.String(http.StatusOK, "EVENT_RECEIVED")
}

func toInboundEvent(m messagingEvent) (domain.InboundEvent, bool) {
	if m.Sender.ID == "" {
		return domain.InboundEvent{}, false
	}
	switch {
	case m.Postback != nil:
		return domain.InboundEvent{
			SenderID: m.Sender.ID,
			Kind:     domain.EventPostback,
			Payload:  m.Postback.Payload,
		}, true
	case m.Message != nil && m.Message.QuickReply != nil:
		return domain.InboundEvent{
			SenderID: m.Sender.ID,
			Kind:     domain.EventQuickReply,
			Payload:  m.Message.QuickReply.Payload,
		}, true
	case m.Message != nil && m.Message.Text != "":
		return domain.InboundEvent{
			SenderID: m.Sender.ID,
			Kind:     domain.EventText,
			Text:     m.Message.Text,
		}, true
	default:
		return domain.InboundEvent{}, false
	}
}

// Status reports configured services and conversation counts.
func (h *Handler) Status(c *gin.Context) {
	stats := h.states.Counts()
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"services": h.flags,
		"conversations": gin.H{
			"active":         stats.Total,
			"admin_mode":     stats.Admin,
			"admin_releases": stats.AdminReleases,
		},
	})
}

// ClearState forces one sender back to bot mode. Guarded by a bearer
// token; disabled entirely when no secret is configured.
func (h *Handler) ClearState(c *gin.Context) {
	if h.adminSecret == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "admin endpoint not configured"})
		return
	}
	auth := c.GetHeader("Authorization")
	if auth != "Bearer "+h.adminSecret {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	senderID := c.Param("id")
	h.states.Clear(senderID)
	h.logger.Info("conversation state cleared", "sender", senderID)
	c.JSON(http.StatusOK, gin.H{"cleared": senderID})
}
