package bot

import (
	"context"

	"oyunlag-bot/internal/domain"
	"oyunlag-bot/internal/state"
)

// Messenger delivers outbound messages to one recipient and looks up
// the sender's shared profile name.
type Messenger interface {
	SendText(ctx context.Context, recipientID, text string, quickReplies []domain.QuickReply) error
	SendButtons(ctx context.Context, recipientID, text string, buttons []domain.Button) error
	SendCarousel(ctx context.Context, recipientID string, cards []domain.Card) error
	FetchUserName(ctx context.Context, psid string) (string, error)
}

// CompletionProvider answers free-text questions no other path handled.
type CompletionProvider interface {
	Complete(ctx context.Context, question string, lang domain.Language) (string, error)
}

// ProfileStore persists per-sender personalization data. All calls are
// best-effort from the caller's point of view.
type ProfileStore interface {
	GetProfile(ctx context.Context, senderID string) (domain.UserProfile, bool, error)
	RecordInquiry(ctx context.Context, senderID, name, topic string) error
	SetEventNews(ctx context.Context, senderID string, enabled bool) error
	RecordFAQFeedback(ctx context.Context, senderID, faqID string, helpful bool) error
}

// AlertSink notifies human operators of a support takeover.
type AlertSink interface {
	SupportRequested(ctx context.Context, senderID string) error
}

// EventTracker forwards usage events to an analytics collector.
type EventTracker interface {
	Track(ctx context.Context, name, senderID, topic string) error
}

// StateStore tracks the per-conversation automated-reply mode.
// *state.Store satisfies this; the indirection keeps a durable
// implementation swappable without touching routing.
type StateStore interface {
	Get(senderID string) state.Conversation
	IsAdminMode(senderID string) bool
	SetAdminMode(senderID string)
	SetBotMode(senderID string)
	TouchUser(senderID string)
	TouchBot(senderID string)
}
