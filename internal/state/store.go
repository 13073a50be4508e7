// Package state holds the in-memory per-sender conversation mode.
// Contents live for the process lifetime only; a restart silently
// returns every conversation to bot mode.
package state

import (
	"sync"
	"time"
)

// Mode is the automated-reply mode for one conversation.
type Mode string

const (
	ModeBot   Mode = "bot"
	ModeAdmin Mode = "admin"
)

// DefaultAdminTimeout is how long a takeover suppresses automated
// replies before the conversation lazily reverts to bot mode.
const DefaultAdminTimeout = 24 * time.Hour

// Conversation is the tracked state for one sender.
type Conversation struct {
	SenderID      string
	Mode          Mode
	LastUserAt    time.Time
	LastBotAt     time.Time
	AdminTakenAt  time.Time
	AdminReleases int
}

// Store is a mutex-guarded map of sender id to conversation state.
// All mode transitions happen under the lock, so two near-simultaneous
// events for one sender cannot interleave a read-modify-write.
type Store struct {
	mu            sync.Mutex
	conversations map[string]*Conversation
	adminTimeout  time.Duration
	now           func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithAdminTimeout overrides the 24h auto-release window.
func WithAdminTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.adminTimeout = d
		}
	}
}

// WithClock injects a clock for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore creates an empty Store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		conversations: make(map[string]*Conversation),
		adminTimeout:  DefaultAdminTimeout,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// get returns the tracked conversation, creating it in bot mode on
// first contact. Callers must hold s.mu.
func (s *Store) get(senderID string) *Conversation {
	conv, ok := s.conversations[senderID]
	if !ok {
		conv = &Conversation{SenderID: senderID, Mode: ModeBot}
		s.conversations[senderID] = conv
	}
	return conv
}

// Get returns a copy of the sender's state, initializing it lazily.
func (s *Store) Get(senderID string) Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.get(senderID)
}

// SetAdminMode switches the sender to admin takeover and records when.
func (s *Store) SetAdminMode(senderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv := s.get(senderID)
	conv.Mode = ModeAdmin
	conv.AdminTakenAt = s.now()
}

// SetBotMode releases the sender back to automated replies.
func (s *Store) SetBotMode(senderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv := s.get(senderID)
	if conv.Mode == ModeAdmin {
		conv.AdminReleases++
	}
	conv.Mode = ModeBot
	conv.AdminTakenAt = time.Time{}
}

// IsAdminMode reports whether automated replies are suppressed. If the
// takeover is older than the timeout it transitions back to bot mode
// before answering; the release timer is fixed at takeover and never
// refreshed by user activity.
func (s *Store) IsAdminMode(senderID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv := s.get(senderID)
	if conv.Mode != ModeAdmin {
		return false
	}
	if s.now().Sub(conv.AdminTakenAt) >= s.adminTimeout {
		conv.Mode = ModeBot
		conv.AdminTakenAt = time.Time{}
		conv.AdminReleases++
		return false
	}
	return true
}

// TouchUser records the time of the sender's latest inbound message.
func (s *Store) TouchUser(senderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.get(senderID).LastUserAt = s.now()
}

// TouchBot records the time of the latest automated reply to the sender.
func (s *Store) TouchBot(senderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.get(senderID).LastBotAt = s.now()
}

// Clear forces the sender back to a fresh bot-mode state. Used by the
// guarded debug endpoint.
func (s *Store) Clear(senderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conversations, senderID)
}

// Stats is a point-in-time summary of tracked conversations.
type Stats struct {
	Total         int
	Admin         int
	AdminReleases int
}

// Counts summarizes tracked conversations: how many exist, how many
// are in admin mode, and how many takeovers have been released so far.
// Expired takeovers are counted as bot mode but not transitioned; the
// next inbound event does that.
func (s *Store) Counts() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := Stats{Total: len(s.conversations)}
	for _, conv := range s.conversations {
		if conv.Mode == ModeAdmin && s.now().Sub(conv.AdminTakenAt) < s.adminTimeout {
			stats.Admin++
		}
		stats.AdminReleases += conv.AdminReleases
	}
	return stats
}
