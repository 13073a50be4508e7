package bot

import (
	"context"
	"errors"

	"oyunlag-bot/internal/domain"
)

type sentMessage struct {
	kind         string // "text", "buttons", "carousel"
	recipient    string
	text         string
	quickReplies []domain.QuickReply
	buttons      []domain.Button
	cards        []domain.Card
}

type fakeMessenger struct {
	sent    []sentMessage
	failAll bool

	userName    string
	nameErr     error
	nameLookups []string
}

func (m *fakeMessenger) FetchUserName(_ context.Context, psid string) (string, error) {
	m.nameLookups = append(m.nameLookups, psid)
	if m.nameErr != nil {
		return "", m.nameErr
	}
	return m.userName, nil
}

func (m *fakeMessenger) SendText(_ context.Context, recipientID, text string, quickReplies []domain.QuickReply) error {
	if m.failAll {
		return errors.New("send failed")
	}
	m.sent = append(m.sent, sentMessage{kind: "text", recipient: recipientID, text: text, quickReplies: quickReplies})
	return nil
}

func (m *fakeMessenger) SendButtons(_ context.Context, recipientID, text string, buttons []domain.Button) error {
	if m.failAll {
		return errors.New("send failed")
	}
	m.sent = append(m.sent, sentMessage{kind: "buttons", recipient: recipientID, text: text, buttons: buttons})
	return nil
}

func (m *fakeMessenger) SendCarousel(_ context.Context, recipientID string, cards []domain.Card) error {
	if m.failAll {
		return errors.New("send failed")
	}
	m.sent = append(m.sent, sentMessage{kind: "carousel", recipient: recipientID, cards: cards})
	return nil
}

type fakeProfiles struct {
	profile domain.UserProfile
	found   bool
	getErr  error

	inquiries     []string
	inquiryNames  []string
	eventNews     *bool
	feedbackFAQID string
	feedbackVote  bool
	writeErr      error
}

func (p *fakeProfiles) GetProfile(context.Context, string) (domain.UserProfile, bool, error) {
	return p.profile, p.found, p.getErr
}

func (p *fakeProfiles) RecordInquiry(_ context.Context, _, name, topic string) error {
	if p.writeErr != nil {
		return p.writeErr
	}
	p.inquiries = append(p.inquiries, topic)
	p.inquiryNames = append(p.inquiryNames, name)
	return nil
}

func (p *fakeProfiles) SetEventNews(_ context.Context, _ string, enabled bool) error {
	if p.writeErr != nil {
		return p.writeErr
	}
	p.eventNews = &enabled
	return nil
}

func (p *fakeProfiles) RecordFAQFeedback(_ context.Context, _, faqID string, helpful bool) error {
	if p.writeErr != nil {
		return p.writeErr
	}
	p.feedbackFAQID = faqID
	p.feedbackVote = helpful
	return nil
}

type fakeAlerts struct {
	alerted []string
	err     error
}

func (a *fakeAlerts) SupportRequested(_ context.Context, senderID string) error {
	a.alerted = append(a.alerted, senderID)
	return a.err
}

type trackedEvent struct {
	name  string
	topic string
}

type fakeTracker struct {
	events []trackedEvent
	err    error
}

func (t *fakeTracker) Track(_ context.Context, name, _, topic string) error {
	t.events = append(t.events, trackedEvent{name: name, topic: topic})
	return t.err
}

func (t *fakeTracker) names() []string {
	names := make([]string, 0, len(t.events))
	for _, e := range t.events {
		names = append(names, e.name)
	}
	return names
}

type fakeCompletions struct {
	answer string
	err    error

	gotQuestion string
	gotLang     domain.Language
}

func (c *fakeCompletions) Complete(_ context.Context, question string, lang domain.Language) (string, error) {
	c.gotQuestion = question
	c.gotLang = lang
	return c.answer, c.err
}
