package bot

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"oyunlag-bot/internal/content"
	"oyunlag-bot/internal/domain"
)

func newTestDispatcher(t *testing.T, m Messenger, profiles ProfileStore, tracker EventTracker) *Dispatcher {
	t.Helper()
	d, err := NewDispatcher(m, profiles, tracker, nil)
	require.NoError(t, err)
	return d
}

func TestNewDispatcherRequiresMessenger(t *testing.T) {
	_, err := NewDispatcher(nil, nil, nil, nil)
	require.Error(t, err)
}

func TestSendTopicUnknownKeyFallsBackToMainMenu(t *testing.T) {
	m := &fakeMessenger{}
	d := newTestDispatcher(t, m, nil, nil)

	require.NoError(t, d.SendTopic(context.Background(), "psid-1", "NO_SUCH_TOPIC"))

	// Main menu is a carousel: lead text first, cards second.
	require.Len(t, m.sent, 2)
	require.Equal(t, "text", m.sent[0].kind)
	require.Equal(t, "carousel", m.sent[1].kind)
	require.Len(t, m.sent[1].cards, len(content.MainMenuCards))
}

func TestSendTopicTextWithQuickReplies(t *testing.T) {
	m := &fakeMessenger{}
	d := newTestDispatcher(t, m, nil, nil)

	require.NoError(t, d.SendTopic(context.Background(), "psid-1", content.TopicTuition))

	require.Len(t, m.sent, 1)
	require.Equal(t, "text", m.sent[0].kind)
	require.Equal(t, content.Table[content.TopicTuition].Text, m.sent[0].text)
	require.NotEmpty(t, m.sent[0].quickReplies)
}

func TestSendTopicButtonWithQuickRepliesSendsTwoMessages(t *testing.T) {
	m := &fakeMessenger{}
	d := newTestDispatcher(t, m, nil, nil)

	// LOCATION declares both buttons and quick replies.
	require.NoError(t, d.SendTopic(context.Background(), "psid-1", content.TopicLocation))

	require.Len(t, m.sent, 2)
	require.Equal(t, "buttons", m.sent[0].kind)
	require.Equal(t, "text", m.sent[1].kind)
	require.Equal(t, followUpPrompt, m.sent[1].text)
	require.NotEmpty(t, m.sent[1].quickReplies)
}

func TestSendTopicButtonWithoutQuickRepliesSendsOne(t *testing.T) {
	m := &fakeMessenger{}
	d := newTestDispatcher(t, m, nil, nil)

	require.NoError(t, d.SendTopic(context.Background(), "psid-1", content.TopicLocation1))

	require.Len(t, m.sent, 1)
	require.Equal(t, "buttons", m.sent[0].kind)
}

func TestSendTopicVirtualTourUsesTourCards(t *testing.T) {
	m := &fakeMessenger{}
	d := newTestDispatcher(t, m, nil, nil)

	require.NoError(t, d.SendTopic(context.Background(), "psid-1", content.TopicVirtualTour))

	require.Len(t, m.sent, 2)
	require.Equal(t, "carousel", m.sent[1].kind)
	require.Len(t, m.sent[1].cards, len(content.VirtualTourCards))
	require.Equal(t, content.VirtualTourCards[0].Title, m.sent[1].cards[0].Title)
}

func TestSendTopicMainMenuPersonalization(t *testing.T) {
	m := &fakeMessenger{}
	profiles := &fakeProfiles{
		found: true,
		profile: domain.UserProfile{
			Name:         "Бат",
			LastTopic:    content.TopicTuition,
			MessageCount: 4,
		},
	}
	d := newTestDispatcher(t, m, profiles, nil)

	require.NoError(t, d.SendTopic(context.Background(), "psid-1", content.TopicMainMenu))

	require.Contains(t, m.sent[0].text, "Бат")
	require.Contains(t, m.sent[0].text, "Төлбөр")
	// The stored name makes the Graph API lookup unnecessary.
	require.Empty(t, m.nameLookups)
}

func TestSendTopicFirstContactFetchesName(t *testing.T) {
	m := &fakeMessenger{userName: "Сараа"}
	profiles := &fakeProfiles{}
	d := newTestDispatcher(t, m, profiles, nil)

	require.NoError(t, d.SendTopic(context.Background(), "psid-1", content.TopicMainMenu))

	require.Equal(t, []string{"psid-1"}, m.nameLookups)
	require.Contains(t, m.sent[0].text, "Сараа")
	require.Contains(t, m.sent[0].text, "тавтай морилно уу")
	// The fetched name seeds the stored profile.
	require.Equal(t, []string{"Сараа"}, profiles.inquiryNames)
}

func TestSendTopicSkipsNameLookupWhenUnused(t *testing.T) {
	m := &fakeMessenger{userName: "Сараа"}
	d := newTestDispatcher(t, m, nil, nil)

	require.NoError(t, d.SendTopic(context.Background(), "psid-1", content.TopicTuition))
	require.Empty(t, m.nameLookups)
}

func TestSendTopicNameLookupFailureKeepsGenericGreeting(t *testing.T) {
	m := &fakeMessenger{nameErr: errors.New("graph api down")}
	d := newTestDispatcher(t, m, &fakeProfiles{}, nil)

	require.NoError(t, d.SendTopic(context.Background(), "psid-1", content.TopicMainMenu))
	require.Equal(t, content.Table[content.TopicMainMenu].Text, m.sent[0].text)
}

func TestSendTopicMainMenuGenericGreetingWithoutProfile(t *testing.T) {
	m := &fakeMessenger{}
	d := newTestDispatcher(t, m, &fakeProfiles{}, nil)

	require.NoError(t, d.SendTopic(context.Background(), "psid-1", content.TopicMainMenu))
	require.Equal(t, content.Table[content.TopicMainMenu].Text, m.sent[0].text)
}

func TestSendTopicSideEffectsBestEffort(t *testing.T) {
	m := &fakeMessenger{}
	profiles := &fakeProfiles{writeErr: errors.New("dynamo down")}
	tracker := &fakeTracker{err: errors.New("collector down")}
	d := newTestDispatcher(t, m, profiles, tracker)

	// Failing analytics and inquiry log never block the reply.
	require.NoError(t, d.SendTopic(context.Background(), "psid-1", content.TopicContact))
	require.NotEmpty(t, m.sent)
	require.Equal(t, []trackedEvent{{name: "topic_viewed", topic: content.TopicContact}}, tracker.events)
}

func TestSendTopicRecordsInquiry(t *testing.T) {
	m := &fakeMessenger{}
	profiles := &fakeProfiles{}
	d := newTestDispatcher(t, m, profiles, nil)

	require.NoError(t, d.SendTopic(context.Background(), "psid-1", content.TopicBus))
	require.Equal(t, []string{content.TopicBus}, profiles.inquiries)
}

func TestSendTopicSendFailureSurfaces(t *testing.T) {
	m := &fakeMessenger{failAll: true}
	d := newTestDispatcher(t, m, nil, nil)

	err := d.SendTopic(context.Background(), "psid-1", content.TopicTuition)
	require.Error(t, err)

	var botErr *Error
	require.ErrorAs(t, err, &botErr)
	require.Equal(t, ErrorSendFailed, botErr.Code)
}
