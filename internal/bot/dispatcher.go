package bot

import (
	"context"
	"fmt"
	"log/slog"

	"oyunlag-bot/internal/content"
	"oyunlag-bot/internal/domain"
)

// followUpPrompt accompanies quick replies that have to trail a button
// template: the Send API cannot attach quick replies to a button
// template in the same message.
const followUpPrompt = "Та доорх сонголтоос сонгоно уу:"

// Dispatcher renders content-table topics into Send API calls.
type Dispatcher struct {
	messenger Messenger
	profiles  ProfileStore // optional
	tracker   EventTracker // optional
	logger    *slog.Logger

	table     map[string]domain.ContentEntry
	menuCards []domain.Card
	tourCards []domain.Card
}

// NewDispatcher wires a Dispatcher over the static content table.
// profiles and tracker may be nil; their side effects are skipped.
func NewDispatcher(m Messenger, profiles ProfileStore, tracker EventTracker, logger *slog.Logger) (*Dispatcher, error) {
	if m == nil {
		return nil, newError(ErrorInternal, "messenger_required", nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		messenger: m,
		profiles:  profiles,
		tracker:   tracker,
		logger:    logger,
		table:     content.Table,
		menuCards: content.MainMenuCards,
		tourCards: content.VirtualTourCards,
	}, nil
}

// SendTopic renders one topic for one sender. An unknown topic key
// falls back to the main menu rather than failing. Analytics and the
// inquiry log are emitted before rendering; their failures are logged
// and do not block the reply.
func (d *Dispatcher) SendTopic(ctx context.Context, senderID, topic string) error {
	entry, ok := d.table[topic]
	if !ok {
		topic = content.TopicMainMenu
		entry = d.table[topic]
	}

	profile := d.loadProfile(ctx, senderID)
	// First contact, or the stored profile predates the name lookup.
	// Only the inquiry log and the main-menu greeting consume the name,
	// so other sends skip the Graph call. Best-effort: an unshared or
	// failed lookup leaves the greeting generic.
	if profile.Name == "" && (d.profiles != nil || topic == content.TopicMainMenu) {
		name, err := d.messenger.FetchUserName(ctx, senderID)
		if err != nil {
			d.logger.Warn("user name lookup failed", "sender", senderID, "err", err)
		} else {
			profile.Name = name
		}
	}
	d.emitSideEffects(ctx, senderID, topic, profile)

	text := entry.Text
	if topic == content.TopicMainMenu {
		text = mainMenuGreeting(entry.Text, profile)
	}

	switch entry.Type {
	case domain.RenderCarousel:
		if err := d.messenger.SendText(ctx, senderID, text, entry.QuickReplies); err != nil {
			return newError(ErrorSendFailed, "carousel_lead_text", err)
		}
		cards := d.menuCards
		if topic == content.TopicVirtualTour {
			cards = d.tourCards
		}
		if err := d.messenger.SendCarousel(ctx, senderID, cards); err != nil {
			return newError(ErrorSendFailed, "carousel_cards", err)
		}
		return nil

	case domain.RenderTextWithQuickReplies:
		if err := d.messenger.SendText(ctx, senderID, text, entry.QuickReplies); err != nil {
			return newError(ErrorSendFailed, "text_with_quick_replies", err)
		}
		return nil

	default:
		// Button template, also the fallback for unknown render types.
		if err := d.messenger.SendButtons(ctx, senderID, text, entry.Buttons); err != nil {
			return newError(ErrorSendFailed, "button_template", err)
		}
		if len(entry.QuickReplies) > 0 {
			if err := d.messenger.SendText(ctx, senderID, followUpPrompt, entry.QuickReplies); err != nil {
				return newError(ErrorSendFailed, "button_quick_replies", err)
			}
		}
		return nil
	}
}

func (d *Dispatcher) loadProfile(ctx context.Context, senderID string) domain.UserProfile {
	if d.profiles == nil {
		return domain.UserProfile{}
	}
	profile, found, err := d.profiles.GetProfile(ctx, senderID)
	if err != nil {
		d.logger.Warn("profile lookup failed", "sender", senderID, "err", err)
		return domain.UserProfile{}
	}
	if !found {
		return domain.UserProfile{}
	}
	return profile
}

func (d *Dispatcher) emitSideEffects(ctx context.Context, senderID, topic string, profile domain.UserProfile) {
	if d.tracker != nil {
		if err := d.tracker.Track(ctx, "topic_viewed", senderID, topic); err != nil {
			d.logger.Warn("analytics emit failed", "sender", senderID, "topic", topic, "err", err)
		}
	}
	if d.profiles != nil {
		if err := d.profiles.RecordInquiry(ctx, senderID, profile.Name, topic); err != nil {
			d.logger.Warn("inquiry log failed", "sender", senderID, "topic", topic, "err", err)
		}
	}
}

// mainMenuGreeting personalizes the main-menu lead text. Senders whose
// name could not be resolved get the generic greeting; senders with
// recorded history additionally see their last topic.
func mainMenuGreeting(generic string, profile domain.UserProfile) string {
	if profile.Name == "" {
		return generic
	}
	if profile.MessageCount == 0 {
		return fmt.Sprintf("Сайн байна уу, %s! 'Оюунлаг сургууль'-д тавтай морилно уу. 👋", profile.Name)
	}
	greeting := fmt.Sprintf("Сайн байна уу, %s! Та 'Оюунлаг сургууль'-тай дахин холбогдлоо.", profile.Name)
	if title, ok := topicTitle(profile.LastTopic); ok {
		greeting += fmt.Sprintf("\n\nӨмнө нь та \"%s\" сэдвийг сонирхож байсан.", title)
	}
	return greeting
}

var topicTitles = map[string]string{
	content.TopicCurriculum: "Сургалтын хөтөлбөр",
	content.TopicTuition:    "Төлбөр",
	content.TopicAdmission:  "Элсэлт",
	content.TopicLocation:   "Хаяг байршил",
	content.TopicFood:       "Хоол",
	content.TopicBus:        "Автобус",
	content.TopicContact:    "Холбоо барих",
}

func topicTitle(topic string) (string, bool) {
	title, ok := topicTitles[topic]
	return title, ok
}
