// Package bot holds the conversation core: the intent router, the
// response dispatcher, and the orchestrating service that ties them to
// the external gateways.
package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"oyunlag-bot/internal/content"
	"oyunlag-bot/internal/domain"
	"oyunlag-bot/internal/faq"
)

const (
	resumeConfirmText   = "🤖 Бот дахин идэвхжлээ. Танд юугаар туслах вэ?"
	supportFallbackText = "👋 Та манай багтай холбогдох хүсэлт илгээлээ. Манай зөвлөх танд удахгүй хариу өгнө!"
	thanksHelpfulText   = "Баярлалаа! Таны санал бидэнд тусална. 😊"
	thanksUnhelpfulText = "Санал хүсэлтийг тэмдэглэлээ. Манай багтай шууд холбогдохыг хүсвэл 'Тусламж' гэж дарна уу."
	eventNewsOnText     = "🔔 Та үйл явдлын мэдээнд бүртгүүллээ. Шинэ мэдээ гармагц танд илгээх болно!"
	eventNewsOffText    = "🔕 Та үйл явдлын мэдээнээс хасагдлаа."
	genericErrorText    = "Уучлаарай, алдаа гарлаа. Та 7575 5050 утсаар холбогдоно уу."

	aiFallbackMN = "Уучлаарай, би энэ асуултад хариулж чадсангүй. 🙏 Та 7575 5050 утсаар холбогдож дэлгэрэнгүй мэдээлэл авна уу."
	aiFallbackEN = "Sorry, I couldn't answer that question. 🙏 Please call us at 7575 5050 for more information."
)

// Service implements the full inbound-event control flow:
// state lookup, routing, content/FAQ/AI resolution, and dispatch.
type Service struct {
	messenger   Messenger
	completions CompletionProvider // optional
	profiles    ProfileStore       // optional
	alerts      AlertSink          // optional
	tracker     EventTracker       // optional
	states      StateStore
	dispatcher  *Dispatcher
	faqEntries  []domain.FAQEntry
	logger      *slog.Logger
}

// Config gathers the service collaborators. Messenger and States are
// required; the rest degrade gracefully when nil.
type Config struct {
	Messenger   Messenger
	Completions CompletionProvider
	Profiles    ProfileStore
	Alerts      AlertSink
	Tracker     EventTracker
	States      StateStore
	FAQEntries  []domain.FAQEntry
	Logger      *slog.Logger
}

// NewService validates the config and builds the Service with its
// dispatcher.
func NewService(cfg Config) (*Service, error) {
	if cfg.Messenger == nil {
		return nil, newError(ErrorInternal, "messenger_required", nil)
	}
	if cfg.States == nil {
		return nil, newError(ErrorInternal, "state_store_required", nil)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.FAQEntries == nil {
		cfg.FAQEntries = content.FAQ
	}

	dispatcher, err := NewDispatcher(cfg.Messenger, cfg.Profiles, cfg.Tracker, cfg.Logger)
	if err != nil {
		return nil, err
	}

	return &Service{
		messenger:   cfg.Messenger,
		completions: cfg.Completions,
		profiles:    cfg.Profiles,
		alerts:      cfg.Alerts,
		tracker:     cfg.Tracker,
		states:      cfg.States,
		dispatcher:  dispatcher,
		faqEntries:  cfg.FAQEntries,
		logger:      cfg.Logger,
	}, nil
}

// HandleEvent processes one inbound event end to end. The returned
// error is for logging only; the webhook acknowledges regardless. A
// panic inside the flow is recovered into a generic apology reply.
func (s *Service) HandleEvent(ctx context.Context, event domain.InboundEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("panic handling event", "sender", event.SenderID, "panic", r)
			if sendErr := s.messenger.SendText(ctx, event.SenderID, genericErrorText, nil); sendErr != nil {
				s.logger.Error("failed to send error reply", "sender", event.SenderID, "err", sendErr)
			}
			err = newError(ErrorInternal, "recovered_panic", fmt.Errorf("%v", r))
		}
	}()

	if event.SenderID == "" {
		return newError(ErrorInvalidEvent, "missing_sender", nil)
	}

	s.states.TouchUser(event.SenderID)
	adminMode := s.states.IsAdminMode(event.SenderID)

	decision := Route(event, adminMode)

	switch decision.Kind {
	case DecideSilent:
		return nil
	case DecideSupport:
		return s.handleSupport(ctx, event.SenderID)
	case DecideResume:
		return s.handleResume(ctx, event.SenderID)
	case DecideFAQFeedback:
		return s.handleFAQFeedback(ctx, event.SenderID, decision.FAQID, decision.Helpful)
	case DecideEventNews:
		return s.handleEventNews(ctx, event.SenderID, decision.Subscribe)
	case DecideTopic:
		return s.reply(ctx, event.SenderID, decision.Topic)
	case DecideFallback:
		return s.handleFallback(ctx, event.SenderID, decision.Text)
	default:
		return nil
	}
}

// reply dispatches a topic and stamps the last-bot-message time.
func (s *Service) reply(ctx context.Context, senderID, topic string) error {
	err := s.dispatcher.SendTopic(ctx, senderID, topic)
	if err != nil {
		s.logger.Error("topic dispatch failed", "sender", senderID, "topic", topic, "err", err)
	}
	s.states.TouchBot(senderID)
	return err
}

func (s *Service) handleSupport(ctx context.Context, senderID string) error {
	s.states.SetAdminMode(senderID)

	if s.alerts != nil {
		if err := s.alerts.SupportRequested(ctx, senderID); err != nil {
			s.logger.Error("support alert failed", "sender", senderID, "err", err)
		}
	}
	s.track(ctx, "support_requested", senderID, "")

	// The support topic's content doubles as the takeover confirmation.
	return s.reply(ctx, senderID, content.TopicSupport)
}

func (s *Service) handleResume(ctx context.Context, senderID string) error {
	s.states.SetBotMode(senderID)
	s.track(ctx, "bot_resumed", senderID, "")

	err := s.messenger.SendText(ctx, senderID, resumeConfirmText, mainMenuQuickReplies())
	if err != nil {
		s.logger.Error("resume confirmation failed", "sender", senderID, "err", err)
		err = newError(ErrorSendFailed, "resume_confirmation", err)
	}
	s.states.TouchBot(senderID)
	return err
}

func (s *Service) handleFAQFeedback(ctx context.Context, senderID, faqID string, helpful bool) error {
	if s.profiles != nil {
		if err := s.profiles.RecordFAQFeedback(ctx, senderID, faqID, helpful); err != nil {
			s.logger.Warn("faq feedback write failed", "sender", senderID, "faq", faqID, "err", err)
		}
	}
	s.track(ctx, "faq_feedback", senderID, faqID)

	text := thanksHelpfulText
	if !helpful {
		text = thanksUnhelpfulText
	}
	err := s.messenger.SendText(ctx, senderID, text, nil)
	if err != nil {
		s.logger.Error("faq feedback reply failed", "sender", senderID, "err", err)
		err = newError(ErrorSendFailed, "faq_feedback_reply", err)
	}
	s.states.TouchBot(senderID)
	return err
}

func (s *Service) handleEventNews(ctx context.Context, senderID string, subscribe bool) error {
	if s.profiles != nil {
		if err := s.profiles.SetEventNews(ctx, senderID, subscribe); err != nil {
			s.logger.Warn("event-news flag write failed", "sender", senderID, "err", err)
		}
	}
	s.track(ctx, "event_news_toggled", senderID, "")

	text := eventNewsOnText
	if !subscribe {
		text = eventNewsOffText
	}
	err := s.messenger.SendText(ctx, senderID, text, nil)
	if err != nil {
		s.logger.Error("event-news reply failed", "sender", senderID, "err", err)
		err = newError(ErrorSendFailed, "event_news_reply", err)
	}
	s.states.TouchBot(senderID)
	return err
}

// handleFallback runs free text through the FAQ table and, when that
// comes up empty, the completion provider. The user always gets some
// reply on this path.
func (s *Service) handleFallback(ctx context.Context, senderID, text string) error {
	matches := faq.Match(text, s.faqEntries)
	if len(matches) > 0 {
		return s.replyWithFAQ(ctx, senderID, matches)
	}
	return s.replyWithCompletion(ctx, senderID, text)
}

func (s *Service) replyWithFAQ(ctx context.Context, senderID string, matches []domain.FAQMatch) error {
	top := matches[0].Entry
	s.track(ctx, "faq_answered", senderID, top.ID)

	err := s.messenger.SendText(ctx, senderID, top.Answer, faqFeedbackQuickReplies(top.ID))
	if err != nil {
		s.logger.Error("faq answer failed", "sender", senderID, "faq", top.ID, "err", err)
		s.states.TouchBot(senderID)
		return newError(ErrorSendFailed, "faq_answer", err)
	}

	if len(matches) >= 2 {
		var b strings.Builder
		b.WriteString("📋 Холбоотой асуултууд:\n")
		for i, match := range matches[1:] {
			fmt.Fprintf(&b, "%d. %s\n", i+1, match.Entry.Question)
		}
		if err := s.messenger.SendText(ctx, senderID, strings.TrimRight(b.String(), "\n"), nil); err != nil {
			s.logger.Error("related questions failed", "sender", senderID, "err", err)
		}
	}
	s.states.TouchBot(senderID)
	return nil
}

func (s *Service) replyWithCompletion(ctx context.Context, senderID, text string) error {
	lang := DetectLanguage(text)

	answer := ""
	if s.completions != nil {
		completed, err := s.completions.Complete(ctx, text, lang)
		if err != nil {
			s.logger.Warn("completion failed, using fallback", "sender", senderID, "err", err)
		} else {
			answer = completed
		}
	}
	if answer == "" {
		answer = aiFallbackMN
		if lang == domain.LanguageEnglish {
			answer = aiFallbackEN
		}
		s.track(ctx, "ai_fallback", senderID, "")
	} else {
		s.track(ctx, "ai_answered", senderID, "")
	}

	err := s.messenger.SendText(ctx, senderID, answer, mainMenuQuickReplies())
	if err != nil {
		s.logger.Error("completion reply failed", "sender", senderID, "err", err)
		err = newError(ErrorSendFailed, "completion_reply", err)
	}
	s.states.TouchBot(senderID)
	return err
}

func (s *Service) track(ctx context.Context, name, senderID, topic string) {
	if s.tracker == nil {
		return
	}
	if err := s.tracker.Track(ctx, name, senderID, topic); err != nil {
		s.logger.Warn("analytics emit failed", "event", name, "sender", senderID, "err", err)
	}
}

func faqFeedbackQuickReplies(faqID string) []domain.QuickReply {
	return []domain.QuickReply{
		{ContentType: "text", Title: "👍 Тус болсон", Payload: faqHelpfulPrefix + faqID},
		{ContentType: "text", Title: "👎 Тус болоогүй", Payload: faqNotHelpfulPrefix + faqID},
		{ContentType: "text", Title: "🏠 Үндсэн цэс", Payload: content.TopicMainMenu},
	}
}

func mainMenuQuickReplies() []domain.QuickReply {
	entry, ok := content.Table[content.TopicMainMenu]
	if !ok {
		return nil
	}
	return entry.QuickReplies
}
