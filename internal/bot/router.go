package bot

import (
	"strings"
	"unicode"

	"oyunlag-bot/internal/content"
	"oyunlag-bot/internal/domain"
)

// Control payloads recognized ahead of topic dispatch.
const (
	PayloadSupport      = "CONTACT_SUPPORT"
	PayloadBotResume    = "BOT_RESUME"
	PayloadEventNewsOn  = "EVENT_NEWS_ON"
	PayloadEventNewsOff = "EVENT_NEWS_OFF"

	faqHelpfulPrefix    = "FAQ_HELPFUL_"
	faqNotHelpfulPrefix = "FAQ_NOT_HELPFUL_"
)

// resumePhrase re-enables the bot from free text. It is checked before
// the admin-mode suppression so an operator can hand the conversation
// back by telling the user what to type.
const resumePhrase = "resume bot"

// DecisionKind says what the router wants done with an event.
type DecisionKind int

const (
	// DecideSilent suppresses any automated reply.
	DecideSilent DecisionKind = iota
	// DecideTopic renders a content-table topic.
	DecideTopic
	// DecideSupport hands the conversation to a human operator.
	DecideSupport
	// DecideResume returns the conversation to the bot.
	DecideResume
	// DecideFAQFeedback records helpful/not-helpful on an FAQ answer.
	DecideFAQFeedback
	// DecideEventNews toggles the event-news subscription.
	DecideEventNews
	// DecideFallback runs the FAQ-then-AI path on free text.
	DecideFallback
)

// Decision is the router's verdict for one inbound event.
type Decision struct {
	Kind      DecisionKind
	Topic     string
	FAQID     string
	Helpful   bool
	Subscribe bool
	Text      string // original free text, kept for the fallback path
}

// keywordRule maps a set of trigger substrings to one topic. Rules are
// evaluated in order; the first rule with any matching keyword wins.
type keywordRule struct {
	topic    string
	keywords []string
}

var keywordRules = []keywordRule{
	{content.TopicMainMenu, []string{"hi", "hello", "сайн", "сайнуу", "menu", "цэс", "start", "эхлэх", "мэдээлэл"}},
	{content.TopicTuition, []string{"төлбөр", "үнэ"}},
	{content.TopicCurriculum, []string{"хөтөлбөр", "сургалт"}},
	{content.TopicAdmission, []string{"элсэлт", "бүртгэл"}},
	{content.TopicLocation, []string{"хаяг", "байршил", "газар"}},
	{content.TopicFood, []string{"хоол", "хоолны"}},
	{content.TopicBus, []string{"автобус", "bus"}},
	{content.TopicContact, []string{"холбоо", "утас", "contact"}},
}

// Route decides how to handle one event given the current admin state.
// Pure: the caller applies the decision's side effects.
func Route(event domain.InboundEvent, adminMode bool) Decision {
	switch event.Kind {
	case domain.EventPostback, domain.EventQuickReply:
		return routePayload(event.Payload, adminMode)
	case domain.EventText:
		return routeText(event.Text, adminMode)
	default:
		return Decision{Kind: DecideSilent}
	}
}

func routePayload(payload string, adminMode bool) Decision {
	switch {
	case payload == PayloadSupport:
		return Decision{Kind: DecideSupport}
	case payload == PayloadBotResume:
		return Decision{Kind: DecideResume}
	case payload == PayloadEventNewsOn:
		return Decision{Kind: DecideEventNews, Subscribe: true}
	case payload == PayloadEventNewsOff:
		return Decision{Kind: DecideEventNews, Subscribe: false}
	case strings.HasPrefix(payload, faqHelpfulPrefix):
		return Decision{Kind: DecideFAQFeedback, FAQID: strings.TrimPrefix(payload, faqHelpfulPrefix), Helpful: true}
	case strings.HasPrefix(payload, faqNotHelpfulPrefix):
		return Decision{Kind: DecideFAQFeedback, FAQID: strings.TrimPrefix(payload, faqNotHelpfulPrefix), Helpful: false}
	}
	// Only control payloads cut through an active takeover.
	if adminMode {
		return Decision{Kind: DecideSilent}
	}
	return Decision{Kind: DecideTopic, Topic: payload}
}

func routeText(text string, adminMode bool) Decision {
	normalized := strings.ToLower(strings.TrimSpace(text))

	if normalized == resumePhrase {
		return Decision{Kind: DecideResume}
	}
	if adminMode {
		return Decision{Kind: DecideSilent}
	}

	for _, rule := range keywordRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(normalized, keyword) {
				return Decision{Kind: DecideTopic, Topic: rule.topic}
			}
		}
	}
	return Decision{Kind: DecideFallback, Text: text}
}

// DetectLanguage picks the reply language for free text: any Cyrillic
// rune means Mongolian, otherwise English.
func DetectLanguage(text string) domain.Language {
	for _, r := range text {
		if unicode.Is(unicode.Cyrillic, r) {
			return domain.LanguageMongolian
		}
	}
	return domain.LanguageEnglish
}
