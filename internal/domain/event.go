package domain

// EventKind discriminates the single payload an InboundEvent carries.
type EventKind string

const (
	EventPostback   EventKind = "postback"
	EventQuickReply EventKind = "quick_reply"
	EventText       EventKind = "text"
)

// InboundEvent is one webhook messaging event, reduced to the parts the
// router cares about. Exactly one of Payload/Text is meaningful for a
// given Kind: postbacks and quick replies carry Payload, text events
// carry Text.
type InboundEvent struct {
	SenderID string
	Kind     EventKind
	Payload  string
	Text     string
}

// Language is the detected reply language for free-text handling.
type Language string

const (
	LanguageMongolian Language = "mn"
	LanguageEnglish   Language = "en"
)
