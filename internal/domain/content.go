package domain

// RenderType selects how a ContentEntry is turned into outbound messages.
type RenderType string

const (
	RenderCarousel             RenderType = "carousel"
	RenderTextWithQuickReplies RenderType = "text_with_quick_replies"
	RenderButton               RenderType = "button"
)

// ButtonType mirrors the Messenger button template action types.
type ButtonType string

const (
	ButtonPostback ButtonType = "postback"
	ButtonWebURL   ButtonType = "web_url"
	ButtonPhone    ButtonType = "phone_number"
)

// Button is one action on a button template or carousel card.
type Button struct {
	Type    ButtonType `json:"type"`
	Title   string     `json:"title"`
	URL     string     `json:"url,omitempty"`
	Payload string     `json:"payload,omitempty"`
}

// QuickReply is one chip shown above the text input.
type QuickReply struct {
	ContentType string `json:"content_type"`
	Title       string `json:"title"`
	Payload     string `json:"payload"`
}

// Card is one element of a generic-template carousel.
type Card struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle,omitempty"`
	ImageURL string   `json:"image_url,omitempty"`
	Buttons  []Button `json:"buttons,omitempty"`
}

// ContentEntry is the display payload for one topic key. Loaded once at
// startup and never mutated.
type ContentEntry struct {
	Type         RenderType
	Text         string
	Buttons      []Button
	QuickReplies []QuickReply
}

// FAQEntry is one question/answer record with its match keywords.
type FAQEntry struct {
	ID       string
	Question string
	Answer   string
	Keywords []string
}

// FAQMatch is a scored FAQ entry returned by the matcher.
type FAQMatch struct {
	Entry FAQEntry
	Score int
}
