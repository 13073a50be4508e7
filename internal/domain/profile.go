package domain

// Inquiry is one topic lookup recorded against a user profile.
type Inquiry struct {
	Topic string
	At    string // RFC3339
}

// UserProfile is the persisted per-sender record. All fields are
// best-effort: a missing or stale profile never blocks a reply.
type UserProfile struct {
	PK           string
	SK           string
	SenderID     string
	Name         string
	FirstSeen    string
	LastSeen     string
	LastTopic    string
	Inquiries    []Inquiry
	EventNews    bool
	MessageCount int
	FAQHelpful   map[string]int
	FAQUnhelpful map[string]int
}
