package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/motorent/internal/model"
	"github.com/motorent/internal/store"
)

// cannedReplies 是聊天组件的静态应答表，键与选项的 ReplyText 对应。
var cannedReplies = map[string]string{
	"opening-hours": "We're open 8am to 7pm, seven days a week.",
	"requirements":  "You'll need a valid license (or CBT certificate) and a credit or debit card for the deposit.",
	"insurance":     "Every rental includes third-party insurance; fully comprehensive cover is available at checkout.",
	"delivery":      "We can deliver the bike to you within the city for a small fee; just ask us when booking.",
	"deposit":       "The security deposit is refunded in full when the bike comes back in the condition it left.",
	"contact":       "You can reach us by phone, email, or the contact form, whichever suits you.",
}

const defaultReply = "Thanks for reaching out! Leave your question in the contact form and we'll get back to you shortly."

// ReplyFor looks up the canned reply for a chat option key. Unknown keys get
// a friendly default rather than an error; the lookup is not algorithmic.
func ReplyFor(key string) string {
	if reply, ok := cannedReplies[strings.TrimSpace(key)]; ok {
		return reply
	}
	return defaultReply
}

// ChatbotService manages the editable chat option list. Options are
// identified by a client-assigned surrogate key, never by their position, so
// a bulk save after reordering cannot re-identify an unrelated option.
type ChatbotService struct {
	store *store.Client
}

// NewChatbotService constructs a ChatbotService.
func NewChatbotService(client *store.Client) *ChatbotService {
	return &ChatbotService{store: client}
}

// Options fetches the current option list from the store.
func (s *ChatbotService) Options(ctx context.Context) ([]model.ChatbotOption, error) {
	return store.List[model.ChatbotOption](ctx, s.store, model.PathChatbotOptions)
}

// SaveOptions writes the whole option list in one bulk replacement. Options
// created in this edit session get their surrogate key here; existing keys
// are never reassigned.
func (s *ChatbotService) SaveOptions(ctx context.Context, options []model.ChatbotOption) error {
	prepared := make([]model.ChatbotOption, len(options))
	for i, option := range options {
		if strings.TrimSpace(option.Key) == "" {
			option.Key = uuid.New().String()
		}
		prepared[i] = option
	}
	return s.store.PutJSON(ctx, model.PathChatbotOptions, prepared, nil)
}
