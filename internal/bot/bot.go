// Package bot contains the chat-facing logic: resolving inbound messages
// against the answer store, escalating unanswered questions, and the
// moderator learning loop.
package bot

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"faqbot/internal/answers"
	"faqbot/internal/email"
	"faqbot/internal/metrics"
	"faqbot/internal/models"
	"faqbot/internal/resolver"
)

const defaultTimeout = 10 * time.Second

// MenuButton is one inline button in a reply menu.
type MenuButton struct {
	Label string
	Data  string
}

// Sender is the outbound half of the chat transport.
type Sender interface {
	SendMessage(chatID, text string) error
	SendMenu(chatID, text string, buttons [][]MenuButton) error
}

// EscalationLog records and mutates unanswered questions.
// *db.DB satisfies this.
type EscalationLog interface {
	RecordQuestion(ctx context.Context, question, chatID string) (uuid.UUID, error)
	GetQuestion(ctx context.Context, id uuid.UUID) (*models.UnansweredQuestion, error)
	ResolveQuestion(ctx context.Context, id uuid.UUID, answer string) error
	AmendAnswer(ctx context.Context, id uuid.UUID, answer string) error
}

// FaqSource is the spreadsheet source of truth: bulk read for reloads plus
// row append for crowd-added entries.
type FaqSource interface {
	answers.Source
	Append(ctx context.Context, entry models.FaqEntry) error
}

// Bot wires the resolver, the escalation log, and the learning loop to a
// chat transport.
type Bot struct {
	store           *answers.Store
	resolver        *resolver.Resolver
	log             EscalationLog
	source          FaqSource
	sender          Sender
	notifier        *email.Notifier
	moderatorChatID string
	timeout         time.Duration
}

// New creates a bot. notifier may be nil when email is not configured.
func New(store *answers.Store, res *resolver.Resolver, escalation EscalationLog, source FaqSource, sender Sender, notifier *email.Notifier, moderatorChatID string) *Bot {
	return &Bot{
		store:           store,
		resolver:        res,
		log:             escalation,
		source:          source,
		sender:          sender,
		notifier:        notifier,
		moderatorChatID: moderatorChatID,
		timeout:         defaultTimeout,
	}
}

// HandleMessage resolves one inbound text message and replies. Unresolvable
// questions are escalated to the moderator.
func (b *Bot) HandleMessage(ctx context.Context, chatID, text string) error {
	if text == "" {
		return nil
	}

	result := b.resolver.Resolve(text)
	metrics.RecordResolution(result.Outcome())

	switch result.Kind {
	case resolver.InstantMatch, resolver.ExactMatch:
		return b.sender.SendMessage(chatID, result.Answer)
	case resolver.FuzzyMatch:
		reply := fmt.Sprintf("🔍 Did you mean:\n\n*%s?*\n\n%s", result.Question, result.Answer)
		return b.sender.SendMessage(chatID, reply)
	default:
		return b.escalate(ctx, chatID, text)
	}
}

// escalate logs the question and alerts the moderator exactly once.
func (b *Bot) escalate(ctx context.Context, chatID, text string) error {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	id, err := b.log.RecordQuestion(ctx, text, chatID)
	if err != nil {
		log.Printf("Failed to record unanswered question: %v", err)
		return b.sender.SendMessage(chatID, "⚠️ Something went wrong logging your question. Please try again later.")
	}

	alert := fmt.Sprintf("❓ *New Question:*\n\n%s\n\nReply with:\n/answer %s [response]", text, id)
	if err := b.sender.SendMessage(b.moderatorChatID, alert); err != nil {
		log.Printf("Failed to alert moderator about question %s: %v", id, err)
	}

	if b.notifier != nil {
		b.notifier.NotifyQuestionEscalated(&models.UnansweredQuestion{
			ID:        id,
			Question:  text,
			ChatID:    chatID,
			CreatedAt: time.Now(),
		})
	}

	return b.sender.SendMessage(chatID, "📬 Question logged. You'll be notified when answered!")
}
