package email

import (
	"fmt"

	"faqbot/internal/config"
	"faqbot/internal/models"
)

// Notifier sends email notifications for escalation-log events.
type Notifier struct {
	service *Service
}

// NewNotifier creates a new email notifier.
func NewNotifier(cfg *config.Config) *Notifier {
	return &Notifier{service: NewService(cfg)}
}

// NotifyQuestionEscalated tells the moderator inbox that a new question
// needs an answer.
func (n *Notifier) NotifyQuestionEscalated(q *models.UnansweredQuestion) {
	if !n.service.IsEnabled() {
		return
	}
	body := fmt.Sprintf(
		"A question could not be answered automatically.\n\nQuestion: %s\nID: %s\nAsked at: %s\n\nResolve it from the bot with:\n/answer %s <response>\n",
		q.Question, q.ID, q.CreatedAt.Format("2006-01-02 15:04:05"), q.ID,
	)
	n.service.SendAsync("New unanswered question", body)
}

// NotifyQuestionResolved confirms a resolution for the moderator's records.
func (n *Notifier) NotifyQuestionResolved(q *models.UnansweredQuestion, answer string) {
	if !n.service.IsEnabled() {
		return
	}
	body := fmt.Sprintf(
		"Question resolved and added to the FAQ list.\n\nQuestion: %s\nAnswer: %s\nID: %s\n",
		q.Question, answer, q.ID,
	)
	n.service.SendAsync("Question resolved", body)
}
