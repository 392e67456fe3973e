package bot

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"faqbot/internal/db"
	"faqbot/internal/models"
	"faqbot/internal/validation"
)

// Learning-loop step names, reported back to the moderator on failure.
const (
	StepResolve     = "resolve"
	StepStoreUpdate = "store update"
	StepSheetAppend = "sheet append"
	StepNotifyAsker = "notify asker"
)

// StepError reports which learning-loop step failed. Earlier steps are never
// rolled back; the moderator retries manually.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %q failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Learn applies a moderator-supplied answer to a logged question: mark the
// log entry resolved, teach the answer store, append to the source of truth,
// and notify the original asker. With amend set, the entry must already be
// answered and its answer is overwritten instead.
func (b *Bot) Learn(ctx context.Context, id uuid.UUID, answer string, amend bool) (*models.UnansweredQuestion, error) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	question, err := b.log.GetQuestion(ctx, id)
	if err != nil {
		return nil, &StepError{Step: StepResolve, Err: err}
	}
	if amend {
		err = b.log.AmendAnswer(ctx, id, answer)
	} else {
		err = b.log.ResolveQuestion(ctx, id, answer)
	}
	if err != nil {
		return nil, &StepError{Step: StepResolve, Err: err}
	}

	if err := b.store.Upsert(ctx, question.Question, answer, models.CategoryUserAdded); err != nil {
		return question, &StepError{Step: StepStoreUpdate, Err: err}
	}

	// Appending keeps the crowd-added entry across scheduled reloads.
	entry := models.FaqEntry{
		Question: question.Question,
		Answer:   answer,
		Category: models.CategoryUserAdded,
	}
	if err := b.appendWithRetry(ctx, entry); err != nil {
		return question, &StepError{Step: StepSheetAppend, Err: err}
	}

	notice := fmt.Sprintf("📬 *Answer to your question:*\n\n%s\n\n%s", question.Question, answer)
	if err := b.sender.SendMessage(question.ChatID, notice); err != nil {
		return question, &StepError{Step: StepNotifyAsker, Err: err}
	}

	if b.notifier != nil {
		b.notifier.NotifyQuestionResolved(question, answer)
	}

	return question, nil
}

// HandleAnswer runs the learning loop for a moderator-issued
// "answer <id> <text>" command. Commands from any other chat identity are
// silently ignored.
func (b *Bot) HandleAnswer(ctx context.Context, fromChatID, args string) error {
	return b.handleModeratorCommand(ctx, fromChatID, args, false)
}

// HandleAmend corrects an already-answered question. Unlike resolve, amend
// requires the entry to be answered; the answered flag itself never reverts.
func (b *Bot) HandleAmend(ctx context.Context, fromChatID, args string) error {
	return b.handleModeratorCommand(ctx, fromChatID, args, true)
}

func (b *Bot) handleModeratorCommand(ctx context.Context, fromChatID, args string, amend bool) error {
	if fromChatID != b.moderatorChatID {
		return nil
	}

	idStr, answer, err := validation.ParseModeratorCommand(args)
	if err != nil {
		return b.sender.SendMessage(fromChatID, "❌ "+err.Error())
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return b.sender.SendMessage(fromChatID, "❌ Invalid question id: "+idStr)
	}

	if _, err := b.Learn(ctx, id, answer, amend); err != nil {
		return b.sender.SendMessage(fromChatID, learnFailureText(err))
	}

	return b.sender.SendMessage(fromChatID, "✅ Answer added to FAQs!")
}

// appendWithRetry retries the sheet append once on transient failure.
func (b *Bot) appendWithRetry(ctx context.Context, entry models.FaqEntry) error {
	err := b.source.Append(ctx, entry)
	if err == nil {
		return nil
	}
	log.Printf("Sheet append failed, retrying once: %v", err)
	return b.source.Append(ctx, entry)
}

// learnFailureText turns a learning-loop error into a moderator-facing reply.
func learnFailureText(err error) string {
	switch {
	case errors.Is(err, db.ErrQuestionNotFound):
		return "❌ No question with that id."
	case errors.Is(err, db.ErrAlreadyAnswered):
		return "❌ That question is already answered. Use /amend to correct it."
	case errors.Is(err, db.ErrNotAnswered):
		return "❌ That question has no answer yet. Use /answer to resolve it."
	default:
		return fmt.Sprintf("❌ %v\nEarlier steps were not rolled back; retry manually.", err)
	}
}
