package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"faqbot/internal/answers"
	"faqbot/internal/bot"
	"faqbot/internal/db"
	"faqbot/internal/models"
)

// DashboardHandler serves the JSON moderator dashboard: pending questions,
// the loaded FAQ list, and a resolve endpoint mirroring the chat command.
type DashboardHandler struct {
	db    *db.DB
	store *answers.Store
	bot   *bot.Bot
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(database *db.DB, store *answers.Store, b *bot.Bot) *DashboardHandler {
	return &DashboardHandler{db: database, store: store, bot: b}
}

// ListQuestions returns pending unanswered questions, oldest first.
func (h *DashboardHandler) ListQuestions(c fiber.Ctx) error {
	questions, err := h.db.GetPendingQuestions(c.Context())
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to list questions")
	}
	if questions == nil {
		questions = []models.UnansweredQuestion{}
	}
	return jsonSuccess(c, questions)
}

// GetQuestion returns a single log entry by id.
func (h *DashboardHandler) GetQuestion(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid question id")
	}

	question, err := h.db.GetQuestion(c.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrQuestionNotFound) {
			return jsonError(c, fiber.StatusNotFound, "question not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch question")
	}
	return jsonSuccess(c, question)
}

// ListFaqs returns the currently loaded FAQ entries in first-seen order.
func (h *DashboardHandler) ListFaqs(c fiber.Ctx) error {
	return jsonSuccess(c, h.store.Entries())
}

type resolveRequest struct {
	Answer string `json:"answer"`
}

// ResolveQuestion runs the learning loop from the dashboard, equivalent to
// the chat "answer <id> <text>" command.
func (h *DashboardHandler) ResolveQuestion(c fiber.Ctx) error {
	return h.applyAnswer(c, false)
}

// AmendQuestion corrects an already-answered entry.
func (h *DashboardHandler) AmendQuestion(c fiber.Ctx) error {
	return h.applyAnswer(c, true)
}

func (h *DashboardHandler) applyAnswer(c fiber.Ctx, amend bool) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid question id")
	}

	var req resolveRequest
	if err := c.Bind().Body(&req); err != nil || req.Answer == "" {
		return jsonError(c, fiber.StatusBadRequest, "answer text is required")
	}

	question, err := h.bot.Learn(c.Context(), id, req.Answer, amend)
	if err != nil {
		switch {
		case errors.Is(err, db.ErrQuestionNotFound):
			return jsonError(c, fiber.StatusNotFound, "question not found")
		case errors.Is(err, db.ErrAlreadyAnswered):
			return jsonError(c, fiber.StatusConflict, "question is already answered")
		case errors.Is(err, db.ErrNotAnswered):
			return jsonError(c, fiber.StatusConflict, "question has not been answered yet")
		default:
			return jsonError(c, fiber.StatusBadGateway, err.Error())
		}
	}

	return jsonSuccess(c, question)
}
