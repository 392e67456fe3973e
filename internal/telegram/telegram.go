// Package telegram adapts the bot logic to the Telegram transport.
package telegram

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"faqbot/internal/bot"
)

// longPollSeconds is the server-side hold time for GetUpdates requests.
// requestTimeout bounds every API call at the HTTP layer so a hung
// connection cannot block a handler goroutine; it must exceed the long-poll
// window or the update loop would time itself out.
const (
	longPollSeconds = 30
	requestTimeout  = (longPollSeconds + 15) * time.Second
)

// Transport drives a Telegram long-poll loop and implements bot.Sender.
type Transport struct {
	api *tgbotapi.BotAPI
}

// New authenticates against the Telegram Bot API.
func New(token string) (*Transport, error) {
	api, err := tgbotapi.NewBotAPIWithClient(token, tgbotapi.APIEndpoint, newAPIClient())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to telegram: %w", err)
	}
	log.Printf("Authorized on Telegram account %s", api.Self.UserName)
	return &Transport{api: api}, nil
}

// SendMessage sends a Markdown text reply to a chat.
func (t *Transport) SendMessage(chatID, text string) error {
	id, err := parseChatID(chatID)
	if err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(id, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	_, err = t.api.Send(msg)
	return err
}

// SendMenu sends a Markdown message with an inline button keyboard.
func (t *Transport) SendMenu(chatID, text string, buttons [][]bot.MenuButton) error {
	id, err := parseChatID(chatID)
	if err != nil {
		return err
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(buttons))
	for _, row := range buttons {
		btns := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			btns = append(btns, tgbotapi.NewInlineKeyboardButtonData(b.Label, b.Data))
		}
		rows = append(rows, btns)
	}

	msg := tgbotapi.NewMessage(id, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	_, err = t.api.Send(msg)
	return err
}

// Run consumes updates until the context is cancelled. Handlers run one
// goroutine per update, so chats are handled concurrently with each other.
func (t *Transport) Run(ctx context.Context, b *bot.Bot) {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = longPollSeconds
	updates := t.api.GetUpdatesChan(cfg)

	log.Println("Telegram update loop started")
	for {
		select {
		case <-ctx.Done():
			t.api.StopReceivingUpdates()
			log.Println("Telegram update loop stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			go t.dispatch(ctx, b, update)
		}
	}
}

func (t *Transport) dispatch(ctx context.Context, b *bot.Bot, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		// Acknowledge so the button spinner clears
		if _, err := t.api.Request(tgbotapi.NewCallback(update.CallbackQuery.ID, "")); err != nil {
			log.Printf("Failed to answer callback: %v", err)
		}
		if update.CallbackQuery.Message == nil {
			return
		}
		chatID := formatChatID(update.CallbackQuery.Message.Chat.ID)
		if err := b.HandleCallback(ctx, chatID, update.CallbackQuery.Data); err != nil {
			log.Printf("Callback handling failed: %v", err)
		}
		return
	}

	if update.Message == nil || update.Message.Text == "" {
		return
	}

	chatID := formatChatID(update.Message.Chat.ID)

	var err error
	if update.Message.IsCommand() {
		switch update.Message.Command() {
		case "start":
			err = b.HandleStart(ctx, chatID)
		case "answer":
			err = b.HandleAnswer(ctx, chatID, update.Message.CommandArguments())
		case "amend":
			err = b.HandleAmend(ctx, chatID, update.Message.CommandArguments())
		}
	} else {
		err = b.HandleMessage(ctx, chatID, update.Message.Text)
	}
	if err != nil {
		log.Printf("Message handling failed for chat %s: %v", chatID, err)
	}
}

func newAPIClient() *http.Client {
	return &http.Client{Timeout: requestTimeout}
}

func parseChatID(chatID string) (int64, error) {
	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid chat id %q: %w", chatID, err)
	}
	return id, nil
}

func formatChatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
