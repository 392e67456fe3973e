package bot

import "context"

// Inline menu callback identifiers.
const (
	CallbackCalendar     = "calendar"
	CallbackRegistration = "registration"
	CallbackSubscribe    = "subscribe"
)

// HandleStart sends the welcome message with the inline menu.
func (b *Bot) HandleStart(ctx context.Context, chatID string) error {
	buttons := [][]MenuButton{
		{
			{Label: "📅 Calendar", Data: CallbackCalendar},
			{Label: "📝 Registration", Data: CallbackRegistration},
		},
		{
			{Label: "🔔 Subscribe", Data: CallbackSubscribe},
		},
	}
	return b.sender.SendMenu(chatID, "🎖️ *Service Helper Bot*\nAsk me anything about the service year!", buttons)
}

// HandleCallback answers an inline menu button press with a canned reply.
func (b *Bot) HandleCallback(ctx context.Context, chatID, data string) error {
	var reply string
	switch data {
	case CallbackCalendar:
		reply = "📅 The mobilization calendar is published on the portal under 'Mobilization Timetable'."
	case CallbackRegistration:
		reply = "📝 Online registration opens on the portal. Have your credentials and passport photos ready."
	case CallbackSubscribe:
		reply = "🔔 You're subscribed! You'll get an update whenever your logged questions are answered."
	default:
		return nil
	}
	return b.sender.SendMessage(chatID, reply)
}
