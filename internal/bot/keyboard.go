package bot

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// BOT KEYBOARDS

const (
	buttonContactMe  = "📞 Contact me"
	buttonNewQuote   = "🔁 New quote"
	buttonSendPhone  = "📱 Share phone number"
	keyboardRowWidth = 2
)

func (b *Bot) createOptionsKeyboard(opts []option) tgbotapi.ReplyKeyboardMarkup {
	var rows [][]tgbotapi.KeyboardButton
	for i := 0; i < len(opts); i += keyboardRowWidth {
		end := min(i+keyboardRowWidth, len(opts))

		var row []tgbotapi.KeyboardButton
		for _, o := range opts[i:end] {
			row = append(row, tgbotapi.NewKeyboardButton(o.Label))
		}
		rows = append(rows, tgbotapi.NewKeyboardButtonRow(row...))
	}

	kb := tgbotapi.NewReplyKeyboard(rows...)
	kb.ResizeKeyboard = true
	return kb
}

func (b *Bot) createQuoteActionsKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(buttonContactMe),
			tgbotapi.NewKeyboardButton(buttonNewQuote),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

func (b *Bot) createContactRequestKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButtonContact(buttonSendPhone),
		),
	)
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = true
	return kb
}
