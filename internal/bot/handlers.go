package bot

import (
	"bytes"
	"context"
	"fmt"

	"autoquote-bot/internal/pricing"
	"autoquote-bot/internal/storage"
	"autoquote-bot/internal/storage/redis"
	"autoquote-bot/pkg/api"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	historyLimit   = 5
	exportDays     = 30
	rateLimitQuote = "quote"
)

func (b *Bot) handleCommand(ctx context.Context, chatID, userID int64, command string) {
	switch command {
	case "start", "quote":
		b.handleStart(ctx, chatID)
	case "help":
		b.handleHelp(ctx, chatID)
	case "cancel":
		b.handleCancel(ctx, chatID)
	case "history":
		b.handleHistory(ctx, chatID)
	case "export":
		b.handleExport(ctx, chatID, userID)
	default:
		b.handleUnknownCommand(ctx, chatID)
	}
}

func (b *Bot) handleDefault(ctx context.Context, chatID int64) {
	b.sendError(chatID, "I didn't get that. Send /quote to start a new quote.")
}

func (b *Bot) handleUnknownCommand(ctx context.Context, chatID int64) {
	b.sendError(chatID, "Unknown command. Use /help to see what I can do.")
}

func (b *Bot) handleHelp(ctx context.Context, chatID int64) {
	helpText := `Available commands:
/quote - Get a price quote
/history - Your recent quotes
/cancel - Stop the current quote
/help - Show this help`
	b.sendMessage(tgbotapi.NewMessage(chatID, helpText))
}

func (b *Bot) handleStart(ctx context.Context, chatID int64) {
	state := &redis.DialogState{Step: StepServiceSelection}
	if prev, err := b.state.GetDialogState(ctx, chatID); err == nil {
		state.PhoneNumber = prev.PhoneNumber
	}

	if err := b.state.SetDialogState(ctx, chatID, state); err != nil {
		b.logger.Error("Failed to set service selection state",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		b.sendError(chatID, "Something went wrong, please try again")
		return
	}

	msg := tgbotapi.NewMessage(chatID, "Hi! 👋 Which service would you like a quote for?")
	msg.ReplyMarkup = b.createOptionsKeyboard(serviceOptions(b.engine.Services()))
	b.sendMessage(msg)
}

func (b *Bot) handleCancel(ctx context.Context, chatID int64) {
	if err := b.state.DropDialogState(ctx, chatID); err != nil {
		b.logger.Error("Failed to drop dialog state",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}

	msg := tgbotapi.NewMessage(chatID, "Quote cancelled. Send /quote whenever you're ready.")
	msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	b.sendMessage(msg)
}

func (b *Bot) handleServiceSelection(ctx context.Context, chatID int64, text string) {
	opts := serviceOptions(b.engine.Services())
	serviceID, ok := matchOption(opts, text)
	if !ok {
		msg := tgbotapi.NewMessage(chatID, "Please pick one of the services below 👇")
		msg.ReplyMarkup = b.createOptionsKeyboard(opts)
		b.sendMessage(msg)
		return
	}

	state, err := b.state.GetDialogState(ctx, chatID)
	if err != nil {
		b.logger.Error("Failed to get dialog state",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		b.sendError(chatID, "Something went wrong, please try again")
		return
	}

	state.Step = StepField
	state.Service = serviceID
	state.FieldIndex = 0
	state.Params = map[string]string{}
	state.QuoteID = ""

	b.askNextOrQuote(ctx, chatID, state)
}

func (b *Bot) handleFieldAnswer(ctx context.Context, chatID int64, text string) {
	state, err := b.state.GetDialogState(ctx, chatID)
	if err != nil {
		b.logger.Error("Failed to get dialog state",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		b.sendError(chatID, "Something went wrong, please try again")
		return
	}

	calc, err := b.engine.Lookup(state.Service)
	if err != nil {
		b.logger.Warn("Dialog state references unknown service",
			zap.Int64("chat_id", chatID),
			zap.String("service", state.Service))
		b.sendError(chatID, "That service is not available. Send /quote to start over.")
		return
	}

	questions := questionsFor(calc)
	if state.FieldIndex >= len(questions) {
		b.askNextOrQuote(ctx, chatID, state)
		return
	}

	q := questions[state.FieldIndex]
	value, ok := matchOption(q.Options, text)
	if !ok {
		b.askQuestion(chatID, q)
		return
	}

	if state.Params == nil {
		state.Params = map[string]string{}
	}
	state.Params[q.Key] = value
	state.FieldIndex++

	b.askNextOrQuote(ctx, chatID, state)
}

// askNextOrQuote asks the next unanswered question, or prices the quote once
// every question has an answer.
func (b *Bot) askNextOrQuote(ctx context.Context, chatID int64, state *redis.DialogState) {
	calc, err := b.engine.Lookup(state.Service)
	if err != nil {
		b.sendError(chatID, "That service is not available. Send /quote to start over.")
		return
	}

	questions := questionsFor(calc)
	if state.FieldIndex < len(questions) {
		if err := b.state.SetDialogState(ctx, chatID, state); err != nil {
			b.logger.Error("Failed to save dialog state",
				zap.Int64("chat_id", chatID),
				zap.Error(err))
			b.sendError(chatID, "Something went wrong, please try again")
			return
		}
		b.askQuestion(chatID, questions[state.FieldIndex])
		return
	}

	b.sendQuote(ctx, chatID, calc, state)
}

func (b *Bot) askQuestion(chatID int64, q question) {
	msg := tgbotapi.NewMessage(chatID, q.Prompt)
	msg.ReplyMarkup = b.createOptionsKeyboard(q.Options)
	b.sendMessage(msg)
}

func (b *Bot) sendQuote(ctx context.Context, chatID int64, calc pricing.Calculator, state *redis.DialogState) {
	const operation = "bot.sendQuote"

	limited, err := b.state.CheckRateLimit(ctx, chatID, rateLimitQuote, b.cfg.QuoteRateLimit, b.cfg.QuoteRateWindow)
	if err != nil {
		b.logger.Warn("Rate limit check failed",
			zap.String("operation", operation),
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}
	if limited {
		b.sendError(chatID, "You've requested a lot of quotes recently. Please try again later.")
		return
	}

	params := pricing.Params(state.Params)
	quote, err := b.engine.Calculate(ctx, state.Service, params)
	if err != nil {
		b.logger.Error("Failed to calculate quote",
			zap.String("operation", operation),
			zap.Int64("chat_id", chatID),
			zap.String("service", state.Service),
			zap.Error(err))
		b.sendError(chatID, "Could not calculate the quote. Send /quote to start over.")
		return
	}

	record := storage.NewQuoteRecord(chatID, params, quote, b.now())
	if err := b.storage.SaveQuote(ctx, record); err != nil {
		b.logger.Error("Failed to save quote",
			zap.String("operation", operation),
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	} else {
		state.QuoteID = record.ID.String()
	}

	state.Step = StepQuoted
	if err := b.state.SetDialogState(ctx, chatID, state); err != nil {
		b.logger.Error("Failed to save dialog state",
			zap.String("operation", operation),
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}

	var link string
	if b.cfg.CalculatorBaseURL != "" {
		link = b.cfg.CalculatorBaseURL + calc.Path
	}

	msg := tgbotapi.NewMessage(chatID, FormatQuote(quote, link))
	msg.ReplyMarkup = b.createQuoteActionsKeyboard()
	b.sendMessage(msg)
}

func (b *Bot) handleQuoteAction(ctx context.Context, chatID int64, text string) {
	switch text {
	case buttonNewQuote:
		b.handleStart(ctx, chatID)
	case buttonContactMe:
		state, err := b.state.GetDialogState(ctx, chatID)
		if err != nil {
			b.sendError(chatID, "Something went wrong, please try again")
			return
		}
		if state.PhoneNumber != "" {
			b.submitLead(ctx, chatID, state, state.PhoneNumber)
			return
		}

		state.Step = StepContactMethod
		if err := b.state.SetDialogState(ctx, chatID, state); err != nil {
			b.logger.Error("Failed to set contact state",
				zap.Int64("chat_id", chatID),
				zap.Error(err))
		}

		msg := tgbotapi.NewMessage(chatID, "Share your phone number or type it in, and we'll call you back.")
		msg.ReplyMarkup = b.createContactRequestKeyboard()
		b.sendMessage(msg)
	default:
		msg := tgbotapi.NewMessage(chatID, "Use the buttons below, or send /quote for a new quote.")
		msg.ReplyMarkup = b.createQuoteActionsKeyboard()
		b.sendMessage(msg)
	}
}

func (b *Bot) handleContactInput(ctx context.Context, chatID int64, text string) {
	if !IsValidPhoneNumber(text) {
		b.sendError(chatID, "That doesn't look like a phone number. Example: +1 555 010 0199")
		return
	}

	state, err := b.state.GetDialogState(ctx, chatID)
	if err != nil {
		b.sendError(chatID, "Something went wrong, please try again")
		return
	}

	b.submitLead(ctx, chatID, state, NormalizePhoneNumber(text))
}

func (b *Bot) submitLead(ctx context.Context, chatID int64, state *redis.DialogState, phone string) {
	const operation = "bot.submitLead"

	state.PhoneNumber = phone
	state.Step = StepQuoted

	quoteID, err := uuid.Parse(state.QuoteID)
	if err != nil {
		b.sendError(chatID, "Please request a quote first with /quote")
		return
	}

	if err := b.state.SetDialogState(ctx, chatID, state); err != nil {
		b.logger.Error("Failed to save dialog state",
			zap.String("operation", operation),
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}

	record, err := b.storage.GetQuote(ctx, quoteID)
	if err != nil {
		b.logger.Error("Failed to load quote",
			zap.String("operation", operation),
			zap.String("quote_id", state.QuoteID),
			zap.Error(err))
		b.sendError(chatID, "We couldn't find your quote. Send /quote to start over.")
		return
	}

	if b.crm.Enabled() {
		lead := api.Lead{
			QuoteID:      record.ID.String(),
			ChatID:       chatID,
			Phone:        phone,
			Service:      record.Service,
			Params:       record.Params,
			FinalPrice:   record.FinalPrice,
			CustomerType: record.CustomerType,
		}
		if err := b.crm.SubmitLead(ctx, lead); err != nil {
			b.logger.Error("Failed to submit lead",
				zap.String("operation", operation),
				zap.String("quote_id", state.QuoteID),
				zap.Error(err))
			b.sendError(chatID, "We couldn't reach our team right now. Please try again later.")
			return
		}
	}

	if err := b.storage.MarkContacted(ctx, quoteID, phone); err != nil {
		b.logger.Error("Failed to mark quote contacted",
			zap.String("operation", operation),
			zap.String("quote_id", state.QuoteID),
			zap.Error(err))
	}

	b.logger.Info("Lead submitted",
		zap.Int64("chat_id", chatID),
		zap.String("quote_id", state.QuoteID))

	msg := tgbotapi.NewMessage(chatID, "✅ Thanks! Our team will contact you shortly.")
	msg.ReplyMarkup = b.createQuoteActionsKeyboard()
	b.sendMessage(msg)
}

func (b *Bot) handleHistory(ctx context.Context, chatID int64) {
	quotes, err := b.storage.ListQuotesByChat(ctx, chatID, historyLimit)
	if err != nil {
		b.logger.Error("Failed to list quotes",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		b.sendError(chatID, "Could not load your quotes")
		return
	}

	b.sendMessage(tgbotapi.NewMessage(chatID, FormatHistory(quotes)))
}

func (b *Bot) handleExport(ctx context.Context, chatID, userID int64) {
	if !b.cfg.IsAdmin(userID) {
		b.handleUnknownCommand(ctx, chatID)
		return
	}

	since := b.now().AddDate(0, 0, -exportDays)
	quotes, err := b.storage.ListQuotes(ctx, since)
	if err != nil {
		b.logger.Error("Failed to list quotes for export", zap.Error(err))
		b.sendError(chatID, "Export failed")
		return
	}

	var buf bytes.Buffer
	if err := storage.WriteQuotesWorkbook(&buf, quotes); err != nil {
		b.logger.Error("Failed to build export", zap.Error(err))
		b.sendError(chatID, "Export failed")
		return
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  fmt.Sprintf("quotes_%s.xlsx", b.now().Format("20060102_1504")),
		Bytes: buf.Bytes(),
	})
	doc.Caption = fmt.Sprintf("%d quotes from the last %d days", len(quotes), exportDays)

	if _, err := b.sender.Send(doc); err != nil {
		b.logger.Error("Failed to send export",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
	}
}
