package bot

import (
	"context"
	"fmt"
	"sync"
	"time"

	"autoquote-bot/internal/config"
	"autoquote-bot/internal/pricing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	StepServiceSelection = "service_selection"
	StepField            = "field"
	StepQuoted           = "quoted"
	StepContactMethod    = "contact_method"
)

type Bot struct {
	api     *tgbotapi.BotAPI
	sender  Sender
	logger  *zap.Logger
	state   StateStorage
	storage QuoteStorage
	crm     LeadSubmitter
	engine  *pricing.Engine
	cfg     *config.Config
	now     func() time.Time

	mu       sync.Mutex
	handlers map[string]func(context.Context, int64, string)
}

func New(
	token string,
	engine *pricing.Engine,
	state StateStorage,
	quotes QuoteStorage,
	crm LeadSubmitter,
	logger *zap.Logger,
	cfg *config.Config,
) (*Bot, error) {
	botAPI, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}

	logger.Info("Bot authorized",
		zap.String("username", botAPI.Self.UserName),
		zap.Int64("id", botAPI.Self.ID))

	b := newBot(botAPI, engine, state, quotes, crm, logger, cfg)
	b.api = botAPI
	return b, nil
}

func newBot(
	sender Sender,
	engine *pricing.Engine,
	state StateStorage,
	quotes QuoteStorage,
	crm LeadSubmitter,
	logger *zap.Logger,
	cfg *config.Config,
) *Bot {
	b := &Bot{
		sender:  sender,
		logger:  logger,
		state:   state,
		storage: quotes,
		crm:     crm,
		engine:  engine,
		cfg:     cfg,
		now:     time.Now,
	}
	b.registerHandlers()
	return b
}

func (b *Bot) registerHandlers() {
	b.handlers = map[string]func(context.Context, int64, string){
		StepServiceSelection: b.handleServiceSelection,
		StepField:            b.handleFieldAnswer,
		StepQuoted:           b.handleQuoteAction,
		StepContactMethod:    b.handleContactInput,
	}
}

func (b *Bot) Start(ctx context.Context) error {
	b.logger.Info("Starting bot")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			b.logger.Info("Shutting down bot")
			return nil

		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message != nil {
				b.mu.Lock()
				b.processMessage(ctx, update.Message)
				b.mu.Unlock()
			}
		}
	}
}

func (b *Bot) processMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	b.logger.Debug("Processing message",
		zap.Int64("chat_id", chatID),
		zap.String("text", msg.Text))

	if msg.IsCommand() {
		var userID int64
		if msg.From != nil {
			userID = msg.From.ID
		}
		b.handleCommand(ctx, chatID, userID, msg.Command())
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

	if msg.Contact != nil && state.Step == StepContactMethod {
		b.handleContactInput(ctx, chatID, msg.Contact.PhoneNumber)
		return
	}

	if handler, exists := b.handlers[state.Step]; exists {
		handler(ctx, chatID, msg.Text)
	} else {
		b.handleDefault(ctx, chatID)
	}
}

func (b *Bot) sendMessage(msg tgbotapi.MessageConfig) {
	if _, err := b.sender.Send(msg); err != nil {
		b.logger.Error("Failed to send message",
			zap.Int64("chat_id", msg.ChatID),
			zap.String("text", msg.Text),
			zap.Error(err))
	}
}

func (b *Bot) sendError(chatID int64, text string) {
	b.sendMessage(tgbotapi.NewMessage(chatID, "❌ "+text))
}
