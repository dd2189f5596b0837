package bot

import (
	"context"
	"time"

	"autoquote-bot/internal/storage"
	"autoquote-bot/internal/storage/redis"
	"autoquote-bot/pkg/api"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
)

type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type StateStorage interface {
	GetDialogState(ctx context.Context, chatID int64) (*redis.DialogState, error)
	SetDialogState(ctx context.Context, chatID int64, state *redis.DialogState) error
	DropDialogState(ctx context.Context, chatID int64) error
	CheckRateLimit(ctx context.Context, chatID int64, action string, limit int64, window time.Duration) (bool, error)
}

type QuoteStorage interface {
	SaveQuote(ctx context.Context, q storage.QuoteRecord) error
	GetQuote(ctx context.Context, id uuid.UUID) (*storage.QuoteRecord, error)
	ListQuotesByChat(ctx context.Context, chatID int64, limit int) ([]storage.QuoteRecord, error)
	ListQuotes(ctx context.Context, since time.Time) ([]storage.QuoteRecord, error)
	MarkContacted(ctx context.Context, id uuid.UUID, contact string) error
}

type LeadSubmitter interface {
	Enabled() bool
	SubmitLead(ctx context.Context, lead api.Lead) error
}

var (
	_ StateStorage  = (*redis.Storage)(nil)
	_ QuoteStorage  = (*storage.PostgresStorage)(nil)
	_ LeadSubmitter = (*api.Client)(nil)
	_ Sender        = (*tgbotapi.BotAPI)(nil)
)
