package bot

import (
	"context"
	"strings"
	"testing"
	"time"

	"autoquote-bot/internal/config"
	"autoquote-bot/internal/pricing"
	"autoquote-bot/internal/storage"
	"autoquote-bot/internal/storage/redis"
	"autoquote-bot/pkg/api"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSender struct {
	sent []tgbotapi.Chattable
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, nil
}

func (f *fakeSender) lastText(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, f.sent)
	msg, ok := f.sent[len(f.sent)-1].(tgbotapi.MessageConfig)
	require.True(t, ok, "last sent item is %T", f.sent[len(f.sent)-1])
	return msg.Text
}

type fakeState struct {
	states  map[int64]redis.DialogState
	limited bool
}

func (f *fakeState) GetDialogState(ctx context.Context, chatID int64) (*redis.DialogState, error) {
	s := f.states[chatID]
	params := make(map[string]string, len(s.Params))
	for k, v := range s.Params {
		params[k] = v
	}
	s.Params = params
	return &s, nil
}

func (f *fakeState) SetDialogState(ctx context.Context, chatID int64, state *redis.DialogState) error {
	f.states[chatID] = *state
	return nil
}

func (f *fakeState) DropDialogState(ctx context.Context, chatID int64) error {
	delete(f.states, chatID)
	return nil
}

func (f *fakeState) CheckRateLimit(ctx context.Context, chatID int64, action string, limit int64, window time.Duration) (bool, error) {
	return f.limited, nil
}

type fakeQuotes struct {
	saved     []storage.QuoteRecord
	contacted map[uuid.UUID]string
}

func (f *fakeQuotes) SaveQuote(ctx context.Context, q storage.QuoteRecord) error {
	f.saved = append(f.saved, q)
	return nil
}

func (f *fakeQuotes) GetQuote(ctx context.Context, id uuid.UUID) (*storage.QuoteRecord, error) {
	for i := range f.saved {
		if f.saved[i].ID == id {
			return &f.saved[i], nil
		}
	}
	return nil, storage.ErrQuoteNotFound
}

func (f *fakeQuotes) ListQuotesByChat(ctx context.Context, chatID int64, limit int) ([]storage.QuoteRecord, error) {
	var out []storage.QuoteRecord
	for _, q := range f.saved {
		if q.ChatID == chatID && len(out) < limit {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeQuotes) ListQuotes(ctx context.Context, since time.Time) ([]storage.QuoteRecord, error) {
	return f.saved, nil
}

func (f *fakeQuotes) MarkContacted(ctx context.Context, id uuid.UUID, contact string) error {
	f.contacted[id] = contact
	return nil
}

type fakeCRM struct {
	leads []api.Lead
}

func (f *fakeCRM) Enabled() bool { return true }

func (f *fakeCRM) SubmitLead(ctx context.Context, lead api.Lead) error {
	f.leads = append(f.leads, lead)
	return nil
}

type harness struct {
	bot    *Bot
	sender *fakeSender
	state  *fakeState
	quotes *fakeQuotes
	crm    *fakeCRM
}

const adminID = 1

func newHarness() *harness {
	h := &harness{
		sender: &fakeSender{},
		state:  &fakeState{states: map[int64]redis.DialogState{}},
		quotes: &fakeQuotes{contacted: map[uuid.UUID]string{}},
		crm:    &fakeCRM{},
	}
	cfg := &config.Config{
		QuoteRateLimit:    30,
		QuoteRateWindow:   time.Hour,
		AdminIDs:          []int64{adminID},
		CalculatorBaseURL: "https://shop.example",
	}
	h.bot = newBot(h.sender, pricing.New(zap.NewNop()), h.state, h.quotes, h.crm, zap.NewNop(), cfg)
	h.bot.now = func() time.Time { return time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC) }
	return h
}

func (h *harness) say(chatID int64, text string) {
	msg := &tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: chatID},
		From: &tgbotapi.User{ID: chatID},
		Text: text,
	}
	if strings.HasPrefix(text, "/") {
		msg.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(text)}}
	}
	h.bot.processMessage(context.Background(), msg)
}

func TestDialog_CeramicQuote(t *testing.T) {
	h := newHarness()
	const chat = 100

	h.say(chat, "/quote")
	assert.Contains(t, h.sender.lastText(t), "Which service")
	assert.Equal(t, StepServiceSelection, h.state.states[chat].Step)

	h.say(chat, "✨ Ceramic coating")
	assert.Equal(t, "What kind of vehicle is it?", h.sender.lastText(t))

	h.say(chat, "🚗 Car")
	assert.Equal(t, "Which coating package?", h.sender.lastText(t))

	h.say(chat, "5-year coating")
	assert.Equal(t, "Are you a retail customer or a dealer?", h.sender.lastText(t))

	h.say(chat, "retail")
	text := h.sender.lastText(t)
	assert.Contains(t, text, "Your price: $1281.43")
	assert.Contains(t, text, "Materials: $10.00")
	assert.Contains(t, text, "https://shop.example/ceramic")

	require.Len(t, h.quotes.saved, 1)
	saved := h.quotes.saved[0]
	assert.Equal(t, "ceramic", saved.Service)
	assert.Equal(t, storage.Params{"vehicleType": "car", "coatingType": "5-year", "customerType": "retail"}, saved.Params)

	state := h.state.states[chat]
	assert.Equal(t, StepQuoted, state.Step)
	assert.Equal(t, saved.ID.String(), state.QuoteID)
}

func TestDialog_PaintCorrectionShowsStages(t *testing.T) {
	h := newHarness()
	const chat = 101

	for _, text := range []string{"/start", "🔧 Paint correction", "🛻 Truck", "Severe", "🏢 Dealer"} {
		h.say(chat, text)
	}

	text := h.sender.lastText(t)
	assert.Contains(t, text, "Correction stages: 4")
	require.Len(t, h.quotes.saved, 1)
	assert.True(t, h.quotes.saved[0].Stages.Valid)
	assert.Equal(t, "dealer", h.quotes.saved[0].CustomerType)
}

func TestDialog_UnrecognisedAnswerIsAskedAgain(t *testing.T) {
	h := newHarness()
	const chat = 102

	h.say(chat, "/quote")
	h.say(chat, "tint")
	h.say(chat, "Bicycle")

	assert.Equal(t, "What kind of vehicle is it?", h.sender.lastText(t))
	assert.Equal(t, 0, h.state.states[chat].FieldIndex)
	assert.Empty(t, h.state.states[chat].Params)
}

func TestDialog_UnknownServiceChoice(t *testing.T) {
	h := newHarness()
	const chat = 103

	h.say(chat, "/quote")
	h.say(chat, "Detailing")

	assert.Contains(t, h.sender.lastText(t), "Please pick one of the services")
	assert.Equal(t, StepServiceSelection, h.state.states[chat].Step)
}

func TestDialog_RateLimited(t *testing.T) {
	h := newHarness()
	h.state.limited = true
	const chat = 104

	for _, text := range []string{"/quote", "ppf", "full-front", "standard", "retail"} {
		h.say(chat, text)
	}

	assert.Contains(t, h.sender.lastText(t), "a lot of quotes")
	assert.Empty(t, h.quotes.saved)
}

func TestDialog_ContactSubmitsLead(t *testing.T) {
	h := newHarness()
	const chat = 105

	for _, text := range []string{"/quote", "🕶 Window tint", "🚙 SUV", "No removal", "🏢 Dealer"} {
		h.say(chat, text)
	}
	require.Len(t, h.quotes.saved, 1)

	h.say(chat, buttonContactMe)
	assert.Equal(t, StepContactMethod, h.state.states[chat].Step)

	h.say(chat, "call me maybe")
	assert.Contains(t, h.sender.lastText(t), "doesn't look like a phone number")

	h.say(chat, "(555) 010-0199")
	assert.Contains(t, h.sender.lastText(t), "Thanks")

	require.Len(t, h.crm.leads, 1)
	lead := h.crm.leads[0]
	assert.Equal(t, "+15550100199", lead.Phone)
	assert.Equal(t, "tint", lead.Service)
	assert.Equal(t, "dealer", lead.CustomerType)
	assert.InDelta(t, 1037.91, lead.FinalPrice, 0.01)
	assert.Equal(t, "+15550100199", h.quotes.contacted[h.quotes.saved[0].ID])
	assert.Equal(t, StepQuoted, h.state.states[chat].Step)
}

func TestDialog_SharedContact(t *testing.T) {
	h := newHarness()
	const chat = 106

	for _, text := range []string{"/quote", "ppf", "full-vehicle", "stealth", "retail", buttonContactMe} {
		h.say(chat, text)
	}

	h.bot.processMessage(context.Background(), &tgbotapi.Message{
		Chat:    &tgbotapi.Chat{ID: chat},
		Contact: &tgbotapi.Contact{PhoneNumber: "+44 20 7946 0958"},
	})

	require.Len(t, h.crm.leads, 1)
	assert.Equal(t, "+442079460958", h.crm.leads[0].Phone)
}

func TestCommands(t *testing.T) {
	h := newHarness()

	h.say(7, "/help")
	assert.Contains(t, h.sender.lastText(t), "/quote")

	h.say(7, "/history")
	assert.Contains(t, h.sender.lastText(t), "no quotes yet")

	h.say(7, "/cancel")
	assert.Contains(t, h.sender.lastText(t), "cancelled")

	h.say(7, "/frobnicate")
	assert.Contains(t, h.sender.lastText(t), "Unknown command")

	h.say(7, "hello")
	assert.Contains(t, h.sender.lastText(t), "/quote")
}

func TestExport(t *testing.T) {
	h := newHarness()

	h.say(7, "/export")
	assert.Contains(t, h.sender.lastText(t), "Unknown command")

	for _, text := range []string{"/quote", "ceramic", "van", "7-year", "retail"} {
		h.say(adminID, text)
	}

	h.say(adminID, "/export")
	doc, ok := h.sender.sent[len(h.sender.sent)-1].(tgbotapi.DocumentConfig)
	require.True(t, ok)
	assert.Equal(t, "1 quotes from the last 30 days", doc.Caption)

	file, ok := doc.File.(tgbotapi.FileBytes)
	require.True(t, ok)
	assert.Equal(t, "quotes_20260504_1200.xlsx", file.Name)
	assert.NotEmpty(t, file.Bytes)
}
