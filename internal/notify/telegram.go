package notify

import (
	"context"
	"fmt"
	"strings"

	"cleaning-quote/internal/order"
	"cleaning-quote/internal/storage"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Sender is the part of the bot API the notifier needs.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Telegram posts submitted quotes to a staff channel.
type Telegram struct {
	sender    Sender
	channelID int64
	logger    *zap.Logger
}

func NewTelegram(sender Sender, channelID int64, logger *zap.Logger) *Telegram {
	return &Telegram{sender: sender, channelID: channelID, logger: logger}
}

// NewBotTelegram connects to the bot API with token.
func NewBotTelegram(token string, channelID int64, logger *zap.Logger) (*Telegram, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	logger.Info("Telegram notifier authorized", zap.String("account", bot.Self.UserName))
	return NewTelegram(bot, channelID, logger), nil
}

func (t *Telegram) Enabled() bool {
	return t != nil && t.channelID != 0
}

// Submit sends the summary and the spreadsheet to the channel.
func (t *Telegram) Submit(ctx context.Context, o order.Order, mode order.Mode) error {
	if !t.Enabled() {
		t.logger.Warn("Channel notifications disabled - no channel ID configured")
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(t.channelID, FormatQuoteNotification(o, mode))
	if _, err := t.sender.Send(msg); err != nil {
		return fmt.Errorf("failed to send channel notification: %w", err)
	}

	data, name, err := storage.ExportQuoteToExcel(o)
	if err != nil {
		return fmt.Errorf("failed to create Excel file: %w", err)
	}

	doc := tgbotapi.NewDocument(t.channelID, tgbotapi.FileBytes{Name: name, Bytes: data})
	doc.Caption = fmt.Sprintf("見積 %s", o.ID)
	if _, err := t.sender.Send(doc); err != nil {
		return fmt.Errorf("failed to send Excel file: %w", err)
	}

	t.logger.Info("Quote posted to channel",
		zap.String("quote_id", o.ID),
		zap.Int64("channel_id", t.channelID))
	return nil
}

func FormatQuoteNotification(o order.Order, mode order.Mode) string {
	categories := make([]string, len(o.Categories))
	for i, c := range o.Categories {
		categories[i] = string(c)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🧹 新規見積 %s\n", o.ID)
	fmt.Fprintf(&b, "業者: %s / %s\n", o.Vendor, mode)
	fmt.Fprintf(&b, "お名前: %s\n", o.Customer.Name)
	fmt.Fprintf(&b, "電話: %s\n", o.Customer.Phone)
	if o.Customer.Address != "" {
		fmt.Fprintf(&b, "住所: 〒%s %s\n", o.Customer.PostalCode, o.Customer.Address)
	}
	fmt.Fprintf(&b, "作業: %s\n", strings.Join(categories, ", "))
	for i, s := range o.Slots {
		if s.Filled() {
			fmt.Fprintf(&b, "希望%d: %s %s\n", i+1, s.Date, s.Time)
		}
	}
	if o.Price.Discount > 0 {
		fmt.Fprintf(&b, "割引: -%s\n", Yen(o.Price.Discount))
	}
	fmt.Fprintf(&b, "合計: %s", Yen(o.Price.Total))
	return b.String()
}

// Yen formats n with thousands separators, e.g. ¥21,114.
func Yen(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := fmt.Sprint(n)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return sign + "¥" + s
}
