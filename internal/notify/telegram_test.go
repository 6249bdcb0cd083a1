package notify

import (
	"context"
	"errors"
	"testing"

	"cleaning-quote/internal/catalog"
	"cleaning-quote/internal/order"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSender struct {
	sent []tgbotapi.Chattable
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if f.err != nil {
		return tgbotapi.Message{}, f.err
	}
	f.sent = append(f.sent, c)
	return tgbotapi.Message{MessageID: len(f.sent)}, nil
}

func sampleOrder() order.Order {
	o := order.New("q-1", catalog.VendorDirect, order.ModeCustomer)
	o.Customer = order.Customer{Name: "山田太郎", Phone: "09012345678", PostalCode: "1000001", Address: "東京都千代田区千代田"}
	o.Categories = []catalog.Category{catalog.CategoryAircon}
	o.Slots[0] = order.PreferredSlot{Date: "2026-11-02", Time: "10:00"}
	o.Price = order.Price{Total: 21114, Discount: 2346}
	return o
}

func TestSubmit_SendsMessageAndDocument(t *testing.T) {
	s := &fakeSender{}
	n := NewTelegram(s, -100123, zap.NewNop())

	require.NoError(t, n.Submit(context.Background(), sampleOrder(), order.ModeCustomer))
	require.Len(t, s.sent, 2)

	msg, ok := s.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, int64(-100123), msg.ChatID)
	assert.Contains(t, msg.Text, "合計: ¥21,114")
	assert.Contains(t, msg.Text, "割引: -¥2,346")
	assert.Contains(t, msg.Text, "希望1: 2026-11-02 10:00")

	doc, ok := s.sent[1].(tgbotapi.DocumentConfig)
	require.True(t, ok)
	file, ok := doc.File.(tgbotapi.FileBytes)
	require.True(t, ok)
	assert.Contains(t, file.Name, "quote_q-1_")
	assert.NotEmpty(t, file.Bytes)
}

func TestSubmit_DisabledWithoutChannel(t *testing.T) {
	s := &fakeSender{}
	n := NewTelegram(s, 0, zap.NewNop())

	assert.False(t, n.Enabled())
	require.NoError(t, n.Submit(context.Background(), sampleOrder(), order.ModeCustomer))
	assert.Empty(t, s.sent)
}

func TestSubmit_SendError(t *testing.T) {
	s := &fakeSender{err: errors.New("forbidden")}
	n := NewTelegram(s, -100123, zap.NewNop())

	assert.Error(t, n.Submit(context.Background(), sampleOrder(), order.ModeCustomer))
}

func TestYen(t *testing.T) {
	tests := map[int]string{
		0:       "¥0",
		999:     "¥999",
		1000:    "¥1,000",
		21114:   "¥21,114",
		1234567: "¥1,234,567",
		-5000:   "-¥5,000",
	}
	for n, want := range tests {
		assert.Equal(t, want, Yen(n))
	}
}
