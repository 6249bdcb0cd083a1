package submission

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cleaning-quote/internal/order"
	"cleaning-quote/pkg/api"
)

// Poster is satisfied by *api.Client.
type Poster interface {
	SubmitQuote(ctx context.Context, s api.QuoteSubmission) error
}

// Webhook forwards the snapshot to the booking backend.
type Webhook struct {
	poster Poster
	now    func() time.Time
}

func NewWebhook(p Poster) *Webhook {
	return &Webhook{poster: p, now: func() time.Time { return time.Now().UTC() }}
}

func (w *Webhook) Submit(ctx context.Context, o order.Order, mode order.Mode) error {
	customer, err := json.Marshal(o.Customer)
	if err != nil {
		return fmt.Errorf("marshal customer: %w", err)
	}
	snapshot, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("marshal order: %w", err)
	}

	return w.poster.SubmitQuote(ctx, api.QuoteSubmission{
		QuoteID:     o.ID,
		Vendor:      string(o.Vendor),
		Mode:        string(mode),
		Total:       o.Price.Total,
		Discount:    o.Price.Discount,
		Customer:    customer,
		Order:       snapshot,
		SubmittedAt: w.now(),
	})
}
