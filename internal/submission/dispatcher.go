package submission

import (
	"context"
	"fmt"

	"cleaning-quote/internal/order"

	"go.uber.org/zap"
)

type Sink interface {
	Submit(ctx context.Context, o order.Order, mode order.Mode) error
}

// Named labels a sink in logs.
type Named struct {
	Name string
	Sink Sink
}

// Dispatcher hands a submission to the primary sink and, once that has
// accepted it, to every follower. Only the primary decides the outcome.
type Dispatcher struct {
	primary   Named
	followers []Named
	logger    *zap.Logger
}

func NewDispatcher(primary Named, logger *zap.Logger, followers ...Named) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{primary: primary, followers: followers, logger: logger}
}

func (d *Dispatcher) Submit(ctx context.Context, o order.Order, mode order.Mode) error {
	if err := d.primary.Sink.Submit(ctx, o, mode); err != nil {
		return fmt.Errorf("%s: %w", d.primary.Name, err)
	}

	for _, f := range d.followers {
		if err := f.Sink.Submit(ctx, o, mode); err != nil {
			d.logger.Error("Follower sink failed",
				zap.String("sink", f.Name),
				zap.String("quote_id", o.ID),
				zap.Error(err))
		}
	}
	return nil
}
