package quote

import (
	"context"
	"strconv"

	"cleaning-quote/internal/order"

	"go.uber.org/zap"
)

// Sequence keys of the background calls.
const (
	SeqAddress = "address"
)

// SeqSlot is the sequence key of slot n's availability check.
func SeqSlot(n int) string { return "slots." + strconv.Itoa(n) }

// SeqLine is the sequence key of a line's classification.
func SeqLine(id string) string { return order.LinePath(id, "") }

// call is one background collaborator request. run performs the request
// and returns how to apply its answer, or nil to drop it.
type call struct {
	quoteID string
	key     string
	seq     uint64
	run     func(ctx context.Context) func(o *order.Order) bool
}

// plan issues a sequence number for the field path touched and returns the
// calls it makes due. Issuing on every change, even one that fires nothing,
// retires answers to earlier requests.
func (s *Service) plan(o *order.Order, path string) []call {
	if path == order.PathPostalCode {
		seq := o.Issue(SeqAddress)
		code := o.Customer.PostalCode
		if len(code) != 7 || s.address == nil {
			return nil
		}
		return []call{{quoteID: o.ID, key: SeqAddress, seq: seq, run: s.lookupAddress(code)}}
	}

	if n, field, ok := order.ParseSlotPath(path); ok && (field == "date" || field == "time") {
		key := SeqSlot(n)
		seq := o.Issue(key)
		slot := o.Slots[n-1]
		if !slot.Filled() || s.availability == nil {
			return nil
		}
		return []call{{quoteID: o.ID, key: key, seq: seq, run: s.checkSlot(n, slot.Date, slot.Time)}}
	}

	if id, field, ok := order.ParseLinePath(path); ok && (field == "maker" || field == "model") {
		key := SeqLine(id)
		seq := o.Issue(key)
		line, found := o.Line(id)
		if !found || line.Model == "" || s.classifier == nil {
			return nil
		}
		return []call{{quoteID: o.ID, key: key, seq: seq, run: s.classify(id, line.Model, line.Maker, o)}}
	}

	return nil
}

func (s *Service) spawn(parent context.Context, c call) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), s.timeout)
		defer cancel()

		apply := c.run(ctx)
		if apply == nil {
			return
		}

		err := s.update(ctx, c.quoteID, func(o *order.Order) bool {
			if o.SubmittedAt != nil {
				return false
			}
			if !o.Latest(c.key, c.seq) {
				s.logger.Debug("Discarding stale response",
					zap.String("quote_id", c.quoteID),
					zap.String("field", c.key),
					zap.Uint64("seq", c.seq))
				return false
			}
			if !apply(o) {
				return false
			}
			reprice(o)
			o.Revision++
			return true
		})
		if err != nil {
			s.logger.Error("Failed to apply collaborator response",
				zap.String("quote_id", c.quoteID),
				zap.String("field", c.key),
				zap.Error(err))
		}
	}()
}

func (s *Service) lookupAddress(code string) func(ctx context.Context) func(o *order.Order) bool {
	return func(ctx context.Context) func(o *order.Order) bool {
		addr, err := s.address.LookupAddress(ctx, code)
		if err != nil {
			s.logger.Warn("Address lookup failed", zap.String("postal_code", code), zap.Error(err))
			return nil
		}
		if addr == "" {
			return nil
		}
		return func(o *order.Order) bool {
			o.Customer.Address = addr
			return true
		}
	}
}

func (s *Service) checkSlot(n int, date, at string) func(ctx context.Context) func(o *order.Order) bool {
	return func(ctx context.Context) func(o *order.Order) bool {
		msg, err := s.availability.CheckAvailability(ctx, date, at)
		if err != nil {
			s.logger.Warn("Availability check failed",
				zap.Int("slot", n),
				zap.String("date", date),
				zap.String("time", at),
				zap.Error(err))
			msg = AvailabilityUnknown
		}
		return func(o *order.Order) bool {
			o.Slots[n-1].Availability = msg
			return true
		}
	}
}

func (s *Service) classify(lineID, model, maker string, o *order.Order) func(ctx context.Context) func(o *order.Order) bool {
	vendor := o.Vendor
	return func(ctx context.Context) func(o *order.Order) bool {
		res, err := s.classifier.Classify(ctx, model, maker, vendor)
		if err != nil {
			s.logger.Warn("Model classification failed",
				zap.String("model", model),
				zap.String("maker", maker),
				zap.Error(err))
			return nil
		}
		if res.Type == "" && !res.CleaningFeature.Known() {
			return nil
		}
		return func(o *order.Order) bool {
			line, ok := o.Line(lineID)
			if !ok {
				return false
			}
			if res.Type != "" {
				line.Type = res.Type
			}
			if res.CleaningFeature.Known() {
				line.CleaningFeature = res.CleaningFeature
			}
			return true
		}
	}
}
