package quote

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cleaning-quote/internal/catalog"
	"cleaning-quote/internal/order"
	"cleaning-quote/internal/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultCallTimeout   = 10 * time.Second
	defaultSubmitTimeout = 90 * time.Second

	// AvailabilityUnknown is shown when the availability checker fails.
	AvailabilityUnknown = "空き状況を確認できませんでした。担当者よりご連絡いたします。"
)

// Deps are the collaborators of a Service. Store, Locker and Sink are
// required; a nil lookup, checker or classifier disables that call.
type Deps struct {
	Store        Store
	Locker       Locker
	Address      AddressLookup
	Availability AvailabilityChecker
	Classifier   ModelClassifier
	Sink         SubmissionSink
	Logger       *zap.Logger
	CallTimeout  time.Duration

	// SubmitTimeout bounds the sink call. Keep it below the submit lock
	// expiry so a slow sink cannot outlive its lock.
	SubmitTimeout time.Duration
}

// Service owns quote sessions. Mutations of one session are serialised;
// collaborator calls run in the background and write back only if no newer
// request for the same field was issued meanwhile.
type Service struct {
	store        Store
	locker       Locker
	address      AddressLookup
	availability AvailabilityChecker
	classifier   ModelClassifier
	sink         SubmissionSink
	logger       *zap.Logger
	timeout      time.Duration
	submitBudget time.Duration
	now          func() time.Time

	mu       sync.Mutex
	sessions map[string]*sessionLock
	wg       sync.WaitGroup
}

// sessionLock is dropped from Service.sessions once nobody holds or waits
// for it.
type sessionLock struct {
	mu   sync.Mutex
	refs int
}

func NewService(d Deps) *Service {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.CallTimeout <= 0 {
		d.CallTimeout = defaultCallTimeout
	}
	if d.SubmitTimeout <= 0 {
		d.SubmitTimeout = defaultSubmitTimeout
	}
	return &Service{
		store:        d.Store,
		locker:       d.Locker,
		address:      d.Address,
		availability: d.Availability,
		classifier:   d.Classifier,
		sink:         d.Sink,
		logger:       d.Logger,
		timeout:      d.CallTimeout,
		submitBudget: d.SubmitTimeout,
		now:          func() time.Time { return time.Now().UTC() },
		sessions:     make(map[string]*sessionLock),
	}
}

// Start opens a new session for vendor in mode.
func (s *Service) Start(ctx context.Context, vendor catalog.Vendor, mode order.Mode) (order.Order, error) {
	if _, ok := catalog.Lookup(vendor); !ok {
		return order.Order{}, fmt.Errorf("%w: %q", ErrUnknownVendor, vendor)
	}
	switch mode {
	case "":
		mode = order.ModeCustomer
	case order.ModeCustomer, order.ModeStaff:
	default:
		return order.Order{}, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	o := order.New(uuid.NewString(), vendor, mode)
	reprice(&o)

	if err := s.store.SaveQuote(ctx, o); err != nil {
		return order.Order{}, fmt.Errorf("save quote: %w", err)
	}
	s.logger.Info("Quote started",
		zap.String("quote_id", o.ID),
		zap.String("vendor", string(vendor)),
		zap.String("mode", string(mode)))
	return o, nil
}

// Get returns the current revision of session id.
func (s *Service) Get(ctx context.Context, id string) (order.Order, error) {
	o, err := s.load(ctx, id)
	if err != nil {
		return order.Order{}, err
	}
	return *o, nil
}

// Mutate applies one field assignment and fires any collaborator call the
// change makes due.
func (s *Service) Mutate(ctx context.Context, id, path string, value any) (order.Order, error) {
	unlock := s.lock(id)
	defer unlock()

	prev, err := s.load(ctx, id)
	if err != nil {
		return order.Order{}, err
	}
	if prev.SubmittedAt != nil {
		return order.Order{}, ErrAlreadySubmitted
	}
	inFlight, err := s.locker.SubmitInFlight(ctx, id)
	if err != nil {
		return order.Order{}, fmt.Errorf("check submit lock: %w", err)
	}
	if inFlight {
		return order.Order{}, ErrSubmissionInFlight
	}

	var next order.Order
	if path == order.PathVendor {
		next, err = SwitchVendor(*prev, catalog.Vendor(fmt.Sprint(value)))
	} else {
		next, err = ApplyMutation(*prev, path, value)
	}
	if err != nil {
		return order.Order{}, err
	}

	calls := s.plan(&next, path)

	if err := s.store.SaveQuote(ctx, next); err != nil {
		return order.Order{}, fmt.Errorf("save quote: %w", err)
	}
	s.logUnmatched(next)

	for _, c := range calls {
		s.spawn(ctx, c)
	}
	return next, nil
}

// SwitchVendor moves session id to vendor v.
func (s *Service) SwitchVendor(ctx context.Context, id string, v catalog.Vendor) (order.Order, error) {
	return s.Mutate(ctx, id, order.PathVendor, string(v))
}

// Confirm runs validation against the session's mode.
func (s *Service) Confirm(ctx context.Context, id string) (validation.Errors, error) {
	o, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return validation.Validate(o, o.Mode), nil
}

// Submit sends the validated order to the sink once. Edits are refused
// while the sink runs, and the revision that was sent is the one frozen. A
// failed sink leaves the order untouched and may be retried.
func (s *Service) Submit(ctx context.Context, id string) (order.Order, error) {
	sent, err := s.beginSubmit(ctx, id)
	if err != nil {
		return order.Order{}, err
	}
	defer func() {
		if err := s.locker.ReleaseSubmitLock(context.WithoutCancel(ctx), id); err != nil {
			s.logger.Error("Failed to release submit lock", zap.String("quote_id", id), zap.Error(err))
		}
	}()

	sinkCtx, cancel := context.WithTimeout(ctx, s.submitBudget)
	err = s.sink.Submit(sinkCtx, sent, sent.Mode)
	cancel()
	if err != nil {
		s.logger.Error("Submission failed",
			zap.String("quote_id", id),
			zap.Int("revision", sent.Revision),
			zap.Error(err))
		return order.Order{}, fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}

	var submitted order.Order
	err = s.update(context.WithoutCancel(ctx), id, func(cur *order.Order) bool {
		if cur.Revision != sent.Revision {
			s.logger.Warn("Quote changed during submission, keeping the sent revision",
				zap.String("quote_id", id),
				zap.Int("sent_revision", sent.Revision),
				zap.Int("stored_revision", cur.Revision))
		}
		next := sent.Clone()
		at := s.now()
		next.SubmittedAt = &at
		next.Revision = cur.Revision + 1
		*cur = next
		submitted = next
		return true
	})
	if err != nil {
		return order.Order{}, err
	}

	s.logger.Info("Quote submitted",
		zap.String("quote_id", id),
		zap.Int("total", submitted.Price.Total),
		zap.Int("discount", submitted.Price.Discount))
	return submitted, nil
}

// beginSubmit validates and takes the submit lock under the session lock,
// so no edit can slip between the check and the snapshot.
func (s *Service) beginSubmit(ctx context.Context, id string) (order.Order, error) {
	unlock := s.lock(id)
	defer unlock()

	o, err := s.load(ctx, id)
	if err != nil {
		return order.Order{}, err
	}
	if o.SubmittedAt != nil {
		return order.Order{}, ErrAlreadySubmitted
	}
	if errs := validation.Validate(o, o.Mode); !errs.Empty() {
		return order.Order{}, &InvalidError{Errors: errs}
	}

	acquired, err := s.locker.AcquireSubmitLock(ctx, id)
	if err != nil {
		return order.Order{}, fmt.Errorf("acquire submit lock: %w", err)
	}
	if !acquired {
		return order.Order{}, ErrSubmissionInFlight
	}
	return *o, nil
}

// Wait blocks until every background collaborator call has finished.
func (s *Service) Wait() {
	s.wg.Wait()
}

func (s *Service) load(ctx context.Context, id string) (*order.Order, error) {
	o, err := s.store.GetQuote(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get quote: %w", err)
	}
	if o == nil {
		return nil, ErrNotFound
	}
	return o, nil
}

func (s *Service) lock(id string) func() {
	s.mu.Lock()
	l, ok := s.sessions[id]
	if !ok {
		l = &sessionLock{}
		s.sessions[id] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()

		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.sessions, id)
		}
		s.mu.Unlock()
	}
}

// update applies fn to the stored session under its lock and saves when fn
// reports a change.
func (s *Service) update(ctx context.Context, id string, fn func(o *order.Order) bool) error {
	unlock := s.lock(id)
	defer unlock()

	o, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if !fn(o) {
		return nil
	}
	if err := s.store.SaveQuote(ctx, *o); err != nil {
		return fmt.Errorf("save quote: %w", err)
	}
	return nil
}

func (s *Service) logUnmatched(o order.Order) {
	if len(o.Price.Unmatched) == 0 {
		return
	}
	s.logger.Warn("Unmatched selections priced as zero",
		zap.String("quote_id", o.ID),
		zap.String("vendor", string(o.Vendor)),
		zap.Strings("unmatched", o.Price.Unmatched))
}
