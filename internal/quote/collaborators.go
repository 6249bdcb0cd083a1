package quote

import (
	"context"

	"cleaning-quote/internal/catalog"
	"cleaning-quote/internal/order"
)

// AddressLookup resolves a 7-digit postal code. An empty result means the
// code is unknown.
type AddressLookup interface {
	LookupAddress(ctx context.Context, postalCode string) (string, error)
}

type AddressLookupFunc func(ctx context.Context, postalCode string) (string, error)

func (f AddressLookupFunc) LookupAddress(ctx context.Context, postalCode string) (string, error) {
	return f(ctx, postalCode)
}

// AvailabilityChecker reports, as display text, whether a visit slot is open.
type AvailabilityChecker interface {
	CheckAvailability(ctx context.Context, date, time string) (string, error)
}

type AvailabilityCheckerFunc func(ctx context.Context, date, time string) (string, error)

func (f AvailabilityCheckerFunc) CheckAvailability(ctx context.Context, date, time string) (string, error) {
	return f(ctx, date, time)
}

// Classification is what the model classifier infers for one unit.
type Classification struct {
	Type            catalog.EquipmentType `json:"type"`
	CleaningFeature order.Tri             `json:"cleaning_feature"`
}

// ModelClassifier infers the equipment type from maker and model text.
type ModelClassifier interface {
	Classify(ctx context.Context, model, maker string, vendor catalog.Vendor) (Classification, error)
}

type ModelClassifierFunc func(ctx context.Context, model, maker string, vendor catalog.Vendor) (Classification, error)

func (f ModelClassifierFunc) Classify(ctx context.Context, model, maker string, vendor catalog.Vendor) (Classification, error) {
	return f(ctx, model, maker, vendor)
}

// SubmissionSink receives the final snapshot of a confirmed order.
type SubmissionSink interface {
	Submit(ctx context.Context, o order.Order, mode order.Mode) error
}

type SubmissionSinkFunc func(ctx context.Context, o order.Order, mode order.Mode) error

func (f SubmissionSinkFunc) Submit(ctx context.Context, o order.Order, mode order.Mode) error {
	return f(ctx, o, mode)
}
