package quote

import (
	"fmt"
	"slices"

	"cleaning-quote/internal/catalog"
	"cleaning-quote/internal/order"
	"cleaning-quote/internal/pricing"
)

// ApplyMutation assigns value at path and returns the next revision. The
// input order is not modified. Category changes cascade before the price
// is recomputed.
func ApplyMutation(o order.Order, path string, value any) (order.Order, error) {
	next := o.Clone()
	if err := next.Set(path, value); err != nil {
		return o, fmt.Errorf("set %s: %w", path, err)
	}

	if !slices.Equal(o.Categories, next.Categories) {
		next.Activate(o.Categories, next.Categories)
	}

	reprice(&next)
	next.Revision++
	return next, nil
}

// SwitchVendor moves the order to vendor v. Selections carry over as they
// are; those the new catalog does not sell price as zero and show up in
// Price.Unmatched.
func SwitchVendor(o order.Order, v catalog.Vendor) (order.Order, error) {
	if _, ok := catalog.Lookup(v); !ok {
		return o, fmt.Errorf("%w: %q", ErrUnknownVendor, v)
	}
	return ApplyMutation(o, order.PathVendor, string(v))
}

func reprice(o *order.Order) {
	c, _ := catalog.Lookup(o.Vendor)
	o.Price = pricing.Compute(o, c)
}
