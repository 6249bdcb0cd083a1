// Package validation checks an order for confirmation. It never fails: every
// problem is reported as a field code and all rules run on every call.
package validation

import (
	"strings"

	"cleaning-quote/internal/catalog"
	"cleaning-quote/internal/order"
)

// Validate runs every rule applicable to mode and returns the failed fields.
func Validate(o *order.Order, mode order.Mode) Errors {
	errs := Errors{}

	checkContact(o, mode, errs)

	if len(o.Categories) == 0 {
		errs.Add(CodeCategories)
	}
	if !hasSlot(o) {
		errs.Add(CodeSlots)
	}
	if !o.Acknowledged {
		errs.Add(CodeAcknowledged)
	}

	if mode == order.ModeCustomer {
		if !o.ParkingAcknowledged {
			errs.Add(CodeParking)
		}
		if o.Active(catalog.CategoryAircon) {
			checkBundles(o, errs)
		}
	}

	if o.Active(catalog.CategoryMattress) {
		checkMattress(o.Mattress, errs)
	}
	if o.Active(catalog.CategoryWasher) {
		if o.Washer.Type == "" {
			errs.Add(CodeWasherType)
		}
		if !o.Washer.Drying.Known() {
			errs.Add(CodeWasherDrying)
		}
	}

	return errs
}

func checkContact(o *order.Order, mode order.Mode, errs Errors) {
	c := contact{
		Name:       strings.TrimSpace(o.Customer.Name),
		PostalCode: o.Customer.PostalCode,
		Address:    strings.TrimSpace(o.Customer.Address),
		Phone:      o.Customer.Phone,
		Email:      strings.TrimSpace(o.Customer.Email),
	}

	for _, code := range ParseErrors(GetValidator().Struct(c)) {
		errs.Add(code)
	}

	if mode == order.ModeCustomer && c.Email == "" {
		errs.Add(CodeEmail)
	}
}

func hasSlot(o *order.Order) bool {
	for _, s := range o.Slots {
		if s.Filled() {
			return true
		}
	}
	return false
}

func checkMattress(m order.Mattress, errs Errors) {
	if m.Size == "" {
		errs.Add(CodeMattressSize)
	}
	if m.Side == "" {
		errs.Add(CodeMattressSide)
	}
	if m.StainRemoval && m.StainCount <= 0 {
		errs.Add(CodeStainCount)
	}
}

// checkBundles flags lines whose explicit type or known cleaning feature
// contradicts what the selected bundle implies. Bundles the vendor does not
// sell are left to pricing.
func checkBundles(o *order.Order, errs Errors) {
	c, ok := catalog.Lookup(o.Vendor)
	if !ok {
		return
	}
	for _, l := range o.Lines {
		if l.Bundle == "" {
			continue
		}
		spec, ok := c.BundleFor(l.Bundle)
		if !ok {
			continue
		}
		typeMismatch := l.Type != "" && l.Type != spec.Type
		featureMismatch := l.CleaningFeature.Known() && l.CleaningFeature.Bool() != spec.Feature
		if typeMismatch || featureMismatch {
			errs.Add(LineBundleCode(l.ID))
		}
	}
}
