package validation

import (
	"encoding/json"
	"sort"
	"strings"
)

// FieldCode names the field that failed; codes follow the mutation paths.
type FieldCode string

const (
	CodeName       FieldCode = "customer.name"
	CodePostalCode FieldCode = "customer.postalCode"
	CodeAddress    FieldCode = "customer.address"
	CodePhone      FieldCode = "customer.phone"
	CodeEmail      FieldCode = "customer.email"

	CodeCategories   FieldCode = "categories"
	CodeSlots        FieldCode = "slots"
	CodeAcknowledged FieldCode = "acknowledged"
	CodeParking      FieldCode = "parkingAcknowledged"

	CodeMattressSize FieldCode = "mattress.size"
	CodeMattressSide FieldCode = "mattress.side"
	CodeStainCount   FieldCode = "mattress.stainCount"
	CodeWasherType   FieldCode = "washer.type"
	CodeWasherDrying FieldCode = "washer.drying"
)

// LineBundleCode flags a line whose bundle disagrees with its type or
// cleaning feature.
func LineBundleCode(lineID string) FieldCode {
	return FieldCode("aircon.lines." + lineID + ".bundle")
}

// Errors is the set of failed fields. The zero value is empty and usable
// for reads; use Add to populate.
type Errors map[FieldCode]struct{}

func (e Errors) Add(code FieldCode) { e[code] = struct{}{} }

func (e Errors) Has(code FieldCode) bool {
	_, ok := e[code]
	return ok
}

func (e Errors) Empty() bool { return len(e) == 0 }

// Codes returns the codes sorted.
func (e Errors) Codes() []FieldCode {
	out := make([]FieldCode, 0, len(e))
	for c := range e {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (e Errors) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Codes())
}

func (e *Errors) UnmarshalJSON(data []byte) error {
	var codes []FieldCode
	if err := json.Unmarshal(data, &codes); err != nil {
		return err
	}
	*e = make(Errors, len(codes))
	for _, c := range codes {
		e.Add(c)
	}
	return nil
}

func (e Errors) Error() string {
	codes := e.Codes()
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = string(c)
	}
	return "invalid fields: " + strings.Join(parts, ", ")
}
