package order

import (
	"cleaning-quote/internal/catalog"

	"github.com/google/uuid"
)

// EquipmentLine is one air-conditioning unit.
type EquipmentLine struct {
	ID              string                `json:"id"`
	Bundle          catalog.Bundle        `json:"bundle"`
	Maker           string                `json:"maker"`
	Model           string                `json:"model"`
	Type            catalog.EquipmentType `json:"type"`
	CleaningFeature Tri                   `json:"cleaning_feature"`
	Location        string                `json:"location"`
	HighPlacement   bool                  `json:"high_placement"`
	AddOns          []catalog.AddOn       `json:"add_ons"`
	Extra           catalog.ExtraOption   `json:"extra"`
}

// NewLine returns a default line with a fresh id.
func NewLine() EquipmentLine {
	return EquipmentLine{ID: uuid.NewString()}
}

func (l EquipmentLine) clone() EquipmentLine {
	l.AddOns = append([]catalog.AddOn(nil), l.AddOns...)
	return l
}

// Line returns the line with the given id.
func (o *Order) Line(id string) (*EquipmentLine, bool) {
	for i := range o.Lines {
		if o.Lines[i].ID == id {
			return &o.Lines[i], true
		}
	}
	return nil, false
}

// MaxUnits caps the number of air-conditioning units on one order.
const MaxUnits = 20

// SetUnits grows or shrinks the line list to n, keeping NumberOfUnits in
// step. New lines get defaults; shrinking drops lines from the end. n is
// clamped to [1, MaxUnits].
func (o *Order) SetUnits(n int) {
	if n < 1 {
		n = 1
	}
	if n > MaxUnits {
		n = MaxUnits
	}
	for len(o.Lines) < n {
		o.Lines = append(o.Lines, NewLine())
	}
	o.Lines = o.Lines[:n]
	o.NumberOfUnits = n
}

// RemoveLine deletes the line with id. The last remaining line is kept.
func (o *Order) RemoveLine(id string) error {
	for i := range o.Lines {
		if o.Lines[i].ID != id {
			continue
		}
		if len(o.Lines) == 1 {
			o.Lines[0] = NewLine()
		} else {
			o.Lines = append(o.Lines[:i], o.Lines[i+1:]...)
		}
		o.NumberOfUnits = len(o.Lines)
		return nil
	}
	return ErrUnknownLine
}

func (o *Order) resetLines() {
	o.Lines = []EquipmentLine{NewLine()}
	o.NumberOfUnits = 1
}
