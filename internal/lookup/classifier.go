package lookup

import (
	"context"

	"cleaning-quote/internal/catalog"
	"cleaning-quote/internal/order"
	"cleaning-quote/internal/quote"
	"cleaning-quote/pkg/api"
)

// ClassifierAPI is satisfied by *api.Client.
type ClassifierAPI interface {
	Classify(ctx context.Context, model, maker, vendor string) (api.Classification, error)
}

// Classifier adapts the backend's model classification to quote types.
type Classifier struct {
	api ClassifierAPI
}

func NewClassifier(c ClassifierAPI) *Classifier {
	return &Classifier{api: c}
}

func (c *Classifier) Classify(ctx context.Context, model, maker string, vendor catalog.Vendor) (quote.Classification, error) {
	res, err := c.api.Classify(ctx, model, maker, string(vendor))
	if err != nil {
		return quote.Classification{}, err
	}

	out := quote.Classification{Type: catalog.EquipmentType(res.Type)}
	if res.CleaningFeature != nil {
		out.CleaningFeature = order.TriOf(*res.CleaningFeature)
	}
	return out, nil
}
