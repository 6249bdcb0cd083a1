package lookup

import (
	"context"
	"errors"
	"testing"

	"cleaning-quote/internal/catalog"
	"cleaning-quote/internal/order"
	"cleaning-quote/pkg/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClassifierAPI struct {
	res    api.Classification
	err    error
	vendor string
}

func (s *stubClassifierAPI) Classify(_ context.Context, _, _, vendor string) (api.Classification, error) {
	s.vendor = vendor
	return s.res, s.err
}

func TestClassifier(t *testing.T) {
	yes := true

	tests := []struct {
		name    string
		res     api.Classification
		want    catalog.EquipmentType
		feature order.Tri
	}{
		{"known feature", api.Classification{Type: "wall_auto_clean", CleaningFeature: &yes}, "wall_auto_clean", order.TriYes},
		{"unknown feature", api.Classification{Type: "wall_general"}, "wall_general", order.TriUnknown},
		{"nothing inferred", api.Classification{}, "", order.TriUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubClassifierAPI{res: tt.res}
			got, err := NewClassifier(stub).Classify(context.Background(), "CS-X400D", "panasonic", catalog.VendorPartner)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Type)
			assert.Equal(t, tt.feature, got.CleaningFeature)
			assert.Equal(t, "partner", stub.vendor)
		})
	}
}

func TestClassifier_Error(t *testing.T) {
	stub := &stubClassifierAPI{err: errors.New("boom")}
	_, err := NewClassifier(stub).Classify(context.Background(), "m", "", catalog.VendorDirect)
	assert.Error(t, err)
}
