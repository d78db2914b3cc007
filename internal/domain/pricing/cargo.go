package pricing

import (
	"fmt"

	"rotaclick/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// CargoWeights is the aggregated weight of a cargo list, in kg.
type CargoWeights struct {
	RealWeight    decimal.Decimal `json:"real_weight"`
	CubedWeight   decimal.Decimal `json:"cubed_weight"`
	TaxableWeight decimal.Decimal `json:"taxable_weight"`
}

func (w CargoWeights) IsZero() bool {
	return w.TaxableWeight.IsZero()
}

// AggregateCargo sums real and cubed weight over all items and picks the
// larger one as the taxable weight.
//
// An empty list yields zero weights; callers must refuse to quote a zero
// taxable weight.
func AggregateCargo(items []entities.CargoItem) (CargoWeights, error) {
	realWeight := decimal.Zero
	cubedWeight := decimal.Zero

	for i, it := range items {
		if it.Quantity <= 0 {
			return CargoWeights{}, fmt.Errorf("item %d: %w", i+1, ErrInvalidQuantity)
		}
		if it.Weight < 0 || it.Height < 0 || it.Width < 0 || it.Depth < 0 {
			return CargoWeights{}, fmt.Errorf("item %d: %w", i+1, ErrNegativeMeasure)
		}

		qty := decimal.NewFromInt(int64(it.Quantity))
		volume := decimal.NewFromFloat(it.Height).
			Mul(decimal.NewFromFloat(it.Width)).
			Mul(decimal.NewFromFloat(it.Depth))

		realWeight = realWeight.Add(decimal.NewFromFloat(it.Weight).Mul(qty))
		cubedWeight = cubedWeight.Add(volume.Mul(CubingFactor).Mul(qty))
	}

	realWeight = RoundWeight(realWeight)
	cubedWeight = RoundWeight(cubedWeight)
	return CargoWeights{
		RealWeight:    realWeight,
		CubedWeight:   cubedWeight,
		TaxableWeight: maxDecimal(realWeight, cubedWeight),
	}, nil
}
