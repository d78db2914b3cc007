package pricing

import (
	"errors"
	"testing"

	"rotaclick/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestApplyMargin(t *testing.T) {
	t.Run("twenty percent", func(t *testing.T) {
		rate, err := ApplyMargin(d("2.00"), d("50"), d("20"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !rate.PublishedPricePerKg.Equal(d("2.40")) {
			t.Fatalf("expected 2.40, got %s", rate.PublishedPricePerKg)
		}
		if !rate.PublishedMinPrice.Equal(d("60")) {
			t.Fatalf("expected published minimum 60, got %s", rate.PublishedMinPrice)
		}
	})

	t.Run("rate rounded to four places", func(t *testing.T) {
		rate, err := ApplyMargin(d("1.2345"), d("0"), d("12.5"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 1.2345 * 1.125 = 1.38881250
		if !rate.PublishedPricePerKg.Equal(d("1.3888")) {
			t.Fatalf("expected 1.3888, got %s", rate.PublishedPricePerKg)
		}
	})

	t.Run("bounds", func(t *testing.T) {
		if _, err := ApplyMargin(d("1"), d("0"), d("0")); err != nil {
			t.Fatalf("margin 0 should be accepted: %v", err)
		}
		if _, err := ApplyMargin(d("1"), d("0"), d("200")); err != nil {
			t.Fatalf("margin 200 should be accepted: %v", err)
		}
		if _, err := ApplyMargin(d("1"), d("0"), d("200.01")); !errors.Is(err, ErrMarginOutOfRange) {
			t.Fatalf("expected ErrMarginOutOfRange, got %v", err)
		}
		if _, err := ApplyMargin(d("1"), d("0"), d("-1")); !errors.Is(err, ErrMarginOutOfRange) {
			t.Fatalf("expected ErrMarginOutOfRange, got %v", err)
		}
	})

	t.Run("invalid cost", func(t *testing.T) {
		if _, err := ApplyMargin(d("0"), d("0"), d("10")); !errors.Is(err, ErrInvalidCostPrice) {
			t.Fatalf("expected ErrInvalidCostPrice, got %v", err)
		}
		if _, err := ApplyMargin(d("1"), d("-5"), d("10")); !errors.Is(err, ErrInvalidMinPrice) {
			t.Fatalf("expected ErrInvalidMinPrice, got %v", err)
		}
	})
}

func TestApplyMargin_PublishedNeverBelowCost(t *testing.T) {
	costs := []string{"0.0001", "0.35", "1", "2.00", "3.1415", "17.9999", "250"}
	for _, c := range costs {
		for m := int64(0); m <= 200; m += 5 {
			margin := decimal.NewFromInt(m)
			rate, err := ApplyMargin(d(c), d("10"), margin)
			if err != nil {
				t.Fatalf("cost %s margin %d: unexpected error: %v", c, m, err)
			}
			want := RoundRate(d(c).Mul(decimal.NewFromInt(1).Add(margin.Div(decimal.NewFromInt(100)))))
			if !rate.PublishedPricePerKg.Equal(want) {
				t.Fatalf("cost %s margin %d: expected %s, got %s", c, m, want, rate.PublishedPricePerKg)
			}
			if rate.PublishedPricePerKg.LessThan(rate.CostPricePerKg) {
				t.Fatalf("cost %s margin %d: published %s below cost", c, m, rate.PublishedPricePerKg)
			}
		}
	}
}

func TestQuotePrice(t *testing.T) {
	rate, err := ApplyMargin(d("2.00"), d("50.00"), d("20"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("weight above minimum", func(t *testing.T) {
		q := QuotePrice(d("100"), rate)
		if !q.Price.Equal(d("240")) || !q.CostPrice.Equal(d("200")) || !q.MarginAmount.Equal(d("40")) {
			t.Fatalf("unexpected quote: %+v", q)
		}
	})

	t.Run("minimum charge applies", func(t *testing.T) {
		q := QuotePrice(d("16.2"), rate)
		// 16.2 * 2.40 = 38.88 < 60
		if !q.Price.Equal(d("60")) || !q.CostPrice.Equal(d("50")) {
			t.Fatalf("unexpected quote: %+v", q)
		}
		if !q.CostPrice.Add(q.MarginAmount).Equal(q.Price) {
			t.Fatalf("cost + margin must equal price: %+v", q)
		}
	})
}

func TestRateOf(t *testing.T) {
	route := entities.FreightRoute{
		CostPricePerKg:      d("2"),
		CostMinPrice:        d("50"),
		MarginPercent:       d("20"),
		PublishedPricePerKg: d("2.4"),
		PublishedMinPrice:   d("60"),
	}
	rate := RateOf(route)
	if !rate.PublishedPricePerKg.Equal(d("2.4")) || !rate.CostMinPrice.Equal(d("50")) {
		t.Fatalf("unexpected rate: %+v", rate)
	}

	est := EstimateRate(d("3.5"), d("80"))
	q := QuotePrice(d("10"), est)
	if !q.Price.Equal(d("80")) || !q.CostPrice.IsZero() {
		t.Fatalf("unexpected estimate quote: %+v", q)
	}
}
