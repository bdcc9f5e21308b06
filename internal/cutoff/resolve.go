package cutoff

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rickgao/kalshi-calibration/internal/model"
)

// PriceSource records where a resolved price came from.
type PriceSource string

const (
	SourceNone  PriceSource = "none"
	SourceTrade PriceSource = "trade"
	SourceQuote PriceSource = "quote"
)

// Resolution is the outcome of a single Resolve call.
type Resolution struct {
	Price         *decimal.Decimal // nil when no price was found
	ReferenceTime *time.Time       // nil when no price was found
	TradesUsed    int              // size of the trade window, 0 for quote prices
	Source        PriceSource
}

// Found reports whether a price was resolved.
func (r Resolution) Found() bool {
	return r.Price != nil
}

// Resolve returns the price of the latest trade at or before cutoff, or failing
// that the latest trade at or before close. TradesUsed is always len(trades).
// The input slice is not modified.
func Resolve(trades []model.Trade, cutoff, close time.Time) Resolution {
	if len(trades) == 0 {
		return Resolution{Source: SourceNone}
	}

	// Newest first; equal timestamps keep input order.
	sorted := slices.Clone(trades)
	slices.SortStableFunc(sorted, func(a, b model.Trade) int {
		return b.CreatedTime.Compare(a.CreatedTime)
	})

	for _, limit := range []time.Time{cutoff, close} {
		for _, t := range sorted {
			if !t.CreatedTime.After(limit) {
				return tradeResolution(t, len(trades))
			}
		}
	}

	return Resolution{TradesUsed: len(trades), Source: SourceNone}
}

func tradeResolution(t model.Trade, n int) Resolution {
	price := t.Price
	ref := t.CreatedTime
	return Resolution{
		Price:         &price,
		ReferenceTime: &ref,
		TradesUsed:    n,
		Source:        SourceTrade,
	}
}

// ApplyQuoteFallback substitutes the market's last price, or else its previous
// price, when res has no price. Only strictly positive quotes are used. The
// reference time becomes cutoff and TradesUsed becomes 0.
func ApplyQuoteFallback(res Resolution, quote model.Quote, cutoff time.Time) Resolution {
	if res.Found() {
		return res
	}

	for _, p := range []decimal.Decimal{quote.LastPrice, quote.PreviousPrice} {
		if p.IsPositive() {
			price := p
			ref := cutoff
			return Resolution{
				Price:         &price,
				ReferenceTime: &ref,
				TradesUsed:    0,
				Source:        SourceQuote,
			}
		}
	}

	return res
}

// GapMinutes returns cutoff minus the reference time in minutes, rounded to two
// decimals. Returns false when res has no reference time.
func GapMinutes(res Resolution, cutoff time.Time) (decimal.Decimal, bool) {
	if res.ReferenceTime == nil {
		return decimal.Zero, false
	}
	gap := decimal.NewFromInt(int64(cutoff.Sub(*res.ReferenceTime)))
	return gap.Div(decimal.NewFromInt(int64(time.Minute))).Round(2), true
}
