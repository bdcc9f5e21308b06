package api

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rickgao/kalshi-calibration/internal/model"
)

var hundred = decimal.NewFromInt(100)

// ParseDollars converts a dollar string to a decimal, falling back to the
// integer cents field when the string is empty or invalid.
// "0.52" -> 0.52, ("", 52) -> 0.52
func ParseDollars(dollars string, cents int) decimal.Decimal {
	if d, err := decimal.NewFromString(strings.TrimSpace(dollars)); err == nil {
		return d
	}
	return CentsToDollars(cents)
}

// CentsToDollars converts integer cents to dollars.
func CentsToDollars(cents int) decimal.Decimal {
	return decimal.NewFromInt(int64(cents)).Div(hundred)
}

// ParseTime parses an ISO 8601 timestamp. Returns the zero time for empty or
// invalid input.
func ParseTime(iso string) time.Time {
	if iso == "" {
		return time.Time{}
	}

	t, err := time.Parse(time.RFC3339Nano, iso)
	if err != nil {
		// Try without timezone
		t, err = time.Parse("2006-01-02T15:04:05", iso)
		if err != nil {
			return time.Time{}
		}
	}

	return t.UTC()
}

// ToModel converts an APIMarket to model.Market.
func (m *APIMarket) ToModel() model.Market {
	return model.Market{
		Ticker:         m.Ticker,
		EventTicker:    m.EventTicker,
		Title:          m.Title,
		Subtitle:       m.Subtitle,
		Status:         m.Status,
		MarketType:     m.MarketType,
		Result:         m.Result,
		YesBid:         ParseDollars(m.YesBidDollars, m.YesBid),
		YesAsk:         ParseDollars(m.YesAskDollars, m.YesAsk),
		LastPrice:      ParseDollars(m.LastPriceDollars, m.LastPrice),
		PreviousPrice:  ParseDollars(m.PreviousPriceDollars, m.PreviousPrice),
		Volume:         m.Volume,
		Volume24h:      m.Volume24h,
		OpenInterest:   m.OpenInterest,
		OpenTime:       ParseTime(m.OpenTime),
		CloseTime:      ParseTime(m.CloseTime),
		ExpirationTime: ParseTime(m.ExpirationTime),
	}
}

// Settlement returns the settlement value, preferring result over the legacy
// outcome field.
func (m *APIMarket) Settlement() string {
	if m.Result != "" {
		return m.Result
	}
	return m.Outcome
}

// ToModel converts an APITrade to model.Trade. The YES price is taken from
// yes_price_dollars, then the legacy price field, then yes_price cents.
func (t *APITrade) ToModel() model.Trade {
	price := CentsToDollars(t.YesPrice)
	if d, err := decimal.NewFromString(strings.TrimSpace(t.YesPriceDollars)); err == nil {
		price = d
	} else if t.Price != nil {
		price = decimal.NewFromFloat(*t.Price)
	}

	id, err := uuid.Parse(t.TradeID)
	if err != nil {
		id = uuid.Nil
	}

	return model.Trade{
		TradeID:     id,
		Ticker:      t.Ticker,
		Price:       price,
		Count:       t.Count,
		TakerSide:   t.TakerSide,
		CreatedTime: ParseTime(t.CreatedTime),
	}
}

// ToModel converts an APIEvent to model.Event.
func (e *APIEvent) ToModel() model.Event {
	return model.Event{
		EventTicker:  e.EventTicker,
		SeriesTicker: e.SeriesTicker,
		Title:        e.Title,
		SubTitle:     e.Subtitle,
		Category:     e.Category,
	}
}

// TradesToModel converts a page of trades.
func TradesToModel(trades []APITrade) []model.Trade {
	out := make([]model.Trade, 0, len(trades))
	for i := range trades {
		out = append(out, trades[i].ToModel())
	}
	return out
}
