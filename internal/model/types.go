package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------
// Relational Types
// -----------------------------------------------------------------------------

// Event represents a specific event within a series (e.g., "2024 Presidential Election").
type Event struct {
	EventTicker  string // Primary key (e.g., "PRES-2024")
	SeriesTicker string // Parent series
	Title        string // Display title
	SubTitle     string // Optional subtitle
	Category     string // Category
}

// Market represents a prediction market as returned by the exchange.
type Market struct {
	Ticker      string // Primary key (e.g., "PRES-2024-DEM")
	EventTicker string // Parent event
	Title       string // Display title
	Subtitle    string // Optional subtitle
	Status      string // initialized, active, closed, settled, finalized, ...
	MarketType  string // "binary" or "scalar"
	Result      string // Settlement result (yes/no/empty)

	// Prices in dollars
	YesBid        decimal.Decimal
	YesAsk        decimal.Decimal
	LastPrice     decimal.Decimal
	PreviousPrice decimal.Decimal

	Volume       int64
	Volume24h    int64
	OpenInterest int64

	// Zero when the exchange did not report the time.
	OpenTime       time.Time
	CloseTime      time.Time
	ExpirationTime time.Time
}

// Quote returns the market's last-known prices.
func (m Market) Quote() Quote {
	return Quote{LastPrice: m.LastPrice, PreviousPrice: m.PreviousPrice}
}

// -----------------------------------------------------------------------------
// Settlement Types
// -----------------------------------------------------------------------------

// Outcome is the binary settlement of a market.
type Outcome int

const (
	OutcomeNo  Outcome = 0
	OutcomeYes Outcome = 1
)

// String returns "1" for YES and "0" for NO, the form used in datasets.
func (o Outcome) String() string {
	if o == OutcomeYes {
		return "1"
	}
	return "0"
}

// ParseOutcome normalizes an exchange settlement value to a binary outcome.
// Returns false when the value is not a recognized binary result.
func ParseOutcome(s string) (Outcome, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "YES", "Y", "1", "TRUE":
		return OutcomeYes, true
	case "NO", "N", "0", "FALSE":
		return OutcomeNo, true
	default:
		return OutcomeNo, false
	}
}

// SettledMarket is a market with a known close time and binary outcome.
type SettledMarket struct {
	Ticker       string
	CloseTime    time.Time
	CloseTimeRaw string // close_time exactly as received
	Outcome      Outcome
}

// Quote holds a market's last-known prices, used when no trade qualifies.
type Quote struct {
	LastPrice     decimal.Decimal
	PreviousPrice decimal.Decimal
}

// -----------------------------------------------------------------------------
// Time-Series Types
// -----------------------------------------------------------------------------

// Trade represents an executed trade.
type Trade struct {
	TradeID     uuid.UUID       // uuid.Nil when the exchange sent no parseable ID
	Ticker      string          // Market ticker
	Price       decimal.Decimal // YES price in dollars
	Count       int             // Number of contracts
	TakerSide   string          // "yes" or "no"
	CreatedTime time.Time       // Exchange execution time
}
