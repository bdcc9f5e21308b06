package api

// ExchangeStatusResponse from GET /exchange/status
type ExchangeStatusResponse struct {
	ExchangeActive      bool   `json:"exchange_active"`
	TradingActive       bool   `json:"trading_active"`
	EstimatedResumeTime string `json:"exchange_estimated_resume_time,omitempty"`
}

// MarketsResponse from GET /markets
type MarketsResponse struct {
	Markets []APIMarket `json:"markets"`
	Cursor  string      `json:"cursor"`
}

// APIMarket represents a market from the Kalshi API.
type APIMarket struct {
	Ticker      string `json:"ticker"`
	EventTicker string `json:"event_ticker"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Status      string `json:"status"`
	MarketType  string `json:"market_type"`
	Result      string `json:"result"`
	Outcome     string `json:"outcome,omitempty"` // legacy settlement field

	// Prices in cents
	YesBid        int `json:"yes_bid"`
	YesAsk        int `json:"yes_ask"`
	NoBid         int `json:"no_bid"`
	NoAsk         int `json:"no_ask"`
	LastPrice     int `json:"last_price"`
	PreviousPrice int `json:"previous_price"`

	// Prices as strings (sub-penny)
	YesBidDollars        string `json:"yes_bid_dollars"`
	YesAskDollars        string `json:"yes_ask_dollars"`
	NoBidDollars         string `json:"no_bid_dollars"`
	NoAskDollars         string `json:"no_ask_dollars"`
	LastPriceDollars     string `json:"last_price_dollars"`
	PreviousPriceDollars string `json:"previous_price_dollars"`

	// Volume
	Volume       int64 `json:"volume"`
	Volume24h    int64 `json:"volume_24h"`
	OpenInterest int64 `json:"open_interest"`

	// Timestamps (ISO 8601)
	OpenTime       string `json:"open_time"`
	CloseTime      string `json:"close_time"`
	ExpirationTime string `json:"expiration_time"`
}

// SingleMarketResponse from GET /markets/{ticker}
type SingleMarketResponse struct {
	Market APIMarket `json:"market"`
}

// TradesResponse from GET /markets/trades
type TradesResponse struct {
	Trades []APITrade `json:"trades"`
	Cursor string     `json:"cursor"`
}

// APITrade represents an executed trade from the Kalshi API.
type APITrade struct {
	TradeID         string   `json:"trade_id"`
	Ticker          string   `json:"ticker"`
	Count           int      `json:"count"`
	YesPrice        int      `json:"yes_price"` // cents
	NoPrice         int      `json:"no_price"`  // cents
	YesPriceDollars string   `json:"yes_price_dollars"`
	NoPriceDollars  string   `json:"no_price_dollars"`
	Price           *float64 `json:"price,omitempty"` // legacy YES price in dollars
	TakerSide       string   `json:"taker_side"`
	CreatedTime     string   `json:"created_time"`
}

// EventsResponse from GET /events
type EventsResponse struct {
	Events []APIEvent `json:"events"`
	Cursor string     `json:"cursor"`
}

// APIEvent represents an event from the Kalshi API.
type APIEvent struct {
	EventTicker  string `json:"event_ticker"`
	SeriesTicker string `json:"series_ticker"`
	Title        string `json:"title"`
	Subtitle     string `json:"sub_title"`
	Category     string `json:"category"`
}

// SingleEventResponse from GET /events/{event_ticker}
type SingleEventResponse struct {
	Event APIEvent `json:"event"`
}

// SeriesResponse from GET /series/{series_ticker}
type SeriesResponse struct {
	Series APISeries `json:"series"`
}

// SeriesListResponse from GET /series
type SeriesListResponse struct {
	Series []APISeries `json:"series"`
}

// APISeries represents a series from the Kalshi API.
type APISeries struct {
	Ticker    string   `json:"ticker"`
	Title     string   `json:"title"`
	Category  string   `json:"category"`
	Frequency string   `json:"frequency"`
	Tags      []string `json:"tags"`
}

// OrderbookResponse from GET /markets/{ticker}/orderbook
type OrderbookResponse struct {
	Orderbook APIOrderbook `json:"orderbook"`
}

// APIOrderbook represents the orderbook from the Kalshi API.
type APIOrderbook struct {
	// Bid levels as [price_cents, quantity] pairs, best last.
	Yes [][]int `json:"yes"`
	No  [][]int `json:"no"`
}

// OrdersResponse from GET /portfolio/orders
type OrdersResponse struct {
	Orders []APIOrder `json:"orders"`
	Cursor string     `json:"cursor"`
}

// APIOrder represents one of the caller's orders. Read-only.
type APIOrder struct {
	OrderID     string `json:"order_id"`
	Ticker      string `json:"ticker"`
	Side        string `json:"side"`
	Action      string `json:"action"`
	Status      string `json:"status"`
	YesPrice    int    `json:"yes_price"`
	CreatedTime string `json:"created_time"`
}

// GetMarketsOptions configures a GetMarkets request.
type GetMarketsOptions struct {
	Limit        int
	Cursor       string
	EventTicker  string
	SeriesTicker string
	Tickers      []string
	Status       string
	MinCloseTS   int64 // Unix seconds; zero means unbounded
	MaxCloseTS   int64
}

// GetTradesOptions configures a GetTrades request.
// MinTS and MaxTS are Unix seconds; zero means unbounded.
type GetTradesOptions struct {
	Limit  int
	Cursor string
	Ticker string
	MinTS  int64
	MaxTS  int64
}

// GetEventsOptions configures a GetEvents request.
type GetEventsOptions struct {
	Limit        int
	Cursor       string
	SeriesTicker string
	Status       string
}

// GetSeriesListOptions configures a GetSeriesList request.
type GetSeriesListOptions struct {
	Category string
	Tags     []string
}

// GetOrdersOptions configures a GetOrders request.
type GetOrdersOptions struct {
	Limit  int
	Cursor string
	Ticker string
	Status string
}
