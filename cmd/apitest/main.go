package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/rickgao/kalshi-calibration/internal/api"
	"github.com/rickgao/kalshi-calibration/internal/config"
)

func main() {
	configPath := flag.String("config", "", "path to config file (defaults only when empty)")
	envFile := flag.String("env", ".env", "optional dotenv file with KALSHI_* credentials")
	status := flag.String("status", "settled", "market status filter for the markets check")
	flag.Parse()

	if err := config.LoadEnvFiles(*envFile); err != nil {
		log.Fatalf("load env file: %v", err)
	}
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Public endpoints need no credentials; they are used when configured.
	client, err := api.NewFromConfig(cfg.API)
	if err != nil {
		log.Fatalf("create client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	fmt.Printf("API: %s (signed: %v)\n", cfg.API.RestURL, client.Authenticated())

	// Test 1: Exchange Status
	fmt.Println("\n=== Testing Exchange Status ===")
	st, err := client.GetExchangeStatus(ctx)
	if err != nil {
		log.Fatalf("GetExchangeStatus failed: %v", err)
	}
	fmt.Printf("Exchange Active: %v\n", st.ExchangeActive)
	fmt.Printf("Trading Active: %v\n", st.TradingActive)

	// Test 2: Get Markets (first page)
	fmt.Printf("\n=== Testing GetMarkets (status=%s) ===\n", *status)
	markets, err := client.GetMarkets(ctx, api.GetMarketsOptions{Limit: 5, Status: *status})
	if err != nil {
		log.Fatalf("GetMarkets failed: %v", err)
	}
	fmt.Printf("Fetched %d markets (cursor: %q)\n", len(markets.Markets), markets.Cursor)
	for i, m := range markets.Markets {
		fmt.Printf("  %d. %s - %s (close: %s, result: %q)\n", i+1, m.Ticker, m.Title, m.CloseTime, m.Settlement())
	}

	// Test 3: Get single market, its orderbook and trades
	if len(markets.Markets) > 0 {
		ticker := markets.Markets[0].Ticker
		fmt.Printf("\n=== Testing GetMarket (%s) ===\n", ticker)
		market, err := client.GetMarket(ctx, ticker)
		if err != nil {
			log.Fatalf("GetMarket failed: %v", err)
		}
		m := market.ToModel()
		fmt.Printf("Title: %s\n", m.Title)
		fmt.Printf("Status: %s\n", m.Status)
		fmt.Printf("Last: %s, Previous: %s\n", m.LastPrice, m.PreviousPrice)
		fmt.Printf("YesBid: %s, YesAsk: %s\n", m.YesBid, m.YesAsk)

		fmt.Printf("\n=== Testing GetOrderbook (%s) ===\n", ticker)
		ob, err := client.GetOrderbook(ctx, ticker, 5)
		if err != nil {
			log.Fatalf("GetOrderbook failed: %v", err)
		}
		fmt.Printf("YES levels: %d, NO levels: %d\n", len(ob.Orderbook.Yes), len(ob.Orderbook.No))
		for i, level := range ob.Orderbook.Yes {
			if i >= 3 {
				break
			}
			fmt.Printf("  Price: %d cents, Qty: %d\n", level[0], level[1])
		}

		fmt.Printf("\n=== Testing GetTrades (%s) ===\n", ticker)
		trades, err := client.GetTrades(ctx, api.GetTradesOptions{Ticker: ticker, Limit: 5})
		if err != nil {
			log.Fatalf("GetTrades failed: %v", err)
		}
		for _, t := range api.TradesToModel(trades.Trades) {
			fmt.Printf("  %s %s x%d at %s\n", t.CreatedTime.Format(time.RFC3339), t.Price, t.Count, t.TakerSide)
		}

		// Test 4: Event and series of the market
		if market.EventTicker != "" {
			fmt.Printf("\n=== Testing GetEvent (%s) ===\n", market.EventTicker)
			event, err := client.GetEvent(ctx, market.EventTicker)
			if err != nil {
				log.Fatalf("GetEvent failed: %v", err)
			}
			e := event.ToModel()
			fmt.Printf("Title: %s (series %s, category %s)\n", e.Title, e.SeriesTicker, e.Category)

			if e.SeriesTicker != "" {
				fmt.Printf("\n=== Testing GetSeries (%s) ===\n", e.SeriesTicker)
				series, err := client.GetSeries(ctx, e.SeriesTicker)
				if err != nil {
					log.Fatalf("GetSeries failed: %v", err)
				}
				fmt.Printf("Title: %s, Frequency: %s\n", series.Title, series.Frequency)
			}
		}
	}

	// Test 5: Get Events
	fmt.Println("\n=== Testing GetEvents ===")
	events, err := client.GetEvents(ctx, api.GetEventsOptions{Limit: 3})
	if err != nil {
		log.Fatalf("GetEvents failed: %v", err)
	}
	fmt.Printf("Fetched %d events\n", len(events.Events))
	for i, e := range events.Events {
		fmt.Printf("  %d. %s - %s\n", i+1, e.EventTicker, e.Title)
	}

	// Test 6: Portfolio (signed only)
	if client.Authenticated() {
		fmt.Println("\n=== Testing GetOrders ===")
		orders, err := client.GetOrders(ctx, api.GetOrdersOptions{Limit: 5})
		if err != nil {
			log.Fatalf("GetOrders failed: %v", err)
		}
		fmt.Printf("Fetched %d orders\n", len(orders.Orders))
		for i, o := range orders.Orders {
			fmt.Printf("  %d. %s %s %s %s @ %d (%s)\n", i+1, o.Ticker, o.Action, o.Side, o.Status, o.YesPrice, o.OrderID)
		}
	} else {
		fmt.Println("\n(skipping GetOrders: no credentials configured)")
	}

	fmt.Println("\n=== All API tests passed! ===")
}
