// Package api provides a read-only client for the Kalshi REST API.
//
// REST endpoints:
//   - Production: https://api.elections.kalshi.com/trade-api/v2
//   - Demo: https://demo-api.kalshi.co/trade-api/v2
//
// Requests are signed when credentials are supplied; public market data
// endpoints also work unsigned. Paginated endpoints use an opaque cursor.
package api
