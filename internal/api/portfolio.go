package api

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnauthenticated is returned by endpoints that require signed requests.
var ErrUnauthenticated = errors.New("endpoint requires credentials")

// GetOrders lists the caller's orders. Read-only; the client never places or
// cancels orders.
func (c *Client) GetOrders(ctx context.Context, opts GetOrdersOptions) (*OrdersResponse, error) {
	if !c.Authenticated() {
		return nil, fmt.Errorf("get orders: %w", ErrUnauthenticated)
	}

	var resp OrdersResponse
	if err := c.get(ctx, "/portfolio/orders", opts.values(), &resp); err != nil {
		return nil, fmt.Errorf("get orders: %w", err)
	}
	return &resp, nil
}
