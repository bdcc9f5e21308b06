package api

import (
	"context"
	"fmt"
	"net/url"
)

// maxEventsPageSize is the largest page the events endpoint accepts.
const maxEventsPageSize = 200

// GetEvents fetches one page of events.
func (c *Client) GetEvents(ctx context.Context, opts GetEventsOptions) (*EventsResponse, error) {
	var resp EventsResponse
	if err := c.get(ctx, "/events", opts.values(), &resp); err != nil {
		return nil, fmt.Errorf("get events: %w", err)
	}
	return &resp, nil
}

// GetAllEvents fetches every event matching opts, following cursors.
func (c *Client) GetAllEvents(ctx context.Context, opts GetEventsOptions) ([]APIEvent, error) {
	if opts.Limit <= 0 {
		opts.Limit = maxEventsPageSize
	}
	return collectPages(ctx, func(ctx context.Context, cursor string) ([]APIEvent, string, error) {
		opts.Cursor = cursor
		resp, err := c.GetEvents(ctx, opts)
		if err != nil {
			return nil, "", err
		}
		return resp.Events, resp.Cursor, nil
	})
}

// GetEvent fetches one event by ticker.
func (c *Client) GetEvent(ctx context.Context, eventTicker string) (*APIEvent, error) {
	var resp SingleEventResponse
	if err := c.get(ctx, "/events/"+url.PathEscape(eventTicker), nil, &resp); err != nil {
		return nil, fmt.Errorf("get event %s: %w", eventTicker, err)
	}
	return &resp.Event, nil
}
