package api

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestOptionValues(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{
			name: "markets",
			got: GetMarketsOptions{
				Limit:      100,
				Status:     "settled",
				Tickers:    []string{"A", "B"},
				MinCloseTS: 1730764800,
			}.values().Encode(),
			want: "limit=100&min_close_ts=1730764800&status=settled&tickers=A%2CB",
		},
		{
			name: "trades",
			got:  GetTradesOptions{Ticker: "X", MinTS: 10, MaxTS: 20, Cursor: "c"}.values().Encode(),
			want: "cursor=c&max_ts=20&min_ts=10&ticker=X",
		},
		{
			name: "events zero values omitted",
			got:  GetEventsOptions{}.values().Encode(),
			want: "",
		},
		{
			name: "orders",
			got:  GetOrdersOptions{Limit: 5, Status: "resting"}.values().Encode(),
			want: "limit=5&status=resting",
		},
		{
			name: "series",
			got:  GetSeriesListOptions{Tags: []string{"a", "b"}}.values().Encode(),
			want: "tags=a%2Cb",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("values() = %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestCollectPages(t *testing.T) {
	t.Run("follows cursors", func(t *testing.T) {
		pages := map[string][]int{"": {1, 2}, "b": {3}}
		next := map[string]string{"": "b"}

		got, err := collectPages(context.Background(), func(ctx context.Context, cursor string) ([]int, string, error) {
			if _, ok := ctx.Deadline(); !ok {
				t.Error("expected a pagination deadline")
			}
			return pages[cursor], next[cursor], nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 3 || got[2] != 3 {
			t.Errorf("got %v, want [1 2 3]", got)
		}
	})

	t.Run("keeps caller deadline", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		want, _ := ctx.Deadline()

		_, err := collectPages(ctx, func(ctx context.Context, cursor string) ([]int, string, error) {
			if got, _ := ctx.Deadline(); !got.Equal(want) {
				t.Errorf("deadline = %v, want %v", got, want)
			}
			return nil, "", nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("stops on error", func(t *testing.T) {
		boom := errors.New("boom")
		got, err := collectPages(context.Background(), func(ctx context.Context, cursor string) ([]int, string, error) {
			if cursor == "" {
				return []int{1}, "next", nil
			}
			return nil, "", boom
		})
		if !errors.Is(err, boom) || got != nil {
			t.Errorf("got %v, %v; want nil, boom", got, err)
		}
	})
}
