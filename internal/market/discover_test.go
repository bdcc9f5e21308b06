package market

import (
	"context"
	"errors"
	"testing"

	"github.com/rickgao/kalshi-calibration/internal/api"
	"github.com/rickgao/kalshi-calibration/internal/model"
)

// fakeLister serves pages keyed by status and cursor.
type fakeLister struct {
	pages map[string]*api.MarketsResponse // key: status + "|" + cursor
	errs  map[string]error
	calls []api.GetMarketsOptions
}

func (f *fakeLister) GetMarkets(ctx context.Context, opts api.GetMarketsOptions) (*api.MarketsResponse, error) {
	f.calls = append(f.calls, opts)
	key := opts.Status + "|" + opts.Cursor
	if err, ok := f.errs[key]; ok {
		return nil, err
	}
	if p, ok := f.pages[key]; ok {
		return p, nil
	}
	return &api.MarketsResponse{}, nil
}

func settled(ticker, result string) api.APIMarket {
	return api.APIMarket{
		Ticker:    ticker,
		Status:    "settled",
		Result:    result,
		CloseTime: "2024-11-05T23:59:00Z",
	}
}

func TestDiscover_FiltersAndPaginates(t *testing.T) {
	noClose := settled("NOCLOSE", "yes")
	noClose.CloseTime = ""

	lister := &fakeLister{pages: map[string]*api.MarketsResponse{
		"settled|": {
			Markets: []api.APIMarket{settled("A", "yes"), noClose, settled("B", "no")},
			Cursor:  "p2",
		},
		"settled|p2": {
			Markets: []api.APIMarket{settled("VOID", "void"), settled("C", "YES")},
		},
	}}

	cfg := DefaultConfig()
	res, err := NewDiscoverer(cfg, lister, nil).Discover(context.Background())
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	want := []struct {
		ticker  string
		outcome model.Outcome
	}{
		{"A", model.OutcomeYes},
		{"B", model.OutcomeNo},
		{"C", model.OutcomeYes},
	}
	if len(res.Markets) != len(want) {
		t.Fatalf("markets = %d, want %d", len(res.Markets), len(want))
	}
	for i, w := range want {
		if res.Markets[i].Ticker != w.ticker || res.Markets[i].Outcome != w.outcome {
			t.Errorf("markets[%d] = %+v, want %s/%v", i, res.Markets[i], w.ticker, w.outcome)
		}
	}
	if res.Markets[0].CloseTimeRaw != "2024-11-05T23:59:00Z" {
		t.Errorf("CloseTimeRaw = %q", res.Markets[0].CloseTimeRaw)
	}
	if res.Pages != 2 || res.Seen != 5 || res.SkippedNoClose != 1 || res.SkippedOutcome != 1 {
		t.Errorf("result stats = pages %d seen %d noclose %d outcome %d", res.Pages, res.Seen, res.SkippedNoClose, res.SkippedOutcome)
	}
	if lister.calls[0].Limit != cfg.PageSize {
		t.Errorf("Limit = %d, want %d", lister.calls[0].Limit, cfg.PageSize)
	}
}

func TestDiscover_StopsAtTarget(t *testing.T) {
	lister := &fakeLister{pages: map[string]*api.MarketsResponse{
		"settled|": {
			Markets: []api.APIMarket{settled("A", "yes"), settled("B", "no"), settled("C", "no")},
			Cursor:  "p2",
		},
	}}

	cfg := DefaultConfig()
	cfg.Target = 2
	res, err := NewDiscoverer(cfg, lister, nil).Discover(context.Background())
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(res.Markets) != 2 {
		t.Errorf("markets = %d, want 2", len(res.Markets))
	}
	if len(lister.calls) != 1 {
		t.Errorf("calls = %d, want 1 (target reached on first page)", len(lister.calls))
	}
}

func TestDiscover_FallbackStatus(t *testing.T) {
	lister := &fakeLister{pages: map[string]*api.MarketsResponse{
		"finalized|": {Markets: []api.APIMarket{settled("F", "no")}},
	}}

	res, err := NewDiscoverer(DefaultConfig(), lister, nil).Discover(context.Background())
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(res.Markets) != 1 || res.Markets[0].Ticker != "F" {
		t.Errorf("markets = %+v, want F from fallback status", res.Markets)
	}
	if len(lister.calls) != 2 || lister.calls[1].Status != "finalized" {
		t.Errorf("calls = %+v, want settled then finalized", lister.calls)
	}
}

func TestDiscover_FallbackDisabled(t *testing.T) {
	lister := &fakeLister{}
	cfg := DefaultConfig()
	cfg.FallbackStatus = ""

	res, err := NewDiscoverer(cfg, lister, nil).Discover(context.Background())
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(res.Markets) != 0 || len(lister.calls) != 1 {
		t.Errorf("markets = %d, calls = %d, want 0 and 1", len(res.Markets), len(lister.calls))
	}
}

func TestDiscover_Errors(t *testing.T) {
	boom := errors.New("boom")

	t.Run("first page", func(t *testing.T) {
		lister := &fakeLister{errs: map[string]error{"settled|": boom}}
		res, err := NewDiscoverer(DefaultConfig(), lister, nil).Discover(context.Background())
		if !errors.Is(err, boom) {
			t.Errorf("err = %v, want boom", err)
		}
		var partial *PartialError
		if errors.As(err, &partial) {
			t.Error("first page failure should not be partial")
		}
		if res != nil {
			t.Errorf("res = %+v, want nil", res)
		}
	})

	t.Run("later page", func(t *testing.T) {
		lister := &fakeLister{
			pages: map[string]*api.MarketsResponse{
				"settled|": {Markets: []api.APIMarket{settled("A", "yes")}, Cursor: "p2"},
			},
			errs: map[string]error{"settled|p2": boom},
		}
		res, err := NewDiscoverer(DefaultConfig(), lister, nil).Discover(context.Background())

		var partial *PartialError
		if !errors.As(err, &partial) {
			t.Fatalf("err = %v, want *PartialError", err)
		}
		if partial.Page != 2 {
			t.Errorf("Page = %d, want 2", partial.Page)
		}
		if !errors.Is(err, boom) {
			t.Error("PartialError should unwrap to the page error")
		}
		if res == nil || len(res.Markets) != 1 {
			t.Errorf("res = %+v, want the first page's market", res)
		}
	})
}
