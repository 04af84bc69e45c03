package yfinance

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/seenimoa/tickerpulse/internal/infra"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(infra.NewClient(time.Second, "test"), srv.URL)
}

func TestQuoteNamePrefersShortName(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v7/finance/quote" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("symbols"); got != "NVDA" {
			t.Errorf("symbols = %q", got)
		}
		w.Write([]byte(`{"quoteResponse":{"result":[{"symbol":"NVDA","shortName":"NVIDIA Corporation","longName":"NVIDIA Corp Long"}]}}`))
	})

	name, err := c.QuoteName(context.Background(), "NVDA")
	if err != nil {
		t.Fatalf("QuoteName() error: %v", err)
	}
	if name != "NVIDIA Corporation" {
		t.Errorf("name = %q", name)
	}
}

func TestQuoteNameFallsBackToLongName(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"quoteResponse":{"result":[{"symbol":"RY.TO","shortName":"  ","longName":"Royal Bank of Canada"}]}}`))
	})

	name, err := c.QuoteName(context.Background(), "RY.TO")
	if err != nil {
		t.Fatalf("QuoteName() error: %v", err)
	}
	if name != "Royal Bank of Canada" {
		t.Errorf("name = %q", name)
	}
}

func TestQuoteNameEmptyResult(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"quoteResponse":{"result":[]}}`))
	})

	_, err := c.QuoteName(context.Background(), "ZZZZ")
	if !errors.Is(err, ErrNoName) {
		t.Fatalf("expected ErrNoName, got %v", err)
	}
}

func TestQuoteNameHTTPError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
	})

	_, err := c.QuoteName(context.Background(), "NVDA")
	var httpErr *infra.ErrHTTP
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *infra.ErrHTTP, got %v", err)
	}
}

func TestFastInfoName(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/v8/finance/chart/AAPL") {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"chart":{"result":[{"meta":{"symbol":"AAPL","longName":"Apple Inc."}}]}}`))
	})

	name, err := c.FastInfoName(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("FastInfoName() error: %v", err)
	}
	if name != "Apple Inc." {
		t.Errorf("name = %q", name)
	}
}

func TestSearch(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "nvidia" {
			t.Errorf("q = %q", got)
		}
		w.Write([]byte(`{"quotes":[
			{"symbol":"NVDA.MX","quoteType":"EQUITY","shortname":"NVIDIA CORP","exchange":"MEX"},
			{"ticker":"NVD","quoteType":"ETF","longname":"NVIDIA Shares ETF"}
		]}`))
	})

	matches, err := c.Search(context.Background(), "nvidia")
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("len = %d, want 2", len(matches))
	}
	if matches[0].Symbol != "NVDA.MX" || matches[0].QuoteType != "EQUITY" || matches[0].ShortName != "NVIDIA CORP" {
		t.Errorf("first match = %+v", matches[0])
	}
	if matches[1].Symbol != "NVD" {
		t.Errorf("ticker field should fill symbol, got %q", matches[1].Symbol)
	}
}

func TestNews(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("newsCount"); got != "20" {
			t.Errorf("newsCount = %q", got)
		}
		w.Write([]byte(`{"news":[{"title":"Nvidia rallies","link":"https://x/1","publisher":"Reuters","providerPublishTime":1700000000}]}`))
	})

	news, err := c.News(context.Background(), "NVDA")
	if err != nil {
		t.Fatalf("News() error: %v", err)
	}
	if len(news) != 1 || news[0]["title"] != "Nvidia rallies" {
		t.Errorf("news = %v", news)
	}
}
