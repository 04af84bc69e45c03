package resolver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/seenimoa/tickerpulse/pkg/models"
)

type fakeMarket struct {
	quoteNames map[string]string
	fastNames  map[string]string
	matches    []models.SymbolMatch
	searchErr  error
	searches   int
}

func (f *fakeMarket) QuoteName(_ context.Context, symbol string) (string, error) {
	if n, ok := f.quoteNames[symbol]; ok {
		return n, nil
	}
	return "", errors.New("quote unavailable")
}

func (f *fakeMarket) FastInfoName(_ context.Context, symbol string) (string, error) {
	if n, ok := f.fastNames[symbol]; ok {
		return n, nil
	}
	return "", errors.New("chart unavailable")
}

func (f *fakeMarket) Search(_ context.Context, _ string) ([]models.SymbolMatch, error) {
	f.searches++
	return f.matches, f.searchErr
}

func TestIsLikelyTicker(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"NVDA", true},
		{"RY.TO", true},
		{"BRK-B", true},
		{" AAPL ", true},
		{"nvda", false},
		{"aapl", false},
		{"nvidia", false},
		{"S&P 500", false},
		{"TOOLONGX", false},
		{"ABC.DEFGH", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsLikelyTicker(tt.in); got != tt.want {
			t.Errorf("IsLikelyTicker(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestResolveTickerSkipsSearch(t *testing.T) {
	md := &fakeMarket{quoteNames: map[string]string{"NVDA": "NVIDIA Corporation"}}
	got := New(md, nil).Resolve(context.Background(), " NVDA ")

	if got.Symbol != "NVDA" || got.Name != "NVIDIA Corporation" {
		t.Errorf("Resolve() = %+v", got)
	}
	if md.searches != 0 {
		t.Errorf("search called %d times for a ticker", md.searches)
	}
}

func TestResolveTickerFallsBackToFastInfo(t *testing.T) {
	md := &fakeMarket{fastNames: map[string]string{"RY.TO": "Royal Bank of Canada"}}
	got := New(md, nil).Resolve(context.Background(), "RY.TO")

	if got.Name != "Royal Bank of Canada" {
		t.Errorf("Name = %q", got.Name)
	}
}

func TestResolveTickerNoName(t *testing.T) {
	got := New(&fakeMarket{}, nil).Resolve(context.Background(), "ZZZZ")
	if got.Symbol != "ZZZZ" || got.Name != "" {
		t.Errorf("Resolve() = %+v", got)
	}
}

func TestResolvePrefersEquity(t *testing.T) {
	md := &fakeMarket{matches: []models.SymbolMatch{
		{Symbol: "NVDX", QuoteType: "ETF", LongName: "Leveraged NVIDIA ETF"},
		{Symbol: "nvda", QuoteType: "equity", ShortName: "NVIDIA Corp"},
	}}
	got := New(md, nil).Resolve(context.Background(), "nvidia corporation")

	if got.Symbol != "NVDA" {
		t.Errorf("Symbol = %q, want NVDA", got.Symbol)
	}
	if got.Name != "NVIDIA Corp" {
		t.Errorf("Name = %q", got.Name)
	}
}

func TestResolveFirstMatchWithoutEquity(t *testing.T) {
	md := &fakeMarket{
		matches:    []models.SymbolMatch{{Symbol: "^GSPC", QuoteType: "INDEX"}},
		quoteNames: map[string]string{"^GSPC": "S&P 500"},
	}
	got := New(md, nil).Resolve(context.Background(), "S&P 500")

	if got.Symbol != "^GSPC" || got.Name != "S&P 500" {
		t.Errorf("Resolve() = %+v", got)
	}
}

func TestResolveSearchFailure(t *testing.T) {
	md := &fakeMarket{searchErr: errors.New("timeout")}
	got := New(md, nil).Resolve(context.Background(), "some company")

	if got.Symbol != "SOME COMPANY" || got.Name != "" {
		t.Errorf("Resolve() = %+v", got)
	}
}

func TestResolveMatchWithoutSymbol(t *testing.T) {
	md := &fakeMarket{matches: []models.SymbolMatch{{QuoteType: "EQUITY", LongName: "Mystery Inc"}}}
	got := New(md, nil).Resolve(context.Background(), "mystery")

	if got.Symbol != "MYSTERY" || got.Name != "Mystery Inc" {
		t.Errorf("Resolve() = %+v", got)
	}
}

func TestResolveCachesNamedResults(t *testing.T) {
	md := &fakeMarket{
		matches:    []models.SymbolMatch{{Symbol: "NVDA", LongName: "NVIDIA Corporation", QuoteType: "EQUITY"}},
		quoteNames: map[string]string{},
	}
	r := New(md, nil, WithCache(time.Minute))

	for i := 0; i < 3; i++ {
		got := r.Resolve(context.Background(), "nvidia")
		if got.Symbol != "NVDA" || got.Name != "NVIDIA Corporation" {
			t.Fatalf("Resolve = %+v", got)
		}
	}
	if md.searches != 1 {
		t.Errorf("searches = %d, want 1", md.searches)
	}
}

func TestResolveDoesNotCacheMissingName(t *testing.T) {
	md := &fakeMarket{}
	r := New(md, nil, WithCache(time.Minute))

	r.Resolve(context.Background(), "unknown co")
	r.Resolve(context.Background(), "unknown co")
	if md.searches != 2 {
		t.Errorf("searches = %d, want 2", md.searches)
	}
}

func TestResolveCompanyNameUsesSearch(t *testing.T) {
	tests := []struct {
		query string
		want  models.ResolvedSymbol
	}{
		{"nvidia", models.ResolvedSymbol{Symbol: "NVDA", Name: "NVIDIA Corporation"}},
		{"nvda", models.ResolvedSymbol{Symbol: "NVDA", Name: "NVIDIA Corporation"}},
		{"Nvidia", models.ResolvedSymbol{Symbol: "NVDA", Name: "NVIDIA Corporation"}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			md := &fakeMarket{matches: []models.SymbolMatch{
				{Symbol: "NVDA", QuoteType: "EQUITY", LongName: "NVIDIA Corporation"},
			}}
			got := New(md, nil).Resolve(context.Background(), tt.query)
			if got != tt.want {
				t.Errorf("Resolve(%q) = %+v, want %+v", tt.query, got, tt.want)
			}
			if md.searches != 1 {
				t.Errorf("searches = %d, want 1", md.searches)
			}
		})
	}
}
