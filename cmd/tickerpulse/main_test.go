package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestReadInteractive(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		bodyAvailable bool
		wantQuery     string
		wantLimit     int
		wantBody      bool
	}{
		{"defaults", "NVDA\n\n\n", true, "NVDA", 20, false},
		{"explicit count", "apple\n7\nn\n", true, "apple", 7, false},
		{"count below one", "AAPL\n-4\n", false, "AAPL", 1, false},
		{"bad count", "AAPL\nlots\n", false, "AAPL", 20, false},
		{"body yes", "MSFT\n5\nYes\n", true, "MSFT", 5, true},
		{"body t", "MSFT\n5\nt\n", true, "MSFT", 5, true},
		{"body not offered", "MSFT\n5\ny\n", false, "MSFT", 5, false},
		{"trims input", "  Tesla  \n 3 \n", false, "Tesla", 3, false},
		{"eof after query", "GOOG", true, "GOOG", 20, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			q, n, body, err := readInteractive(strings.NewReader(tt.input), &out, tt.bodyAvailable)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if q != tt.wantQuery || n != tt.wantLimit || body != tt.wantBody {
				t.Errorf("got (%q, %d, %v), want (%q, %d, %v)", q, n, body, tt.wantQuery, tt.wantLimit, tt.wantBody)
			}
			if !strings.Contains(out.String(), "Ticker or company: ") {
				t.Errorf("missing query prompt in %q", out.String())
			}
			asked := strings.Contains(out.String(), "[y/N]")
			if asked != tt.bodyAvailable {
				t.Errorf("body prompt shown = %v, want %v", asked, tt.bodyAvailable)
			}
		})
	}
}

func TestReadInteractiveEmptyQuery(t *testing.T) {
	for _, input := range []string{"", "\n", "   \n5\n"} {
		_, _, _, err := readInteractive(strings.NewReader(input), &bytes.Buffer{}, true)
		if !errors.Is(err, errNoQuery) {
			t.Errorf("input %q: expected errNoQuery, got %v", input, err)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)
	if !strings.Contains(out.String(), "tickerpulse "+version) {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := map[string]bool{"version": false, "sentiment": false, "ask": false, "serve": false, "status": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}
