package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	client := NewClient(DefaultConfig())
	if client == nil {
		t.Fatal("expected client to be created")
	}
	if client.Timeout != 0 {
		t.Errorf("default timeout = %v, want none", client.Timeout)
	}
}

func TestNewClientNilConfig(t *testing.T) {
	if NewClient(nil) == nil {
		t.Fatal("expected client to be created with default config")
	}
}

func TestNewClientTimeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timeout = 45 * time.Second
	if got := NewClient(cfg).Timeout; got != 45*time.Second {
		t.Errorf("Timeout = %v", got)
	}
}

func TestClientUserAgent(t *testing.T) {
	var got []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.Header.Get("User-Agent"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(DefaultConfig())
	defer client.CloseIdleConnections()

	req, _ := http.NewRequest(http.MethodGet, server.URL, nil)
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp.Body.Close()

	req, _ = http.NewRequest(http.MethodGet, server.URL, nil)
	req.Header.Set("User-Agent", "custom/2.0")
	resp, err = client.Do(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp.Body.Close()

	if len(got) != 2 || got[0] != "ytdigest/1.0" || got[1] != "custom/2.0" {
		t.Errorf("user agents = %v", got)
	}
	if req.Header.Get("User-Agent") != "custom/2.0" {
		t.Error("caller's request was modified")
	}
}

func TestDefaultTransportConfig(t *testing.T) {
	cfg := DefaultTransportConfig()
	if cfg.MaxIdleConns != 20 || cfg.MaxIdleConnsPerHost != 10 || cfg.MaxConnsPerHost != 20 {
		t.Errorf("pool limits = %+v", cfg)
	}
	if !cfg.ForceAttemptHTTP2 || cfg.DisableKeepAlives {
		t.Errorf("protocol settings = %+v", cfg)
	}
}
