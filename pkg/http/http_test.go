package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestPostJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" || r.Header.Get("x-key") != "k" {
			t.Errorf("headers = %v", r.Header)
		}
		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in["q"] == "fail" {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("down"))
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := NewClientWithTransport(ClientConfig{}, srv.Client())

	tests := []struct {
		name       string
		q          string
		wantStatus int
		wantBody   string
	}{
		{name: "ok", q: "x", wantStatus: http.StatusOK, wantBody: `{"ok":true}`},
		{name: "5xx is returned, not retried", q: "fail", wantStatus: http.StatusServiceUnavailable, wantBody: "down"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, status, err := c.PostJSON(context.Background(), srv.URL, map[string]string{"q": tt.q}, map[string]string{"x-key": "k"})
			if err != nil {
				t.Fatalf("PostJSON() error = %v", err)
			}
			if status != tt.wantStatus || string(body) != tt.wantBody {
				t.Errorf("PostJSON() = %d %q, want %d %q", status, body, tt.wantStatus, tt.wantBody)
			}
		})
	}
}

func TestPostJSONTooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 100)))
	}))
	defer srv.Close()

	c := NewClientWithTransport(ClientConfig{MaxResponseBytes: 10}, srv.Client())
	if _, _, err := c.PostJSON(context.Background(), srv.URL, nil, nil); !errors.Is(err, ErrResponseTooLarge) {
		t.Errorf("PostJSON() error = %v, want ErrResponseTooLarge", err)
	}
}
