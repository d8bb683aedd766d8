package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lazypower/lovewhisper/internal/session"
)

func TestHealthy(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/health" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer ts.Close()

	if !New(ts.URL).Healthy(context.Background()) {
		t.Error("Healthy = false, want true")
	}
	if New("http://127.0.0.1:1").Healthy(context.Background()) {
		t.Error("Healthy on closed port = true")
	}
}

func TestNewSetDenied(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/sets" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"status":"gate_denied"}`))
	}))
	defer ts.Close()

	res, err := New(ts.URL).NewSet(context.Background())
	if err != nil {
		t.Fatalf("NewSet: %v", err)
	}
	if res.Outcome != session.GateDenied {
		t.Errorf("Outcome = %q, want gate_denied", res.Outcome)
	}
}

func TestSetFiltersSendsBody(t *testing.T) {
	var got session.Filters
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		data, _ := io.ReadAll(r.Body)
		json.Unmarshal(data, &got)
		w.Write(data)
	}))
	defer ts.Close()

	err := New(ts.URL).SetFilters(context.Background(), session.Filters{Tone: "warm", Occasion: "morning"})
	if err != nil {
		t.Fatalf("SetFilters: %v", err)
	}
	if got.Tone != "warm" || got.Occasion != "morning" {
		t.Errorf("server got %+v", got)
	}
}

func TestStatusError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"unknown asset: zz"}`))
	}))
	defer ts.Close()

	_, err := New(ts.URL).Copy(context.Background(), "zz")
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want *StatusError", err)
	}
	if se.Code != http.StatusNotFound || se.Message != "unknown asset: zz" {
		t.Errorf("StatusError = %+v", se)
	}
}

func TestInteractionDecode(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/assets/t3/favorite" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"id":"t3","favorite":true,"careScore":2,"toasts":[]}`))
	}))
	defer ts.Close()

	got, err := New(ts.URL).ToggleFavorite(context.Background(), "t3")
	if err != nil {
		t.Fatalf("ToggleFavorite: %v", err)
	}
	if !got.Favorite || got.CareScore != 2 {
		t.Errorf("got %+v", got)
	}
}
