package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/arcanaland/handcheck/internal/checker"
	"github.com/arcanaland/handcheck/internal/hand"
	"github.com/arcanaland/handcheck/internal/logger"
)

func newTestServer(logs *bytes.Buffer) *Server {
	l := logger.New(logger.Options{Level: "info", Format: "json", Writer: logs})
	return New(checker.New(&l), &l)
}

func TestHealthz(t *testing.T) {
	s := newTestServer(&bytes.Buffer{})
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("got %d %q", rec.Code, rec.Body.String())
	}
}

func TestHands(t *testing.T) {
	s := newTestServer(&bytes.Buffer{})
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/hands", nil))

	var rows []CategoryResponse
	if err := json.NewDecoder(rec.Body).Decode(&rows); err != nil {
		t.Fatal(err)
	}
	if len(rows) != 10 || rows[0].ID != "RoyalFlush" || rows[9].Position != 10 {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestClassifyPost(t *testing.T) {
	tests := []struct {
		body     string
		status   int
		category string
	}{
		{`{"cards":"S10,SJ,SQ,SK,S1"}`, http.StatusOK, "RoyalFlush"},
		{`{"cards":"S3,H3,D3,S2,H2"}`, http.StatusOK, "FullHouse"},
		{`{"cards":"X5,S13,C7,C1,D11"}`, http.StatusUnprocessableEntity, ""},
		{`{"cards":"S5,S13"}`, http.StatusUnprocessableEntity, ""},
		{`{"cards":`, http.StatusBadRequest, ""},
		{`{"hand":"S5"}`, http.StatusBadRequest, ""},
	}

	s := newTestServer(&bytes.Buffer{})
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/classify", strings.NewReader(tt.body))
		s.ServeHTTP(rec, req)

		if rec.Code != tt.status {
			t.Errorf("%s: status %d, want %d", tt.body, rec.Code, tt.status)
			continue
		}
		if tt.status != http.StatusOK {
			var er ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&er); err != nil {
				t.Errorf("%s: %v", tt.body, err)
			}
			if tt.status == http.StatusUnprocessableEntity && er.Error != checker.ErrorText {
				t.Errorf("%s: error %q", tt.body, er.Error)
			}
			continue
		}
		var cr ClassifyResponse
		if err := json.NewDecoder(rec.Body).Decode(&cr); err != nil {
			t.Fatal(err)
		}
		if cr.Category != tt.category || len(cr.Cards) != 5 {
			t.Errorf("%s: got %+v", tt.body, cr)
		}
	}
}

func TestClassifyQuery(t *testing.T) {
	s := newTestServer(&bytes.Buffer{})
	rec := httptest.NewRecorder()
	target := "/v1/classify?cards=" + url.QueryEscape("S4,H5,D6,C7,S8")
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	var cr ClassifyResponse
	if err := json.NewDecoder(rec.Body).Decode(&cr); err != nil {
		t.Fatal(err)
	}
	if cr.Category != hand.Straight.String() || cr.Label != hand.Straight.Label() {
		t.Fatalf("got %+v", cr)
	}
	if strings.Join(cr.Cards, ",") != "S4,H5,D6,C7,S8" {
		t.Fatalf("cards %v", cr.Cards)
	}
}

func TestAccessLog(t *testing.T) {
	var logs bytes.Buffer
	s := newTestServer(&logs)
	s.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	out := logs.String()
	for _, want := range []string{`"path":"/healthz"`, `"status":200`, "request done"} {
		if !strings.Contains(out, want) {
			t.Errorf("access log %q missing %s", out, want)
		}
	}
}

func TestListenAndServeShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	addr := ln.Addr().String()
	ln.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- newTestServer(&bytes.Buffer{}).ListenAndServe(ctx, addr) }()

	var resp *http.Response
	for i := 0; i < 50; i++ {
		resp, err = http.Get("http://" + addr + "/healthz")
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("server never came up: %v", err)
	}
	resp.Body.Close()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("ListenAndServe: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
