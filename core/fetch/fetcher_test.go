package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gaurav-prasanna/pagescrape/core"
)

func TestNew_RejectsNonPositiveRetries(t *testing.T) {
	for _, retries := range []int{0, -1} {
		_, err := New(Config{URL: "https://example.com", MaxRetries: retries})
		if err == nil {
			t.Errorf("MaxRetries=%d: expected configuration error", retries)
		}
	}
}

func TestFetch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer srv.Close()

	f, err := New(Config{URL: srv.URL, MaxRetries: 3, Timeout: 2 * time.Second})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	result, err := f.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", result.StatusCode)
	}
	if result.HTML == "" {
		t.Error("expected non-empty body")
	}
}

func TestFetch_SendsConfiguredHeaders(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	f, err := New(Config{URL: srv.URL, MaxRetries: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := f.Fetch(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotUA != defaultUserAgent {
		t.Errorf("User-Agent = %q, want %q", gotUA, defaultUserAgent)
	}
}

func TestFetch_RetriesThenSucceeds(t *testing.T) {
	const maxRetries = 3
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < maxRetries {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte("<html>ok</html>"))
	}))
	defer srv.Close()

	f, err := New(Config{URL: srv.URL, MaxRetries: maxRetries})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var waits []time.Duration
	f.sleep = func(d time.Duration) { waits = append(waits, d) }

	if _, err := f.Fetch(context.Background()); err != nil {
		t.Fatalf("expected success on final attempt, got %v", err)
	}
	if calls != maxRetries {
		t.Errorf("attempts = %d, want %d", calls, maxRetries)
	}
	// Pure exponential backoff: 1s after the first failure, 2s after the second.
	want := []time.Duration{1 * time.Second, 2 * time.Second}
	if len(waits) != len(want) {
		t.Fatalf("backoff waits = %v, want %v", waits, want)
	}
	for i := range want {
		if waits[i] != want[i] {
			t.Errorf("wait[%d] = %v, want %v", i, waits[i], want[i])
		}
	}
}

func TestFetch_AllAttemptsFail(t *testing.T) {
	const maxRetries = 4
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	f, err := New(Config{URL: srv.URL, MaxRetries: maxRetries})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	f.sleep = func(time.Duration) {}

	_, err = f.Fetch(context.Background())
	if err == nil {
		t.Fatal("expected failure when every attempt fails")
	}
	var fetchErr *core.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("error is %T, want *core.FetchError", err)
	}
	if fetchErr.Attempts != maxRetries {
		t.Errorf("Attempts = %d, want %d", fetchErr.Attempts, maxRetries)
	}
	if fetchErr.Unwrap() == nil {
		t.Error("expected wrapped underlying error")
	}
	if calls != maxRetries {
		t.Errorf("server saw %d requests, want %d", calls, maxRetries)
	}
}

func TestFetch_NoBackoffAfterLastAttempt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f, err := New(Config{URL: srv.URL, MaxRetries: 2})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var waits int
	f.sleep = func(time.Duration) { waits++ }

	if _, err := f.Fetch(context.Background()); err == nil {
		t.Fatal("expected failure")
	}
	if waits != 1 {
		t.Errorf("backoff waits = %d, want 1 (none after the final attempt)", waits)
	}
}
