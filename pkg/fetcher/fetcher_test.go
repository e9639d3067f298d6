package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGet(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><body>terms</body></html>"))
	}))
	defer srv.Close()

	resp, err := New().Get(context.Background(), srv.URL+"/terms")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d", resp.StatusCode)
	}
	if resp.ContentType != "text/html; charset=utf-8" {
		t.Errorf("ContentType = %q", resp.ContentType)
	}
	if string(resp.Body) != "<html><body>terms</body></html>" {
		t.Errorf("Body = %q", resp.Body)
	}
	if gotUA == "" || gotUA == "Go-http-client/1.1" {
		t.Errorf("User-Agent = %q, want browser-like headers", gotUA)
	}
}

func TestGetStatusErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "forbidden", status: http.StatusForbidden},
		{name: "not found", status: http.StatusNotFound},
		{name: "rate limited", status: http.StatusTooManyRequests},
		{name: "server error", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			_, err := New().Get(context.Background(), srv.URL)
			var statusErr *StatusError
			if !errors.As(err, &statusErr) {
				t.Fatalf("err = %v, want StatusError", err)
			}
			if statusErr.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", statusErr.StatusCode, tt.status)
			}
			if statusErr.Detail == "" {
				t.Error("empty detail")
			}
		})
	}
}

func TestGetRejectsNonHTTPURL(t *testing.T) {
	for _, raw := range []string{"ftp://example.com/terms", "example.com/terms", ""} {
		if _, err := New().Get(context.Background(), raw); err == nil {
			t.Errorf("Get(%q) succeeded, want error", raw)
		}
	}
}

func TestGetFollowsRedirects(t *testing.T) {
	final := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("final"))
	}))
	defer final.Close()

	redirecting := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, final.URL+"/terms", http.StatusFound)
	}))
	defer redirecting.Close()

	resp, err := New().Get(context.Background(), redirecting.URL)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(resp.Body) != "final" {
		t.Errorf("Body = %q", resp.Body)
	}
	if resp.FinalURL != final.URL+"/terms" {
		t.Errorf("FinalURL = %q, want %q", resp.FinalURL, final.URL+"/terms")
	}
}
