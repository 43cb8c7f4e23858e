package fetch

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func testFetcher(client *http.Client) *Fetcher {
	return &Fetcher{Client: client, Quiet: true, Out: io.Discard}
}

func TestFetch(t *testing.T) {
	payload := []byte("\xff\xd8\xff\xe0fake jpeg bytes")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "copenhagen_1.jpg")
	f := testFetcher(server.Client())

	if err := f.Fetch(context.Background(), server.URL, dest); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read downloaded file: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("downloaded content mismatch: got %d bytes, want %d", len(got), len(payload))
	}
}

func TestFetch_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "paris_1.jpg")
	f := testFetcher(server.Client())

	err := f.Fetch(context.Background(), server.URL+"/missing.jpg", dest)
	if err == nil {
		t.Fatal("expected error for 404 response")
	}
	if _, serr := os.Stat(dest); !os.IsNotExist(serr) {
		t.Errorf("no file should exist after a 404, stat err = %v", serr)
	}
}

func TestFetch_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	dest := filepath.Join(t.TempDir(), "berlin_1.jpg")
	f := testFetcher(nil)

	if err := f.Fetch(context.Background(), url, dest); err == nil {
		t.Fatal("expected error for refused connection")
	}
	if _, serr := os.Stat(dest); !os.IsNotExist(serr) {
		t.Errorf("no file should exist after a transport failure, stat err = %v", serr)
	}
}

func TestFetch_TruncatedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "1000")
		w.Write([]byte("short"))
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "berlin_2.jpg")
	f := testFetcher(server.Client())

	err := f.Fetch(context.Background(), server.URL, dest)
	if err == nil {
		t.Fatal("expected error for truncated body")
	}
	if _, serr := os.Stat(dest); !os.IsNotExist(serr) {
		t.Errorf("partial file should be removed, stat err = %v", serr)
	}
}

func TestFetch_InvalidURL(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "x.jpg")
	f := testFetcher(nil)

	if err := f.Fetch(context.Background(), "http://\x7f/", dest); err == nil {
		t.Fatal("expected error for invalid URL")
	}
}
