package github_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"funbook/internal/note/repository/github"
)

func TestRawURL(t *testing.T) {
	client := github.NewClient(github.Config{})

	t.Run("host and blob segment rewrite", func(t *testing.T) {
		got := client.RawURL("https://github.com/funloss/funKnowledge/blob/main/notes/dune.md")
		want := "https://raw.githubusercontent.com/funloss/funKnowledge/main/notes/dune.md"
		if got != want {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("already-raw reference passes through", func(t *testing.T) {
		ref := "https://raw.githubusercontent.com/funloss/funKnowledge/main/notes/dune.md"
		if got := client.RawURL(ref); got != ref {
			t.Errorf("expected %s, got %s", ref, got)
		}
	})
}

func TestFetchRaw(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/funloss/funKnowledge/main/notes/dune.md", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("---\nscore: 9\n---\n# Dune\n"))
	})
	mux.HandleFunc("/missing.md", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	// References carry the test server's host already, so only the /blob/
	// segment rewrite applies here.
	client := github.NewClient(github.Config{RawHost: strings.TrimPrefix(ts.URL, "http://")})
	ctx := context.Background()

	t.Run("fetch ok", func(t *testing.T) {
		body, err := client.FetchRaw(ctx, ts.URL+"/funloss/funKnowledge/blob/main/notes/dune.md")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(body, "# Dune") {
			t.Errorf("unexpected body: %q", body)
		}
	})

	t.Run("non-200 status", func(t *testing.T) {
		if _, err := client.FetchRaw(ctx, ts.URL+"/missing.md"); err == nil {
			t.Fatal("expected error on 404 response")
		}
	})
}
