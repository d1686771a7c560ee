package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"blog-idea-api/internal/domain/entity"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/generate", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		switch body["type"] {
		case "ideas":
			if body["topic"] == "" {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":"Topic is required"}`))
				return
			}
			_, _ = w.Write([]byte(`{"ideas":["A","B"]}`))
		case "outline":
			_, _ = w.Write([]byte(`{"outline":["Intro: ` + body["idea"] + `"]}`))
		}
	})
	mux.HandleFunc("/generate-share", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"shareId":"abc123"}`))
	})
	mux.HandleFunc("/shared/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/shared/abc123" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"Shared content not found"}`))
			return
		}
		_, _ = w.Write([]byte(`{"topic":"go","ideas":["A"],"selectedIdea":"A","outline":["x"]}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientFlow(t *testing.T) {
	srv := newServer(t)
	c := New(srv.URL+"/", nil)
	ctx := context.Background()

	ideas, err := c.Ideas(ctx, "go")
	if err != nil || !reflect.DeepEqual(ideas, []string{"A", "B"}) {
		t.Fatalf("Ideas = %v, %v", ideas, err)
	}
	outline, err := c.Outline(ctx, "A")
	if err != nil || !reflect.DeepEqual(outline, []string{"Intro: A"}) {
		t.Fatalf("Outline = %v, %v", outline, err)
	}
	id, err := c.Share(ctx, &entity.ShareSnapshot{Topic: "go"})
	if err != nil || id != "abc123" {
		t.Fatalf("Share = %q, %v", id, err)
	}
	snap, err := c.Shared(ctx, id)
	if err != nil || !snap.HasSelection() || *snap.SelectedIdea != "A" {
		t.Fatalf("Shared = %+v, %v", snap, err)
	}
	if got := c.ShareURL(id); got != srv.URL+"/share-abc123" {
		t.Fatalf("ShareURL = %q", got)
	}
}

func TestClientAPIErrors(t *testing.T) {
	srv := newServer(t)
	c := New(srv.URL, nil)

	_, err := c.Ideas(context.Background(), "")
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusBadRequest || apiErr.Message != "Topic is required" {
		t.Fatalf("err = %v", err)
	}

	_, err = c.Shared(context.Background(), "missing")
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusNotFound {
		t.Fatalf("err = %v", err)
	}
}
