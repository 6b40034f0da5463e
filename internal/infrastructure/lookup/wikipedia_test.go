package lookup

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/doeshing/jarvis-go/internal/domain"
)

func newTestWikipedia(endpoint string) *WikipediaClient {
	c := NewWikipediaClient(domain.LookupSettings{TimeoutSeconds: 2})
	c.endpoint = endpoint + "/"
	return c
}

func TestSummaryReturnsClampedExtract(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/Alan_Turing" {
			t.Errorf("request path = %q, want underscored title", r.URL.Path)
		}
		fmt.Fprint(w, `{"type":"standard","extract":"Alan Turing was a mathematician. He worked at Bletchley Park. He is considered a founder of computer science."}`)
	}))
	defer server.Close()

	c := newTestWikipedia(server.URL)
	text, ok := c.Summary(context.Background(), "Alan Turing", 2)
	if !ok {
		t.Fatal("Summary() not ok, want extract")
	}
	want := "Alan Turing was a mathematician. He worked at Bletchley Park."
	if text != want {
		t.Fatalf("Summary() = %q, want %q", text, want)
	}
}

func TestSummaryMissesAreAbsorbed(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"not found", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}},
		{"disambiguation", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"type":"disambiguation","extract":"Turing may refer to:"}`)
		}},
		{"empty extract", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"type":"standard","extract":""}`)
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `not json`)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()
			c := newTestWikipedia(server.URL)
			if _, ok := c.Summary(context.Background(), "whatever", 2); ok {
				t.Fatal("Summary() ok, want miss")
			}
		})
	}
}

func TestSummaryEmptyQuery(t *testing.T) {
	c := newTestWikipedia("http://127.0.0.1:0")
	if _, ok := c.Summary(context.Background(), "  ", 2); ok {
		t.Fatal("Summary() ok for blank query")
	}
}
