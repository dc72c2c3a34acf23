package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const samplePDF = "%PDF-1.4\n%fake body\n"

func TestFetch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/zamena.pdf", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte(samplePDF))
	})
	mux.HandleFunc("/empty.pdf", func(w http.ResponseWriter, r *http.Request) {})
	mux.HandleFunc("/missing.pdf", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	mux.HandleFunc("/landing", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(`<html><body><a href="/news">news</a><a href="zamena.pdf">Замены</a></body></html>`))
	})
	mux.HandleFunc("/nolinks", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><body><p>Нет файлов</p></body></html>`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := New()
	ctx := context.Background()

	t.Run("pdf", func(t *testing.T) {
		doc, err := client.Fetch(ctx, srv.URL+"/zamena.pdf")
		if err != nil {
			t.Fatalf("Fetch() error = %v", err)
		}
		if string(doc.Data) != samplePDF {
			t.Errorf("Data = %q, want %q", doc.Data, samplePDF)
		}
		if !doc.IsPDF() {
			t.Error("IsPDF() = false, want true")
		}
	})

	t.Run("empty body", func(t *testing.T) {
		_, err := client.Fetch(ctx, srv.URL+"/empty.pdf")
		if !errors.Is(err, ErrEmptyPayload) {
			t.Errorf("Fetch() error = %v, want ErrEmptyPayload", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, err := client.Fetch(ctx, srv.URL+"/missing.pdf")
		if !errors.Is(err, ErrUpstreamStatus) {
			t.Errorf("Fetch() error = %v, want ErrUpstreamStatus", err)
		}
	})

	t.Run("html landing page", func(t *testing.T) {
		doc, err := client.Fetch(ctx, srv.URL+"/landing")
		if err != nil {
			t.Fatalf("Fetch() error = %v", err)
		}
		if !strings.HasSuffix(doc.URL, "/zamena.pdf") {
			t.Errorf("URL = %q, want it to end in /zamena.pdf", doc.URL)
		}
		if !doc.IsPDF() {
			t.Error("IsPDF() = false, want true")
		}
	})

	t.Run("html without links", func(t *testing.T) {
		_, err := client.Fetch(ctx, srv.URL+"/nolinks")
		if !errors.Is(err, ErrNoDocumentLink) {
			t.Errorf("Fetch() error = %v, want ErrNoDocumentLink", err)
		}
	})

	t.Run("html returned as is when not following", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.FollowLinks = false
		doc, err := NewWithConfig(cfg).Fetch(ctx, srv.URL+"/landing")
		if err != nil {
			t.Fatalf("Fetch() error = %v", err)
		}
		if doc.IsPDF() {
			t.Error("IsPDF() = true, want false")
		}
	})
}

func TestFetch_TooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Repeat("x", 64)))
	}))
	defer srv.Close()

	cfg := DefaultConfig()
	cfg.MaxBytes = 16
	_, err := NewWithConfig(cfg).Fetch(context.Background(), srv.URL)
	if !errors.Is(err, ErrTooLarge) {
		t.Errorf("Fetch() error = %v, want ErrTooLarge", err)
	}
}

func TestFetch_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	cfg := DefaultConfig()
	cfg.Timeout = 50 * time.Millisecond
	if _, err := NewWithConfig(cfg).Fetch(context.Background(), srv.URL); err == nil {
		t.Error("Fetch() error = nil, want timeout error")
	}
}

func TestFindDocumentLink(t *testing.T) {
	tests := []struct {
		name string
		page string
		base string
		want string
	}{
		{
			"relative link",
			`<a href="images/pdf/zamena.pdf">x</a>`,
			"https://ttgt.org/index.html",
			"https://ttgt.org/images/pdf/zamena.pdf",
		},
		{
			"absolute link with query",
			`<a href="https://cdn.example.org/files/PM-2-1.PDF?v=3">x</a>`,
			"https://ttgt.org/",
			"https://cdn.example.org/files/PM-2-1.PDF?v=3",
		},
		{
			"first pdf wins",
			`<ul><li><a href="/a.doc">a</a></li><li><a href="/b.pdf">b</a></li><li><a href="/c.pdf">c</a></li></ul>`,
			"https://ttgt.org/x/",
			"https://ttgt.org/b.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindDocumentLink([]byte(tt.page), tt.base)
			if err != nil {
				t.Fatalf("FindDocumentLink() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("FindDocumentLink() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExpandURL(t *testing.T) {
	tests := []struct {
		template, group, want string
	}{
		{"https://ttgt.org/images/raspisanie/ochno/%s.pdf", "PM21", "https://ttgt.org/images/raspisanie/ochno/PM21.pdf"},
		{"https://ttgt.org/images/pdf/zamena.pdf", "PM21", "https://ttgt.org/images/pdf/zamena.pdf"},
		{"https://x/%s.pdf", "a b", "https://x/a%20b.pdf"},
	}
	for _, tt := range tests {
		if got := ExpandURL(tt.template, tt.group); got != tt.want {
			t.Errorf("ExpandURL(%q, %q) = %q, want %q", tt.template, tt.group, got, tt.want)
		}
	}
}
