package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/ttgt/schedparse"
	"github.com/ttgt/schedparse/fetch"
	"github.com/ttgt/schedparse/model"
	"github.com/ttgt/schedparse/reader"
)

// stubFetcher serves canned documents by URL and records requests.
type stubFetcher struct {
	docs map[string]*fetch.Document
	err  error
	urls []string
}

func (f *stubFetcher) Fetch(ctx context.Context, url string) (*fetch.Document, error) {
	f.urls = append(f.urls, url)
	if f.err != nil {
		return nil, f.err
	}
	if doc, ok := f.docs[url]; ok {
		return doc, nil
	}
	return nil, fmt.Errorf("%w: %s: 404 Not Found", fetch.ErrUpstreamStatus, url)
}

func makeItem(txt string, x, y float64) model.Item {
	return model.NewItem(txt, x, y)
}

var fixedNow = time.Date(2025, 4, 14, 9, 30, 0, 0, time.UTC)

func newTestServer(t *testing.T, f Fetcher, pages []reader.Page) http.Handler {
	t.Helper()
	msk := time.FixedZone("MSK", 3*60*60)
	s := New(Config{
		ReplacementsURL:     "https://example.org/zamena.pdf",
		ScheduleURLTemplate: "https://example.org/ochno/%s.pdf",
		Location:            msk,
		Logger:              slog.New(slog.NewTextHandler(io.Discard, nil)),
		Now:                 func() time.Time { return fixedNow },
	}, f)
	if pages != nil {
		s.open = func(*fetch.Document) *schedparse.Extractor {
			return schedparse.FromPages(pages).At(fixedNow)
		}
	}
	return s.Handler()
}

func do(t *testing.T, h http.Handler, method, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var body map[string]any
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON %q: %v", rec.Body.String(), err)
		}
	}
	return rec, body
}

func pdfDoc(url string) *fetch.Document {
	return &fetch.Document{URL: url, ContentType: "application/pdf", Data: []byte("%PDF-1.4")}
}

func TestReplacements(t *testing.T) {
	pages := []reader.Page{{Number: 1, Items: []model.Item{
		makeItem("Лист изменений 15 Апреля 2025г.", 150, 780),
		makeItem("ПМ-1-1", 40, 100),
		makeItem("ПМ-2-1", 40, 150),
		makeItem("ПМ-3-1", 40, 200),
		makeItem("2", 80, 150),
		makeItem("Химия", 100, 150),
		makeItem("Физика", 260, 150),
	}}}
	f := &stubFetcher{docs: map[string]*fetch.Document{
		"https://example.org/zamena.pdf": pdfDoc("https://example.org/zamena.pdf"),
	}}
	h := newTestServer(t, f, pages)

	rec, body := do(t, h, http.MethodGet, "/api/replacements/PM21")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if body["success"] != true {
		t.Errorf("success = %v, want true", body["success"])
	}

	list, ok := body["replacements"].([]any)
	if !ok || len(list) != 1 {
		t.Fatalf("replacements = %v, want one page", body["replacements"])
	}
	page := list[0].(map[string]any)
	rows := page["rows"].([]any)
	row := rows[0].(map[string]any)
	if row["pair"] != "2" || row["subject_original"] != "Химия" || row["change"] != "Физика" {
		t.Errorf("row = %v", row)
	}
	header := page["header"].(map[string]any)
	if header["isoDate"] != "2025-04-15T00:00:00.000Z" {
		t.Errorf("isoDate = %v", header["isoDate"])
	}
	if len(f.urls) != 1 || f.urls[0] != "https://example.org/zamena.pdf" {
		t.Errorf("fetched %v, want the replacements URL", f.urls)
	}
}

func TestReplacements_NoMatches(t *testing.T) {
	f := &stubFetcher{docs: map[string]*fetch.Document{
		"https://example.org/zamena.pdf": pdfDoc("https://example.org/zamena.pdf"),
	}}
	h := newTestServer(t, f, []reader.Page{{Number: 1}})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/replacements/"+url.PathEscape("ПМ-9-9"), nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	want := `{"success":true,"replacements":[]}`
	if got := strings.TrimSpace(rec.Body.String()); got != want {
		t.Errorf("body = %s, want %s", got, want)
	}
}

func TestSchedule(t *testing.T) {
	pages := []reader.Page{{Number: 1, Items: []model.Item{
		makeItem("1-я неделя", 20, 700),
		makeItem("Пнд", 43, 680),
		makeItem("Математика Иванов И.И. 204", 135, 675),
	}}}
	f := &stubFetcher{docs: map[string]*fetch.Document{
		"https://example.org/ochno/PM21.pdf": pdfDoc("https://example.org/ochno/PM21.pdf"),
	}}
	h := newTestServer(t, f, pages)

	rec, body := do(t, h, http.MethodGet, "/api/schedule/PM21")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if body["timestamp"] != "14.04.2025, 12:30:00" {
		t.Errorf("timestamp = %v, want Moscow time", body["timestamp"])
	}

	data := body["structuredData"].([]any)
	weeks := data[0].([]any)
	week := weeks[0].(map[string]any)
	if week["week"] != float64(1) {
		t.Errorf("week = %v, want 1", week["week"])
	}
	days := week["days"].([]any)
	day := days[0].(map[string]any)
	if day["day"] != "Понедельник" {
		t.Errorf("day = %v", day["day"])
	}
	if n := len(day["pairs"].([]any)); n != 5 {
		t.Errorf("pairs = %d, want 5", n)
	}
}

func TestMissingGroup(t *testing.T) {
	h := newTestServer(t, &stubFetcher{}, nil)

	for _, path := range []string{"/api/replacements/", "/api/schedule/", "/api/schedule/%20"} {
		rec, body := do(t, h, http.MethodGet, path)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", path, rec.Code)
		}
		if body["success"] != false || body["error"] != msgGroupRequired {
			t.Errorf("%s: body = %v", path, body)
		}
	}
}

func TestFetchErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"upstream", fmt.Errorf("%w: 503", fetch.ErrUpstreamStatus), http.StatusBadGateway, msgUpstreamUnavailable},
		{"empty", fmt.Errorf("%w: x", fetch.ErrEmptyPayload), http.StatusInternalServerError, msgEmptyDocument},
		{"network", fmt.Errorf("dial tcp: connection refused"), http.StatusInternalServerError, msgScheduleFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestServer(t, &stubFetcher{err: tt.err}, nil)
			rec, body := do(t, h, http.MethodGet, "/api/schedule/PM21")
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
			if body["error"] != tt.msg {
				t.Errorf("error = %v, want %q", body["error"], tt.msg)
			}
		})
	}
}

func TestDecodeFailure(t *testing.T) {
	f := &stubFetcher{docs: map[string]*fetch.Document{
		"https://example.org/zamena.pdf": {URL: "https://example.org/zamena.pdf", Data: []byte("garbage")},
	}}
	h := newTestServer(t, f, nil)

	rec, body := do(t, h, http.MethodGet, "/api/replacements/PM21")
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if body["success"] != false || body["error"] != msgReplacementsFailed {
		t.Errorf("body = %v", body)
	}
}

func TestCORS(t *testing.T) {
	h := newTestServer(t, &stubFetcher{}, nil)

	rec, _ := do(t, h, http.MethodOptions, "/api/schedule/PM21")
	if rec.Code != http.StatusNoContent {
		t.Errorf("OPTIONS status = %d, want 204", rec.Code)
	}

	rec, _ = do(t, h, http.MethodGet, "/healthz")
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin = %q, want *", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); got != "GET, POST, OPTIONS" {
		t.Errorf("Allow-Methods = %q", got)
	}
}

func TestRequestID(t *testing.T) {
	h := newTestServer(t, &stubFetcher{}, nil)

	rec, _ := do(t, h, http.MethodGet, "/healthz")
	if id := rec.Header().Get(RequestIDHeader); len(id) != 36 {
		t.Errorf("generated request ID = %q, want a UUID", id)
	}

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if id := rec.Header().Get(RequestIDHeader); id != "abc-123" {
		t.Errorf("request ID = %q, want the client's", id)
	}
}

func TestRecoverMiddleware(t *testing.T) {
	s := New(Config{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}, &stubFetcher{})
	h := s.RecoverMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}
