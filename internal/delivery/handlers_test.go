package delivery

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/go-chi/chi/v5"
	"github.com/jangaloga/jangaloga-bot/internal/dictionary"
	"github.com/jangaloga/jangaloga-bot/internal/records"
	"go.uber.org/zap"
)

type fakeRepo struct {
	created []records.Record
}

func (f *fakeRepo) Create(_ context.Context, rec records.Record) (int64, error) {
	f.created = append(f.created, rec)
	return int64(len(f.created)), nil
}

func (f *fakeRepo) History(_ context.Context, _ int64, _ int) ([]records.Record, error) {
	return f.created, nil
}

func (f *fakeRepo) ListRecent(_ context.Context, _ int) ([]records.Record, error) {
	return f.created, nil
}

func newTestServer(t *testing.T) (*httptest.Server, *dictionary.Dictionary) {
	t.Helper()
	return newTestServerWithRecords(t, records.NewService(nil))
}

func newTestServerWithRecords(t *testing.T, recordService *records.Service) (*httptest.Server, *dictionary.Dictionary) {
	t.Helper()

	dictPath := filepath.Join(t.TempDir(), "dictionary.json")
	payload := `{
		"meta": {"language_name": "Джангалога"},
		"ru_to_jg": {"привет": "монони", "друг": "губожя"},
		"fallback_policy": "drop_unknown",
		"lemmatize_ru": false
	}`
	if err := os.WriteFile(dictPath, []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}

	dict, err := dictionary.Load(dictPath)
	if err != nil {
		t.Fatalf("load dictionary: %v", err)
	}

	zl := logger.NewZapLogger(zap.NewNop().Sugar())
	h := NewHandler(dict, recordService, 400, zl)

	r := chi.NewRouter()
	RegisterRoutes(r, h)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, dict
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, path := range []string{"/", "/healthz"} {
		resp, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, resp.StatusCode)
		}
	}
}

func TestTranslate(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Post(srv.URL+"/translate", "application/json",
		strings.NewReader(`{"text": "Привет, друг!"}`))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["jg_text"] != "Монони, губожя!" {
		t.Errorf("jg_text = %q", body["jg_text"])
	}
}

func TestTranslate_WritesAPIRecord(t *testing.T) {
	repo := &fakeRepo{}
	srv, _ := newTestServerWithRecords(t, records.NewService(repo))

	resp, err := http.Post(srv.URL+"/translate", "application/json",
		strings.NewReader(`{"text": "Привет, друг!"}`))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	if len(repo.created) != 1 {
		t.Fatalf("records written = %d, want 1", len(repo.created))
	}
	rec := repo.created[0]
	if rec.Source != "api" {
		t.Errorf("source = %q, want %q", rec.Source, "api")
	}
	if rec.RuText != "Привет, друг!" || rec.JgText != "Монони, губожя!" {
		t.Errorf("record = %q -> %q", rec.RuText, rec.JgText)
	}

	// неудачный перевод в историю не попадает
	resp, _ = http.Post(srv.URL+"/translate", "application/json",
		strings.NewReader(`{"text": "абракадабра"}`))
	resp.Body.Close()
	if len(repo.created) != 1 {
		t.Errorf("records written = %d after failed translate, want 1", len(repo.created))
	}
}

func TestTranslate_NoKnownWords(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Post(srv.URL+"/translate", "application/json",
		strings.NewReader(`{"text": "абракадабра"}`))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", resp.StatusCode)
	}
}

func TestTranslate_BadRequests(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, _ := http.Post(srv.URL+"/translate", "application/json", strings.NewReader(`not json`))
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad json: status = %d, want 400", resp.StatusCode)
	}

	resp, _ = http.Post(srv.URL+"/translate", "application/json", strings.NewReader(`{"text": ""}`))
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("empty text: status = %d, want 400", resp.StatusCode)
	}

	long := strings.Repeat("привет ", 100)
	resp, _ = http.Post(srv.URL+"/translate", "application/json",
		strings.NewReader(`{"text": "`+long+`"}`))
	resp.Body.Close()
	if resp.StatusCode != http.StatusRequestEntityTooLarge {
		t.Errorf("long text: status = %d, want 413", resp.StatusCode)
	}
}

func TestDictionaryStatsAndAddWord(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/dictionary/stats")
	if err != nil {
		t.Fatal(err)
	}
	var stats map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if stats["size"].(float64) != 2 {
		t.Errorf("size = %v, want 2", stats["size"])
	}
	if stats["fallback_policy"] != "drop_unknown" {
		t.Errorf("fallback_policy = %v", stats["fallback_policy"])
	}

	resp, err = http.Post(srv.URL+"/dictionary/words", "application/json",
		strings.NewReader(`{"ru": "мир", "jg": "жогана"}`))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("add word: status = %d", resp.StatusCode)
	}

	resp, _ = http.Post(srv.URL+"/translate", "application/json",
		strings.NewReader(`{"text": "привет мир"}`))
	var body map[string]string
	_ = json.NewDecoder(resp.Body).Decode(&body)
	resp.Body.Close()
	if body["jg_text"] != "монони жогана" {
		t.Errorf("jg_text after add = %q", body["jg_text"])
	}

	resp, _ = http.Post(srv.URL+"/dictionary/words", "application/json",
		strings.NewReader(`{"ru": "", "jg": "x"}`))
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("empty ru word: status = %d, want 400", resp.StatusCode)
	}
}

func TestListRecords_Disabled(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/records")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503 (history disabled)", resp.StatusCode)
	}
}
