package delivery

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/jangaloga/jangaloga-bot/internal/dictionary"
	"github.com/jangaloga/jangaloga-bot/internal/records"
)

type Handler struct {
	dict          *dictionary.Dictionary
	recordService *records.Service
	maxTextChars  int
	log           *logger.ZapLogger
}

func NewHandler(dict *dictionary.Dictionary, recordService *records.Service, maxTextChars int, log *logger.ZapLogger) *Handler {
	return &Handler{
		dict:          dict,
		recordService: recordService,
		maxTextChars:  maxTextChars,
		log:           log,
	}
}

// GET / и GET /healthz — probe для контейнерных платформ
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// POST /translate — перевод текста без телеграма (API-вариант translate-file)
func (h *Handler) Translate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	if req.Text == "" {
		http.Error(w, "missing text", http.StatusBadRequest)
		return
	}
	if n := len([]rune(req.Text)); n > h.maxTextChars {
		http.Error(w, "text too long: "+strconv.Itoa(n)+" chars", http.StatusRequestEntityTooLarge)
		return
	}

	jgText := h.dict.Translate(req.Text)
	if !dictionary.HasTranslatableWord(jgText) {
		http.Error(w, "no dictionary words in text", http.StatusUnprocessableEntity)
		return
	}

	// API-переводы тоже попадают в историю (source=api), если БД настроена
	if _, err := h.recordService.Add(r.Context(), records.Record{
		Source: "api",
		RuText: req.Text,
		JgText: jgText,
	}); err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "record save fail", Error: err})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"ru_text": req.Text,
		"jg_text": jgText,
	})
}

// GET /dictionary/stats
func (h *Handler) DictionaryStats(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"size":            h.dict.Size(),
		"fallback_policy": h.dict.Fallback,
		"lemmatize_ru":    h.dict.Lemmatize,
	})
}

// POST /dictionary/words — ручное пополнение словаря на лету
func (h *Handler) AddWord(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Ru string `json:"ru"`
		Jg string `json:"jg"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	if err := h.dict.Add(req.Ru, req.Jg); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "dictionary word added: " + dictionary.NormRu(req.Ru),
		Service: "jangaloga-bot",
	})

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"size": h.dict.Size()})
}

// GET /records?chat_id=&limit=
func (h *Handler) ListRecords(w http.ResponseWriter, r *http.Request) {
	if !h.recordService.Enabled() {
		http.Error(w, "history disabled (no DATABASE_URL)", http.StatusServiceUnavailable)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	var (
		recs []records.Record
		err  error
	)
	if rawChat := r.URL.Query().Get("chat_id"); rawChat != "" {
		chatID, convErr := strconv.ParseInt(rawChat, 10, 64)
		if convErr != nil {
			http.Error(w, "invalid chat_id", http.StatusBadRequest)
			return
		}
		recs, err = h.recordService.History(r.Context(), chatID, limit)
	} else {
		recs, err = h.recordService.ListRecent(r.Context(), limit)
	}

	if err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "db error", Error: err})
		http.Error(w, "failed to load records", http.StatusInternalServerError)
		return
	}

	if recs == nil {
		recs = []records.Record{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(recs)
}
