package dictionary

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/kljensen/snowball/russian"
)

// FallbackPolicy — что делать со словом, которого нет в словаре
type FallbackPolicy string

const (
	KeepOriginal FallbackPolicy = "keep_original"
	MarkUnknown  FallbackPolicy = "mark_unknown"
	DropUnknown  FallbackPolicy = "drop_unknown"
)

var (
	tokenRe = regexp.MustCompile(`[A-Za-zА-Яа-яЁё]+|[^A-Za-zА-Яа-яЁё]+`)
	wordRe  = regexp.MustCompile(`^[A-Za-zА-Яа-яЁё]+$`)
	hasWord = regexp.MustCompile(`[A-Za-zА-Яа-яЁё]+`)

	spaceRe        = regexp.MustCompile(`\s+`)
	spaceBeforeRe  = regexp.MustCompile(`\s+([,.!?;:])`)
	spaceAfterOpen = regexp.MustCompile(`([(\[{«])\s+`)
	punctNoSpaceRe = regexp.MustCompile(`([,.!?;:])([A-Za-zА-Яа-яЁё])`)
)

type Dictionary struct {
	path string

	mu        sync.RWMutex
	ruToJG    map[string]string
	stems     map[string]string // стем леммы → перевод, для непрямых форм
	Fallback  FallbackPolicy
	Lemmatize bool
}

type fileMeta struct {
	LanguageName string `json:"language_name"`
	Note         string `json:"note,omitempty"`
	SourceSeed   string `json:"source_seed,omitempty"`
	TargetSize   int    `json:"target_size,omitempty"`
	ActualSize   int    `json:"actual_size,omitempty"`
}

type filePayload struct {
	Meta        fileMeta          `json:"meta"`
	RuToJG      map[string]string `json:"ru_to_jg"`
	Fallback    FallbackPolicy    `json:"fallback_policy"`
	LemmatizeRu bool              `json:"lemmatize_ru"`
}

// Load читает словарь из JSON. Отсутствующий файл — не ошибка:
// бот стартует с пустым словарём, чтобы можно было наполнять его через API.
func Load(path string) (*Dictionary, error) {
	d := &Dictionary{
		path:     path,
		ruToJG:   map[string]string{},
		Fallback: KeepOriginal,
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			d.rebuildStems()
			return d, nil
		}
		return nil, fmt.Errorf("read dictionary: %w", err)
	}

	var payload filePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode dictionary %s: %w", path, err)
	}

	if payload.RuToJG != nil {
		d.ruToJG = payload.RuToJG
	}
	if payload.Fallback != "" {
		d.Fallback = payload.Fallback
	}
	d.Lemmatize = payload.LemmatizeRu
	d.rebuildStems()
	return d, nil
}

// Save пишет словарь обратно на диск (ключи сортируются encoding/json сам).
func (d *Dictionary) Save() error {
	d.mu.RLock()
	payload := filePayload{
		Meta: fileMeta{
			LanguageName: "Джангалога",
			Note:         "Словарь заполняется вручную или генератором. Seed-пары имеют приоритет.",
		},
		RuToJG:      d.ruToJG,
		Fallback:    d.Fallback,
		LemmatizeRu: d.Lemmatize,
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	d.mu.RUnlock()
	if err != nil {
		return err
	}
	if dir := filepath.Dir(d.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(d.path, data, 0o644)
}

// Add кладёт новую пару и сразу сохраняет файл.
func (d *Dictionary) Add(ruWord, jgWord string) error {
	key := NormRu(strings.TrimSpace(ruWord))
	if key == "" {
		return fmt.Errorf("пустое русское слово")
	}
	val := strings.TrimSpace(jgWord)
	if val == "" {
		return fmt.Errorf("пустое слово на джангалоге")
	}

	d.mu.Lock()
	d.ruToJG[key] = val
	if d.Lemmatize {
		stem := russian.Stem(key, false)
		if _, ok := d.stems[stem]; !ok {
			d.stems[stem] = val
		}
	}
	d.mu.Unlock()

	return d.Save()
}

func (d *Dictionary) Size() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.ruToJG)
}

// Translate подставляет джангалогские слова вместо известных русских,
// сохраняя пунктуацию и регистр исходного токена.
func (d *Dictionary) Translate(ruText string) string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var b strings.Builder
	for _, tok := range tokenRe.FindAllString(ruText, -1) {
		if !wordRe.MatchString(tok) {
			b.WriteString(tok)
			continue
		}

		form := NormRu(tok)
		// Точная форма в словаре важнее леммы: множественное число
		// может иметь отдельное значение.
		mapped, ok := d.ruToJG[form]
		if !ok && d.Lemmatize {
			mapped, ok = d.stems[russian.Stem(form, false)]
		}
		if !ok {
			switch d.Fallback {
			case DropUnknown:
				// ничего
			case MarkUnknown:
				b.WriteString("⟦" + tok + "⟧")
			default:
				b.WriteString(tok)
			}
			continue
		}
		b.WriteString(applyCaseLike(tok, mapped))
	}
	return cleanupSpacing(b.String())
}

// HasTranslatableWord — есть ли в тексте хоть одно слово (буквы).
func HasTranslatableWord(text string) bool {
	return hasWord.MatchString(text)
}

// NormRu — нижний регистр, ё → е.
func NormRu(word string) string {
	return strings.ReplaceAll(strings.ToLower(word), "ё", "е")
}

func (d *Dictionary) rebuildStems() {
	d.stems = map[string]string{}
	if !d.Lemmatize {
		return
	}
	keys := make([]string, 0, len(d.ruToJG))
	for k := range d.ruToJG {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		stem := russian.Stem(k, false)
		if _, ok := d.stems[stem]; !ok {
			d.stems[stem] = d.ruToJG[k]
		}
	}
}

func applyCaseLike(template, word string) string {
	if word == "" {
		return word
	}
	if template != "" && template == strings.ToUpper(template) && template != strings.ToLower(template) {
		return strings.ToUpper(word)
	}
	tr := []rune(template)
	if len(tr) > 1 && unicode.IsUpper(tr[0]) && isLower(tr[1:]) {
		wr := []rune(word)
		return string(unicode.ToUpper(wr[0])) + string(wr[1:])
	}
	return word
}

func isLower(rs []rune) bool {
	has := false
	for _, r := range rs {
		if unicode.IsUpper(r) {
			return false
		}
		if unicode.IsLower(r) {
			has = true
		}
	}
	return has
}

func cleanupSpacing(text string) string {
	t := strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))
	t = spaceBeforeRe.ReplaceAllString(t, "$1")
	t = spaceAfterOpen.ReplaceAllString(t, "$1")
	t = punctNoSpaceRe.ReplaceAllString(t, "$1 $2")
	return strings.TrimSpace(t)
}
