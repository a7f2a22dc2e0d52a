package main

import (
	_ "embed"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/jangaloga/jangaloga-bot/internal/dictionary"
	"github.com/kljensen/snowball/russian"
)

// Частотный список русских лемм, по одному слову на строку,
// в порядке убывания частоты.
//
//go:embed data/ru_frequency.txt
var ruFrequencyList string

// Леммы, которые полезны в словаре, но могут не попасть в топ частотного списка.
var ensureLemmas = []string{
	"красивый",
	"красота",
	"важный",
	"интересный",
	"удобный",
	"попробовать",
	"помочь",
	"понять",
	"сделать",
	"сказать",
	"думать",
	"читать",
	"писать",
	"говорить",
	"слышать",
	"видеть",
}

type seedFile struct {
	RuToJG      map[string]string         `json:"ru_to_jg"`
	Fallback    dictionary.FallbackPolicy `json:"fallback_policy"`
	LemmatizeRu *bool                     `json:"lemmatize_ru"`
}

type outFile struct {
	Meta struct {
		LanguageName string `json:"language_name"`
		Note         string `json:"note"`
		SourceSeed   string `json:"source_seed"`
		TargetSize   int    `json:"target_size"`
		ActualSize   int    `json:"actual_size"`
	} `json:"meta"`
	RuToJG      map[string]string         `json:"ru_to_jg"`
	Fallback    dictionary.FallbackPolicy `json:"fallback_policy"`
	LemmatizeRu bool                      `json:"lemmatize_ru"`
}

func main() {
	log.SetFlags(0)
	fmt.Println("Building dictionary...")

	seedPath := flag.String("seed", "dictionary_seed.json", "Path to seed JSON.")
	outPath := flag.String("out", "dictionary.json", "Output dictionary path.")
	n := flag.Int("n", 3000, "Target TOTAL dictionary size (approx).")
	flag.Parse()

	seed, err := loadSeed(*seedPath)
	if err != nil {
		log.Fatalf("seed: %v", err)
	}

	out := build(seed, *seedPath, ruFrequencyList, *n)

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Fatalf("encode: %v", err)
	}
	if dir := filepath.Dir(*outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("mkdir: %v", err)
		}
	}
	if err := os.WriteFile(*outPath, data, 0o644); err != nil {
		log.Fatalf("write: %v", err)
	}

	fmt.Printf("Wrote %d entries to %s\n", len(out.RuToJG), *outPath)
}

// build сливает seed с частотным списком: seed-пары неприкосновенны,
// словоформы дедуплицируются по стему, недостающие переводы генерируются.
func build(seed *seedFile, seedPath, frequency string, n int) outFile {
	ruToJG := map[string]string{}
	for ru, jg := range seed.RuToJG {
		ruToJG[ru] = jg
	}

	fallback := seed.Fallback
	if fallback == "" || fallback == dictionary.KeepOriginal {
		// на выходе бота должны быть только джангалогские слова
		fallback = dictionary.DropUnknown
	}

	// занятые JG-формы: генератор не должен коллидировать с seed-словами
	reserved := map[string]struct{}{}
	for _, jg := range ruToJG {
		reserved[jg] = struct{}{}
	}

	// дедупликация словоформ по стему, чтобы не плодить падежные варианты
	seen := map[string]struct{}{}
	for ru := range ruToJG {
		seen[russian.Stem(ru, false)] = struct{}{}
	}

	var candidates []string
	addCandidate := func(raw string) {
		w := dictionary.NormRu(strings.TrimSpace(raw))
		if !dictionary.IsRussianWord(w) {
			return
		}
		stem := russian.Stem(w, false)
		if _, dup := seen[stem]; dup {
			return
		}
		if _, fixed := ruToJG[w]; fixed {
			return
		}
		seen[stem] = struct{}{}
		candidates = append(candidates, w)
	}

	for _, w := range ensureLemmas {
		addCandidate(w)
	}
	for _, line := range strings.Split(frequency, "\n") {
		if len(ruToJG)+len(candidates) >= n {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		addCandidate(line)
	}

	for _, lemma := range candidates {
		if len(ruToJG) >= n {
			break
		}
		jg := dictionary.Generate(lemma, reserved, detectKind(lemma))
		ruToJG[lemma] = jg
		reserved[jg] = struct{}{}
	}

	var out outFile
	out.Meta.LanguageName = "Джангалога"
	out.Meta.Note = "Сгенерировано из seed + частотного списка. Seed-пары имеют приоритет."
	out.Meta.SourceSeed = filepath.ToSlash(seedPath)
	out.Meta.TargetSize = n
	out.Meta.ActualSize = len(ruToJG)
	out.RuToJG = ruToJG
	out.Fallback = fallback
	out.LemmatizeRu = seed.LemmatizeRu == nil || *seed.LemmatizeRu

	return out
}

func loadSeed(path string) (*seedFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var seed seedFile
	if err := json.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &seed, nil
}

// detectKind — грубая эвристика части речи по окончанию, чтобы
// генератор подбирал подходящее джангалогское окончание.
func detectKind(lemma string) dictionary.Kind {
	switch {
	case strings.HasSuffix(lemma, "ть") || strings.HasSuffix(lemma, "ться") ||
		strings.HasSuffix(lemma, "ти") || strings.HasSuffix(lemma, "чь"):
		return dictionary.KindVerb
	case strings.HasSuffix(lemma, "ый") || strings.HasSuffix(lemma, "ий") ||
		strings.HasSuffix(lemma, "ой") || strings.HasSuffix(lemma, "ая") ||
		strings.HasSuffix(lemma, "ое") || strings.HasSuffix(lemma, "ее"):
		return dictionary.KindAdj
	default:
		return dictionary.KindNoun
	}
}
