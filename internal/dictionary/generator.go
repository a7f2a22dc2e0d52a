package dictionary

import (
	"crypto/sha256"
	"regexp"
	"strings"
)

// Kind — подсказка части речи для выбора окончания.
type Kind string

const (
	KindVerb Kind = "verb"
	KindAdj  Kind = "adj"
	KindNoun Kind = "noun"
	KindNone Kind = ""
)

var ruLettersRe = regexp.MustCompile(`^[А-Яа-яЁё]+$`)

// IsRussianWord — токен целиком из кириллицы.
func IsRussianWord(tok string) bool {
	return ruLettersRe.MatchString(tok)
}

var (
	genConsonants = []string{"г", "к", "п", "б", "д", "м", "н", "л", "ж", "ч", "т", "з", "р", "с"}
	genVowels     = []string{"а", "о", "у", "я", "ё", "и", "э", "ю", "е"}
	genClusters   = []string{"гл", "лю", "но", "па", "гу", "жо", "ни", "ля", "мо", "бо", "до", "ти", "по", "чо", "ма"}

	verbEndings  = []string{"ить", "нить", "ожить", "ать"}
	adjEndings   = []string{"ати", "ий", "ино", "ый"}
	otherEndings = []string{"а", "я", "они", "ка", "ти", "ня"}
)

// Generate детерминированно строит кириллический токен «в духе Джангалоги»
// из SHA-256 исходного слова. reserved — формы, которые занимать нельзя
// (фиксированные seed-слова).
func Generate(wordRU string, reserved map[string]struct{}, kind Kind) string {
	w := NormRu(strings.TrimSpace(wordRU))
	if w == "" {
		return ""
	}

	d := sha256.Sum256([]byte(w))

	// 2..4 псевдослога
	sylN := 2 + int(d[0]%3)
	var parts []string
	for i := 0; i < sylN; i++ {
		c := genConsonants[int(d[1+i])%len(genConsonants)]
		v := genVowels[int(d[8+i])%len(genVowels)]
		chunk := c + v
		if d[16+i]%4 == 0 {
			chunk = genClusters[int(d[24+i])%len(genClusters)]
		}
		parts = append(parts, chunk)
	}
	stem := strings.Join(parts, "")

	var ending string
	switch kind {
	case KindVerb:
		ending = verbEndings[int(d[31])%len(verbEndings)]
	case KindAdj:
		ending = adjEndings[int(d[30])%len(adjEndings)]
	default:
		ending = otherEndings[int(d[29])%len(otherEndings)]
	}

	candidate := stem + ending
	if _, taken := reserved[candidate]; taken {
		candidate += "я"
		if _, taken := reserved[candidate]; taken {
			candidate += "ни"
		}
	}
	return candidate
}
