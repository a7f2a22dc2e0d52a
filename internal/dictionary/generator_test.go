package dictionary

import (
	"strings"
	"testing"
)

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate("слово", nil, KindNoun)
	b := Generate("слово", nil, KindNoun)
	if a == "" {
		t.Fatal("Generate returned empty string")
	}
	if a != b {
		t.Errorf("Generate is not deterministic: %q != %q", a, b)
	}

	// нормализация входа: регистр и ё не влияют
	if c := Generate("СлОвО", nil, KindNoun); c != a {
		t.Errorf("case should not change output: %q != %q", c, a)
	}
}

func TestGenerate_CyrillicOnly(t *testing.T) {
	for _, w := range []string{"кот", "собака", "бежать", "красивый"} {
		got := Generate(w, nil, KindNone)
		if !IsRussianWord(got) {
			t.Errorf("Generate(%q) = %q, want cyrillic-only token", w, got)
		}
	}
}

func TestGenerate_KindEndings(t *testing.T) {
	verb := Generate("думать", nil, KindVerb)
	okVerb := false
	for _, e := range []string{"ить", "нить", "ожить", "ать"} {
		if strings.HasSuffix(verb, e) {
			okVerb = true
		}
	}
	if !okVerb {
		t.Errorf("verb form %q has no verb ending", verb)
	}

	adj := Generate("важный", nil, KindAdj)
	okAdj := false
	for _, e := range []string{"ати", "ий", "ино", "ый"} {
		if strings.HasSuffix(adj, e) {
			okAdj = true
		}
	}
	if !okAdj {
		t.Errorf("adj form %q has no adj ending", adj)
	}
}

func TestGenerate_ReservedCollision(t *testing.T) {
	base := Generate("слово", nil, KindNoun)

	reserved := map[string]struct{}{base: {}}
	got := Generate("слово", reserved, KindNoun)
	if got != base+"я" {
		t.Errorf("collision: got %q, want %q", got, base+"я")
	}

	reserved[base+"я"] = struct{}{}
	got = Generate("слово", reserved, KindNoun)
	if got != base+"яни" {
		t.Errorf("double collision: got %q, want %q", got, base+"яни")
	}
}

func TestGenerate_DistinctWords(t *testing.T) {
	seen := map[string]string{}
	for _, w := range []string{"дом", "лес", "река", "гора", "небо", "огонь"} {
		got := Generate(w, nil, KindNoun)
		if prev, ok := seen[got]; ok {
			t.Errorf("collision between %q and %q: both map to %q", w, prev, got)
		}
		seen[got] = w
	}
}

func TestIsRussianWord(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"слово", true},
		{"Ёжик", true},
		{"word", false},
		{"сло-во", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsRussianWord(tt.in); got != tt.want {
			t.Errorf("IsRussianWord(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
