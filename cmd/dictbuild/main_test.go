package main

import (
	"testing"

	"github.com/jangaloga/jangaloga-bot/internal/dictionary"
)

func TestBuildSeedPairsWin(t *testing.T) {
	seed := &seedFile{
		RuToJG:   map[string]string{"привет": "монони", "друг": "губожя"},
		Fallback: dictionary.DropUnknown,
	}
	// "привет" есть и в частотном списке: seed-перевод обязан уцелеть
	out := build(seed, "seed.json", "привет\nдруг\nсобака\n", 100)

	if got := out.RuToJG["привет"]; got != "монони" {
		t.Errorf(`RuToJG["привет"] = %q, want seed value "монони"`, got)
	}
	if got := out.RuToJG["друг"]; got != "губожя" {
		t.Errorf(`RuToJG["друг"] = %q, want seed value "губожя"`, got)
	}

	gen, ok := out.RuToJG["собака"]
	if !ok || gen == "" {
		t.Fatalf(`RuToJG["собака"] = %q, %v; want generated entry`, gen, ok)
	}

	// сгенерированные формы не пересекаются ни друг с другом, ни с seed
	used := map[string]string{}
	for ru, jg := range out.RuToJG {
		if prev, dup := used[jg]; dup {
			t.Errorf("jg form %q shared by %q and %q", jg, prev, ru)
		}
		used[jg] = ru
	}
}

func TestBuildFallbackCoercion(t *testing.T) {
	cases := []struct {
		in   dictionary.FallbackPolicy
		want dictionary.FallbackPolicy
	}{
		{"", dictionary.DropUnknown},
		{dictionary.KeepOriginal, dictionary.DropUnknown},
		{dictionary.MarkUnknown, dictionary.MarkUnknown},
		{dictionary.DropUnknown, dictionary.DropUnknown},
	}
	for _, c := range cases {
		out := build(&seedFile{Fallback: c.in}, "seed.json", "", 20)
		if out.Fallback != c.want {
			t.Errorf("fallback %q: got %q, want %q", c.in, out.Fallback, c.want)
		}
	}
}

func TestBuildStemDedupe(t *testing.T) {
	seed := &seedFile{RuToJG: map[string]string{"кот": "мока"}}
	out := build(seed, "seed.json", "коты\nкотов\nсобака\nсобаки\n", 100)

	// падежные формы seed-слова и друг друга схлопываются по стему
	for _, form := range []string{"коты", "котов", "собаки"} {
		if _, ok := out.RuToJG[form]; ok {
			t.Errorf("inflected form %q must be deduped by stem", form)
		}
	}
	if _, ok := out.RuToJG["собака"]; !ok {
		t.Error(`lemma "собака" missing`)
	}
	if got := out.RuToJG["кот"]; got != "мока" {
		t.Errorf(`RuToJG["кот"] = %q, want "мока"`, got)
	}
}

func TestBuildTargetSizeCap(t *testing.T) {
	out := build(&seedFile{}, "seed.json", "", 5)
	if len(out.RuToJG) != 5 {
		t.Errorf("size = %d, want 5", len(out.RuToJG))
	}
	if out.Meta.ActualSize != 5 || out.Meta.TargetSize != 5 {
		t.Errorf("meta sizes = %d/%d, want 5/5", out.Meta.ActualSize, out.Meta.TargetSize)
	}
}

func TestBuildLemmatizeFlag(t *testing.T) {
	if out := build(&seedFile{}, "seed.json", "", 5); !out.LemmatizeRu {
		t.Error("lemmatize_ru must default to true")
	}
	off := false
	if out := build(&seedFile{LemmatizeRu: &off}, "seed.json", "", 5); out.LemmatizeRu {
		t.Error("explicit lemmatize_ru=false must be kept")
	}
}

func TestBuildDoesNotMutateSeed(t *testing.T) {
	seed := &seedFile{RuToJG: map[string]string{"привет": "монони"}}
	build(seed, "seed.json", "собака\n", 100)
	if len(seed.RuToJG) != 1 {
		t.Errorf("seed map grew to %d entries", len(seed.RuToJG))
	}
}
