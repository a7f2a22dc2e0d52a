package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/jangaloga/jangaloga-bot/internal/dictionary"
)

func main() {
	log.SetFlags(0)

	inPath := flag.String("in", "", "Input RU .txt path (utf-8).")
	outPath := flag.String("out", "", "Output JG .txt path (utf-8).")
	dictPath := flag.String("dict", "dictionary.json", "Dictionary JSON path.")
	flag.Parse()

	if *inPath == "" || *outPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if _, err := os.Stat(*dictPath); err != nil {
		log.Fatalf("Dictionary not found: %s\nBuild it first:\n  go run ./cmd/dictbuild --n 2500 --out %s", *dictPath, *dictPath)
	}

	dict, err := dictionary.Load(*dictPath)
	if err != nil {
		log.Fatalf("load dictionary: %v", err)
	}

	ruText, err := os.ReadFile(*inPath)
	if err != nil {
		log.Fatalf("Input not found: %s", *inPath)
	}

	jgText := dict.Translate(string(ruText))
	if !dictionary.HasTranslatableWord(jgText) {
		log.Fatal("Не получилось перевести в Джангалогу: в тексте не нашлось слов из словаря.\nПопробуйте переформулировать или расширить словарь.")
	}

	if dir := filepath.Dir(*outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("mkdir: %v", err)
		}
	}
	if err := os.WriteFile(*outPath, []byte(jgText), 0o644); err != nil {
		log.Fatalf("write: %v", err)
	}

	fmt.Printf("Wrote: %s\n", *outPath)
}
