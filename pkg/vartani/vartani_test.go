package vartani

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewDefaultVocabulary(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if r := c.Classify("बात"); r.Label != LabelCorrect {
		t.Errorf("बात = %q, want %q", r.Label, LabelCorrect)
	}
	if r := c.Classify("xyz123"); r.Label != LabelIncorrect {
		t.Errorf("xyz123 = %q, want %q", r.Label, LabelIncorrect)
	}
}

func TestNewWithVocabulary(t *testing.T) {
	c, err := New(WithVocabulary([]string{"नमस्ते", "धन्यवाद"}))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if r := c.Classify("नमस्ते"); r.Label != LabelCorrect {
		t.Errorf("नमस्ते = %q, want %q", r.Label, LabelCorrect)
	}
	// Default vocabulary member, absent from the custom one.
	if r := c.Classify("बात"); r.Label != LabelIncorrect {
		t.Errorf("बात = %q, want %q", r.Label, LabelIncorrect)
	}
}

func TestNewEmptyVocabulary(t *testing.T) {
	if _, err := New(WithVocabulary([]string{""})); err == nil {
		t.Fatal("New() with no usable words: expected error, got nil")
	}
}

func TestNewWithVocabularyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocabulary.yaml")
	content := "core_words:\n  - परीक्षा\ncode_switched_words:\n  - टेस्ट\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := New(WithVocabularyFile(path))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	for _, w := range []string{"परीक्षा", "टेस्ट"} {
		if r := c.Classify(w); r.Label != LabelCorrect {
			t.Errorf("%s = %q, want %q", w, r.Label, LabelCorrect)
		}
	}
}

func TestNewMissingVocabularyFile(t *testing.T) {
	if _, err := New(WithVocabularyFile("/nonexistent/vocabulary.yaml")); err == nil {
		t.Fatal("New() with missing vocabulary file: expected error, got nil")
	}
}

func TestClassifyEmptyWord(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	r := c.Classify("")
	if r.Label != LabelIncorrect {
		t.Errorf("empty word = %q, want %q", r.Label, LabelIncorrect)
	}
}

func TestClassifyBatchOrder(t *testing.T) {
	c, err := New(WithWorkers(8))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	words := []string{"बात", "कम", "भारत", "qqq", "बात"}
	results := c.ClassifyBatch(words)
	if len(results) != len(words) {
		t.Fatalf("ClassifyBatch() returned %d results, want %d", len(results), len(words))
	}
	for i, r := range results {
		if r.Word != words[i] {
			t.Errorf("results[%d].Word = %q, want %q", i, r.Word, words[i])
		}
	}
	if results[0].Label != LabelCorrect || results[4].Label != LabelCorrect {
		t.Error("बात should be correct at both positions")
	}
	if results[1].Label != LabelIncorrect {
		t.Errorf("कम = %q, want %q", results[1].Label, LabelIncorrect)
	}
}

func TestClassifyTextDeduplicates(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	results := c.ClassifyText("बात बात [noise] सही। सही 42")
	if len(results) != 2 {
		t.Fatalf("ClassifyText() returned %d results, want 2: %v", len(results), results)
	}
	if results[0].Word != "बात" || results[1].Word != "सही" {
		t.Errorf("unexpected word order: %v", results)
	}
}

func TestClassifyTextIsStateless(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	first := c.ClassifyText("बात सही")
	second := c.ClassifyText("बात सही")
	if len(first) != len(second) {
		t.Fatalf("repeat call returned %d results, want %d", len(second), len(first))
	}
}

func TestMaxEditDistanceZero(t *testing.T) {
	c, err := New(WithVocabulary([]string{"काम"}), WithMaxEditDistance(0))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if r := c.Classify("काम"); r.Label != LabelCorrect {
		t.Errorf("काम = %q, want %q", r.Label, LabelCorrect)
	}
	if r := c.Classify("कम"); r.Label != LabelIncorrect {
		t.Errorf("कम = %q, want %q", r.Label, LabelIncorrect)
	}
}

func TestConcurrentClassify(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				if r := c.Classify("बात"); r.Label != LabelCorrect {
					t.Errorf("बात = %q, want %q", r.Label, LabelCorrect)
				}
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
