package tokenizer

import (
	"os"
	"path/filepath"
	"testing"
)

// runeCounter counts one token per rune so expectations stay deterministic.
type runeCounter struct{}

func (runeCounter) Name() string { return "rune" }

func (runeCounter) CountString(input string) (int, error) { return len([]rune(input)), nil }

func TestDataTokens(t *testing.T) {
	testCases := []struct {
		name            string
		data            []byte
		expectedTokens  int
		expectedCounted bool
	}{
		{name: "plain_text", data: []byte("hello"), expectedTokens: 5, expectedCounted: true},
		{name: "empty_data", data: nil, expectedTokens: 0, expectedCounted: true},
		{name: "null_bytes", data: []byte{0x00, 0x01, 0x02}, expectedCounted: false},
		{name: "invalid_utf8", data: []byte{0xff, 0xfe}, expectedCounted: false},
		{name: "multibyte_text", data: []byte("héllo"), expectedTokens: 5, expectedCounted: true},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			tokenCount, counted, countError := DataTokens(runeCounter{}, testCase.data)
			if countError != nil {
				t.Fatalf("DataTokens error: %v", countError)
			}
			if counted != testCase.expectedCounted {
				t.Fatalf("expected counted %t, got %t", testCase.expectedCounted, counted)
			}
			if counted && tokenCount != testCase.expectedTokens {
				t.Fatalf("expected %d tokens, got %d", testCase.expectedTokens, tokenCount)
			}
		})
	}
}

func TestDataTokensNilCounter(t *testing.T) {
	if _, _, countError := DataTokens(nil, []byte("hello")); countError == nil {
		t.Fatal("expected error for nil counter")
	}
}

func TestFileTokens(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "sample.txt")
	if writeError := os.WriteFile(filePath, []byte("token content"), 0600); writeError != nil {
		t.Fatalf("write file: %v", writeError)
	}
	tokenCount, counted, countError := FileTokens(runeCounter{}, filePath)
	if countError != nil {
		t.Fatalf("FileTokens error: %v", countError)
	}
	if !counted {
		t.Fatal("expected counted result")
	}
	if expected := len([]rune("token content")); tokenCount != expected {
		t.Fatalf("expected %d tokens, got %d", expected, tokenCount)
	}
}

func TestFileTokensMissingFile(t *testing.T) {
	if _, _, countError := FileTokens(runeCounter{}, filepath.Join(t.TempDir(), "absent.txt")); countError == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestForModelKnownModel(t *testing.T) {
	counter, counterError := ForModel("gpt-4o")
	if counterError != nil {
		t.Fatalf("ForModel error: %v", counterError)
	}
	if counter.Name() != "gpt-4o" {
		t.Fatalf("expected counter named gpt-4o, got %q", counter.Name())
	}
	tokenCount, countError := counter.CountString("hello world")
	if countError != nil {
		t.Fatalf("CountString error: %v", countError)
	}
	if tokenCount <= 0 {
		t.Fatalf("expected positive token count, got %d", tokenCount)
	}
}

func TestForModelUnknownModelFallsBack(t *testing.T) {
	counter, counterError := ForModel("mystery-model")
	if counterError != nil {
		t.Fatalf("ForModel error: %v", counterError)
	}
	if counter.Name() != "cl100k_base" {
		t.Fatalf("expected fallback encoding name, got %q", counter.Name())
	}
}

func TestForModelBlankDefaults(t *testing.T) {
	counter, counterError := ForModel("  ")
	if counterError != nil {
		t.Fatalf("ForModel error: %v", counterError)
	}
	if counter.Name() != "gpt-4o" {
		t.Fatalf("expected default model name, got %q", counter.Name())
	}
}
