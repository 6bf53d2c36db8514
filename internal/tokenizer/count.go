package tokenizer

import (
	"errors"
	"os"
	"unicode/utf8"

	"github.com/olivercalder/simple-tree/internal/utils"
)

// DataTokens estimates the token count of in-memory data. The boolean result
// reports whether the data was countable text: binary and non-UTF-8 content
// is skipped without error.
func DataTokens(counter Counter, data []byte) (int, bool, error) {
	if counter == nil {
		return 0, false, errors.New("no tokenizer configured")
	}
	if utils.IsBinary(data) || !utf8.Valid(data) {
		return 0, false, nil
	}
	tokenCount, countError := counter.CountString(string(data))
	if countError != nil {
		return 0, false, countError
	}
	return tokenCount, true, nil
}

// FileTokens reads the file at path and estimates its token count with the
// same text checks applied by DataTokens.
func FileTokens(counter Counter, path string) (int, bool, error) {
	if counter == nil {
		return 0, false, errors.New("no tokenizer configured")
	}
	fileContent, readError := os.ReadFile(path)
	if readError != nil {
		return 0, false, readError
	}
	return DataTokens(counter, fileContent)
}
