// Package tokenizer annotates tree nodes with estimated token counts backed
// by tiktoken encodings.
package tokenizer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

// defaultModel selects the encoding used when no model is requested.
const defaultModel = "gpt-4o"

// fallbackEncodingName backs models tiktoken carries no mapping for.
const fallbackEncodingName = "cl100k_base"

// Counter estimates the number of tokens in a piece of text.
type Counter interface {
	Name() string
	CountString(input string) (int, error)
}

// tiktokenCounter adapts a tiktoken encoding to the Counter interface.
type tiktokenCounter struct {
	encodingLabel string
	encoding      *tiktoken.Tiktoken
}

func (counter tiktokenCounter) Name() string {
	return counter.encodingLabel
}

func (counter tiktokenCounter) CountString(input string) (int, error) {
	if counter.encoding == nil {
		return 0, errors.New("tokenizer encoding not initialized")
	}
	return len(counter.encoding.Encode(input, nil, nil)), nil
}

// ForModel returns a Counter for the requested model name. A blank model
// selects the default model, and models without a known encoding fall back to
// cl100k_base; Counter.Name reports which encoding was chosen.
func ForModel(model string) (Counter, error) {
	requestedModel := strings.ToLower(strings.TrimSpace(model))
	if requestedModel == "" {
		requestedModel = defaultModel
	}

	if encoding, encodingError := tiktoken.EncodingForModel(requestedModel); encodingError == nil && encoding != nil {
		return tiktokenCounter{encodingLabel: requestedModel, encoding: encoding}, nil
	}

	fallback, fallbackError := tiktoken.GetEncoding(fallbackEncodingName)
	if fallbackError != nil {
		return nil, fmt.Errorf("initializing fallback tokenizer: %w", fallbackError)
	}
	return tiktokenCounter{encodingLabel: fallbackEncodingName, encoding: fallback}, nil
}
