// Package tokenizer wraps a model tokenizer for counting and truncating text
// by token count.
package tokenizer

import (
	"errors"
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// Encoding is the tokenizer encoding used for all counts. cl100k_base is the
// GPT-4 tokenizer and a close approximation for other modern models, which is
// sufficient for budget checks.
const Encoding = "cl100k_base"

// ErrUnavailable indicates the tokenizer encoding could not be initialized.
// Callers decide whether to treat this as fatal; counts are never silently
// reported as zero.
var ErrUnavailable = errors.New("tokenizer unavailable")

// Counter counts and truncates text by token count.
type Counter struct {
	enc *tiktoken.Tiktoken
}

// New creates a Counter using the cl100k_base encoding.
func New() (*Counter, error) {
	enc, err := tiktoken.GetEncoding(Encoding)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &Counter{enc: enc}, nil
}

// Count returns the number of tokens in text. Empty text counts as zero.
func (c *Counter) Count(text string) (int, error) {
	if text == "" {
		return 0, nil
	}
	if c == nil || c.enc == nil {
		return 0, ErrUnavailable
	}
	// Allow all special tokens so inputs containing sequences like
	// "<|endoftext|>" are counted rather than rejected.
	return len(c.enc.Encode(text, []string{"all"}, nil)), nil
}

// Truncate returns the maximal token-aligned prefix of text not exceeding
// maxTokens, together with its token count. Text already within the limit is
// returned unchanged.
func (c *Counter) Truncate(text string, maxTokens int) (string, int, error) {
	if text == "" || maxTokens <= 0 {
		return "", 0, nil
	}
	if c == nil || c.enc == nil {
		return "", 0, ErrUnavailable
	}

	tokens := c.enc.Encode(text, []string{"all"}, nil)
	if len(tokens) <= maxTokens {
		return text, len(tokens), nil
	}

	return c.enc.Decode(tokens[:maxTokens]), maxTokens, nil
}
