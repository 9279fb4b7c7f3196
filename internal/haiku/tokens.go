package haiku

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

const approxCharsPerToken = 4

var (
	tokenEncoderOnce sync.Once
	tokenEncoder     *tiktoken.Tiktoken
)

// estimateTokens gives a rough size of the rendered prompt for logging and
// metrics. Falls back to a chars/4 heuristic when no encoder is available.
func estimateTokens(text string) int {
	if enc := promptEncoder(); enc != nil {
		if tokens := enc.Encode(text, nil, nil); len(tokens) > 0 {
			return len(tokens)
		}
	}
	n := len(text) / approxCharsPerToken
	if n < 1 {
		n = 1
	}
	return n
}

func promptEncoder() *tiktoken.Tiktoken {
	tokenEncoderOnce.Do(func() {
		enc, err := tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			return
		}
		tokenEncoder = enc
	})
	return tokenEncoder
}
