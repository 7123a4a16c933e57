package tokens

import (
	"os"
	"strconv"
	"strings"
)

const approxBytesPerToken = 4

// ApproxCount is a rough token estimate: ceil(len_bytes/4). It deliberately
// avoids a tokenizer dependency; the budget check only needs an order of
// magnitude and the streaming side counts deltas, not tokens.
func ApproxCount(text string) int64 {
	if text == "" {
		return 0
	}
	n := int64(len(text))
	return (n + approxBytesPerToken - 1) / approxBytesPerToken
}

const (
	contextWindow128K int64 = 128_000
	contextWindow200K int64 = 200_000
)

// ContextWindowForModel returns the model's context window in tokens.
// The env var CHLOG_MODEL_CONTEXT_WINDOW overrides the table when set.
func ContextWindowForModel(model string) (int64, bool) {
	if v := strings.TrimSpace(os.Getenv("CHLOG_MODEL_CONTEXT_WINDOW")); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n, true
		}
	}

	slug := strings.TrimSpace(model)
	if slug == "" {
		return 0, false
	}

	switch slug {
	case "o3", "o4-mini":
		return contextWindow200K, true
	case "gpt-4.1", "gpt-4.1-mini", "gpt-4.1-nano":
		return 1_047_576, true
	case "gpt-4o", "gpt-4o-mini":
		return contextWindow128K, true
	case "gpt-4-turbo":
		return contextWindow128K, true
	case "gpt-3.5-turbo":
		return 16_385, true
	}

	switch {
	case strings.HasPrefix(slug, "gpt-5"):
		return 272_000, true
	case strings.HasPrefix(slug, "gpt-4o"):
		return contextWindow128K, true
	}

	return 0, false
}

// DefaultContextWindow is used for models missing from the table so an
// unknown slug still gets a budget check instead of a free pass.
const DefaultContextWindow int64 = contextWindow128K
