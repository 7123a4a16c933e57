package tokens

import "strings"

// Pricing holds USD per 1K tokens, input and output priced separately.
type Pricing struct {
	InputPer1K  float64
	OutputPer1K float64
}

// Zero reports whether no pricing is known.
func (p Pricing) Zero() bool {
	return p.InputPer1K == 0 && p.OutputPer1K == 0
}

// CostUSD computes the dollar cost for the given token counts.
func (p Pricing) CostUSD(inputTokens, outputTokens int64) float64 {
	return float64(inputTokens)*p.InputPer1K/1000 + float64(outputTokens)*p.OutputPer1K/1000
}

// PricingForModel returns per-1K-token pricing for known models.
// Unknown models get zero pricing; the cost line then shows tokens only.
func PricingForModel(model string) Pricing {
	slug := strings.TrimSpace(model)

	switch slug {
	case "gpt-4o":
		return Pricing{InputPer1K: 0.0025, OutputPer1K: 0.01}
	case "gpt-4o-mini":
		return Pricing{InputPer1K: 0.00015, OutputPer1K: 0.0006}
	case "gpt-4.1":
		return Pricing{InputPer1K: 0.002, OutputPer1K: 0.008}
	case "gpt-4.1-mini":
		return Pricing{InputPer1K: 0.0004, OutputPer1K: 0.0016}
	case "gpt-4.1-nano":
		return Pricing{InputPer1K: 0.0001, OutputPer1K: 0.0004}
	case "o3":
		return Pricing{InputPer1K: 0.002, OutputPer1K: 0.008}
	case "o4-mini":
		return Pricing{InputPer1K: 0.0011, OutputPer1K: 0.0044}
	case "gpt-4-turbo":
		return Pricing{InputPer1K: 0.01, OutputPer1K: 0.03}
	case "gpt-3.5-turbo":
		return Pricing{InputPer1K: 0.0005, OutputPer1K: 0.0015}
	}

	switch {
	case strings.HasPrefix(slug, "gpt-5-mini"):
		return Pricing{InputPer1K: 0.00025, OutputPer1K: 0.002}
	case strings.HasPrefix(slug, "gpt-5"):
		return Pricing{InputPer1K: 0.00125, OutputPer1K: 0.01}
	}

	return Pricing{}
}
