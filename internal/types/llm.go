package types

import "context"

// Generator produces text completions from prompts
type Generator interface {
	Complete(ctx context.Context, prompt string, opts map[string]any) (string, error)
	Model() string
}

// Option keys understood by every Generator
const (
	OptMaxTokens   = "max_tokens"
	OptTemperature = "temperature"
	OptSystem      = "system"
)
