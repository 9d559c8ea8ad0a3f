// Package generate holds the text-generation backends.
package generate

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrMissingAPIKey is returned by constructors when no credential is configured.
var ErrMissingAPIKey = errors.New("API key not configured")

const defaultSystemPrompt = "És um assistente de marketing e gestão de uma gráfica em Portugal. Respondes sempre em Português de Portugal."

// resolveAPIKey prefers the key from config and falls back to the environment variable.
func resolveAPIKey(apiKeyEnv, directAPIKey string) (string, error) {
	if key := strings.TrimSpace(directAPIKey); key != "" {
		return key, nil
	}
	if apiKeyEnv != "" {
		if key := strings.TrimSpace(os.Getenv(apiKeyEnv)); key != "" {
			return key, nil
		}
	}
	return "", fmt.Errorf("%w: not found in config or environment variable %s", ErrMissingAPIKey, apiKeyEnv)
}

func optInt(opts map[string]any, key string, def int) int {
	if val, ok := opts[key].(int); ok && val > 0 {
		return val
	}
	return def
}

func optFloat(opts map[string]any, key string, def float64) float64 {
	if val, ok := opts[key].(float64); ok {
		return val
	}
	return def
}

func optString(opts map[string]any, key string, def string) string {
	if val, ok := opts[key].(string); ok && val != "" {
		return val
	}
	return def
}
