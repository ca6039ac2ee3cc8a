package cli

import (
	"context"
	"strings"
)

// SetKey prompts for the API key without echo and applies it to subsequent
// requests.
func (a *App) SetKey(ctx context.Context) error {
	key, err := GetSecret("Enter API key: ", a.out)
	if err != nil {
		printlnFn("Could not read key: " + err.Error())
		return err
	}

	trimmed := strings.TrimSpace(string(key))
	a.config.APIKey = trimmed
	a.api.SetAPIKey(trimmed)

	if trimmed == "" {
		printlnFn("API key cleared.")
	} else {
		printlnFn("API key updated.")
	}
	return nil
}
