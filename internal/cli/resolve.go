package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/sprout/internal/domain"
)

// resolvePlantID resolves a plant reference which can be:
//   - A full id
//   - An id prefix (the "local-" prefix of guest ids may be left off)
//   - A display name, case-insensitive
func resolvePlantID(ctx context.Context, app *App, owner domain.Owner, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("plant reference is required")
	}

	plants, err := app.Plants.List(ctx, owner, true)
	if err != nil {
		return "", err
	}

	for _, p := range plants {
		if p.ID == input {
			return p.ID, nil
		}
	}

	var matches []string
	for _, p := range plants {
		if strings.HasPrefix(p.ID, input) || strings.HasPrefix(strings.TrimPrefix(p.ID, "local-"), input) {
			matches = append(matches, p.ID)
		}
	}
	if len(matches) == 0 {
		for _, p := range plants {
			if strings.EqualFold(p.DisplayName(), input) {
				matches = append(matches, p.ID)
			}
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("plant not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("plant reference %q is ambiguous (%d matches)", input, len(matches))
	}
}
