package cli

import (
	"fmt"

	"github.com/alexanderramin/sprout/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// sproutHuhTheme returns a huh theme using the formatter palette.
func sproutHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorGreen).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func wizardConfirm(title, description string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Sync").
				Negative("Not now").
				Value(result),
		),
	).WithTheme(sproutHuhTheme()).WithShowHelp(false)
}

// promptSync is the interactive ConfirmSync.
func promptSync(pending int) (bool, error) {
	ok := true
	form := wizardConfirm(
		fmt.Sprintf("Sync %s from this device to your account?", formatter.Plural(pending, "guest plant")),
		"Synced plants move to your account. Declined plants stay on this device.",
		&ok,
	)
	if err := form.Run(); err != nil {
		return false, err
	}
	return ok, nil
}
