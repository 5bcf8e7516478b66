package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sprout/internal/contract"
)

// FormatSyncResult summarizes a guest-to-account sync.
func FormatSyncResult(r *contract.SyncResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Synced %s to your account.", StyleGreen.Render("✔"), Plural(r.Synced, "plant"))
	if r.Failed > 0 {
		fmt.Fprintf(&b, "\n%s %s could not be synced and stayed in this device's guest list:",
			StyleRed.Render("✖"), Plural(r.Failed, "plant"))
		for _, err := range r.Errors {
			fmt.Fprintf(&b, "\n  %s", Dim(err.Error()))
		}
	}
	return b.String()
}

// FormatImportResult summarizes a JSON import and lists incomplete entries.
func FormatImportResult(r *contract.ImportResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Imported %s.", StyleGreen.Render("✔"), Plural(r.Imported, "plant"))
	if len(r.Warnings) > 0 {
		fmt.Fprintf(&b, "\n%s", StyleYellow.Render("Some entries look incomplete:"))
		for _, w := range r.Warnings {
			fmt.Fprintf(&b, "\n  %s", Dim(w.Error()))
		}
	}
	return b.String()
}
