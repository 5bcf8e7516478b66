package contract

// SyncPrompt reports whether signing in raised the sync prompt.
type SyncPrompt struct {
	Prompted bool
	Pending  int
}

// SyncResult is the outcome of a confirmed guest-to-account sync. Plants
// counted in Failed are still in guest storage.
type SyncResult struct {
	Synced int
	Failed int
	Errors []error
}

// ImportResult is the outcome of a JSON import. Warnings describe entries
// that were imported but look incomplete.
type ImportResult struct {
	Imported int
	Warnings []error
}
