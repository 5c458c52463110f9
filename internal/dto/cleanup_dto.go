package dto

type CleanupRequest struct {
	SecretKey string `json:"secret_key" validate:"required"`
	// DryRun defaults to true when absent: the destructive path must be
	// asked for explicitly.
	DryRun *bool `json:"dry_run"`
}

// CleanupReport summarizes one retention pass over a single table.
type CleanupReport struct {
	DeletedCount int                 `json:"deleted_count"`
	Records      []map[string]string `json:"records"`
}

type CleanupResponse struct {
	Status      string        `json:"status"`
	DryRun      bool          `json:"dry_run"`
	ScanCleanup CleanupReport `json:"scan_data_cleanup"`
	UserCleanup CleanupReport `json:"inactive_users_cleanup"`
	Summary     string        `json:"summary"`
}
