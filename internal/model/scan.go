package model

// Timestamp layouts used everywhere a sheet cell holds a time value.
// Both are rendered and parsed in the server's local zone.
const (
	TimestampLayout = "2006-01-02 15:04:05"
	DateLayout      = "2006-01-02"
)

// Scan sheet column names. The bin column is configurable (see
// config.Config.BinColumn) because existing sheets disagree on its name.
const (
	ColTimestamp = "Timestamp"
	ColDate      = "Date"
	ColScanType  = "Scan Type"
	ColBagID     = "Bag ID"
	ColStatus    = "Status"
)

// ScanRecord is one row of the scans sheet. Rows are append-only; a scan is
// never edited, only deleted.
type ScanRecord struct {
	Timestamp string `json:"timestamp"`
	Date      string `json:"date"`
	ScanType  string `json:"scan_type"` // "FWD" | "RTO"
	BinID     string `json:"bin_id"`
	BagID     string `json:"bag_id"`
	Status    string `json:"status"`
}
