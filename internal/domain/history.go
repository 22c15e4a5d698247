package domain

// History item statuses form a small closed set.
const (
	HistoryStatusCompleted = "completed"
	HistoryStatusActive    = "active"
)

// HistoryItem is a billing/consultation record. Items are immutable after
// creation; the only operations are read and a download request.
type HistoryItem struct {
	HistoryID   string `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Amount      string `json:"amount"` // currency-formatted, e.g. "₹2,500"
	Status      string `json:"status"`
	DownloadKey string `json:"download_key"` // object key for the invoice document
}
