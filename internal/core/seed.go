package core

import "github.com/MightyBhargava/LegalChain-sub001/internal/domain"

// SeedNotifications is the sample notification set a fresh session starts
// with. Ids continue the count-derived sequence used by AppendNotification.
func SeedNotifications() []domain.Notification {
	return []domain.Notification{
		{
			NotificationID: "1",
			Type:           domain.NotificationTypeHearing,
			Title:          "Hearing Reminder",
			Description:    "Singh vs. State Bank hearing tomorrow at 10:30 AM, Court Room 4",
			TimeLabel:      "2 hours ago",
		},
		{
			NotificationID: "2",
			Type:           domain.NotificationTypeDocument,
			Title:          "Document Uploaded",
			Description:    "Your advocate added the rejoinder affidavit to Sharma vs. Sharma",
			TimeLabel:      "5 hours ago",
		},
		{
			NotificationID: "3",
			Type:           domain.NotificationTypeAlert,
			Title:          "Case Status Changed",
			Description:    "Mehta Property Dispute moved to Under Trial",
			TimeLabel:      "Yesterday",
			Read:           true,
		},
		{
			NotificationID: "4",
			Type:           domain.NotificationTypeMessage,
			Title:          "New Message",
			Description:    "Adv. Priya Kapoor sent you a message about the evidence list",
			TimeLabel:      "2 days ago",
			Read:           true,
		},
	}
}

// SeedHistory is the sample billing/consultation history. History items are
// immutable; only read access and download requests are supported.
func SeedHistory() []domain.HistoryItem {
	return []domain.HistoryItem{
		{
			HistoryID:   "h1",
			Type:        "consultation",
			Title:       "Initial Consultation — Property Dispute",
			Date:        "2025-06-14",
			Amount:      "₹2,500",
			Status:      domain.HistoryStatusCompleted,
			DownloadKey: "invoices/h1.pdf",
		},
		{
			HistoryID:   "h2",
			Type:        "retainer",
			Title:       "Monthly Retainer — Singh vs. State Bank",
			Date:        "2025-07-01",
			Amount:      "₹15,000",
			Status:      domain.HistoryStatusActive,
			DownloadKey: "invoices/h2.pdf",
		},
		{
			HistoryID:   "h3",
			Type:        "filing",
			Title:       "Court Filing Fees — Writ Petition",
			Date:        "2025-07-22",
			Amount:      "₹1,200",
			Status:      domain.HistoryStatusCompleted,
			DownloadKey: "invoices/h3.pdf",
		},
	}
}
