package domain

// Case represents a legal matter tracked by the client.
//
// Records are replaced whole on update; there is no partial-field update.
// Insertion order within a collection is preserved for stable display.
type Case struct {
	CaseID        string `json:"id"`
	Title         string `json:"title"`
	CaseNumber    string `json:"case_number"`
	CaseType      string `json:"case_type"`
	Status        string `json:"status"` // free-form label, e.g. "Under Trial"
	Court         string `json:"court"`
	Judge         string `json:"judge"`
	FilingDate    string `json:"filing_date"`
	NextHearing   string `json:"next_hearing"` // date/time of the next scheduled hearing
	CourtRoom     string `json:"court_room"`
	Description   string `json:"description"`
	Petitioner    string `json:"petitioner"`
	Respondent    string `json:"respondent"`
	Advocate      string `json:"advocate"`
	DocumentCount int    `json:"document_count"`
	HearingCount  int    `json:"hearing_count"`
	TaskCount     int    `json:"task_count"`
	AddedByLawyer bool   `json:"added_by_lawyer"`
}

type CreateCaseRequest struct {
	Title       string `json:"title" validate:"required"`
	CaseNumber  string `json:"case_number" validate:"required"`
	CaseType    string `json:"case_type"`
	Status      string `json:"status"`
	Court       string `json:"court"`
	Judge       string `json:"judge"`
	FilingDate  string `json:"filing_date"`
	NextHearing string `json:"next_hearing"`
	CourtRoom   string `json:"court_room"`
	Description string `json:"description"`
	Petitioner  string `json:"petitioner"`
	Respondent  string `json:"respondent"`
	Advocate    string `json:"advocate"`
	// AddedByLawyer marks records the advocate entered on the client's behalf.
	AddedByLawyer bool `json:"added_by_lawyer"`
}
