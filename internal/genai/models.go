package genai

// Classification is the structured result of the complaint-classification call
type Classification struct {
	ScamType      string   `json:"scam_type"`
	Confidence    float64  `json:"confidence"`
	Reasoning     string   `json:"reasoning"`
	Urgency       string   `json:"urgency"`
	KeyIndicators []string `json:"key_indicators"`
}

// DraftRequest carries the case fields the drafting call needs
type DraftRequest struct {
	ScamType      string
	Complaint     string
	Amount        float64
	UTR           string
	BankName      string
	SuspectPhone  string
	SuspectURL    string
	IncidentDate  string
	EvidenceScore int
}

// Draft is the structured result of the report-drafting call
type Draft struct {
	ReportTitle        string   `json:"report_title"`
	ReportBody         string   `json:"report_body"`
	KeyEvidence        []string `json:"key_evidence"`
	RecommendedActions []string `json:"recommended_actions"`
	PriorityLevel      string   `json:"priority_level"`
}
