package models

// ChatMessage is one turn of the widget conversation as the frontend sends it.
// Sender is "user" or "bot"; anything else is ignored by the formatter.
type ChatMessage struct {
	Sender  string `json:"sender"`
	Content string `json:"content"`
}

type AnalysisRequest struct {
	ChatHistory []ChatMessage `json:"chatHistory"`
	UserName    string        `json:"userName"`
	Profile     string        `json:"profile"`
}

// EmailRequest is the /submit-email body: the analysis payload plus the
// address the finished PDF should be mailed to.
type EmailRequest struct {
	AnalysisRequest
	Email string `json:"email"`
}

type AnalyzeResponse struct {
	AnalysisText string `json:"analysis_text"`
	Status       string `json:"status"`
	PDFReady     bool   `json:"pdf_ready"`
}
