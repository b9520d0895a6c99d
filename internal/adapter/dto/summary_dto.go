package dto

// UploadTranscriptResponse is returned after a transcript file is extracted.
// The file itself is never persisted.
type UploadTranscriptResponse struct {
	Transcript string `json:"transcript"`
	Filename   string `json:"filename"`
	Message    string `json:"message"`
}

// GenerateSummaryRequest carries the transcript and the user's instructions
type GenerateSummaryRequest struct {
	Transcript string `json:"transcript" validate:"required"`
	Prompt     string `json:"prompt" validate:"required"`
}

// GenerateSummaryResponse is returned after a successful generation
type GenerateSummaryResponse struct {
	Summary   string `json:"summary"`
	MeetingID int64  `json:"meetingId"`
	Message   string `json:"message"`
}

// UpdateSummaryRequest replaces the stored summary of a meeting
type UpdateSummaryRequest struct {
	Summary string `json:"summary" validate:"required"`
}

// ShareSummaryRequest asks for a summary to be emailed to a recipient list.
// RecipientEmails is comma-separated; Summary is the text to send, supplied
// by the caller rather than re-fetched.
type ShareSummaryRequest struct {
	MeetingID       int64  `json:"meetingId" validate:"required"`
	RecipientEmails string `json:"recipientEmails" validate:"required"`
	Summary         string `json:"summary" validate:"required"`
}

// ShareResult is the outcome for a single recipient
type ShareResult struct {
	Email  string `json:"email"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// ShareSummaryResponse reports the overall message plus one result per
// recipient, so callers can tell which addresses succeeded.
type ShareSummaryResponse struct {
	Message string        `json:"message"`
	Results []ShareResult `json:"results"`
}

// MessageResponse is a bare confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse reports service liveness
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
