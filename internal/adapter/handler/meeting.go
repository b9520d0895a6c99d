package handler

import (
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/meeting-summarizer-team/meeting-summarizer/errors"
	"github.com/meeting-summarizer-team/meeting-summarizer/internal/adapter/dto"
	"github.com/meeting-summarizer-team/meeting-summarizer/internal/usecase/summary"
)

// MaxTranscriptBytes is the upload size cap, enforced on both client and server.
const MaxTranscriptBytes int64 = 10 * 1024 * 1024

// Meeting handles the transcript/summary API endpoints
type Meeting struct {
	svc    summary.Service
	logger *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(svc summary.Service, logger *zap.Logger) *Meeting {
	return &Meeting{svc: svc, logger: logger}
}

// UploadTranscript extracts UTF-8 text from an uploaded transcript file
// @Summary      Upload transcript file
// @Description  Accepts a text file and returns its content for the transcript field; the file is not persisted
// @Tags         Meetings
// @Accept       multipart/form-data
// @Produce      json
// @Param        transcript  formData  file  true  "Transcript file (.txt or text/*, max 10 MiB)"
// @Success      200  {object}  dto.UploadTranscriptResponse
// @Failure      400  {object}  map[string]interface{}  "Missing file, wrong type, or too large"
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/upload-transcript [post]
func (h *Meeting) UploadTranscript(c echo.Context) error {
	fileHeader, err := c.FormFile("transcript")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrNoFileUploaded())
	}

	if !isTextFile(fileHeader) {
		return HandleError(h.logger, c, errors.ErrUnsupportedFileType())
	}
	if fileHeader.Size > MaxTranscriptBytes {
		return HandleError(h.logger, c, errors.ErrFileTooLarge(MaxTranscriptBytes))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}
	defer src.Close()

	// Size limit re-applied on the stream in case the header lied.
	data, err := io.ReadAll(io.LimitReader(src, MaxTranscriptBytes+1))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}
	if int64(len(data)) > MaxTranscriptBytes {
		return HandleError(h.logger, c, errors.ErrFileTooLarge(MaxTranscriptBytes))
	}

	// Invalid byte sequences are replaced, matching a lossy UTF-8 decode.
	transcript := strings.ToValidUTF8(string(data), "�")

	return HandleSuccess(h.logger, c, dto.UploadTranscriptResponse{
		Transcript: transcript,
		Filename:   fileHeader.Filename,
		Message:    "Transcript uploaded successfully",
	})
}

// GenerateSummary generates and persists an AI summary
// @Summary      Generate summary
// @Description  Builds a prompt from the transcript and instructions, calls the completion provider, and stores the meeting
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        request  body  dto.GenerateSummaryRequest  true  "Transcript and instructions"
// @Success      200  {object}  dto.GenerateSummaryResponse
// @Failure      400  {object}  map[string]interface{}  "Missing transcript or prompt"
// @Failure      503  {object}  map[string]interface{}  "AI provider unconfigured (demo:true)"
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/generate-summary [post]
func (h *Meeting) GenerateSummary(c echo.Context) error {
	var req dto.GenerateSummaryRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Transcript and prompt are required"))
	}

	meeting, err := h.svc.Generate(c.Request().Context(), req.Transcript, req.Prompt)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, dto.GenerateSummaryResponse{
		Summary:   meeting.Summary,
		MeetingID: meeting.ID,
		Message:   "Summary generated successfully",
	})
}

// GetMeeting returns one full meeting row
// @Summary      Get meeting
// @Tags         Meetings
// @Produce      json
// @Param        id  path  int  true  "Meeting ID"
// @Success      200  {object}  entities.Meeting
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/meeting/{id} [get]
func (h *Meeting) GetMeeting(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrMeetingNotFound(id))
	}

	meeting, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, meeting)
}

// UpdateSummary replaces the stored summary of a meeting
// @Summary      Update summary
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        id       path  int                       true  "Meeting ID"
// @Param        request  body  dto.UpdateSummaryRequest  true  "New summary text"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  map[string]interface{}  "Missing summary"
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/meeting/{id}/summary [put]
func (h *Meeting) UpdateSummary(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrMeetingNotFound(id))
	}

	var req dto.UpdateSummaryRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Summary is required"))
	}

	if err := h.svc.UpdateSummary(c.Request().Context(), id, req.Summary); err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, dto.MessageResponse{Message: "Summary updated successfully"})
}

// ShareSummary emails a summary to a comma-separated recipient list
// @Summary      Share summary via email
// @Description  Sends one email per recipient and records each delivered share; reports a per-recipient result list
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        request  body  dto.ShareSummaryRequest  true  "Meeting, recipients, and summary text"
// @Success      200  {object}  dto.ShareSummaryResponse
// @Failure      400  {object}  map[string]interface{}  "Missing fields"
// @Failure      404  {object}  map[string]interface{}  "Meeting absent"
// @Failure      503  {object}  map[string]interface{}  "Email provider unconfigured (demo:true)"
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/share-summary [post]
func (h *Meeting) ShareSummary(c echo.Context) error {
	var req dto.ShareSummaryRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Meeting ID, recipient emails, and summary are required"))
	}

	outcomes, err := h.svc.Share(c.Request().Context(), req.MeetingID, req.RecipientEmails, req.Summary)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	results := make([]dto.ShareResult, 0, len(outcomes))
	failed := 0
	for _, o := range outcomes {
		r := dto.ShareResult{Email: o.Email, Status: "sent"}
		if !o.Sent {
			r.Status = "failed"
			failed++
			if o.Err != nil {
				r.Error = o.Err.Error()
			}
		}
		results = append(results, r)
	}

	message := "Summary shared successfully"
	if failed > 0 {
		message = "Summary shared with errors"
	}

	return HandleSuccess(h.logger, c, dto.ShareSummaryResponse{Message: message, Results: results})
}

// ListMeetings returns the meeting list projection, newest first
// @Summary      List meetings
// @Description  Ordered by creation time descending; transcript and summary text are excluded
// @Tags         Meetings
// @Produce      json
// @Success      200  {array}   repositories.MeetingListEntry
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/meetings [get]
func (h *Meeting) ListMeetings(c echo.Context) error {
	entries, err := h.svc.List(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, entries)
}

// isTextFile accepts a declared text/* media type or a .txt filename.
func isTextFile(fh *multipart.FileHeader) bool {
	contentType := fh.Header.Get("Content-Type")
	if strings.HasPrefix(strings.ToLower(contentType), "text/") {
		return true
	}
	return strings.HasSuffix(strings.ToLower(fh.Filename), ".txt")
}

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
