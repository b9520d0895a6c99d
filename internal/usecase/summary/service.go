package summary

import (
	"context"
	stdErrors "errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/meeting-summarizer-team/meeting-summarizer/errors"
	"github.com/meeting-summarizer-team/meeting-summarizer/internal/domain/entities"
	"github.com/meeting-summarizer-team/meeting-summarizer/internal/domain/repositories"
)

// Generator produces a summary from a transcript and free-form instructions.
// Configured reports whether the provider credential was supplied at startup.
type Generator interface {
	Configured() bool
	GenerateSummary(ctx context.Context, transcript, instructions string) (string, error)
}

// Mailer delivers one summary email per recipient.
type Mailer interface {
	Configured() bool
	SendSummary(ctx context.Context, recipient, prompt, summary string) error
}

// ShareOutcome is the result of one recipient's send-and-record unit.
type ShareOutcome struct {
	Email string
	Sent  bool
	Err   error
}

// Service orchestrates summary generation, persistence and sharing
type Service interface {
	Generate(ctx context.Context, transcript, prompt string) (*entities.Meeting, error)
	Get(ctx context.Context, id int64) (*entities.Meeting, error)
	List(ctx context.Context) ([]repositories.MeetingListEntry, error)
	UpdateSummary(ctx context.Context, id int64, summary string) error
	Share(ctx context.Context, meetingID int64, recipientEmails, summaryText string) ([]ShareOutcome, error)
}

type service struct {
	meetings  repositories.MeetingRepository
	shares    repositories.ShareRepository
	generator Generator
	mailer    Mailer
	logger    *zap.Logger
}

// NewService constructs the summary service
func NewService(
	meetings repositories.MeetingRepository,
	shares repositories.ShareRepository,
	generator Generator,
	mailer Mailer,
	logger *zap.Logger,
) Service {
	return &service{
		meetings:  meetings,
		shares:    shares,
		generator: generator,
		mailer:    mailer,
		logger:    logger,
	}
}

// Generate produces a summary for the transcript under the given instructions
// and persists the resulting meeting. No row is written when validation or
// the provider call fails.
func (s *service) Generate(ctx context.Context, transcript, prompt string) (*entities.Meeting, error) {
	if strings.TrimSpace(transcript) == "" || strings.TrimSpace(prompt) == "" {
		return nil, errors.ErrInvalidArgument("Transcript and prompt are required")
	}

	if !s.generator.Configured() {
		return nil, errors.ErrAIUnconfigured()
	}

	summaryText, err := s.generator.GenerateSummary(ctx, transcript, prompt)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("summary generation failed", zap.Error(err))
		}
		return nil, errors.ErrAISummaryFailed(err)
	}

	meeting := &entities.Meeting{
		Transcript: transcript,
		Prompt:     prompt,
		Summary:    summaryText,
	}
	if err := s.meetings.Create(ctx, meeting); err != nil {
		// The completion cost is already incurred at this point; there is
		// no compensating action.
		if s.logger != nil {
			s.logger.Error("failed to save meeting", zap.Error(err))
		}
		return nil, errors.ErrDBQueryFailed("insert meeting", err)
	}

	if s.logger != nil {
		s.logger.Info("summary generated",
			zap.Int64("meeting_id", meeting.ID),
			zap.Int("summary_length", len(summaryText)),
		)
	}

	return meeting, nil
}

// Get loads one meeting by identifier
func (s *service) Get(ctx context.Context, id int64) (*entities.Meeting, error) {
	meeting, err := s.meetings.FindByID(ctx, id)
	if err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrMeetingNotFound(id)
		}
		return nil, errors.ErrDBQueryFailed("select meeting", err)
	}
	return meeting, nil
}

// List returns the meeting list projection, newest first
func (s *service) List(ctx context.Context) ([]repositories.MeetingListEntry, error) {
	entries, err := s.meetings.ListSummaries(ctx)
	if err != nil {
		return nil, errors.ErrDBQueryFailed("list meetings", err)
	}
	return entries, nil
}

// UpdateSummary replaces the stored summary text of an existing meeting
func (s *service) UpdateSummary(ctx context.Context, id int64, summaryText string) error {
	if strings.TrimSpace(summaryText) == "" {
		return errors.ErrInvalidArgument("Summary is required")
	}

	rows, err := s.meetings.UpdateSummary(ctx, id, summaryText)
	if err != nil {
		return errors.ErrDBQueryFailed("update summary", err)
	}
	if rows == 0 {
		return errors.ErrMeetingNotFound(id)
	}
	return nil
}

// Share emails the caller-supplied summary to each address in the
// comma-separated recipient list. Each recipient is an independent
// send-and-record unit: a failed send is reported in its outcome, records no
// share row, and does not stop later recipients.
func (s *service) Share(ctx context.Context, meetingID int64, recipientEmails, summaryText string) ([]ShareOutcome, error) {
	meeting, err := s.meetings.FindByID(ctx, meetingID)
	if err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrMeetingNotFound(meetingID)
		}
		return nil, errors.ErrDBQueryFailed("select meeting", err)
	}

	if !s.mailer.Configured() {
		return nil, errors.ErrEmailUnconfigured()
	}

	var outcomes []ShareOutcome
	for _, raw := range strings.Split(recipientEmails, ",") {
		email := strings.TrimSpace(raw)
		if email == "" {
			continue
		}

		outcome := ShareOutcome{Email: email}
		if err := s.mailer.SendSummary(ctx, email, meeting.Prompt, summaryText); err != nil {
			outcome.Err = err
			if s.logger != nil {
				s.logger.Error("failed to send summary email",
					zap.String("recipient", email),
					zap.Int64("meeting_id", meetingID),
					zap.Error(err),
				)
			}
			outcomes = append(outcomes, outcome)
			continue
		}

		outcome.Sent = true
		if err := s.shares.RecordShare(ctx, meetingID, email); err != nil {
			// The mail is already out; log the bookkeeping failure but keep
			// the outcome as sent.
			if s.logger != nil {
				s.logger.Warn("failed to record share",
					zap.String("recipient", email),
					zap.Int64("meeting_id", meetingID),
					zap.Error(err),
				)
			}
		}
		outcomes = append(outcomes, outcome)
	}

	if len(outcomes) == 0 {
		return nil, errors.ErrInvalidArgument("Meeting ID, recipient emails, and summary are required")
	}

	return outcomes, nil
}
