package summary

import (
	"context"
	stdErrors "errors"
	"net/http"
	"testing"

	"gorm.io/gorm"

	"github.com/meeting-summarizer-team/meeting-summarizer/errors"
	"github.com/meeting-summarizer-team/meeting-summarizer/internal/domain/entities"
	"github.com/meeting-summarizer-team/meeting-summarizer/internal/domain/repositories"
)

type fakeMeetingRepo struct {
	meetings map[int64]*entities.Meeting
	nextID   int64
	failNext error
}

func newFakeMeetingRepo() *fakeMeetingRepo {
	return &fakeMeetingRepo{meetings: map[int64]*entities.Meeting{}, nextID: 1}
}

func (f *fakeMeetingRepo) Create(_ context.Context, m *entities.Meeting) error {
	if f.failNext != nil {
		return f.failNext
	}
	m.ID = f.nextID
	f.nextID++
	copied := *m
	f.meetings[m.ID] = &copied
	return nil
}

func (f *fakeMeetingRepo) FindByID(_ context.Context, id int64) (*entities.Meeting, error) {
	m, ok := f.meetings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (f *fakeMeetingRepo) ListSummaries(_ context.Context) ([]repositories.MeetingListEntry, error) {
	var entries []repositories.MeetingListEntry
	for _, m := range f.meetings {
		entries = append(entries, repositories.MeetingListEntry{ID: m.ID, Prompt: m.Prompt, CreatedAt: m.CreatedAt})
	}
	return entries, nil
}

func (f *fakeMeetingRepo) UpdateSummary(_ context.Context, id int64, summary string) (int64, error) {
	m, ok := f.meetings[id]
	if !ok {
		return 0, nil
	}
	m.Summary = summary
	return 1, nil
}

type fakeShareRepo struct {
	records [][2]interface{} // meetingID, email
}

func (f *fakeShareRepo) RecordShare(_ context.Context, meetingID int64, email string) error {
	f.records = append(f.records, [2]interface{}{meetingID, email})
	return nil
}

type fakeGenerator struct {
	configured bool
	summary    string
	err        error
}

func (f *fakeGenerator) Configured() bool { return f.configured }

func (f *fakeGenerator) GenerateSummary(_ context.Context, _, _ string) (string, error) {
	return f.summary, f.err
}

type fakeMailer struct {
	configured bool
	failFor    map[string]error
	sent       []string
}

func (f *fakeMailer) Configured() bool { return f.configured }

func (f *fakeMailer) SendSummary(_ context.Context, recipient, _, _ string) error {
	if err, ok := f.failFor[recipient]; ok {
		return err
	}
	f.sent = append(f.sent, recipient)
	return nil
}

func demoError(t *testing.T, err error) errors.AppError {
	t.Helper()
	var appErr errors.AppError
	if !stdErrors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	return appErr
}

func TestGenerateValidation(t *testing.T) {
	meetings := newFakeMeetingRepo()
	svc := NewService(meetings, &fakeShareRepo{}, &fakeGenerator{configured: true}, &fakeMailer{}, nil)

	for _, tc := range []struct{ transcript, prompt string }{
		{"", "p"},
		{"t", ""},
		{"   ", "p"},
		{"t", "\t\n"},
	} {
		if _, err := svc.Generate(context.Background(), tc.transcript, tc.prompt); err == nil {
			t.Fatalf("expected validation error for %+v", tc)
		}
	}
	if len(meetings.meetings) != 0 {
		t.Fatal("validation failure must not create rows")
	}
}

func TestGenerateUnconfiguredDemo(t *testing.T) {
	meetings := newFakeMeetingRepo()
	svc := NewService(meetings, &fakeShareRepo{}, &fakeGenerator{configured: false}, &fakeMailer{}, nil)

	_, err := svc.Generate(context.Background(), "t", "p")
	appErr := demoError(t, err)
	if appErr.HTTPCode != http.StatusServiceUnavailable || !appErr.Demo {
		t.Fatalf("expected 503 demo error, got %+v", appErr)
	}
	if len(meetings.meetings) != 0 {
		t.Fatal("demo failure must not create rows")
	}
}

func TestGenerateSuccessPersistsVerbatim(t *testing.T) {
	meetings := newFakeMeetingRepo()
	gen := &fakeGenerator{configured: true, summary: "the summary"}
	svc := NewService(meetings, &fakeShareRepo{}, gen, &fakeMailer{}, nil)

	meeting, err := svc.Generate(context.Background(), "raw transcript", "raw prompt")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if meeting.ID == 0 {
		t.Fatal("expected assigned identifier")
	}
	stored := meetings.meetings[meeting.ID]
	if stored.Transcript != "raw transcript" || stored.Prompt != "raw prompt" || stored.Summary != "the summary" {
		t.Fatalf("row not stored verbatim: %+v", stored)
	}
	if len(meetings.meetings) != 1 {
		t.Fatalf("expected exactly one row, got %d", len(meetings.meetings))
	}
}

func TestGenerateProviderFailureCreatesNoRow(t *testing.T) {
	meetings := newFakeMeetingRepo()
	gen := &fakeGenerator{configured: true, err: stdErrors.New("boom")}
	svc := NewService(meetings, &fakeShareRepo{}, gen, &fakeMailer{}, nil)

	if _, err := svc.Generate(context.Background(), "t", "p"); err == nil {
		t.Fatal("expected provider error")
	}
	if len(meetings.meetings) != 0 {
		t.Fatal("failed call must not create rows")
	}
}

func TestUpdateSummary(t *testing.T) {
	meetings := newFakeMeetingRepo()
	meetings.Create(context.Background(), &entities.Meeting{Transcript: "t", Prompt: "p", Summary: "old"})
	svc := NewService(meetings, &fakeShareRepo{}, &fakeGenerator{}, &fakeMailer{}, nil)

	if err := svc.UpdateSummary(context.Background(), 1, "new"); err != nil {
		t.Fatalf("update: %v", err)
	}
	if meetings.meetings[1].Summary != "new" {
		t.Fatal("summary not updated")
	}

	err := svc.UpdateSummary(context.Background(), 42, "new")
	appErr := demoError(t, err)
	if appErr.HTTPCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown id, got %+v", appErr)
	}
}

func TestShareSendsAndRecordsPerRecipient(t *testing.T) {
	meetings := newFakeMeetingRepo()
	meetings.Create(context.Background(), &entities.Meeting{Transcript: "t", Prompt: "p", Summary: "s"})
	shares := &fakeShareRepo{}
	mail := &fakeMailer{configured: true}
	svc := NewService(meetings, shares, &fakeGenerator{}, mail, nil)

	outcomes, err := svc.Share(context.Background(), 1, "a@x.com, b@x.com", "text")
	if err != nil {
		t.Fatalf("share: %v", err)
	}
	if len(outcomes) != 2 || !outcomes[0].Sent || !outcomes[1].Sent {
		t.Fatalf("unexpected outcomes %+v", outcomes)
	}
	if len(shares.records) != 2 {
		t.Fatalf("expected 2 share records, got %d", len(shares.records))
	}
	if shares.records[0][1] != "a@x.com" || shares.records[1][1] != "b@x.com" {
		t.Fatalf("unexpected recipients %+v", shares.records)
	}
}

func TestShareIsolatesFailures(t *testing.T) {
	meetings := newFakeMeetingRepo()
	meetings.Create(context.Background(), &entities.Meeting{Transcript: "t", Prompt: "p", Summary: "s"})
	shares := &fakeShareRepo{}
	mail := &fakeMailer{configured: true, failFor: map[string]error{"bad@x.com": stdErrors.New("smtp 550")}}
	svc := NewService(meetings, shares, &fakeGenerator{}, mail, nil)

	outcomes, err := svc.Share(context.Background(), 1, "a@x.com,bad@x.com , c@x.com", "text")
	if err != nil {
		t.Fatalf("share: %v", err)
	}
	if len(outcomes) != 3 {
		t.Fatalf("expected 3 outcomes, got %d", len(outcomes))
	}
	if !outcomes[0].Sent || outcomes[1].Sent || !outcomes[2].Sent {
		t.Fatalf("unexpected sent flags %+v", outcomes)
	}
	if outcomes[1].Err == nil {
		t.Fatal("failed recipient must carry its error")
	}
	// the failed recipient records no share row, later recipients still do
	if len(shares.records) != 2 {
		t.Fatalf("expected 2 share records, got %d", len(shares.records))
	}
}

func TestShareUnconfiguredDemo(t *testing.T) {
	meetings := newFakeMeetingRepo()
	meetings.Create(context.Background(), &entities.Meeting{Transcript: "t", Prompt: "p", Summary: "s"})
	shares := &fakeShareRepo{}
	svc := NewService(meetings, shares, &fakeGenerator{}, &fakeMailer{configured: false}, nil)

	_, err := svc.Share(context.Background(), 1, "a@x.com", "text")
	appErr := demoError(t, err)
	if appErr.HTTPCode != http.StatusServiceUnavailable || !appErr.Demo {
		t.Fatalf("expected 503 demo error, got %+v", appErr)
	}
	if len(shares.records) != 0 {
		t.Fatal("demo failure must not record shares")
	}
}

func TestShareMeetingNotFound(t *testing.T) {
	svc := NewService(newFakeMeetingRepo(), &fakeShareRepo{}, &fakeGenerator{}, &fakeMailer{configured: true}, nil)

	_, err := svc.Share(context.Background(), 9, "a@x.com", "text")
	appErr := demoError(t, err)
	if appErr.HTTPCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %+v", appErr)
	}
}
