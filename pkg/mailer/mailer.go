package mailer

import (
	"bytes"
	"context"
	"html/template"

	gomail "gopkg.in/gomail.v2"

	"github.com/meeting-summarizer-team/meeting-summarizer/pkg/config"
)

const subject = "Meeting Summary Shared"

var bodyTmpl = template.Must(template.New("summary").Parse(`
<h2>Meeting Summary</h2>
<p><strong>Original Prompt:</strong> {{.Prompt}}</p>
<hr>
<div style="white-space: pre-wrap;">{{.Summary}}</div>
<hr>
<p><em>This summary was generated using AI technology.</em></p>
`))

// Mailer sends summary emails over SMTP. A Mailer built from empty
// credentials reports Configured() == false and must not be used to send.
type Mailer struct {
	from string
	send func(m *gomail.Message) error
}

// New creates a Mailer from the provided config.
func New(cfg *config.EmailConfig) *Mailer {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.User, cfg.Pass)
	m := &Mailer{from: cfg.User}
	if cfg.User != "" && cfg.Pass != "" {
		m.send = func(msg *gomail.Message) error {
			return dialer.DialAndSend(msg)
		}
	}
	return m
}

// Configured reports whether SMTP credentials were supplied at startup.
func (m *Mailer) Configured() bool {
	return m != nil && m.send != nil
}

// SendSummary delivers one summary email to a single recipient. The stored
// prompt and the caller-supplied summary are embedded in the HTML body.
func (m *Mailer) SendSummary(_ context.Context, recipient, prompt, summary string) error {
	body, err := renderBody(prompt, summary)
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	return m.send(msg)
}

func renderBody(prompt, summary string) (string, error) {
	var buf bytes.Buffer
	err := bodyTmpl.Execute(&buf, struct {
		Prompt  string
		Summary string
	}{Prompt: prompt, Summary: summary})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
