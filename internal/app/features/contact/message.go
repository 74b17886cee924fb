package contact

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/issyx/issyxweb/internal/app/system/htmlsanitize"
	"github.com/issyx/issyxweb/internal/app/system/mailer"
)

// Submission is the JSON body posted by the site's demo-request form.
type Submission struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required,contact_email"`
	Company     string `json:"company" validate:"required"`
	DeviceCount string `json:"deviceCount"`
	Interest    string `json:"interest"`
	Message     string `json:"message"`
}

// fieldsByKey maps each JSON key of the form to its field.
func (s *Submission) fieldsByKey() map[string]*string {
	return map[string]*string{
		"firstName":   &s.FirstName,
		"lastName":    &s.LastName,
		"email":       &s.Email,
		"company":     &s.Company,
		"deviceCount": &s.DeviceCount,
		"interest":    &s.Interest,
		"message":     &s.Message,
	}
}

// notificationRow is one label/value line of the summary table. Value is
// already escaped HTML.
type notificationRow struct {
	Label string
	Value string
}

type notificationData struct {
	SiteName    string
	Rows        []notificationRow
	SubmittedAt string
}

// Values in notificationData are escaped before execution, so the
// template is plain text/template and adds no escaping of its own.
var notificationHTML = template.Must(template.New("notification").Parse(notificationHTMLTemplate))

const notificationHTMLTemplate = `
<h2>New Demo Request from {{.SiteName}}</h2>
<table style="border-collapse: collapse; width: 100%; max-width: 600px;">
{{- range .Rows}}
  <tr>
    <td style="padding: 8px 12px; border: 1px solid #ddd; font-weight: bold;">{{.Label}}</td>
    <td style="padding: 8px 12px; border: 1px solid #ddd;">{{.Value}}</td>
  </tr>
{{- end}}
</table>
<br>
<p style="color: #666; font-size: 12px;">
  Submitted from {{.SiteName}} contact form at {{.SubmittedAt}}
</p>
`

// isoMillis matches the browser's Date.toISOString output.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// ComposeNotification builds the email sent to the sales inbox for sub.
// Optional fields only produce a row when non-empty. Every user-supplied
// value in the HTML body passes through htmlsanitize.Escape exactly once.
func ComposeNotification(sub *Submission, cfg Config, now time.Time) (mailer.Email, error) {
	esc := htmlsanitize.Escape
	email := esc(sub.Email)

	rows := []notificationRow{
		{Label: "Name", Value: esc(sub.FirstName) + " " + esc(sub.LastName)},
		{Label: "Email", Value: `<a href="mailto:` + email + `">` + email + `</a>`},
		{Label: "Company", Value: esc(sub.Company)},
	}
	for _, opt := range sub.optionalFields() {
		rows = append(rows, notificationRow{Label: opt.Label, Value: esc(opt.Value)})
	}

	submittedAt := now.UTC().Format(isoMillis)

	var buf bytes.Buffer
	err := notificationHTML.Execute(&buf, notificationData{
		SiteName:    esc(cfg.SiteName),
		Rows:        rows,
		SubmittedAt: submittedAt,
	})
	if err != nil {
		return mailer.Email{}, fmt.Errorf("render notification: %w", err)
	}

	return mailer.Email{
		From:    cfg.From,
		To:      []string{cfg.Recipient},
		ReplyTo: sub.Email,
		Subject: fmt.Sprintf("New Demo Request: %s %s — %s", sub.FirstName, sub.LastName, sub.Company),
		HTML:    buf.String(),
		Text:    notificationText(sub, cfg.SiteName, submittedAt),
	}, nil
}

// optionalFields returns the optional labelled fields that were filled in,
// in display order.
func (s *Submission) optionalFields() []notificationRow {
	var out []notificationRow
	if s.DeviceCount != "" {
		out = append(out, notificationRow{Label: "Device Count", Value: s.DeviceCount})
	}
	if s.Interest != "" {
		out = append(out, notificationRow{Label: "Interest", Value: s.Interest})
	}
	if s.Message != "" {
		out = append(out, notificationRow{Label: "Message", Value: s.Message})
	}
	return out
}

func notificationText(sub *Submission, siteName, submittedAt string) string {
	plain := func(s string) string {
		if htmlsanitize.IsPlainText(s) {
			return s
		}
		return htmlsanitize.StripTags(s)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "New Demo Request from %s\n\n", siteName)
	fmt.Fprintf(&b, "Name: %s %s\n", plain(sub.FirstName), plain(sub.LastName))
	fmt.Fprintf(&b, "Email: %s\n", plain(sub.Email))
	fmt.Fprintf(&b, "Company: %s\n", plain(sub.Company))
	for _, opt := range sub.optionalFields() {
		fmt.Fprintf(&b, "%s: %s\n", opt.Label, plain(opt.Value))
	}
	fmt.Fprintf(&b, "\nSubmitted from %s contact form at %s\n", siteName, submittedAt)
	return b.String()
}
