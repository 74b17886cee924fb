package contact_test

import (
	"strings"
	"testing"
	"time"

	"github.com/issyx/issyxweb/internal/app/features/contact"
)

func testConfig() contact.Config {
	return contact.Config{
		APIKey:    "re_test",
		Recipient: "sales@issyx.com",
		From:      contact.DefaultFrom,
		SiteName:  "issyx.com",
	}
}

var submittedAt = time.Date(2026, 10, 19, 8, 30, 0, 0, time.FixedZone("CEST", 2*60*60))

func TestComposeNotification_RequiredFieldsOnly(t *testing.T) {
	sub := &contact.Submission{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Company:   "Analytical Engines",
	}

	msg, err := contact.ComposeNotification(sub, testConfig(), submittedAt)
	if err != nil {
		t.Fatalf("ComposeNotification: %v", err)
	}

	if msg.Subject != "New Demo Request: Ada Lovelace — Analytical Engines" {
		t.Errorf("Subject: got %q", msg.Subject)
	}
	if msg.ReplyTo != "ada@example.com" {
		t.Errorf("ReplyTo: got %q", msg.ReplyTo)
	}

	for _, want := range []string{
		"<h2>New Demo Request from issyx.com</h2>",
		">Ada Lovelace</td>",
		`<a href="mailto:ada@example.com">ada@example.com</a>`,
		">Analytical Engines</td>",
		"Submitted from issyx.com contact form at 2026-10-19T06:30:00.000Z",
	} {
		if !strings.Contains(msg.HTML, want) {
			t.Errorf("HTML missing %q:\n%s", want, msg.HTML)
		}
	}

	for _, label := range []string{"Device Count", "Interest", "Message"} {
		if strings.Contains(msg.HTML, label) {
			t.Errorf("HTML should not contain empty optional row %q", label)
		}
	}
	if got := strings.Count(msg.HTML, "<tr>"); got != 3 {
		t.Errorf("expected 3 table rows, got %d", got)
	}
}

func TestComposeNotification_OptionalFieldsInOrder(t *testing.T) {
	sub := &contact.Submission{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "ada@example.com",
		Company:     "Analytical Engines",
		DeviceCount: "250",
		Interest:    "Fleet monitoring",
		Message:     "Call me",
	}

	msg, err := contact.ComposeNotification(sub, testConfig(), submittedAt)
	if err != nil {
		t.Fatalf("ComposeNotification: %v", err)
	}

	if got := strings.Count(msg.HTML, "<tr>"); got != 6 {
		t.Errorf("expected 6 table rows, got %d", got)
	}
	d := strings.Index(msg.HTML, "Device Count")
	i := strings.Index(msg.HTML, "Interest")
	m := strings.Index(msg.HTML, "Message")
	if !(d > 0 && d < i && i < m) {
		t.Errorf("optional rows out of order: device=%d interest=%d message=%d", d, i, m)
	}
	for _, want := range []string{">250</td>", ">Fleet monitoring</td>", ">Call me</td>"} {
		if !strings.Contains(msg.HTML, want) {
			t.Errorf("HTML missing %q", want)
		}
	}
}

func TestComposeNotification_EscapesEveryField(t *testing.T) {
	evil := `<script>&"'</script>`
	escaped := "&lt;script&gt;&amp;&quot;&#039;&lt;/script&gt;"

	sub := &contact.Submission{
		FirstName:   evil,
		LastName:    evil,
		Email:       "o'brien@example.com",
		Company:     evil,
		DeviceCount: evil,
		Interest:    evil,
		Message:     evil,
	}

	msg, err := contact.ComposeNotification(sub, testConfig(), submittedAt)
	if err != nil {
		t.Fatalf("ComposeNotification: %v", err)
	}

	if strings.Contains(msg.HTML, "<script>") {
		t.Fatalf("raw script tag leaked into HTML:\n%s", msg.HTML)
	}
	// name row holds two copies, plus company and three optional rows
	if got := strings.Count(msg.HTML, escaped); got != 6 {
		t.Errorf("expected 6 escaped occurrences, got %d", got)
	}
	if !strings.Contains(msg.HTML, "mailto:o&#039;brien@example.com") {
		t.Error("email must be escaped inside the mailto link")
	}
	if strings.Contains(msg.HTML, "&amp;lt;") || strings.Contains(msg.HTML, "&amp;amp;") {
		t.Error("escaped text must not be escaped a second time")
	}

	// The subject is not HTML and carries the raw values.
	if !strings.Contains(msg.Subject, evil) {
		t.Errorf("Subject should carry raw values, got %q", msg.Subject)
	}
}

func TestComposeNotification_TextBody(t *testing.T) {
	sub := &contact.Submission{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Company:   "Tom & Jerry",
		Message:   "<b>Hello</b><script>alert(1)</script> there",
	}

	msg, err := contact.ComposeNotification(sub, testConfig(), submittedAt)
	if err != nil {
		t.Fatalf("ComposeNotification: %v", err)
	}

	for _, want := range []string{
		"New Demo Request from issyx.com\n",
		"Name: Ada Lovelace\n",
		"Email: ada@example.com\n",
		"Company: Tom & Jerry\n",
		"Message: Hello there\n",
		"Submitted from issyx.com contact form at 2026-10-19T06:30:00.000Z\n",
	} {
		if !strings.Contains(msg.Text, want) {
			t.Errorf("Text missing %q:\n%s", want, msg.Text)
		}
	}
	if strings.Contains(msg.Text, "Interest:") {
		t.Error("Text should not list empty optional fields")
	}
}

func TestComposeNotification_RecipientAndSender(t *testing.T) {
	cfg := testConfig()
	cfg.Recipient = "leads@example.org"
	cfg.From = "Web <web@example.org>"

	msg, err := contact.ComposeNotification(&contact.Submission{
		FirstName: "A", LastName: "B", Email: "a@b.co", Company: "C",
	}, cfg, submittedAt)
	if err != nil {
		t.Fatalf("ComposeNotification: %v", err)
	}
	if len(msg.To) != 1 || msg.To[0] != "leads@example.org" {
		t.Errorf("To: got %v", msg.To)
	}
	if msg.From != "Web <web@example.org>" {
		t.Errorf("From: got %q", msg.From)
	}
	if err := msg.Validate(); err != nil {
		t.Errorf("composed message should validate: %v", err)
	}
}
