package mailer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/issyx/issyxweb/internal/app/system/mailer"
)

func TestEmail_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*mailer.Email)
		wantErr bool
		errMsg  string
	}{
		{name: "valid", mutate: func(*mailer.Email) {}},
		{name: "text only", mutate: func(m *mailer.Email) { m.HTML = "" }},
		{name: "html only", mutate: func(m *mailer.Email) { m.Text = "" }},
		{name: "no reply-to", mutate: func(m *mailer.Email) { m.ReplyTo = "" }},
		{name: "empty from", mutate: func(m *mailer.Email) { m.From = " " }, wantErr: true, errMsg: "From is required"},
		{name: "no recipients", mutate: func(m *mailer.Email) { m.To = nil }, wantErr: true, errMsg: "at least one recipient"},
		{name: "blank recipient", mutate: func(m *mailer.Email) { m.To = []string{""} }, wantErr: true, errMsg: "must not be blank"},
		{name: "empty subject", mutate: func(m *mailer.Email) { m.Subject = "" }, wantErr: true, errMsg: "Subject is required"},
		{name: "no body", mutate: func(m *mailer.Email) { m.HTML, m.Text = "", "  " }, wantErr: true, errMsg: "body is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			msg := testEmail()
			tt.mutate(&msg)
			err := msg.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, mailer.ErrInvalidParams)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	err := &mailer.APIError{Provider: "resend", StatusCode: 500, Body: "boom"}
	assert.Equal(t, "resend: status 500: boom", err.Error())
}
