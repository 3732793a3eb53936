package contactentity

import (
	"net/mail"
	"strings"

	"github.com/cockroachdb/errors"
)

const SubmittedMessageType = "contact_submitted"

type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (s Submission) Trimmed() Submission {
	return Submission{
		Name:    strings.TrimSpace(s.Name),
		Email:   strings.TrimSpace(s.Email),
		Subject: strings.TrimSpace(s.Subject),
		Message: strings.TrimSpace(s.Message),
	}
}

func (s Submission) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"name", s.Name},
		{"email", s.Email},
		{"subject", s.Subject},
		{"message", s.Message},
	}

	missing := []string{}
	for _, field := range fields {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}

	if len(missing) > 0 {
		return errors.Newf("Missing fields: %s", strings.Join(missing, ", "))
	}

	address, err := mail.ParseAddress(s.Email)
	if err != nil {
		return errors.Wrapf(err, "Email %q doesn't parse", s.Email)
	}

	if address.Address != strings.TrimSpace(s.Email) {
		return errors.Newf("Email %q is more than an address", s.Email)
	}

	return nil
}

type Receipt struct {
	ID string `json:"id"`
}

// SubmittedMessage is the queue payload announcing a relayed submission
type SubmittedMessage struct {
	ID          string     `json:"id"`
	SubmittedAt string     `json:"submitted_at"`
	Submission  Submission `json:"submission"`
}
