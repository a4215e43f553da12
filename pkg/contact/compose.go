package contact

import (
	"fmt"

	"github.com/tiagofholanda/portfolio-contact/pkg/mailer"
)

// SubjectPrefix starts the subject of every relayed contact message.
const SubjectPrefix = "Contato do Portfólio - "

const bodyTemplate = "Nome: %s\nE-mail: %s\n\nMensagem:\n%s"

// Compose builds the outbound email for a submission.
// The free-text fields are embedded verbatim; the body is sent as plain text.
func Compose(req Request, creds mailer.Credentials) *mailer.Email {
	return &mailer.Email{
		Subject: SubjectPrefix + req.Name,
		Text:    fmt.Sprintf(bodyTemplate, req.Name, req.Email, req.Message),
		From:    creds.Identity,
		To:      []string{creds.Destination},
		ReplyTo: req.Email,
	}
}
