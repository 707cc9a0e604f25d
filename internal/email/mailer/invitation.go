// internal/email/mailer/invitation.go
package mailer

import "github.com/covergrid/brokercore/internal/email"

// InvitationTemplateData contains data for the invitation email template
type InvitationTemplateData struct {
	FirstName  string
	InviteLink string
	ExpiresIn  string
}

// SendInvitationEmail delivers the invitation link to the invitee.
func SendInvitationEmail(s *email.Service, to, firstName, inviteLink, expiresIn string) error {
	templateData := InvitationTemplateData{
		FirstName:  firstName,
		InviteLink: inviteLink,
		ExpiresIn:  expiresIn,
	}

	fromName := "Covergrid"

	emailData := email.EmailData{
		To:           to,
		FromName:     fromName,
		Subject:      "You have been invited to Covergrid",
		TemplateName: "invitation",
		TemplateData: templateData,
	}

	return s.SendEmail(emailData)
}
