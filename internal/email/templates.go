package email

import "fmt"

// Template is a rendered email plus the type tag stored on its audit
// record.
type Template struct {
	TemplateType string
	Subject      string
	Html         string
	Text         string
}

const TemplateTypeOrganizationInvite = "organization-invite"

// NewOrganizationInviteTemplate renders the invitation email. The
// accept URL points at the frontend's acceptance landing page.
func NewOrganizationInviteTemplate(inviterName, orgName, role, acceptURL string) *Template {
	subject := fmt.Sprintf("You've been invited to %s", orgName)

	html := fmt.Sprintf(`<html><body>
<h2>You've been invited to %s</h2>
<p><strong>%s</strong> has invited you to join <strong>%s</strong> as a <strong>%s</strong>.</p>
<p>Click the link below to accept the invitation and get started.</p>
<p><a href="%s">Accept Invitation</a></p>
<p>If you didn't expect this invitation, you can safely ignore this email.</p>
</body></html>`, orgName, inviterName, orgName, role, acceptURL)

	text := fmt.Sprintf(`You've been invited to %s

%s has invited you to join %s as a %s.

Accept the invitation by visiting:
%s

If you didn't expect this invitation, you can safely ignore this email.`,
		orgName, inviterName, orgName, role, acceptURL)

	return &Template{
		TemplateType: TemplateTypeOrganizationInvite,
		Subject:      subject,
		Html:         html,
		Text:         text,
	}
}
