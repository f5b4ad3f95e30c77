package services

import (
	"fmt"
	"html"
	"log"
	"net/smtp"
	"strings"
	"time"

	"devsfusion-backend/config"
	"devsfusion-backend/models"
)

// Mailer sends the two emails triggered by a contact submission. Both
// sends are best-effort; callers log failures and never surface them to
// the submitter.
type Mailer interface {
	SendContactNotification(contact *models.Contact) error
	SendAutoReply(contact *models.Contact) error
}

// SMTPMailer delivers mail over plain SMTP. When the SMTP settings are
// incomplete it logs the message instead of sending, so local setups
// work without a mail account.
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	fromName string
	adminTo  string
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	adminTo := cfg.AdminEmail
	if adminTo == "" {
		adminTo = cfg.SMTPUsername
	}
	return &SMTPMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		fromName: cfg.SMTPFromName,
		adminTo:  adminTo,
	}
}

func (m *SMTPMailer) configured() bool {
	return m.host != "" && m.port != "" && m.username != "" && m.password != ""
}

func sanitizeHeader(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}

// send builds a multipart/alternative message (plain + html) and ships it.
func (m *SMTPMailer) send(to, replyTo, subject, plainBody, htmlBody string) error {
	if !m.configured() {
		log.Printf("[MOCK EMAIL] to:%s subject:%q", to, subject)
		return nil
	}

	from := fmt.Sprintf("%s <%s>", sanitizeHeader(m.fromName), m.username)
	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	addr := fmt.Sprintf("%s:%s", m.host, m.port)
	boundary := "----=_CONTACT_EMAIL_BOUNDARY"

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", sanitizeHeader(to)))
	if replyTo != "" {
		sb.WriteString(fmt.Sprintf("Reply-To: %s\r\n", sanitizeHeader(replyTo)))
	}
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", sanitizeHeader(subject)))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", boundary))

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(plainBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	sb.WriteString(htmlBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	if err := smtp.SendMail(addr, auth, m.username, []string{to}, []byte(sb.String())); err != nil {
		log.Printf("Failed to send email to %s: %v", to, err)
		return err
	}
	return nil
}

// SendContactNotification mails the new submission to the site inbox,
// with Reply-To set to the submitter.
func (m *SMTPMailer) SendContactNotification(contact *models.Contact) error {
	subject := fmt.Sprintf("New Contact: %s", contact.Subject)

	phoneLine := ""
	if contact.Phone != "" {
		phoneLine = fmt.Sprintf("Phone: %s\n", contact.Phone)
	}
	plainBody := fmt.Sprintf(
		"New contact form submission\n\n"+
			"Name: %s\nEmail: %s\n%sSubject: %s\n\nMessage:\n%s\n",
		contact.Name, contact.Email, phoneLine, contact.Subject, contact.Message,
	)

	// User-supplied fields go through html.EscapeString before they end
	// up in the HTML part.
	phoneRow := ""
	if contact.Phone != "" {
		phoneRow = fmt.Sprintf(`<tr><td class="label">Phone:</td><td>%s</td></tr>`, html.EscapeString(contact.Phone))
	}
	htmlBody := fmt.Sprintf(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>New Contact Form Submission</title>
<style>
body { background:#f9f9f9; font-family:Arial, Helvetica, sans-serif; color:#333; }
.container { max-width:600px; margin:20px auto; }
.card { background:#fff; border:1px solid #eee; padding:24px; border-radius:8px; }
.label { font-weight:bold; width:100px; }
.message { background:#f5f5f5; padding:15px; border-radius:5px; line-height:1.6; }
</style>
</head>
<body>
<div class="container">
  <div class="card">
    <h2>New Contact Form Submission</h2>
    <table>
      <tr><td class="label">Name:</td><td>%s</td></tr>
      <tr><td class="label">Email:</td><td><a href="mailto:%s">%s</a></td></tr>
      %s
      <tr><td class="label">Subject:</td><td>%s</td></tr>
    </table>
    <h3>Message:</h3>
    <div class="message">%s</div>
  </div>
  <p>This email was sent from the DevsFusion contact form.</p>
</div>
</body>
</html>`,
		html.EscapeString(contact.Name), html.EscapeString(contact.Email),
		html.EscapeString(contact.Email), phoneRow, html.EscapeString(contact.Subject),
		strings.ReplaceAll(html.EscapeString(contact.Message), "\n", "<br>"),
	)

	return m.send(m.adminTo, contact.Email, subject, plainBody, htmlBody)
}

// SendAutoReply acknowledges the submission to the person who sent it.
func (m *SMTPMailer) SendAutoReply(contact *models.Contact) error {
	subject := "Thanks for contacting DevsFusion!"

	plainBody := fmt.Sprintf(
		"Hi %s,\n\n"+
			"Thank you for reaching out to DevsFusion! We've received your message "+
			"and will get back to you as soon as possible, typically within 24-48 hours.\n\n"+
			"Your message summary:\nSubject: %s\n\n"+
			"Best regards,\nThe DevsFusion Team\n",
		contact.Name, contact.Subject,
	)

	htmlBody := fmt.Sprintf(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Thank You</title>
<style>
body { background:#f9f9f9; font-family:Arial, Helvetica, sans-serif; color:#333; }
.container { max-width:600px; margin:20px auto; }
.card { background:#fff; border:1px solid #eee; padding:24px; border-radius:8px; }
.summary { background:#f5f5f5; padding:20px; border-radius:5px; margin:20px 0; }
</style>
</head>
<body>
<div class="container">
  <div class="card">
    <h2>Thank You!</h2>
    <p>Hi <strong>%s</strong>,</p>
    <p>Thank you for reaching out to DevsFusion! We've received your message
    and will get back to you as soon as possible, typically within 24-48 hours.</p>
    <div class="summary">
      <strong>Subject:</strong> %s
    </div>
    <p>In the meantime, feel free to explore our work and projects.</p>
    <p>Best regards,<br><strong>The DevsFusion Team</strong></p>
  </div>
  <p>&copy; %d DevsFusion. All rights reserved.</p>
</div>
</body>
</html>`,
		html.EscapeString(contact.Name), html.EscapeString(contact.Subject), time.Now().Year(),
	)

	return m.send(contact.Email, "", subject, plainBody, htmlBody)
}
