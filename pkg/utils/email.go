package utils

import (
	"fmt"
	"html"
	"log"
	"mime/multipart"
	"net/smtp"
	"net/textproto"
	"os"
	"strings"
)

const companyName = "Save Rent A Car"

// ContactMessage is one contact-form submission ready to be relayed.
type ContactMessage struct {
	Name         string
	Email        string
	Phone        string
	SubjectLabel string
	Body         string
}

// Mailer relays contact-form submissions through an authenticated SMTP
// account. The visitor's address goes into Reply-To so the operator can
// answer directly.
type Mailer struct {
	User     string
	Password string
	To       string
	SMTPHost string
	SMTPPort string
}

// NewMailerFromEnv builds a Mailer from the environment. The destination
// falls back to the sending account when TO_EMAIL is not set.
func NewMailerFromEnv() *Mailer {
	m := &Mailer{
		User:     os.Getenv("GMAIL_USER"),
		Password: os.Getenv("GMAIL_APP_PASSWORD"),
		To:       os.Getenv("TO_EMAIL"),
		SMTPHost: os.Getenv("SMTP_HOST"),
		SMTPPort: os.Getenv("SMTP_PORT"),
	}
	if m.To == "" {
		m.To = m.User
	}
	if m.SMTPHost == "" {
		m.SMTPHost = "smtp.gmail.com"
	}
	if m.SMTPPort == "" {
		m.SMTPPort = "587"
	}
	return m
}

// Configured reports whether the sender credentials and destination are set.
func (m *Mailer) Configured() bool {
	return m.User != "" && m.Password != "" && m.To != ""
}

// SendContactMessage relays one submission to the configured destination.
func (m *Mailer) SendContactMessage(msg ContactMessage) error {
	if !m.Configured() {
		return fmt.Errorf("email configuration not set")
	}

	plain, htmlBody := contactBodies(msg)

	subject := "Contact form: " + msg.SubjectLabel
	body, contentType, err := alternativeBody(plain, htmlBody)
	if err != nil {
		return err
	}

	headers := make(map[string]string)
	headers["From"] = fmt.Sprintf("%s <%s>", headerValue(msg.Name), m.User)
	headers["To"] = m.To
	headers["Reply-To"] = headerValue(msg.Email)
	headers["Subject"] = headerValue(subject)
	headers["MIME-Version"] = "1.0"
	headers["Content-Type"] = contentType
	headers["X-Mailer"] = companyName + "-Mailer"

	message := ""
	for key, value := range headers {
		message += fmt.Sprintf("%s: %s\r\n", key, value)
	}
	message += "\r\n" + body

	auth := smtp.PlainAuth("", m.User, m.Password, m.SMTPHost)
	if err := smtp.SendMail(m.SMTPHost+":"+m.SMTPPort, auth, m.User, []string{m.To}, []byte(message)); err != nil {
		log.Printf("Failed to send contact email: %v", err)
		return err
	}

	log.Printf("Contact email relayed to %s", m.To)
	return nil
}

// contactBodies renders the plaintext and HTML versions of a submission.
// Every visitor-supplied value is escaped before it reaches the HTML.
func contactBodies(msg ContactMessage) (plain, htmlBody string) {
	plain = strings.Join([]string{
		"New contact form submission",
		"---------------------------",
		"Name:    " + msg.Name,
		"Email:   " + msg.Email,
		"Phone:   " + orDash(msg.Phone),
		"Subject: " + msg.SubjectLabel,
		"",
		msg.Body,
	}, "\n")

	htmlBody = fmt.Sprintf(`<div style="font-family:Arial,Helvetica,sans-serif">
	<h2>New contact form submission</h2>
	<table style="border-collapse:collapse">
		<tr><td><b>Name:</b></td><td>%s</td></tr>
		<tr><td><b>Email:</b></td><td>%s</td></tr>
		<tr><td><b>Phone:</b></td><td>%s</td></tr>
		<tr><td><b>Subject:</b></td><td>%s</td></tr>
	</table>
	<hr />
	<pre style="white-space:pre-wrap;font:inherit">%s</pre>
</div>`,
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Email),
		html.EscapeString(orDash(msg.Phone)),
		html.EscapeString(msg.SubjectLabel),
		html.EscapeString(msg.Body))

	return plain, htmlBody
}

// alternativeBody wraps the plaintext and HTML renderings in a
// multipart/alternative envelope.
func alternativeBody(plain, htmlBody string) (body, contentType string, err error) {
	var buf strings.Builder
	w := multipart.NewWriter(&buf)

	part, err := w.CreatePart(textproto.MIMEHeader{"Content-Type": {"text/plain; charset=UTF-8"}})
	if err != nil {
		return "", "", err
	}
	if _, err := part.Write([]byte(plain)); err != nil {
		return "", "", err
	}

	part, err = w.CreatePart(textproto.MIMEHeader{"Content-Type": {"text/html; charset=UTF-8"}})
	if err != nil {
		return "", "", err
	}
	if _, err := part.Write([]byte(htmlBody)); err != nil {
		return "", "", err
	}

	if err := w.Close(); err != nil {
		return "", "", err
	}

	return buf.String(), fmt.Sprintf("multipart/alternative; boundary=%q", w.Boundary()), nil
}

// headerValue strips line breaks so user input cannot smuggle extra headers.
func headerValue(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
