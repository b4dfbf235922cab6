package mail

import (
	"fmt"
	"net/smtp"
	"strings"
)

type Message struct {
	To      string
	Subject string
	Body    string
	HTML    bool
}

// Sender delivers a single message synchronously. Request handlers never
// call it directly; they go through the Dispatcher.
type Sender interface {
	Send(msg Message) error
}

type SMTPSender struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func (s *SMTPSender) Send(msg Message) error {
	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)

	var auth smtp.Auth
	if s.Username != "" {
		auth = smtp.PlainAuth("", s.Username, s.Password, s.Host)
	}

	contentType := "text/plain; charset=utf-8"
	if msg.HTML {
		contentType = "text/html; charset=utf-8"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", s.From)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	fmt.Fprintf(&b, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: %s\r\n\r\n", contentType)
	b.WriteString(msg.Body)

	return smtp.SendMail(addr, auth, s.From, []string{msg.To}, []byte(b.String()))
}
