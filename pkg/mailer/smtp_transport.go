package mailer

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"
)

// DefaultPort is used when the caller does not specify an SMTP port
const DefaultPort = 587

// SMTPConfig holds configuration for the SMTP transport. It is supplied
// per batch invocation and is never persisted anywhere.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Secret   string
	Timeout  time.Duration // bounds a single send, including the dial
}

// SMTPTransport implements Transport over SMTP with STARTTLS
type SMTPTransport struct {
	host     string
	port     int
	username string
	secret   string
	timeout  time.Duration
}

// NewSMTPTransport creates a new SMTP transport from the given settings
func NewSMTPTransport(config SMTPConfig) *SMTPTransport {
	port := config.Port
	if port == 0 {
		port = DefaultPort
	}
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &SMTPTransport{
		host:     config.Host,
		port:     port,
		username: config.Username,
		secret:   config.Secret,
		timeout:  timeout,
	}
}

// GetName returns the name of the transport implementation
func (t *SMTPTransport) GetName() string {
	return "smtp"
}

// Send delivers one message. The connection deadline covers the whole
// exchange so a stalled server surfaces as a send error rather than a hang.
func (t *SMTPTransport) Send(recipient, subject, body string) error {
	addr := net.JoinHostPort(t.host, fmt.Sprintf("%d", t.port))

	conn, err := net.DialTimeout("tcp", addr, t.timeout)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", addr, err)
	}
	if err := conn.SetDeadline(time.Now().Add(t.timeout)); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set connection deadline: %w", err)
	}

	client, err := smtp.NewClient(conn, t.host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: t.host}); err != nil {
			return fmt.Errorf("failed to start TLS: %w", err)
		}
	}

	if t.username != "" {
		auth := smtp.PlainAuth("", t.username, t.secret, t.host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("failed to authenticate: %w", err)
		}
	}

	if err := client.Mail(t.username); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := client.Rcpt(recipient); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to open message body: %w", err)
	}
	if _, err := w.Write([]byte(t.formatMessage(recipient, subject, body))); err != nil {
		w.Close()
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finish message: %w", err)
	}

	return client.Quit()
}

// formatMessage builds the RFC 5322 payload for a plain-text message
func (t *SMTPTransport) formatMessage(recipient, subject, body string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("From: %s\r\n", t.username))
	b.WriteString(fmt.Sprintf("To: %s\r\n", recipient))
	b.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return b.String()
}
