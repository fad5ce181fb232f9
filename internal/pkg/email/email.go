package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"html"
	"net/smtp"
	"strconv"

	"github.com/tahsin/scholarfolio/internal/app/models"
	"github.com/tahsin/scholarfolio/internal/pkg/logger"
)

// SMTPConfig holds configuration for the SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	// ToEmail is the admin inbox that receives contact notifications
	ToEmail string
	UseTLS  bool
}

// Notifier forwards visitor contact messages to the admin inbox. When SMTP
// credentials are not configured it logs the message instead of sending,
// which keeps local development mail-free.
type Notifier struct {
	config SMTPConfig
}

// NewNotifier creates a new Notifier
func NewNotifier(config SMTPConfig) *Notifier {
	return &Notifier{config: config}
}

// NotifyContactMessage emails the stored message to the admin inbox.
func (n *Notifier) NotifyContactMessage(_ context.Context, msg models.ContactMessage) error {
	if n.config.Username == "" || n.config.Password == "" || n.config.ToEmail == "" {
		logger.Warn().
			Str("from", msg.MsgEmail).
			Str("subject", msg.Subject).
			Msg("SMTP not configured - contact notification not sent")
		return nil
	}

	subject := "New contact message: " + msg.Subject

	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">New message from your portfolio site</h2>
				<p><strong>From:</strong> %s &lt;%s&gt;</p>
				<p><strong>Subject:</strong> %s</p>
				<p style="white-space: pre-wrap;">%s</p>
			</div>
		</body>
		</html>
	`, html.EscapeString(msg.Name), html.EscapeString(msg.MsgEmail),
		html.EscapeString(msg.Subject), html.EscapeString(msg.Message))

	return n.sendHTMLEmail(n.config.ToEmail, subject, body)
}

// sendHTMLEmail sends an HTML email
func (n *Notifier) sendHTMLEmail(toEmail, subject, htmlBody string) error {
	auth := smtp.PlainAuth("", n.config.Username, n.config.Password, n.config.Host)

	message := fmt.Sprintf("From: %s <%s>\r\n", n.config.FromName, n.config.FromEmail)
	message += fmt.Sprintf("To: %s\r\n", toEmail)
	message += fmt.Sprintf("Subject: %s\r\n", subject)
	message += "MIME-Version: 1.0\r\n"
	message += "Content-Type: text/html; charset=UTF-8\r\n"
	message += "\r\n" + htmlBody

	serverAddress := n.config.Host + ":" + strconv.Itoa(n.config.Port)

	if !n.config.UseTLS {
		if err := smtp.SendMail(serverAddress, auth, n.config.FromEmail, []string{toEmail}, []byte(message)); err != nil {
			return fmt.Errorf("failed to send email: %w", err)
		}
		return nil
	}

	tlsConfig := &tls.Config{ServerName: n.config.Host}
	conn, err := tls.Dial("tcp", serverAddress, tlsConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, n.config.Host)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Quit()

	if err = client.Auth(auth); err != nil {
		return fmt.Errorf("SMTP authentication failed: %w", err)
	}
	if err = client.Mail(n.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err = client.Rcpt(toEmail); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}
	if _, err = w.Write([]byte(message)); err != nil {
		return fmt.Errorf("failed to write email message: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}
	return nil
}
