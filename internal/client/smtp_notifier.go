package client

import (
	"context"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
	gomail "gopkg.in/gomail.v2"
)

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// SMTPNotifier delivers outbound notifications over SMTP. Bodies that look
// like formatted plain text (contain newlines, no markup) are sent as
// text/plain, everything else as text/html.
type SMTPNotifier struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPNotifier(host string, port int, username, password, from string) *SMTPNotifier {
	return &SMTPNotifier{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (n *SMTPNotifier) Send(ctx context.Context, to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	if isPlainText(body) {
		m.SetBody("text/plain", body)
	} else {
		m.SetBody("text/html", body)
	}

	// gomail has no context support; bound the send so a stuck SMTP server
	// cannot block the consumer's in-flight slot past its deadline.
	done := make(chan error, 1)
	go func() {
		done <- n.dialer.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return err
		}
		log.WithField("to", to).Info("Notification email sent")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func isPlainText(body string) bool {
	return strings.Contains(body, "\n") && !tagPattern.MatchString(body)
}
