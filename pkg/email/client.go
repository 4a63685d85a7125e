package email

import (
	"fmt"
	"net/mail"
	"regexp"

	mailv2 "gopkg.in/mail.v2"

	"github.com/iskandar/reply-notifier/internal/notify"
)

// smtpPermanentCode matches a leading 5xx SMTP reply code in a transport
// error, e.g. "550 5.1.1 user unknown".
var smtpPermanentCode = regexp.MustCompile(`^5\d\d[ -]`)

type Client struct {
	smtpHost string
	smtpPort int
	username string
	password string
	from     string
}

func NewClient(smtpHost string, smtpPort int, username, password, from string) *Client {
	return &Client{
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		username: username,
		password: password,
		from:     from,
	}
}

// Send delivers a rendered notification over SMTP. An unparseable recipient
// or a 5xx reply from the server is a permanent failure; everything else
// (dial errors, timeouts) is transient and left to the caller to retry.
func (c *Client) Send(to string, doc notify.Rendered) error {
	if _, err := mail.ParseAddress(to); err != nil {
		return notify.Permanent(fmt.Errorf("invalid recipient address %q: %w", to, err))
	}

	message := mailv2.NewMessage()

	message.SetHeader("From", c.from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", doc.Subject)

	message.SetBody("text/html", doc.Body)

	dialer := mailv2.NewDialer(c.smtpHost, c.smtpPort, c.username, c.password)

	if err := dialer.DialAndSend(message); err != nil {
		if smtpPermanentCode.MatchString(err.Error()) {
			return notify.Permanent(fmt.Errorf("recipient rejected: %w", err))
		}

		return err
	}

	return nil
}
