// Package email sends transactional emails through Resend.
//
// Templates are embedded HTML files rendered with html/template.
package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/deppfellow/listings-api/internal/config"
	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

const defaultFrom = "Listings <onboarding@resend.dev>"

type Client struct {
	client *resend.Client
	from   string
	logger *zerolog.Logger
}

func NewClient(cfg *config.Config, logger *zerolog.Logger) *Client {
	from := cfg.Integration.EmailFrom
	if from == "" {
		from = defaultFrom
	}

	return &Client{
		client: resend.NewClient(cfg.Integration.ResendAPIKey),
		from:   from,
		logger: logger,
	}
}

// Render executes the template with data and returns the HTML body.
func Render(tmpl Template, data map[string]string) (string, error) {
	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, string(tmpl)+".html", data); err != nil {
		return "", errors.Wrapf(err, "render email template %s", tmpl)
	}

	return body.String(), nil
}

func (c *Client) SendEmail(to string, tmpl Template, data map[string]string) error {
	html, err := Render(tmpl, data)
	if err != nil {
		return err
	}

	sent, err := c.client.Emails.Send(&resend.SendEmailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: tmpl.Subject(),
		Html:    html,
	})
	if err != nil {
		return fmt.Errorf("send %s email: %w", tmpl, err)
	}

	c.logger.Debug().
		Str("email_id", sent.Id).
		Str("template", string(tmpl)).
		Msg("email sent")

	return nil
}
