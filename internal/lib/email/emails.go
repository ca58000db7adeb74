package email

// Template names an HTML file under templates/, without the extension.
type Template string

const (
	TemplateWelcome Template = "welcome"
)

var subjects = map[Template]string{
	TemplateWelcome: "Welcome to Listings!",
}

// Subject is the subject line sent with the template.
func (t Template) Subject() string {
	if s, ok := subjects[t]; ok {
		return s
	}
	return "Listings"
}

func (c *Client) SendWelcomeEmail(to, username string) error {
	return c.SendEmail(to, TemplateWelcome, map[string]string{
		"Username": username,
	})
}
