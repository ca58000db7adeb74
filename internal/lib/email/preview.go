package email

// PreviewData holds sample data for rendering each template outside of a
// real send.
var PreviewData = map[Template]map[string]string{
	TemplateWelcome: {
		"Username": "jane",
	},
}
