package templates

import (
	"bytes"
	"fmt"
	"html/template"
)

// Template names understood by the email worker.
const (
	Welcome = "welcome"
)

var registry = map[string]*template.Template{
	Welcome: template.Must(template.New(Welcome).Parse(welcomeHTML)),
}

// Subjects per template; a template without an entry falls back to a generic
// subject.
var subjects = map[string]string{
	Welcome: "Welcome aboard",
}

const welcomeHTML = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Welcome, {{.Username}}!</h2>
  <p>Your account for <strong>{{.Email}}</strong> is ready.</p>
  <p>You can now sign in with your email or username.</p>
  <p style="color:#888;font-size:12px;">If you did not create this account, you can ignore this email.</p>
</body>
</html>`

// Render renders the named template with data and returns subject and HTML body.
func Render(name string, data map[string]any) (subject, html string, err error) {
	tpl, ok := registry[name]
	if !ok {
		return "", "", fmt.Errorf("unknown email template: %s", name)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", "", err
	}
	subject, ok = subjects[name]
	if !ok {
		subject = "Notification"
	}
	return subject, buf.String(), nil
}
