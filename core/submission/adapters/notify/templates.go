package notify

import (
	"bytes"
	"html/template"
	"strings"
	"time"

	"contactform/core/submission/domain"
)

const timeLayout = "Jan 2, 2006 3:04 PM MST"

var funcs = template.FuncMap{
	// nl2br escapes first, then turns line breaks into <br>
	"nl2br": func(s string) template.HTML {
		escaped := template.HTMLEscapeString(s)
		return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
	},
	"when": func(t time.Time) string {
		return t.Format(timeLayout)
	},
}

var adminTmpl = template.Must(template.New("admin").Funcs(funcs).Parse(`
<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
<p><strong>Subject:</strong> {{.Subject}}</p>
<p><strong>Message:</strong></p>
<p>{{nl2br .Message}}</p>
<hr>
<p><small>Submission ID: {{if .ID}}{{.ID}}{{else}}N/A{{end}}</small></p>
<p><small>Submitted at: {{when .CreatedAt}}</small></p>
`))

var userTmpl = template.Must(template.New("user").Funcs(funcs).Parse(`
<h2>Thank you for contacting {{.Brand}}!</h2>
<p>Hi {{.Name}},</p>
<p>We have received your message and will get back to you as soon as possible.</p>
<hr>
<p><strong>Your Message Details:</strong></p>
<p><strong>Subject:</strong> {{.Subject}}</p>
<p><strong>Submitted on:</strong> {{when .CreatedAt}}</p>
<hr>
<p>Best regards,<br>{{.Brand}} Team</p>
<p><small>This is an automated message. Please do not reply to this email.</small></p>
`))

type userView struct {
	domain.Submission
	Brand string
}

func renderAdmin(s domain.Submission) (string, error) {
	var buf bytes.Buffer
	if err := adminTmpl.Execute(&buf, s); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderUser(s domain.Submission, brand string) (string, error) {
	var buf bytes.Buffer
	if err := userTmpl.Execute(&buf, userView{Submission: s, Brand: brand}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
