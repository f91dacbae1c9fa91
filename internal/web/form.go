package web

import "jobboard/internal/forms"

type Field struct {
	Name  string
	Label string
	Type  string // text, email, password or textarea
	Value string
	Class string
	Error string
}

// FormPage is one of the contact, registration or login pages.
type FormPage struct {
	icons

	ID      string
	Heading string
	Action  string
	Submit  string
	Title   string
	Success string
	Fields  []Field
}

func (p *FormPage) DocumentTitle() string { return p.Title }

// Apply copies submitted values and their feedback onto the fields.
// Password values are never echoed back.
func (p *FormPage) Apply(values map[string]string, fb forms.Feedback) {
	for i := range p.Fields {
		f := &p.Fields[i]
		if f.Type != "password" {
			f.Value = values[f.Name]
		}
		f.Class = fb.Class(f.Name)
		f.Error = fb.Error(f.Name)
	}
}

func ContactPage(siteName string) *FormPage {
	return &FormPage{
		ID: "contact-form", Heading: "Contact Us", Action: "/contact", Submit: "Send Message",
		Title: "Contact Us - " + siteName,
		Fields: []Field{
			{Name: "firstName", Label: "First Name", Type: "text"},
			{Name: "lastName", Label: "Last Name", Type: "text"},
			{Name: "email", Label: "Email Address", Type: "email"},
			{Name: "message", Label: "Message", Type: "textarea"},
		},
	}
}

func RegisterPage(siteName string) *FormPage {
	return &FormPage{
		ID: "register-form", Heading: "Create an Account", Action: "/register", Submit: "Register",
		Title: "Register - " + siteName,
		Fields: []Field{
			{Name: "name", Label: "Full Name", Type: "text"},
			{Name: "email", Label: "Email Address", Type: "email"},
			{Name: "password", Label: "Password", Type: "password"},
			{Name: "confirmPassword", Label: "Confirm Password", Type: "password"},
		},
	}
}

func LoginPage(siteName string) *FormPage {
	return &FormPage{
		ID: "login-form", Heading: "Login", Action: "/login", Submit: "Login",
		Title: "Login - " + siteName,
		Fields: []Field{
			{Name: "email", Label: "Email Address", Type: "email"},
			{Name: "password", Label: "Password", Type: "password"},
		},
	}
}
