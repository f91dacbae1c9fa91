package httpapi

import (
	"net/http"
	"sync/atomic"

	"jobboard/internal/forms"
	"jobboard/internal/logging"
	"jobboard/internal/web"
)

const (
	ContactSuccess  = "Thank you for reaching out! We'll get back to you soon."
	RegisterSuccess = "Registration successful! You can now log in."
	LoginSuccess    = "Login successful!"
)

// FormsHandler serves the contact, registration and login pages. Submissions
// are validated and acknowledged; nothing is stored or authenticated.
type FormsHandler struct {
	Renderer *web.Renderer
	CfgVal   *atomic.Value // stores config.Config
}

func (h FormsHandler) Contact(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, web.ContactPage, &forms.ContactForm{}, ContactSuccess)
}

func (h FormsHandler) Register(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, web.RegisterPage, &forms.RegistrationForm{}, RegisterSuccess)
}

func (h FormsHandler) Login(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, web.LoginPage, &forms.LoginForm{}, LoginSuccess)
}

func (h FormsHandler) serve(w http.ResponseWriter, r *http.Request, build func(string) *web.FormPage, form any, success string) {
	page := build(currentConfig(h.CfgVal).App.SiteName)
	if r.Method != http.MethodPost {
		renderPage(w, r, h.Renderer, http.StatusOK, web.PageForm, page)
		return
	}

	if err := r.ParseForm(); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_form", "form could not be parsed")
		return
	}
	forms.Decode(r.PostForm, form)
	fb := forms.Check(form)
	if fb.OK() {
		logging.Component("forms").WithField("form", page.ID).Info("form accepted")
		page.Success = success
		renderPage(w, r, h.Renderer, http.StatusOK, web.PageForm, page)
		return
	}

	values := make(map[string]string, len(r.PostForm))
	for k := range r.PostForm {
		values[k] = r.PostForm.Get(k)
	}
	page.Apply(values, fb)
	renderPage(w, r, h.Renderer, http.StatusUnprocessableEntity, web.PageForm, page)
}
