package forms

import (
	"net/url"
	"testing"
)

func TestPrimitives(t *testing.T) {
	names := map[string]bool{"Ada Lovelace": true, "O'Neil": true, "Jean-Luc": true, "R2D2": false, "   ": false, "": false}
	for in, want := range names {
		if got := ValidName(in); got != want {
			t.Errorf("ValidName(%q) = %v", in, got)
		}
	}
	emails := map[string]bool{"a@b.co": true, "a@b": false, "a b@c.d": false, "": false}
	for in, want := range emails {
		if got := ValidEmail(in); got != want {
			t.Errorf("ValidEmail(%q) = %v", in, got)
		}
	}
}

func TestFieldMessages(t *testing.T) {
	cases := []struct{ got, want string }{
		{Name("", "First name"), "First name is required"},
		{Name("B0b", "First name"), "First name must contain only letters"},
		{Name(" Bob ", "First name"), ""},
		{Name("", ""), "This field is required"},
		{Email(""), "Email address is required"},
		{Email("nope"), "Please enter a valid email address"},
		{Email("me@example.com"), ""},
		{Password("", 6), "Password is required"},
		{Password("abc", 6), "Password must be at least 6 characters long"},
		{Password("abcdefgh", 0), ""},
		{ConfirmPassword("", "secret1"), "Please confirm your password"},
		{ConfirmPassword("secret2", "secret1"), "Passwords do not match"},
		{ConfirmPassword("secret1", "secret1"), ""},
		{Message("  "), "Message is required"},
	}
	for i, c := range cases {
		if c.got != c.want {
			t.Errorf("case %d: got %q want %q", i, c.got, c.want)
		}
	}
}

func TestContactForm(t *testing.T) {
	var f ContactForm
	Decode(url.Values{
		"firstName": {"  Ada "},
		"lastName":  {"L0velace"},
		"email":     {"ada@example"},
		"message":   {""},
	}, &f)
	if f.FirstName != "Ada" {
		t.Errorf("not trimmed: %q", f.FirstName)
	}

	fb := Check(&f)
	if fb.OK() {
		t.Fatal("expected errors")
	}
	want := map[string]string{
		"lastName": "Last name must contain only letters",
		"email":    "Please enter a valid email address",
		"message":  "Message is required",
	}
	for field, msg := range want {
		if got := fb.Error(field); got != msg {
			t.Errorf("%s: got %q want %q", field, got, msg)
		}
		if fb.Class(field) != "is-invalid" {
			t.Errorf("%s: class = %q", field, fb.Class(field))
		}
	}
	if fb.Class("firstName") != "is-valid" {
		t.Errorf("firstName class = %q", fb.Class("firstName"))
	}
}

func TestRegistrationForm(t *testing.T) {
	f := RegistrationForm{Name: "Ada", Email: "ada@example.com", Password: "secret1", ConfirmPassword: "secret2"}
	fb := Check(&f)
	if got := fb.Error("confirmPassword"); got != "Passwords do not match" {
		t.Errorf("confirm = %q", got)
	}

	f.ConfirmPassword = ""
	if got := Check(&f).Error("confirmPassword"); got != "Please confirm your password" {
		t.Errorf("confirm empty = %q", got)
	}

	f.Password, f.ConfirmPassword = "abc", "abc"
	if got := Check(&f).Error("password"); got != "Password must be at least 6 characters long" {
		t.Errorf("password = %q", got)
	}

	f.Password, f.ConfirmPassword = "secret1", "secret1"
	if fb := Check(&f); !fb.OK() {
		t.Errorf("valid form rejected: %v", fb.Errors)
	}
}

func TestLoginFormKeepsPasswordWhitespace(t *testing.T) {
	var f LoginForm
	Decode(url.Values{"email": {" me@example.com "}, "password": {" pass  "}}, &f)
	if f.Email != "me@example.com" || f.Password != " pass  " {
		t.Errorf("decoded = %+v", f)
	}
	if fb := Check(&f); !fb.OK() {
		t.Errorf("errors = %v", fb.Errors)
	}

	empty := Check(&LoginForm{})
	if empty.Error("email") != "Email address is required" || empty.Error("password") != "Password is required" {
		t.Errorf("errors = %v", empty.Errors)
	}
}

func TestClassBeforeSubmit(t *testing.T) {
	var fb Feedback
	if fb.Class("email") != "" {
		t.Error("zero feedback should have no class")
	}
}

func TestCheckAgreesWithFieldChecks(t *testing.T) {
	cases := []RegistrationForm{
		{},
		{Name: "B0b", Email: "nope", Password: "abc", ConfirmPassword: "abd"},
		{Name: "Ada", Email: "ada@example.com", Password: "secret1", ConfirmPassword: "secret2"},
		{Name: "Ada", Email: "ada@example.com", Password: "secret1", ConfirmPassword: "secret1"},
	}
	for i, f := range cases {
		fb := Check(&f)
		want := map[string]string{
			"name":            Name(f.Name, "Full name"),
			"email":           Email(f.Email),
			"password":        Password(f.Password, DefaultPasswordMin),
			"confirmPassword": ConfirmPassword(f.ConfirmPassword, f.Password),
		}
		for field, msg := range want {
			if got := fb.Error(field); got != msg {
				t.Errorf("case %d %s: Check = %q, field check = %q", i, field, got, msg)
			}
		}
	}
}
