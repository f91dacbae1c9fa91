package forms

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("form"); name != "" {
			return name
		}
		return f.Name
	})
	_ = validate.RegisterValidation("personname", func(fl validator.FieldLevel) bool {
		return ValidName(fl.Field().String())
	})
	_ = validate.RegisterValidation("looseemail", func(fl validator.FieldLevel) bool {
		return ValidEmail(fl.Field().String())
	})
}

type ContactForm struct {
	FirstName string `form:"firstName" label:"First name" validate:"required,personname"`
	LastName  string `form:"lastName" label:"Last name" validate:"required,personname"`
	Email     string `form:"email" label:"Email address" validate:"required,looseemail"`
	Message   string `form:"message" label:"Message" validate:"required"`
}

type RegistrationForm struct {
	Name            string `form:"name" label:"Full name" validate:"required,personname"`
	Email           string `form:"email" label:"Email address" validate:"required,looseemail"`
	Password        string `form:"password" label:"Password" validate:"required,min=6"`
	ConfirmPassword string `form:"confirmPassword" label:"Password" validate:"required,eqfield=Password"`
}

type LoginForm struct {
	Email    string `form:"email" label:"Email address" validate:"required,looseemail"`
	Password string `form:"password" label:"Password" validate:"required,min=6"`
}

// Feedback is the per-field outcome of validating a submitted form.
type Feedback struct {
	Errors map[string]string `json:"errors"`
	Valid  map[string]bool   `json:"valid"`
}

func (f Feedback) OK() bool { return len(f.Errors) == 0 }

// Class is the CSS state for field: is-invalid, is-valid, or "" before a submit.
func (f Feedback) Class(field string) string {
	if _, bad := f.Errors[field]; bad {
		return "is-invalid"
	}
	if f.Valid[field] {
		return "is-valid"
	}
	return ""
}

func (f Feedback) Error(field string) string { return f.Errors[field] }

// Decode copies values into the struct pointed to by dst using the form tags.
// Everything except password fields is trimmed.
func Decode(values url.Values, dst any) {
	rv := reflect.ValueOf(dst).Elem()
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		name := f.Tag.Get("form")
		if name == "" || f.Type.Kind() != reflect.String {
			continue
		}
		v := values.Get(name)
		if !strings.Contains(strings.ToLower(name), "password") {
			v = strings.TrimSpace(v)
		}
		rv.Field(i).SetString(v)
	}
}

// Check validates the struct pointed to by form.
func Check(form any) Feedback {
	fb := Feedback{Errors: map[string]string{}, Valid: map[string]bool{}}

	rt := reflect.TypeOf(form).Elem()
	for i := 0; i < rt.NumField(); i++ {
		if name := rt.Field(i).Tag.Get("form"); name != "" {
			fb.Valid[name] = true
		}
	}

	err := validate.Struct(form)
	if err == nil {
		return fb
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// programming error in the form definition
		panic(err)
	}
	for _, e := range verrs {
		field, _ := rt.FieldByName(e.StructField())
		name := e.Field()
		fb.Errors[name] = message(field, e)
		fb.Valid[name] = false
	}
	return fb
}

// overrides replace the generic message for a form field and rule.
var overrides = map[string]string{
	"confirmPassword.required": ConfirmRequired,
	"confirmPassword.eqfield":  PasswordMismatch,
}

func message(f reflect.StructField, e validator.FieldError) string {
	if msg, ok := overrides[e.Field()+"."+e.Tag()]; ok {
		return msg
	}
	label := f.Tag.Get("label")
	if label == "" {
		label = "This field"
	}
	switch e.Tag() {
	case "required":
		return requiredMessage(label)
	case "personname":
		return lettersMessage(label)
	case "looseemail":
		return EmailInvalid
	case "min":
		n, err := strconv.Atoi(e.Param())
		if err != nil {
			panic(fmt.Sprintf("forms: bad min param %q on %s", e.Param(), f.Name))
		}
		return minLengthMessage(label, n)
	case "eqfield":
		return PasswordMismatch
	}
	return fmt.Sprintf("%s is invalid (%s)", label, e.Tag())
}
