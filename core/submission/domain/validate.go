package domain

import (
	"regexp"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const (
	MsgFieldsRequired = "All fields are required"
	MsgNameTooShort   = "Name must be at least 2 characters"
	MsgInvalidEmail   = "Please provide a valid email address"
	MsgSubjectShort   = "Subject must be at least 3 characters"
	MsgMessageShort   = "Message must be at least 10 characters"
	MsgInvalidStatus  = "Invalid status. Must be one of: new, read, replied, archived"
)

// emailPattern treats the same runes as isFormSpace as whitespace.
var emailPattern = regexp.MustCompile(
	`^[^\s\v\x{00A0}\x{FEFF}\p{Zs}\x{2028}\x{2029}@]+` +
		`@[^\s\v\x{00A0}\x{FEFF}\p{Zs}\x{2028}\x{2029}@]+` +
		`\.[^\s\v\x{00A0}\x{FEFF}\p{Zs}\x{2028}\x{2029}@]+$`,
)

// isFormSpace matches what browsers strip from form input: ASCII
// whitespace, space separators, line and paragraph separators and the BOM.
func isFormSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', '\u2028', '\u2029', '\uFEFF':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

func trim(s string) string { return strings.TrimFunc(s, isFormSpace) }

var validate = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// the stock "email" rule follows RFC 5322 and accepts shapes the form
	// never did, so keep the form's own pattern
	_ = v.RegisterValidation("contact_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	return v
})

type rule struct {
	field   string
	value   string
	tag     string
	message string
}

func check(rules []rule) error {
	v := validate()
	for _, r := range rules {
		if err := v.Var(r.value, r.tag); err != nil {
			return &ValidationError{Field: r.field, Message: r.message}
		}
	}
	return nil
}

// ValidateSubmission applies the form rules in order and returns the trimmed
// input. The first broken rule is reported as a *ValidationError.
func ValidateSubmission(in SubmissionInput) (SubmissionInput, error) {
	presence := []rule{
		{"name", in.Name, "required", MsgFieldsRequired},
		{"email", in.Email, "required", MsgFieldsRequired},
		{"subject", in.Subject, "required", MsgFieldsRequired},
		{"message", in.Message, "required", MsgFieldsRequired},
	}
	if err := check(presence); err != nil {
		return SubmissionInput{}, err
	}

	out := SubmissionInput{
		Name:    trim(in.Name),
		Email:   trim(in.Email),
		Subject: trim(in.Subject),
		Message: trim(in.Message),
	}

	// min counts runes for strings
	shape := []rule{
		{"name", out.Name, "min=2", MsgNameTooShort},
		{"email", in.Email, "contact_email", MsgInvalidEmail},
		{"subject", out.Subject, "min=3", MsgSubjectShort},
		{"message", out.Message, "min=10", MsgMessageShort},
	}
	if err := check(shape); err != nil {
		return SubmissionInput{}, err
	}
	return out, nil
}

func ValidateStatus(raw string) (Status, error) {
	if err := check([]rule{{"status", raw, "required,oneof=new read replied archived", MsgInvalidStatus}}); err != nil {
		return "", err
	}
	return Status(raw), nil
}
