package domain_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactform/core/submission/domain"
)

func validInput() domain.SubmissionInput {
	return domain.SubmissionInput{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Subject: "Catering",
		Message: "Do you cater weddings in June?",
	}
}

func messageOf(t *testing.T, err error) string {
	t.Helper()
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)
	assert.ErrorIs(t, err, domain.ErrInvalidData)
	return verr.Message
}

func TestValidateSubmissionMissingFields(t *testing.T) {
	blank := []func(*domain.SubmissionInput){
		func(in *domain.SubmissionInput) { in.Name = "" },
		func(in *domain.SubmissionInput) { in.Email = "" },
		func(in *domain.SubmissionInput) { in.Subject = "" },
		func(in *domain.SubmissionInput) { in.Message = "" },
	}
	for i, mutate := range blank {
		in := validInput()
		mutate(&in)
		_, err := domain.ValidateSubmission(in)
		assert.Equal(t, domain.MsgFieldsRequired, messageOf(t, err), "case %d", i)
	}
}

func TestValidateSubmissionNameLength(t *testing.T) {
	in := validInput()
	in.Name = " A "
	_, err := domain.ValidateSubmission(in)
	assert.Equal(t, domain.MsgNameTooShort, messageOf(t, err))

	// whitespace counts as present but trims to nothing
	in.Name = "   "
	_, err = domain.ValidateSubmission(in)
	assert.Equal(t, domain.MsgNameTooShort, messageOf(t, err))

	in.Name = "Al"
	_, err = domain.ValidateSubmission(in)
	assert.NoError(t, err)

	// code points, not bytes
	in.Name = "é"
	_, err = domain.ValidateSubmission(in)
	assert.Equal(t, domain.MsgNameTooShort, messageOf(t, err))
	in.Name = "李雷"
	_, err = domain.ValidateSubmission(in)
	assert.NoError(t, err)
}

func TestValidateSubmissionEmail(t *testing.T) {
	valid := []string{"a@b.co", "first.last@sub.example.org", "x+tag@host.io"}
	invalid := []string{"plain", "a@b", "@b.com", "a@.com ", "a b@c.com", "a@@b.com", " a@b.com",
		"a\u00a0b@c.co", "a\u000bb@c.co", "a@b\u2028c.co", "a@b.c\ufeffo", "a\u3000b@c.co"}

	for _, email := range valid {
		in := validInput()
		in.Email = email
		_, err := domain.ValidateSubmission(in)
		assert.NoError(t, err, email)
	}
	for _, email := range invalid {
		in := validInput()
		in.Email = email
		_, err := domain.ValidateSubmission(in)
		assert.Equal(t, domain.MsgInvalidEmail, messageOf(t, err), email)
	}
}

func TestValidateSubmissionSubjectAndMessage(t *testing.T) {
	in := validInput()
	in.Subject = "Hi"
	_, err := domain.ValidateSubmission(in)
	assert.Equal(t, domain.MsgSubjectShort, messageOf(t, err))

	in = validInput()
	in.Subject = "Hey"
	in.Message = "too short"
	_, err = domain.ValidateSubmission(in)
	assert.Equal(t, domain.MsgMessageShort, messageOf(t, err))

	in.Message = "  1234567890  "
	_, err = domain.ValidateSubmission(in)
	assert.NoError(t, err)
}

func TestValidateSubmissionUnicodeWhitespace(t *testing.T) {
	in := validInput()
	in.Name = "\ufeffJ"
	_, err := domain.ValidateSubmission(in)
	assert.Equal(t, domain.MsgNameTooShort, messageOf(t, err))

	in.Name = "\u00a0J\u2029"
	_, err = domain.ValidateSubmission(in)
	assert.Equal(t, domain.MsgNameTooShort, messageOf(t, err))

	in = validInput()
	in.Subject = "\u000bCatering\u00a0"
	in.Message = "\u20281234567890\u1680"
	out, err := domain.ValidateSubmission(in)
	require.NoError(t, err)
	assert.Equal(t, "Catering", out.Subject)
	assert.Equal(t, "1234567890", out.Message)
}

func TestValidateSubmissionFirstFailureWins(t *testing.T) {
	_, err := domain.ValidateSubmission(domain.SubmissionInput{
		Name:    "A",
		Email:   "nope",
		Subject: "x",
		Message: "short",
	})
	assert.Equal(t, domain.MsgNameTooShort, messageOf(t, err))
}

func TestValidateSubmissionTrims(t *testing.T) {
	in := domain.SubmissionInput{
		Name:    "  Ada  ",
		Email:   "ada@example.com",
		Subject: "\tCatering\n",
		Message: strings.Repeat("a", 10) + "   ",
	}
	out, err := domain.ValidateSubmission(in)
	require.NoError(t, err)
	assert.Equal(t, "Ada", out.Name)
	assert.Equal(t, "Catering", out.Subject)
	assert.Equal(t, strings.Repeat("a", 10), out.Message)
}

func TestValidateStatus(t *testing.T) {
	for _, s := range domain.Statuses {
		got, err := domain.ValidateStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
		assert.True(t, got.Valid())
	}
	for _, raw := range []string{"", "NEW", "deleted", " read"} {
		_, err := domain.ValidateStatus(raw)
		assert.Equal(t, domain.MsgInvalidStatus, messageOf(t, err), raw)
	}
}
