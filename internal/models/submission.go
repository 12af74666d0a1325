package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxFieldLength caps every form field, counted in characters.
const MaxFieldLength = 256

// TimestampLayout renders capture times as UTC ISO-8601 with milliseconds.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

var (
	ErrMissingField  = errors.New("required field is empty")
	ErrFieldTooLong  = errors.New("field exceeds maximum length")
	ErrMalformedBody = errors.New("malformed request body")
)

// CSVHeader is the fixed column set of the submissions file.
var CSVHeader = []string{
	"timestamp_iso",
	"full_name",
	"email",
	"phone_number",
	"company_name",
	"client_ip",
}

// SubmissionForm is the raw lead form as posted by the portal page.
type SubmissionForm struct {
	FullName    string
	Email       string
	PhoneNumber string
	CompanyName string
}

// Normalize trims surrounding whitespace from every field.
func (f SubmissionForm) Normalize() SubmissionForm {
	return SubmissionForm{
		FullName:    strings.TrimSpace(f.FullName),
		Email:       strings.TrimSpace(f.Email),
		PhoneNumber: strings.TrimSpace(f.PhoneNumber),
		CompanyName: strings.TrimSpace(f.CompanyName),
	}
}

// Validate checks presence and length. It expects a normalized form.
func (f SubmissionForm) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"fullName", f.FullName},
		{"email", f.Email},
		{"phoneNumber", f.PhoneNumber},
		{"companyName", f.CompanyName},
	}

	for _, field := range fields {
		if utf8.RuneCountInString(field.value) > MaxFieldLength {
			return fmt.Errorf("%w: %s", ErrFieldTooLong, field.name)
		}
	}

	for _, field := range fields {
		if field.value == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, field.name)
		}
	}

	return nil
}

// Submission is one row of the submissions file.
type Submission struct {
	Timestamp     time.Time
	FullName      string
	Email         string
	PhoneNumber   string
	CompanyName   string
	ClientAddress string
}

func NewSubmission(form SubmissionForm, clientAddress string, at time.Time) Submission {
	return Submission{
		Timestamp:     at.UTC(),
		FullName:      form.FullName,
		Email:         form.Email,
		PhoneNumber:   form.PhoneNumber,
		CompanyName:   form.CompanyName,
		ClientAddress: clientAddress,
	}
}

// Fields returns the record in CSVHeader column order.
func (s Submission) Fields() []string {
	return []string{
		s.Timestamp.UTC().Format(TimestampLayout),
		s.FullName,
		s.Email,
		s.PhoneNumber,
		s.CompanyName,
		s.ClientAddress,
	}
}
