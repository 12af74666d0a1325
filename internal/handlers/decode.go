package handlers

import (
	"captive-portal/internal/models"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strconv"
)

const (
	fieldFullName    = "fullName"
	fieldEmail       = "email"
	fieldPhoneNumber = "phoneNumber"
	fieldCompanyName = "companyName"
)

// decodeSubmissionForm reads the lead form from a JSON or URL-encoded body.
// Absent fields decode as empty strings.
func decodeSubmissionForm(w http.ResponseWriter, r *http.Request, maxBytes int64) (models.SubmissionForm, error) {
	if r.Body != nil && maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		return decodeJSONForm(r)
	}

	if err := r.ParseForm(); err != nil {
		return models.SubmissionForm{}, fmt.Errorf("%w: %v", models.ErrMalformedBody, err)
	}

	return models.SubmissionForm{
		FullName:    r.PostForm.Get(fieldFullName),
		Email:       r.PostForm.Get(fieldEmail),
		PhoneNumber: r.PostForm.Get(fieldPhoneNumber),
		CompanyName: r.PostForm.Get(fieldCompanyName),
	}, nil
}

func decodeJSONForm(r *http.Request) (models.SubmissionForm, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return models.SubmissionForm{}, nil
	}

	var payload map[string]any
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&payload); err != nil {
		return models.SubmissionForm{}, fmt.Errorf("%w: %v", models.ErrMalformedBody, err)
	}

	return models.SubmissionForm{
		FullName:    stringifyJSONValue(payload[fieldFullName]),
		Email:       stringifyJSONValue(payload[fieldEmail]),
		PhoneNumber: stringifyJSONValue(payload[fieldPhoneNumber]),
		CompanyName: stringifyJSONValue(payload[fieldCompanyName]),
	}, nil
}

// stringifyJSONValue gives scalars their literal text and nested values their
// compact JSON encoding.
func stringifyJSONValue(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case json.Number:
		return value.String()
	case bool:
		return strconv.FormatBool(value)
	default:
		encoded, err := json.Marshal(value)
		if err != nil {
			return ""
		}
		return string(encoded)
	}
}
