package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

const maxFormMemory = 32 << 20

// FieldError is a form or query field that is missing or has the wrong type.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Form coerces request fields and remembers the first failure, so handlers can
// read every field and check Err once.
type Form struct {
	r   *http.Request
	err error
}

// ParseForm accepts urlencoded bodies, multipart bodies and query strings.
func ParseForm(r *http.Request) (*Form, error) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, err
	}
	return &Form{r: r}, nil
}

func (f *Form) Err() error { return f.err }

func (f *Form) fail(field, reason string) {
	if f.err == nil {
		f.err = &FieldError{Field: field, Reason: reason}
	}
}

func (f *Form) lookup(field string) (string, bool) {
	vs, ok := f.r.Form[field]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

func (f *Form) String(field string) string {
	v, ok := f.lookup(field)
	if !ok {
		f.fail(field, "field required")
	}
	return v
}

// OptionalString returns nil when the field is absent.
func (f *Form) OptionalString(field string) *string {
	v, ok := f.lookup(field)
	if !ok {
		return nil
	}
	return &v
}

func (f *Form) Int(field string) int {
	v, ok := f.lookup(field)
	if !ok {
		f.fail(field, "field required")
		return 0
	}
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		f.fail(field, "value is not a valid integer")
	}
	return i
}

// IntDefault returns def when the field is absent or empty.
func (f *Form) IntDefault(field string, def int) int {
	v, ok := f.lookup(field)
	if !ok || strings.TrimSpace(v) == "" {
		return def
	}
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		f.fail(field, "value is not a valid integer")
		return def
	}
	return i
}

// OptionalInt returns nil when the field is absent or empty.
func (f *Form) OptionalInt(field string) *int {
	v, ok := f.lookup(field)
	if !ok || strings.TrimSpace(v) == "" {
		return nil
	}
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		f.fail(field, "value is not a valid integer")
		return nil
	}
	return &i
}

func (f *Form) Bool(field string) bool {
	v, ok := f.lookup(field)
	if !ok {
		f.fail(field, "field required")
		return false
	}
	b, err := ParseBool(v)
	if err != nil {
		f.fail(field, "value could not be parsed to a boolean")
	}
	return b
}

// ParseBool accepts the spellings HTML forms and API clients commonly send.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "t", "true", "y", "yes", "on":
		return true, nil
	case "0", "f", "false", "n", "no", "off":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", s)
}
