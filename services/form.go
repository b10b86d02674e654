package services

import (
	"strings"
)

// Form is any string-keyed source of submitted values; url.Values qualifies.
type Form interface {
	Get(key string) string
}

// FormMap adapts a plain map, mostly for tests and JSON callers.
type FormMap map[string]string

func (m FormMap) Get(key string) string {
	return m[key]
}

// withValue overrides a single key of an underlying form.
type withValue struct {
	Form
	key, value string
}

func (w withValue) Get(key string) string {
	if key == w.key {
		return w.value
	}
	return w.Form.Get(key)
}

func field(f Form, key string) string {
	return strings.TrimSpace(f.Get(key))
}
