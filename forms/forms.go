// Package forms validates user-submitted input before it reaches the
// persistence layer. Each form returns a map of field name to error
// messages; an empty map means the input is valid.
package forms

import (
	validator "gopkg.in/go-playground/validator.v9"
)

var validate = validator.New()

// Errors collects field-level validation messages.
type Errors map[string][]string

func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Valid reports whether no field failed validation.
func (e Errors) Valid() bool {
	return len(e) == 0
}
