package engine

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// NameValidator accepts or rejects a candidate customer name.
type NameValidator interface {
	Valid(name string) bool
}

type nameValidator struct {
	validate *validator.Validate
}

// NewNameValidator returns a validator that accepts a single word of
// letters, 2 to 40 characters, any script.
func NewNameValidator() NameValidator {
	return &nameValidator{validate: validator.New()}
}

func (v *nameValidator) Valid(name string) bool {
	name = strings.TrimSpace(name)
	return v.validate.Var(name, "required,alphaunicode,min=2,max=40") == nil
}
