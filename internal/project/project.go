// Package project defines the project entity shown by projectdeck, the
// payload used to create and update it, and the auxiliary motivation quote.
package project

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrInvalidInput is wrapped by every Input validation failure.
var ErrInvalidInput = errors.New("invalid project input")

// Project is a project record with a store-assigned identity.
// A nil Description means the project has no description.
type Project struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// DescriptionOr returns the description, or fallback when it is absent.
func (p Project) DescriptionOr(fallback string) string {
	if p.Description == nil {
		return fallback
	}
	return *p.Description
}

// Input is the create/update payload sent to the store. Build it with
// NewInput so name and description are normalized the same way everywhere.
type Input struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// NewInput trims name and description and substitutes an absent
// description when the trimmed value is empty. The result is validated.
func NewInput(name, description string) (Input, error) {
	in := Input{Name: strings.TrimSpace(name)}
	if d := strings.TrimSpace(description); d != "" {
		in.Description = &d
	}
	if err := in.Validate(); err != nil {
		return in, err
	}
	return in, nil
}

// Validate checks the normalized input: a required name, and a
// description that is either absent or non-empty.
func (in Input) Validate() error {
	err := validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required.Error("name is required")),
		validation.Field(&in.Description, validation.NilOrNotEmpty.Error("description must be absent or non-empty")),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

// Apply returns p with the fields of in.
func (in Input) Apply(p Project) Project {
	p.Name = in.Name
	p.Description = in.Description
	return p
}

// Quote is the auxiliary display value. It has no identity; a newer quote
// simply replaces the old one.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}
