package content

import (
	"errors"
	"fmt"
)

// ErrNotObject is reported when a payload decodes to JSON that is not an object.
var ErrNotObject = errors.New("payload is not a json object")

// SectionError describes a recognized field whose value does not fit its typed view.
type SectionError struct {
	Field string
	Err   error
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("section %s: %v", e.Field, e.Err)
}

func (e *SectionError) Unwrap() error { return e.Err }
