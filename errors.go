package bodyfile

import (
	"errors"
	"fmt"
)

var (
	// ErrUnterminatedEscape is returned when a field ends in a
	// backslash with nothing left to escape.
	ErrUnterminatedEscape = errors.New("unterminated escape sequence")

	// ErrInvalidEscape is returned when a backslash precedes a
	// character outside the reserved set. Accepting it would break
	// the decode/encode byte identity so it is rejected outright.
	ErrInvalidEscape = errors.New("escaped character is not in the reserved set")
)

// FieldCountError indicates a line did not split into exactly 11
// unescaped fields.
type FieldCountError struct {
	Count int
}

func (self *FieldCountError) Error() string {
	return fmt.Sprintf("expected %d fields, got %d", NumFields, self.Count)
}

// FieldDecodeError wraps a field level parse failure with the 1-based
// position and name of the offending field.
type FieldDecodeError struct {
	FieldIndex int
	FieldName  string
	Err        error
}

func (self *FieldDecodeError) Error() string {
	return fmt.Sprintf("field %d (%s): %v",
		self.FieldIndex, self.FieldName, self.Err)
}

func (self *FieldDecodeError) Unwrap() error {
	return self.Err
}

// MalformedDescriptorError indicates a descriptor that can not be
// encoded into a valid record.
type MalformedDescriptorError struct {
	Reason string
}

func (self *MalformedDescriptorError) Error() string {
	return "malformed descriptor: " + self.Reason
}
